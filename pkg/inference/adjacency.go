package inference

import (
	"math"

	"github.com/dshills/dungeoncheck/pkg/model"
)

// adjacencyCandidate describes one discovered adjacency between two nodes,
// before it's turned into a Connection/Door.
type adjacencyCandidate struct {
	fromID, toID string
	doorPos      model.Point
	confidence   float64
}

// overlap returns the length of the overlap of [aMin,aMax] and [bMin,bMax],
// or a negative number if they don't overlap.
func overlap(aMin, aMax, bMin, bMax float64) float64 {
	lo := math.Max(aMin, bMin)
	hi := math.Min(aMax, bMax)
	return hi - lo
}

// findAdjacency applies §4.C's adjacency rule to two axis-aligned
// rectangles: "expanded by adjacency_threshold on one of four sides,
// produce a shared edge segment of length ≥ min_overlap". Returns ok=false
// if no side qualifies; otherwise the door position is the midpoint of
// the shared segment, and confidence is min(1.0, overlap/min(side_a, side_b)).
func findAdjacency(a, b model.Rect, threshold, minOverlap float64) (pos model.Point, confidence float64, ok bool) {
	// Horizontal adjacency: a's right edge near b's left edge, or vice versa.
	var hGap float64 = -1
	if a.MaxX() <= b.MinX() {
		hGap = b.MinX() - a.MaxX()
	} else if b.MaxX() <= a.MinX() {
		hGap = a.MinX() - b.MaxX()
	}
	if hGap >= 0 && hGap <= threshold {
		ov := overlap(a.MinY(), a.MaxY(), b.MinY(), b.MaxY())
		if ov >= minOverlap {
			boundaryX := (math.Min(a.MaxX(), b.MaxX()) + math.Max(a.MinX(), b.MinX())) / 2
			midY := (math.Max(a.MinY(), b.MinY()) + math.Min(a.MaxY(), b.MaxY())) / 2
			conf := math.Min(1.0, ov/math.Min(a.Size.Height, b.Size.Height))
			return model.Point{X: boundaryX, Y: midY}, conf, true
		}
	}

	// Vertical adjacency: a's bottom edge near b's top edge, or vice versa.
	var vGap float64 = -1
	if a.MaxY() <= b.MinY() {
		vGap = b.MinY() - a.MaxY()
	} else if b.MaxY() <= a.MinY() {
		vGap = a.MinY() - b.MaxY()
	}
	if vGap >= 0 && vGap <= threshold {
		ov := overlap(a.MinX(), a.MaxX(), b.MinX(), b.MaxX())
		if ov >= minOverlap {
			boundaryY := (math.Min(a.MaxY(), b.MaxY()) + math.Max(a.MinY(), b.MinY())) / 2
			midX := (math.Max(a.MinX(), b.MinX()) + math.Min(a.MaxX(), b.MaxX())) / 2
			conf := math.Min(1.0, ov/math.Min(a.Size.Width, b.Size.Width))
			return model.Point{X: midX, Y: boundaryY}, conf, true
		}
	}

	return model.Point{}, 0, false
}

// discoverAdjacencies finds every node pair not already connected that
// qualifies under the adjacency rule.
func discoverAdjacencies(lvl *model.Level, opts Options, existing map[[2]string]bool) []adjacencyCandidate {
	nodes := lvl.Nodes()
	var out []adjacencyCandidate

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			key := edgeKey(a.ID, b.ID)
			if existing[key] {
				continue
			}
			pos, conf, ok := findAdjacency(a.Rect(), b.Rect(), opts.AdjacencyThreshold, opts.MinOverlap)
			if !ok {
				continue
			}
			// Invariant: inferred edges always carry confidence < 1.
			if conf >= 1 {
				conf = 0.99
			}
			out = append(out, adjacencyCandidate{fromID: a.ID, toID: b.ID, doorPos: pos, confidence: conf})
		}
	}
	return out
}

func edgeKey(a, b string) [2]string {
	if a <= b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}
