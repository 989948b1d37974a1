package rules

import (
	"math"

	"github.com/dshills/dungeoncheck/pkg/model"
)

func init() {
	Register(Rule{ID: "geometric_balance", Category: Aesthetic, Evaluate: evaluateGeometricBalance})
}

// evaluateGeometricBalance is §4.D.9: geometric mean of mirror-symmetry
// ratio, room-area uniformity, and connected-pair spacing uniformity.
func evaluateGeometricBalance(ctx *EvalContext) Result {
	rooms := ctx.Level.Rooms
	if len(rooms) < 2 {
		return degrade("fewer than two rooms")
	}

	centroids := make([]model.Point, len(rooms))
	areas := make([]float64, len(rooms))
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i, r := range rooms {
		rect := r.Rect()
		centroids[i] = rect.Centroid()
		areas[i] = rect.Area()
		minX = math.Min(minX, centroids[i].X)
		maxX = math.Max(maxX, centroids[i].X)
	}

	symmetry := mirrorSymmetryRatio(centroids, minX, maxX)
	uArea := uniformityScore(areas)
	uSpacing := spacingUniformity(ctx, rooms, centroids)

	score := geometricMean(symmetry, uArea, uSpacing)

	return Result{
		Score: clamp01(score),
		Detail: Detail{
			"symmetry_ratio":    symmetry,
			"area_uniformity":   uArea,
			"spacing_uniformity": uSpacing,
		},
	}
}

func mirrorSymmetryRatio(centroids []model.Point, minX, maxX float64) float64 {
	n := len(centroids)
	xMid := (minX + maxX) / 2
	tol := 0.01 * (maxX - minX)

	matched := make([]bool, n)
	count := 0
	for i := 0; i < n; i++ {
		if matched[i] {
			continue
		}
		mirrorX := 2*xMid - centroids[i].X
		if math.Abs(centroids[i].X-mirrorX) <= tol {
			matched[i] = true
			count++
			continue
		}
		for j := i + 1; j < n; j++ {
			if matched[j] {
				continue
			}
			if math.Abs(centroids[j].X-mirrorX) <= tol && math.Abs(centroids[j].Y-centroids[i].Y) <= tol {
				matched[i], matched[j] = true, true
				count += 2
				break
			}
		}
	}
	return float64(count) / float64(n)
}

// spacingUniformity prefers pairwise centroid distances of connected rooms
// (§9 Open Question, resolved toward connected pairs when available),
// falling back to all pairs when no room-room connection exists.
func spacingUniformity(ctx *EvalContext, rooms []model.Space, centroids []model.Point) float64 {
	index := make(map[string]int, len(rooms))
	for i, r := range rooms {
		index[r.ID] = i
	}

	var distances []float64
	for _, e := range ctx.Graph.EdgePairs() {
		i, ok1 := index[e[0]]
		j, ok2 := index[e[1]]
		if ok1 && ok2 {
			distances = append(distances, centroids[i].Dist(centroids[j]))
		}
	}

	if len(distances) == 0 {
		for i := 0; i < len(centroids); i++ {
			for j := i + 1; j < len(centroids); j++ {
				distances = append(distances, centroids[i].Dist(centroids[j]))
			}
		}
	}

	return uniformityScore(distances)
}
