package inference

import (
	"sort"

	"github.com/dshills/dungeoncheck/pkg/model"
)

// hullPoint pairs a centroid with the room id it came from, since the
// entrance/exit rule needs to know which room sits on the hull.
type hullPoint struct {
	id string
	p  model.Point
}

func cross(o, a, b model.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// convexHull computes the convex hull of a set of points via Andrew's
// monotone chain, returning the ids of the rooms whose centroid lies on
// the hull boundary (§4.C rule 2: "lies on the convex hull of all room
// centroids").
func convexHull(points []hullPoint) map[string]bool {
	onHull := make(map[string]bool)
	if len(points) < 3 {
		for _, pt := range points {
			onHull[pt.id] = true
		}
		return onHull
	}

	pts := make([]hullPoint, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].p.X != pts[j].p.X {
			return pts[i].p.X < pts[j].p.X
		}
		return pts[i].p.Y < pts[j].p.Y
	})

	build := func(seq []hullPoint) []hullPoint {
		var hull []hullPoint
		for _, pt := range seq {
			for len(hull) >= 2 && cross(hull[len(hull)-2].p, hull[len(hull)-1].p, pt.p) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, pt)
		}
		return hull
	}

	lower := build(pts)

	rev := make([]hullPoint, len(pts))
	for i, pt := range pts {
		rev[len(pts)-1-i] = pt
	}
	upper := build(rev)

	for _, pt := range lower[:max0(len(lower)-1)] {
		onHull[pt.id] = true
	}
	for _, pt := range upper[:max0(len(upper)-1)] {
		onHull[pt.id] = true
	}
	return onHull
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
