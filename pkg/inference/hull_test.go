package inference

import (
	"testing"

	"github.com/dshills/dungeoncheck/pkg/model"
)

func TestConvexHullSquareAllCorners(t *testing.T) {
	pts := []hullPoint{
		{id: "a", p: model.Point{X: 0, Y: 0}},
		{id: "b", p: model.Point{X: 10, Y: 0}},
		{id: "c", p: model.Point{X: 10, Y: 10}},
		{id: "d", p: model.Point{X: 0, Y: 10}},
		{id: "e", p: model.Point{X: 5, Y: 5}}, // interior, should not be on hull
	}
	hull := convexHull(pts)
	for _, id := range []string{"a", "b", "c", "d"} {
		if !hull[id] {
			t.Errorf("expected %q on hull", id)
		}
	}
	if hull["e"] {
		t.Error("expected interior point not on hull")
	}
}
