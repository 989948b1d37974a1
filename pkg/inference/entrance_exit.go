package inference

import (
	"sort"

	"github.com/dshills/dungeoncheck/pkg/graphidx"
	"github.com/dshills/dungeoncheck/pkg/model"
)

// labelEntranceExit implements §4.C's entrance/exit labelling algorithm.
// Candidates are restricted to rooms (corridors are never entrance/exit),
// matching the convex-hull-of-room-centroids wording throughout the rule.
func labelEntranceExit(lvl *model.Level, g *graphidx.Graph) (entranceID, exitID string, ok bool) {
	if len(lvl.Rooms) == 0 {
		return "", "", false
	}

	hullPoints := make([]hullPoint, 0, len(lvl.Rooms))
	for _, r := range lvl.Rooms {
		hullPoints = append(hullPoints, hullPoint{id: r.ID, p: r.Rect().Centroid()})
	}
	hull := convexHull(hullPoints)

	entranceID = pickEntrance(lvl, g, hull)
	exitID = pickExit(lvl, g, entranceID)
	return entranceID, exitID, true
}

func pickEntrance(lvl *model.Level, g *graphidx.Graph, hull map[string]bool) string {
	var degreeOneOnHull []string
	for _, r := range lvl.Rooms {
		if g.Degree(r.ID) == 1 && hull[r.ID] {
			degreeOneOnHull = append(degreeOneOnHull, r.ID)
		}
	}
	if len(degreeOneOnHull) > 0 {
		sort.Strings(degreeOneOnHull)
		return degreeOneOnHull[0]
	}

	// Rule 3: minimum x (tie-break minimum y, then smallest id).
	best := lvl.Rooms[0]
	bestCentroid := best.Rect().Centroid()
	for _, r := range lvl.Rooms[1:] {
		c := r.Rect().Centroid()
		switch {
		case c.X < bestCentroid.X:
			best, bestCentroid = r, c
		case c.X == bestCentroid.X && c.Y < bestCentroid.Y:
			best, bestCentroid = r, c
		case c.X == bestCentroid.X && c.Y == bestCentroid.Y && r.ID < best.ID:
			best, bestCentroid = r, c
		}
	}
	return best.ID
}

// pickExit chooses the room farthest from the entrance by BFS distance,
// tie-broken by Euclidean distance and then smallest id. A room the
// entrance cannot reach (isolated entrance, disconnected component) is
// never BFS-farther than a reachable one, but it is still a valid exit
// candidate: rooms with no BFS path back to entranceID fall back to
// ranking by Euclidean distance alone, so an entrance with no path to
// anywhere still labels a deterministic exit instead of none at all.
// Only a single-room level has no distinct room to label, in which case
// the lone room is both entrance and exit.
func pickExit(lvl *model.Level, g *graphidx.Graph, entranceID string) string {
	if len(lvl.Rooms) == 1 {
		return entranceID
	}

	var depth map[string]int
	if info, ok := g.BFS(entranceID); ok {
		depth = info.Depth
	}

	entranceRoom, _ := lvl.RoomByID(entranceID)
	var entranceCentroid model.Point
	if entranceRoom != nil {
		entranceCentroid = entranceRoom.Rect().Centroid()
	}

	bestID := ""
	bestDist := -1
	bestEuclid := -1.0
	for _, r := range lvl.Rooms {
		if r.ID == entranceID {
			continue
		}
		d := -1
		if reached, ok := depth[r.ID]; ok {
			d = reached
		}
		euclid := entranceCentroid.Dist(r.Rect().Centroid())
		switch {
		case bestID == "":
			bestID, bestDist, bestEuclid = r.ID, d, euclid
		case d > bestDist:
			bestID, bestDist, bestEuclid = r.ID, d, euclid
		case d == bestDist && euclid > bestEuclid:
			bestID, bestEuclid = r.ID, euclid
		case d == bestDist && euclid == bestEuclid && r.ID < bestID:
			bestID = r.ID
		}
	}
	return bestID
}
