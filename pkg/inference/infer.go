package inference

import (
	"github.com/dshills/dungeoncheck/pkg/graphidx"
	"github.com/dshills/dungeoncheck/pkg/model"
)

// Infer runs the spatial inference engine over d, returning a new,
// enriched *model.Dungeon. The input is never mutated (§9: "rebuild the
// model with appended collections rather than in-place mutation"); after
// Infer returns, the result is treated as read-only by every downstream
// component (§3 ownership note).
func Infer(d *model.Dungeon, opts Options) *model.Dungeon {
	out := &model.Dungeon{Header: d.Header, Levels: make([]model.Level, len(d.Levels))}

	for i, lvl := range d.Levels {
		out.Levels[i] = inferLevel(lvl, opts)
	}
	return out
}

func inferLevel(lvl model.Level, opts Options) model.Level {
	next := model.Level{
		ID:           lvl.ID,
		Name:         lvl.Name,
		Map:          lvl.Map,
		Rooms:        append([]model.Space(nil), lvl.Rooms...),
		Corridors:    append([]model.Space(nil), lvl.Corridors...),
		Connections:  append([]model.Connection(nil), lvl.Connections...),
		Doors:        append([]model.Door(nil), lvl.Doors...),
		GameElements: append([]model.GameElement(nil), lvl.GameElements...),
	}

	existing := make(map[[2]string]bool, len(next.Connections))
	for _, c := range next.Connections {
		existing[edgeKey(c.FromRoom, c.ToRoom)] = true
	}

	for _, cand := range discoverAdjacencies(&next, opts, existing) {
		next.Connections = append(next.Connections, model.Connection{
			ID:            connectionID(lvl.ID, cand.fromID, cand.toID),
			FromRoom:      cand.fromID,
			ToRoom:        cand.toID,
			DoorType:      model.InferredDoorType,
			Bidirectional: true,
			Inferred:      true,
			Confidence:    cand.confidence,
		})
		if opts.InferDoors {
			next.Doors = append(next.Doors, model.Door{
				ID:       doorID(lvl.ID, cand.fromID, cand.toID),
				Between:  model.Between{FromRoom: cand.fromID, ToRoom: cand.toID},
				Type:     model.InferredDoorType,
				Position: cand.doorPos,
				Inferred: true,
			})
		}
	}

	if opts.InferEntranceExit && !hasEntranceOrExit(next.Rooms) {
		g := graphidx.Build(&next)
		if entranceID, exitID, ok := labelEntranceExit(&next, g); ok {
			for i := range next.Rooms {
				if next.Rooms[i].ID == entranceID {
					next.Rooms[i].IsEntrance = true
				}
				if next.Rooms[i].ID == exitID {
					next.Rooms[i].IsExit = true
				}
			}
		}
	}

	return next
}

func hasEntranceOrExit(rooms []model.Space) bool {
	for _, r := range rooms {
		if r.IsEntrance || r.IsExit {
			return true
		}
	}
	return false
}
