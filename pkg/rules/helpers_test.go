package rules

import (
	"github.com/dshills/dungeoncheck/pkg/graphidx"
	"github.com/dshills/dungeoncheck/pkg/model"
)

func chain(ids ...string) *model.Level {
	lvl := &model.Level{ID: "l1"}
	for _, id := range ids {
		lvl.Rooms = append(lvl.Rooms, model.Space{ID: id, Shape: model.ShapeRectangle, Size: model.Size{Width: 10, Height: 10}})
	}
	for i := 0; i < len(ids)-1; i++ {
		lvl.Connections = append(lvl.Connections, model.Connection{
			ID: "c" + ids[i] + ids[i+1], FromRoom: ids[i], ToRoom: ids[i+1], Bidirectional: true,
		})
	}
	return lvl
}

func ctxFor(lvl *model.Level) *EvalContext {
	return &EvalContext{Level: lvl, Graph: graphidx.Build(lvl)}
}

func withEntranceExit(lvl *model.Level, entrance, exit string) *model.Level {
	for i := range lvl.Rooms {
		if lvl.Rooms[i].ID == entrance {
			lvl.Rooms[i].IsEntrance = true
		}
		if lvl.Rooms[i].ID == exit {
			lvl.Rooms[i].IsExit = true
		}
	}
	return lvl
}

func closeTo(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
