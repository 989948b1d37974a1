package rules

import (
	"testing"

	"github.com/dshills/dungeoncheck/pkg/model"
)

// TestLinearCorridorScenario is S1: a 5-room chain r1..r5.
func TestLinearCorridorScenario(t *testing.T) {
	lvl := withEntranceExit(chain("r1", "r2", "r3", "r4", "r5"), "r1", "r5")
	ctx := ctxFor(lvl)

	acc := evaluateAccessibility(ctx)
	if !closeTo(acc.Score, 1.0, 1e-9) {
		t.Errorf("accessibility: expected 1.0, got %f", acc.Score)
	}

	dv := evaluateDegreeVariance(ctx)
	if !closeTo(dv.Score, 0.32, 0.02) {
		t.Errorf("degree_variance: expected ≈0.32, got %f", dv.Score)
	}

	der := evaluateDeadEndRatio(ctx)
	if !closeTo(der.Score, 0.4, 1e-9) {
		t.Errorf("dead_end_ratio: expected 0.4, got %f", der.Score)
	}

	lr := evaluateLoopRatio(ctx)
	if !closeTo(lr.Score, 0.135, 0.01) {
		t.Errorf("loop_ratio: expected ≈0.135, got %f", lr.Score)
	}

	kpl := evaluateKeyPathLength(ctx)
	if !closeTo(kpl.Score, 1.0, 1e-9) {
		t.Errorf("key_path_length: expected 1.0, got %f", kpl.Score)
	}
}

// TestSquareLoopScenario is S2: a 4-room loop r1-r2-r3-r4-r1, entrance r1, exit r3.
func TestSquareLoopScenario(t *testing.T) {
	lvl := chain("r1", "r2", "r3", "r4")
	lvl.Connections = append(lvl.Connections, model.Connection{ID: "c41", FromRoom: "r4", ToRoom: "r1", Bidirectional: true})
	lvl = withEntranceExit(lvl, "r1", "r3")
	ctx := ctxFor(lvl)

	acc := evaluateAccessibility(ctx)
	if !closeTo(acc.Score, 1.0, 1e-9) {
		t.Errorf("accessibility: expected 1.0, got %f", acc.Score)
	}

	dv := evaluateDegreeVariance(ctx)
	if !closeTo(dv.Score, 0.135, 0.01) {
		t.Errorf("degree_variance: expected ≈0.135, got %f", dv.Score)
	}

	der := evaluateDeadEndRatio(ctx)
	if !closeTo(der.Score, 1.0, 1e-9) {
		t.Errorf("dead_end_ratio: expected 1.0, got %f", der.Score)
	}

	lr := evaluateLoopRatio(ctx)
	if !closeTo(lr.Score, 0.946, 0.01) {
		t.Errorf("loop_ratio: expected ≈0.946, got %f", lr.Score)
	}

	kpl := evaluateKeyPathLength(ctx)
	if !closeTo(kpl.Score, 1.0, 1e-9) {
		t.Errorf("key_path_length: expected 1.0, got %f", kpl.Score)
	}
}

// TestIsolatedRoomPlusTriangleScenario is S3: r1 disconnected, r2-r3-r4-r2 triangle.
func TestIsolatedRoomPlusTriangleScenario(t *testing.T) {
	lvl := &model.Level{
		ID: "l1",
		Rooms: []model.Space{
			{ID: "r1", Shape: model.ShapeRectangle, Size: model.Size{Width: 10, Height: 10}},
			{ID: "r2", Shape: model.ShapeRectangle, Size: model.Size{Width: 10, Height: 10}},
			{ID: "r3", Shape: model.ShapeRectangle, Size: model.Size{Width: 10, Height: 10}},
			{ID: "r4", Shape: model.ShapeRectangle, Size: model.Size{Width: 10, Height: 10}},
		},
		Connections: []model.Connection{
			{ID: "c23", FromRoom: "r2", ToRoom: "r3", Bidirectional: true},
			{ID: "c34", FromRoom: "r3", ToRoom: "r4", Bidirectional: true},
			{ID: "c42", FromRoom: "r4", ToRoom: "r2", Bidirectional: true},
		},
	}
	lvl = withEntranceExit(lvl, "r1", "")
	ctx := ctxFor(lvl)

	acc := evaluateAccessibility(ctx)
	if !closeTo(acc.Score, 0.592, 0.01) {
		t.Errorf("accessibility: expected ≈0.592, got %f", acc.Score)
	}
	unreachable, _ := acc.Detail["unreachable_ids"].([]string)
	if len(unreachable) != 3 {
		t.Errorf("expected 3 unreachable nodes, got %v", unreachable)
	}
}

// TestTreasureMonsterProximityScenario is S4.
func TestTreasureMonsterProximityScenario(t *testing.T) {
	lvl := &model.Level{
		ID:  "l1",
		Map: model.MapSize{Width: 100, Height: 100},
		Rooms: []model.Space{
			{ID: "r1", Shape: model.ShapeRectangle, Position: model.Point{X: 0, Y: 0}, Size: model.Size{Width: 20, Height: 20}},
			{ID: "r2", Shape: model.ShapeRectangle, Position: model.Point{X: 80, Y: 80}, Size: model.Size{Width: 20, Height: 20}},
		},
		GameElements: []model.GameElement{
			{ID: "t1", Type: model.ElementTreasure, Position: model.Point{X: 10, Y: 10}, RoomID: "r1"},
			{ID: "m1", Type: model.ElementMonster, Position: model.Point{X: 90, Y: 90}, RoomID: "r2"},
		},
	}
	ctx := ctxFor(lvl)

	r := evaluateTreasureMonsterDistribution(ctx)
	if !closeTo(r.Score, 0.585, 0.01) {
		t.Errorf("treasure_monster_distribution: expected ≈0.585, got %f (detail=%v)", r.Score, r.Detail)
	}
}

func TestEmptyRoomsDegradeToZero(t *testing.T) {
	lvl := &model.Level{ID: "l1"}
	ctx := ctxFor(lvl)

	for _, rule := range All() {
		res := rule.Evaluate(ctx)
		if res.Score != 0 {
			t.Errorf("rule %s: expected 0 on empty rooms, got %f", rule.ID, res.Score)
		}
		if _, ok := res.Detail["reason"]; !ok {
			t.Errorf("rule %s: expected a reason in detail", rule.ID)
		}
	}
}

func TestSingleRoomAccessibilityIsOne(t *testing.T) {
	lvl := withEntranceExit(chain("r1"), "r1", "")
	ctx := ctxFor(lvl)

	acc := evaluateAccessibility(ctx)
	if !closeTo(acc.Score, 1.0, 1e-9) {
		t.Errorf("expected accessibility 1.0 for a single room, got %f", acc.Score)
	}
}
