package rules

import (
	"math"

	"github.com/dshills/dungeoncheck/pkg/model"
)

func init() {
	Register(Rule{ID: "treasure_monster_distribution", Category: Gameplay, Evaluate: evaluateTreasureMonsterDistribution})
}

func nonZero(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if x != 0 {
			out = append(out, x)
		}
	}
	return out
}

// evaluateTreasureMonsterDistribution is §4.D.8: per-room uniformity of
// treasure and monster counts, plus treasure-to-nearest-monster proximity.
func evaluateTreasureMonsterDistribution(ctx *EvalContext) Result {
	rooms := ctx.Level.Rooms
	if len(rooms) == 0 {
		return degrade("no rooms")
	}

	roomIndex := make(map[string]int, len(rooms))
	for i, r := range rooms {
		roomIndex[r.ID] = i
	}

	treasureCounts := make([]float64, len(rooms))
	monsterCounts := make([]float64, len(rooms))
	var treasurePositions, monsterPositions []model.Point

	for _, el := range ctx.Level.GameElements {
		idx, ok := roomIndex[el.RoomID]
		if !ok {
			continue
		}
		switch {
		case el.Type.IsTreasure():
			treasureCounts[idx]++
			treasurePositions = append(treasurePositions, el.Position)
		case el.Type.IsMonster():
			monsterCounts[idx]++
			monsterPositions = append(monsterPositions, el.Position)
		}
	}

	if len(treasurePositions) == 0 {
		return degrade("no treasures placed")
	}

	// Uniformity is measured across the rooms that actually hold an item
	// of the given type: with a single treasure in a single room there is
	// no distribution to be uneven, so that case is perfectly uniform.
	uTreasure := uniformityScore(nonZero(treasureCounts))

	if len(monsterPositions) == 0 {
		return Result{
			Score: clamp01(uTreasure),
			Detail: Detail{
				"uniformity_treasure": uTreasure,
				"note":                "no monsters",
			},
		}
	}

	uMonster := uniformityScore(nonZero(monsterCounts))

	diag := math.Hypot(ctx.Level.Map.Width, ctx.Level.Map.Height)
	var proximity float64
	if diag > 0 {
		var total float64
		for _, tp := range treasurePositions {
			best := math.MaxFloat64
			for _, mp := range monsterPositions {
				if d := tp.Dist(mp); d < best {
					best = d
				}
			}
			total += best
		}
		avgDist := total / float64(len(treasurePositions))
		proximity = clamp01(1 - math.Min(avgDist/diag, 1))
	}

	score := geometricMean(uTreasure, uMonster, proximity)

	return Result{
		Score: clamp01(score),
		Detail: Detail{
			"uniformity_treasure": uTreasure,
			"uniformity_monster":  uMonster,
			"proximity":           proximity,
		},
	}
}
