package assess

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/dungeoncheck/pkg/model"
	"github.com/dshills/dungeoncheck/pkg/rules"
)

// randomChainLevel builds an arbitrary-length room chain, exercising
// Assess over a wide range of shapes rather than a handful of fixed
// scenarios.
func randomChainLevel(rt *rapid.T) *model.Level {
	n := rapid.IntRange(1, 12).Draw(rt, "roomCount")
	ids := make([]string, n)
	for i := range ids {
		ids[i] = rapid.StringMatching(`r[0-9]+`).Draw(rt, "roomID")
		ids[i] = ids[i] + string(rune('a'+i))
	}
	return chainLevel(ids...)
}

// TestOverallScoreAlwaysInUnitRange is §8's universal invariant: "every
// rule returns a score in [0,1]; the overall score is in [0,1]".
func TestOverallScoreAlwaysInUnitRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lvl := randomChainLevel(rt)
		d := &model.Dungeon{Levels: []model.Level{*lvl}}

		result, err := Assess(d, nil)
		require.NoError(rt, err)
		require.GreaterOrEqual(rt, result.OverallScore, 0.0)
		require.LessOrEqual(rt, result.OverallScore, 1.0)

		for id, rs := range result.Scores {
			require.GreaterOrEqualf(rt, rs.Score, 0.0, "rule %s", id)
			require.LessOrEqualf(rt, rs.Score, 1.0, "rule %s", id)
		}
	})
}

// TestOverallScoreIsOneWhenEveryPresentCategoryScoresOne is §8's second
// universal invariant ("category weights sum to 1 after renormalization"),
// checked directly against aggregateOverall: whatever the configured
// category weights and whichever subset of rules is enabled, if every
// category that subset touches scores a perfect 1.0, the renormalized
// overall score must also be exactly 1.0 — any other result means the
// weights didn't actually renormalize to sum 1.
func TestOverallScoreIsOneWhenEveryPresentCategoryScoresOne(t *testing.T) {
	all := rules.All()

	rapid.Check(t, func(rt *rapid.T) {
		cfg := DefaultConfig()
		cfg.CategoryWeights = map[string]float64{
			"structural": rapid.Float64Range(0.01, 1.0).Draw(rt, "w_structural"),
			"gameplay":   rapid.Float64Range(0.01, 1.0).Draw(rt, "w_gameplay"),
			"aesthetic":  rapid.Float64Range(0.01, 1.0).Draw(rt, "w_aesthetic"),
		}

		var enabled []rules.Rule
		for _, r := range all {
			if rapid.Bool().Draw(rt, "enable_"+r.ID) {
				enabled = append(enabled, r)
			}
		}
		if len(enabled) == 0 {
			enabled = append(enabled, all[0])
		}

		perfectScores := map[string]float64{}
		for _, r := range enabled {
			perfectScores[string(r.Category)] = 1.0
		}

		overall := aggregateOverall(perfectScores, enabled, cfg)
		require.InDelta(rt, 1.0, overall, 1e-9)
	})
}
