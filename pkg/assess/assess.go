package assess

import (
	"time"

	"github.com/dshills/dungeoncheck/pkg/apperr"
	"github.com/dshills/dungeoncheck/pkg/graphidx"
	"github.com/dshills/dungeoncheck/pkg/model"
	"github.com/dshills/dungeoncheck/pkg/rules"
)

// Assess runs the enabled rules over every level of d and aggregates the
// results into a single AssessmentResult (§4.E). A dungeon with multiple
// levels is scored per level and then averaged rule-by-rule, so a single
// bad level cannot be hidden by good ones elsewhere in the set.
func Assess(d *model.Dungeon, cfg *Config) (*AssessmentResult, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if len(d.Levels) == 0 {
		return nil, apperr.InvalidModel("dungeon has no levels to assess")
	}

	start := time.Now()

	all := rules.All()
	enabled := make([]rules.Rule, 0, len(all))
	for _, r := range all {
		if cfg.isEnabled(r.ID) {
			enabled = append(enabled, r)
		}
	}

	// scoreSums accumulates each rule's score across levels; the detail
	// recorded is the last level's (multi-level detail merging has no
	// natural shape, so only the most recent one is kept; details of
	// earlier levels are discarded).
	scoreSums := make(map[string]float64, len(enabled))
	lastDetail := make(map[string]rules.Detail, len(enabled))

	var pacingSum float64
	var pacingCount int

	for _, lvl := range d.Levels {
		level := lvl
		g := graphidx.Build(&level)
		ctx := &rules.EvalContext{Level: &level, Graph: g}

		for _, r := range enabled {
			res := r.Evaluate(ctx)
			scoreSums[r.ID] += res.Score
			lastDetail[r.ID] = res.Detail
		}

		if cfg.Pacing != nil {
			if dev, ok := rules.PacingDeviation(ctx, pacingCurveConfig(cfg.Pacing)); ok {
				pacingSum += dev
				pacingCount++
			}
		}
	}

	numLevels := float64(len(d.Levels))
	scores := make(map[string]RuleScore, len(enabled))
	for _, r := range enabled {
		scores[r.ID] = RuleScore{
			Score:  scoreSums[r.ID] / numLevels,
			Detail: lastDetail[r.ID],
		}
	}

	categoryScores := aggregateCategories(enabled, scores, cfg)
	overall := aggregateOverall(categoryScores, enabled, cfg)
	recs := buildRecommendations(enabled, scores, cfg)

	result := &AssessmentResult{
		OverallScore:     overall,
		Grade:            Grade(overall),
		CategoryScores:   categoryScores,
		Scores:           scores,
		Recommendations:  recs,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}

	if cfg.Pacing != nil && pacingCount > 0 {
		mean := pacingSum / float64(pacingCount)
		result.Supplemental = &Supplemental{PacingDeviation: &mean}
	}

	return result, nil
}

func pacingCurveConfig(p *PacingConfig) rules.PacingCurveConfig {
	return rules.PacingCurveConfig{
		Curve:        rules.PacingCurveKind(p.Curve),
		CustomPoints: p.CustomPoints,
	}
}

// aggregateCategories computes each category's score as the weighted mean
// of its enabled rules, with rule weights renormalized within the category
// (§4.E: "renormalize ... over enabled rules only").
func aggregateCategories(enabled []rules.Rule, scores map[string]RuleScore, cfg *Config) map[string]float64 {
	type accum struct {
		weightedSum float64
		weightTotal float64
	}
	byCategory := make(map[rules.Category]*accum)

	for _, r := range enabled {
		a, ok := byCategory[r.Category]
		if !ok {
			a = &accum{}
			byCategory[r.Category] = a
		}
		w := ruleWeight(r.ID, cfg)
		a.weightedSum += w * scores[r.ID].Score
		a.weightTotal += w
	}

	out := make(map[string]float64, len(byCategory))
	for cat, a := range byCategory {
		if a.weightTotal <= 0 {
			out[string(cat)] = 0
			continue
		}
		out[string(cat)] = a.weightedSum / a.weightTotal
	}
	return out
}

// ruleWeight returns a rule's configured weight, defaulting to 1 (uniform
// among the other rules sharing its category once renormalized).
func ruleWeight(ruleID string, cfg *Config) float64 {
	if w, ok := cfg.RuleWeights[ruleID]; ok {
		return w
	}
	return 1.0
}

// aggregateOverall combines category scores via the configured weights,
// renormalized over categories that have at least one enabled rule.
func aggregateOverall(categoryScores map[string]float64, enabled []rules.Rule, cfg *Config) float64 {
	present := make(map[rules.Category]bool)
	for _, r := range enabled {
		present[r.Category] = true
	}

	var weightedSum, weightTotal float64
	for cat := range present {
		w := cfg.categoryWeight(cat)
		weightedSum += w * categoryScores[string(cat)]
		weightTotal += w
	}
	if weightTotal <= 0 {
		return 0
	}
	return weightedSum / weightTotal
}

// buildRecommendations emits one entry per enabled rule whose aggregated
// score falls below its improvement threshold (§4.E).
func buildRecommendations(enabled []rules.Rule, scores map[string]RuleScore, cfg *Config) []Recommendation {
	var recs []Recommendation
	for _, r := range enabled {
		score := scores[r.ID].Score
		threshold := cfg.improvementThreshold(r.ID)
		if score >= threshold {
			continue
		}
		recs = append(recs, Recommendation{
			RuleID:   r.ID,
			Severity: severityFor(score),
			Category: string(r.Category),
			Actions:  actionsFor(r.ID),
		})
	}
	return recs
}
