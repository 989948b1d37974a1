package rules

func init() {
	Register(Rule{ID: "loop_ratio", Category: Structural, Evaluate: evaluateLoopRatio})
}

// evaluateLoopRatio is §4.D.6: Gaussian-mapped cyclomatic-number-per-edge
// ratio.
func evaluateLoopRatio(ctx *EvalContext) Result {
	e := ctx.Graph.EdgeCount()
	if e == 0 {
		return degrade("no edges")
	}

	mu := ctx.Graph.CyclomaticNumber()
	ratio := float64(mu) / float64(e)
	score := gaussian(ratio, 0.3, 0.15)

	return Result{
		Score: clamp01(score),
		Detail: Detail{
			"cyclomatic_number": mu,
			"edge_count":        e,
			"ratio":             ratio,
		},
	}
}
