package rules

func init() {
	Register(Rule{ID: "degree_variance", Category: Structural, Evaluate: evaluateDegreeVariance})
}

// evaluateDegreeVariance is §4.D.2: score how close the degree variance is
// to a target of 1.0, via a Gaussian centered there.
func evaluateDegreeVariance(ctx *EvalContext) Result {
	ids := ctx.Graph.NodeIDs()
	if len(ids) == 0 {
		return degrade("no nodes")
	}

	degrees := ctx.Graph.Degrees()
	histogram := make(map[int]int)
	xs := make([]float64, 0, len(ids))
	for _, id := range ids {
		d := degrees[id]
		xs = append(xs, float64(d))
		histogram[d]++
	}

	v := variance(xs)
	score := gaussian(v, 1.0, 0.5)

	return Result{
		Score: clamp01(score),
		Detail: Detail{
			"mean_degree":      mean(xs),
			"variance":         v,
			"degree_histogram": histogram,
		},
	}
}
