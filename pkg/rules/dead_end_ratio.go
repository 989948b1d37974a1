package rules

func init() {
	Register(Rule{ID: "dead_end_ratio", Category: Gameplay, Evaluate: evaluateDeadEndRatio})
}

// evaluateDeadEndRatio is §4.D.4: piecewise-linear score over the fraction
// of rooms with degree 1.
func evaluateDeadEndRatio(ctx *EvalContext) Result {
	rooms := ctx.Level.Rooms
	if len(rooms) == 0 {
		return degrade("no rooms")
	}

	deadEnds := 0
	for _, r := range rooms {
		if ctx.Graph.Degree(r.ID) == 1 {
			deadEnds++
		}
	}
	ratio := float64(deadEnds) / float64(len(rooms))

	var score float64
	switch {
	case ratio <= 0:
		score = 1.0
	case ratio <= 0.2:
		score = lerp(ratio, 0, 1.0, 0.2, 0.8)
	case ratio <= 0.4:
		score = lerp(ratio, 0.2, 0.8, 0.4, 0.4)
	case ratio <= 0.6:
		score = lerp(ratio, 0.4, 0.4, 0.6, 0.0)
	default:
		score = 0
	}

	return Result{
		Score: clamp01(score),
		Detail: Detail{
			"dead_end_count": deadEnds,
			"ratio":          ratio,
		},
	}
}

// lerp linearly interpolates the score for x between the two anchor
// points (x0,y0) and (x1,y1) of §4.D.4's piecewise-linear curve.
func lerp(x, x0, y0, x1, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	t := (x - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}
