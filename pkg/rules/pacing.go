package rules

import "math"

// PacingCurveKind names a difficulty-progression curve shape. This is a
// supplemental diagnostic (not one of the nine scored rules, §9): it
// never enters category aggregation or grading.
type PacingCurveKind string

const (
	PacingLinear      PacingCurveKind = "LINEAR"
	PacingSCurve      PacingCurveKind = "S_CURVE"
	PacingExponential PacingCurveKind = "EXPONENTIAL"
	PacingCustom      PacingCurveKind = "CUSTOM"
)

// PacingCurveConfig selects and parameterizes the expected difficulty
// curve along the entrance-to-exit path.
type PacingCurveConfig struct {
	Curve        PacingCurveKind
	CustomPoints [][2]float64 // progress, difficulty; sorted, used only for CUSTOM
}

// expectedDifficulty evaluates the configured curve at a progress point in [0,1].
func expectedDifficulty(progress float64, cfg PacingCurveConfig) float64 {
	progress = clampUnit(progress)
	switch cfg.Curve {
	case PacingSCurve:
		const k = 10.0
		sigmoid := 1.0 / (1.0 + math.Exp(-k*(progress-0.5)))
		minVal := 1.0 / (1.0 + math.Exp(k*0.5))
		maxVal := 1.0 / (1.0 + math.Exp(-k*0.5))
		return clampUnit((sigmoid - minVal) / (maxVal - minVal))
	case PacingExponential:
		return progress * progress
	case PacingCustom:
		return interpolateCustom(progress, cfg.CustomPoints)
	default: // PacingLinear and unrecognized values
		return progress
	}
}

func interpolateCustom(progress float64, points [][2]float64) float64 {
	if len(points) == 0 {
		return progress
	}
	if progress <= points[0][0] {
		return points[0][1]
	}
	last := points[len(points)-1]
	if progress >= last[0] {
		return last[1]
	}
	for i := 0; i < len(points)-1; i++ {
		x0, y0 := points[i][0], points[i][1]
		x1, y1 := points[i+1][0], points[i+1][1]
		if progress >= x0 && progress <= x1 {
			return lerp(progress, x0, y0, x1, y1)
		}
	}
	return progress
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PacingDeviation measures how closely room difficulties along the
// entrance-to-exit path follow cfg's curve, as an RMSE in [0,1] (0 =
// perfect adherence). Returns ok=false when there's no labelled
// entrance/exit or no path between them — callers should omit the
// supplemental field entirely in that case rather than report a score.
func PacingDeviation(ctx *EvalContext, cfg PacingCurveConfig) (deviation float64, ok bool) {
	start, hasStart := entranceID(ctx.Level)
	end, hasEnd := exitID(ctx.Level)
	if !hasStart || !hasEnd {
		return 0, false
	}

	info, bfsOK := ctx.Graph.BFS(start)
	if !bfsOK {
		return 0, false
	}
	if _, reached := info.Depth[end]; !reached {
		return 0, false
	}

	path := reconstructPath(info, start, end)
	if len(path) < 2 {
		return 0, true
	}

	roomByID := make(map[string]float64, len(ctx.Level.Rooms))
	for _, r := range ctx.Level.Rooms {
		roomByID[r.ID] = r.DifficultyOrDefault()
	}

	var sumSquaredError float64
	roomsOnPath := 0
	for i, id := range path {
		actual, isRoom := roomByID[id]
		if !isRoom {
			continue // corridors carry no difficulty rating
		}
		roomsOnPath++
		progress := float64(i) / float64(len(path)-1)
		expected := expectedDifficulty(progress, cfg)
		err := expected - actual
		sumSquaredError += err * err
	}

	return math.Sqrt(sumSquaredError / float64(roomsOnPath)), true
}
