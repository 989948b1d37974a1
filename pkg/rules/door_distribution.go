package rules

import "math"

func init() {
	Register(Rule{ID: "door_distribution", Category: Structural, Evaluate: evaluateDoorDistribution})
}

// evaluateDoorDistribution is §4.D.3: quantity + uniformity + connectivity
// of per-room door counts (corridors excluded as subjects, though an edge
// to a corridor still counts toward a room's incident door count).
func evaluateDoorDistribution(ctx *EvalContext) Result {
	rooms := ctx.Level.Rooms
	if len(rooms) == 0 {
		return degrade("no rooms")
	}

	counts := make([]float64, len(rooms))
	isolated := 0
	for i, r := range rooms {
		c := ctx.Graph.Degree(r.ID)
		counts[i] = float64(c)
		if c == 0 {
			isolated++
		}
	}

	m := mean(counts)
	var sq float64
	switch {
	case m >= 1.5 && m <= 3.0:
		sq = 1.0
	case m < 1.5:
		sq = m / 1.5
	default:
		sq = math.Max(0, 1-(m-3)/3)
	}

	var su float64
	if m == 0 {
		su = 0
	} else {
		cv2 := variance(counts) / (m * m)
		su = math.Max(0, 1-cv2)
	}

	sc := 1 - float64(isolated)/float64(len(rooms))

	score := 0.4*sq + 0.4*su + 0.2*sc

	return Result{
		Score: clamp01(score),
		Detail: Detail{
			"mean_door_count": m,
			"quantity_score":  sq,
			"uniformity_score": su,
			"connectivity_score": sc,
			"isolated_rooms":  isolated,
		},
	}
}
