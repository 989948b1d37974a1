package rules

import "github.com/dshills/dungeoncheck/pkg/graphidx"

func init() {
	Register(Rule{ID: "key_path_length", Category: Aesthetic, Evaluate: evaluateKeyPathLength})
}

// evaluateKeyPathLength is §4.D.5: the entrance-to-exit BFS distance as a
// fraction of the entrance's eccentricity.
func evaluateKeyPathLength(ctx *EvalContext) Result {
	start, ok := entranceID(ctx.Level)
	if !ok {
		return degrade("no entrance labelled")
	}
	end, ok := exitID(ctx.Level)
	if !ok {
		return degrade("no exit labelled")
	}

	l, reachable := ctx.Graph.Distance(start, end)
	diam, _ := ctx.Graph.Eccentricity(start)

	if diam <= 0 {
		return degrade("entrance has zero eccentricity")
	}
	if !reachable {
		return Result{Score: 0, Detail: Detail{"reason": "exit is unreachable from entrance", "diameter": diam}}
	}

	score := float64(l) / float64(diam)

	info, _ := ctx.Graph.BFS(start)
	path := reconstructPath(info, start, end)

	return Result{
		Score: clamp01(score),
		Detail: Detail{
			"path_length": l,
			"diameter":    diam,
			"path":        path,
		},
	}
}

func reconstructPath(info graphidx.BFSInfo, start, end string) []string {
	if start == end {
		return []string{start}
	}
	var rev []string
	cur := end
	for cur != start {
		rev = append(rev, cur)
		parent, ok := info.Parent[cur]
		if !ok {
			return nil
		}
		cur = parent
	}
	rev = append(rev, start)

	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return path
}
