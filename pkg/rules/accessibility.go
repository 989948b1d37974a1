package rules

import "sort"

func init() {
	Register(Rule{ID: "accessibility", Category: Structural, Evaluate: evaluateAccessibility})
}

// evaluateAccessibility is §4.D.1: BFS from the entrance, score the
// fraction of the graph it reaches.
func evaluateAccessibility(ctx *EvalContext) Result {
	if len(ctx.Graph.NodeIDs()) == 0 {
		return degrade("no nodes")
	}
	start, ok := entranceID(ctx.Level)
	if !ok {
		return degrade("no entrance labelled")
	}

	info, ok := ctx.Graph.BFS(start)
	if !ok {
		return degrade("entrance is not a graph node")
	}

	total := ctx.Graph.NodeCount()
	reach := float64(len(info.Visited)) / float64(total)

	var score float64
	switch {
	case reach >= 0.6 && reach <= 0.95:
		score = 1.0
	case reach < 0.6:
		score = 0.3 + 0.7*(reach/0.6)
	default:
		score = max(0.5, 1-(reach-0.95)/0.1)
	}

	var unreachable []string
	for _, id := range ctx.Graph.NodeIDs() {
		if !info.Visited[id] {
			unreachable = append(unreachable, id)
		}
	}
	sort.Strings(unreachable)

	componentSizes := make([]int, 0)
	for _, comp := range ctx.Graph.ConnectedComponents() {
		componentSizes = append(componentSizes, len(comp))
	}

	return Result{
		Score: clamp01(score),
		Detail: Detail{
			"reach":           reach,
			"unreachable_ids": unreachable,
			"component_sizes": componentSizes,
		},
	}
}
