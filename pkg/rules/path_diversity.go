package rules

import (
	"sort"

	"github.com/dshills/dungeoncheck/pkg/graphidx"
	"github.com/dshills/dungeoncheck/pkg/rng"
)

const (
	pathDiversityDistanceCap = 6
	pathDiversityPairCap     = 500
)

func init() {
	Register(Rule{ID: "path_diversity", Category: Gameplay, Evaluate: evaluatePathDiversity})
}

type roomPair struct {
	a, b  string
	count int
}

// evaluatePathDiversity is §4.D.7: the average number of distinct
// shortest paths across room pairs within distance 6, Gaussian-mapped
// around a target of 2.0.
func evaluatePathDiversity(ctx *EvalContext) Result {
	rooms := ctx.Level.Rooms
	if len(rooms) < 2 {
		return degrade("fewer than two rooms")
	}

	ids := make([]string, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	sort.Strings(ids)

	anyPath := false
	var qualifying []roomPair
	for i, a := range ids {
		dist, count, ok := shortestPathCounts(ctx.Graph, a)
		if !ok {
			continue
		}
		for _, b := range ids[i+1:] {
			d, reached := dist[b]
			if !reached {
				continue
			}
			anyPath = true
			if d <= pathDiversityDistanceCap {
				qualifying = append(qualifying, roomPair{a: a, b: b, count: count[b]})
			}
		}
	}

	if !anyPath {
		return Result{Score: 0.3, Detail: Detail{"reason": "no room pair has any path"}}
	}

	sampled := qualifying
	sampledDown := false
	if len(qualifying) > pathDiversityPairCap {
		sampledDown = true
		r := rng.NewRNG(0, "path_diversity:"+ctx.Level.ID, nil)
		r.Shuffle(len(qualifying), func(i, j int) { qualifying[i], qualifying[j] = qualifying[j], qualifying[i] })
		sampled = qualifying[:pathDiversityPairCap]
	}

	counts := make([]float64, len(sampled))
	for i, p := range sampled {
		counts[i] = float64(p.count)
	}
	avg := mean(counts)
	score := gaussian(avg, 2.0, 1.0)

	return Result{
		Score: clamp01(score),
		Detail: Detail{
			"average_path_count": avg,
			"pairs_considered":   len(sampled),
			"sampled":            sampledDown,
		},
	}
}

// shortestPathCounts runs a BFS from start and, in a second pass ordered
// by increasing distance, counts the number of distinct shortest paths to
// every reachable node: count[start]=1, count[v] = Σ count[u] over
// neighbors u with dist[u] == dist[v]-1.
func shortestPathCounts(g *graphidx.Graph, start string) (dist map[string]int, count map[string]int, ok bool) {
	info, ok := g.BFS(start)
	if !ok {
		return nil, nil, false
	}

	byDistance := make([]string, 0, len(info.Order))
	byDistance = append(byDistance, info.Order...)
	sort.SliceStable(byDistance, func(i, j int) bool {
		return info.Depth[byDistance[i]] < info.Depth[byDistance[j]]
	})

	count = make(map[string]int, len(byDistance))
	count[start] = 1
	for _, v := range byDistance {
		if v == start {
			continue
		}
		total := 0
		for _, u := range g.Neighbors(v) {
			if d, ok := info.Depth[u]; ok && d == info.Depth[v]-1 {
				total += count[u]
			}
		}
		count[v] = total
	}

	return info.Depth, count, true
}
