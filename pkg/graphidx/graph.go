package graphidx

import (
	"sort"

	lvgraph "github.com/katalvlaran/lvlath/graph"

	"github.com/dshills/dungeoncheck/pkg/model"
)

// Graph is an undirected multigraph over one level's rooms and corridors,
// with duplicate connection pairs collapsed (I2). It is built once per
// level and shared read-only across every rule that needs graph shape.
type Graph struct {
	inner    *lvgraph.Graph
	order    []string            // node ids, document order (rooms then corridors)
	kind     map[string]model.NodeKind
	edgeKeys map[[2]string]bool // deduped undirected edge set
}

// Build constructs a Graph from a level: every room and corridor becomes a
// vertex, and every connection becomes an edge between its two endpoints,
// collapsing duplicates (I2: "duplicate edges are collapsed").
func Build(lvl *model.Level) *Graph {
	g := &Graph{
		inner:    lvgraph.NewGraph(false, false),
		kind:     make(map[string]model.NodeKind),
		edgeKeys: make(map[[2]string]bool),
	}

	for _, n := range lvl.Nodes() {
		g.inner.AddVertex(&lvgraph.Vertex{ID: n.ID})
		g.kind[n.ID] = n.Kind
		g.order = append(g.order, n.ID)
	}

	for _, conn := range lvl.Connections {
		a, b := conn.Endpoints()
		key := [2]string{a, b}
		if g.edgeKeys[key] {
			continue
		}
		g.edgeKeys[key] = true
		g.inner.AddEdge(conn.FromRoom, conn.ToRoom, 1)
	}

	return g
}

// NodeIDs returns every node id in stable document order (rooms, then
// corridors), used wherever a rule must break ties deterministically.
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Kind reports whether id is a room or a corridor node.
func (g *Graph) Kind(id string) (model.NodeKind, bool) {
	k, ok := g.kind[id]
	return k, ok
}

// NodeCount returns the number of vertices (|V|).
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of distinct (deduped) undirected edges (|E|).
func (g *Graph) EdgeCount() int { return len(g.edgeKeys) }

// EdgePairs returns every deduped undirected edge as an (a, b) pair with
// a < b, sorted for determinism.
func (g *Graph) EdgePairs() [][2]string {
	out := make([][2]string, 0, len(g.edgeKeys))
	for k := range g.edgeKeys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// Degree returns the number of unique neighbors of id.
func (g *Graph) Degree(id string) int {
	return len(g.inner.Neighbors(id))
}

// Degrees returns every node's degree, keyed by id.
func (g *Graph) Degrees() map[string]int {
	out := make(map[string]int, len(g.order))
	for _, id := range g.order {
		out[id] = g.Degree(id)
	}
	return out
}

// Neighbors returns the unique neighbor ids of id.
func (g *Graph) Neighbors(id string) []string {
	vs := g.inner.Neighbors(id)
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	sort.Strings(out)
	return out
}

// BFSInfo is the subset of a BFS traversal every rule actually consumes:
// per-node distance from the start, and visitation order.
type BFSInfo struct {
	Start   string
	Depth   map[string]int
	Parent  map[string]string
	Order   []string
	Visited map[string]bool
}

// BFS runs a breadth-first traversal from start. Returns ok=false if start
// is not a node in the graph.
func (g *Graph) BFS(start string) (BFSInfo, bool) {
	res, err := g.inner.BFS(start, nil)
	if err != nil {
		return BFSInfo{}, false
	}
	order := make([]string, 0, len(res.Order))
	for _, v := range res.Order {
		order = append(order, v.ID)
	}
	return BFSInfo{Start: start, Depth: res.Depth, Parent: res.Parent, Order: order, Visited: res.Visited}, true
}

// Reachable returns the set of node ids reachable from start (including
// start itself).
func (g *Graph) Reachable(start string) map[string]bool {
	info, ok := g.BFS(start)
	if !ok {
		return map[string]bool{}
	}
	return info.Visited
}

// Distance returns the shortest-path hop distance between a and b, and
// whether b is reachable from a at all.
func (g *Graph) Distance(a, b string) (int, bool) {
	info, ok := g.BFS(a)
	if !ok {
		return 0, false
	}
	d, ok := info.Depth[b]
	return d, ok
}

// ConnectedComponents partitions the graph's nodes into connected
// components. Each component's members are sorted by id, and components
// themselves are ordered by their earliest member in document order,
// so the result is deterministic regardless of map iteration.
func (g *Graph) ConnectedComponents() [][]string {
	seen := make(map[string]bool, len(g.order))
	var comps [][]string

	for _, id := range g.order {
		if seen[id] {
			continue
		}
		info, _ := g.BFS(id)
		members := make([]string, 0, len(info.Visited))
		for m := range info.Visited {
			members = append(members, m)
			seen[m] = true
		}
		sort.Strings(members)
		comps = append(comps, members)
	}
	return comps
}

// Eccentricity returns the maximum BFS distance from start to any node
// reachable from it, along with the id of the farthest node. Ties break on
// the lexicographically smallest id (candidates are scanned in
// sort.Strings order).
func (g *Graph) Eccentricity(start string) (dist int, farthest string) {
	info, ok := g.BFS(start)
	if !ok {
		return 0, ""
	}
	ids := make([]string, 0, len(info.Depth))
	for id := range info.Depth {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if d := info.Depth[id]; d > dist {
			dist = d
			farthest = id
		}
	}
	return dist, farthest
}

// CyclomaticNumber computes μ = E - V + C, the number of independent
// cycles in the graph (§4.D.6 Loop Ratio's numerator).
func (g *Graph) CyclomaticNumber() int {
	return g.EdgeCount() - g.NodeCount() + len(g.ConnectedComponents())
}
