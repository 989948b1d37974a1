// Package graphidx builds the shared undirected multigraph that every rule
// in pkg/rules runs against: one node per room/corridor, one deduped edge
// per distinct connection pair. It wraps github.com/katalvlaran/lvlath's
// graph.Graph rather than re-deriving adjacency-list bookkeeping, and adds
// the handful of whole-graph queries (components, eccentricity, cyclomatic
// number) lvlath doesn't ship itself.
package graphidx
