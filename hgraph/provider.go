// Package hgraph defines the minimal graph contract morphotree's hierarchy
// builders consume. It never stores or owns a graph itself — it is a
// read-only view over whatever representation the caller already has,
// implemented here by EdgeList (a ready-to-use in-memory adjacency), and in
// the hgraph/coreadapter and hgraph/gonumadapter sub-packages by snapshots
// of coreadapter's string-keyed NamedGraph and of gonum's graph types.
package hgraph

// Provider is the graph interface bpt, simplify's callers, and saliency
// consume. Implementations need not be goroutine-safe; morphotree never
// calls Provider methods concurrently.
//
//   - NumVertices returns n; vertices are indexed [0, n).
//   - NumEdges returns m; edges are indexed [0, m).
//   - EdgeFromIndex(i) returns the endpoints of edge i. Self-loops (u==v)
//     and parallel edges are tolerated — union-find naturally discards them
//     during BPT construction — but callers SHOULD avoid them when they
//     have a choice, since they never contribute to the result.
type Provider interface {
	NumVertices() int
	NumEdges() int
	EdgeFromIndex(i int) (u, v int)
}

// EdgeIterable is an optional capability: a Provider MAY additionally
// expose its edges in index order without per-call indexing overhead.
// saliency.Map does not use it; it reads edges through EdgeFromIndex.
type EdgeIterable interface {
	Provider
	Edges(yield func(i, u, v int) bool)
}

// EdgeList is the simplest possible Provider: a flat slice of (u, v) pairs
// over a known vertex count. It owns its data; callers may build one
// directly or via the builder package's topology constructors.
type EdgeList struct {
	n     int
	edges [][2]int
}

// NewEdgeList returns an EdgeList over n vertices with no edges yet.
func NewEdgeList(n int) *EdgeList {
	return &EdgeList{n: n}
}

// AddEdge appends edge (u, v) and returns its index. u and v are not
// validated against n here — validation is the consuming algorithm's job,
// matching how core.Graph.AddEdge defers vertex-existence checks to the
// point where the edge would corrupt some invariant if skipped.
func (g *EdgeList) AddEdge(u, v int) int {
	g.edges = append(g.edges, [2]int{u, v})

	return len(g.edges) - 1
}

// NumVertices implements Provider.
func (g *EdgeList) NumVertices() int { return g.n }

// NumEdges implements Provider.
func (g *EdgeList) NumEdges() int { return len(g.edges) }

// EdgeFromIndex implements Provider.
func (g *EdgeList) EdgeFromIndex(i int) (u, v int) {
	e := g.edges[i]

	return e[0], e[1]
}

// Edges implements EdgeIterable.
func (g *EdgeList) Edges(yield func(i, u, v int) bool) {
	for i, e := range g.edges {
		if !yield(i, e[0], e[1]) {
			return
		}
	}
}
