// Package saliency assigns every edge of the original graph the altitude
// at which its two endpoints first belong to the same region: the altitude
// of their lowest common ancestor in a hierarchy built over that graph.
// The result is a saliency map — one weight per graph edge, monotone with
// the hierarchy's own altitudes, that recovers the hierarchy's contour
// strength directly in the graph's own edge space.
package saliency

import (
	"cmp"

	"github.com/morphotree/morphotree/herrors"
	"github.com/morphotree/morphotree/hgraph"
	"github.com/morphotree/morphotree/lca"
	"github.com/morphotree/morphotree/tree"
)

// Map computes the saliency map of graph under a hierarchy (t, altitudes)
// built over it: for every edge (u, v) of graph, its weight is
// altitudes[LCA(u, v)]. t must have exactly graph.NumVertices() leaves,
// one per graph vertex, in matching index order — the same convention
// bpt.BPTCanonical produces its result in.
func Map[W cmp.Ordered](graph hgraph.Provider, t *tree.Tree, altitudes []W) ([]W, error) {
	const op = "saliency.Map"

	if t.NumLeaves() != graph.NumVertices() {
		return nil, herrors.Wrap(op, herrors.ErrShapeMismatch)
	}
	if len(altitudes) != t.NumNodes() {
		return nil, herrors.Wrap(op, herrors.ErrShapeMismatch)
	}

	table := lca.NewTable(t)
	out := make([]W, graph.NumEdges())
	for i := 0; i < graph.NumEdges(); i++ {
		u, v := graph.EdgeFromIndex(i)
		out[i] = altitudes[table.LCA(u, v)]
	}

	return out, nil
}
