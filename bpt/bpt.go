// Package bpt builds the canonical Binary Partition Tree of a weighted
// graph: run Kruskal's algorithm over its edges, but instead of merely
// collecting the minimum spanning tree, create one new tree node per
// merge, labeled with the merging edge's weight (its altitude), and wire
// the two just-merged components' current representative nodes as its
// children. The result is a strict binary hierarchy over the graph's
// vertices whose node altitudes are non-decreasing from leaves to root
// along every branch — exactly what prim_kruskal.Kruskal computes for its
// flat edge list, generalized to also record the merge structure.
package bpt

import (
	"cmp"
	"sort"

	"github.com/morphotree/morphotree/herrors"
	"github.com/morphotree/morphotree/hgraph"
	"github.com/morphotree/morphotree/tree"
	"github.com/morphotree/morphotree/unionfind"
)

// Result is the outcome of a canonical BPT construction.
type Result[W cmp.Ordered] struct {
	// Tree is the binary partition tree: NumVertices leaves, NumVertices-1
	// internal nodes, one per accepted merge.
	Tree *tree.Tree
	// Altitudes holds, for every node, the weight of the edge that created
	// it; leaves carry the zero value of W and are never read by callers
	// that only care about merge altitudes.
	Altitudes []W
	// MST is the accepted edges in vertex-index space, in merge order.
	MST *hgraph.EdgeList
	// MSTEdgeMap maps MST edge index -> original graph edge index, so a
	// caller can recover the weight, or any side data keyed by edge index,
	// of each edge actually used.
	MSTEdgeMap []int
}

// BPTCanonical builds the canonical Binary Partition Tree of graph under
// weights, one entry per graph.EdgeFromIndex order. It returns
// herrors.ErrShapeMismatch if len(weights) != graph.NumEdges(),
// herrors.ErrInvalidWeights if any weight fails self-equality (a NaN), and
// herrors.ErrNotConnected if fewer than NumVertices()-1 edges can be
// accepted.
//
// Ties are broken by original edge index: BPTCanonical sorts edges by
// (weight, index) using a stable sort, so two calls over the same graph and
// weights always produce the same tree.
func BPTCanonical[W cmp.Ordered](graph hgraph.Provider, weights []W) (*Result[W], error) {
	n := graph.NumVertices()
	m := graph.NumEdges()
	if len(weights) != m {
		return nil, herrors.Wrap("bpt.BPTCanonical", herrors.ErrShapeMismatch)
	}
	for _, w := range weights {
		if w != w { // NaN
			return nil, herrors.Wrap("bpt.BPTCanonical", herrors.ErrInvalidWeights)
		}
	}
	if n == 0 {
		return nil, herrors.Wrap("bpt.BPTCanonical", herrors.ErrNotConnected)
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return weights[order[i]] < weights[order[j]]
	})

	totalNodes := 2*n - 1
	parent := make([]int, totalNodes)
	altitudes := make([]W, totalNodes)
	uf := unionfind.New(n)
	repr := make([]int, n)
	for i := range repr {
		repr[i] = i
	}

	mst := hgraph.NewEdgeList(n)
	mstEdgeMap := make([]int, 0, n-1)
	nextNode := n
	for _, idx := range order {
		if len(mstEdgeMap) == n-1 {
			break
		}
		u, v := graph.EdgeFromIndex(idx)
		if u == v {
			continue
		}
		ru, rv := uf.Find(u), uf.Find(v)
		if ru == rv {
			continue
		}

		newNode := nextNode
		nextNode++
		parent[repr[ru]] = newNode
		parent[repr[rv]] = newNode
		altitudes[newNode] = weights[idx]

		merged := uf.Link(ru, rv)
		repr[merged] = newNode

		mst.AddEdge(u, v)
		mstEdgeMap = append(mstEdgeMap, idx)
	}

	if len(mstEdgeMap) < n-1 {
		return nil, herrors.Wrap("bpt.BPTCanonical", herrors.ErrNotConnected)
	}

	root := totalNodes - 1
	parent[root] = root

	t, err := tree.New(parent, n)
	if err != nil {
		return nil, herrors.Wrap("bpt.BPTCanonical", err)
	}

	return &Result[W]{
		Tree:       t,
		Altitudes:  altitudes,
		MST:        mst,
		MSTEdgeMap: mstEdgeMap,
	}, nil
}
