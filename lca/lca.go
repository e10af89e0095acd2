// Package lca answers lowest-common-ancestor queries over a Tree: the
// deepest node that is an ancestor of both u and v. Table precomputes a
// binary-lifting ancestor table (2^k-th ancestor of every node, for every k
// up to log2(NumNodes)) in O(N log N), after which every query climbs at
// most O(log N) steps — saliency.Map issues one query per graph
// edge and needs this to stay sub-linear per edge.
package lca

import (
	"math/bits"

	"github.com/morphotree/morphotree/tree"
)

// Provider answers LCA queries. Table is the only implementation.
// saliency.Map does not take a Provider: it builds a Table itself.
type Provider interface {
	LCA(u, v int) int
}

// Table is a Provider backed by a binary-lifting ancestor table.
type Table struct {
	depth    []int
	ancestor [][]int
	logN     int
}

// NewTable builds the ancestor table for t. t.Parent(t.Root()) == t.Root()
// means climbing past the root is a no-op, so out-of-range lifts never need
// special-casing.
func NewTable(t *tree.Tree) *Table {
	n := t.NumNodes()
	root := t.Root()

	depth := make([]int, n)
	for _, i := range t.RootToLeaves() {
		if i == root {
			depth[i] = 0

			continue
		}
		depth[i] = depth[t.Parent(i)] + 1
	}

	logN := bits.Len(uint(n))
	ancestor := make([][]int, logN+1)
	ancestor[0] = append([]int(nil), t.ParentSlice()...)
	for k := 1; k <= logN; k++ {
		ancestor[k] = make([]int, n)
		for i := 0; i < n; i++ {
			ancestor[k][i] = ancestor[k-1][ancestor[k-1][i]]
		}
	}

	return &Table{depth: depth, ancestor: ancestor, logN: logN}
}

// LCA returns the lowest common ancestor of u and v.
func (tb *Table) LCA(u, v int) int {
	if tb.depth[u] < tb.depth[v] {
		u, v = v, u
	}

	diff := tb.depth[u] - tb.depth[v]
	for k := 0; diff > 0; k++ {
		if diff&1 == 1 {
			u = tb.ancestor[k][u]
		}
		diff >>= 1
	}

	if u == v {
		return u
	}

	for k := tb.logN; k >= 0; k-- {
		if tb.ancestor[k][u] != tb.ancestor[k][v] {
			u = tb.ancestor[k][u]
			v = tb.ancestor[k][v]
		}
	}

	return tb.ancestor[0][u]
}

// BatchLCA answers one LCA query per (u, v) pair in pairs, in order. It is
// a plain convenience loop over LCA, not a separate offline algorithm —
// callers issuing thousands of queries against the same Table get the same
// O(log N) cost per pair either way.
func BatchLCA(tb *Table, pairs [][2]int) []int {
	out := make([]int, len(pairs))
	for i, p := range pairs {
		out[i] = tb.LCA(p[0], p[1])
	}

	return out
}
