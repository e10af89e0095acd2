// Package qfz builds the quasi-flat-zone hierarchy of a weighted graph: the
// canonical Binary Partition Tree (see bpt), collapsed wherever a node's
// altitude equals its parent's. Every remaining altitude threshold then
// corresponds to a distinct quasi-flat-zone partition of the graph's
// vertices — the connected components of the graph restricted to edges
// at or below that threshold.
package qfz

import (
	"cmp"

	"github.com/morphotree/morphotree/accumulator"
	"github.com/morphotree/morphotree/bpt"
	"github.com/morphotree/morphotree/herrors"
	"github.com/morphotree/morphotree/hgraph"
	"github.com/morphotree/morphotree/simplify"
	"github.com/morphotree/morphotree/tree"
)

// Result is a quasi-flat-zone hierarchy: a simplified tree plus the
// altitude carried by each of its (renumbered) nodes.
type Result[W cmp.Ordered] struct {
	Tree      *tree.Tree
	Altitudes []W
}

// QuasiFlatZoneHierarchy builds the canonical BPT of graph under weights,
// then collapses every node whose altitude equals its parent's — the same
// error conditions as bpt.BPTCanonical apply, since this delegates to it
// directly.
func QuasiFlatZoneHierarchy[W cmp.Ordered](graph hgraph.Provider, weights []W) (*Result[W], error) {
	built, err := bpt.BPTCanonical(graph, weights)
	if err != nil {
		return nil, herrors.Wrap("qfz.QuasiFlatZoneHierarchy", err)
	}

	altitudeParent, err := accumulator.PropagateParallel(built.Tree, built.Altitudes)
	if err != nil {
		return nil, herrors.Wrap("qfz.QuasiFlatZoneHierarchy", err)
	}

	root := built.Tree.Root()
	sameAsParent := func(i int) bool {
		return i != root && built.Altitudes[i] == altitudeParent[i]
	}

	simplified, err := simplify.SimplifyTree(built.Tree, sameAsParent, simplify.ModePreserveLeaves)
	if err != nil {
		return nil, herrors.Wrap("qfz.QuasiFlatZoneHierarchy", err)
	}

	altitudes := make([]W, len(simplified.NodeMap))
	for newIdx, oldIdx := range simplified.NodeMap {
		altitudes[newIdx] = built.Altitudes[oldIdx]
	}

	return &Result[W]{Tree: simplified.Tree, Altitudes: altitudes}, nil
}
