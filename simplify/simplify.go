// Package simplify removes predicate-selected nodes from a tree, splicing
// each removed node's children onto its nearest surviving ancestor. It
// implements both of Higra's simplify_tree behaviors:
//
//   - ModePreserveLeaves never evaluates the predicate against a leaf and
//     never removes one; the leaf set — and therefore NumLeaves — is
//     unchanged. The tree's own quasi-flat-zone construction uses this mode.
//   - ModeProcessLeaves evaluates the predicate against every node,
//     including leaves. Removing a leaf's siblings can leave some
//     originally-internal node with no surviving children at all, which
//     promotes it to a leaf in the simplified tree — the "leaves-absorbing"
//     behavior condensed-tree style simplification (see hdbscan's
//     SimplifyHierarchy) relies on. Because the resulting leaf set can no
//     longer be read off the old index range directly, the new tree is
//     built by bucketing survivors into "ends up a leaf" / "ends up
//     internal" and renumbering each bucket by ascending original index,
//     rather than by a straight filter-and-shift.
//
// The root is never removed regardless of what the predicate returns for
// it — simplifying the root away would leave no tree at all, so New's
// single-root invariant would have nothing to hold.
package simplify

import (
	"github.com/morphotree/morphotree/herrors"
	"github.com/morphotree/morphotree/tree"
)

// Mode selects which nodes the deletion predicate is allowed to touch.
type Mode int

const (
	// ModePreserveLeaves never deletes a leaf, regardless of predicate.
	ModePreserveLeaves Mode = iota
	// ModeProcessLeaves allows leaves to be deleted, which can promote
	// surviving internal nodes to leaf status.
	ModeProcessLeaves
)

// Result is a simplified tree together with the map back to the original.
type Result struct {
	Tree *tree.Tree
	// NodeMap maps a new node index to the index it had before
	// simplification: NodeMap[newIndex] == oldIndex.
	NodeMap []int
}

// SimplifyTree removes every node i for which deleted(i) holds — subject to
// mode's restriction on which nodes are eligible and to the root always
// surviving — and reattaches each survivor's children to its nearest
// surviving ancestor.
func SimplifyTree(t *tree.Tree, deleted func(node int) bool, mode Mode) (*Result, error) {
	n := t.NumNodes()
	root := t.Root()

	// ownDeleted[i] is the predicate's verdict on i itself, with
	// ModePreserveLeaves's blanket leaf exemption and the root exemption
	// folded in so the rest of the algorithm never special-cases them again.
	ownDeleted := make([]bool, n)
	for i := 0; i < root; i++ {
		if mode == ModePreserveLeaves && t.IsLeaf(i) {
			continue
		}
		ownDeleted[i] = deleted(i)
	}

	// removed[i] holds when i's entire branch - i and every descendant - is
	// predicate-matched, so the branch would vanish with no surviving
	// attachment point of its own. Computed ascending since every child has
	// a smaller index than its parent.
	removed := make([]bool, n)
	for i := 0; i < root; i++ {
		branchGone := ownDeleted[i]
		for _, c := range t.Children(i) {
			branchGone = branchGone && removed[c]
		}
		removed[i] = branchGone
	}

	keep := make([]bool, n)
	keep[root] = true
	for i := 0; i < root; i++ {
		switch {
		case mode == ModePreserveLeaves && t.IsLeaf(i):
			keep[i] = true
		case removed[i] && !removed[t.Parent(i)] && !t.IsLeaf(i):
			// i is internal and its whole branch is gone but its parent's is
			// not: i is the frontier node a surviving ancestor needs to attach
			// to, so it survives as a new leaf regardless of its own predicate
			// verdict. A deleted original leaf has no such role and is dropped.
			keep[i] = true
		case removed[i]:
			// i sits strictly inside a larger removed branch; its frontier
			// ancestor (handled by the case above) already takes its place.
			keep[i] = false
		default:
			keep[i] = !ownDeleted[i]
		}
	}

	// nearestKeptAncestor[i] is the lowest surviving node strictly above i.
	// It is computed root-to-leaves, since node i's answer depends on its
	// parent's answer, which has a larger index and so is resolved first.
	nearestKeptAncestor := make([]int, n)
	nearestKeptAncestor[root] = root
	for i := root - 1; i >= 0; i-- {
		p := t.Parent(i)
		if keep[p] {
			nearestKeptAncestor[i] = p
		} else {
			nearestKeptAncestor[i] = nearestKeptAncestor[p]
		}
	}

	childCount := make([]int, n)
	for i := 0; i < root; i++ {
		if keep[i] {
			childCount[nearestKeptAncestor[i]]++
		}
	}

	nodeMap := make([]int, 0, n)
	var internalOld []int
	for i := 0; i < n; i++ {
		if !keep[i] {
			continue
		}
		if childCount[i] == 0 {
			nodeMap = append(nodeMap, i)
		} else {
			internalOld = append(internalOld, i)
		}
	}
	numLeaves := len(nodeMap)
	nodeMap = append(nodeMap, internalOld...)

	oldToNew := make(map[int]int, len(nodeMap))
	for newIdx, oldIdx := range nodeMap {
		oldToNew[oldIdx] = newIdx
	}

	newParent := make([]int, len(nodeMap))
	for newIdx, oldIdx := range nodeMap {
		if oldIdx == root {
			newParent[newIdx] = newIdx
			continue
		}
		newParent[newIdx] = oldToNew[nearestKeptAncestor[oldIdx]]
	}

	newTree, err := tree.New(newParent, numLeaves)
	if err != nil {
		return nil, herrors.Wrap("simplify.SimplifyTree", err)
	}

	return &Result{Tree: newTree, NodeMap: nodeMap}, nil
}
