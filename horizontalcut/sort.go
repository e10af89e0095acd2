package horizontalcut

import (
	"cmp"
	"sort"

	"github.com/morphotree/morphotree/herrors"
	"github.com/morphotree/morphotree/tree"
)

// sortByAltitude reorders t's internal nodes by ascending altitude, leaving
// leaves at their original identity positions [0, NumLeaves). Internal
// nodes tied on altitude keep their original relative order (a stable
// sort), which is what makes the result a valid Tree: for any non-root node
// i, either altitude(parent(i)) > altitude(i) — so the sort alone pushes
// the parent to a higher new index — or the two altitudes are equal, in
// which case the parent already had a strictly higher ORIGINAL index (the
// source tree's own invariant), and the stable sort preserves that
// ordering. Either way newIndex(parent(i)) > newIndex(i) holds, exactly
// the invariant tree.New requires.
func sortByAltitude[W cmp.Ordered](t *tree.Tree, altitudes []W) (sortedTree *tree.Tree, nodeMap []int, sortedAltitudes []W, err error) {
	numLeaves := t.NumLeaves()
	internal := t.InternalNodesAscending()

	order := make([]int, len(internal))
	copy(order, internal)
	sort.SliceStable(order, func(i, j int) bool {
		return altitudes[order[i]] < altitudes[order[j]]
	})

	n := t.NumNodes()
	nodeMap = make([]int, n)   // new index -> old index
	oldToNew := make([]int, n) // old index -> new index
	for i := 0; i < numLeaves; i++ {
		nodeMap[i] = i
		oldToNew[i] = i
	}
	for newIdx, oldIdx := range order {
		newNodeIdx := numLeaves + newIdx
		nodeMap[newNodeIdx] = oldIdx
		oldToNew[oldIdx] = newNodeIdx
	}

	root := t.Root()
	newParent := make([]int, n)
	sortedAltitudes = make([]W, n)
	for newIdx, oldIdx := range nodeMap {
		sortedAltitudes[newIdx] = altitudes[oldIdx]
		if oldIdx == root {
			newParent[newIdx] = newIdx
		} else {
			newParent[newIdx] = oldToNew[t.Parent(oldIdx)]
		}
	}

	sortedTree, err = tree.New(newParent, numLeaves)
	if err != nil {
		return nil, nil, nil, herrors.Wrap("horizontalcut.sortByAltitude", err)
	}

	return sortedTree, nodeMap, sortedAltitudes, nil
}
