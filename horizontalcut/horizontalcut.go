// Package horizontalcut enumerates every distinct horizontal cut of an
// altitude-weighted hierarchy: for a threshold lambda, the cut is the set
// of nodes n such that altitude(n) <= lambda < altitude(parent(n)) — the
// partition obtained by slicing the tree at height lambda. As lambda rises
// from 0 to the root's altitude, the cut only changes at the finitely many
// altitude values carried by internal nodes, so there are at most
// NumNodes-NumLeaves+1 distinct cuts; Explorer precomputes all of them
// once so later queries by index, by altitude or by region count are O(log
// NumCuts) instead of a fresh tree walk.
package horizontalcut

import (
	"cmp"
	"sort"

	"github.com/morphotree/morphotree/accumulator"
	"github.com/morphotree/morphotree/herrors"
	"github.com/morphotree/morphotree/tree"
)

// cutLevel is one precomputed horizontal cut: the nodes composing it (in
// the ORIGINAL, unsorted tree's indices), its altitude threshold, and its
// region count.
type cutLevel[W cmp.Ordered] struct {
	altitude   W
	nodes      []int
	numRegions int
}

// Explorer answers horizontal-cut queries over a fixed hierarchy. Cuts are
// ordered from finest (index 0, every leaf its own region) to coarsest
// (the last index, the whole tree as one region at the root's altitude).
type Explorer[W cmp.Ordered] struct {
	cuts []cutLevel[W]
}

// NewExplorer precomputes every horizontal cut of t under altitudes.
// altitudes must carry one entry per node, zero-valued at every leaf, and
// must be monotone non-decreasing from every node to its parent —
// NewExplorer returns herrors.ErrInvalidAltitudes otherwise.
func NewExplorer[W cmp.Ordered](t *tree.Tree, altitudes []W) (*Explorer[W], error) {
	const op = "horizontalcut.NewExplorer"

	if len(altitudes) != t.NumNodes() {
		return nil, herrors.Wrap(op, herrors.ErrShapeMismatch)
	}

	var zero W
	for i := 0; i < t.NumLeaves(); i++ {
		if altitudes[i] != zero {
			return nil, herrors.Wrap(op, herrors.ErrInvalidAltitudes)
		}
	}

	maxAltChildren, err := accumulator.AccumulateParallel(t, altitudes, accumulator.Max[W]())
	if err != nil {
		return nil, herrors.Wrap(op, err)
	}
	for _, i := range t.InternalNodesAscending() {
		if altitudes[i] < maxAltChildren[i] {
			return nil, herrors.Wrap(op, herrors.ErrInvalidAltitudes)
		}
	}

	sortedTree, nodeMap, sortedAltitudes, err := sortByAltitude(t, altitudes)
	if err != nil {
		return nil, herrors.Wrap(op, err)
	}

	return &Explorer[W]{cuts: sweepCuts(sortedTree, sortedAltitudes, nodeMap, zero)}, nil
}

// sweepCuts walks the altitude-sorted tree from leaves to root, maintaining
// which nodes are currently "alive" — representatives of the cut at the
// threshold processed so far. Every internal node absorbs its (alive)
// children and becomes alive itself the instant the sweep reaches its
// altitude; nodes sharing an identical altitude are absorbed together
// before a cut is recorded, so ties never produce a spurious extra cut.
func sweepCuts[W cmp.Ordered](sortedTree *tree.Tree, sortedAltitudes []W, nodeMap []int, zeroAltitude W) []cutLevel[W] {
	n := sortedTree.NumNodes()
	numLeaves := sortedTree.NumLeaves()

	alive := make([]bool, n)
	for i := 0; i < numLeaves; i++ {
		alive[i] = true
	}

	cuts := []cutLevel[W]{snapshot(alive, nodeMap, zeroAltitude)}

	for i := numLeaves; i < n; {
		level := sortedAltitudes[i]
		for i < n && sortedAltitudes[i] == level {
			for _, c := range sortedTree.Children(i) {
				if alive[c] {
					alive[c] = false
				}
			}
			alive[i] = true
			i++
		}
		cuts = append(cuts, snapshot(alive, nodeMap, level))
	}

	return cuts
}

func snapshot[W cmp.Ordered](alive []bool, nodeMap []int, altitude W) cutLevel[W] {
	nodes := make([]int, 0, len(alive))
	for i, a := range alive {
		if a {
			nodes = append(nodes, nodeMap[i])
		}
	}
	sort.Ints(nodes)

	return cutLevel[W]{altitude: altitude, nodes: nodes, numRegions: len(nodes)}
}

// NumCuts returns the number of distinct horizontal cuts.
func (e *Explorer[W]) NumCuts() int { return len(e.cuts) }

// NumRegionsCut returns the region count of cut i.
func (e *Explorer[W]) NumRegionsCut(i int) (int, error) {
	if i < 0 || i >= len(e.cuts) {
		return 0, herrors.Wrap("horizontalcut.Explorer.NumRegionsCut", herrors.ErrQueryOutOfRange)
	}

	return e.cuts[i].numRegions, nil
}

// AltitudeCut returns the altitude threshold of cut i.
func (e *Explorer[W]) AltitudeCut(i int) (W, error) {
	if i < 0 || i >= len(e.cuts) {
		var zero W

		return zero, herrors.Wrap("horizontalcut.Explorer.AltitudeCut", herrors.ErrQueryOutOfRange)
	}

	return e.cuts[i].altitude, nil
}

// FromIndex returns the node set and altitude of cut i, in the original
// (unsorted) tree's node indices, ascending.
func (e *Explorer[W]) FromIndex(i int) ([]int, W, error) {
	if i < 0 || i >= len(e.cuts) {
		var zero W

		return nil, zero, herrors.Wrap("horizontalcut.Explorer.FromIndex", herrors.ErrQueryOutOfRange)
	}

	nodes := make([]int, len(e.cuts[i].nodes))
	copy(nodes, e.cuts[i].nodes)

	return nodes, e.cuts[i].altitude, nil
}

// FromAltitude returns the coarsest cut whose altitude does not exceed
// threshold — the cut in effect at that exact threshold value.
func (e *Explorer[W]) FromAltitude(threshold W) ([]int, W, error) {
	idx := sort.Search(len(e.cuts), func(k int) bool { return e.cuts[k].altitude > threshold }) - 1
	if idx < 0 {
		var zero W

		return nil, zero, herrors.Wrap("horizontalcut.Explorer.FromAltitude", herrors.ErrQueryOutOfRange)
	}

	return e.FromIndex(idx)
}

// FromNumRegions returns the finest cut with at most numRegions regions —
// region counts strictly decrease as the cut index rises, so this is the
// first cut whose region count drops to or below the target.
func (e *Explorer[W]) FromNumRegions(numRegions int) ([]int, W, error) {
	idx := sort.Search(len(e.cuts), func(k int) bool { return e.cuts[k].numRegions <= numRegions })
	if idx == len(e.cuts) {
		var zero W

		return nil, zero, herrors.Wrap("horizontalcut.Explorer.FromNumRegions", herrors.ErrQueryOutOfRange)
	}

	return e.FromIndex(idx)
}
