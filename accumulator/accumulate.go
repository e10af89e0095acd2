package accumulator

import (
	"github.com/morphotree/morphotree/herrors"
	"github.com/morphotree/morphotree/tree"
	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the node-count size below which spinning up
// goroutines costs more than it saves.
const parallelThreshold = 4096

// AccumulateParallel computes, for every node, the reduction of its direct
// children's nodeWeights entries — a one-hop lookup, not a recursive fold:
// a node with an internal child reads that child's OWN nodeWeights entry,
// never a previously-accumulated value. A leaf has no children to reduce
// over, so its output is its own nodeWeights entry unchanged. Because every
// node's output depends only on the untouched input array, every node can
// be computed independently, and is, once the tree is large enough to be
// worth splitting across goroutines.
func AccumulateParallel[W any](t *tree.Tree, nodeWeights []W, reduce Reducer[W]) ([]W, error) {
	if len(nodeWeights) != t.NumNodes() {
		return nil, herrors.Wrap("accumulator.AccumulateParallel", herrors.ErrShapeMismatch)
	}

	out := make([]W, t.NumNodes())
	internal := t.InternalNodesAscending()
	copy(out, nodeWeights)

	if len(internal) < parallelThreshold {
		for _, i := range internal {
			out[i] = reduceChildren(t, nodeWeights, i, reduce)
		}

		return out, nil
	}

	g := new(errgroup.Group)
	for _, i := range internal {
		i := i
		g.Go(func() error {
			out[i] = reduceChildren(t, nodeWeights, i, reduce)

			return nil
		})
	}
	_ = g.Wait() // reduceChildren never errors

	return out, nil
}

// AccumulateSequential performs a recursive bottom-up fold: output(leaf) =
// leafData(leaf); output(i) = reduce(output(children(i))) for every other
// node, using the PREVIOUSLY COMPUTED output of i's children rather than
// their raw input — e.g. with Sum this computes each node's subtree size
// (or subtree weight total). Every node's value cascades from its
// children's already-folded values, so nodes must be visited leaves-first;
// unlike AccumulateParallel this is not embarrassingly parallel, and
// is computed in a single ascending pass.
func AccumulateSequential[W any](t *tree.Tree, leafData []W, reduce Reducer[W]) ([]W, error) {
	if len(leafData) != t.NumLeaves() {
		return nil, herrors.Wrap("accumulator.AccumulateSequential", herrors.ErrShapeMismatch)
	}

	out := make([]W, t.NumNodes())
	copy(out, leafData)
	for _, i := range t.InternalNodesAscending() {
		out[i] = reduceChildren(t, out, i, reduce)
	}

	return out, nil
}

// AccumulateAndCombineSequential is AccumulateSequential's result folded
// together with the node's own nodeWeights entry at every internal node:
// output(leaf) = leafData(leaf); output(i) = reduce(nodeWeights(i),
// reduce(output(children(i)))) — e.g. subtree weight sum INCLUDING each
// node's own weight, generalizing Higra's accumulate_and_add_sequential,
// accumulate_and_min_sequential and accumulate_and_max_sequential to any
// Reducer.
func AccumulateAndCombineSequential[W any](t *tree.Tree, leafData, nodeWeights []W, reduce Reducer[W]) ([]W, error) {
	if len(leafData) != t.NumLeaves() {
		return nil, herrors.Wrap("accumulator.AccumulateAndCombineSequential", herrors.ErrShapeMismatch)
	}
	if len(nodeWeights) != t.NumNodes() {
		return nil, herrors.Wrap("accumulator.AccumulateAndCombineSequential", herrors.ErrShapeMismatch)
	}

	out := make([]W, t.NumNodes())
	copy(out, leafData)
	for _, i := range t.InternalNodesAscending() {
		out[i] = reduce(nodeWeights[i], reduceChildren(t, out, i, reduce))
	}

	return out, nil
}
