package accumulator

import (
	"runtime"

	"github.com/morphotree/morphotree/herrors"
	"github.com/morphotree/morphotree/tree"
	"golang.org/x/sync/errgroup"
)

// PropagateParallel copies each non-root node's value from its parent's
// ORIGINAL nodeWeights entry — not from a value this call itself computed —
// so every output entry is independent of every other. The whole operation
// is embarrassingly parallel and is split across goroutines once the tree
// is large enough for that to pay for itself.
func PropagateParallel[W any](t *tree.Tree, nodeWeights []W) ([]W, error) {
	if len(nodeWeights) != t.NumNodes() {
		return nil, herrors.Wrap("accumulator.PropagateParallel", herrors.ErrShapeMismatch)
	}

	out := make([]W, t.NumNodes())
	root := t.Root()
	out[root] = nodeWeights[root]

	if root < parallelThreshold {
		for i := 0; i < root; i++ {
			out[i] = nodeWeights[t.Parent(i)]
		}

		return out, nil
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (root + workers - 1) / workers
	g := new(errgroup.Group)
	for start := 0; start < root; start += chunk {
		start := start
		end := start + chunk
		if end > root {
			end = root
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = nodeWeights[t.Parent(i)]
			}

			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}

// PropagateSequential walks from the root down to the leaves. At each node
// it either inherits its parent's ALREADY-PROPAGATED output (when condition
// holds for that node) or keeps its own nodeWeights entry. Because a node's
// output can depend on the previous step's output rather than the original
// input, the walk must run in strict root-to-leaf order — it cannot be
// parallelized.
func PropagateSequential[W any](t *tree.Tree, nodeWeights []W, condition func(node int) bool) ([]W, error) {
	if len(nodeWeights) != t.NumNodes() {
		return nil, herrors.Wrap("accumulator.PropagateSequential", herrors.ErrShapeMismatch)
	}

	out := make([]W, t.NumNodes())
	root := t.Root()
	out[root] = nodeWeights[root]
	for i := root - 1; i >= 0; i-- {
		if condition(i) {
			out[i] = out[t.Parent(i)]
		} else {
			out[i] = nodeWeights[i]
		}
	}

	return out, nil
}

// PropagateSequentialAndAccumulate walks from the root down to the leaves,
// combining each node's own nodeWeights entry with its parent's
// ALREADY-COMPUTED output: output(root) = nodeWeights(root); output(i) =
// reduce(nodeWeights(i), output(parent(i))). A single downward pass, not a
// propagate followed by a separate accumulate.
func PropagateSequentialAndAccumulate[W any](t *tree.Tree, nodeWeights []W, reduce Reducer[W]) ([]W, error) {
	if len(nodeWeights) != t.NumNodes() {
		return nil, herrors.Wrap("accumulator.PropagateSequentialAndAccumulate", herrors.ErrShapeMismatch)
	}

	out := make([]W, t.NumNodes())
	root := t.Root()
	out[root] = nodeWeights[root]
	for i := root - 1; i >= 0; i-- {
		out[i] = reduce(nodeWeights[i], out[t.Parent(i)])
	}

	return out, nil
}
