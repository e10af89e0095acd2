// Package accumulator implements the tree-reduction primitives every
// hierarchy consumer in morphotree builds on: pushing leaf data up to the
// root (accumulate) and pushing node data down to the leaves (propagate).
// It is a direct Go port of Higra's tree_accumulator module. The two
// "parallel" variants have no cross-node write dependency and are split
// across goroutines with golang.org/x/sync/errgroup once the tree is large
// enough to make that worthwhile, while the "sequential" variants cascade
// already-computed values and run single-threaded: the accumulate ones fold
// children into parents in leaves-to-root order, the propagate ones pass a
// parent's value down in root-to-leaves order.
package accumulator

import (
	"cmp"

	"github.com/morphotree/morphotree/tree"
)

// Number is satisfied by every weight type Sum can fold over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Reducer folds one more value into a running accumulation. It is only
// ever invoked over non-empty children, since internal tree nodes always
// have at least one child — there is no identity element to configure.
type Reducer[W any] func(acc, val W) W

// Sum returns a Reducer that adds values.
func Sum[W Number]() Reducer[W] {
	return func(acc, val W) W { return acc + val }
}

// Min returns a Reducer that keeps the smaller of two values, using <.
func Min[W cmp.Ordered]() Reducer[W] {
	return func(acc, val W) W {
		if val < acc {
			return val
		}

		return acc
	}
}

// Max returns a Reducer that keeps the larger of two values, using >.
func Max[W cmp.Ordered]() Reducer[W] {
	return func(acc, val W) W {
		if val > acc {
			return val
		}

		return acc
	}
}

func reduceChildren[W any](t *tree.Tree, values []W, node int, reduce Reducer[W]) W {
	children := t.Children(node)
	acc := values[children[0]]
	for _, c := range children[1:] {
		acc = reduce(acc, values[c])
	}

	return acc
}
