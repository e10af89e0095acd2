// Package tree implements the immutable parent-array hierarchy that every
// other morphotree package builds, simplifies, or queries.
//
// A Tree of N nodes is a parent array with these invariants:
//   - leaves occupy [0, NumLeaves); internal nodes occupy [NumLeaves, N);
//   - exactly one root r satisfies Parent(r) == r;
//   - every other node i satisfies Parent(i) > i (children precede parents,
//     a topological order baked directly into the index space).
//
// A direct consequence of the last invariant: the root is always the
// highest-numbered node, N-1. Every traversal in this package exploits that
// fact instead of re-deriving it.
package tree

import "github.com/morphotree/morphotree/herrors"

// Tree is an immutable hierarchy over a parent array. Derived views
// (child lists) are computed once at construction and borrowed by callers;
// they must not be mutated and do not outlive the Tree.
type Tree struct {
	parent    []int
	numLeaves int
	children  [][]int
}

// New validates parent and wraps it as a Tree. numLeaves must match the
// count of nodes with no children; New returns herrors.ErrInvalidTree for
// any violation of the invariants documented on the package: a missing or
// duplicated root, a non-monotone parent relation, a leaf with children, or
// an internal node with no children at all.
func New(parent []int, numLeaves int) (*Tree, error) {
	n := len(parent)
	if n == 0 || numLeaves < 0 || numLeaves > n {
		return nil, herrors.Wrap("tree.New", herrors.ErrInvalidTree)
	}

	rootCount := 0
	for i, p := range parent {
		if p == i {
			rootCount++
			continue
		}
		if p <= i {
			// Children must precede their parent in index order.
			return nil, herrors.Wrap("tree.New", herrors.ErrInvalidTree)
		}
	}
	if rootCount != 1 || parent[n-1] != n-1 {
		return nil, herrors.Wrap("tree.New", herrors.ErrInvalidTree)
	}

	children := make([][]int, n)
	for i, p := range parent {
		if p != i {
			children[p] = append(children[p], i)
		}
	}
	for i := 0; i < numLeaves; i++ {
		if len(children[i]) != 0 {
			return nil, herrors.Wrap("tree.New", herrors.ErrInvalidTree)
		}
	}
	for i := numLeaves; i < n; i++ {
		if len(children[i]) == 0 {
			return nil, herrors.Wrap("tree.New", herrors.ErrInvalidTree)
		}
	}

	return &Tree{parent: parent, numLeaves: numLeaves, children: children}, nil
}

// NumNodes returns the total node count N.
func (t *Tree) NumNodes() int { return len(t.parent) }

// NumLeaves returns L, the count of leaf nodes (occupying [0, L)).
func (t *Tree) NumLeaves() int { return t.numLeaves }

// Root returns the unique root index, always NumNodes()-1.
func (t *Tree) Root() int { return len(t.parent) - 1 }

// Parent returns the parent of node i. Parent(Root()) == Root().
func (t *Tree) Parent(i int) int { return t.parent[i] }

// IsLeaf reports whether i has no children.
func (t *Tree) IsLeaf(i int) bool { return i < t.numLeaves }

// Children returns the (borrowed, read-only) child list of node i, in the
// order they were encountered when the Tree was built.
func (t *Tree) Children(i int) []int { return t.children[i] }

// NumChildren returns len(Children(i)).
func (t *Tree) NumChildren(i int) int { return len(t.children[i]) }

// ParentSlice returns the tree's backing parent array. Callers must treat
// it as read-only; it is the same slice New was given, not a copy.
func (t *Tree) ParentSlice() []int { return t.parent }
