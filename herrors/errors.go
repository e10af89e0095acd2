// Package herrors defines the sentinel error set shared by every
// morphotree operation that sits at an API boundary (bpt, simplify, qfz,
// binarytree, horizontalcut). All sentinels are package-level; callers MUST
// branch on them with errors.Is, never by matching message strings.
//
// ERROR PRIORITY (documented, enforced by each package's own validation order):
// shape/weight checks -> connectivity -> altitude checks -> tree structural
// checks -> query-range checks. A single call only ever returns the first
// violation it finds.
package herrors

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates that an input slice's length does not match
	// the graph or tree it is being paired with (weights vs. NumEdges,
	// altitudes vs. NumVertices(tree)).
	ErrShapeMismatch = errors.New("morphotree: shape mismatch")

	// ErrInvalidWeights indicates that an edge-weight array is malformed:
	// not one-dimensional (reserved for future tensor-shaped input) or
	// containing NaN.
	ErrInvalidWeights = errors.New("morphotree: invalid weights")

	// ErrNotConnected indicates that a minimum spanning tree could not be
	// completed with n-1 edges: the input graph is disconnected.
	ErrNotConnected = errors.New("morphotree: graph is disconnected")

	// ErrInvalidAltitudes indicates a node-altitude array violates the
	// hierarchy contract: a nonzero leaf altitude, or a negative altitude.
	ErrInvalidAltitudes = errors.New("morphotree: invalid altitudes")

	// ErrInvalidTree indicates a parent array violates the tree invariants:
	// a cycle, a non-monotone parent relation, a missing or duplicated root,
	// or (for binarization) a non-leaf node with fewer than 2 children.
	ErrInvalidTree = errors.New("morphotree: invalid tree")

	// ErrQueryOutOfRange indicates a horizontal-cut query index fell outside
	// [0, NumCuts).
	ErrQueryOutOfRange = errors.New("morphotree: query index out of range")
)

// Wrap prefixes err with op for context while preserving errors.Is matching
// against the sentinel, mirroring builder.builderErrorf in the teacher
// package: the sentinel itself is never reformatted, only wrapped.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
