// Package tree — see types.go for the Tree invariants and traversal.go for
// the leaves-to-root / root-to-leaves order helpers every other morphotree
// package composes.
//
// What & Why
//
//   - A Tree never stores back-pointers or node objects: every relation is
//     an index into the same contiguous parent array, so a hierarchy of a
//     million nodes is a handful of slices, not a million heap allocations.
//   - The topological invariant (Parent(i) > i) means "leaves to root" and
//     "root to leaves" are literally ascending/descending index ranges —
//     no queue, no visited-set, no recursion.
//
// Complexity: New is O(N). Every traversal helper is O(N) to materialize
// and O(1) extra space beyond the returned slice.
package tree
