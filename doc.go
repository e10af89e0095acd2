// Package morphotree builds and explores hierarchical representations of
// edge-weighted graphs — Binary Partition Trees and Quasi-Flat-Zone
// hierarchies — and the operations that make such a hierarchy useful once
// built: simplification, binarization, horizontal-cut exploration, and
// saliency maps back onto the original graph.
//
// 🚀 What is morphotree?
//
//	A graph doesn't have just one clustering; it has a whole hierarchy of
//	them, nested from "every vertex its own region" up to "one region, the
//	whole graph", ordered by merge altitude. morphotree builds that
//	hierarchy once and lets callers explore it cheaply:
//		• Hierarchy construction: the canonical Binary Partition Tree,
//		  jointly with its minimum spanning tree (bpt)
//		• Simplification: collapse nodes matching a predicate while
//		  preserving or discarding leaves (simplify)
//		• Quasi-Flat Zones: the hierarchy of connected components under
//		  every possible altitude threshold (qfz)
//		• Binarization: re-express any hierarchy as a strict binary tree
//		  (binarytree)
//		• Horizontal cuts: every distinct altitude-threshold partition,
//		  precomputed and queryable in O(log N) (horizontalcut)
//		• Saliency maps: project a hierarchy's altitudes back onto the
//		  original graph's edges via lowest common ancestor (saliency, lca)
//
// ✨ Why choose morphotree?
//
//   - Deterministic — stable sort + union-find, same input always produces
//     the same hierarchy, down to tie-breaking by original edge index
//   - Pure — the core packages never block, log, or touch the network;
//     all I/O lives in cmd/morphotree
//   - Generic — every algorithm is parameterized over the edge/altitude
//     weight type via Go generics, not hardcoded to float64
//   - Extensible — hgraph.Provider decouples every algorithm from any one
//     graph representation; adapters bridge gonum and a bundled in-memory
//     named graph
//
// Under the hood, everything is organized under one flat-package-per-concern
// layout:
//
//	unionfind/     — disjoint-set with path compression and union by rank
//	tree/          — immutable parent-array tree and its traversals
//	hgraph/        — the graph interface every hierarchy builder consumes
//	bpt/           — canonical Binary Partition Tree + MST construction
//	simplify/      — predicate-driven tree simplification
//	qfz/           — Quasi-Flat-Zone hierarchy
//	binarytree/    — strict-binary re-expression of any hierarchy
//	horizontalcut/ — precomputed, queryable horizontal cuts
//	accumulator/   — leaves-to-root / root-to-leaves reductions over a tree
//	lca/           — lowest common ancestor queries via binary lifting
//	saliency/      — hierarchy altitudes projected back onto graph edges
//	builder/       — deterministic synthetic graph topologies for tests/demos
//	cmd/morphotree/ — a cobra CLI wiring the above over edge-list input
//
// Quick ASCII example, a 4-vertex path graph 0-1-2-3 with weights 1,2,3:
//
//	BPT:                 altitude
//	      (6)                3
//	     /    \
//	   (5)    [3]             .
//	  /   \                  2
//	(4)   [2]                 .
//	/  \                     1
//	[0][1]                   0
//
//	FromAltitude(1) cuts at {[0,1], [2], [3]}; FromAltitude(3) cuts at the
//	whole graph, {[0,1,2,3]}.
package morphotree
