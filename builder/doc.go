// Package builder assembles hgraph.EdgeList fixtures deterministically:
// Path, Cycle and RandomSparse, each returning a ready-to-use graph plus
// its per-edge weights in graph.EdgeFromIndex order, exactly what
// bpt.BPTCanonical and qfz.QuasiFlatZoneHierarchy expect. Stochastic
// behavior (RandomSparse's edge sampling, any WeightFn that reads the RNG)
// is controlled entirely through functional options — the same seed and
// options always reproduce the same graph.
package builder
