// Package gonumadapter bridges a gonum/graph/simple.WeightedUndirectedGraph
// into an hgraph.Provider, so a BPT or QFZ hierarchy can be built directly
// over a graph assembled with gonum's graph-construction API (as used
// throughout the gonum-dependent packages in the wider ecosystem, e.g.
// TrevorS-hdbscan's nearest-neighbor graphs) without hand-rolling an
// EdgeList.
//
// gonum graphs have no inherent edge index — internally they are keyed by
// node-ID pairs in maps. Snapshot assigns indices deterministically by
// sorting node IDs ascending (for vertex indices) and then by
// (fromIndex, toIndex) ascending (for edge indices), so two snapshots of an
// unmodified graph always agree — the same determinism bpt.BPTCanonical
// requires of its tie-breaking.
package gonumadapter

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

// Snapshot is an index-based, read-only view of a
// simple.WeightedUndirectedGraph. It implements hgraph.Provider.
type Snapshot struct {
	nodeIDs   []int64
	endpoints [][2]int
	weights   []float64
}

// FromWeightedUndirected snapshots g into index space.
func FromWeightedUndirected(g *simple.WeightedUndirectedGraph) *Snapshot {
	nodes := g.Nodes()
	nodeIDs := make([]int64, 0, nodes.Len())
	for nodes.Next() {
		nodeIDs = append(nodeIDs, nodes.Node().ID())
	}
	sort.Slice(nodeIDs, func(i, j int) bool { return nodeIDs[i] < nodeIDs[j] })

	index := make(map[int64]int, len(nodeIDs))
	for i, id := range nodeIDs {
		index[id] = i
	}

	type rawEdge struct {
		u, v   int
		weight float64
	}
	edges := g.WeightedEdges()
	raw := make([]rawEdge, 0, edges.Len())
	for edges.Next() {
		e := edges.WeightedEdge()
		u, v := index[e.From().ID()], index[e.To().ID()]
		if u > v {
			u, v = v, u
		}
		raw = append(raw, rawEdge{u: u, v: v, weight: e.Weight()})
	}
	sort.Slice(raw, func(i, j int) bool {
		if raw[i].u != raw[j].u {
			return raw[i].u < raw[j].u
		}

		return raw[i].v < raw[j].v
	})

	endpoints := make([][2]int, len(raw))
	weights := make([]float64, len(raw))
	for i, e := range raw {
		endpoints[i] = [2]int{e.u, e.v}
		weights[i] = e.weight
	}

	return &Snapshot{nodeIDs: nodeIDs, endpoints: endpoints, weights: weights}
}

// NumVertices implements hgraph.Provider.
func (s *Snapshot) NumVertices() int { return len(s.nodeIDs) }

// NumEdges implements hgraph.Provider.
func (s *Snapshot) NumEdges() int { return len(s.endpoints) }

// EdgeFromIndex implements hgraph.Provider.
func (s *Snapshot) EdgeFromIndex(i int) (u, v int) {
	e := s.endpoints[i]

	return e[0], e[1]
}

// Weights returns the float64 edge weights aligned with EdgeFromIndex order.
func (s *Snapshot) Weights() []float64 { return s.weights }

// NodeID returns the original gonum node ID of vertex index i.
func (s *Snapshot) NodeID(i int) int64 { return s.nodeIDs[i] }
