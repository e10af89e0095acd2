// Package coreadapter adapts a string-keyed, concurrency-safe named graph
// into an hgraph.Provider. It is a direct descendant of the teacher
// package's core.Graph: the same sync.RWMutex-guarded vertex/edge maps
// (built with a plain NewNamedGraph, no options), trimmed to what a hierarchy builder
// needs (vertices, edges, weights) and re-exposed as dense [0, n) indices,
// the same determinism discipline prim_kruskal.Kruskal already applies
// when it sorts graph.Vertices() before building an MST.
package coreadapter

import (
	"fmt"
	"sort"
	"sync"

	"github.com/morphotree/morphotree/herrors"
)

// Vertex is a named node. Metadata carries arbitrary caller data and is
// shared (not deep-copied) when the graph is snapshotted.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// Edge is a named connection with an integer weight.
type Edge struct {
	ID     string
	From   string
	To     string
	Weight int64
}

// NamedGraph is an in-memory, concurrency-safe undirected weighted graph
// keyed by string vertex IDs, exactly like the teacher's core.Graph, but
// trimmed to the fields a hierarchy builder actually reads: no directed
// mode, no multi-edge/self-loop policy flags, since BPT construction
// tolerates self-loops and parallel edges itself (they are filtered by
// union-find, see bpt.BPTCanonical).
type NamedGraph struct {
	mu         sync.RWMutex
	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge
}

// NewNamedGraph returns an empty NamedGraph.
func NewNamedGraph() *NamedGraph {
	return &NamedGraph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
	}
}

// AddVertex registers id if not already present.
func (g *NamedGraph) AddVertex(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
}

// AddEdge registers an edge between two vertex IDs, creating either
// endpoint if it does not yet exist, and returns the edge's generated ID.
func (g *NamedGraph) AddEdge(from, to string, weight int64) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[from]; !ok {
		g.vertices[from] = &Vertex{ID: from}
	}
	if _, ok := g.vertices[to]; !ok {
		g.vertices[to] = &Vertex{ID: to}
	}
	id := formatEdgeID(g.nextEdgeID)
	g.nextEdgeID++
	g.edges[id] = &Edge{ID: id, From: from, To: to, Weight: weight}

	return id
}

// SortedVertexIDs returns every vertex ID in ascending lexical order —
// the canonical indexing order an hgraph.Provider snapshot assigns.
func (g *NamedGraph) SortedVertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Snapshot converts the NamedGraph into a dense hgraph.Provider plus a
// weight array aligned with the provider's edge indices, and an index ->
// original-ID lookup for translating results back. Vertex indices are
// assigned by ascending vertex-ID order and edge indices by ascending
// edge-ID order, both deterministic, so two snapshots of an unmodified
// NamedGraph always agree.
func (g *NamedGraph) Snapshot() (*Snapshot, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vertexIDs := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		vertexIDs = append(vertexIDs, id)
	}
	sort.Strings(vertexIDs)
	index := make(map[string]int, len(vertexIDs))
	for i, id := range vertexIDs {
		index[id] = i
	}

	edgeIDs := make([]string, 0, len(g.edges))
	for id := range g.edges {
		edgeIDs = append(edgeIDs, id)
	}
	sort.Strings(edgeIDs)

	endpoints := make([][2]int, len(edgeIDs))
	weights := make([]int64, len(edgeIDs))
	for i, id := range edgeIDs {
		e := g.edges[id]
		uIdx, ok := index[e.From]
		if !ok {
			return nil, herrors.Wrap("coreadapter.Snapshot", herrors.ErrInvalidTree)
		}
		vIdx, ok := index[e.To]
		if !ok {
			return nil, herrors.Wrap("coreadapter.Snapshot", herrors.ErrInvalidTree)
		}
		endpoints[i] = [2]int{uIdx, vIdx}
		weights[i] = e.Weight
	}

	return &Snapshot{
		vertexIDs: vertexIDs,
		endpoints: endpoints,
		weights:   weights,
	}, nil
}

// formatEdgeID renders a zero-padded, lexically-sortable edge ID so that
// ascending string order matches insertion (discovery) order, the same
// property the teacher's atomic edge-ID counter gives it.
func formatEdgeID(n uint64) string {
	return fmt.Sprintf("e%020d", n)
}

// Snapshot is an immutable, index-based view produced by NamedGraph.Snapshot.
// It implements hgraph.Provider.
type Snapshot struct {
	vertexIDs []string
	endpoints [][2]int
	weights   []int64
}

// NumVertices implements hgraph.Provider.
func (s *Snapshot) NumVertices() int { return len(s.vertexIDs) }

// NumEdges implements hgraph.Provider.
func (s *Snapshot) NumEdges() int { return len(s.endpoints) }

// EdgeFromIndex implements hgraph.Provider.
func (s *Snapshot) EdgeFromIndex(i int) (u, v int) {
	e := s.endpoints[i]

	return e[0], e[1]
}

// Weights returns the int64 edge weights aligned with EdgeFromIndex order.
func (s *Snapshot) Weights() []int64 { return s.weights }

// VertexID returns the original string ID of vertex index i.
func (s *Snapshot) VertexID(i int) string { return s.vertexIDs[i] }
