package saliency_test

import (
	"testing"

	"github.com/morphotree/morphotree/bpt"
	"github.com/morphotree/morphotree/hgraph"
	"github.com/morphotree/morphotree/saliency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathGraph() (*hgraph.EdgeList, []int) {
	g := hgraph.NewEdgeList(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	return g, []int{1, 2, 3}
}

// TestMapGivesMSTEdgesTheirOwnWeight covers the defining saliency property:
// an edge that belongs to the minimum spanning tree merges its endpoints
// exactly at its own weight, so its LCA altitude equals that weight.
func TestMapGivesMSTEdgesTheirOwnWeight(t *testing.T) {
	g, weights := pathGraph()
	built, err := bpt.BPTCanonical(g, weights)
	require.NoError(t, err)

	out, err := saliency.Map(g, built.Tree, built.Altitudes)
	require.NoError(t, err)
	assert.Equal(t, weights, out)
}

// TestMapNonTreeEdgeNeverExceedsItsOwnWeight: an edge outside the MST still
// connects its endpoints, so the hierarchy can never need a threshold
// higher than that edge's own weight to merge them.
func TestMapNonTreeEdgeNeverExceedsItsOwnWeight(t *testing.T) {
	g, weights := pathGraph()
	extra := g.AddEdge(0, 3)
	weights = append(weights, 10)

	built, err := bpt.BPTCanonical(g, weights)
	require.NoError(t, err)

	out, err := saliency.Map(g, built.Tree, built.Altitudes)
	require.NoError(t, err)
	assert.LessOrEqual(t, out[extra], weights[extra])
	assert.Equal(t, 3, out[extra]) // endpoints 0 and 3 merge at the root, altitude 3
}

func TestMapRejectsLeafCountMismatch(t *testing.T) {
	g, weights := pathGraph()
	built, err := bpt.BPTCanonical(g, weights)
	require.NoError(t, err)

	smallGraph := hgraph.NewEdgeList(3)
	_, err = saliency.Map(smallGraph, built.Tree, built.Altitudes)
	assert.Error(t, err)
}

func TestMapRejectsAltitudeShapeMismatch(t *testing.T) {
	g, weights := pathGraph()
	built, err := bpt.BPTCanonical(g, weights)
	require.NoError(t, err)

	_, err = saliency.Map(g, built.Tree, built.Altitudes[:3])
	assert.Error(t, err)
}
