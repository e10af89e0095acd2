package bpt_test

import (
	"testing"

	"github.com/morphotree/morphotree/bpt"
	"github.com/morphotree/morphotree/herrors"
	"github.com/morphotree/morphotree/hgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBPTCanonicalPathOfFour covers scenario S1: a path of 4 with strictly
// increasing weights. The BPT is itself a path of merges.
func TestBPTCanonicalPathOfFour(t *testing.T) {
	g := hgraph.NewEdgeList(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	weights := []int{1, 2, 3}

	res, err := bpt.BPTCanonical(g, weights)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 4, 5, 6, 5, 6, 6}, res.Tree.ParentSlice())
	assert.Equal(t, []int{0, 0, 0, 0, 1, 2, 3}, res.Altitudes)
	assert.Equal(t, []int{0, 1, 2}, res.MSTEdgeMap)
}

// TestBPTCanonicalCycleWithDuplicatedWeights covers scenario S2: a
// triangle where the stable sort on original index breaks the three-way
// tie, making edge 2 — the cycle-closing edge — the one union-find
// rejects.
func TestBPTCanonicalCycleWithDuplicatedWeights(t *testing.T) {
	g := hgraph.NewEdgeList(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)
	weights := []int{1, 1, 1}

	res, err := bpt.BPTCanonical(g, weights)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 3, 4, 4, 4}, res.Tree.ParentSlice())
	assert.Equal(t, []int{0, 0, 0, 1, 1}, res.Altitudes)
	assert.Equal(t, []int{0, 1}, res.MSTEdgeMap)
}

// TestBPTCanonicalDisconnectedInputFails covers scenario S3.
func TestBPTCanonicalDisconnectedInputFails(t *testing.T) {
	g := hgraph.NewEdgeList(4)
	g.AddEdge(0, 1)
	g.AddEdge(2, 3)
	weights := []int{1, 1}

	_, err := bpt.BPTCanonical(g, weights)
	assert.ErrorIs(t, err, herrors.ErrNotConnected)
}

func TestBPTCanonicalRejectsShapeMismatch(t *testing.T) {
	g := hgraph.NewEdgeList(4)
	g.AddEdge(0, 1)
	_, err := bpt.BPTCanonical(g, []int{1, 2})
	assert.ErrorIs(t, err, herrors.ErrShapeMismatch)
}

func TestBPTCanonicalSkipsSelfLoops(t *testing.T) {
	g := hgraph.NewEdgeList(2)
	g.AddEdge(0, 0)
	g.AddEdge(0, 1)
	weights := []int{5, 1}

	res, err := bpt.BPTCanonical(g, weights)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.MSTEdgeMap)
}

func TestBPTCanonicalSingleVertexIsTrivial(t *testing.T) {
	g := hgraph.NewEdgeList(1)
	res, err := bpt.BPTCanonical(g, []int{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Tree.NumNodes())
	assert.Equal(t, 0, res.Tree.Root())
}

func TestBPTCanonicalRejectsNaNWeight(t *testing.T) {
	g := hgraph.NewEdgeList(2)
	g.AddEdge(0, 1)
	nan := float64(0)
	nan = nan / nan
	_, err := bpt.BPTCanonical(g, []float64{nan})
	assert.ErrorIs(t, err, herrors.ErrInvalidWeights)
}

func TestBPTCanonicalIsDeterministicAcrossCalls(t *testing.T) {
	g := hgraph.NewEdgeList(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(0, 4)
	weights := []int{3, 1, 4, 1, 5}

	r1, err := bpt.BPTCanonical(g, weights)
	require.NoError(t, err)
	r2, err := bpt.BPTCanonical(g, weights)
	require.NoError(t, err)

	assert.Equal(t, r1.Tree.ParentSlice(), r2.Tree.ParentSlice())
	assert.Equal(t, r1.MSTEdgeMap, r2.MSTEdgeMap)
}
