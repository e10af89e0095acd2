package builder_test

import (
	"testing"

	"github.com/morphotree/morphotree/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathBuildsExpectedEdges(t *testing.T) {
	g, weights, err := builder.Path(4)
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())
	assert.Equal(t, []float64{1, 1, 1}, weights)

	u, v := g.EdgeFromIndex(0)
	assert.Equal(t, 0, u)
	assert.Equal(t, 1, v)
	u, v = g.EdgeFromIndex(2)
	assert.Equal(t, 2, u)
	assert.Equal(t, 3, v)
}

func TestPathRejectsTooFewVertices(t *testing.T) {
	_, _, err := builder.Path(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPathHonorsWeightFn(t *testing.T) {
	_, weights, err := builder.Path(3, builder.WithWeightFn(builder.ConstantWeight(5)))
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5}, weights)
}

func TestPathIsDeterministicAcrossCalls(t *testing.T) {
	_, w1, err := builder.Path(10, builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeight(0, 100)))
	require.NoError(t, err)
	_, w2, err := builder.Path(10, builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeight(0, 100)))
	require.NoError(t, err)
	assert.Equal(t, w1, w2)
}
