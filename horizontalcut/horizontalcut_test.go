package horizontalcut_test

import (
	"testing"

	"github.com/morphotree/morphotree/horizontalcut"
	"github.com/morphotree/morphotree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// s4QFZTree mirrors qfz's S4 result: leaves 0-3, node 4 = {0,1,2} at
// altitude 1, root 5 = {3,4} at altitude 2.
func s4QFZTree(t *testing.T) (*tree.Tree, []int) {
	t.Helper()
	tr, err := tree.New([]int{4, 4, 4, 5, 5, 5}, 4)
	require.NoError(t, err)

	return tr, []int{0, 0, 0, 0, 1, 2}
}

func TestNewExplorerEnumeratesEveryDistinctAltitude(t *testing.T) {
	tr, altitudes := s4QFZTree(t)
	exp, err := horizontalcut.NewExplorer(tr, altitudes)
	require.NoError(t, err)

	require.Equal(t, 3, exp.NumCuts())

	for i, wantAltitude := range []int{0, 1, 2} {
		alt, err := exp.AltitudeCut(i)
		require.NoError(t, err)
		assert.Equal(t, wantAltitude, alt)
	}

	for i, wantRegions := range []int{4, 2, 1} {
		regions, err := exp.NumRegionsCut(i)
		require.NoError(t, err)
		assert.Equal(t, wantRegions, regions)
	}
}

func TestFromIndexReturnsOriginalTreeNodes(t *testing.T) {
	tr, altitudes := s4QFZTree(t)
	exp, err := horizontalcut.NewExplorer(tr, altitudes)
	require.NoError(t, err)

	nodes, alt, err := exp.FromIndex(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, nodes)
	assert.Equal(t, 0, alt)

	nodes, alt, err = exp.FromIndex(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, nodes)
	assert.Equal(t, 1, alt)

	nodes, alt, err = exp.FromIndex(2)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, nodes)
	assert.Equal(t, 2, alt)
}

func TestFromIndexRejectsOutOfRange(t *testing.T) {
	tr, altitudes := s4QFZTree(t)
	exp, err := horizontalcut.NewExplorer(tr, altitudes)
	require.NoError(t, err)

	_, _, err = exp.FromIndex(-1)
	assert.Error(t, err)
	_, _, err = exp.FromIndex(exp.NumCuts())
	assert.Error(t, err)
}

func TestFromAltitudePicksCoarsestCutBelowThreshold(t *testing.T) {
	tr, altitudes := s4QFZTree(t)
	exp, err := horizontalcut.NewExplorer(tr, altitudes)
	require.NoError(t, err)

	nodes, alt, err := exp.FromAltitude(0)
	require.NoError(t, err)
	assert.Equal(t, 0, alt)
	assert.Equal(t, []int{0, 1, 2, 3}, nodes)

	// At exactly a recorded altitude, the cut recorded there applies.
	nodes, alt, err = exp.FromAltitude(1)
	require.NoError(t, err)
	assert.Equal(t, 1, alt)
	assert.Equal(t, []int{3, 4}, nodes)

	nodes, alt, err = exp.FromAltitude(5)
	require.NoError(t, err)
	assert.Equal(t, 2, alt)
	assert.Equal(t, []int{5}, nodes)
}

func TestFromNumRegionsPicksFinestCutMeetingTarget(t *testing.T) {
	tr, altitudes := s4QFZTree(t)
	exp, err := horizontalcut.NewExplorer(tr, altitudes)
	require.NoError(t, err)

	nodes, alt, err := exp.FromNumRegions(3)
	require.NoError(t, err)
	assert.Equal(t, 1, alt)
	assert.Equal(t, []int{3, 4}, nodes)

	_, _, err = exp.FromNumRegions(2)
	require.NoError(t, err)

	nodes, alt, err = exp.FromNumRegions(1)
	require.NoError(t, err)
	assert.Equal(t, 2, alt)
	assert.Equal(t, []int{5}, nodes)
}

func TestNewExplorerRejectsNonZeroLeafAltitude(t *testing.T) {
	tr, altitudes := s4QFZTree(t)
	altitudes[0] = 1
	_, err := horizontalcut.NewExplorer(tr, altitudes)
	assert.Error(t, err)
}

func TestNewExplorerRejectsNonMonotoneAltitudes(t *testing.T) {
	tr, _ := s4QFZTree(t)
	altitudes := []int{0, 0, 0, 0, 5, 2} // root's altitude below its child's
	_, err := horizontalcut.NewExplorer(tr, altitudes)
	assert.Error(t, err)
}

func TestNewExplorerRejectsShapeMismatch(t *testing.T) {
	tr, _ := s4QFZTree(t)
	_, err := horizontalcut.NewExplorer(tr, []int{0, 0})
	assert.Error(t, err)
}

func TestNewExplorerHandlesTiedAltitudes(t *testing.T) {
	// Two unrelated branches merging at the SAME altitude must land in a
	// single cut, not two, and that cut must include BOTH representatives.
	tr, err := tree.New([]int{4, 4, 5, 5, 6, 6, 6}, 4)
	require.NoError(t, err)
	altitudes := []int{0, 0, 0, 0, 3, 3, 5}

	exp, err := horizontalcut.NewExplorer(tr, altitudes)
	require.NoError(t, err)
	require.Equal(t, 3, exp.NumCuts())

	nodes, alt, err := exp.FromIndex(1)
	require.NoError(t, err)
	assert.Equal(t, 3, alt)
	assert.Equal(t, []int{4, 5}, nodes)

	nodes, alt, err = exp.FromIndex(2)
	require.NoError(t, err)
	assert.Equal(t, 5, alt)
	assert.Equal(t, []int{6}, nodes)
}

func TestNewExplorerTrivialSingleNodeTree(t *testing.T) {
	tr, err := tree.New([]int{0}, 1)
	require.NoError(t, err)

	exp, err := horizontalcut.NewExplorer(tr, []int{0})
	require.NoError(t, err)
	require.Equal(t, 1, exp.NumCuts())

	nodes, alt, err := exp.FromIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 0, alt)
	assert.Equal(t, []int{0}, nodes)
}
