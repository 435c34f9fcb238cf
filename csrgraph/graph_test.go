package csrgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"xblossom/csrgraph"
)

func TestNewValidatesMonotonicity(t *testing.T) {
	_, err := csrgraph.New([]int32{0, 2, 1}, []int32{1, 1, 0})
	require.Error(t, err)
}

func TestNewValidatesRowOffsetsAgreeWithColIndices(t *testing.T) {
	_, err := csrgraph.New([]int32{0, 1}, []int32{0, 1})
	require.Error(t, err)
}

func TestNewValidatesColIndexRange(t *testing.T) {
	_, err := csrgraph.New([]int32{0, 1, 1}, []int32{5})
	require.Error(t, err)
}

func TestNewAggregatesMultipleViolations(t *testing.T) {
	// Non-monotonic offsets at index 1 and col_indices[0]=9 out of range.
	_, err := csrgraph.New([]int32{0, 5, 1}, []int32{9})
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 2)
}

func TestEmptyGraph(t *testing.T) {
	g, err := csrgraph.New([]int32{0}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.NumVertices())
	require.Equal(t, 0, g.EdgeCount())
}

func TestFromEdgesAndNeighbors(t *testing.T) {
	g, err := csrgraph.FromEdges(4, []csrgraph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 3, g.EdgeCount())
	require.ElementsMatch(t, []int32{1}, g.Neighbors(0))
	require.ElementsMatch(t, []int32{0, 2}, g.Neighbors(1))
}

func TestFromEdgesRejectsOutOfRange(t *testing.T) {
	_, err := csrgraph.FromEdges(2, []csrgraph.Edge{{U: 0, V: 5}})
	require.Error(t, err)
}
