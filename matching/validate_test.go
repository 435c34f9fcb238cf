package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"xblossom/csrgraph"
	"xblossom/matching"
)

func TestValidateAcceptsGoodMatching(t *testing.T) {
	g, err := csrgraph.FromEdges(4, []csrgraph.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)

	m := []int32{1, 0, 3, 2}
	require.NoError(t, matching.Validate(g, m))
	require.Equal(t, 2, matching.Size(m))
}

func TestValidateRejectsAsymmetricMatching(t *testing.T) {
	g, err := csrgraph.FromEdges(4, []csrgraph.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)

	m := []int32{1, 2, 3, -1}
	require.Error(t, matching.Validate(g, m))
}

func TestValidateRejectsNonEdge(t *testing.T) {
	g, err := csrgraph.FromEdges(4, []csrgraph.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)

	m := []int32{2, 3, 0, 1}
	require.Error(t, matching.Validate(g, m))
}
