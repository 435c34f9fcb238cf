package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"xblossom/csrgraph"
	"xblossom/kernel"
	"xblossom/phasestate"
)

func TestExpandSkipsUnmatchedNeighbor(t *testing.T) {
	// 0 is even and exposed (tree root); 1 is its unmatched neighbor, and
	// Reset makes 1 the root of its own tree. Expand must not touch 1: an
	// unmatched vertex reachable from an even vertex is an augmenting-path
	// opportunity for Augment, not a tree edge for Expand to grow through,
	// so 1 stays in its own tree.
	g, err := csrgraph.FromEdges(2, []csrgraph.Edge{{U: 0, V: 1}})
	require.NoError(t, err)

	state := phasestate.New(2)
	m := []int32{-1, -1}
	frontier := state.Reset(m)

	pool, err := kernel.NewPool(2)
	require.NoError(t, err)
	defer pool.Release()

	grown := kernel.Expand(g, state, m, pool, frontier)
	require.Empty(t, grown)
	require.EqualValues(t, 1, state.Belongs[1])
}

func TestExpandGrowsThroughMatchedEdge(t *testing.T) {
	// 0 is an exposed tree root; 1-2 is a matched edge; 0-1 is an edge.
	// Expand should bring 1 (odd) and 2 (even) into 0's tree.
	g, err := csrgraph.FromEdges(3, []csrgraph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	require.NoError(t, err)

	state := phasestate.New(3)
	m := []int32{-1, 2, 1}
	frontier := state.Reset(m)

	pool, err := kernel.NewPool(2)
	require.NoError(t, err)
	defer pool.Release()

	grown := kernel.Expand(g, state, m, pool, frontier)
	require.ElementsMatch(t, []int32{2}, grown)
	require.EqualValues(t, 0, state.IsEven[1])
	require.EqualValues(t, 1, state.IsEven[2])
	require.EqualValues(t, 0, state.Belongs[1])
	require.EqualValues(t, 0, state.Belongs[2])
	require.Equal(t, []int32{1, 0}, state.PathTable[2])
}
