package pathwalk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"xblossom/pathwalk"
	"xblossom/phasestate"
)

func TestToRootFlattensEagerChain(t *testing.T) {
	state := phasestate.New(5)
	// root is vertex 4; chain 3->2->4 built as Expand would: PathTable[3] = [2, 4].
	state.PathTable[3] = []int32{2, 4}

	require.Equal(t, []int32{3, 2, 4}, pathwalk.ToRoot(state, 3))
}

func TestFindBlossomBuildsCycleFromSharedRoot(t *testing.T) {
	state := phasestate.New(6)
	// Tree rooted at 0 with two branches sharing the root:
	// 0 -1(odd)- 2(even) and 0 -3(odd)- 4(even).
	state.PathTable[2] = []int32{1, 0}
	state.PathTable[4] = []int32{3, 0}

	blossom, ok := pathwalk.FindBlossom(state, 2, 4)
	require.True(t, ok)
	require.Equal(t, int32(0), blossom[0])
	require.Contains(t, blossom, int32(2))
	require.Contains(t, blossom, int32(4))
}

func TestShorterArcPicksBackwardOnTie(t *testing.T) {
	blossom := []int32{0, 1, 2, 3}
	arc := pathwalk.ShorterArc(blossom, 2)
	require.Equal(t, []int32{1, 0}, arc)
}

func TestHasDuplicate(t *testing.T) {
	require.True(t, pathwalk.HasDuplicate([]int32{1, 2, 3, 2}))
	require.False(t, pathwalk.HasDuplicate([]int32{1, 2, 3}))
}
