package kernel

import (
	"sync"

	"xblossom/csrgraph"
	"xblossom/pathwalk"
	"xblossom/phasestate"
)

// Augment searches the frontier for a cross-tree edge between two even
// vertices belonging to different trees. Each such edge found and won is
// materialized into a full augmenting path and returned; the caller is
// responsible for matching every path's edges with the matching updater.
//
// Two trees may only be joined by one worker: a worker that finds v-w
// attempts to claim both trees' SelectTree cells (lower tree id first).
// Losing the first claim means some other pairing already consumed the
// lower-id tree of the pair, so the worker stops scanning v's remaining
// neighbors entirely.
// Losing the second claim rolls the first back and the worker moves on to
// v's next neighbor.
func Augment(g *csrgraph.Graph, state *phasestate.State, pool *Pool, frontier []int32) [][]int32 {
	var mu sync.Mutex
	var collected [][]int32

	pool.Dispatch(frontier, func(_ int, vertices []int32) {
		var local [][]int32
		for _, v := range vertices {
			treeV := state.Belongs[v]
			if treeV == -1 {
				continue
			}
			for _, w := range g.Neighbors(int(v)) {
				if state.IsEven[w] == 0 {
					continue
				}
				treeW := state.Belongs[w]
				if treeW == -1 || treeW == treeV {
					continue
				}

				tmin, tmax := treeV, treeW
				if tmin > tmax {
					tmin, tmax = tmax, tmin
				}
				if !state.SelectTree[tmin].TryClaim() {
					break
				}
				if !state.SelectTree[tmax].TryClaim() {
					state.SelectTree[tmin].Rollback()
					continue
				}

				local = append(local, assemblePath(state, v, w))
			}
		}
		if len(local) > 0 {
			mu.Lock()
			collected = append(collected, local...)
			mu.Unlock()
		}
	})

	return collected
}

// assemblePath builds root_v ... v - w ... root_w: v's root path reversed,
// followed by w's root path.
func assemblePath(state *phasestate.State, v, w int32) []int32 {
	pathV := pathwalk.ToRoot(state, v)
	pathW := pathwalk.ToRoot(state, w)

	path := make([]int32, 0, len(pathV)+len(pathW))
	for i := len(pathV) - 1; i >= 0; i-- {
		path = append(path, pathV[i])
	}
	path = append(path, pathW...)
	return path
}
