// Package matching applies a phase's augmenting paths to the current
// matching and validates the result.
package matching

import (
	"sync"

	"go.uber.org/zap"

	"xblossom/kernel"
	"xblossom/phasestate"
)

// Apply flips every edge along every path in paths, matching consecutive
// vertex pairs. Paths are vertex-disjoint by construction (the Augment
// kernel's tree claims guarantee it), so every path can be applied
// concurrently without touching another path's vertices; Apply still runs
// phasestate's MarkEmitted defensive check first and logs (rather than
// applies) any path that trips it, since silently double-matching a
// vertex would corrupt m.
func Apply(m []int32, paths [][]int32, state *phasestate.State, pool *kernel.Pool, logger *zap.Logger) {
	var wg sync.WaitGroup
	for _, p := range paths {
		path := p
		if !pathIsFresh(state, path, logger) {
			continue
		}
		wg.Add(1)
		pool.Go(func() {
			defer wg.Done()
			applyPath(m, path)
		})
	}
	wg.Wait()
}

func pathIsFresh(state *phasestate.State, path []int32, logger *zap.Logger) bool {
	for _, v := range path {
		if state.MarkEmitted(v) {
			logger.Warn("dropping augmenting path with a vertex already claimed this phase",
				zap.Int32("vertex", v))
			return false
		}
	}
	return true
}

func applyPath(m []int32, path []int32) {
	for i := 0; i+1 < len(path); i += 2 {
		a, b := path[i], path[i+1]
		m[a] = b
		m[b] = a
	}
}
