package kernel

import (
	"xblossom/csrgraph"
	"xblossom/internal/parallelutil"
	"xblossom/phasestate"
)

// SearchAndGrow runs one phase's tree-growing/blossom-contracting loop to
// completion: it alternates Augment, Expand and Blossom passes over a
// shrinking/growing frontier until either Augment reports a batch of
// disjoint augmenting paths (success) or the frontier runs dry without
// ever finding one (this phase is exhausted; the matching found so far is
// maximum).
func SearchAndGrow(g *csrgraph.Graph, state *phasestate.State, m []int32, pool *Pool, frontier []int32) [][]int32 {
	for {
		if paths := Augment(g, state, pool, frontier); len(paths) > 0 {
			return paths
		}
		if len(frontier) == 0 {
			return nil
		}

		grown := Expand(g, state, m, pool, frontier)
		union := parallelutil.MergeFrontiers(frontier, grown)
		blossomed := Blossom(g, state, m, pool, union)

		next := parallelutil.MergeFrontiers(grown, blossomed)
		if len(next) == 0 {
			return nil
		}
		frontier = next
	}
}
