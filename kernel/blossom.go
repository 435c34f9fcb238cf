package kernel

import (
	"sync"

	"xblossom/csrgraph"
	"xblossom/pathwalk"
	"xblossom/phasestate"
)

// Blossom looks for same-tree edges between two even vertices that are
// not already in the same blossom and contracts the odd cycle such an
// edge closes. frontier here is F ∪ F', the union of the current and
// Expand-grown frontiers, so a vertex made even by this very phase's
// Expand pass is eligible to close a blossom in the same round.
//
// Contracting a cycle means: every odd vertex on it gets claimed via
// SelectBlossom, flipped even, and given a path table that reaches the
// cycle's base along whichever arc of the cycle is shorter, followed by
// base's own (already finalized) chain to the tree root. A cycle vertex
// that is already even or already has a path table is skipped without a
// claim; a claimed vertex whose new path table would contain a duplicate
// vertex has its claim rolled back and is left unchanged.
func Blossom(g *csrgraph.Graph, state *phasestate.State, m []int32, pool *Pool, frontier []int32) []int32 {
	var mu sync.Mutex
	var newlyEven []int32

	pool.Dispatch(frontier, func(_ int, vertices []int32) {
		var local []int32
		for _, v := range vertices {
			if state.IsEven[v] == 0 {
				continue
			}
			for _, w := range g.Neighbors(int(v)) {
				if state.IsEven[w] == 0 {
					continue
				}
				if w == m[v] {
					continue
				}
				treeV, treeW := state.Belongs[v], state.Belongs[w]
				if treeV == -1 || treeV != treeW {
					continue
				}
				if state.BlossomBase[v] != -1 && state.BlossomBase[v] == state.BlossomBase[w] {
					continue
				}

				blossom, ok := pathwalk.FindBlossom(state, v, w)
				if !ok {
					continue
				}

				base := blossom[0]
				state.BlossomBase[base] = base

				for i := 1; i < len(blossom); i++ {
					current := blossom[i]
					if state.IsEven[current] != 0 || len(state.PathTable[current]) != 0 {
						continue
					}
					if !state.SelectBlossom[current].TryClaim() {
						continue
					}

					arc := pathwalk.ShorterArc(blossom, i)
					newPath := make([]int32, 0, len(arc)+len(state.PathTable[base]))
					newPath = append(newPath, arc...)
					newPath = append(newPath, state.PathTable[base]...)

					if pathwalk.HasDuplicate(newPath) {
						state.SelectBlossom[current].Rollback()
						continue
					}

					state.PathTable[current] = newPath
					state.BlossomBase[current] = base
					state.IsEven[current] = 1
					local = append(local, current)
				}
			}
		}
		if len(local) > 0 {
			mu.Lock()
			newlyEven = append(newlyEven, local...)
			mu.Unlock()
		}
	})

	return newlyEven
}
