package kernel

import (
	"sync"

	"xblossom/csrgraph"
	"xblossom/phasestate"
)

// Expand grows every even frontier vertex's tree by one matched edge: for
// v even and w an untreed neighbor of v, if w is matched to some x, claim
// the matched edge (w,x) and bring both into v's tree — w odd, x even —
// with x's predecessor chain set to [w, v, ...v's own chain...].
//
// If w is unmatched, Expand does nothing: an unmatched vertex is the even
// root of its own tree (see phasestate.State.Reset), so an edge to it is
// a cross-tree edge for Augment, not a growth opportunity for this tree.
// The x == -1 guard also keeps -1 from being used as a vertex index.
func Expand(g *csrgraph.Graph, state *phasestate.State, m []int32, pool *Pool, frontier []int32) []int32 {
	var mu sync.Mutex
	var grown []int32

	pool.Dispatch(frontier, func(_ int, vertices []int32) {
		var local []int32
		for _, v := range vertices {
			for _, w := range g.Neighbors(int(v)) {
				if state.Belongs[w] != -1 {
					continue
				}
				x := m[w]
				if x == -1 {
					continue
				}

				minWX := w
				if x < minWX {
					minWX = x
				}
				if !state.SelectMatch[minWX].TryClaim() {
					continue
				}

				chain := make([]int32, 0, 2+len(state.PathTable[v]))
				chain = append(chain, w, v)
				chain = append(chain, state.PathTable[v]...)
				state.PathTable[x] = chain

				state.IsEven[w] = 0
				state.IsEven[x] = 1
				state.Belongs[w] = state.Belongs[v]
				state.Belongs[x] = state.Belongs[v]

				local = append(local, x)
			}
		}
		if len(local) > 0 {
			mu.Lock()
			grown = append(grown, local...)
			mu.Unlock()
		}
	})

	return grown
}
