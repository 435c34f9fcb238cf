// Package pathwalk reconstructs augmenting paths and blossom cycles from
// a phasestate.State's path tables. Every PathTable entry is stored
// eagerly: PathTable[v] already holds the full predecessor chain from v
// (exclusive) up to v's tree root (inclusive), because Expand and Blossom
// both build a new entry by concatenating the vertex's immediate arc with
// the already-finalized chain of the vertex it attaches to. That keeps the
// walk in this package a single slice copy instead of a multi-hop chase.
package pathwalk

import "xblossom/phasestate"

// ToRoot returns [v, pred1, pred2, ..., root].
func ToRoot(state *phasestate.State, v int32) []int32 {
	chain := state.PathTable[v]
	out := make([]int32, 0, len(chain)+1)
	out = append(out, v)
	out = append(out, chain...)
	return out
}

// FindBlossom walks the root-paths of v and w, which must belong to the
// same tree, and returns the blossom cycle B = [base, ...] described by
// the odd-cycle contraction rule: base first, then the arc from base down
// to v, then the arc from w back up toward (but not including) base.
//
// ok is false if the two root-paths never converge, which can only happen
// if a concurrent blossom contraction changed the tree's shape out from
// under this walk, or if the resulting cycle would revisit a vertex.
// Either way the caller should simply drop this candidate.
func FindBlossom(state *phasestate.State, v, w int32) (blossom []int32, ok bool) {
	pathV := ToRoot(state, v)
	pathW := ToRoot(state, w)

	pos := make(map[int32]int, len(pathV))
	for i, u := range pathV {
		pos[u] = i
	}

	lcaW := -1
	for i, u := range pathW {
		if _, found := pos[u]; found {
			lcaW = i
			break
		}
	}
	if lcaW == -1 {
		return nil, false
	}
	base := pathW[lcaW]
	lcaV := pos[base]

	blossom = make([]int32, 0, lcaV+lcaW+1)
	blossom = append(blossom, base)
	for i := lcaV - 1; i >= 0; i-- {
		blossom = append(blossom, pathV[i])
	}
	blossom = append(blossom, pathW[:lcaW]...)

	seen := make(map[int32]bool, len(blossom))
	for _, u := range blossom {
		if seen[u] {
			return nil, false
		}
		seen[u] = true
	}
	return blossom, true
}

// ShorterArc returns the predecessor list a freshly-contracted vertex at
// position i of blossom should receive: either the backward arc toward
// base (blossom[i-1], ..., blossom[0]) or the forward arc that wraps
// around the far side of the cycle (blossom[i+1], ..., blossom[len-1],
// base), whichever is shorter. Ties favor the backward arc.
func ShorterArc(blossom []int32, i int) []int32 {
	backward := make([]int32, i)
	for k := 0; k < i; k++ {
		backward[k] = blossom[i-1-k]
	}

	forward := make([]int32, 0, len(blossom)-i)
	forward = append(forward, blossom[i+1:]...)
	forward = append(forward, blossom[0])

	if len(forward) < len(backward) {
		return forward
	}
	return backward
}

// HasDuplicate reports whether path contains the same vertex twice. It is
// the O(L^2) safety net the Blossom kernel runs before committing a newly
// contracted vertex's path table.
func HasDuplicate(path []int32) bool {
	for i := 0; i < len(path); i++ {
		for j := i + 1; j < len(path); j++ {
			if path[i] == path[j] {
				return true
			}
		}
	}
	return false
}
