// Package phasestate holds the per-phase arrays the Augment, Expand and
// Blossom kernels read and write: parity labels, tree membership, blossom
// bases, predecessor chains, and the atomic claim cells that arbitrate
// which goroutine gets to grow a given tree, match a given vertex, or
// contract a given blossom. A State is allocated once per MaximumMatching
// call and Reset at the start of every phase, the same allocate-once,
// reuse-every-round discipline cluster_bfs.go's Init/RunCBFS pair uses.
package phasestate

import (
	"sync/atomic"

	"xblossom/internal/atomicbits"
)

// Claim is a single-winner CAS cell. Exactly one goroutine observes
// TryClaim return true for a given Claim between resets.
type Claim struct {
	v int32
}

// TryClaim attempts to move the claim from unclaimed to claimed and
// reports whether this call won it.
func (c *Claim) TryClaim() bool {
	return atomic.CompareAndSwapInt32(&c.v, 0, 1)
}

// Rollback returns a won claim to the unclaimed state, used when a
// provisional win turns out to be invalid (e.g. the partner claim in a
// two-claim protocol was lost, or a contracted blossom path table turns
// out to contain a duplicate vertex).
func (c *Claim) Rollback() {
	atomic.CompareAndSwapInt32(&c.v, 1, 0)
}

func (c *Claim) reset() {
	atomic.StoreInt32(&c.v, 0)
}

// State holds every array the matching engine's kernels touch during one
// phase's augmenting-path search.
type State struct {
	n int

	// IsEven, Belongs, BlossomBase and PathTable are written exactly once
	// per vertex per phase, by whichever goroutine wins the corresponding
	// claim below; every other goroutine only ever reads them after
	// observing that claim as taken, which is what makes plain (rather
	// than atomic) reads and writes of these fields safe under Go's
	// memory model.
	IsEven      []int32
	Belongs     []int32
	BlossomBase []int32
	PathTable   [][]int32

	// SelectTree arbitrates which pair of trees a cross-tree edge joins;
	// indexed by tree id, which is the id of the exposed vertex that
	// rooted the tree. SelectMatch arbitrates which worker advances a
	// given matched edge through Expand. SelectBlossom arbitrates which
	// worker contracts a given odd vertex into a blossom.
	SelectTree    []Claim
	SelectMatch   []Claim
	SelectBlossom []Claim

	emitted *atomicbits.Set
}

// New allocates a State sized for an n-vertex graph.
func New(n int) *State {
	s := &State{
		n:             n,
		IsEven:        make([]int32, n),
		Belongs:       make([]int32, n),
		BlossomBase:   make([]int32, n),
		PathTable:     make([][]int32, n),
		SelectTree:    make([]Claim, n),
		SelectMatch:   make([]Claim, n),
		SelectBlossom: make([]Claim, n),
		emitted:       atomicbits.NewSet(n),
	}
	return s
}

// Reset re-derives the phase state from the current matching m: every
// exposed vertex becomes an even, single-vertex tree root and is returned
// as the initial frontier; every matched vertex starts odd and outside
// any tree.
func (s *State) Reset(m []int32) []int32 {
	var frontier []int32
	for v := 0; v < s.n; v++ {
		s.PathTable[v] = nil
		s.BlossomBase[v] = -1
		s.SelectTree[v].reset()
		s.SelectMatch[v].reset()
		s.SelectBlossom[v].reset()

		if m[v] == -1 {
			s.IsEven[v] = 1
			s.Belongs[v] = int32(v)
			frontier = append(frontier, int32(v))
		} else {
			s.IsEven[v] = 0
			s.Belongs[v] = -1
		}
	}
	s.emitted.Clear()
	return frontier
}

// MarkEmitted records that v has entered this phase's path collection and
// reports whether it had already been marked. It is a defensive,
// O(1)-per-vertex check the matching updater uses to assert the
// vertex-disjointness the claim protocol is supposed to already guarantee;
// it changes no outcome on the happy path.
func (s *State) MarkEmitted(v int32) bool {
	return s.emitted.TestAndSet(int(v))
}
