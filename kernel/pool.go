// Package kernel implements the three parallel kernels of one augmenting
// path search phase — Augment, Expand, Blossom — plus the round-robin
// worker pool they and the matching updater share.
package kernel

import (
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Pool is a fixed-size goroutine pool shared across every phase of one
// MaximumMatching call, so that worker goroutines are created once and
// reused kernel to kernel instead of spawned fresh per dispatch, the way
// cluster_bfs.go's VertexSubset.Apply spawns a goroutine per vertex on
// every call.
type Pool struct {
	numThreads int
	pool       *ants.Pool
}

// NewPool creates a Pool with exactly numThreads pre-allocated workers.
func NewPool(numThreads int) (*Pool, error) {
	p, err := ants.NewPool(numThreads, ants.WithPreAlloc(true))
	if err != nil {
		return nil, err
	}
	return &Pool{numThreads: numThreads, pool: p}, nil
}

// Release returns the pool's workers. Call once the search is done.
func (p *Pool) Release() {
	p.pool.Release()
}

// Go submits fn to the pool, which waits for a free worker while all of
// them are busy. If Submit returns an error (for example because the pool
// is already released), fn runs inline instead, so a pool error never
// silently drops work.
func (p *Pool) Go(fn func()) {
	if err := p.pool.Submit(fn); err != nil {
		fn()
	}
}

// Dispatch partitions frontier round-robin across p.numThreads workers —
// worker i handles frontier[i], frontier[i+numThreads], frontier[i+2*numThreads],
// ... — and calls work(workerIndex, assignedVertices) once per worker,
// blocking until every worker has returned. There is no work stealing:
// an idle worker that finishes its slice early simply waits.
func (p *Pool) Dispatch(frontier []int32, work func(workerIndex int, vertices []int32)) {
	if len(frontier) == 0 {
		return
	}
	numThreads := p.numThreads
	if numThreads > len(frontier) {
		numThreads = len(frontier)
	}

	var wg sync.WaitGroup
	for i := 0; i < numThreads; i++ {
		idx := i
		var assigned []int32
		for j := idx; j < len(frontier); j += p.numThreads {
			assigned = append(assigned, frontier[j])
		}
		wg.Add(1)
		p.Go(func() {
			defer wg.Done()
			work(idx, assigned)
		})
	}
	wg.Wait()
}
