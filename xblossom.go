// Package xblossom computes a maximum cardinality matching of a general
// (non-bipartite) undirected graph. Each phase searches for a batch of
// vertex-disjoint augmenting paths in parallel, growing alternating trees
// and contracting odd cycles (blossoms) as it goes; the phase either
// yields at least one augmenting path, which the matching updater applies
// before the next phase starts, or finds none, at which point the current
// matching is already maximum.
package xblossom

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"xblossom/csrgraph"
	"xblossom/kernel"
	"xblossom/matching"
	"xblossom/phasestate"
)

// MaximumMatching runs the parallel search to completion on g using
// numThreads workers and returns the resulting matching: match[v] is v's
// partner, or -1 if v is exposed.
func MaximumMatching(g *csrgraph.Graph, numThreads int, opts ...Option) ([]int32, error) {
	if numThreads < 1 {
		return nil, ErrInvalidThreadCount
	}

	cfg := newOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	n := g.NumVertices()
	m := make([]int32, n)
	for i := range m {
		m[i] = -1
	}

	pool, err := kernel.NewPool(numThreads)
	if err != nil {
		return nil, errors.Wrap(err, "xblossom: creating worker pool")
	}
	defer pool.Release()

	state := phasestate.New(n)

	for phase := 0; ; phase++ {
		start := time.Now()
		frontier := state.Reset(m)

		paths := kernel.SearchAndGrow(g, state, m, pool, frontier)
		found := len(paths) > 0

		elapsed := time.Since(start)
		cfg.logger.Debug("phase complete",
			zap.Int("phase", phase),
			zap.Int("frontier_size", len(frontier)),
			zap.Bool("found_augmenting_paths", found),
			zap.Duration("elapsed", elapsed),
		)
		if cfg.observer != nil {
			cfg.observer.OnPhase(phase, len(frontier), found, elapsed)
		}

		if !found {
			return m, nil
		}
		matching.Apply(m, paths, state, pool, cfg.logger)
	}
}

// MaximumMatchingCSR is the Go-native analogue of the pybind11
// max_matching_csr entry point: it validates the CSR arrays, builds a
// Graph, and runs MaximumMatching.
func MaximumMatchingCSR(rowOffsets, colIndices []int32, numThreads int, opts ...Option) ([]int32, error) {
	g, err := csrgraph.New(rowOffsets, colIndices)
	if err != nil {
		return nil, err
	}
	return MaximumMatching(g, numThreads, opts...)
}

// ValidateMatching re-exports matching.Validate for callers that only
// import the top-level package.
func ValidateMatching(g *csrgraph.Graph, m []int32) error {
	return matching.Validate(g, m)
}
