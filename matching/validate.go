package matching

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"xblossom/csrgraph"
)

// Validate checks that m is a symmetric matching using only edges of g:
// for every matched v, M[M[v]] == v, and (v, M[v]) must be an edge of g.
// It mirrors main.cpp's testMatching, generalized to report every
// violation instead of asserting on the first one.
func Validate(g *csrgraph.Graph, m []int32) error {
	var errs error
	for v, mv := range m {
		if mv == -1 {
			continue
		}
		if int(mv) < 0 || int(mv) >= len(m) {
			errs = multierr.Append(errs, errors.Errorf("matching: M[%d]=%d out of range", v, mv))
			continue
		}
		if m[mv] != int32(v) {
			errs = multierr.Append(errs, errors.Errorf(
				"matching: M[%d]=%d but M[%d]=%d, not symmetric", v, mv, mv, m[mv]))
		}
		if !isEdge(g, v, int(mv)) {
			errs = multierr.Append(errs, errors.Errorf("matching: (%d,%d) is not an edge of the graph", v, mv))
		}
	}
	return errs
}

// Size returns the number of matched edges (not endpoints).
func Size(m []int32) int {
	n := 0
	for v, mv := range m {
		if mv != -1 && int(mv) > v {
			n++
		}
	}
	return n
}

func isEdge(g *csrgraph.Graph, u, v int) bool {
	for _, w := range g.Neighbors(u) {
		if int(w) == v {
			return true
		}
	}
	return false
}
