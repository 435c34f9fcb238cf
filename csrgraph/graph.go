// Package csrgraph holds the read-only compressed-sparse-row graph store
// the matching engine searches. Construction validates the arrays once and
// aggregates every violation found, rather than stopping at the first one.
package csrgraph

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Graph is an immutable undirected graph in CSR form. Every edge appears
// twice in colIndices, once from each endpoint, matching the layout
// original_source/main.cpp builds before calling the solver.
type Graph struct {
	rowOffsets []int32
	colIndices []int32
}

// New validates rowOffsets and colIndices and returns a Graph that owns a
// private copy of both. rowOffsets must have at least one entry (n+1 for
// an n-vertex graph, n possibly zero) and must be non-decreasing;
// rowOffsets[n] must equal len(colIndices); every entry of colIndices must
// be a valid vertex id.
func New(rowOffsets, colIndices []int32) (*Graph, error) {
	var errs error

	if len(rowOffsets) == 0 {
		return nil, errors.Wrap(ErrInvalidCSR, "row_offsets must have at least one element")
	}
	n := len(rowOffsets) - 1

	for i := 0; i < n; i++ {
		if rowOffsets[i] > rowOffsets[i+1] {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidCSR, "row_offsets not monotonic at index %d", i))
		}
		if rowOffsets[i] < 0 {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidCSR, "row_offsets[%d] is negative", i))
		}
	}
	if n >= 0 && int(rowOffsets[n]) != len(colIndices) {
		errs = multierr.Append(errs, errors.Wrapf(ErrInvalidCSR,
			"row_offsets[%d]=%d disagrees with len(col_indices)=%d", n, rowOffsets[n], len(colIndices)))
	}
	for i, v := range colIndices {
		if v < 0 || int(v) >= n {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidCSR,
				"col_indices[%d]=%d out of range [0,%d)", i, v, n))
		}
	}
	if errs != nil {
		return nil, errs
	}

	g := &Graph{
		rowOffsets: append([]int32(nil), rowOffsets...),
		colIndices: append([]int32(nil), colIndices...),
	}
	return g, nil
}

// NumVertices returns n.
func (g *Graph) NumVertices() int {
	return len(g.rowOffsets) - 1
}

// EdgeCount returns the number of undirected edges, i.e. half the length
// of col_indices, mirroring main.cpp's "edge_count/2" print.
func (g *Graph) EdgeCount() int {
	return len(g.colIndices) / 2
}

// Neighbors returns v's adjacency slice. The returned slice aliases the
// Graph's internal storage and must not be mutated.
func (g *Graph) Neighbors(v int) []int32 {
	return g.colIndices[g.rowOffsets[v]:g.rowOffsets[v+1]]
}

// RowOffsets returns the graph's row_offsets array.
func (g *Graph) RowOffsets() []int32 {
	return g.rowOffsets
}

// ColIndices returns the graph's col_indices array.
func (g *Graph) ColIndices() []int32 {
	return g.colIndices
}
