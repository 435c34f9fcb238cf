package csrgraph

import "github.com/pkg/errors"

// Edge is an unordered pair of vertex ids.
type Edge struct {
	U, V int32
}

// FromEdges builds a Graph for n vertices from an edge list, the inverse
// of cluster BFS's BuildAdjFromCSR/FlattenCSR pair: it first grows a
// per-vertex adjacency list, then flattens it into row_offsets/col_indices.
// It is meant for tests and small CLI-adjacent tooling, not hot paths.
func FromEdges(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, errors.Wrap(ErrInvalidCSR, "n must be >= 0")
	}
	adj := make([][]int32, n)
	for _, e := range edges {
		if e.U < 0 || int(e.U) >= n || e.V < 0 || int(e.V) >= n {
			return nil, errors.Wrapf(ErrInvalidCSR, "edge (%d,%d) out of range [0,%d)", e.U, e.V, n)
		}
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	rowOffsets := make([]int32, n+1)
	var total int32
	for v := 0; v < n; v++ {
		rowOffsets[v] = total
		total += int32(len(adj[v]))
	}
	rowOffsets[n] = total

	colIndices := make([]int32, 0, total)
	for v := 0; v < n; v++ {
		colIndices = append(colIndices, adj[v]...)
	}

	return New(rowOffsets, colIndices)
}
