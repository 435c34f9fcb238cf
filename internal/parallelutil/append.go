// Package parallelutil merges the per-kernel vertex buffers the matching
// engine's phase loop produces each round. Expand and Blossom each hand
// back their own newly-even vertices, and the driver needs F ∪ F' before
// calling Blossom and needs Expand's ∪ Blossom's output as the next
// frontier; both are small, known-count unions of slices rather than one
// large buffer that benefits from being sliced into GOMAXPROCS chunks, so
// this copies each input slice into its final position on its own
// goroutine instead of cluster_bfs.go's chunk-by-worker-count split.
package parallelutil

import "sync"

// MergeFrontiers concatenates frontiers into one freshly allocated slice,
// preserving the given order, copying each input frontier in its own
// goroutine. It is the matching engine's analogue of VertexSubset's
// AddVertices: combine several kernels' output vertex sets into the next
// round's frontier without a shared mutable buffer.
func MergeFrontiers(frontiers ...[]int32) []int32 {
	total := 0
	for _, f := range frontiers {
		total += len(f)
	}
	out := make([]int32, total)

	var wg sync.WaitGroup
	offset := 0
	for _, f := range frontiers {
		if len(f) == 0 {
			continue
		}
		dst := out[offset : offset+len(f)]
		wg.Add(1)
		go func(src, dst []int32) {
			defer wg.Done()
			copy(dst, src)
		}(f, dst)
		offset += len(f)
	}
	wg.Wait()

	return out
}
