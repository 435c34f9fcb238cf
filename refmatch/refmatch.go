// Package refmatch is a plain sequential maximum-matching solver used only
// as a test oracle for the parallel engine, the same role seq_bfs.go plays
// for cluster_bfs.go: no claims, no goroutines, one vertex at a time.
package refmatch

import "xblossom/csrgraph"

// MaximumMatching returns a maximum matching of g as an array where
// match[v] is v's partner, or -1 if v is exposed.
func MaximumMatching(g *csrgraph.Graph) []int32 {
	n := g.NumVertices()
	match := make([]int32, n)
	for i := range match {
		match[i] = -1
	}
	for v := 0; v < n; v++ {
		if match[v] == -1 {
			tryAugment(g, int32(v), match)
		}
	}
	return match
}

// tryAugment runs one blossom-aware BFS rooted at root, augmenting along
// the first alternating path to another exposed vertex it finds.
func tryAugment(g *csrgraph.Graph, root int32, match []int32) {
	n := int32(g.NumVertices())

	used := make([]bool, n)
	parent := make([]int32, n)
	for i := range parent {
		parent[i] = -1
	}
	base := make([]int32, n)
	for i := range base {
		base[i] = int32(i)
	}

	used[root] = true
	queue := []int32{root}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, to := range g.Neighbors(int(v)) {
			if base[v] == base[to] || match[v] == to {
				continue
			}
			if to == root || (match[to] != -1 && parent[match[to]] != -1) {
				curBase := lca(v, to, match, parent, base)

				blossom := make([]bool, n)
				markPath(v, curBase, to, blossom, base, parent, match)
				markPath(to, curBase, v, blossom, base, parent, match)

				for i := int32(0); i < n; i++ {
					if blossom[base[i]] {
						base[i] = curBase
						if !used[i] {
							used[i] = true
							queue = append(queue, i)
						}
					}
				}
			} else if parent[to] == -1 {
				parent[to] = v
				if match[to] == -1 {
					augment(to, parent, match)
					return
				}
				used[match[to]] = true
				queue = append(queue, match[to])
			}
		}
	}
}

func lca(a, b int32, match, parent, base []int32) int32 {
	n := len(base)
	seen := make([]bool, n)

	x := a
	for {
		x = base[x]
		seen[x] = true
		if match[x] == -1 {
			break
		}
		x = parent[match[x]]
	}

	y := b
	for {
		y = base[y]
		if seen[y] {
			return y
		}
		y = parent[match[y]]
	}
}

func markPath(v, b, child int32, blossom []bool, base, parent, match []int32) {
	for base[v] != b {
		blossom[base[v]] = true
		blossom[base[match[v]]] = true
		parent[v] = child
		child = match[v]
		v = parent[match[v]]
	}
}

func augment(v int32, parent, match []int32) {
	for v != -1 {
		pv := parent[v]
		ppv := match[pv]
		match[v] = pv
		match[pv] = v
		v = ppv
	}
}
