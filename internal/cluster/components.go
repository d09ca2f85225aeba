package cluster

import "sort"

// Components partitions the indices 0..n-1 into connected components of
// the similarity graph. Every index lands in exactly one component;
// isolated indices become singletons. Components are returned largest
// first; equal sizes keep discovery order (lowest starting index first).
//
// Traversal uses an explicit stack rather than recursion so a dense
// batch cannot grow the call stack.
func Components(n int, edges []Edge) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.I] = append(adj[e.I], e.J)
		adj[e.J] = append(adj[e.J], e.I)
	}

	visited := make([]bool, n)
	var components [][]int
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true
		stack := []int{i}
		var comp []int
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			for _, v := range adj[u] {
				if !visited[v] {
					visited[v] = true
					stack = append(stack, v)
				}
			}
		}
		components = append(components, comp)
	}

	sort.SliceStable(components, func(a, b int) bool {
		return len(components[a]) > len(components[b])
	})
	return components
}
