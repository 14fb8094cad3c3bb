// Package mlp — the swap neighbourhood operator (spec.md §4.4, §9 Open
// Question (a)).
//
// swap exchanges the positions of two non-depot vertices and re-evaluates
// the resulting route's latency in O(1) by composing cached subsequences
// from m, rather than recomputing the whole route. Best-improvement: the
// best strictly-improving exchange over all pairs is applied, if any.
//
// Grounded on original_source's best_improvement_swap (main.cpp).
package mlp

// swapBestImprovement scans every pair of non-depot positions (i, j),
// 1 <= i < j <= n-1, and applies the best strictly-improving exchange of
// route[i] and route[j], if one exists.
//
// Returns the new route and its latency when a move was applied, or the
// unchanged route, its unchanged latency, and applied=false otherwise.
//
// Complexity: O(n^2) time (pairs) * O(1) per evaluation via the cache.
func swapBestImprovement(route Route, m *subseqMatrix, dist *DistanceMatrix, eps float64) (Route, float64, bool) {
	n := m.size - 1 // last non-depot-closing index is n-1; route has n+1 entries
	bestCost := m.latency()
	bestI, bestJ := -1, -1
	improved := false

	for i := 1; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			cost := evalSwap(m, dist, i, j)
			if cost < bestCost-eps {
				bestCost = cost
				bestI, bestJ = i, j
				improved = true
			}
		}
	}

	if !improved {
		return route, m.latency(), false
	}

	out := CopyRoute(route)
	out[bestI], out[bestJ] = out[bestJ], out[bestI]
	return out, bestCost, true
}

// evalSwap computes the latency of route with route[i] and route[j]
// exchanged (i < j), via: pre + singleton(route[j]) + mid + singleton(route[i]) + post.
//
// Complexity: O(1).
func evalSwap(m *subseqMatrix, dist *DistanceMatrix, i, j int) float64 {
	n := m.size - 1

	pre := m.forward(0, i-1)
	post := m.forward(j+1, n)

	result := pre
	result = concat(result, singleton(m.data[j][j].first), dist)
	if i+1 <= j-1 {
		result = concat(result, m.forward(i+1, j-1), dist)
	}
	result = concat(result, singleton(m.data[i][i].first), dist)
	result = concat(result, post, dist)

	return result.C
}
