// Package mlp — the 2-opt neighbourhood operator (spec.md §4.4).
//
// twoOpt reverses a contiguous segment route[i+1..j] and re-evaluates the
// resulting route's latency in O(1) via the cache's reversed half, which
// already holds the segment's backward-traversal summary.
//
// Grounded on original_source's best_improvement_2opt (main.cpp).
package mlp

// twoOptBestImprovement scans every pair of positions 0 <= i < j <= n-1
// (n == m.size-1, the depot's closing index) and applies the best
// strictly-improving reversal of route[i+1..j], if one exists.
//
// Complexity: O(n^2) time, O(1) per evaluation via the cache.
func twoOptBestImprovement(route Route, m *subseqMatrix, dist *DistanceMatrix, eps float64) (Route, float64, bool) {
	n := m.size - 1
	bestCost := m.latency()
	bestI, bestJ := -1, -1
	improved := false

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			cost := evalTwoOpt(m, dist, i, j)
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
	if err := reverseArcInPlace(out, bestI+1, bestJ); err != nil {
		return route, m.latency(), false
	}
	return out, bestCost, true
}

// evalTwoOpt computes the latency of route with route[i+1..j] reversed, via:
// pre(0,i) + reversed(j,i+1) + post(j+1,n).
//
// Complexity: O(1).
func evalTwoOpt(m *subseqMatrix, dist *DistanceMatrix, i, j int) float64 {
	n := m.size - 1

	pre := m.forward(0, i)
	mid := m.reversed(j, i+1)
	post := m.forward(j+1, n)

	result := concat(pre, mid, dist)
	result = concat(result, post, dist)
	return result.C
}
