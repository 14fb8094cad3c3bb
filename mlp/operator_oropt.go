// Package mlp — the or-opt family of neighbourhood operators (spec.md §4.4).
//
// orOpt relocates a contiguous segment of L consecutive non-depot vertices
// (L in {1,2,3}, giving or-opt-1/2/3) to a different position in the route,
// preserving the segment's internal order. Both forward relocations
// (segment moved later in the route) and backward relocations (moved
// earlier) are evaluated; the best strictly-improving relocation is
// applied. Every candidate is scored in O(1) via the cache.
//
// Grounded on original_source's best_improvement_or_opt (main.cpp),
// generalized over L via a single parameterized scan instead of three
// near-duplicate functions.
package mlp

// orOptBestImprovement scans every segment of length L starting at a
// non-depot position i and every valid relocation target, applying the
// best strictly-improving move, if any.
//
// Contract: 1 <= L <= 3.
//
// Complexity: O(n^2) time for fixed L, O(1) per evaluation via the cache.
func orOptBestImprovement(route Route, m *subseqMatrix, dist *DistanceMatrix, eps float64, L int) (Route, float64, bool) {
	n := m.size - 1
	bestCost := m.latency()
	improved := false
	var bestI, bestP int
	var bestForward bool

	for i := 1; i+L-1 <= n-1; i++ {
		// Forward relocation: segment moves to sit after original position p.
		for p := i + L; p <= n-1; p++ {
			cost := evalOrOptForward(m, dist, i, L, p)
			if cost < bestCost-eps {
				bestCost, bestI, bestP, bestForward, improved = cost, i, p, true, true
			}
		}
		// Backward relocation: segment moves to sit after original position p.
		for p := 0; p <= i-2; p++ {
			cost := evalOrOptBackward(m, dist, i, L, p)
			if cost < bestCost-eps {
				bestCost, bestI, bestP, bestForward, improved = cost, i, p, false, true
			}
		}
	}

	if !improved {
		return route, m.latency(), false
	}

	return applyOrOpt(route, bestI, L, bestP, bestForward), bestCost, true
}

// evalOrOptForward scores relocating route[i..i+L-1] to sit immediately
// after original position p (p >= i+L), via:
// pre(0,i-1) + mid(i+L,p) + segment(i,i+L-1) + post(p+1,n).
//
// Complexity: O(1).
func evalOrOptForward(m *subseqMatrix, dist *DistanceMatrix, i, L, p int) float64 {
	n := m.size - 1
	pre := m.forward(0, i-1)
	mid := m.forward(i+L, p)
	seg := m.forward(i, i+L-1)
	post := m.forward(p+1, n)

	result := concat(pre, mid, dist)
	result = concat(result, seg, dist)
	result = concat(result, post, dist)
	return result.C
}

// evalOrOptBackward scores relocating route[i..i+L-1] to sit immediately
// after original position p (p <= i-2), via:
// pre(0,p) + segment(i,i+L-1) + mid(p+1,i-1) + post(i+L,n).
//
// Complexity: O(1).
func evalOrOptBackward(m *subseqMatrix, dist *DistanceMatrix, i, L, p int) float64 {
	n := m.size - 1
	pre := m.forward(0, p)
	seg := m.forward(i, i+L-1)
	mid := m.forward(p+1, i-1)
	post := m.forward(i+L, n)

	result := concat(pre, seg, dist)
	result = concat(result, mid, dist)
	result = concat(result, post, dist)
	return result.C
}

// applyOrOpt materializes the relocation of route[i..i+L-1] to sit
// immediately after original position p, in the direction given by forward.
//
// Complexity: O(n) time, O(n) space.
func applyOrOpt(route Route, i, L, p int, forward bool) Route {
	n := len(route) - 1
	out := make(Route, 0, n+1)

	if forward {
		out = append(out, route[0:i]...)
		out = append(out, route[i+L:p+1]...)
		out = append(out, route[i:i+L]...)
		out = append(out, route[p+1:n+1]...)
		return out
	}

	out = append(out, route[0:p+1]...)
	out = append(out, route[i:i+L]...)
	out = append(out, route[p+1:i]...)
	out = append(out, route[i+L:n+1]...)
	return out
}
