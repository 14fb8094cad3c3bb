// Package mlp — GRASP restricted-candidate-list construction (spec.md §4.3).
//
// construct builds an initial Hamiltonian route by repeatedly extending the
// partial route with a randomly chosen vertex from a restricted candidate
// list (RCL): the not-yet-visited vertices are ranked ascending by distance
// to the last inserted vertex, and the RCL is the prefix of length
// k = floor(alpha * |remaining|) of that ranking (index 0 when k == 0).
// alpha is redrawn per call from [0, 0.25] (spec.md §9 Open Question (c),
// preserved verbatim from original_source's `rand() mod 26 / 100`).
//
// Grounded on original_source's construction() (main.cpp): nearest-candidate
// greedy-randomized insertion, one vertex at a time, starting and ending at
// the depot.
package mlp

import (
	"math/rand"
	"sort"
)

// alphaSteps is the number of GRASP greediness levels: alpha is drawn
// uniformly from the 26 values 0.00, 0.01, ..., 0.25. spec.md §9 Open
// Question (c): preserved verbatim from the original's `rand() mod 26 / 100`.
const alphaSteps = 26

// construct builds one GRASP-randomized route over dist, starting and
// ending at depot, using rng for both the alpha draw and the RCL pick.
//
// Contract: dist.N() >= 3.
//
// Complexity: O(n^2) time (n RCL passes, each O(n)), O(n) space.
func construct(dist *DistanceMatrix, depot int, rng *rand.Rand) Route {
	n := dist.N()
	alpha := float64(rng.Intn(alphaSteps)) / 100

	remaining := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != depot {
			remaining = append(remaining, v)
		}
	}

	route := make(Route, 0, n+1)
	route = append(route, depot)
	last := depot

	for len(remaining) > 0 {
		sort.Slice(remaining, func(i, j int) bool {
			return dist.At(last, remaining[i]) < dist.At(last, remaining[j])
		})

		k := int(alpha * float64(len(remaining)))
		pick := 0
		if k > 0 {
			pick = rng.Intn(k)
		}

		chosen := remaining[pick]
		route = append(route, chosen)
		last = chosen

		remaining[pick] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}

	route = append(route, depot)
	return route
}
