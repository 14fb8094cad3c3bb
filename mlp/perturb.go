// Package mlp — double-bridge-style perturbation (spec.md §4.6, §9 Open
// Question (b)).
//
// perturb kicks a locally-optimal route out of its basin of attraction by
// cutting it into four segments and swapping the two inner ones:
//
//	[prefix | A | mid | B | suffix]  ->  [prefix | B | mid | A | suffix]
//
// This is a clean 4-segment rotation. The original's surplus-handling
// arithmetic for when len(A) != len(B) is replaced by this rotation (spec.md
// §9 Open Question (b)): it is a textbook double-bridge-style move and
// trivially preserves the permutation invariant regardless of segment
// sizes, unlike the source arithmetic the spec itself flags as doubtful.
// The three cut points are drawn uniformly from 1..n-1 and rejection-sampled
// until they are distinct and ordered; no segment sizes are drawn, so the
// lengths of A and B are not bounded and B always runs up to the closing
// depot.
package mlp

import "math/rand"

// perturb returns a perturbed copy of route. Routes with fewer than 5
// positions in the non-depot span (n < 6, i.e. fewer than 6 vertices
// including the depot) are too small to cut into four non-empty segments
// and are returned unchanged.
//
// Complexity: O(n) time, O(n) space.
func perturb(route Route, rng *rand.Rand) Route {
	n := len(route) - 1 // last non-depot-closing index
	if n < 6 {
		return CopyRoute(route)
	}

	c1, c2, c3 := drawCutPoints(n, rng)

	out := make(Route, 0, len(route))
	out = append(out, route[0:c1]...)  // prefix
	out = append(out, route[c3:n]...)  // B
	out = append(out, route[c2:c3]...) // mid
	out = append(out, route[c1:c2]...) // A
	out = append(out, route[n])        // suffix (closing depot)
	return out
}

// drawCutPoints rejection-samples three distinct indices 1 <= c1 < c2 < c3 <= n-1.
//
// Complexity: O(1) expected.
func drawCutPoints(n int, rng *rand.Rand) (int, int, int) {
	for {
		c1 := 1 + rng.Intn(n-1)
		c2 := 1 + rng.Intn(n-1)
		c3 := 1 + rng.Intn(n-1)
		if c1 < c2 && c2 < c3 {
			return c1, c2, c3
		}
	}
}
