// Package mlp — the subsequence-concatenation algebra (spec.md §4.1).
//
// A Subsequence summarizes a contiguous stretch of a route as a tuple
// (W, T, C, first, last): vertex count, travel time, cumulative latency
// contributed by that stretch alone, and its two endpoints. Subsequences
// compose via concat, a non-commutative, associative operator that joins
// two adjacent stretches through a single edge in O(1).
//
// Grounded on original_source's Subsequence::Concatenate (main.cpp), which
// this package follows verbatim in arithmetic, generalized to symbolic
// vertex ids instead of array-index bookkeeping.
package mlp

// Subsequence summarizes a contiguous stretch sigma of a route.
//
//	W     number of vertices in sigma
//	T     total travel time (edge-length sum) across sigma
//	C     cumulative latency contributed by sigma in isolation, i.e. the sum
//	      of arrival times at every vertex of sigma measured from sigma's own
//	      first vertex
//	first the first vertex of sigma
//	last  the last vertex of sigma
type Subsequence struct {
	W     int
	T     float64
	C     float64
	first int
	last  int
}

// singleton returns the subsequence consisting of the single vertex v.
//
// Complexity: O(1).
func singleton(v int) Subsequence {
	return Subsequence{W: 1, T: 0, C: 0, first: v, last: v}
}

// concat joins sigma1 then sigma2 through the edge (sigma1.last, sigma2.first),
// whose length is e = dist.At(sigma1.last, sigma2.first).
//
// Formulas (spec.md §4.1):
//
//	W = sigma1.W + sigma2.W
//	T = sigma1.T + e + sigma2.T
//	C = sigma1.C + sigma2.W*(sigma1.T + e) + sigma2.C
//
// concat is associative but NOT commutative: concat(a,b) != concat(b,a) in
// general, because latency accumulates directionally from the route's start.
//
// Contract: sigma2.W >= 1 (no empty right-hand subsequence). sigma1.W >= 1
// except for the depot-anchored M[0][0], whose W is 0 by spec's diagonal
// convention (property 5): the depot opens the route with zero prior
// vertices counted.
//
// Complexity: O(1).
func concat(sigma1, sigma2 Subsequence, dist *DistanceMatrix) Subsequence {
	e := dist.At(sigma1.last, sigma2.first)
	return Subsequence{
		W:     sigma1.W + sigma2.W,
		T:     sigma1.T + e + sigma2.T,
		C:     sigma1.C + float64(sigma2.W)*(sigma1.T+e) + sigma2.C,
		first: sigma1.first,
		last:  sigma2.last,
	}
}
