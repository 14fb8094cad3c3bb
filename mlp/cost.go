// Package mlp — cost utilities shared by construction, operators, and the ILS driver.
//
// This file provides the reference (brute-force) latency cost of a route,
// used to validate Solution invariants and as the ground truth the
// subsequence algebra (subsequence.go, matrix_cache.go) is checked against
// in tests.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity:
//   - O(n) time for a route of length n+1 (one pass that keeps a running
//     arrival time and adds it at every stop), O(1) extra space.
package mlp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// LatencyCost computes the cumulative latency of route over dist:
//
//	Latency(route) = sum_{k=1}^{n} sum_{j=0}^{k-1} dist[route[j]][route[j+1]]
//
// i.e. the sum, over every non-depot stop, of the arrival time at that stop.
// This is the direct O(n) reference the subsequence matrix's M[0][n].C
// must equal (see matrix_cache.go).
//
// Contract:
//   - route must satisfy ValidateRoute(route, dist.N(), depot).
//
// Complexity: O(n).
func LatencyCost(dist *DistanceMatrix, route Route, depot int) (float64, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	n := dist.N()
	if err := ValidateRoute(route, n, depot); err != nil {
		return 0, err
	}

	var (
		arrival float64
		total   float64
		i       int
	)
	for i = 0; i < n; i++ {
		arrival += dist.At(route[i], route[i+1])
		total += arrival
	}
	return round1e9(total), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps costs stable across platforms without affecting algorithmic correctness.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
