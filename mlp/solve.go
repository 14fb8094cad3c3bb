// Package mlp — unified dispatcher for the MLP solver.
//
// Solve and SolveDistanceMatrix are the two public entry points: validate
// the instance and Options, then run GRASP+ILS (ils.go) to completion.
//
// Design principles:
//   - Deterministic: seed routing to heuristics; no time-based randomness
//     in the algorithm core (time.Now is used only for the optional
//     wall-clock budget, never to seed an RNG).
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a sentinel suffices.
//   - Stable cost: the returned cost is rounded to 1e-9 to prevent FP drift.
package mlp

import "github.com/rsilveira/mlp-ils/matrix"

// Solve computes a (heuristically) minimum-latency Hamiltonian cycle over
// dist, starting and ending at opts.StartVertex.
//
// Contracts:
//   - dist must be non-nil, square, n>=3, symmetric, complete, zero diagonal
//     (see NewDistanceMatrix).
//   - opts.StartVertex must be in [0..n-1].
//
// Errors: ErrNonSquare, ErrDegenerateInstance, ErrNonZeroDiagonal,
// ErrIncompleteGraph, ErrNegativeWeight, ErrAsymmetry, ErrDimensionMismatch,
// ErrStartOutOfRange — see NewDistanceMatrix and validateOptions.
//
// Complexity: O(MaxStarts * MaxNoImprove * n^2), see ils.go.
func Solve(dist *matrix.Dense, opts Options) (Solution, error) {
	dm, err := NewDistanceMatrix(dist)
	if err != nil {
		return Solution{}, err
	}
	return SolveDistanceMatrix(dm, opts)
}

// SolveDistanceMatrix is Solve's counterpart for callers that already hold a
// validated *DistanceMatrix — instance.ReadFile and instance.FromGraph both
// return one, so cmd/mlp-solve and programmatic callers use this directly
// instead of re-validating a *matrix.Dense.
//
// Errors: ErrStartOutOfRange and anything validateOptions reports.
func SolveDistanceMatrix(dm *DistanceMatrix, opts Options) (Solution, error) {
	if err := validateOptions(opts, dm.N()); err != nil {
		return Solution{}, err
	}
	return ils(dm, opts.StartVertex, opts), nil
}
