// Package mlp solves the Minimum Latency Problem (MLP): given a complete
// weighted graph with a designated depot, find a Hamiltonian tour starting
// and ending at the depot that minimises the sum of arrival times at every
// intermediate location — not the total tour length.
//
// This file defines common types, configuration options, and sentinel
// errors shared by the GRASP construction, the neighbourhood operators,
// and the Iterated Local Search (ILS) driver.
//
// Design goals:
//   - Mathematical rigor: precise, specialized errors; explicit invariants for routes.
//   - Determinism: all random-driven heuristics are controlled by a Seed.
//   - Zero surprises: sensible defaults (GRASP construction + full RVND + ILS).
package mlp

import (
	"errors"
	"time"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation, feasibility, algorithm governance)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("mlp: matrix is not square")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("mlp: negative distance encountered")

	// ErrAsymmetry indicates dist[i][j] != dist[j][i]. MLP requires a symmetric instance.
	ErrAsymmetry = errors.New("mlp: asymmetric distance matrix")

	// ErrNonZeroDiagonal indicates some dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("mlp: non-zero self-distance")

	// ErrIncompleteGraph is returned when an edge is missing (+Inf entry).
	// MLP requires a complete graph; there is no metric-closure escape hatch.
	ErrIncompleteGraph = errors.New("mlp: incomplete distance matrix (graph is not complete)")

	// ErrDimensionMismatch indicates an unexpected matrix/route shape.
	ErrDimensionMismatch = errors.New("mlp: dimension mismatch")

	// ErrStartOutOfRange indicates Options.StartVertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("mlp: start vertex out of range")

	// ErrDegenerateInstance indicates n < 3: no non-trivial Hamiltonian tour exists.
	ErrDegenerateInstance = errors.New("mlp: degenerate instance (n < 3)")
)

// Governance sentinels.
var (
	// ErrTimeLimit names an exhausted time budget. No function in this
	// package returns it: when Options.TimeLimit runs out, Solve stops early
	// and returns the best Solution found so far with a nil error.
	ErrTimeLimit = errors.New("mlp: time limit exceeded")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Solution is a Route paired with its latency cost.
//
// Invariants:
//   - len(Route) == n+1; Route[0] == Route[n] == depot (0 internally).
//   - Every vertex in [0..n-1] appears exactly once in Route[0:n].
//   - Cost equals the cumulative latency of Route (sum of arrival times at
//     every non-depot vertex), rounded to 1e-9.
type Solution struct {
	// Route is the ordered sequence of 0-based vertex indices.
	Route Route

	// Cost is the latency (cumulative) cost of Route.
	Cost float64
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Default knobs.
const (
	// DefaultEps is the minimal strictly-better improvement for move acceptance.
	// spec.md §4.1 mandates strict '<' with no tolerance; the zero default
	// preserves that while leaving the knob available to debug builds.
	DefaultEps = 0.0

	// DefaultMaxStarts is the number of GRASP multi-start restarts (spec §4.7).
	DefaultMaxStarts = 10

	// maxIterThreshold is the n-threshold past which MaxNoImprove is capped at 100 (spec §4.7).
	maxIterThreshold = 100
)

// Options configures the GRASP+ILS driver.
// Zero value is not meaningful; use DefaultOptions() and override fields as needed.
type Options struct {
	// StartVertex selects the depot index [0..n-1]. Default: 0 (external node id 1).
	StartVertex int

	// Seed controls the deterministic RNG stream. Seed==0 uses a fixed
	// internal default seed (see rng.go), matching the teacher's policy.
	Seed int64

	// MaxStarts is the number of GRASP multi-start restarts. Default: 10.
	MaxStarts int

	// MaxNoImprove caps the no-improvement counter per restart (spec §4.7).
	// Zero means "derive from n": n if n<=100, else 100.
	MaxNoImprove int

	// Eps is the minimal strict improvement accepted by neighbourhood moves.
	// Default: 0 (strict '<', per spec §4.1).
	Eps float64

	// IncludeSwap resolves spec §4.5 / §9 Open Question (a): whether the
	// swap operator is reachable through RVND. Default: true (the spec's
	// adopted "inclusive reading").
	IncludeSwap bool

	// TimeLimit optionally bounds wall-clock time for the ILS driver.
	// Zero means "no limit".
	TimeLimit time.Duration
}

// DefaultOptions returns a fully populated Options struct with safe defaults:
//   - Depot at vertex 0, deterministic RNG (Seed=0)
//   - 10 GRASP restarts, MaxNoImprove derived from n
//   - Strict-improvement acceptance (Eps=0), swap included in RVND
//   - No time limit
func DefaultOptions() Options {
	return Options{
		StartVertex:  0,
		Seed:         0,
		MaxStarts:    DefaultMaxStarts,
		MaxNoImprove: 0,
		Eps:          DefaultEps,
		IncludeSwap:  true,
		TimeLimit:    0,
	}
}

// maxNoImprove derives the per-restart no-improvement budget for an
// instance of size n, honoring an explicit override in opts.
//
// Complexity: O(1).
func maxNoImprove(n int, opts Options) int {
	if opts.MaxNoImprove > 0 {
		return opts.MaxNoImprove
	}
	if n <= maxIterThreshold {
		return n
	}
	return maxIterThreshold
}
