// Package mlp solves the Minimum Latency Problem (MLP) over dense distance
// matrices with a consistent API, strict sentinel errors, deterministic
// behavior, and stable cost rounding (1e-9). The package exposes a GRASP
// construction, five best-improvement neighbourhood operators driven by a
// randomised variable neighbourhood descent (RVND), a double-bridge-style
// perturbation, and a multi-start Iterated Local Search (ILS) driver behind
// two entry points, Solve and SolveDistanceMatrix.
//
// # What & Why
//
// Given an n×n symmetric distance matrix dist and a depot, mlp computes a
// Hamiltonian cycle (Route) that minimises the sum of arrival times at
// every non-depot vertex — the latency or cumulative cost — rather than
// the total edge length a classical TSP solver would minimise.
//
//	Construction: GRASP restricted-candidate-list nearest insertion (§4.3).
//	Local search: RVND over {swap, 2-opt, or-opt-1, or-opt-2, or-opt-3} (§4.4-4.5).
//	Metaheuristic: ILS with randomised multi-start and double-bridge perturbation (§4.6-4.7).
//
// # The subsequence algebra
//
// Every neighbourhood move is evaluated in O(1) after an O(n²)
// precomputation, using a triangular cache of subsequence summaries
// (W, T, C, first, last) closed under a non-commutative, associative
// concatenation operator. See subsequence.go and matrix_cache.go.
//
// # Determinism & Stability
//
//   - No time-based randomness inside the algorithm: every randomized
//     decision consumes a seeded *rand.Rand (see rng.go). Seed==0 gives a
//     fixed stream.
//   - Move acceptance is strict '<' with no tolerance (Options.Eps, default 0).
//   - Final reported costs are rounded to 1e-9 (round1e9) to avoid FP drift
//     across platforms; the comparisons that drive the search itself are
//     never rounded.
//
// # Input Requirements
//
//	dist must be a square n×n matrix, n>=3. Diagonal == 0. No negatives, no NaN.
//	The graph must be complete (no +Inf entries) and symmetric
//	(dist[i][j]==dist[j][i]); MLP makes no provision for asymmetric instances.
//
// # Options
//
//	type Options struct {
//	    StartVertex  int           // depot index [0..n-1] (default 0)
//	    Seed         int64         // deterministic RNG seed (0=stable default)
//	    MaxStarts    int           // GRASP multi-start restarts (default 10)
//	    MaxNoImprove int           // per-restart no-improve budget (0=derive from n)
//	    Eps          float64       // minimal strict improvement (default 0)
//	    IncludeSwap  bool          // include swap in RVND (default true)
//	    TimeLimit    time.Duration // soft wall-clock budget (0=none)
//	}
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrNonSquare, ErrNegativeWeight, ErrAsymmetry, ErrNonZeroDiagonal,
//	ErrIncompleteGraph, ErrDimensionMismatch, ErrStartOutOfRange,
//	ErrDegenerateInstance, ErrTimeLimit.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Results
//
//	type Solution struct {
//	    Route Route   // len==n+1, Route[0]==Route[n]==StartVertex, each 0..n-1 appears once
//	    Cost  float64 // cumulative latency, rounded to 1e-9
//	}
//
// # Mathematics (references)
//
//	Concatenation of subsequences sigma1 then sigma2, joined by edge e = d[sigma1.last][sigma2.first]:
//	  W = sigma1.W + sigma2.W
//	  T = sigma1.T + e + sigma2.T
//	  C = sigma1.C + sigma2.W*(sigma1.T + e) + sigma2.C
//	Latency(route) = M[0][n].C, where M is the subsequence matrix of the whole route.
package mlp
