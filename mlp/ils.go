// Package mlp — the multi-start Iterated Local Search driver (spec.md §4.7).
//
// ils runs Options.MaxStarts independent GRASP+RVND restarts, each followed
// by a perturb/re-descend loop bounded by a per-restart no-improvement
// budget (maxNoImprove), and returns the best solution found across every
// restart. Each restart gets its own RNG substream (rng.go's deriveRNG) so
// results are reproducible regardless of restart count or ordering.
package mlp

import "time"

// ils is the top-level GRASP+ILS search. dist and depot have already been
// validated by the caller (solve.go).
//
// Complexity: O(MaxStarts * MaxNoImprove * n^2) time, dominated by RVND's
// repeated O(n^2) scans and matrix refreshes.
func ils(dist *DistanceMatrix, depot int, opts Options) Solution {
	n := dist.N()
	base := rngFromSeed(opts.Seed)
	budget := maxNoImprove(n, opts)

	var (
		globalBest     Route
		globalBestCost float64
		haveGlobal     bool
		deadline       time.Time
		hasDeadline    bool
	)
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
		hasDeadline = true
	}

	m := newSubseqMatrix(n + 1)

	for start := 0; start < opts.MaxStarts; start++ {
		restartRNG := deriveRNG(base, uint64(start))

		route := construct(dist, depot, restartRNG)
		m.refresh(route, dist)
		route, cost := rvnd(route, m, dist, opts, restartRNG)

		bestLocal, bestLocalCost := route, cost
		noImprove := 0

		for noImprove < budget {
			if hasDeadline && time.Now().After(deadline) {
				break
			}

			candidate := perturb(bestLocal, restartRNG)
			m.refresh(candidate, dist)
			candidate, candCost := rvnd(candidate, m, dist, opts, restartRNG)

			if candCost < bestLocalCost-opts.Eps {
				bestLocal, bestLocalCost = candidate, candCost
				noImprove = 0
			} else {
				noImprove++
			}
		}

		if !haveGlobal || bestLocalCost < globalBestCost {
			globalBest, globalBestCost = bestLocal, bestLocalCost
			haveGlobal = true
		}

		if hasDeadline && time.Now().After(deadline) {
			break
		}
	}

	return Solution{Route: globalBest, Cost: round1e9(globalBestCost)}
}
