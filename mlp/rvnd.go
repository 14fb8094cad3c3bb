// Package mlp — Randomised Variable Neighbourhood Descent (spec.md §4.5).
//
// rvnd repeatedly applies the best-improving move from a randomly ordered
// list of neighbourhood operators, restarting the list from scratch after
// every accepted move and dropping an operator from the list only once it
// yields no improvement. The search stops once every operator in the list
// has been tried without improvement. The subsequence matrix is refreshed
// after every accepted move (O(n^2)).
//
// Grounded on original_source's local_search (main.cpp). spec.md §9 Open
// Question (a) is resolved here via Options.IncludeSwap: when true (the
// default), opSwap is part of the neighbourhood list and reachable.
package mlp

import "math/rand"

// Neighbourhood operator identifiers.
const (
	opSwap = iota
	opTwoOpt
	opOrOpt1
	opOrOpt2
	opOrOpt3
)

// rvnd runs randomised variable neighbourhood descent on route in place
// (logically — it returns the improved route), refreshing m after every
// accepted move. Returns the locally optimal route and its latency.
//
// Complexity: each full pass over the neighbourhood list is O(n^2); the
// number of passes is bounded by the number of accepted improving moves,
// which is finite since latency strictly decreases.
func rvnd(route Route, m *subseqMatrix, dist *DistanceMatrix, opts Options, rng *rand.Rand) (Route, float64) {
	neighborhoods := initialNeighborhoods(opts.IncludeSwap)
	cur := route
	m.refresh(cur, dist)
	curCost := m.latency()

	for len(neighborhoods) > 0 {
		idx := rng.Intn(len(neighborhoods))
		id := neighborhoods[idx]

		next, nextCost, improved := applyOperator(id, cur, m, dist, opts.Eps)
		if improved {
			cur = next
			curCost = nextCost
			m.refresh(cur, dist)
			neighborhoods = initialNeighborhoods(opts.IncludeSwap)
			continue
		}

		neighborhoods[idx] = neighborhoods[len(neighborhoods)-1]
		neighborhoods = neighborhoods[:len(neighborhoods)-1]
	}

	return cur, curCost
}

// initialNeighborhoods returns a fresh copy of the full operator id list,
// honoring Options.IncludeSwap.
//
// Complexity: O(1).
func initialNeighborhoods(includeSwap bool) []int {
	if includeSwap {
		return []int{opSwap, opTwoOpt, opOrOpt1, opOrOpt2, opOrOpt3}
	}
	return []int{opTwoOpt, opOrOpt1, opOrOpt2, opOrOpt3}
}

// applyOperator dispatches to the best-improvement evaluator for id.
//
// Complexity: O(n^2), dominated by the chosen operator's scan.
func applyOperator(id int, route Route, m *subseqMatrix, dist *DistanceMatrix, eps float64) (Route, float64, bool) {
	switch id {
	case opSwap:
		return swapBestImprovement(route, m, dist, eps)
	case opTwoOpt:
		return twoOptBestImprovement(route, m, dist, eps)
	case opOrOpt1:
		return orOptBestImprovement(route, m, dist, eps, 1)
	case opOrOpt2:
		return orOptBestImprovement(route, m, dist, eps, 2)
	case opOrOpt3:
		return orOptBestImprovement(route, m, dist, eps, 3)
	default:
		return route, m.latency(), false
	}
}
