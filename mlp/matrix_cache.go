// Package mlp — the triangular subsequence-matrix cache (spec.md §4.2).
//
// subseqMatrix holds, for every pair of route positions (i, j), the
// Subsequence summarizing the stretch between them: the forward half
// (i <= j) summarizes route[i..j] in route order; the reversed half
// (i > j) summarizes the same span traversed backwards, route[i]..route[j].
// Every neighbourhood operator (operator_swap.go, operator_twoopt.go,
// operator_oropt.go) evaluates candidate moves in O(1) by composing a
// handful of cached cells with concat, instead of recomputing latency from
// scratch. refresh rebuilds the whole cache in O(n^2) and is called once
// per accepted move.
//
// Grounded on original_source's update_edge (main.cpp), which fills the
// same two triangular halves via the identical bottom-up DP.
package mlp

// subseqMatrix is the (n+1)x(n+1) triangular cache over route positions
// 0..n (route[0]==route[n]==depot).
type subseqMatrix struct {
	size int // n+1
	data [][]Subsequence
}

// newSubseqMatrix allocates an empty cache sized for a route of size
// positions (size == n+1).
//
// Complexity: O(n^2) space.
func newSubseqMatrix(size int) *subseqMatrix {
	data := make([][]Subsequence, size)
	for i := range data {
		data[i] = make([]Subsequence, size)
	}
	return &subseqMatrix{size: size, data: data}
}

// refresh rebuilds the whole cache from route, bottom-up.
//
// Contract: len(route) == m.size.
//
// Complexity: O(n^2) time, no extra allocation (reuses m.data).
func (m *subseqMatrix) refresh(route Route, dist *DistanceMatrix) {
	n := m.size

	var i, j int
	// M[0][0] carries W=0: the depot opens every route with zero prior
	// vertices visited, per the W=(i>0) invariant (spec.md §4.2 property 5).
	m.data[0][0] = Subsequence{W: 0, first: route[0], last: route[0]}
	for j = 1; j < n; j++ {
		m.data[j][j] = singleton(route[j])
	}

	// Forward half (i < j): route traversed in order.
	for j = 1; j < n; j++ {
		for i = j - 1; i >= 0; i-- {
			m.data[i][j] = concat(m.data[i][j-1], m.data[j][j], dist)
		}
	}

	// Reversed half (i > j): route traversed backwards from i down to j.
	for i = 1; i < n; i++ {
		for j = i - 1; j >= 0; j-- {
			m.data[i][j] = concat(m.data[i][j+1], m.data[j][j], dist)
		}
	}
}

// forward returns the cached subsequence for route[i..j] in route order.
// Contract: 0 <= i <= j < size.
//
// Complexity: O(1).
func (m *subseqMatrix) forward(i, j int) Subsequence {
	return m.data[i][j]
}

// reversed returns the cached subsequence for route[i..j] traversed
// backwards (i.e. visiting route[i], route[i-1], ..., route[j]).
// Contract: 0 <= j <= i < size.
//
// Complexity: O(1).
func (m *subseqMatrix) reversed(i, j int) Subsequence {
	return m.data[i][j]
}

// latency returns the cumulative latency of the whole cached route:
// M[0][n-1].C, where n-1 == size-1 is the depot's closing position.
//
// Complexity: O(1).
func (m *subseqMatrix) latency() float64 {
	return m.data[0][m.size-1].C
}
