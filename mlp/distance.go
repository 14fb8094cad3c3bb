// Package mlp - the distance oracle shared by construction, operators, and cost accounting.
//
// DistanceMatrix wraps a dense n×n matrix of pairwise distances and enforces,
// once and for all at construction time, the invariants every other file in
// this package assumes: square, symmetric, zero diagonal, no negative or
// infinite entries (spec.md §3, complete symmetric graph).
package mlp

import (
	"math"

	"github.com/rsilveira/mlp-ils/matrix"
)

// DistanceMatrix is an immutable, validated n×n symmetric distance oracle.
// Construct with NewDistanceMatrix; the zero value is not usable.
type DistanceMatrix struct {
	n    int
	dist *matrix.Dense
}

// NewDistanceMatrix validates d and wraps it into a DistanceMatrix.
//
// Requires:
//   - d square, n := d.Rows() >= 3 (ErrNonSquare, ErrDegenerateInstance),
//   - every dist[i][i] == 0 (ErrNonZeroDiagonal),
//   - every dist[i][j] finite and >= 0 (ErrNegativeWeight, ErrIncompleteGraph),
//   - dist[i][j] == dist[j][i] for all i,j (ErrAsymmetry).
//
// Complexity: O(n^2).
func NewDistanceMatrix(d *matrix.Dense) (*DistanceMatrix, error) {
	if d == nil {
		return nil, ErrDimensionMismatch
	}
	n := d.Rows()
	if n != d.Cols() {
		return nil, ErrNonSquare
	}
	if n < 3 {
		return nil, ErrDegenerateInstance
	}

	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w, err = d.At(i, j)
			if err != nil {
				return nil, ErrDimensionMismatch
			}
			if math.IsNaN(w) {
				return nil, ErrDimensionMismatch
			}
			if i == j {
				if w != 0 {
					return nil, ErrNonZeroDiagonal
				}
				continue
			}
			if math.IsInf(w, 0) {
				return nil, ErrIncompleteGraph
			}
			if w < 0 {
				return nil, ErrNegativeWeight
			}
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			wij, _ := d.At(i, j)
			wji, _ := d.At(j, i)
			if wij != wji {
				return nil, ErrAsymmetry
			}
		}
	}

	return &DistanceMatrix{n: n, dist: d}, nil
}

// N returns the number of vertices.
func (dm *DistanceMatrix) N() int {
	return dm.n
}

// At returns the validated distance between u and v.
// Contract: 0 <= u,v < N(). Out-of-range indices are a programmer error and
// return 0; callers in this package never pass out-of-range indices because
// construct.go/operator_*.go/rvnd.go index only over [0..n-1].
//
// Complexity: O(1).
func (dm *DistanceMatrix) At(u, v int) float64 {
	w, _ := dm.dist.At(u, v)
	return w
}
