// Package mlp (white-box) test helpers shared by the internal *_test.go
// files that exercise unexported algorithm internals (construct, the
// subsequence algebra, perturb) directly, where a black-box mlp_test caller
// cannot reach them.
package mlp

import (
	"testing"

	"github.com/rsilveira/mlp-ils/matrix"
)

// testDenseDistanceMatrix builds a validated *DistanceMatrix from a raw
// row-major slice of distances.
func testDenseDistanceMatrix(t *testing.T, rows [][]float64) *DistanceMatrix {
	t.Helper()
	n := len(rows)
	d, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := d.Set(i, j, rows[i][j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
	dm, err := NewDistanceMatrix(d)
	if err != nil {
		t.Fatalf("NewDistanceMatrix: %v", err)
	}
	return dm
}
