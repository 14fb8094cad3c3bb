// Package mlp_test provides lightweight testing helpers shared across
// *_test.go files in this package. Stdlib-only, intentionally minimal.
package mlp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/rsilveira/mlp-ils/matrix"
	"github.com/rsilveira/mlp-ils/mlp"
)

const (
	// epsTiny is a small positive improvement threshold for tests
	// (mlp.DefaultEps itself is 0, i.e. plain strict '<').
	epsTiny = 1e-9

	// seedDet is a deterministic seed used across tests for reproducibility checks.
	seedDet = int64(7)

	// startV is the canonical depot used across tests.
	startV = 0
)

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// round1e9 mirrors mlp's internal cost-rounding discipline for black-box
// test assertions (the production round1e9 in cost.go is unexported).
func round1e9(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}

// floatsClose checks absolute closeness of two float64 values.
func floatsClose(a, b, abs float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= abs
}

// mustFloatClose asserts closeness of two float64 values under an absolute tolerance.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if !floatsClose(got, want, abs) {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (abs=%.1e)", got, want, abs)
	}
}

// euclid builds a symmetric zero-diagonal Euclidean distance matrix from 2D
// points. Accepts testing.TB so both *testing.T and *testing.B callers share it.
func euclid(t testing.TB, pts [][2]float64) *matrix.Dense {
	t.Helper()
	n := len(pts)
	d, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			if err := d.Set(i, j, math.Hypot(dx, dy)); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
	return d
}

// mustDistanceMatrix wraps a raw *matrix.Dense into a validated *mlp.DistanceMatrix.
func mustDistanceMatrix(t testing.TB, d *matrix.Dense) *mlp.DistanceMatrix {
	t.Helper()
	dm, err := mlp.NewDistanceMatrix(d)
	if err != nil {
		t.Fatalf("NewDistanceMatrix: %v", err)
	}
	return dm
}
