// Package instance provides the "external collaborator" reader spec.md §6
// treats opaquely: anything that yields (n, d[1..n][1..n]) to the solver.
// ReadFile parses a minimal whitespace-delimited text format; FromGraph
// (fromgraph.go) builds an instance programmatically from a *core.Graph.
//
// Node ids on the CLI are 1-based, while file rows and columns are in
// 0-based matrix order (see ReadFile); ReadFile/FromGraph both
// hand the mlp package a 0-based *mlp.DistanceMatrix, matching the
// internal convention documented in mlp/doc.go.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rsilveira/mlp-ils/matrix"
	"github.com/rsilveira/mlp-ils/mlp"
)

// ErrMalformedFile indicates the instance file does not match the expected
// shape: a leading vertex count followed by that many whitespace-separated
// rows of that many floats each.
var ErrMalformedFile = errors.New("instance: malformed instance file")

// ReadFile opens path and parses it into a validated *mlp.DistanceMatrix.
//
// Format: first whitespace-delimited token is n; the next n*n tokens are
// the row-major dense distance matrix d[0..n-1][0..n-1] (file order is
// already 0-indexed; external 1-based ids are a CLI/reporting convention,
// not a file-format requirement).
//
// Complexity: O(n^2) time and space.
func ReadFile(path string) (*mlp.DistanceMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read parses an instance from r using the same format as ReadFile.
//
// Complexity: O(n^2) time and space.
func Read(r io.Reader) (*mlp.DistanceMatrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	n, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if n <= 0 {
		return nil, ErrMalformedFile
	}

	dense, derr := matrix.NewDense(n, n)
	if derr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, derr)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, ferr := nextFloat(sc)
			if ferr != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedFile, ferr)
			}
			if serr := dense.Set(i, j, v); serr != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedFile, serr)
			}
		}
	}

	return mlp.NewDistanceMatrix(dense)
}

func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.Atoi(sc.Text())
}

func nextFloat(sc *bufio.Scanner) (float64, error) {
	if !sc.Scan() {
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(sc.Text(), 64)
}
