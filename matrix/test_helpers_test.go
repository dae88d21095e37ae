// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for ingestion and kernels.
//   • Keep all data finite and well-formed unless a test targets the numeric policy.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/detrace/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// MustFromRows ingests rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// Compare asserts that m matches the 2-D slice want exactly.
func Compare(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("Rows = %d; want %d", r, len(want))
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if v != want[i][j] {
				t.Errorf("At(%d,%d) = %v; want %v", i, j, v, want[i][j])
			}
		}
	}
}
