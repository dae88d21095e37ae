// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// ZeroPivot is the sentinel for detecting a zero pivot column during elimination.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opDeterminant = "Determinant"
	opRandom      = "RandomIntegers"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Determinant computes det(A) by Doolittle-style LU elimination with partial
// (row) pivoting on a private copy of A.
//
// Implementation:
//   - Stage 1: validate non-nil, square and finite; copy into a flat buffer.
//   - Stage 2: for k=0..n-1 pick the row p≥k maximizing |a[p][k]|; swap it up
//     (each swap flips the sign). An all-zero column means det=0 exactly.
//   - Stage 3: eliminate below the pivot; det = sign · Π U[k][k].
//
// Behavior highlights:
//   - Independent of the step-annotated methods in package determinant; used as
//     a numeric cross-check, hence floating-point (not exact for integers).
//   - Input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (wrapped with "Determinant").
//
// Determinism:
//   - Ties in the pivot search resolve to the smallest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateFinite(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	src, err := AsDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := src.r
	a := make([]float64, len(src.data))
	copy(a, src.data)

	det := 1.0
	var (
		i, j, k, p int
		best, f    float64
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below the diagonal.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return 0, nil
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			det = -det
		}
		det *= a[k*n+k]
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / a[k*n+k]
			if f == 0 {
				continue
			}
			for j = k; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return det, nil
}
