// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage that the determinant
// engine ingests grids into.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Strict ingestion of caller grids (NewDenseFromRows): rectangular shape,
//     finite values only.
//   - Structural helpers used by cofactor expansion and condensation:
//     Minor (delete one row and one column) and SwapRows.
//   - Determinant, an LU factorization with partial pivoting, used as an
//     independent numeric cross-check of the step-annotated methods.
//   - RandomIntegers for reproducible integer fills.
//
// All user-triggered failures are reported as package sentinels (errors.go)
// matched via errors.Is. Nothing here panics on bad input.
package matrix
