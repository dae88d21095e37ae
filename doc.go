// Package detrace computes square-matrix determinants by three classical
// hand methods and narrates every step, so a learner can follow the
// arithmetic the way it is done on paper.
//
// 🚀 What is inside?
//
//	• Sarrus' rule for 2×2 and 3×3 matrices
//	• Laplace (cofactor) expansion along the first row, recursively narrated
//	• Chiò's pivotal condensation with row-swap handling
//	• An LU reference determinant for cross-checking
//
// Everything is organized under two library packages:
//
//	matrix: dense storage, validation, minors, row swaps, LU determinant
//	determinant: the engine, the three methods, trace and result types
//
// and one binary:
//
//	cmd/detrace: compute, random, serve and version commands
//
// Quick example:
//
//	res, err := determinant.Compute([][]float64{{1, 2}, {3, 4}}, determinant.Sarrus)
//	// res.Determinant == -2, res.Steps narrates a×d − b×c
//
//	go install github.com/katalvlaran/detrace/cmd/detrace@latest
package detrace
