// Package determinant computes the determinant of a small square matrix and
// narrates every step of the derivation.
//
// 🚀 What is determinant?
//
//	A pedagogical engine with three classical methods behind one dispatcher:
//		• Sarrus: diagonal products, 2×2 and 3×3 only (exact on integers)
//		• Laplace: recursive cofactor expansion along the first row (exact on integers)
//		• Chiò: pivotal condensation down to 2×2 (floating point, row-swap pivoting)
//
// Every call returns a Result: the scalar determinant plus the ordered list of
// trace lines produced while computing it. The trace is an append-only log in
// real evaluation order; lines are display-ready text (box drawing, emoji,
// mathematical glyphs), not machine-parsable data.
//
// Error policy:
//
//	Defined terminal states are data, not errors:
//	  - Sarrus on an order other than 2 or 3 → determinant 0, one diagnostic line.
//	  - Chiò with an all-zero first column    → determinant 0, diagnostic line, halt.
//	Invalid input (empty, ragged, non-square, NaN/Inf) → ErrInvalidInput.
//	Unknown method → ErrUnknownMethod, or Result{0, []} under WithLegacyFallback().
//
// Concurrency:
//
//	Compute holds no shared state; concurrent calls need no coordination.
//
// Quick example:
//
//	res, err := determinant.Compute([][]float64{{1, 2}, {3, 4}}, determinant.Sarrus)
//	// res.Determinant == -2
//	for _, line := range res.Steps {
//		fmt.Println(line)
//	}
package determinant
