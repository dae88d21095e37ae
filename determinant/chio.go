package determinant

import (
	"fmt"
	"math"

	"github.com/katalvlaran/detrace/matrix"
)

// Chiò narration lines that tests and renderers may match on.
const (
	chioZeroPivot    = warnMark + " Pivot a₁₁ is zero. Trying to swap rows..."
	chioZeroColumn   = failMark + " DETERMINANT = 0 (first column is entirely zero)"
	chioLeftFinite   = failMark + " Condensation left the finite range; determinant reported as 0"
	chioFormulaTitle = "Applying Chiò's rule:"
	chioFormula      = "Cᵢⱼ = a₁₁ × aᵢⱼ − a₁ⱼ × aᵢ₁"
)

// ChioCondensation computes det(m) by Chiò's pivotal condensation.
//
// Implementation:
//   - Stage 1: before each step, if the pivot a[0][0] is zero, swap in the first
//     row below with a nonzero first entry (sign flips). An all-zero first
//     column is a terminal state: determinant 0, diagnostic line, halt.
//   - Stage 2: while the order M > 2, replace the matrix by the (M−1)×(M−1)
//     matrix C[i][j] = a₀₀·aᵢⱼ − a₀ⱼ·aᵢ₀ (i, j ≥ 1).
//     ChioNormalized divides every C[i][j] by the pivot of the previous step
//     (Bareiss), which keeps the entries at the magnitude of minors of m.
//     ChioScaled keeps C undivided, so det(C) = p^(M−2)·det(A) accumulates.
//   - Stage 3: apply the 2×2 closed form. ChioNormalized divides it by the last
//     pivot (the final Bareiss step) and reports the true determinant;
//     ChioScaled reports det(A)·Π p^(M−2). Both apply the swap sign.
//
// A value leaving the finite range ends the computation with determinant 0
// and one diagnostic line.
//
// All values are floating point and rendered with 2 decimals (4 for the final value).
// m is never mutated; m must be square (Compute guarantees it).
func ChioCondensation(m *matrix.Dense, policy ChioPolicy) Result {
	var tr Trace
	n := m.Rows()
	tr.Appendf("%s CHIÒ'S CONDENSATION", headerMark)
	tr.Append(ruleLine)
	tr.Blank()

	if n == 1 {
		det := m.ToRows()[0][0]
		tr.Append("A 1×1 matrix is its own determinant.")
		tr.Blank()
		tr.Append(ruleLine)
		tr.Appendf("%s DETERMINANT = %s", finalMark, fixed(det, fixedFinalPrec))
		return newResult(Chio, n, det, tr, false)
	}

	cur := m.Clone().(*matrix.Dense)
	sign := 1.0
	prevPivot := 1.0 // divisor of the next normalized step
	factor := 1.0    // Π p^(M−2), narrated under ChioScaled
	for iteration := 0; ; iteration++ {
		swapped, ok := chioPivot(cur, &tr)
		if !ok {
			tr.Append(chioZeroColumn)
			return newResult(Chio, n, 0, tr, false)
		}
		if swapped {
			sign = -sign
			tr.Blank()
		}
		if cur.Rows() <= 2 {
			break
		}

		next, pivot := chioCondense(cur, iteration, policy, prevPivot, &tr)
		factor *= math.Pow(pivot, float64(cur.Rows()-2))
		if next == nil || (policy == ChioScaled && math.IsInf(factor, 0)) {
			tr.Append(chioLeftFinite)
			return newResult(Chio, n, 0, tr, false)
		}
		prevPivot = pivot
		cur = next
	}

	a := cur.ToRows()
	tr.Append("Final 2×2 matrix:")
	appendFixedMatrix(&tr, a)
	tr.Blank()

	det2 := a[0][0]*a[1][1] - a[0][1]*a[1][0]
	tr.Appendf("2×2 determinant = %s × %s − %s × %s = %s",
		fixed(a[0][0], fixedCellPrec), fixed(a[1][1], fixedCellPrec),
		fixed(a[0][1], fixedCellPrec), fixed(a[1][0], fixedCellPrec),
		fixed(det2, fixedFinalPrec))

	det := det2
	if policy == ChioNormalized && prevPivot != 1 {
		det = det2 / prevPivot
		tr.Appendf("Normalization by the last pivot: %s ÷ %s = %s",
			fixed(det2, fixedFinalPrec), fixed(prevPivot, fixedCellPrec), fixed(det, fixedFinalPrec))
	}
	if policy == ChioScaled && factor != 1 {
		tr.Appendf("Scaled policy: result includes the pivot factor %s", fixed(factor, fixedFinalPrec))
	}
	if sign < 0 {
		det = -det
		tr.Append("Odd number of row swaps: sign flipped")
	}
	if !isFinite(det) {
		tr.Append(chioLeftFinite)
		return newResult(Chio, n, 0, tr, false)
	}
	tr.Blank()
	tr.Append(ruleLine)
	tr.Appendf("%s DETERMINANT = %s", finalMark, fixed(det, fixedFinalPrec))

	return newResult(Chio, n, det, tr, false)
}

// chioPivot ensures cur[0][0] != 0 by swapping up the first lower row with a
// nonzero leading entry. Returns (swapped, ok); ok is false when the whole
// first column is zero.
func chioPivot(cur *matrix.Dense, tr *Trace) (bool, bool) {
	a := cur.ToRows()
	if a[0][0] != 0 {
		return false, true
	}
	tr.Append(chioZeroPivot)
	for i := 1; i < len(a); i++ {
		if a[i][0] != 0 {
			mustSwap(cur, 0, i)
			tr.Appendf("%s Row 1 swapped with row %d", okMark, i+1)
			return true, true
		}
	}

	return false, false
}

// chioCondense performs one condensation step and narrates it. Under
// ChioNormalized every entry is divided by prevPivot. It returns the condensed
// matrix (nil if a value left the finite range) and the pivot it used.
func chioCondense(cur *matrix.Dense, iteration int, policy ChioPolicy, prevPivot float64, tr *Trace) (*matrix.Dense, float64) {
	a := cur.ToRows()
	n := len(a)
	pivot := a[0][0]

	tr.Appendf("ITERATION %d:", iteration+1)
	tr.Appendf("Current matrix (%d×%d):", n, n)
	appendFixedMatrix(tr, a)
	tr.Appendf("Pivot a₁₁ = %s", fixed(pivot, fixedCellPrec))
	tr.Blank()

	if iteration == 0 {
		tr.Append(chioFormulaTitle)
		tr.Append(chioFormula)
	}
	divisor := 1.0
	switch policy {
	case ChioNormalized:
		if iteration > 0 {
			divisor = prevPivot
			tr.Appendf("Each Cᵢⱼ is divided by the previous pivot %s", fixed(prevPivot, fixedCellPrec))
		}
	case ChioScaled:
		tr.Appendf("det(condensed) = %s^%d × det(current)", fixed(pivot, fixedCellPrec), n-2)
	}
	tr.Blank()

	rows := make([][]float64, n-1)
	for i := 1; i < n; i++ {
		row := make([]float64, n-1)
		for j := 1; j < n; j++ {
			row[j-1] = (pivot*a[i][j] - a[0][j]*a[i][0]) / divisor
		}
		rows[i-1] = row
	}
	next, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, pivot
	}

	return next, pivot
}

// mustSwap exchanges two rows. Only reachable with in-range indices, so an
// error is a programmer bug.
func mustSwap(m *matrix.Dense, i, k int) {
	if err := m.SwapRows(i, k); err != nil {
		panic(fmt.Sprintf("determinant: swap rows (%d,%d): %v", i, k, err))
	}
}
