package determinant

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/detrace/matrix"
)

// LaplaceExpansion computes det(m) by recursive cofactor expansion along the
// first row. Works for any order ≥ 1.
//
// Narration is depth dependent: the top-level call prints the matrix, one
// signed term per column and the total; nested 2×2 base cases print a compact
// one-line determinant; everything else deeper stays silent. Full narration
// of every sub-call would be unreadable beyond 3×3. A result outside the
// float64 range is reported as 0 with one diagnostic line.
//
// m must be square; Compute guarantees it.
func LaplaceExpansion(m *matrix.Dense) Result {
	var tr Trace
	tr.Appendf("%s LAPLACE EXPANSION (cofactors)", headerMark)
	tr.Append(ruleLine)
	tr.Blank()

	det, sub := laplace(m, 0)
	tr.Extend(sub)
	exact := allIntegers(m.ToRows()) && isFinite(det)
	det = finiteOrZero(det, &tr)

	return newResult(Laplace, m.Rows(), det, tr, exact)
}

// laplace dispatches between the order-1 and order-2 base cases and the
// general expansion. It returns the determinant and the lines it produced;
// callers merge the lines into their own trace.
func laplace(m *matrix.Dense, depth int) (float64, Trace) {
	switch m.Rows() {
	case 1:
		return laplace1(m, depth)
	case 2:
		return laplace2(m, depth)
	default:
		return laplaceExpand(m, depth)
	}
}

func laplace1(m *matrix.Dense, depth int) (float64, Trace) {
	var tr Trace
	det := m.ToRows()[0][0]
	if depth == 0 {
		tr.Append("Original matrix:")
		appendMatrix(&tr, m.ToRows())
		tr.Blank()
		tr.Append("A 1×1 matrix is its own determinant.")
		tr.Blank()
		tr.Append(ruleLine)
		tr.Appendf("%s DETERMINANT = %s", finalMark, num(det))
	}

	return det, tr
}

// laplace2 is the closed form a·d − b·c. It is numerically identical to
// laplaceExpand on the same 2×2 input: (+1·a)·d + (−1·b)·c rounds the same.
func laplace2(m *matrix.Dense, depth int) (float64, Trace) {
	var tr Trace
	a := m.ToRows()
	det := a[0][0]*a[1][1] - a[0][1]*a[1][0]

	if depth == 0 {
		tr.Append("Original matrix:")
		appendMatrix(&tr, a)
		tr.Blank()
		tr.Appendf("det(A) = %s×%s − %s×%s = %s",
			num(a[0][0]), num(a[1][1]), num(a[0][1]), num(a[1][0]), num(det))
		tr.Blank()
		tr.Append(ruleLine)
		tr.Appendf("%s DETERMINANT = %s", finalMark, num(det))
	} else {
		tr.Appendf("%s|%s %s; %s %s| = %s×%s − %s×%s = %s", indent(depth),
			num(a[0][0]), num(a[0][1]), num(a[1][0]), num(a[1][1]),
			num(a[0][0]), num(a[1][1]), num(a[0][1]), num(a[1][0]), num(det))
	}

	return det, tr
}

// laplaceExpand is the general case: Σ_j (−1)^j · a[0][j] · det(M₀ⱼ).
// Each minor's lines are merged before the term line of its column, which
// mirrors the real evaluation order.
func laplaceExpand(m *matrix.Dense, depth int) (float64, Trace) {
	var tr Trace
	a := m.ToRows()
	n := len(a)

	if depth == 0 {
		tr.Append("Original matrix:")
		appendMatrix(&tr, a)
		tr.Blank()
		tr.Append("Expanding along the first row:")
		tr.Blank()
	}

	det := 0.0
	for j := 0; j < n; j++ {
		minorDet, sub := laplace(mustMinor(m, 0, j), depth+1)
		tr.Extend(sub)

		cofactor := cofactorSign(j) * a[0][j]
		term := cofactor * minorDet
		if depth == 0 {
			tr.Appendf("%s %s × M0%d   (M0%d = %s, term = %s)",
				signGlyph(j), num(a[0][j]), j, j, num(minorDet), num(term))
		}
		det += term
	}

	if depth == 0 {
		tr.Blank()
		tr.Append(ruleLine)
		tr.Appendf("%s DETERMINANT = %s", finalMark, num(det))
	}

	return det, tr
}

// cofactorSign is (−1)^j by exact integer exponentiation.
func cofactorSign(j int) float64 {
	sign := 1
	for k := 0; k < j; k++ {
		sign = -sign
	}

	return float64(sign)
}

func signGlyph(j int) string {
	if cofactorSign(j) > 0 {
		return "+"
	}

	return "-"
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// mustMinor deletes one row and one column. Only reachable with in-range
// indices on matrices of order ≥ 2, so an error is a programmer bug.
func mustMinor(m *matrix.Dense, row, col int) *matrix.Dense {
	minor, err := m.Minor(row, col)
	if err != nil {
		panic(fmt.Sprintf("determinant: minor(%d,%d): %v", row, col, err))
	}

	return minor
}
