package determinant

import "github.com/katalvlaran/detrace/matrix"

// sarrusUnsupported is the single diagnostic line for orders other than 2 and 3.
const sarrusUnsupported = failMark + " Sarrus' rule applies only to 2×2 and 3×3 matrices"

// SarrusRule computes det(m) with the rule of Sarrus.
//
// Order 2: det = a₁₁·a₂₂ − a₁₂·a₂₁.
// Order 3: extend the matrix with its first two columns (3×5 grid), then
//
//	det = (D1 + D2 + D3) − (S1 + S2 + S3)
//
// where Dk are the left-to-right diagonals and Sk the right-to-left ones.
// Any other order yields determinant 0 and one diagnostic line, and so does a
// result outside the float64 range.
//
// m must be square; Compute guarantees it.
func SarrusRule(m *matrix.Dense) Result {
	a := m.ToRows()
	n := len(a)
	exact := allIntegers(a)

	switch n {
	case 2:
		det, tr := sarrus2(a)
		exact = exact && isFinite(det)
		det = finiteOrZero(det, &tr)
		return newResult(Sarrus, n, det, tr, exact)
	case 3:
		det, tr := sarrus3(a)
		exact = exact && isFinite(det)
		det = finiteOrZero(det, &tr)
		return newResult(Sarrus, n, det, tr, exact)
	default:
		var tr Trace
		tr.Append(sarrusUnsupported)
		return newResult(Sarrus, n, 0, tr, exact)
	}
}

func sarrus2(a [][]float64) (float64, Trace) {
	var tr Trace
	tr.Appendf("%s SARRUS' RULE (2×2 matrix)", headerMark)
	tr.Append(ruleLine)
	tr.Blank()

	tr.Append("Original matrix:")
	appendMatrix(&tr, a)
	tr.Blank()

	tr.Append("For a 2×2 matrix the determinant is:")
	tr.Append("det(A) = a₁₁ × a₂₂ − a₁₂ × a₂₁")
	tr.Blank()

	d1 := a[0][0] * a[1][1]
	d2 := a[0][1] * a[1][0]
	tr.Appendf("Main diagonal: %s × %s = %s", num(a[0][0]), num(a[1][1]), num(d1))
	tr.Appendf("Secondary diagonal: %s × %s = %s", num(a[0][1]), num(a[1][0]), num(d2))
	tr.Blank()

	det := d1 - d2
	tr.Append(ruleLine)
	tr.Appendf("%s DETERMINANT = %s − %s = %s", finalMark, num(d1), num(d2), num(det))

	return det, tr
}

func sarrus3(a [][]float64) (float64, Trace) {
	var tr Trace
	tr.Appendf("%s SARRUS' RULE (3×3 matrix)", headerMark)
	tr.Append(ruleLine)
	tr.Blank()

	tr.Append("Original matrix:")
	appendMatrix(&tr, a)
	tr.Blank()

	tr.Append("Extended matrix (first two columns appended):")
	extended := make([][]float64, 3)
	for i, row := range a {
		extended[i] = append(append(make([]float64, 0, 5), row...), row[0], row[1])
	}
	appendMatrix(&tr, extended)
	tr.Blank()

	tr.Append("➡️  MAIN DIAGONALS (left → right):")
	d1 := a[0][0] * a[1][1] * a[2][2]
	d2 := a[0][1] * a[1][2] * a[2][0]
	d3 := a[0][2] * a[1][0] * a[2][1]
	tr.Appendf("D1 = %s × %s × %s = %s", num(a[0][0]), num(a[1][1]), num(a[2][2]), num(d1))
	tr.Appendf("D2 = %s × %s × %s = %s", num(a[0][1]), num(a[1][2]), num(a[2][0]), num(d2))
	tr.Appendf("D3 = %s × %s × %s = %s", num(a[0][2]), num(a[1][0]), num(a[2][1]), num(d3))
	mainSum := d1 + d2 + d3
	tr.Appendf("Sum of main diagonals = %s + %s + %s = %s", num(d1), num(d2), num(d3), num(mainSum))
	tr.Blank()

	tr.Append("⬅️  ANTI-DIAGONALS (right → left):")
	s1 := a[0][2] * a[1][1] * a[2][0]
	s2 := a[0][0] * a[1][2] * a[2][1]
	s3 := a[0][1] * a[1][0] * a[2][2]
	tr.Appendf("S1 = %s × %s × %s = %s", num(a[0][2]), num(a[1][1]), num(a[2][0]), num(s1))
	tr.Appendf("S2 = %s × %s × %s = %s", num(a[0][0]), num(a[1][2]), num(a[2][1]), num(s2))
	tr.Appendf("S3 = %s × %s × %s = %s", num(a[0][1]), num(a[1][0]), num(a[2][2]), num(s3))
	antiSum := s1 + s2 + s3
	tr.Appendf("Sum of anti-diagonals = %s + %s + %s = %s", num(s1), num(s2), num(s3), num(antiSum))
	tr.Blank()

	det := mainSum - antiSum
	tr.Append(ruleLine)
	tr.Appendf("%s DETERMINANT = (%s) − (%s) = %s", finalMark, num(mainSum), num(antiSum), num(det))

	return det, tr
}
