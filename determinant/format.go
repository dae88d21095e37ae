package determinant

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Narration glyphs shared by all methods.
const (
	ruleLine   = "━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	headerMark = "📐"
	finalMark  = "✅"
	failMark   = "❌"
	warnMark   = "⚠️ "
	okMark     = "✓"
)

// nonFiniteLine ends a trace whose determinant left the float64 range.
const nonFiniteLine = failMark + " Result left the finite range; determinant reported as 0"

// Cell widths of rendered rows.
const (
	exactCellWidth = 5
	fixedCellWidth = 7
	fixedCellPrec  = 2
	fixedFinalPrec = 4
)

// num renders v in its shortest exact decimal form: 17, -2, 0.5. Negative
// zero renders as 0.
func num(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fixed renders v with prec decimals; negative zero renders unsigned.
func fixed(v float64, prec int) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', prec, 64)
}

// renderRow formats one row as "[ c1  c2  c3 ]" with right-aligned cells.
func renderRow(row []float64, width int, cell func(float64) string) string {
	parts := make([]string, len(row))
	for j, v := range row {
		parts[j] = fmt.Sprintf("%*s", width, cell(v))
	}

	return "[ " + strings.Join(parts, "  ") + " ]"
}

// appendMatrix narrates every row of rows with exact number rendering.
func appendMatrix(tr *Trace, rows [][]float64) {
	for _, row := range rows {
		tr.Append(renderRow(row, exactCellWidth, num))
	}
}

// appendFixedMatrix narrates every row of rows with fixed 2-decimal rendering.
func appendFixedMatrix(tr *Trace, rows [][]float64) {
	for _, row := range rows {
		tr.Append(renderRow(row, fixedCellWidth, func(v float64) string { return fixed(v, fixedCellPrec) }))
	}
}

// allIntegers reports whether every cell has no fractional part.
func allIntegers(rows [][]float64) bool {
	for _, row := range rows {
		for _, v := range row {
			if v != math.Trunc(v) {
				return false
			}
		}
	}

	return true
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finiteOrZero returns det unchanged, or narrates nonFiniteLine and returns 0
// when det is NaN or ±Inf.
func finiteOrZero(det float64, tr *Trace) float64 {
	if isFinite(det) {
		return det
	}
	tr.Append(nonFiniteLine)

	return 0
}
