// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a finite-only numeric policy on ingestion and Set.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Minor: O(r*c); SwapRows: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxMinor    = "Minor"
	ctxSwapRows = "SwapRows"
	ctxFromRows = "NewDenseFromRows"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so callers keep using errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows ingests a caller grid into a new Dense.
//
// Implementation:
//   - Stage 1: reject an empty grid or an empty first row (ErrInvalidDimensions).
//   - Stage 2: every row must have the width of row 0 (ErrDimensionMismatch).
//   - Stage 3: every cell must be finite (ErrNaNInf).
//   - Stage 4: copy into a flat buffer; the caller's slices are never retained.
//
// Errors carry the offending coordinates, e.g. "Dense.NewDenseFromRows(1,2): matrix: NaN or Inf encountered".
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, denseErrorf(ctxFromRows, 0, 0, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf(ctxFromRows, i, len(rows[i]), ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if !isFinite(rows[i][j]) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
		}
		data = append(data, rows[i]...)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). Non-finite values are rejected with ErrNaNInf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// ToRows materializes the matrix as a fresh [][]float64.
// The returned slices share nothing with m.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Minor returns a copy of m with row `row` and column `col` removed.
//
// Implementation:
//   - Stage 1: bounds-check (ErrOutOfRange); a 1-row or 1-col matrix has no minor (ErrInvalidDimensions).
//   - Stage 2: copy the remaining cells in fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense) Minor(row, col int) (*Dense, error) {
	if _, err := m.indexOf(ctxMinor, row, col); err != nil {
		return nil, err
	}
	if m.r < 2 || m.c < 2 {
		return nil, denseErrorf(ctxMinor, row, col, ErrInvalidDimensions)
	}
	out := &Dense{r: m.r - 1, c: m.c - 1, data: make([]float64, 0, (m.r-1)*(m.c-1))}
	var i, j int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			out.data = append(out.data, m.data[i*m.c+j])
		}
	}

	return out, nil
}

// SwapRows exchanges rows i and k in place. Swapping a row with itself is a no-op.
// Complexity: O(c).
func (m *Dense) SwapRows(i, k int) error {
	if i < 0 || i >= m.r || k < 0 || k >= m.r {
		return denseErrorf(ctxSwapRows, i, k, ErrOutOfRange)
	}
	if i == k {
		return nil
	}
	a, b := i*m.c, k*m.c
	for j := 0; j < m.c; j++ {
		m.data[a+j], m.data[b+j] = m.data[b+j], m.data[a+j]
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
