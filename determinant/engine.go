package determinant

import (
	"fmt"

	"github.com/katalvlaran/detrace/matrix"
)

// Compute ingests rows, validates them and dispatches to the selected method.
//
// Implementation:
//   - Stage 1: resolve options; reject an unknown method with ErrUnknownMethod
//     (or return Result{0, []} under WithLegacyFallback).
//   - Stage 2: ingest via matrix.NewDenseFromRows (rectangular, finite) and
//     require a square matrix within the configured order bounds.
//   - Stage 3: run the strategy and log one debug record.
//
// Errors:
//   - ErrUnknownMethod.
//   - ErrInvalidInput joined with the matrix sentinel (ErrInvalidDimensions,
//     ErrDimensionMismatch, ErrNaNInf, ErrNonSquare, ErrOrderOutOfRange).
//
// The caller's slices are copied and never mutated. Deterministic for fixed input.
func Compute(rows [][]float64, method Method, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if !method.Valid() {
		return unknownMethod(method, o)
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return emptyResult(), fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return compute(m, method, o)
}

// ComputeMatrix is Compute for callers that already hold a matrix.Matrix.
// Foreign implementations are copied into a Dense first.
func ComputeMatrix(m matrix.Matrix, method Method, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if !method.Valid() {
		return unknownMethod(method, o)
	}

	if err := matrix.ValidateFinite(m); err != nil {
		return emptyResult(), fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return emptyResult(), fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return compute(d, method, o)
}

// unknownMethod applies the unknown-method policy.
func unknownMethod(method Method, o Options) (Result, error) {
	if o.legacyFallback {
		o.logger.Debug("unknown method, legacy fallback", "method", string(method))
		return emptyResult(), nil
	}

	return emptyResult(), fmt.Errorf("%w: %q", ErrUnknownMethod, string(method))
}

func compute(m *matrix.Dense, method Method, o Options) (Result, error) {
	if err := matrix.ValidateOrder(m, o.minOrder, o.maxOrder); err != nil {
		return emptyResult(), fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var res Result
	switch method {
	case Sarrus:
		res = SarrusRule(m)
	case Laplace:
		res = LaplaceExpansion(m)
	case Chio:
		res = ChioCondensation(m, o.chioPolicy)
	}

	o.logger.Debug("determinant computed",
		"method", string(method),
		"order", res.Order,
		"determinant", res.Determinant,
		"steps", len(res.Steps),
		"exact", res.Exact,
	)

	return res, nil
}
