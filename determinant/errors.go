package determinant

import "errors"

var (
	// ErrInvalidInput wraps every rejection of the caller's grid: empty, ragged,
	// non-square, NaN/Inf cells, or an order outside WithOrderBounds. The
	// underlying matrix sentinel stays matchable via errors.Is.
	ErrInvalidInput = errors.New("determinant: invalid input")

	// ErrUnknownMethod is returned for a method tag outside Methods() unless the
	// legacy fallback is enabled.
	ErrUnknownMethod = errors.New("determinant: unknown method")

	// ErrUnknownPolicy is returned by ParseChioPolicy.
	ErrUnknownPolicy = errors.New("determinant: unknown chio policy")
)
