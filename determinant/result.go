package determinant

// Result is the outcome of one computation. It is built fresh per call and
// never retained by the engine.
type Result struct {
	// Determinant is exact for integer input under Sarrus and Laplace and
	// floating point under Chiò.
	Determinant float64 `json:"determinant"`

	// Steps is the ordered narration; empty (not nil) when nothing was narrated.
	Steps []string `json:"steps"`

	// Method that produced the result; empty under the legacy fallback.
	Method Method `json:"method,omitempty"`

	// Order of the input matrix; 0 under the legacy fallback.
	Order int `json:"order,omitempty"`

	// Exact is true when only +, −, × were applied to all-integer input.
	Exact bool `json:"exact"`
}

// emptyResult is the legacy answer for an unrecognized method.
func emptyResult() Result {
	return Result{Determinant: 0, Steps: []string{}}
}

func newResult(m Method, order int, det float64, tr Trace, exact bool) Result {
	return Result{
		Determinant: det,
		Steps:       tr.Lines(),
		Method:      m,
		Order:       order,
		Exact:       exact,
	}
}
