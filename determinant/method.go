package determinant

import (
	"fmt"
	"strings"
)

// Method selects the algorithm used by Compute.
type Method string

const (
	// Sarrus applies the rule of Sarrus (orders 2 and 3 only).
	Sarrus Method = "sarrus"

	// Laplace applies recursive cofactor expansion along the first row.
	Laplace Method = "laplace"

	// Chio applies Chiò's pivotal condensation.
	Chio Method = "chio"
)

// Methods returns every supported method in presentation order.
func Methods() []Method {
	return []Method{Sarrus, Laplace, Chio}
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case Sarrus, Laplace, Chio:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (m Method) String() string { return string(m) }

// ParseMethod maps a user-supplied tag to a Method. Matching is
// case-insensitive, ignores surrounding blanks and accepts "chiò".
func ParseMethod(s string) (Method, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	if tag == "chiò" {
		tag = string(Chio)
	}
	m := Method(tag)
	if !m.Valid() {
		return m, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}

	return m, nil
}
