package determinant

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ChioPolicy selects how Chiò's condensation accounts for the pivot scaling.
//
// Each condensation step of an M×M matrix with pivot p yields an (M−1)×(M−1)
// matrix C with det(C) = p^(M−2) · det(A). The two policies differ only in
// whether that factor is divided back out; they agree whenever every pivot
// is ±1 and diverge otherwise (always reachable for N ≥ 4).
type ChioPolicy int

const (
	// ChioNormalized divides each condensation by the previous pivot
	// (Bareiss), so the reported value is the true determinant.
	ChioNormalized ChioPolicy = iota

	// ChioScaled skips the division and reports det(A) · Π p^(M−2), the value
	// some classroom treatments present.
	ChioScaled
)

// String implements fmt.Stringer.
func (p ChioPolicy) String() string {
	switch p {
	case ChioNormalized:
		return "normalized"
	case ChioScaled:
		return "scaled"
	default:
		return "unknown"
	}
}

// ParseChioPolicy maps "normalized" or "scaled" (case-insensitive) to a
// ChioPolicy. An empty string yields DefaultChioPolicy.
func ParseChioPolicy(s string) (ChioPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultChioPolicy, nil
	case "normalized":
		return ChioNormalized, nil
	case "scaled":
		return ChioScaled, nil
	}

	return DefaultChioPolicy, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Presentation bounds: the order range a user interface offers. The engine
// itself accepts any order ≥ 1 unless WithOrderBounds is given.
const (
	MinOrder = 2
	MaxOrder = 6
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultChioPolicy reports true determinants.
	DefaultChioPolicy = ChioNormalized

	// DefaultLegacyFallback keeps unknown methods an error.
	DefaultLegacyFallback = false

	// DefaultMinOrder accepts any non-empty square matrix.
	DefaultMinOrder = 1

	// DefaultMaxOrder of 0 means "no upper bound".
	DefaultMaxOrder = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicOrderBoundsInvalid = "determinant: WithOrderBounds: need 1 <= lo and (hi == 0 or lo <= hi)"
	panicChioPolicyInvalid  = "determinant: WithChioPolicy: unknown policy"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options holds the resolved configuration of one Compute call.
type Options struct {
	legacyFallback bool
	minOrder       int
	maxOrder       int
	chioPolicy     ChioPolicy
	logger         *slog.Logger
}

// WithLegacyFallback makes an unknown method return Result{0, []} with a nil
// error instead of ErrUnknownMethod.
func WithLegacyFallback() Option {
	return func(o *Options) { o.legacyFallback = true }
}

// WithOrderBounds rejects matrices whose order is outside [lo, hi] with
// ErrInvalidInput. hi == 0 leaves the upper side open.
func WithOrderBounds(lo, hi int) Option {
	if lo < 1 || (hi != 0 && hi < lo) {
		panic(panicOrderBoundsInvalid)
	}

	return func(o *Options) {
		o.minOrder = lo
		o.maxOrder = hi
	}
}

// WithChioPolicy selects the Chiò normalization policy.
func WithChioPolicy(p ChioPolicy) Option {
	if p != ChioNormalized && p != ChioScaled {
		panic(panicChioPolicyInvalid)
	}

	return func(o *Options) { o.chioPolicy = p }
}

// WithLogger routes the per-computation debug record to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() Options {
	return Options{
		legacyFallback: DefaultLegacyFallback,
		minOrder:       DefaultMinOrder,
		maxOrder:       DefaultMaxOrder,
		chioPolicy:     DefaultChioPolicy,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
