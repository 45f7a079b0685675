// Package spectrum: functional configuration for the reduction policy.
// Mirrors the topology options file: Default* constants are the single
// source of truth, WithX constructors validate eagerly and panic only on
// programmer error.

package spectrum

// DefaultPrecision is the number of decimal places eigenvalues are rounded
// to before degeneracy grouping. Three decimals absorb eigensolver rounding
// noise for every supported topology while keeping physically distinct
// levels apart. Policy, not physics — override with WithPrecision.
const DefaultPrecision = 3

// maxPrecision bounds WithPrecision; past ~15 decimals float64 rounding is
// a no-op and grouping would degenerate to exact equality.
const maxPrecision = 12

const panicPrecisionInvalid = "spectrum: WithPrecision: precision must be in [0, 12]"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective reduction policy after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	precision int // decimal places for rounding; DefaultPrecision
}

// Precision returns the resolved rounding precision.
func (o Options) Precision() int { return o.precision }

// WithPrecision overrides the rounding precision used for degeneracy
// grouping and for the report's sum check.
// Panics with a stable message when p is outside [0, 12].
func WithPrecision(p int) Option {
	if p < 0 || p > maxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// NewOptions resolves option setters against documented defaults.
// Last-writer-wins semantics; pure function.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{precision: DefaultPrecision}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
