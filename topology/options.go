// Package topology: functional configuration for the Hückel parameters.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state; α and β travel with the call.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package topology

import "math"

// Hückel parameter defaults — single source of truth.
// These constants MUST reflect the intended defaults in defaultOptions.
const (
	// DefaultAlpha is the on-site (diagonal) energy. By convention the
	// Coulomb integral α is the energy reference point, so it is 0.
	DefaultAlpha = 0.0

	// DefaultBeta is the resonance (hopping) energy between bonded
	// neighbors. By convention the resonance integral β is negative.
	DefaultBeta = -1.0
)

// Internal panic messages (no magic strings).
const (
	panicAlphaInvalid = "topology: WithAlpha: alpha must be finite"
	panicBetaInvalid  = "topology: WithBeta: beta must be finite"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective Hückel parameters after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	alpha float64 // on-site energy; DefaultAlpha
	beta  float64 // resonance energy; DefaultBeta
}

// Alpha returns the resolved on-site energy.
func (o Options) Alpha() float64 { return o.alpha }

// Beta returns the resolved resonance energy.
func (o Options) Beta() float64 { return o.beta }

// WithAlpha overrides the on-site energy α.
// Panics with a stable message when alpha is NaN or ±Inf.
func WithAlpha(alpha float64) Option {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		panic(panicAlphaInvalid)
	}

	return func(o *Options) { o.alpha = alpha }
}

// WithBeta overrides the resonance energy β.
// Panics with a stable message when beta is NaN or ±Inf.
func WithBeta(beta float64) Option {
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		panic(panicBetaInvalid)
	}

	return func(o *Options) { o.beta = beta }
}

// NewOptions resolves option setters against documented defaults.
// Last-writer-wins semantics; pure function.
// Complexity: O(k) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults. This is the
// canonical internal entry; Build delegates here.
func gatherOptions(user ...Option) Options {
	o := Options{
		alpha: DefaultAlpha,
		beta:  DefaultBeta,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
