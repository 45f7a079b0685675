// Package topology: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// topology package. All entry points MUST return these sentinels and tests
// MUST check them via errors.Is. Context, when essential, is added with
// fmt.Errorf("fn: %w", ErrX) at the call site.

package topology

import "errors"

var (
	// ErrInvalidSize indicates a non-positive atom count for a linear or
	// cyclic polyene. Builders must reject it before any allocation.
	ErrInvalidSize = errors.New("topology: atom count must be a positive integer")

	// ErrUnknownTopology indicates an unrecognized topology kind, either a
	// Kind value outside the enum or an unparseable name at the boundary.
	ErrUnknownTopology = errors.New("topology: unknown topology kind")
)
