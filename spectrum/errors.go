// Package spectrum: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// spectrum package. All entry points MUST return these sentinels and tests
// MUST check them via errors.Is.

package spectrum

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was passed to the eigen stage.
	ErrNilMatrix = errors.New("spectrum: matrix is nil")

	// ErrNonSquare indicates a non-square input matrix. Defensive: the
	// topology builders only ever produce square matrices.
	ErrNonSquare = errors.New("spectrum: matrix is not square")

	// ErrAsymmetric indicates that a general matrix claimed to be a Hückel
	// Hamiltonian violated symmetry beyond the numeric tolerance.
	ErrAsymmetric = errors.New("spectrum: matrix is not symmetric within tolerance")

	// ErrEigenFailed indicates that the eigen decomposition did not
	// converge. Not expected for the bounded (≤20×20) inputs this package
	// is used with.
	ErrEigenFailed = errors.New("spectrum: eigen decomposition failed")
)
