// Package spectrum: eigenvalue extraction.
// Energies wraps gonum's dense symmetric eigensolver. The validation order
// is fixed: nil → square → symmetric → decompose, so callers can rely on
// the most specific sentinel being returned.

package spectrum

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// symTol is the absolute tolerance used when a general (non-Symmetric)
// matrix is checked for symmetry before decomposition.
const symTol = 1e-9

// Energies returns all eigenvalues of m in ascending order.
// Stage 1 (Validate): m non-nil and square; symmetric within symTol when it
// does not already implement mat.Symmetric.
// Stage 2 (Execute): dense symmetric eigen-decomposition (values only).
// Stage 3 (Finalize): sort ascending and return.
// Returns ErrNilMatrix, ErrNonSquare, ErrAsymmetric, or ErrEigenFailed.
// Complexity: O(n³) time, O(n²) memory.
func Energies(m mat.Matrix) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("Energies: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("Energies: %dx%d: %w", r, c, ErrNonSquare)
	}

	sym, err := asSymmetric(m, r)
	if err != nil {
		return nil, fmt.Errorf("Energies: %w", err)
	}

	var es mat.EigenSym
	if !es.Factorize(sym, false) {
		return nil, fmt.Errorf("Energies: %w", ErrEigenFailed)
	}
	vals := es.Values(nil)
	sort.Float64s(vals)

	return vals, nil
}

// asSymmetric adapts a square matrix to mat.Symmetric, copying general
// matrices into a SymDense after an explicit symmetry check.
func asSymmetric(m mat.Matrix, n int) (mat.Symmetric, error) {
	if sym, ok := m.(mat.Symmetric); ok {
		return sym, nil // symmetric by type; no copy needed
	}
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			aij, aji := m.At(i, j), m.At(j, i)
			if math.Abs(aij-aji) > symTol {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, ErrAsymmetric)
			}
			s.SetSym(i, j, aij)
		}
	}

	return s, nil
}
