// Package topology: Hückel Hamiltonian builders.
// Build is the single public entry; per-kind fill routines below share the
// same contract: allocate an n×n symmetric matrix, write α on the diagonal,
// write β into every bonded pair, leave the rest 0. Construction is pure —
// the returned matrix is owned by the caller and never retained here.

package topology

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Build constructs the Hückel Hamiltonian for the given skeleton.
// Stage 1 (Validate): linear/cyclic require atoms ≥ 1; cages ignore atoms
// (their sizes are fixed by geometry).
// Stage 2 (Execute): dispatch to the per-kind fill routine.
// Returns ErrInvalidSize or ErrUnknownTopology; a non-nil matrix otherwise.
// Complexity: O(n²) time and memory.
func Build(kind Kind, atoms int, opts ...Option) (*mat.SymDense, error) {
	o := gatherOptions(opts...)

	switch kind {
	case Linear, Cyclic:
		if atoms < 1 {
			return nil, fmt.Errorf("Build(%s, %d): %w", kind, atoms, ErrInvalidSize)
		}
		if kind == Linear {
			return buildChain(atoms, o), nil
		}

		return buildRing(atoms, o), nil
	case Tetrahedron:
		return buildTetrahedron(o), nil
	case Octahedron:
		return buildOctahedron(o), nil
	case Cube:
		return buildBonded(CubeAtoms, cubeBonds[:], o), nil
	case Dodecahedron:
		return buildBonded(DodecahedronAtoms, dodecahedronBonds[:], o), nil
	default:
		return nil, fmt.Errorf("Build(%d): %w", uint8(kind), ErrUnknownTopology)
	}
}

// newDiagonal allocates an n×n symmetric matrix with α on the diagonal.
func newDiagonal(n int, o Options) *mat.SymDense {
	h := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		h.SetSym(i, i, o.alpha)
	}

	return h
}

// buildChain fills the open-chain Hamiltonian: β couples each atom to its
// predecessor along the backbone.
func buildChain(n int, o Options) *mat.SymDense {
	h := newDiagonal(n, o)
	for i := 1; i < n; i++ {
		h.SetSym(i, i-1, o.beta) // writes both (i,i-1) and (i-1,i)
	}

	return h
}

// buildRing fills the closed-ring Hamiltonian: the chain couplings plus the
// wraparound bond between atoms 0 and n−1.
//
// Boundary: for n ≤ 2 the ring is physically degenerate with the chain and
// the wraparound write lands on an already-written cell — for n == 1 it even
// replaces the α diagonal entry with β. This matches the established numeric
// behavior of the reference data set and is intentionally left unchanged.
func buildRing(n int, o Options) *mat.SymDense {
	h := buildChain(n, o)
	h.SetSym(0, n-1, o.beta)

	return h
}

// buildTetrahedron fills the K4 cage: every off-diagonal cell is a bond.
func buildTetrahedron(o Options) *mat.SymDense {
	h := newDiagonal(TetrahedronAtoms, o)
	for i := 0; i < TetrahedronAtoms; i++ {
		for j := i + 1; j < TetrahedronAtoms; j++ {
			h.SetSym(i, j, o.beta)
		}
	}

	return h
}

// buildOctahedron fills the octahedral cage: every vertex bonds to all
// others except its antipode (i, n−1−i), which stays 0.
func buildOctahedron(o Options) *mat.SymDense {
	h := newDiagonal(OctahedronAtoms, o)
	for i := 0; i < OctahedronAtoms; i++ {
		for j := i + 1; j < OctahedronAtoms; j++ {
			if j == OctahedronAtoms-1-i {
				continue // antipodal pair, no bond
			}
			h.SetSym(i, j, o.beta)
		}
	}

	return h
}

// buildBonded fills a cage Hamiltonian from a per-vertex bonding table
// (cube and dodecahedron). Each table row writes its three bonds; symmetric
// writes make the reverse entries redundant but the tables are symmetric by
// construction, so repeated writes are idempotent.
func buildBonded(n int, bonds [][3]int, o Options) *mat.SymDense {
	h := newDiagonal(n, o)
	for i := 0; i < n; i++ {
		for _, j := range bonds[i] {
			h.SetSym(i, j, o.beta)
		}
	}

	return h
}
