// Package topology: domain types for skeleton selection.
// This file contains ONLY the Kind enum and its boundary parsing; errors and
// options live in dedicated files (errors.go, options.go).

package topology

import (
	"fmt"
	"strings"
)

// Kind selects the molecular skeleton whose Hückel Hamiltonian is built.
type Kind uint8

// Supported skeleton kinds. Linear and Cyclic take an atom count; the four
// Platonic cages have fixed sizes (4, 6, 8 and 20 atoms respectively).
const (
	// Linear is an open polyene chain of n sp² carbons.
	Linear Kind = iota
	// Cyclic is a closed polyene ring of n sp² carbons.
	Cyclic
	// Tetrahedron is the K4 cage: every vertex bonds to every other.
	Tetrahedron
	// Cube is the cubic cage: each of 8 vertices bonds to 3 neighbors.
	Cube
	// Octahedron is the octahedral cage: each of 6 vertices bonds to all
	// but its antipode (degree 4).
	Octahedron
	// Dodecahedron is the dodecahedral cage: each of 20 vertices bonds to
	// 3 neighbors.
	Dodecahedron
)

// Atom counts of the fixed-size Platonic cages.
const (
	TetrahedronAtoms  = 4
	OctahedronAtoms   = 6
	CubeAtoms         = 8
	DodecahedronAtoms = 20
)

// String returns the canonical lower-case name of the kind, matching the
// vocabulary accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Cyclic:
		return "cyclic"
	case Tetrahedron:
		return "tetrahedron"
	case Cube:
		return "cube"
	case Octahedron:
		return "octahedron"
	case Dodecahedron:
		return "dodecahedron"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps a user-facing topology name onto a Kind.
// Matching is case-insensitive and ignores surrounding whitespace.
// Returns ErrUnknownTopology for anything outside the six canonical names;
// retry or exit policy on bad input belongs to the caller, not here.
// Complexity: O(len(s)).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "cyclic":
		return Cyclic, nil
	case "tetrahedron":
		return Tetrahedron, nil
	case "cube":
		return Cube, nil
	case "octahedron":
		return Octahedron, nil
	case "dodecahedron":
		return Dodecahedron, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownTopology)
	}
}
