// Package topology constructs Hückel (tight-binding) Hamiltonians for
// π-conjugated carbon skeletons.
//
// The topology package provides:
//
//   - Kind, an enum of the supported skeletons: linear and cyclic polyenes
//     plus the four sp²-hybridized Platonic cages (tetrahedron, cube,
//     octahedron, dodecahedron).
//   - Build, which turns a Kind and an atom count into an n×n symmetric
//     Hamiltonian: α on the diagonal, β between bonded neighbors, 0
//     elsewhere.
//   - ParseKind, the validated input boundary that maps user-facing
//     topology names onto Kind values.
//
// Matrices are returned as *mat.SymDense so symmetry holds by construction
// and downstream spectral routines can use the symmetric eigen fast path.
//
// The cube and dodecahedron bonding tables are fixed domain constants (see
// tables.go); they encode one specific vertex labeling of each polyhedral
// skeleton and are audited independently of the fill loops.
package topology
