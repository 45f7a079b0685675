// Package huckel computes Hückel (tight-binding) π-system energy levels
// and their degeneracies for conjugated carbon skeletons.
//
// 🚀 What is huckel?
//
//	A small, deterministic library that brings together:
//		• Topology builders: linear and cyclic polyenes plus the four
//		  sp²-hybridized Platonic cages (tetrahedron, cube, octahedron,
//		  dodecahedron) and their exact adjacency tables
//		• A symmetric eigen stage backed by gonum's dense EigenSym
//		• Degeneracy reduction: fixed-precision rounding and level grouping
//		• Report assembly: sorted (energy, degeneracy) rows, a traceless
//		  sum check, CSV export and an MO-style level diagram
//
// ✨ Why choose huckel?
//
//   - Minimal API – one builder call, one solve call
//   - Deterministic – no global state; α and β are explicit options
//   - Pure pipeline – Matrix → energies → levels is strictly one-way
//
// Everything is organized under two subpackages:
//
//	topology/ — Hückel Hamiltonian construction per molecular skeleton
//	spectrum/ — eigenvalues, degeneracy tables, reports and exports
//
// Quick ASCII example (butadiene, linear n=4):
//
//	C═C─C═C    →    4×4 Hamiltonian, α on the diagonal,
//	                β on the super/subdiagonal, 0 elsewhere.
//
// A runnable front-end lives in cmd/huckel; see README.md for usage.
package huckel
