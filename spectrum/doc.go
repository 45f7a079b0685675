// Package spectrum turns a Hückel Hamiltonian into energy levels, their
// degeneracies, and an exportable report.
//
// The spectrum package provides:
//
//   - Energies: all eigenvalues of a symmetric Hamiltonian in ascending
//     order, computed with gonum's dense symmetric eigensolver.
//   - Degeneracies: fixed-precision rounding and grouping of near-equal
//     eigenvalues into (energy, degeneracy) levels.
//   - Assemble / Solve: the one-way pipeline Matrix → energies → levels →
//     Report, with the traceless sum check every supported topology must
//     satisfy (sum of energies ≈ n·α, i.e. 0 under the default α).
//   - Report exports: tabular rows, the canonical sum statement, CSV
//     writing, and an MO-style energy-level diagram.
//
// The grouping precision (3 decimals by default) is a policy constant, not a
// physical one: it absorbs eigensolver rounding noise while keeping
// physically distinct levels apart. Override it with WithPrecision when a
// topology needs finer or coarser level resolution.
package spectrum
