// Package topology: fixed bonding tables for the 3-regular Platonic cages.
// These tables are domain constants: each encodes one specific vertex
// labeling of the polyhedral skeleton. Keeping them as named data, separate
// from the fill loops, lets the graphs be audited on their own — every row i
// must list exactly the 3 vertices bonded to atom i, and j ∈ table[i] must
// imply i ∈ table[j].

package topology

// cubeBonds lists, per cube vertex, the 3 vertices it bonds to.
// Labeling: vertices 0–3 form one face (cycle 0-1-3-2), 4–7 the opposite
// face, and each vertex i < 4 bonds down to vertex i+4.
var cubeBonds = [CubeAtoms][3]int{
	{1, 2, 4},
	{0, 3, 5},
	{0, 3, 6},
	{1, 2, 7},
	{0, 5, 6},
	{1, 4, 7},
	{2, 4, 7},
	{3, 5, 6},
}

// dodecahedronBonds lists, per dodecahedron vertex, the 3 vertices it bonds
// to. The labeling follows the standard pentagonal-face embedding used by
// the reference data set for C20.
var dodecahedronBonds = [DodecahedronAtoms][3]int{
	{13, 14, 15},
	{4, 5, 12},
	{6, 13, 18},
	{7, 14, 19},
	{1, 10, 18},
	{1, 11, 19},
	{2, 10, 15},
	{3, 11, 15},
	{9, 13, 16},
	{8, 14, 17},
	{4, 6, 11},
	{5, 7, 10},
	{1, 16, 17},
	{0, 2, 8},
	{0, 3, 9},
	{0, 6, 7},
	{8, 12, 18},
	{9, 12, 19},
	{2, 4, 16},
	{3, 5, 17},
}
