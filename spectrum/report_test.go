// Package spectrum_test: report assembly, the solve pipeline across all
// topologies, and the CSV export layout.
package spectrum_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/huckel/spectrum"
	"github.com/katalvlaran/huckel/topology"
)

// solveKind is a test helper: build a topology and run the full pipeline.
func solveKind(t *testing.T, kind topology.Kind, atoms int) spectrum.Report {
	t.Helper()
	h, err := topology.Build(kind, atoms)
	require.NoError(t, err)
	report, err := spectrum.Solve(h)
	require.NoError(t, err)

	return report
}

// TestSolveCages checks the four Platonic spectra against their known
// closed forms (β = −1): the adjacency eigenvalues of K4, the octahedron,
// the cube graph Q3, and the dodecahedral graph, each negated.
func TestSolveCages(t *testing.T) {
	sqrt5 := 2.236 // √5 rounded at the default precision
	cases := []struct {
		kind topology.Kind
		want []spectrum.Level
	}{
		{topology.Tetrahedron, []spectrum.Level{
			{Energy: -3, Degeneracy: 1}, {Energy: 1, Degeneracy: 3},
		}},
		{topology.Octahedron, []spectrum.Level{
			{Energy: -4, Degeneracy: 1}, {Energy: 0, Degeneracy: 3}, {Energy: 2, Degeneracy: 2},
		}},
		{topology.Cube, []spectrum.Level{
			{Energy: -3, Degeneracy: 1}, {Energy: -1, Degeneracy: 3},
			{Energy: 1, Degeneracy: 3}, {Energy: 3, Degeneracy: 1},
		}},
		{topology.Dodecahedron, []spectrum.Level{
			{Energy: -3, Degeneracy: 1}, {Energy: -sqrt5, Degeneracy: 3},
			{Energy: -1, Degeneracy: 5}, {Energy: 0, Degeneracy: 4},
			{Energy: 2, Degeneracy: 4}, {Energy: sqrt5, Degeneracy: 3},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			report := solveKind(t, tc.kind, 0)
			require.Equal(t, tc.want, report.Levels)
			require.Equal(t, 0.0, report.Sum)
		})
	}
}

// TestSolveCyclicFour reproduces the worked cyclic(4) example:
// eigenvalues {−2, 0, 0, 2} → levels [(-2,1), (0,2), (2,1)].
func TestSolveCyclicFour(t *testing.T) {
	report := solveKind(t, topology.Cyclic, 4)

	require.Equal(t, []spectrum.Level{
		{Energy: -2, Degeneracy: 1},
		{Energy: 0, Degeneracy: 2},
		{Energy: 2, Degeneracy: 1},
	}, report.Levels)
	require.Equal(t, "The sum of the Huckel energies is 0.000", report.SumStatement())
}

// TestSolveBenzene checks the cyclic(6) spectrum {−2, −1×2, 1×2, 2}.
func TestSolveBenzene(t *testing.T) {
	report := solveKind(t, topology.Cyclic, 6)

	require.Equal(t, []spectrum.Level{
		{Energy: -2, Degeneracy: 1},
		{Energy: -1, Degeneracy: 2},
		{Energy: 1, Degeneracy: 2},
		{Energy: 2, Degeneracy: 1},
	}, report.Levels)
}

// TestSumCheckAllTopologies asserts the traceless identity: with α = 0 the
// rounded energy sum is 0 for every supported topology.
func TestSumCheckAllTopologies(t *testing.T) {
	cases := []struct {
		kind  topology.Kind
		atoms int
	}{
		{topology.Linear, 1},
		{topology.Linear, 11},
		{topology.Cyclic, 3},
		{topology.Cyclic, 10},
		{topology.Tetrahedron, 0},
		{topology.Octahedron, 0},
		{topology.Cube, 0},
		{topology.Dodecahedron, 0},
	}
	for _, tc := range cases {
		report := solveKind(t, tc.kind, tc.atoms)
		require.Equal(t, 0.0, report.Sum, "%s(%d)", tc.kind, tc.atoms)

		total := 0
		for _, l := range report.Levels {
			total += l.Degeneracy
		}
		h, err := topology.Build(tc.kind, tc.atoms)
		require.NoError(t, err)
		n, _ := h.Dims()
		require.Equal(t, n, total, "%s(%d)", tc.kind, tc.atoms)
	}
}

// TestSolveIdempotent runs the pipeline twice on identical inputs and
// expects identical reports.
func TestSolveIdempotent(t *testing.T) {
	first := solveKind(t, topology.Dodecahedron, 0)
	second := solveKind(t, topology.Dodecahedron, 0)
	require.Equal(t, first, second)
}

// TestReportRows checks the tabular layout: header first, then formatted
// level rows.
func TestReportRows(t *testing.T) {
	report := solveKind(t, topology.Linear, 2)

	require.Equal(t, [][]string{
		{"Energy", "Degeneracy"},
		{"-1.000", "1"},
		{"1.000", "1"},
	}, report.Rows())
}

// TestWriteCSV pins the golden CSV layout for the ethylene example,
// including the trailing single-cell sum row.
func TestWriteCSV(t *testing.T) {
	report := solveKind(t, topology.Linear, 2)

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf))

	want := "Energy,Degeneracy\n" +
		"-1.000,1\n" +
		"1.000,1\n" +
		"The sum of the Huckel energies is 0.000\n"
	require.Equal(t, want, buf.String())
}

// TestAssembleCustomPrecision ensures the precision option flows through to
// rows and the sum statement.
func TestAssembleCustomPrecision(t *testing.T) {
	report := spectrum.Assemble([]float64{-0.5, 0.5}, spectrum.WithPrecision(1))

	require.Equal(t, [][]string{
		{"Energy", "Degeneracy"},
		{"-0.5", "1"},
		{"0.5", "1"},
	}, report.Rows())
	require.Equal(t, "The sum of the Huckel energies is 0.0", report.SumStatement())
}
