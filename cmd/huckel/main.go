// Command huckel solves the Hückel π-system for a chosen molecular
// skeleton and reports the energy levels with their degeneracies.
//
// Usage:
//
//	huckel -kind linear -n 4
//	huckel -kind cyclic -n 6 -csv benzene.csv
//	huckel -kind dodecahedron -diagram c20.png
//
// The degeneracy table and the energy sum check are printed to stdout; the
// same table is written as CSV (Huckel_Energies.csv by default, -csv ""
// disables it). Invalid input exits non-zero instead of re-prompting.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/huckel/spectrum"
	"github.com/katalvlaran/huckel/topology"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "huckel:", err)
		os.Exit(1)
	}
}

// run parses flags, executes the pipeline, and emits the report.
// Kept separate from main so the whole flow is testable.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("huckel", flag.ContinueOnError)
	var (
		kindName  = fs.String("kind", "", "topology: linear, cyclic, tetrahedron, cube, octahedron or dodecahedron")
		atoms     = fs.Int("n", 0, "atom count for linear/cyclic topologies (ignored for the Platonic cages)")
		alpha     = fs.Float64("alpha", topology.DefaultAlpha, "on-site energy α")
		beta      = fs.Float64("beta", topology.DefaultBeta, "resonance energy β")
		precision = fs.Int("precision", spectrum.DefaultPrecision, "decimal places for degeneracy grouping")
		csvPath   = fs.String("csv", "Huckel_Energies.csv", "CSV output path (empty to skip)")
		diagram   = fs.String("diagram", "", "energy-level diagram output path (png/svg/pdf; empty to skip)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	kind, err := topology.ParseKind(*kindName)
	if err != nil {
		return err
	}

	h, err := topology.Build(kind, *atoms,
		topology.WithAlpha(*alpha), topology.WithBeta(*beta))
	if err != nil {
		return err
	}

	report, err := spectrum.Solve(h, spectrum.WithPrecision(*precision))
	if err != nil {
		return err
	}

	// Print the table and the sum check, matching the classic layout.
	for _, row := range report.Rows() {
		fmt.Fprintln(out, strings.Join(row, "\t"))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.SumStatement())

	if *csvPath != "" {
		if err = writeCSV(report, *csvPath); err != nil {
			return err
		}
	}
	if *diagram != "" {
		title := fmt.Sprintf("Hückel levels: %s", kind)
		if err = spectrum.SaveDiagram(report, title, *diagram); err != nil {
			return err
		}
	}

	return nil
}

// writeCSV persists the report, creating or truncating path.
func writeCSV(report spectrum.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = report.WriteCSV(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
