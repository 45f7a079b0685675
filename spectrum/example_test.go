// Package spectrum_test: runnable documentation examples.
package spectrum_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/huckel/spectrum"
	"github.com/katalvlaran/huckel/topology"
)

// ExampleSolve runs the full pipeline for the cyclic(4) ring and prints
// the degeneracy table with the sum check.
func ExampleSolve() {
	h, err := topology.Build(topology.Cyclic, 4)
	if err != nil {
		panic(err)
	}
	report, err := spectrum.Solve(h)
	if err != nil {
		panic(err)
	}

	for _, l := range report.Levels {
		fmt.Printf("%.3f x%d\n", l.Energy, l.Degeneracy)
	}
	fmt.Println(report.SumStatement())
	// Output:
	// -2.000 x1
	// 0.000 x2
	// 2.000 x1
	// The sum of the Huckel energies is 0.000
}

// ExampleReport_WriteCSV exports the tetrahedron report in the canonical
// CSV layout.
func ExampleReport_WriteCSV() {
	h, err := topology.Build(topology.Tetrahedron, 0)
	if err != nil {
		panic(err)
	}
	report, err := spectrum.Solve(h)
	if err != nil {
		panic(err)
	}
	if err = report.WriteCSV(os.Stdout); err != nil {
		panic(err)
	}
	// Output:
	// Energy,Degeneracy
	// -3.000,1
	// 1.000,3
	// The sum of the Huckel energies is 0.000
}

// ExampleDegeneracies groups a noisy eigenvalue list into levels.
func ExampleDegeneracies() {
	levels := spectrum.Degeneracies([]float64{1.0000004, 0.9999997, -2.0})
	for _, l := range levels {
		fmt.Printf("%.3f x%d\n", l.Energy, l.Degeneracy)
	}
	// Output:
	// -2.000 x1
	// 1.000 x2
}
