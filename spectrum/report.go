// Package spectrum: report assembly and CSV export.
// Report is the final stage of the pipeline; handing it to storage or a
// terminal is the caller's concern. The tabular layout (header row, sorted
// level rows, trailing one-cell sum row) is fixed for compatibility with
// downstream consumers of the original Huckel_Energies.csv format.

package spectrum

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// sumStatement is the canonical prefix of the trailing report line.
const sumStatement = "The sum of the Huckel energies is "

// Report is the complete export payload for one solved topology: the
// degeneracy table plus the traceless sum check.
type Report struct {
	// Levels holds the degeneracy table, ascending by energy, with unique
	// rounded energies; degeneracies sum to the matrix dimension.
	Levels []Level

	// Sum is the sum of the raw (unrounded) energies, rounded to the
	// report precision. Under the default α = 0 it must be 0 for every
	// supported topology, since the Hamiltonian is traceless.
	Sum float64

	precision int // formatting precision, carried from the solve options
}

// Assemble reduces an energy list into a Report.
// The energies slice is consumed conceptually: the Report carries only the
// reduced levels and the sum check. Complexity: O(n log n).
func Assemble(energies []float64, opts ...Option) Report {
	o := gatherOptions(opts...)

	var sum float64
	for _, e := range energies {
		sum += e
	}

	return Report{
		Levels:    degeneracies(energies, o),
		Sum:       roundTo(sum, o.precision),
		precision: o.precision,
	}
}

// Solve runs the one-way pipeline Matrix → energies → levels → Report.
// Each call allocates fresh state; nothing is shared across invocations.
// Returns the sentinel errors of Energies unchanged.
func Solve(m mat.Matrix, opts ...Option) (Report, error) {
	energies, err := Energies(m)
	if err != nil {
		return Report{}, err
	}

	return Assemble(energies, opts...), nil
}

// Rows returns the tabular form of the report: a header row followed by one
// [energy, degeneracy] row per level, energies formatted at the report
// precision.
func (r Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.Levels)+1)
	rows = append(rows, []string{"Energy", "Degeneracy"})
	for _, l := range r.Levels {
		rows = append(rows, []string{
			strconv.FormatFloat(l.Energy, 'f', r.precision, 64),
			strconv.Itoa(l.Degeneracy),
		})
	}

	return rows
}

// SumStatement returns the canonical trailing line, e.g.
// "The sum of the Huckel energies is 0.000".
func (r Report) SumStatement() string {
	return sumStatement + strconv.FormatFloat(r.Sum, 'f', r.precision, 64)
}

// WriteCSV writes the report to w in the fixed layout: header row, level
// rows, then a single-cell row holding the sum statement. Either the whole
// report is written or an error is returned before any trailing rows.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, row := range r.Rows() {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	if err := cw.Write([]string{r.SumStatement()}); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	cw.Flush()

	return cw.Error()
}
