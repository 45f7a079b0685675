// Package spectrum: MO-style energy-level diagram.
// Each level is drawn as a row of short horizontal dashes at its energy,
// one dash per degenerate orbital, centered on the vertical axis — the
// diagram chemists sketch next to a Hückel calculation.

package spectrum

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Dash geometry in level-diagram coordinates: each orbital occupies a unit
// slot, the dash fills dashWidth of it.
const (
	dashWidth = 0.8
	dashSlot  = 1.0
)

// Default canvas size for SaveDiagram.
const (
	diagramWidth  = 10 * vg.Centimeter
	diagramHeight = 14 * vg.Centimeter
)

// Diagram renders the report as an energy-level plot.
// The Y axis is energy; the X axis carries no meaning and is hidden.
func Diagram(r Report, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Energy"
	p.HideX()

	maxDeg := 1
	for _, l := range r.Levels {
		if l.Degeneracy > maxDeg {
			maxDeg = l.Degeneracy
		}
	}

	for _, l := range r.Levels {
		// Center the row of dashes: span is Degeneracy slots wide.
		x0 := -float64(l.Degeneracy) * dashSlot / 2
		for k := 0; k < l.Degeneracy; k++ {
			left := x0 + float64(k)*dashSlot + (dashSlot-dashWidth)/2
			dash, err := plotter.NewLine(plotter.XYs{
				{X: left, Y: l.Energy},
				{X: left + dashWidth, Y: l.Energy},
			})
			if err != nil {
				return nil, fmt.Errorf("Diagram: %w", err)
			}
			dash.LineStyle.Width = vg.Points(2)
			p.Add(dash)
		}
	}

	// Pad the X range so edge dashes do not touch the frame.
	half := float64(maxDeg)*dashSlot/2 + dashSlot/2
	p.X.Min, p.X.Max = -half, half

	return p, nil
}

// SaveDiagram renders the report and writes it to path; the image format
// follows the file extension (png, svg, pdf, ...).
func SaveDiagram(r Report, title, path string) error {
	p, err := Diagram(r, title)
	if err != nil {
		return err
	}
	if err = p.Save(diagramWidth, diagramHeight, path); err != nil {
		return fmt.Errorf("SaveDiagram: %w", err)
	}

	return nil
}
