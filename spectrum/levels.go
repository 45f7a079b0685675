// Package spectrum: degeneracy reduction.
// Degeneracies rounds eigenvalues to the configured precision and groups
// equal rounded values into levels. Two energies that round to the same
// value are the same level — no further tie-breaking exists.

package spectrum

import (
	"math"
	"sort"
)

// Level is one molecular-orbital energy level: a rounded energy and the
// number of independent eigenstates sharing it.
type Level struct {
	Energy     float64 // rounded to the reduction precision
	Degeneracy int     // ≥ 1
}

// Degeneracies reduces an energy list to levels sorted ascending by energy.
// Rounded energies are unique across the result and degeneracies sum to
// len(energies). The input slice is not modified.
// Complexity: O(n log n) time, O(n) memory.
func Degeneracies(energies []float64, opts ...Option) []Level {
	o := gatherOptions(opts...)

	return degeneracies(energies, o)
}

// degeneracies is the resolved-options kernel shared with Assemble.
func degeneracies(energies []float64, o Options) []Level {
	if len(energies) == 0 {
		return nil
	}

	// Round a copy, then sort it: the input may arrive in any order and
	// must stay untouched.
	rounded := make([]float64, len(energies))
	for i, e := range energies {
		rounded[i] = roundTo(e, o.precision)
	}
	sort.Float64s(rounded)

	// Single pass over the sorted values; equal neighbors extend the
	// current level, a new value opens the next one.
	levels := make([]Level, 0, len(rounded))
	levels = append(levels, Level{Energy: rounded[0], Degeneracy: 1})
	for _, e := range rounded[1:] {
		if last := &levels[len(levels)-1]; e == last.Energy {
			last.Degeneracy++
			continue
		}
		levels = append(levels, Level{Energy: e, Degeneracy: 1})
	}

	return levels
}

// roundTo rounds v to prec decimal places, normalizing -0 to 0 so that
// levels and report rows never print a negative zero.
func roundTo(v float64, prec int) float64 {
	f := math.Pow(10, float64(prec))
	r := math.Round(v*f) / f
	if r == 0 {
		return 0
	}

	return r
}
