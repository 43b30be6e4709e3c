package analysis

import (
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// Bounds is the axis-aligned box enclosing the finite part of a trajectory.
type Bounds struct {
	Min, Max dynamo.State
}

// BoundsOf returns the per-component extent of states. Non-finite values are
// skipped; a component with no finite values has Min = Max = 0.
func BoundsOf(states []dynamo.State) Bounds {
	dim := 0
	for _, s := range states {
		if len(s) > dim {
			dim = len(s)
		}
	}

	b := Bounds{Min: make(dynamo.State, dim), Max: make(dynamo.State, dim)}
	seen := make([]bool, dim)
	for _, s := range states {
		for i, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if !seen[i] || v < b.Min[i] {
				b.Min[i] = v
			}
			if !seen[i] || v > b.Max[i] {
				b.Max[i] = v
			}
			seen[i] = true
		}
	}
	return b
}

// Span returns Max-Min for each component.
func (b Bounds) Span() dynamo.State {
	return b.Max.Sub(b.Min)
}
