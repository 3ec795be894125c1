package sideaxes

import (
	"fmt"
	"math"
)

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not set.
type Interval struct {
	Min, Max float64
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Flipped returns i with its edges exchanged.
func (i Interval) Flipped() Interval {
	return Interval{i.Max, i.Min}
}

func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}
