package sideaxes

// ----------------------------------------------------------------------------
// AxisID

// AxisID names one of the three semantic axes data is defined against.
// Which screen direction a semantic axis is rendered along depends on the
// view's rotation, see findAxis.
type AxisID int

const (
	AxisX AxisID = iota
	AxisY
	AxisZ
	numAxes
)

// String returns the name of a.
func (a AxisID) String() string {
	return []string{"x", "y", "z"}[int(a)]
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects the fundamental nature of an axis scale.
type ScaleType int

const (
	Linear ScaleType = iota
	Logarithmic
)

// String returns the type of st.
func (st ScaleType) String() string {
	return []string{"linear", "log"}[int(st)]
}

// transformation returns the data-to-unit mapping for st.
func (st ScaleType) transformation() Transformation {
	switch st {
	case Linear:
		return LinearTrans
	case Logarithmic:
		return Log10Trans
	default:
		panic(st)
	}
}

// ----------------------------------------------------------------------------
// Direction

// Direction determines whether values increase in the standard rendering
// direction of an axis or in the opposite one.
type Direction int

const (
	Normal Direction = iota
	Reverse
)

// String returns the name of d.
func (d Direction) String() string {
	return []string{"normal", "reverse"}[int(d)]
}

// Flip returns the logical opposite of d.
func (d Direction) Flip() Direction {
	if d == Normal {
		return Reverse
	}
	return Normal
}

// ----------------------------------------------------------------------------
// Axis

// Axis bundles the state of one semantic axis of a view.
type Axis struct {
	Limits Interval
	Scale  ScaleType
	Dir    Direction
}

// defaultAxis returns a linear axis over the unit interval.
func defaultAxis() Axis {
	return Axis{Limits: Interval{0, 1}}
}
