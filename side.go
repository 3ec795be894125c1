package sideaxes

// ----------------------------------------------------------------------------
// Side

// Side names the edge of a parent view a side view is attached to.
type Side int

const (
	NoSide Side = iota
	North
	South
	East
	West
)

// String returns the name of s.
func (s Side) String() string {
	return []string{"none", "north", "south", "east", "west"}[int(s)]
}

func (s Side) valid() bool {
	return s >= North && s <= West
}

// shared returns the screen coordinate a view attached to s has in common
// with its parent: the one running along the shared edge.
func (s Side) shared() ScreenCoord {
	if s == East || s == West {
		return Vertical
	}
	return Horizontal
}

// across returns the screen coordinate perpendicular to the shared edge.
func (s Side) across() ScreenCoord {
	if s.shared() == Horizontal {
		return Vertical
	}
	return Horizontal
}

// ----------------------------------------------------------------------------
// Orientation

// Orientation selects the rotation applied to a new side view. It
// determines the direction increasing values of the view's y axis render
// towards. Relative orients the view away from its parent, i.e. like the
// side it is attached to.
type Orientation int

const (
	Relative Orientation = iota
	OrientNorth
	OrientSouth
	OrientEast
	OrientWest
)

// String returns the name of o.
func (o Orientation) String() string {
	return []string{"relative", "north", "south", "east", "west"}[int(o)]
}

func (o Orientation) valid() bool {
	return o >= Relative && o <= OrientWest
}

// resolve replaces Relative by the orientation matching side.
func (o Orientation) resolve(side Side) Orientation {
	if o != Relative {
		return o
	}
	switch side {
	case North:
		return OrientNorth
	case South:
		return OrientSouth
	case East:
		return OrientEast
	case West:
		return OrientWest
	default:
		panic(side)
	}
}

// rotation returns the discrete rotation rendering increasing y values
// towards the direction o names. These are the only four rotations a
// side view is created with; callers may apply arbitrary ones later.
func (o Orientation) rotation() Rotation {
	switch o {
	case OrientNorth:
		return Rotation{Azimuth: 0, Elevation: 90}
	case OrientSouth:
		return Rotation{Azimuth: 0, Elevation: -90}
	case OrientEast:
		return Rotation{Azimuth: 90, Elevation: 90}
	case OrientWest:
		return Rotation{Azimuth: -90, Elevation: 90}
	default:
		panic(o)
	}
}
