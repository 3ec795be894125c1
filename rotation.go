package sideaxes

import "math"

// ----------------------------------------------------------------------------
// ScreenCoord

// ScreenCoord is one of the two on-screen directions of a rendered view,
// independent of which semantic axis is displayed along it.
type ScreenCoord int

const (
	Horizontal ScreenCoord = iota
	Vertical
)

// String returns the name of sc.
func (sc ScreenCoord) String() string {
	return []string{"horizontal", "vertical"}[int(sc)]
}

// ----------------------------------------------------------------------------
// Rotation

// A Rotation describes the orientation of a view as an azimuth/elevation
// pair in degrees. The azimuth rotates around the semantic z axis, the
// elevation lifts the eye above the x/y plane.
type Rotation struct {
	Azimuth, Elevation float64
}

// View2D is the standard front view: x to the right, y upwards.
var View2D = Rotation{Azimuth: 0, Elevation: 90}

// screenRow returns the coefficients of the three semantic basis vectors
// projected onto the screen coordinate sc.
func (r Rotation) screenRow(sc ScreenCoord) [3]float64 {
	az := r.Azimuth * math.Pi / 180
	el := r.Elevation * math.Pi / 180
	switch sc {
	case Horizontal:
		return [3]float64{math.Cos(az), math.Sin(az), 0}
	case Vertical:
		return [3]float64{-math.Sin(el) * math.Sin(az), math.Sin(el) * math.Cos(az), math.Cos(el)}
	default:
		panic(sc)
	}
}

// findAxis determines which semantic axis of a view rotated by r renders
// along the screen coordinate sc: the one whose projection onto sc has
// the largest magnitude. The returned sign is -1 if increasing values
// render towards the left respectively the bottom, +1 otherwise.
func findAxis(r Rotation, sc ScreenCoord) (AxisID, float64) {
	row := r.screenRow(sc)
	ax := AxisX
	for i := AxisY; i < numAxes; i++ {
		if math.Abs(row[i]) > math.Abs(row[ax]) {
			ax = i
		}
	}
	if row[ax] < 0 {
		return ax, -1
	}
	return ax, 1
}
