package sideaxes

import (
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Unit

// Unit selects the measurement unit lengths and positions are expressed
// in. Normalized coordinates are fractions of the figure extent, the
// physical units require the figure's physical size for conversion.
type Unit int

const (
	Normalized Unit = iota
	Centimeters
	Millimeters
	Inches
	Points
)

// String returns the name of u.
func (u Unit) String() string {
	return []string{"normalized", "centimeters", "millimeters", "inches", "points"}[int(u)]
}

func (u Unit) valid() bool {
	return u >= Normalized && u <= Points
}

// length returns the vg length of one u. Not defined for Normalized.
func (u Unit) length() vg.Length {
	switch u {
	case Centimeters:
		return vg.Centimeter
	case Millimeters:
		return vg.Millimeter
	case Inches:
		return vg.Inch
	case Points:
		return vg.Points(1)
	default:
		panic(u)
	}
}

// ----------------------------------------------------------------------------
// Rect

// A Rect is a rectangle given by its lower left corner, width and height.
type Rect struct {
	X, Y, W, H float64
}

// ----------------------------------------------------------------------------
// Figure

// A Figure is the container all views live in. Its physical size anchors
// the conversion between normalized coordinates and measurement units.
type Figure struct {
	Width, Height vg.Length

	views   []*View
	current *View
}

// NewFigure returns an empty figure of the given physical size.
func NewFigure(width, height vg.Length) *Figure {
	return &Figure{Width: width, Height: height}
}

// AddView creates a new view covering rect, given in normalized
// coordinates, and makes it the current view.
func (f *Figure) AddView(rect Rect) *View {
	v := &View{
		Decorated: true,
		Clip:      true,
		fig:       f,
		pos:       rect,
		rot:       View2D,
	}
	for i := range v.axes {
		v.axes[i] = defaultAxis()
	}
	f.views = append(f.views, v)
	f.current = v
	return v
}

// Views returns all views of f in creation order.
func (f *Figure) Views() []*View {
	return f.views
}

// Current returns the view added or selected last, nil for an empty
// figure.
func (f *Figure) Current() *View {
	return f.current
}

// SetCurrent makes v the current view of f. Views of other figures are
// ignored.
func (f *Figure) SetCurrent(v *View) {
	if v != nil && v.fig == f && v.Alive() {
		f.current = v
	}
}

// Delete removes v from f. The view's subscriptions are dropped, a link
// feeding v is closed and links reading from v become inert.
func (f *Figure) Delete(v *View) {
	for i, w := range f.views {
		if w == v {
			f.views = append(f.views[:i], f.views[i+1:]...)
			break
		}
	}
	if f.current == v {
		f.current = nil
		if n := len(f.views); n > 0 {
			f.current = f.views[n-1]
		}
	}
	v.dead = true
	v.watchers = nil
	if v.link != nil {
		v.link.Close()
		v.link = nil
	}
}

// toUnit converts rect from normalized coordinates into u.
func (f *Figure) toUnit(rect Rect, u Unit) Rect {
	if u == Normalized {
		return rect
	}
	w := float64(f.Width / u.length())
	h := float64(f.Height / u.length())
	return Rect{rect.X * w, rect.Y * h, rect.W * w, rect.H * h}
}

// fromUnit converts rect given in u into normalized coordinates.
func (f *Figure) fromUnit(rect Rect, u Unit) Rect {
	if u == Normalized {
		return rect
	}
	w := float64(f.Width / u.length())
	h := float64(f.Height / u.length())
	return Rect{rect.X / w, rect.Y / h, rect.W / w, rect.H / h}
}
