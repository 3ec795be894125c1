package sideaxes

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Change notifications

// Prop names a view property in change notifications.
type Prop int

const (
	PropPosition Prop = iota
	PropLimits
	PropScale
	PropDirection
	PropRotation
	PropUnits
)

// String returns the name of p.
func (p Prop) String() string {
	return []string{"position", "limits", "scale", "direction", "rotation", "units"}[int(p)]
}

// A Change describes one mutation of a view. Axis is meaningful only for
// the per-axis properties limits, scale and direction.
type Change struct {
	Prop Prop
	Axis AxisID
}

type watcher struct {
	id int
	fn func(Change)
}

// A Subscription ties a change callback to a view. Closing it detaches
// the callback; Close is idempotent.
type Subscription struct {
	view *View
	id   int
}

// Close detaches the subscription from its view.
func (s *Subscription) Close() {
	if s.view == nil {
		return
	}
	ww := s.view.watchers
	for i := range ww {
		if ww[i].id == s.id {
			s.view.watchers = append(ww[:i], ww[i+1:]...)
			break
		}
	}
	s.view = nil
}

// ----------------------------------------------------------------------------
// View

// A View represents one rectangular plotting region inside a figure. Its
// position is authoritative and stored in normalized coordinates; limits,
// scale and direction are kept per semantic axis and rendered through the
// view's rotation.
type View struct {
	// Decorated selects whether renderers should draw box and tick
	// decorations around the view. Side views are created undecorated.
	Decorated bool

	// Clip restricts drawing to the intersection with the view boundary.
	Clip bool

	fig   *Figure
	pos   Rect // normalized
	axes  [numAxes]Axis
	rot   Rotation
	units Unit
	side  Side
	dead  bool

	link     *Link
	watchers []watcher
	nextID   int
}

// Figure returns the figure owning v.
func (v *View) Figure() *Figure { return v.fig }

// Side returns the edge of the parent v was attached to, NoSide for
// views not created by NewSideView. The side is metadata only; it plays
// no role in layout after creation.
func (v *View) Side() Side { return v.side }

// Link returns the link feeding v, nil if v is not a linked side view.
func (v *View) Link() *Link { return v.link }

// Alive reports whether v is still part of its figure.
func (v *View) Alive() bool { return !v.dead }

// Units returns the unit positions of v are expressed in.
func (v *View) Units() Unit { return v.units }

// SetUnits changes the unit positions of v are expressed in. The stored
// normalized position is unaffected.
func (v *View) SetUnits(u Unit) {
	if u == v.units {
		return
	}
	v.units = u
	v.notify(Change{Prop: PropUnits})
}

// Position returns v's position rectangle expressed in v's units.
func (v *View) Position() Rect {
	return v.fig.toUnit(v.pos, v.units)
}

// SetPosition places v at rect, interpreted in v's units.
func (v *View) SetPosition(rect Rect) {
	v.pos = v.fig.fromUnit(rect, v.units)
	v.notify(Change{Prop: PropPosition})
}

// positionIn reads v's position in u without altering the persisted unit
// setting: the stored unit is switched for the duration of the query and
// restored on every path, and no notification is sent.
func (v *View) positionIn(u Unit) Rect {
	prev := v.units
	v.units = u
	defer func() { v.units = prev }()
	return v.Position()
}

// Limits returns the limits of the semantic axis ax.
func (v *View) Limits(ax AxisID) Interval { return v.axes[ax].Limits }

// SetLimits sets the limits of the semantic axis ax.
func (v *View) SetLimits(ax AxisID, lim Interval) {
	v.axes[ax].Limits = lim
	v.notify(Change{Prop: PropLimits, Axis: ax})
}

// Scale returns the scale type of the semantic axis ax.
func (v *View) Scale(ax AxisID) ScaleType { return v.axes[ax].Scale }

// SetScale sets the scale type of the semantic axis ax.
func (v *View) SetScale(ax AxisID, st ScaleType) {
	v.axes[ax].Scale = st
	v.notify(Change{Prop: PropScale, Axis: ax})
}

// Dir returns the direction of the semantic axis ax.
func (v *View) Dir(ax AxisID) Direction { return v.axes[ax].Dir }

// SetDir sets the direction of the semantic axis ax.
func (v *View) SetDir(ax AxisID, d Direction) {
	v.axes[ax].Dir = d
	v.notify(Change{Prop: PropDirection, Axis: ax})
}

// Rotation returns the rotation of v.
func (v *View) Rotation() Rotation { return v.rot }

// SetRotation rotates v. A rotation may change which semantic axis
// renders along which screen coordinate.
func (v *View) SetRotation(r Rotation) {
	v.rot = r
	v.notify(Change{Prop: PropRotation})
}

// OnChange registers fn to be called synchronously after every mutation
// of v, in registration order.
func (v *View) OnChange(fn func(Change)) *Subscription {
	v.nextID++
	v.watchers = append(v.watchers, watcher{v.nextID, fn})
	return &Subscription{view: v, id: v.nextID}
}

func (v *View) notify(c Change) {
	if v.dead {
		return
	}
	// Callbacks may detach themselves, so iterate over a copy.
	for _, w := range append([]watcher(nil), v.watchers...) {
		w.fn(c)
	}
}

// ----------------------------------------------------------------------------
// Drawing surface

// Canvas returns the sub-canvas of c covered by v's position. Renderers
// draw into it using v.Map; the synchronization machinery is invisible
// to them.
func (v *View) Canvas(c draw.Canvas) draw.Canvas {
	size := c.Size()
	sub := c
	sub.Min.X = c.Min.X + vg.Length(v.pos.X)*size.X
	sub.Min.Y = c.Min.Y + vg.Length(v.pos.Y)*size.Y
	sub.Max.X = sub.Min.X + vg.Length(v.pos.W)*size.X
	sub.Max.Y = sub.Min.Y + vg.Length(v.pos.H)*size.Y
	return sub
}

// Map maps the semantic data point (x, y, z) onto the canvas rectangle c
// (normally the result of v.Canvas), honouring v's rotation, per axis
// scale and direction.
func (v *View) Map(c draw.Canvas, x, y, z float64) vg.Point {
	data := [numAxes]float64{x, y, z}
	var p vg.Point
	for _, sc := range []ScreenCoord{Horizontal, Vertical} {
		ax, sign := findAxis(v.rot, sc)
		a := v.axes[ax]
		u := a.Scale.transformation().Trans(a.Limits, Interval{0, 1}, data[ax])
		if a.Dir == Reverse {
			u = 1 - u
		}
		if sign < 0 {
			u = 1 - u
		}
		if sc == Horizontal {
			p.X = c.Min.X + vg.Length(u)*(c.Max.X-c.Min.X)
		} else {
			p.Y = c.Min.Y + vg.Length(u)*(c.Max.Y-c.Min.Y)
		}
	}
	return p
}
