package sideaxes

// config collects the creation parameters of NewSideView.
type config struct {
	gap         float64
	size        float64
	sizeSet     bool
	link        bool
	orientation Orientation
	units       Unit
	passthrough []func(*View)
}

func defaultConfig() config {
	return config{
		link:        true,
		orientation: Relative,
		units:       Centimeters,
	}
}

// An Option configures the creation of a side view.
type Option func(*config)

// Gap sets the spacing between the parent and the new view, measured in
// the unit selected with Units. The default is 0, i.e. touching edges.
func Gap(g float64) Option {
	return func(c *config) { c.gap = g }
}

// Size sets the extent of the new view perpendicular to the shared edge,
// measured in the unit selected with Units. If Size is not given the
// view fills the space between the parent and the figure edge, minus the
// gap. A negative size yields a degenerate, mirrored rectangle; it is
// not an error.
func Size(s float64) Option {
	return func(c *config) { c.size = s; c.sizeSet = true }
}

// Linked enables or disables live synchronization with the parent. The
// default is true; an unlinked view keeps its independent default state.
func Linked(on bool) Option {
	return func(c *config) { c.link = on }
}

// Orient sets the rotation of the new view. The default, Relative,
// orients it like the side it is attached to.
func Orient(o Orientation) Option {
	return func(c *config) { c.orientation = o }
}

// Units selects the measurement unit Gap and Size are interpreted in.
// The default is Centimeters.
func Units(u Unit) Option {
	return func(c *config) { c.units = u }
}

// WithView forwards fn uninterpreted to the created view, after
// placement and orientation but before the first synchronization pass.
func WithView(fn func(*View)) Option {
	return func(c *config) { c.passthrough = append(c.passthrough, fn) }
}
