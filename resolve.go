package sideaxes

import (
	"fmt"
	"math"
)

// NewSideView creates a new view attached to the given edge of parent,
// inside the same figure. The new view shares its border with the parent:
// the dimension along the shared edge equals the parent's, the
// perpendicular one is given by Size (or fills the remaining space up to
// the figure edge), offset from the parent by Gap. Gap and size are
// interpreted in the unit selected with Units.
//
// The view is created undecorated and with clipping on. Its rotation is
// one of the four cardinal ones, selected with Orient, and its axis
// perpendicular to the shared edge spans [0, size]. Unless Linked(false)
// is given the view is linked to the parent, see Link.
//
// Invalid side, unit or orientation values and non-finite gap or size
// are reported as errors before any view is created. Degenerate (zero or
// negative area) rectangles are not errors.
//
// The default size assumes the parent's position reflects the true
// distance to the figure edges; if the parent carries an additional
// container inset the default is approximate.
func NewSideView(parent *View, side Side, opts ...Option) (*View, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if parent == nil || !parent.Alive() {
		return nil, fmt.Errorf("sideaxes: no parent view")
	}
	if !side.valid() {
		return nil, fmt.Errorf("sideaxes: unknown side %d", int(side))
	}
	if !cfg.units.valid() {
		return nil, fmt.Errorf("sideaxes: unknown unit %d", int(cfg.units))
	}
	if !cfg.orientation.valid() {
		return nil, fmt.Errorf("sideaxes: unknown orientation %d", int(cfg.orientation))
	}
	if math.IsNaN(cfg.gap) || math.IsInf(cfg.gap, 0) {
		return nil, fmt.Errorf("sideaxes: gap %v is not finite", cfg.gap)
	}
	if cfg.sizeSet && (math.IsNaN(cfg.size) || math.IsInf(cfg.size, 0)) {
		return nil, fmt.Errorf("sideaxes: size %v is not finite", cfg.size)
	}

	posFrac := parent.positionIn(Normalized)
	posUnit := parent.positionIn(cfg.units)

	// Per-axis factors converting lengths in cfg.units into normalized
	// units, and the figure extent expressed in cfg.units.
	sx := posFrac.W / posUnit.W
	sy := posFrac.H / posUnit.H
	totalW := posUnit.W / posFrac.W
	totalH := posUnit.H / posFrac.H

	size := cfg.size
	if !cfg.sizeSet {
		switch side {
		case West:
			size = posUnit.X - cfg.gap
		case South:
			size = posUnit.Y - cfg.gap
		case East:
			size = totalW - (posUnit.X + posUnit.W) - cfg.gap
		case North:
			size = totalH - (posUnit.Y + posUnit.H) - cfg.gap
		}
	}

	var rect Rect
	switch side {
	case North:
		rect = Rect{posFrac.X, posFrac.Y + posFrac.H + cfg.gap*sy, posFrac.W, size * sy}
	case South:
		rect = Rect{posFrac.X, posFrac.Y - (cfg.gap+size)*sy, posFrac.W, size * sy}
	case East:
		rect = Rect{posFrac.X + posFrac.W + cfg.gap*sx, posFrac.Y, size * sx, posFrac.H}
	case West:
		rect = Rect{posFrac.X - (cfg.gap+size)*sx, posFrac.Y, size * sx, posFrac.H}
	}

	child := parent.fig.AddView(rect)
	child.side = side
	child.units = cfg.units
	child.Decorated = false
	child.rot = cfg.orientation.resolve(side).rotation()

	// The axis perpendicular to the shared edge is independent of the
	// parent and spans [0, size] in the requested unit.
	offAx, _ := findAxis(child.rot, side.across())
	child.axes[offAx].Limits = Interval{0, size}

	for _, fn := range cfg.passthrough {
		fn(child)
	}

	if cfg.link {
		child.link = newLink(parent, child, side.shared())
	}

	return child, nil
}
