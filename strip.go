package sideaxes

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A TickStrip draws tick marks and labels for the synchronized axis of a
// side view. It is a prototypical consumer of a side view: it only reads
// the view's state and draws into the region computed for it, oblivious
// to the linking machinery.
type TickStrip struct {
	View *View

	// Ticker generates the ticks. If nil a default matching the axis
	// scale is used.
	Ticker plot.Ticker

	Style StripStyle
}

// Draw renders the strip into the part of c covered by the view. Ticks
// start at the edge shared with the parent and extend away from it.
func (t TickStrip) Draw(c draw.Canvas) {
	v := t.View
	side := v.Side()
	if !side.valid() {
		side = South
	}

	ax, _ := findAxis(v.Rotation(), side.shared())
	a := v.axes[ax]

	ticker := t.Ticker
	if ticker == nil {
		if a.Scale == Logarithmic {
			ticker = plot.LogTicks{}
		} else {
			ticker = plot.DefaultTicks{}
		}
	}

	canvas := v.Canvas(c)

	if t.Style.Line.Color != nil {
		x0, y0, x1, y1 := edge(canvas, side)
		canvas.StrokeLine2(t.Style.Line, x0, y0, x1, y1)
	}

	for _, tick := range ticker.Ticks(a.Limits.Min, a.Limits.Max) {
		sty := t.Style.Tick.Major
		length := t.Style.Tick.Length
		if tick.IsMinor() {
			sty = t.Style.Tick.Minor
			length /= 2
		}

		var data [numAxes]float64
		data[ax] = tick.Value
		p := v.Map(canvas, data[0], data[1], data[2])
		if v.Clip && outside(p, canvas, side) {
			continue
		}

		end := p
		label := t.Style.Tick.Label
		switch side {
		case South:
			end.Y = canvas.Max.Y - length
			p.Y = canvas.Max.Y
			label.XAlign, label.YAlign = draw.XCenter, draw.YTop
		case North:
			end.Y = canvas.Min.Y + length
			p.Y = canvas.Min.Y
			label.XAlign, label.YAlign = draw.XCenter, draw.YBottom
		case East:
			end.X = canvas.Min.X + length
			p.X = canvas.Min.X
			label.XAlign, label.YAlign = draw.XLeft, draw.YCenter
		case West:
			end.X = canvas.Max.X - length
			p.X = canvas.Max.X
			label.XAlign, label.YAlign = draw.XRight, draw.YCenter
		}
		canvas.StrokeLine2(sty, p.X, p.Y, end.X, end.Y)

		if tick.IsMinor() {
			continue
		}
		canvas.FillText(label, end, tick.Label)
	}
}

// edge returns the endpoints of the strip edge shared with the parent.
func edge(c draw.Canvas, side Side) (x0, y0, x1, y1 vg.Length) {
	switch side {
	case South:
		return c.Min.X, c.Max.Y, c.Max.X, c.Max.Y
	case North:
		return c.Min.X, c.Min.Y, c.Max.X, c.Min.Y
	case East:
		return c.Min.X, c.Min.Y, c.Min.X, c.Max.Y
	case West:
		return c.Max.X, c.Min.Y, c.Max.X, c.Max.Y
	default:
		panic(side)
	}
}

// outside reports whether p falls outside the strip along the shared
// edge.
func outside(p vg.Point, c draw.Canvas, side Side) bool {
	if side.shared() == Horizontal {
		return p.X < c.Min.X || p.X > c.Max.X
	}
	return p.Y < c.Min.Y || p.Y > c.Max.Y
}

// StripStyle describes how a TickStrip is drawn.
type StripStyle struct {
	// Line is the base line along the shared edge; a nil color omits it.
	Line draw.LineStyle

	Tick struct {
		Label  draw.TextStyle
		Major  draw.LineStyle
		Minor  draw.LineStyle
		Length vg.Length
	}
}

// DefaultStripStyle returns a StripStyle matching the look of a plain
// plot axis. The baseFontSize is the font size tick labels are derived
// from.
func DefaultStripStyle(baseFontSize vg.Length) StripStyle {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	ss := StripStyle{}
	ss.Line.Color = color.Gray16{0x1111}
	ss.Line.Width = vg.Length(1)

	ss.Tick.Label.Color = color.Black
	ss.Tick.Label.Font = tickFont
	ss.Tick.Major.Color = color.Gray16{0x1111}
	ss.Tick.Major.Width = vg.Length(1)
	ss.Tick.Minor.Color = color.Gray16{0x1111}
	ss.Tick.Minor.Width = vg.Length(0.5)
	ss.Tick.Length = vg.Length(5)

	return ss
}
