package sideaxes

import (
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/vg"
)

// TestSideViewSouthDefaults pins the placement of a south side view with
// gap 0 and default size: it fills the space below the parent, touching
// both the parent and the figure edge.
func TestSideViewSouthDefaults(t *testing.T) {
	f := NewFigure(20*vg.Centimeter, 15*vg.Centimeter)
	parent := f.AddView(Rect{0.1, 0.1, 0.8, 0.8})
	parent.SetLimits(AxisX, Interval{0, 10})

	child, err := NewSideView(parent, South)
	if err != nil {
		t.Fatalf("NewSideView: %v", err)
	}

	if diff := cmp.Diff(Rect{0.1, 0, 0.8, 0.1}, child.positionIn(Normalized), approx); diff != "" {
		t.Errorf("child rectangle mismatch (-want +got):\n%s", diff)
	}
	if child.Side() != South {
		t.Errorf("child side = %s, want south", child.Side())
	}
	if child.Decorated {
		t.Errorf("side view created decorated")
	}
	if !child.Clip {
		t.Errorf("side view created without clipping")
	}

	// The shared horizontal axis mirrors the parent.
	if got := child.Limits(AxisX); !got.Equal(Interval{0, 10}) {
		t.Errorf("child x limits = %v, want [0:10]", got)
	}
	// The independent axis spans [0, size], size in centimeters here.
	if got := child.Limits(AxisY); !got.Equal(Interval{0, 1.5}) {
		t.Errorf("child y limits = %v, want [0:1.5]", got)
	}

	parent.SetScale(AxisX, Logarithmic)
	if child.Scale(AxisX) != Logarithmic {
		t.Errorf("log scale did not propagate to the child")
	}
}

var sideRectTests = []struct {
	side Side
	want Rect
}{
	// Parent {0.3, 0.3, 0.4, 0.35}, gap 0.02, size 0.1, normalized.
	{North, Rect{0.3, 0.67, 0.4, 0.1}},
	{South, Rect{0.3, 0.18, 0.4, 0.1}},
	{East, Rect{0.72, 0.3, 0.1, 0.35}},
	{West, Rect{0.18, 0.3, 0.1, 0.35}},
}

func TestSideViewAdjacency(t *testing.T) {
	for i, tc := range sideRectTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			f := NewFigure(20*vg.Centimeter, 15*vg.Centimeter)
			parent := f.AddView(Rect{0.3, 0.3, 0.4, 0.35})

			child, err := NewSideView(parent, tc.side,
				Units(Normalized), Gap(0.02), Size(0.1))
			if err != nil {
				t.Fatalf("NewSideView: %v", err)
			}
			got := child.positionIn(Normalized)
			if diff := cmp.Diff(tc.want, got, approx); diff != "" {
				t.Errorf("side %s rectangle mismatch (-want +got):\n%s",
					tc.side, diff)
			}

			// The shared edge dimension always equals the parent's.
			if tc.side.shared() == Horizontal {
				if math.Abs(got.W-0.4) > 1e-12 {
					t.Errorf("shared width = %g, want 0.4", got.W)
				}
			} else if math.Abs(got.H-0.35) > 1e-12 {
				t.Errorf("shared height = %g, want 0.35", got.H)
			}
		})
	}
}

// TestSideViewUnitInvariance creates the same south side view with the
// gap and size expressed in every supported unit and expects identical
// normalized rectangles.
func TestSideViewUnitInvariance(t *testing.T) {
	const gapCm, sizeCm = 0.5, 2.0
	f := NewFigure(20*vg.Centimeter, 15*vg.Centimeter)

	conv := func(cm float64, u Unit) float64 {
		if u == Normalized {
			return cm * float64(vg.Centimeter/f.Height) // vertical length
		}
		return cm * float64(vg.Centimeter/u.length())
	}

	var want Rect
	for i, u := range []Unit{Centimeters, Normalized, Millimeters, Inches, Points} {
		t.Run(u.String(), func(t *testing.T) {
			parent := f.AddView(Rect{0.1, 0.3, 0.8, 0.6})
			child, err := NewSideView(parent, South,
				Units(u), Gap(conv(gapCm, u)), Size(conv(sizeCm, u)))
			if err != nil {
				t.Fatalf("NewSideView: %v", err)
			}
			got := child.positionIn(Normalized)
			if i == 0 {
				want = got
				return
			}
			if diff := cmp.Diff(want, got, approx); diff != "" {
				t.Errorf("rectangle in %s differs from centimeters (-want +got):\n%s",
					u, diff)
			}
		})
	}
}

// TestSideViewDefaultFill checks that a default sized east or west view
// together with the parent and the gap exactly fills the figure extent.
func TestSideViewDefaultFill(t *testing.T) {
	f := NewFigure(20*vg.Centimeter, 15*vg.Centimeter)
	parent := f.AddView(Rect{0.1, 0.2, 0.5, 0.6})

	east, err := NewSideView(parent, East, Gap(1)) // 1 cm
	if err != nil {
		t.Fatalf("NewSideView east: %v", err)
	}
	er := east.positionIn(Normalized)
	if math.Abs(er.X+er.W-1) > 1e-12 {
		t.Errorf("east view ends at %g, want 1", er.X+er.W)
	}

	west, err := NewSideView(parent, West, Gap(1))
	if err != nil {
		t.Fatalf("NewSideView west: %v", err)
	}
	wr := west.positionIn(Normalized)
	if math.Abs(wr.X) > 1e-12 {
		t.Errorf("west view starts at %g, want 0", wr.X)
	}
}

func TestSideViewOrientOffAxis(t *testing.T) {
	f := NewFigure(20*vg.Centimeter, 15*vg.Centimeter)
	parent := f.AddView(Rect{0.2, 0.2, 0.6, 0.6})
	parent.SetLimits(AxisX, Interval{2, 8})

	// An east oriented view on the south side renders its y axis to the
	// right, so x becomes the independent axis and y the shared one.
	child, err := NewSideView(parent, South, Size(2), Orient(OrientEast))
	if err != nil {
		t.Fatalf("NewSideView: %v", err)
	}
	if got := child.Limits(AxisX); !got.Equal(Interval{0, 2}) {
		t.Errorf("independent x limits = %v, want [0:2]", got)
	}
	if got := child.Limits(AxisY); !got.Equal(Interval{2, 8}) {
		t.Errorf("shared y limits = %v, want [2:8]", got)
	}
}

func TestSideViewPassThrough(t *testing.T) {
	f := NewFigure(20*vg.Centimeter, 15*vg.Centimeter)
	parent := f.AddView(Rect{0.2, 0.2, 0.6, 0.6})

	child, err := NewSideView(parent, North,
		WithView(func(v *View) { v.Decorated = true }))
	if err != nil {
		t.Fatalf("NewSideView: %v", err)
	}
	if !child.Decorated {
		t.Errorf("pass-through option not applied")
	}
}

func TestSideViewNegativeSize(t *testing.T) {
	f := NewFigure(20*vg.Centimeter, 15*vg.Centimeter)
	parent := f.AddView(Rect{0.2, 0.2, 0.6, 0.6})

	child, err := NewSideView(parent, South, Units(Normalized), Size(-0.1))
	if err != nil {
		t.Fatalf("negative size rejected: %v", err)
	}
	if got := child.positionIn(Normalized).H; got != -0.1 {
		t.Errorf("degenerate height = %g, want -0.1", got)
	}
}

func TestSideViewUnlinked(t *testing.T) {
	f := NewFigure(20*vg.Centimeter, 15*vg.Centimeter)
	parent := f.AddView(Rect{0.2, 0.2, 0.6, 0.6})
	parent.SetLimits(AxisX, Interval{5, 9})

	child, err := NewSideView(parent, South, Linked(false))
	if err != nil {
		t.Fatalf("NewSideView: %v", err)
	}
	if child.Link() != nil {
		t.Fatalf("unlinked view has a link")
	}

	parent.SetLimits(AxisX, Interval{-1, 1})
	parent.SetScale(AxisX, Logarithmic)
	if got := child.Limits(AxisX); !got.Equal(Interval{0, 1}) {
		t.Errorf("unlinked child limits = %v, want default [0:1]", got)
	}
	if child.Scale(AxisX) != Linear {
		t.Errorf("unlinked child scale changed")
	}
}

var nsv = func(parent *View, side Side, opts ...Option) error {
	_, err := NewSideView(parent, side, opts...)
	return err
}

func TestSideViewConfigErrors(t *testing.T) {
	f := NewFigure(20*vg.Centimeter, 15*vg.Centimeter)
	parent := f.AddView(Rect{0.2, 0.2, 0.6, 0.6})

	cases := []error{
		nsv(parent, Side(9)),
		nsv(parent, NoSide),
		nsv(parent, South, Units(Unit(42))),
		nsv(parent, South, Orient(Orientation(7))),
		nsv(parent, South, Gap(math.NaN())),
		nsv(parent, South, Gap(math.Inf(1))),
		nsv(parent, South, Size(math.NaN())),
		nsv(parent, South, Size(math.Inf(-1))),
		nsv(nil, South),
	}
	for i, err := range cases {
		if err == nil {
			t.Errorf("case %d: no error", i)
		}
	}

	// No partial side effects: the parent is still the only view.
	if n := len(f.Views()); n != 1 {
		t.Errorf("figure has %d views after rejected requests, want 1", n)
	}

	dead := f.AddView(Rect{0, 0, 0.1, 0.1})
	f.Delete(dead)
	if err := nsv(dead, South); err == nil {
		t.Errorf("deleted parent accepted")
	}
}
