// +build ignore

package main

import (
	"fmt"
	"os"

	sideaxes "github.com/lileipku00/sideaxes-m"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	fig := sideaxes.NewFigure(20*vg.Centimeter, 15*vg.Centimeter)

	parent := fig.AddView(sideaxes.Rect{X: 0.2, Y: 0.2, W: 0.6, H: 0.6})
	parent.SetLimits(sideaxes.AxisX, sideaxes.Interval{Min: 0, Max: 100})
	parent.SetLimits(sideaxes.AxisY, sideaxes.Interval{Min: 1, Max: 1000})
	parent.SetScale(sideaxes.AxisY, sideaxes.Logarithmic)

	south, err := sideaxes.NewSideView(parent, sideaxes.South,
		sideaxes.Gap(0.2), sideaxes.Size(1.5))
	if err != nil {
		panic(err)
	}
	west, err := sideaxes.NewSideView(parent, sideaxes.West,
		sideaxes.Gap(0.2))
	if err != nil {
		panic(err)
	}

	// Zoom the parent; both strips follow automatically.
	parent.SetLimits(sideaxes.AxisX, sideaxes.Interval{Min: 20, Max: 80})

	img := vgimg.New(20*vg.Centimeter, 15*vg.Centimeter)
	dc := draw.New(img)

	style := sideaxes.DefaultStripStyle(12)
	sideaxes.TickStrip{View: south, Style: style}.Draw(dc)
	sideaxes.TickStrip{View: west, Style: style}.Draw(dc)

	w, err := os.Create("sideaxes.png")
	if err != nil {
		panic(err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	fmt.Println("wrote sideaxes.png")
}
