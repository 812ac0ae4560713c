// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/plot"
)

// axisLabels draws the three component labels, either at the triangle
// corners or along the triangle sides. In side mode the left and right
// labels run along their sides; the top label has no adjacent side and
// stays at the apex.
type axisLabels struct {
	labels [3]string // left, top, right
	sides  bool
	style  plot.TextStyle
	pxys   plot.XYs
}

// labelOffset is the gap between the triangle and a label, in dots.
const labelOffset = 12

func (al *axisLabels) data() plot.XYs {
	cs := corners()
	if !al.sides {
		return plot.XYs{cs[0], cs[2], cs[1]}
	}
	lm := cs[0].Add(cs[2]).MulScalar(0.5)
	rm := cs[1].Add(cs[2]).MulScalar(0.5)
	return plot.XYs{lm, cs[2], rm}
}

func (al *axisLabels) XYData() (data plot.XYer, pixels plot.XYer) {
	return al.data(), al.pxys
}

// Plot draws the labels, implementing the plot.Plotter interface.
func (al *axisLabels) Plot(plt *plot.Plot) {
	cs := corners()
	cpx := plot.PlotXYs(plt, plot.XYs{cs[0], cs[1], cs[2]})
	ctr := cpx[0].Add(cpx[1]).Add(cpx[2]).DivScalar(3)
	ps := plot.PlotXYs(plt, al.data())
	al.pxys = ps
	rots := [3]float32{0, 0, 0}
	if al.sides {
		rots = [3]float32{-60, 0, 60}
	}
	for i, lbl := range al.labels {
		if lbl == "" {
			continue
		}
		var ltxt plot.Text
		ltxt.Style = al.style
		ltxt.Style.Rotation = rots[i]
		ltxt.Text = lbl
		ltxt.Config(plt)
		sz := ltxt.PaintText.BBox.Size()
		base := ps[i]
		dir := base.Sub(ctr)
		dir = dir.DivScalar(dir.Length())
		pos := base.Add(dir.MulScalar(labelOffset + 0.5*sz.Y))
		ltxt.Draw(plt, math32.Vec2(pos.X-0.5*sz.X, pos.Y-0.5*sz.Y))
	}
}
