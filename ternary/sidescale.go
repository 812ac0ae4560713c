// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/styles/units"
)

// ScaleTick is one labeled position on a [SideScale], with the position
// given on a 0–1 normalized scale along the triangle height.
type ScaleTick struct {
	Label string
	Pos   float32
}

// SideScale turns the left edge of a ternary panel into a conventional
// vertical scale: a single spine placed left of the triangle, spanning the
// triangle's geometric height (so that a normalized position p lands at
// p·cos 30° in data space), with ticks at the given positions.
// It implements the plot.Plotter interface.
type SideScale struct {
	// Ticks are the labeled positions, in ascending order.
	Ticks []ScaleTick

	// YLabel is an optional axis label, drawn rotated alongside the spine.
	YLabel string

	// Bounds clips the spine to a sub-range of the 0–1 normalized scale.
	// Ticks outside the bounds are still drawn on the spine's line.
	Bounds [2]float32

	// Offset is the horizontal gap between the triangle and the spine.
	Offset units.Value

	// Inward points the tick marks toward the triangle.
	Inward bool

	// Centered draws each label halfway between its tick and the next one
	// instead of on the tick itself; the last label sits halfway between
	// the last tick and the top of the spine.
	Centered bool

	// Line is the line style of the spine and ticks.
	Line plot.LineStyle

	// Text is the text style of the tick labels.
	Text plot.TextStyle

	// TickLength is the length of the tick marks.
	TickLength units.Value

	pxys plot.XYs
}

// NewSideScale returns a SideScale with default styling
// over the given ticks.
func NewSideScale(ticks ...ScaleTick) *SideScale {
	ss := &SideScale{Ticks: ticks}
	ss.Bounds = [2]float32{0, 1}
	ss.Line.Defaults()
	ss.Text.Defaults()
	ss.Offset.Pt(20)
	ss.TickLength.Pt(5)
	return ss
}

// AddSideScale adds the side scale to the panel's plot.
func (pn *Panel) AddSideScale(ss *SideScale) {
	pn.Plot.Add(ss)
}

// bounds returns the normalized spine extent, treating a zero-valued
// Bounds as the full 0–1 range.
func (ss *SideScale) bounds() (lo, hi float32) {
	lo, hi = ss.Bounds[0], ss.Bounds[1]
	if lo == hi {
		lo, hi = 0, 1
	}
	return lo, hi
}

// data returns the spine endpoints and tick positions in data coordinates,
// with the spine at x = 0; the pixel offset is applied at draw time.
func (ss *SideScale) data() plot.XYs {
	lo, hi := ss.bounds()
	xys := plot.XYs{math32.Vec2(0, lo*Height), math32.Vec2(0, hi*Height)}
	for _, tk := range ss.Ticks {
		xys = append(xys, math32.Vec2(0, tk.Pos*Height))
	}
	return xys
}

// labelYs returns the data-space y of each tick label. In centered mode a
// label sits halfway between its tick and the next, with the last label
// halfway between the last tick and the top of the spine.
func (ss *SideScale) labelYs() []float32 {
	ys := make([]float32, len(ss.Ticks))
	_, hi := ss.bounds()
	for i, tk := range ss.Ticks {
		if !ss.Centered {
			ys[i] = tk.Pos * Height
			continue
		}
		next := hi
		if i < len(ss.Ticks)-1 {
			next = ss.Ticks[i+1].Pos
		}
		ys[i] = 0.5 * (tk.Pos + next) * Height
	}
	return ys
}

// yLabelY returns the data-space y of the YLabel anchor, three quarters of
// the way up the spine.
func (ss *SideScale) yLabelY() float32 {
	lo, hi := ss.bounds()
	return (lo + 0.75*(hi-lo)) * Height
}

func (ss *SideScale) XYData() (data plot.XYer, pixels plot.XYer) {
	return ss.data(), ss.pxys
}

// Plot draws the scale, implementing the plot.Plotter interface.
func (ss *SideScale) Plot(plt *plot.Plot) {
	pc := plt.Paint
	if !ss.Line.SetStroke(plt) {
		return
	}
	ss.Offset.ToDots(&pc.UnitContext)
	ss.TickLength.ToDots(&pc.UnitContext)
	tln := ss.TickLength.Dots

	ps := plot.PlotXYs(plt, ss.data())
	for i := range ps {
		ps[i].X -= ss.Offset.Dots
	}
	ss.pxys = ps

	// spine
	pc.MoveTo(ps[0].X, ps[0].Y)
	pc.LineTo(ps[1].X, ps[1].Y)

	// ticks point left by convention, toward the triangle when Inward
	tdir := float32(-1)
	if ss.Inward {
		tdir = 1
	}
	for _, p := range ps[2:] {
		pc.MoveTo(p.X, p.Y)
		pc.LineTo(p.X+tdir*tln, p.Y)
	}
	pc.Stroke()

	lys := ss.labelYs()
	lxys := make(plot.XYs, len(lys))
	for i, y := range lys {
		lxys[i] = math32.Vec2(0, y)
	}
	lps := plot.PlotXYs(plt, lxys)
	maxw := float32(0)
	for i, tk := range ss.Ticks {
		if tk.Label == "" {
			continue
		}
		var ltxt plot.Text
		ltxt.Style = ss.Text
		ltxt.Text = tk.Label
		ltxt.Config(plt)
		sz := ltxt.PaintText.BBox.Size()
		if sz.X > maxw {
			maxw = sz.X
		}
		x := ps[2+i].X - tln - 4 - sz.X
		ltxt.Draw(plt, math32.Vec2(x, lps[i].Y-0.5*sz.Y))
	}

	if ss.YLabel != "" {
		yp := plot.PlotXYs(plt, plot.XYs{math32.Vec2(0, ss.yLabelY())})
		var ltxt plot.Text
		ltxt.Style = ss.Text
		ltxt.Style.Rotation = -90
		ltxt.Text = ss.YLabel
		ltxt.Config(plt)
		sz := ltxt.PaintText.BBox.Size()
		x := ps[0].X - tln - maxw - 12 - sz.X
		ltxt.Draw(plt, math32.Vec2(x, yp[0].Y-0.5*sz.Y))
	}
}
