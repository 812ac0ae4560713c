// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/styles/units"
)

// boundary draws the triangle outline.
type boundary struct {
	line plot.LineStyle
	pxys plot.XYs
}

func (bd *boundary) data() plot.XYs {
	cs := corners()
	return plot.XYs{cs[0], cs[1], cs[2]}
}

func (bd *boundary) XYData() (data plot.XYer, pixels plot.XYer) {
	return bd.data(), bd.pxys
}

// Plot draws the boundary, implementing the plot.Plotter interface.
func (bd *boundary) Plot(plt *plot.Plot) {
	pc := plt.Paint
	if !bd.line.SetStroke(plt) {
		return
	}
	ps := plot.PlotXYs(plt, bd.data())
	bd.pxys = ps
	pc.MoveTo(ps[0].X, ps[0].Y)
	pc.LineTo(ps[1].X, ps[1].Y)
	pc.LineTo(ps[2].X, ps[2].Y)
	pc.ClosePath()
	pc.Stroke()
}

// grid draws gridlines parallel to each side at the given subdivision step.
type grid struct {
	line plot.LineStyle
	step float32
	pxys plot.XYs
}

// segments returns the gridline endpoints in data coordinates,
// as consecutive pairs.
func (gr *grid) segments() plot.XYs {
	var segs plot.XYs
	add := func(a, b math32.Vector2) {
		segs = append(segs, a, b)
	}
	for f := gr.step; f < 1-1e-4; f += gr.step {
		// lines of constant top, left, and right component
		add(Project(1-f, f, 0), Project(0, f, 1-f))
		add(Project(f, 1-f, 0), Project(f, 0, 1-f))
		add(Project(1-f, 0, f), Project(0, 1-f, f))
	}
	return segs
}

func (gr *grid) XYData() (data plot.XYer, pixels plot.XYer) {
	return gr.segments(), gr.pxys
}

// Plot draws the gridlines, implementing the plot.Plotter interface.
func (gr *grid) Plot(plt *plot.Plot) {
	pc := plt.Paint
	if !gr.line.SetStroke(plt) {
		return
	}
	ps := plot.PlotXYs(plt, gr.segments())
	gr.pxys = ps
	for i := 0; i < len(ps)-1; i += 2 {
		pc.MoveTo(ps[i].X, ps[i].Y)
		pc.LineTo(ps[i+1].X, ps[i+1].Y)
	}
	pc.Stroke()
}

// ticks draws tick marks at subdivision points on all three sides.
type ticks struct {
	line   plot.LineStyle
	step   float32
	length units.Value
	inward bool
	pxys   plot.XYs
}

// sidePoints returns the tick base points in data coordinates, per side.
func (tk *ticks) sidePoints() [3]plot.XYs {
	var pts [3]plot.XYs
	for f := tk.step; f < 1-1e-4; f += tk.step {
		bases := [3]math32.Vector2{
			Project(1-f, 0, f), // bottom side
			Project(1-f, f, 0), // left side
			Project(0, 1-f, f), // right side
		}
		for s, b := range bases {
			pts[s] = append(pts[s], b)
		}
	}
	return pts
}

func (tk *ticks) XYData() (data plot.XYer, pixels plot.XYer) {
	sp := tk.sidePoints()
	var all plot.XYs
	for _, ps := range sp {
		all = append(all, ps...)
	}
	return all, tk.pxys
}

// Plot draws the tick marks, implementing the plot.Plotter interface.
func (tk *ticks) Plot(plt *plot.Plot) {
	pc := plt.Paint
	if !tk.line.SetStroke(plt) {
		return
	}
	tk.length.ToDots(&pc.UnitContext)
	tln := tk.length.Dots
	cs := corners()
	cpx := plot.PlotXYs(plt, plot.XYs{cs[0], cs[1], cs[2]})
	ctr := cpx[0].Add(cpx[1]).Add(cpx[2]).DivScalar(3)
	// side corner pairs: bottom, left, right
	sideEnds := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
	sp := tk.sidePoints()
	tk.pxys = tk.pxys[:0]
	for s, side := range sp {
		dir := sideNormal(cpx[sideEnds[s][0]], cpx[sideEnds[s][1]], ctr)
		if tk.inward {
			dir = dir.Negate()
		}
		ps := plot.PlotXYs(plt, side)
		tk.pxys = append(tk.pxys, ps...)
		for _, p := range ps {
			end := p.Add(dir.MulScalar(tln))
			pc.MoveTo(p.X, p.Y)
			pc.LineTo(end.X, end.Y)
		}
	}
	pc.Stroke()
}

// sideNormal returns the unit normal of side ab pointing away from the
// triangle center ctr, all in pixel coordinates. Tick and label directions
// are computed in pixel space so that the inverted pixel y axis needs no
// special casing.
func sideNormal(a, b, ctr math32.Vector2) math32.Vector2 {
	e := b.Sub(a)
	n := math32.Vec2(-e.Y, e.X)
	l := n.Length()
	if l == 0 {
		return math32.Vec2(0, 1)
	}
	n = n.DivScalar(l)
	mid := a.Add(b).MulScalar(0.5)
	if n.Dot(mid.Sub(ctr)) < 0 {
		n = n.Negate()
	}
	return n
}
