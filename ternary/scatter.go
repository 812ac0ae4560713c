// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/plot/plots"
	"cogentcore.org/core/styles/units"
)

// Scatter draws a shape at the projected position of each composition,
// implementing the plot.Plotter interface.
type Scatter struct {
	// XYs are the projected positions in data coordinates.
	plot.XYs

	// PXYs is the actual plotting coordinates for each composition.
	PXYs plot.XYs

	// size of shape to draw for each point
	PointSize units.Value

	// shape to draw for each point
	PointShape plots.Shapes

	// LineStyle is the style of the drawn shapes; its Color fills them.
	LineStyle plot.LineStyle
}

// NewScatter returns a Scatter over the given compositions
// using the default point style.
func NewScatter(d ABCer) (*Scatter, error) {
	if d.Len() == 0 {
		return nil, plot.ErrNoData
	}
	sc := &Scatter{XYs: ProjectXYs(d)}
	sc.LineStyle.Defaults()
	sc.PointSize.Pt(4)
	return sc, nil
}

func (pts *Scatter) XYData() (data plot.XYer, pixels plot.XYer) {
	data = pts.XYs
	pixels = pts.PXYs
	return
}

// Plot draws the scatter points, implementing the plot.Plotter interface.
func (pts *Scatter) Plot(plt *plot.Plot) {
	pc := plt.Paint
	if !pts.LineStyle.SetStroke(plt) {
		return
	}
	pts.PointSize.ToDots(&pc.UnitContext)
	pc.FillStyle.Color = pts.LineStyle.Color
	ps := plot.PlotXYs(plt, pts.XYs)
	pts.PXYs = ps
	for i := range ps {
		pt := ps[i]
		plots.DrawShape(pc, math32.Vec2(pt.X, pt.Y), pts.PointSize.Dots, pts.PointShape)
	}
	pc.FillStyle.Color = nil
}

// DataRange returns the minimum and maximum x and y values,
// implementing the plot.DataRanger interface.
func (pts *Scatter) DataRange() (xmin, xmax, ymin, ymax float32) {
	return plot.XYRange(pts)
}

// Thumbnail draws the thumbnail for the Scatter,
// implementing the plot.Thumbnailer interface.
func (pts *Scatter) Thumbnail(plt *plot.Plot) {
	pc := plt.Paint
	if !pts.LineStyle.SetStroke(plt) {
		return
	}
	pts.PointSize.ToDots(&pc.UnitContext)
	pc.FillStyle.Color = pts.LineStyle.Color
	ptb := pc.Bounds
	midX := 0.5 * float32(ptb.Min.X+ptb.Max.X)
	midY := 0.5 * float32(ptb.Min.Y+ptb.Max.Y)
	plots.DrawShape(pc, math32.Vec2(midX, midY), pts.PointSize.Dots, pts.PointShape)
	pc.FillStyle.Color = nil
}
