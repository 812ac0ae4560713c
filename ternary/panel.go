// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ternary

import (
	"cogentcore.org/core/plot"
	"cogentcore.org/core/styles/units"
)

// AxisOptions configures how a plot is formatted as a ternary panel.
// Every feature is independently toggleable; a disabled feature is simply
// not drawn. Use [NewAxisOptions] for defaults.
type AxisOptions struct {
	// Boundary draws the triangle outline.
	Boundary bool

	// Line is the line style for the boundary.
	Line plot.LineStyle

	// Grid draws gridlines parallel to each side at GridStep subdivisions.
	Grid bool

	// GridLine is the line style for gridlines.
	GridLine plot.LineStyle

	// GridStep is the subdivision interval for gridlines and ticks,
	// as a fraction of a side.
	GridStep float32

	// Title is an optional panel title.
	Title string

	// Labels are the axis labels in left, top, right order.
	// Empty strings are not drawn.
	Labels [3]string

	// LabelsOnSides places the labels at the midpoints of the triangle
	// sides instead of at the corners.
	LabelsOnSides bool

	// Text is the text style for axis labels.
	Text plot.TextStyle

	// Ticks draws tick marks at GridStep subdivisions on all three sides.
	Ticks bool

	// TicksInward points the tick marks into the triangle.
	TicksInward bool

	// TickLength is the length of tick marks.
	TickLength units.Value

	// Frame keeps the underlying plot's rectangular axes and border
	// decorations, which are suppressed by default.
	Frame bool

	// Margin is the data-space padding around the triangle, leaving room
	// for labels and ticks.
	Margin float32
}

// NewAxisOptions returns axis options with default settings:
// boundary and gridlines on, ticks and frame off.
func NewAxisOptions() *AxisOptions {
	ao := &AxisOptions{}
	ao.Defaults()
	return ao
}

func (ao *AxisOptions) Defaults() {
	ao.Boundary = true
	ao.Line.Defaults()
	ao.Grid = true
	ao.GridLine.Defaults()
	ao.GridLine.Width.Pt(0.5)
	ao.GridStep = 0.2
	ao.Text.Defaults()
	ao.TickLength.Pt(5)
	ao.Margin = 0.15
}

// Panel is one plot formatted as a ternary diagram.
type Panel struct {
	// Plot is the underlying plot.
	Plot *plot.Plot

	// Options are the axis options the panel was formatted with.
	Options *AxisOptions
}

// Format configures the given plot as a ternary panel according to the
// options, installing the boundary, grid, tick, and label plotters.
// A nil opts uses [NewAxisOptions]. Scatter plotters and side scales can
// then be added through the returned panel's Plot.
func Format(plt *plot.Plot, opts *AxisOptions) *Panel {
	if opts == nil {
		opts = NewAxisOptions()
	}
	plt.X.Min = -opts.Margin
	plt.X.Max = 1 + opts.Margin
	plt.Y.Min = -opts.Margin
	plt.Y.Max = Height + opts.Margin
	if !opts.Frame {
		hideAxis(&plt.X)
		hideAxis(&plt.Y)
	}
	if opts.Title != "" {
		plt.Title.Text = opts.Title
	}
	if opts.Grid {
		plt.Add(&grid{line: opts.GridLine, step: opts.GridStep})
	}
	if opts.Boundary {
		plt.Add(&boundary{line: opts.Line})
	}
	if opts.Ticks {
		plt.Add(&ticks{
			line:   opts.Line,
			step:   opts.GridStep,
			length: opts.TickLength,
			inward: opts.TicksInward,
		})
	}
	if opts.Labels != ([3]string{}) {
		plt.Add(&axisLabels{
			labels: opts.Labels,
			sides:  opts.LabelsOnSides,
			style:  opts.Text,
		})
	}
	return &Panel{Plot: plt, Options: opts}
}

// hideAxis suppresses all drawing for the given axis: line, ticks,
// and tick labels.
func hideAxis(ax *plot.Axis) {
	ax.Line.Width.Dp(0)
	ax.TickLine.Width.Dp(0)
	ax.TickLength.Dp(0)
	ax.Ticker = noTicks{}
	ax.Label.Text = ""
}

// noTicks is a [plot.Ticker] producing no ticks.
type noTicks struct{}

func (noTicks) Ticks(min, max float32) []plot.Tick { return nil }
