// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure assembles multi-panel ternary figures: a rectangular grid
// of [ternary.Panel] plots, optionally with one row replaced by a single
// panel spanning the figure width.
package figure

import (
	"fmt"
	"image"
	"image/draw"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/plot"

	"github.com/kaarelmand/ternplot/ternary"
)

// MidAxis selects a grid row to render as one wide centered panel
// instead of separate columns.
type MidAxis int32

const (
	// NoMid keeps the full rows × cols grid.
	NoMid MidAxis = iota

	// MidTop renders the top row as a single centered panel.
	MidTop

	// MidBottom renders the bottom row as a single centered panel.
	MidBottom
)

// Options configures [New]. Use [NewOptions] for defaults.
type Options struct {
	// Labels are the axis labels for the panels; the zero value
	// draws none.
	Labels Labels

	// Mid optionally renders the top or bottom row as one centered panel.
	Mid MidAxis

	// PanelSize is the pixel size of one grid cell.
	PanelSize image.Point

	// Titles are optional per-panel titles, in panel order; may be
	// shorter than the panel count.
	Titles []string

	// Axis holds the panel formatting options shared by all panels;
	// labels and titles from this struct override its Labels and Title.
	Axis ternary.AxisOptions
}

// NewOptions returns figure options with default settings.
func NewOptions() *Options {
	op := &Options{}
	op.Defaults()
	return op
}

func (op *Options) Defaults() {
	op.PanelSize = image.Pt(480, 440)
	op.Axis.Defaults()
}

// Figure is a grid of formatted ternary panels sharing one canvas.
type Figure struct {
	// Rows and Cols are the source grid dimensions.
	Rows, Cols int

	// Mid is the centered-row setting the figure was built with.
	Mid MidAxis

	// Panels are the formatted panels in row-major grid order; a centered
	// row contributes its single panel in that row's slot.
	Panels []*ternary.Panel

	// Options are the options the figure was built with.
	Options *Options

	regions []image.Rectangle

	// midLegend is the panel whose legend is drawn centered over the seam
	// to its paired neighbor, or -1; midPair holds the (left, right) pair.
	midLegend int
	midPair   [2]int
}

// New builds a figure of rows × cols ternary panels, or (rows−1) × cols
// plus one panel spanning the designated row when opts.Mid is MidTop or
// MidBottom. Each panel is formatted with the shared axis options and its
// resolved labels. A nil opts uses [NewOptions].
func New(rows, cols int, opts *Options) (*Figure, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("figure.New: invalid grid %d × %d", rows, cols)
	}
	if opts == nil {
		opts = NewOptions()
	}
	if opts.Mid < NoMid || opts.Mid > MidBottom {
		return nil, fmt.Errorf("figure.New: unrecognized centered-row value %d", opts.Mid)
	}
	if opts.PanelSize == (image.Point{}) {
		opts.PanelSize = NewOptions().PanelSize
	}
	regs := regions(rows, cols, opts.Mid, opts.PanelSize)
	n := len(regs)
	labels, err := opts.Labels.resolve(n)
	if err != nil {
		return nil, err
	}
	fg := &Figure{Rows: rows, Cols: cols, Mid: opts.Mid, Options: opts, regions: regs, midLegend: -1}
	for i := 0; i < n; i++ {
		ao := opts.Axis
		ao.Labels = labels[i]
		if i < len(opts.Titles) {
			ao.Title = opts.Titles[i]
		}
		fg.Panels = append(fg.Panels, ternary.Format(plot.New(), &ao))
	}
	return fg, nil
}

// regions computes the pixel rectangle of each plotting region in
// row-major order. A mid row contributes one rectangle spanning the full
// figure width; all regions of a centered-row figure keep the same height.
func regions(rows, cols int, mid MidAxis, ps image.Point) []image.Rectangle {
	width := cols * ps.X
	var regs []image.Rectangle
	for r := 0; r < rows; r++ {
		y := r * ps.Y
		if (mid == MidTop && r == 0) || (mid == MidBottom && r == rows-1) {
			regs = append(regs, image.Rect(0, y, width, y+ps.Y))
			continue
		}
		for c := 0; c < cols; c++ {
			regs = append(regs, image.Rect(c*ps.X, y, (c+1)*ps.X, y+ps.Y))
		}
	}
	return regs
}

// MidLegend draws the given panel's legend once, centered over the seam
// between that panel and its horizontal neighbor, so that two side-by-side
// panels share one legend. Either panel of the pair may be named. The panel
// must sit in a row with at least two columns.
func (fg *Figure) MidLegend(panel int) error {
	if panel < 0 || panel >= len(fg.Panels) {
		return fmt.Errorf("figure.MidLegend: no panel %d", panel)
	}
	regs := fg.regions
	switch {
	case panel+1 < len(regs) && regs[panel+1].Min.Y == regs[panel].Min.Y:
		fg.midPair = [2]int{panel, panel + 1}
	case panel > 0 && regs[panel-1].Min.Y == regs[panel].Min.Y:
		fg.midPair = [2]int{panel - 1, panel}
	default:
		return fmt.Errorf("figure.MidLegend: panel %d has no side-by-side neighbor", panel)
	}
	fg.midLegend = panel
	return nil
}

// Bounds returns the pixel size of the rendered figure.
func (fg *Figure) Bounds() image.Rectangle {
	return image.Rect(0, 0, fg.Cols*fg.Options.PanelSize.X, fg.Rows*fg.Options.PanelSize.Y)
}

// Render draws every panel and composes them into one image.
func (fg *Figure) Render() *image.RGBA {
	img := image.NewRGBA(fg.Bounds())
	var lg plot.Legend
	if fg.midLegend >= 0 {
		// the shared legend is drawn once, over the seam, not in its panel
		src := fg.Panels[fg.midLegend].Plot
		lg = src.Legend
		src.Legend.Entries = nil
		defer func() { src.Legend = lg }()
	}
	for i, pn := range fg.Panels {
		reg := fg.regions[i]
		pn.Plot.Resize(reg.Size())
		pn.Plot.Draw()
		draw.Draw(img, reg, pn.Plot.Pixels, image.Point{}, draw.Over)
	}
	if fg.midLegend >= 0 {
		fg.drawMidLegend(img, lg)
	}
	return img
}

// drawMidLegend renders the legend into its own blank plot and composites
// it centered on the seam between the paired panels.
func (fg *Figure) drawMidLegend(img *image.RGBA, lg plot.Legend) {
	sz := legendSize(&lg)
	lp := plot.New()
	ternary.Format(lp, &ternary.AxisOptions{})
	lp.Legend = lg
	lp.Legend.Position.Top = true
	lp.Legend.Position.Left = true
	lp.Resize(sz)
	lp.Draw()
	left := fg.regions[fg.midPair[0]]
	pos := image.Pt(left.Max.X-sz.X/2, left.Min.Y+8)
	draw.Draw(img, image.Rectangle{Min: pos, Max: pos.Add(sz)}, lp.Pixels, image.Point{}, draw.Over)
}

// legendSize estimates the pixel box of a drawn legend, using the same
// 12 dots per rune fallback the text layer uses before fonts are loaded.
func legendSize(lg *plot.Legend) image.Point {
	maxlen := 0
	for _, e := range lg.Entries {
		if n := len([]rune(e.Text)); n > maxlen {
			maxlen = n
		}
	}
	return image.Pt(40+12*maxlen, 24*len(lg.Entries)+8)
}

// SavePNG renders the figure and saves it to the given file.
func (fg *Figure) SavePNG(filename string) error {
	return imagex.Save(fg.Render(), filename)
}
