// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scatters draws color-coded scatter groups on ternary panels from
// [table.Table] data: rows are partitioned by a grouping column, each
// partition gets one scatter plotter and one color, and selected groups can
// be brought forward in the draw order.
package scatters

import (
	"fmt"
	"image"
	"slices"

	"cogentcore.org/core/plot/plots"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tensor/table"

	"github.com/kaarelmand/ternplot/split"
	"github.com/kaarelmand/ternplot/ternary"
)

// Config configures [Scatter]. Use [NewConfig] for defaults.
type Config struct {
	// Left, Top, Right name the table columns holding the three
	// ternary components.
	Left, Top, Right string

	// GroupBy optionally names the column to partition rows by.
	// Empty plots all rows as one undifferentiated group.
	GroupBy string

	// Cuts switches the partition from categorical distinct values to
	// numeric binning of the GroupBy column over these thresholds.
	Cuts []float64

	// Ends selects the open-ended bins when Cuts is set.
	Ends split.Ends

	// Colors resolves the per-group colors.
	Colors ColorSpec

	// Shape is the point shape for all groups.
	Shape plots.Shapes

	// PointSize is the point size for all groups.
	PointSize units.Value

	// Forward lists group labels to draw above all other groups.
	Forward []string

	// Legend adds one legend entry per non-empty group.
	Legend bool
}

// NewConfig returns a scatter config with default settings.
func NewConfig(left, top, right string) *Config {
	cfg := &Config{Left: left, Top: top, Right: right}
	cfg.Defaults()
	return cfg
}

func (cfg *Config) Defaults() {
	cfg.Shape = plots.Circle
	cfg.PointSize.Pt(4)
}

// groups partitions the table according to the config.
func (cfg *Config) groups(dt *table.Table) (*split.Groups, error) {
	if cfg.GroupBy == "" {
		return nil, nil
	}
	if len(cfg.Cuts) > 0 {
		return split.Cut(dt, cfg.GroupBy, cfg.Cuts, cfg.Ends)
	}
	return split.GroupBy(dt, cfg.GroupBy)
}

// compositions reads the three component columns of the index view
// into ternary data.
func compositions(ix *table.IndexView, left, top, right string) (ternary.ABCs, error) {
	for _, name := range []string{left, top, right} {
		if _, err := ix.Table.ColumnIndex(name); err != nil {
			return nil, err
		}
	}
	d := make(ternary.ABCs, 0, len(ix.Indexes))
	for _, row := range ix.Indexes {
		d = append(d, ternary.ABC{
			Left:  float32(ix.Table.Float(left, row)),
			Top:   float32(ix.Table.Float(top, row)),
			Right: float32(ix.Table.Float(right, row)),
		})
	}
	return d, nil
}

// Scatter partitions the table rows and adds one scatter plotter per
// non-empty group to the panel, in group order with Forward groups last so
// they draw on top. Colors are resolved against the full group count, so
// an explicit color list must match it even when some groups are empty.
func Scatter(pn *ternary.Panel, dt *table.Table, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("scatters.Scatter: nil config")
	}
	gs, err := cfg.groups(dt)
	if err != nil {
		return err
	}
	if gs == nil {
		fills, err := cfg.Colors.resolve(1)
		if err != nil {
			return err
		}
		d, err := compositions(table.NewIndexView(dt), cfg.Left, cfg.Top, cfg.Right)
		if err != nil {
			return err
		}
		if len(d) == 0 {
			return nil
		}
		sc, err := ternary.NewScatter(d)
		if err != nil {
			return err
		}
		cfg.style(sc, fills[0])
		pn.Plot.Add(sc)
		return nil
	}

	fills, err := cfg.Colors.resolve(gs.Len())
	if err != nil {
		return err
	}
	order := drawOrder(gs.Labels(), cfg.Forward)
	for _, gi := range order {
		lbl := gs.Labels()[gi]
		ix := gs.View(lbl)
		if len(ix.Indexes) == 0 {
			continue
		}
		d, err := compositions(ix, cfg.Left, cfg.Top, cfg.Right)
		if err != nil {
			return err
		}
		sc, err := ternary.NewScatter(d)
		if err != nil {
			return err
		}
		cfg.style(sc, fills[gi])
		pn.Plot.Add(sc)
		if cfg.Legend {
			pn.Plot.Legend.Add(lbl, sc)
		}
	}
	return nil
}

func (cfg *Config) style(sc *ternary.Scatter, fill image.Image) {
	sc.PointShape = cfg.Shape
	sc.PointSize = cfg.PointSize
	sc.LineStyle.Color = fill
}

// drawOrder returns group indexes with Forward labels moved to the end,
// both partitions keeping their relative order.
func drawOrder(labels, forward []string) []int {
	var back, front []int
	for i, lbl := range labels {
		if slices.Contains(forward, lbl) {
			front = append(front, i)
		} else {
			back = append(back, i)
		}
	}
	return append(back, front...)
}
