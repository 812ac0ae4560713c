// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatters

import (
	"image/color"
	"testing"

	"cogentcore.org/core/plot"
	"cogentcore.org/core/tensor/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaarelmand/ternplot/split"
	"github.com/kaarelmand/ternplot/ternary"
)

// newSampleTable builds a table with ternary components L, T, R, a numeric
// weathering index W, and a categorical lithology column Lith.
func newSampleTable(t *testing.T) *table.Table {
	t.Helper()
	dt := table.NewTable()
	for _, name := range []string{"L", "T", "R", "W"} {
		dt.AddFloat64Column(name)
	}
	dt.AddStringColumn("Lith")
	rows := []struct {
		l, tp, r, w float64
		lith        string
	}{
		{50, 30, 20, 10, "shale"},
		{20, 60, 20, 50, "shale"},
		{10, 80, 10, 90, "sand"},
		{30, 40, 30, 55, "sand"},
		{25, 50, 25, 95, "till"},
	}
	dt.SetNumRows(len(rows))
	for i, rw := range rows {
		dt.SetFloat("L", i, rw.l)
		dt.SetFloat("T", i, rw.tp)
		dt.SetFloat("R", i, rw.r)
		dt.SetFloat("W", i, rw.w)
		dt.SetString("Lith", i, rw.lith)
	}
	return dt
}

func newPanel() *ternary.Panel {
	return ternary.Format(plot.New(), nil)
}

// scatterSizes returns the point counts of the panel's scatter plotters
// in draw order.
func scatterSizes(pn *ternary.Panel) []int {
	var ns []int
	for _, p := range pn.Plot.Plotters {
		if sc, ok := p.(*ternary.Scatter); ok {
			ns = append(ns, len(sc.XYs))
		}
	}
	return ns
}

func TestScatterUngrouped(t *testing.T) {
	dt := newSampleTable(t)
	pn := newPanel()
	err := Scatter(pn, dt, NewConfig("L", "T", "R"))
	require.NoError(t, err)
	assert.Equal(t, []int{5}, scatterSizes(pn))
}

func TestScatterCategorical(t *testing.T) {
	dt := newSampleTable(t)
	pn := newPanel()
	cfg := NewConfig("L", "T", "R")
	cfg.GroupBy = "Lith"
	err := Scatter(pn, dt, cfg)
	require.NoError(t, err)
	// shale, sand, till in first-appearance order
	assert.Equal(t, []int{2, 2, 1}, scatterSizes(pn))
}

func TestScatterNumericBins(t *testing.T) {
	dt := newSampleTable(t)
	pn := newPanel()
	cfg := NewConfig("L", "T", "R")
	cfg.GroupBy = "W"
	cfg.Cuts = []float64{30, 70}
	cfg.Ends = split.EndsBoth
	err := Scatter(pn, dt, cfg)
	require.NoError(t, err)
	// <30: 1 row; 30–70: 2 rows; >70: 2 rows
	assert.Equal(t, []int{1, 2, 2}, scatterSizes(pn))
}

func TestScatterColorListLength(t *testing.T) {
	dt := newSampleTable(t)
	cfg := NewConfig("L", "T", "R")
	cfg.GroupBy = "W"
	cfg.Cuts = []float64{30, 70}
	cfg.Ends = split.EndsBoth
	cfg.Colors = ListColors(
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
		color.RGBA{B: 255, A: 255},
	)
	require.NoError(t, Scatter(newPanel(), dt, cfg))

	cfg.Colors = ListColors(color.RGBA{R: 255, A: 255}, color.RGBA{G: 255, A: 255})
	assert.Error(t, Scatter(newPanel(), dt, cfg))
}

func TestScatterForward(t *testing.T) {
	dt := newSampleTable(t)
	pn := newPanel()
	cfg := NewConfig("L", "T", "R")
	cfg.GroupBy = "Lith"
	cfg.Forward = []string{"shale"}
	err := Scatter(pn, dt, cfg)
	require.NoError(t, err)
	// shale (2 rows) drawn last, above sand and till
	assert.Equal(t, []int{2, 1, 2}, scatterSizes(pn))
}

func TestScatterEmptyGroupSkipped(t *testing.T) {
	dt := newSampleTable(t)
	pn := newPanel()
	cfg := NewConfig("L", "T", "R")
	cfg.GroupBy = "W"
	cfg.Cuts = []float64{30, 70, 200}
	cfg.Ends = split.EndsBoth
	// the 70–200 bin holds all high rows; >200 is empty
	cfg.Colors = MapColors("ColdHot")
	err := Scatter(pn, dt, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, scatterSizes(pn))
}

func TestScatterMissingColumn(t *testing.T) {
	dt := newSampleTable(t)
	cfg := NewConfig("L", "T", "Nope")
	assert.Error(t, Scatter(newPanel(), dt, cfg))

	cfg = NewConfig("L", "T", "R")
	cfg.GroupBy = "Nope"
	assert.Error(t, Scatter(newPanel(), dt, cfg))
}

func TestScatterLegend(t *testing.T) {
	dt := newSampleTable(t)
	pn := newPanel()
	cfg := NewConfig("L", "T", "R")
	cfg.GroupBy = "Lith"
	cfg.Legend = true
	err := Scatter(pn, dt, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, scatterSizes(pn))
}
