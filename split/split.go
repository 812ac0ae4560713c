// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package split partitions [table.Table] rows into labeled groups, either
// by binning a numeric column over threshold values or by the distinct
// values of a categorical column. Groups are indexed views onto the source
// table, not copies.
package split

import (
	"fmt"
	"slices"
	"strconv"

	"cogentcore.org/core/tensor/table"
)

// Ends specifies which open-ended groups a [Cut] produces beyond the
// bins between consecutive thresholds.
type Ends int32

const (
	// EndsNone bins only between thresholds; rows outside are excluded.
	EndsNone Ends = iota

	// EndsLow adds a group for rows below the lowest threshold.
	EndsLow

	// EndsHigh adds a group for rows at or above the highest threshold.
	EndsHigh

	// EndsBoth adds both open-ended groups.
	EndsBoth
)

func (e Ends) low() bool  { return e == EndsLow || e == EndsBoth }
func (e Ends) high() bool { return e == EndsHigh || e == EndsBoth }

// Groups is an ordered mapping from group label to a filtered index view of
// the source table. Empty groups are retained so that the group count is a
// function of the split specification alone.
type Groups struct {
	labels []string
	views  map[string]*table.IndexView
}

// Len returns the number of groups.
func (gs *Groups) Len() int { return len(gs.labels) }

// Labels returns the group labels in group order.
func (gs *Groups) Labels() []string { return gs.labels }

// View returns the index view for the given group label,
// or nil if no such group exists.
func (gs *Groups) View(label string) *table.IndexView { return gs.views[label] }

func (gs *Groups) add(label string, ix *table.IndexView) {
	if gs.views == nil {
		gs.views = make(map[string]*table.IndexView)
	}
	gs.labels = append(gs.labels, label)
	gs.views[label] = ix
}

// fmtCut formats a threshold for use in a group label.
func fmtCut(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Cut partitions the rows of the table into labeled groups by binning the
// given numeric column over the thresholds, which are sorted ascending
// internally. Each consecutive threshold pair (lo, hi) produces a group
// labeled "lo–hi" holding rows with lo <= value < hi. Depending on ends,
// a "<lo" group collects rows below the lowest threshold and a ">hi" group
// collects rows at or above the highest one; rows on an excluded side
// belong to no group. Every row therefore falls into exactly one group or
// is excluded entirely.
func Cut(dt *table.Table, column string, cuts []float64, ends Ends) (*Groups, error) {
	if ends < EndsNone || ends > EndsBoth {
		return nil, fmt.Errorf("split.Cut: unrecognized Ends value %d", ends)
	}
	if len(cuts) == 0 {
		return nil, fmt.Errorf("split.Cut: no thresholds given")
	}
	if _, err := dt.ColumnIndex(column); err != nil {
		return nil, err
	}
	cs := slices.Clone(cuts)
	slices.Sort(cs)

	gs := &Groups{}
	if ends.low() {
		lo := cs[0]
		ix := table.NewIndexView(dt)
		ix.Filter(func(et *table.Table, row int) bool {
			return et.Float(column, row) < lo
		})
		gs.add("<"+fmtCut(lo), ix)
	}
	for i := 0; i < len(cs)-1; i++ {
		lo, hi := cs[i], cs[i+1]
		ix := table.NewIndexView(dt)
		ix.Filter(func(et *table.Table, row int) bool {
			x := et.Float(column, row)
			return x >= lo && x < hi
		})
		gs.add(fmtCut(lo)+"–"+fmtCut(hi), ix)
	}
	if ends.high() {
		hi := cs[len(cs)-1]
		ix := table.NewIndexView(dt)
		ix.Filter(func(et *table.Table, row int) bool {
			return et.Float(column, row) >= hi
		})
		gs.add(">"+fmtCut(hi), ix)
	}
	return gs, nil
}

// GroupBy partitions the rows of the table into one group per distinct
// value of the given column, in order of first appearance. Numeric columns
// group by their string representation.
func GroupBy(dt *table.Table, column string) (*Groups, error) {
	if _, err := dt.ColumnIndex(column); err != nil {
		return nil, err
	}
	gs := &Groups{}
	for i := 0; i < dt.Rows; i++ {
		lbl := dt.StringValue(column, i)
		if _, ok := gs.views[lbl]; ok {
			continue
		}
		ix := table.NewIndexView(dt)
		ix.Filter(func(et *table.Table, row int) bool {
			return et.StringValue(column, row) == lbl
		})
		gs.add(lbl, ix)
	}
	return gs, nil
}
