// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatters

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/colormap"
)

// ColorSpec specifies how scatter groups are colored: a constant color for
// all groups, a named colormap sampled evenly across the groups, an
// explicit per-group list, or the automatic spaced palette. The zero value
// is the automatic palette. Construct with [AutoColors], [UniformColor],
// [MapColors], or [ListColors].
type ColorSpec struct {
	kind    colorKind
	uniform color.Color
	mapName string
	list    []color.Color
}

type colorKind int32

const (
	colorAuto colorKind = iota
	colorUniform
	colorMap
	colorList
)

// AutoColors colors each group with [colors.Spaced].
func AutoColors() ColorSpec {
	return ColorSpec{kind: colorAuto}
}

// UniformColor colors every group with the same color.
func UniformColor(c color.Color) ColorSpec {
	return ColorSpec{kind: colorUniform, uniform: c}
}

// MapColors samples the named colormap evenly across the groups.
// Resolution fails when no colormap of that name exists; a color name is
// never accepted here, use [UniformColor] for a literal color.
func MapColors(name string) ColorSpec {
	return ColorSpec{kind: colorMap, mapName: name}
}

// ListColors colors the groups from the given list, whose length must
// equal the group count at resolution time.
func ListColors(cs ...color.Color) ColorSpec {
	return ColorSpec{kind: colorList, list: cs}
}

// resolve returns one fill per group.
func (cs ColorSpec) resolve(n int) ([]image.Image, error) {
	fills := make([]image.Image, n)
	switch cs.kind {
	case colorAuto:
		for i := range fills {
			fills[i] = colors.Uniform(colors.Spaced(i))
		}
	case colorUniform:
		for i := range fills {
			fills[i] = colors.Uniform(cs.uniform)
		}
	case colorMap:
		cm, ok := colormap.AvailableMaps[cs.mapName]
		if !ok {
			return nil, fmt.Errorf("scatters: unknown colormap %q", cs.mapName)
		}
		for i := range fills {
			pos := float32(0.5)
			if n > 1 {
				pos = float32(i) / float32(n-1)
			}
			fills[i] = colors.Uniform(cm.Map(pos))
		}
	case colorList:
		if len(cs.list) != n {
			return nil, fmt.Errorf("scatters: %d colors for %d groups", len(cs.list), n)
		}
		for i, c := range cs.list {
			fills[i] = colors.Uniform(c)
		}
	default:
		return nil, fmt.Errorf("scatters: invalid color specification")
	}
	return fills, nil
}
