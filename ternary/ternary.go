// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ternary renders ternary (three-component) diagrams on top of the
// [cogentcore.org/core/plot] package. A ternary diagram plots compositions
// of three proportions inside an equilateral triangle, with the left, top,
// and right corners representing the pure components.
package ternary

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/plot"
)

// Height is the height of the unit equilateral triangle, cos(30°) = √3/2.
// The triangle occupies x ∈ [0, 1], y ∈ [0, Height] in data coordinates.
const Height = 0.8660254037844386

// Project maps a composition to data coordinates inside the unit triangle.
// The components are (left, top, right): left lands at (0, 0), right at
// (1, 0), and top at (0.5, Height). The composition need not be
// pre-normalized; only the proportions matter.
func Project(left, top, right float32) math32.Vector2 {
	s := left + top + right
	if s == 0 {
		return math32.Vector2{}
	}
	return math32.Vec2((right+0.5*top)/s, Height*top/s)
}

// ABC is a single ternary composition.
type ABC struct {
	Left, Top, Right float32
}

// ABCs implements the ABCer interface over a slice of compositions.
type ABCs []ABC

func (d ABCs) Len() int { return len(d) }

func (d ABCs) ABC(i int) (left, top, right float32) {
	return d[i].Left, d[i].Top, d[i].Right
}

// ABCer is the data interface for ternary plotters, mirroring [plot.XYer].
type ABCer interface {
	// Len returns the number of compositions.
	Len() int

	// ABC returns the left, top, right components of composition i.
	ABC(i int) (left, top, right float32)
}

// ProjectXYs projects every composition in the data to [plot.XYs]
// data coordinates.
func ProjectXYs(d ABCer) plot.XYs {
	xys := make(plot.XYs, d.Len())
	for i := range xys {
		xys[i] = Project(d.ABC(i))
	}
	return xys
}

// corners are the triangle corners in data coordinates,
// in left, right, top order.
func corners() [3]math32.Vector2 {
	return [3]math32.Vector2{
		math32.Vec2(0, 0),
		math32.Vec2(1, 0),
		math32.Vec2(0.5, Height),
	}
}
