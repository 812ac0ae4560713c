// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatters

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillColor(t *testing.T, fills []image.Image, i int) color.Color {
	t.Helper()
	require.NotNil(t, fills[i])
	return fills[i].At(0, 0)
}

func TestUniformColor(t *testing.T) {
	fills, err := UniformColor(color.RGBA{R: 255, A: 255}).resolve(3)
	require.NoError(t, err)
	require.Len(t, fills, 3)
	for i := range fills {
		r, _, _, a := fillColor(t, fills, i).RGBA()
		assert.Equal(t, uint32(0xffff), r)
		assert.Equal(t, uint32(0xffff), a)
	}
}

func TestMapColorsDistinct(t *testing.T) {
	fills, err := MapColors("ColdHot").resolve(3)
	require.NoError(t, err)
	require.Len(t, fills, 3)
	c0 := fillColor(t, fills, 0)
	c1 := fillColor(t, fills, 1)
	c2 := fillColor(t, fills, 2)
	assert.NotEqual(t, c0, c1)
	assert.NotEqual(t, c1, c2)
	assert.NotEqual(t, c0, c2)
}

func TestMapColorsUnknown(t *testing.T) {
	_, err := MapColors("not-a-map").resolve(3)
	assert.Error(t, err)
}

func TestListColors(t *testing.T) {
	list := ListColors(color.RGBA{R: 255, A: 255}, color.RGBA{G: 255, A: 255}, color.RGBA{B: 255, A: 255})

	fills, err := list.resolve(3)
	require.NoError(t, err)
	require.Len(t, fills, 3)

	_, err = list.resolve(2)
	assert.Error(t, err)
}

func TestAutoColorsDistinct(t *testing.T) {
	fills, err := AutoColors().resolve(4)
	require.NoError(t, err)
	for i := 1; i < len(fills); i++ {
		assert.NotEqual(t, fillColor(t, fills, i-1), fillColor(t, fills, i))
	}
}
