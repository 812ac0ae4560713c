// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetTriples(t *testing.T) {
	want := map[string][3]string{
		"cn":     {"CN", "A", "K"},
		"cnm":    {"CNM", "A", "K"},
		"cn-k*":  {"CN", "A", "K*"},
		"cnm-k*": {"CNM", "A", "K*"},
	}
	for name, tr := range want {
		got, err := Preset(name).resolve(2)
		require.NoError(t, err, name)
		require.Len(t, got, 2)
		assert.Equal(t, tr, got[0])
		assert.Equal(t, tr, got[1])
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := Preset("nope").resolve(1)
	assert.Error(t, err)
}

func TestTripleResolve(t *testing.T) {
	got, err := Triple("l", "t", "r").resolve(3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, [3]string{"l", "t", "r"}, got[2])
}

func TestPerPanelResolve(t *testing.T) {
	ls := PerPanel(Preset("cn"), Triple("a", "b", "c"), Preset("cnm-k*"))
	got, err := ls.resolve(3)
	require.NoError(t, err)
	assert.Equal(t, Presets["cn"], got[0])
	assert.Equal(t, [3]string{"a", "b", "c"}, got[1])
	assert.Equal(t, Presets["cnm-k*"], got[2])
}

func TestPerPanelLengthMismatch(t *testing.T) {
	ls := PerPanel(Preset("cn"), Preset("cnm"))
	_, err := ls.resolve(3)
	assert.Error(t, err)
}

func TestPerPanelNested(t *testing.T) {
	ls := PerPanel(Preset("cn"), PerPanel(Preset("cnm")))
	_, err := ls.resolve(2)
	assert.Error(t, err)
}

func TestNoneResolve(t *testing.T) {
	got, err := Labels{}.resolve(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, [3]string{}, got[0])
}

func TestPerPanelUnknownPreset(t *testing.T) {
	ls := PerPanel(Preset("cn"), Preset("bogus"))
	_, err := ls.resolve(2)
	assert.Error(t, err)
}
