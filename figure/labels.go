// Copyright (c) 2025, Kaarel Mänd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import "fmt"

// Labels specifies the axis labels of the panels in a figure: a named
// preset, a literal (left, top, right) triple, or an ordered per-panel
// sequence of presets and triples. The zero value means no labels.
// Construct with [Preset], [Triple], or [PerPanel].
type Labels struct {
	kind   labelKind
	name   string
	triple [3]string
	panels []Labels
}

type labelKind int32

const (
	labelNone labelKind = iota
	labelPreset
	labelTriple
	labelPerPanel
)

// Presets are the recognized preset label keywords for geochemical
// weathering diagrams, mapping to fixed (left, top, right) triples.
// CN stands for CaO*+Na2O, CNM adds MgO, A is Al2O3, and K is K2O;
// a trailing "*" marks the correction for non-silicate potassium.
var Presets = map[string][3]string{
	"cn":     {"CN", "A", "K"},
	"cnm":    {"CNM", "A", "K"},
	"cn-k*":  {"CN", "A", "K*"},
	"cnm-k*": {"CNM", "A", "K*"},
}

// Preset returns a label specification naming a preset keyword.
// Unknown keywords fail at resolution time.
func Preset(name string) Labels {
	return Labels{kind: labelPreset, name: name}
}

// Triple returns a literal (left, top, right) label specification.
func Triple(left, top, right string) Labels {
	return Labels{kind: labelTriple, triple: [3]string{left, top, right}}
}

// PerPanel returns a label specification with one element per panel.
// Each element must itself be a [Preset] or [Triple]; nesting PerPanel
// specifications fails at resolution time.
func PerPanel(panels ...Labels) Labels {
	return Labels{kind: labelPerPanel, panels: panels}
}

// resolve expands the specification to exactly one triple per panel.
func (ls Labels) resolve(panels int) ([][3]string, error) {
	switch ls.kind {
	case labelNone:
		return make([][3]string, panels), nil
	case labelPreset:
		tr, ok := Presets[ls.name]
		if !ok {
			return nil, fmt.Errorf("figure: unknown label preset %q", ls.name)
		}
		return repeat(tr, panels), nil
	case labelTriple:
		return repeat(ls.triple, panels), nil
	case labelPerPanel:
		if len(ls.panels) != panels {
			return nil, fmt.Errorf("figure: %d label entries for %d panels", len(ls.panels), panels)
		}
		out := make([][3]string, panels)
		for i, el := range ls.panels {
			if el.kind == labelPerPanel {
				return nil, fmt.Errorf("figure: per-panel label entries cannot be nested lists")
			}
			tr, err := el.resolve(1)
			if err != nil {
				return nil, err
			}
			out[i] = tr[0]
		}
		return out, nil
	}
	return nil, fmt.Errorf("figure: invalid label specification")
}

func repeat(tr [3]string, n int) [][3]string {
	out := make([][3]string, n)
	for i := range out {
		out[i] = tr
	}
	return out
}
