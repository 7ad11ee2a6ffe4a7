// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/placement"
	"github.com/gogpu/maplabel/symbolizer"
)

// Symbolizer describes how the features of a layer are drawn. The set of
// kinds is closed: TextSymbolizer, ShieldSymbolizer, LineSymbolizer and
// PolygonSymbolizer.
type Symbolizer interface {
	// Kind returns the name used for the symbolizer in scene files.
	Kind() string

	isSymbolizer()
}

// TextSymbolizer places text labels.
type TextSymbolizer struct {
	placement.Properties `yaml:",inline"`

	// Placements lists fallback positions and sizes, such as
	// "N,S,E,W,10,8". Empty means only the configured position is tried.
	Placements string `yaml:"placements"`

	Fill Color `yaml:"fill"`

	// HaloFill is drawn around glyph outlines when HaloRadius > 0.
	HaloFill   Color   `yaml:"halo-fill"`
	HaloRadius float64 `yaml:"halo-radius"`
}

// ShieldSymbolizer places text together with a marker.
type ShieldSymbolizer struct {
	TextSymbolizer `yaml:",inline"`

	Marker MarkerStyle `yaml:"marker"`
}

// MarkerStyle is the image part of a shield, drawn as a filled box.
type MarkerStyle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`

	// Unlock anchors the marker at the candidate position instead of the
	// displaced text.
	Unlock bool `yaml:"unlock-image"`

	Fill Color `yaml:"fill"`
}

// LineSymbolizer strokes line and polygon geometries in previews.
type LineSymbolizer struct {
	Stroke      Color   `yaml:"stroke"`
	StrokeWidth float64 `yaml:"stroke-width"`
}

// PolygonSymbolizer fills polygon geometries in previews.
type PolygonSymbolizer struct {
	Fill Color `yaml:"fill"`
}

func (*TextSymbolizer) Kind() string    { return "text" }
func (*ShieldSymbolizer) Kind() string  { return "shield" }
func (*LineSymbolizer) Kind() string    { return "line" }
func (*PolygonSymbolizer) Kind() string { return "polygon" }

func (*TextSymbolizer) isSymbolizer()    {}
func (*ShieldSymbolizer) isSymbolizer()  {}
func (*LineSymbolizer) isSymbolizer()    {}
func (*PolygonSymbolizer) isSymbolizer() {}

var (
	black = Color{A: 0xff}
	white = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	grey  = Color{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// NewTextSymbolizer returns a text symbolizer with default properties and
// a black fill.
func NewTextSymbolizer() *TextSymbolizer {
	return &TextSymbolizer{
		Properties: placement.DefaultProperties(),
		Fill:       black,
		HaloFill:   white,
	}
}

// NewShieldSymbolizer returns a shield symbolizer with default properties.
func NewShieldSymbolizer() *ShieldSymbolizer {
	return &ShieldSymbolizer{
		TextSymbolizer: *NewTextSymbolizer(),
		Marker:         MarkerStyle{Fill: grey},
	}
}

// Variants returns the text variants for f: the configured properties
// with the text expression evaluated, followed by the fallbacks listed in
// Placements.
func (s *TextSymbolizer) Variants(f *symbolizer.Feature) ([]placement.Properties, error) {
	base := s.Properties
	base.Text = ExpandText(base.Text, f)
	if strings.TrimSpace(s.Placements) == "" {
		return []placement.Properties{base}, nil
	}
	return placement.ParseSimple(base, s.Placements)
}

// PlacementMarker converts the marker style into device pixels at scale.
func (m MarkerStyle) PlacementMarker(scale float64) placement.Marker {
	return placement.Marker{
		Width:        m.Width * scale,
		Height:       m.Height * scale,
		Displacement: geom.Pt(m.DX*scale, m.DY*scale),
		Unlock:       m.Unlock,
	}
}

// ExpandText replaces every "[name]" in expr with the attribute name of
// f. Unknown attributes expand to "". A '[' without a closing ']' is kept
// as is.
func ExpandText(expr string, f *symbolizer.Feature) string {
	if !strings.Contains(expr, "[") {
		return expr
	}
	var sb strings.Builder
	for {
		open := strings.IndexByte(expr, '[')
		if open < 0 {
			break
		}
		end := strings.IndexByte(expr[open:], ']')
		if end < 0 {
			break
		}
		sb.WriteString(expr[:open])
		if f != nil {
			sb.WriteString(f.Attr(expr[open+1 : open+end]))
		}
		expr = expr[open+end+1:]
	}
	sb.WriteString(expr)
	return sb.String()
}

// Symbolizers is a list of symbolizers decoded by their "type" key.
type Symbolizers []Symbolizer

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Symbolizers) UnmarshalYAML(node *yaml.Node) error {
	var raw []yaml.Node
	if err := node.Decode(&raw); err != nil {
		return err
	}
	out := make(Symbolizers, 0, len(raw))
	for i := range raw {
		var head struct {
			Type string `yaml:"type"`
		}
		if err := raw[i].Decode(&head); err != nil {
			return err
		}

		var s Symbolizer
		switch strings.ToLower(head.Type) {
		case "text":
			s = NewTextSymbolizer()
		case "shield":
			s = NewShieldSymbolizer()
		case "line":
			s = &LineSymbolizer{Stroke: black, StrokeWidth: 1}
		case "polygon":
			s = &PolygonSymbolizer{Fill: grey}
		default:
			return fmt.Errorf("%w %q (line %d)", ErrUnknownSymbolizer, head.Type, raw[i].Line)
		}
		if err := raw[i].Decode(s); err != nil {
			return fmt.Errorf("render: %s symbolizer (line %d): %w", s.Kind(), raw[i].Line, err)
		}
		out = append(out, s)
	}
	*l = out
	return nil
}
