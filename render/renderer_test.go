// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/text"
)

func mustParse(t *testing.T, src string) *Scene {
	t.Helper()
	s, err := ParseScene([]byte(src))
	if err != nil {
		t.Fatalf("ParseScene() error = %v", err)
	}
	return s
}

const pointScene = `
width: 100
height: 100
layers:
  - name: places
    symbolizers:
      - {type: text, text: "[name]"}
    features:
      - id: 1
        attributes: {name: AB}
        geometry: {type: point, coordinates: [50, 50]}
      - id: 2
        attributes: {name: CD}
        geometry: {type: point, coordinates: [52, 50]}
      - id: 3
        attributes: {name: EF}
        geometry: {type: point, coordinates: [20, 20]}
`

func TestPassRenderPoints(t *testing.T) {
	s := mustParse(t, pointScene)
	p := NewPassForScene(s)

	got, err := p.Render(s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(placements) = %d, want 2", len(got))
	}
	if got[0].FeatureID != 1 || got[0].Text != "AB" || got[0].Layer != "places" {
		t.Errorf("first placement = %d %q %q", got[0].FeatureID, got[0].Text, got[0].Layer)
	}
	if got[1].FeatureID != 3 {
		t.Errorf("second placement feature = %d, want 3 (2 collides with 1)", got[1].FeatureID)
	}
	if got[0].BasePoint != geom.Pt(50, 50) {
		t.Errorf("BasePoint = %v, want (50,50)", got[0].BasePoint)
	}
	if _, ok := got[0].Symbolizer.(*TextSymbolizer); !ok {
		t.Errorf("Symbolizer = %T", got[0].Symbolizer)
	}
	if len(p.Placements()) != 2 {
		t.Errorf("len(Placements()) = %d, want 2", len(p.Placements()))
	}

	// A second run over the same pass sees the earlier labels.
	again, err := p.Render(s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second Render placed %d labels, want 0", len(again))
	}

	p.Reset()
	if p.Detector().Len() != 0 || len(p.Placements()) != 0 {
		t.Error("Reset() kept state")
	}
	again, _ = p.Render(s)
	if len(again) != 2 {
		t.Errorf("Render after Reset placed %d labels, want 2", len(again))
	}
}

func TestPassRenderLine(t *testing.T) {
	s := mustParse(t, `
width: 300
height: 100
layers:
  - name: roads
    symbolizers:
      - {type: line}
      - {type: text, text: "[name]", placement: line, spacing: 100}
    features:
      - id: 4
        attributes: {name: Main}
        geometry: {type: linestring, coordinates: [[0, 50], [300, 50]]}
`)
	got, err := NewPassForScene(s).Render(s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// 300 / (100 + 24) leaves room for two labels, 150 apart.
	if len(got) != 2 {
		t.Fatalf("len(placements) = %d, want 2", len(got))
	}
	if d := got[1].BasePoint.X - got[0].BasePoint.X; d < 149.9 || d > 150.1 {
		t.Errorf("labels %g apart, want 150", d)
	}
	for _, pl := range got {
		if len(pl.Glyphs) != 4 {
			t.Errorf("placement has %d glyphs, want 4", len(pl.Glyphs))
		}
		for _, g := range pl.Glyphs {
			if g.Rot.Sin > 1e-9 || g.Rot.Sin < -1e-9 {
				t.Errorf("glyph rotated on a horizontal line: %+v", g.Rot)
			}
		}
	}
}

func TestPassRenderShield(t *testing.T) {
	s := mustParse(t, `
width: 100
height: 100
layers:
  - symbolizers:
      - type: shield
        text: "[ref]"
        marker: {width: 30, height: 20}
    features:
      - id: 9
        attributes: {ref: A1}
        geometry: {type: point, coordinates: [50, 50]}
`)
	got, err := NewPassForScene(s).Render(s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(placements) = %d, want 1", len(got))
	}
	m := got[0].Marker
	if m == nil {
		t.Fatal("shield placement has no marker")
	}
	if m.Box != geom.NewBox(35, 40, 65, 60) {
		t.Errorf("marker box = %+v", m.Box)
	}
}

func TestPassRenderFeatureErrorsAreLogged(t *testing.T) {
	s := mustParse(t, `
width: 100
height: 100
layers:
  - name: broken
    symbolizers:
      - {type: text, text: x, placements: "N,8,S"}
    features:
      - id: 1
        geometry: {type: point, coordinates: [50, 50]}
  - name: fine
    symbolizers:
      - {type: text, text: ok}
    features:
      - id: 2
        geometry: {type: point, coordinates: [50, 50]}
      - id: 3
`)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	got, err := NewPassForScene(s, WithLogger(logger)).Render(s)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(got) != 1 || got[0].FeatureID != 2 {
		t.Fatalf("placements = %+v, want feature 2 only", got)
	}

	out := buf.String()
	for _, want := range []string{"label dropped", "layer=broken", "feature without geometry", "pass done"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output lacks %q:\n%s", want, out)
		}
	}
}

func TestPassRenderNilScene(t *testing.T) {
	if _, err := NewPass(10, 10).Render(nil); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("Render(nil) error = %v, want ErrInvalidScene", err)
	}
}

func TestPassOptions(t *testing.T) {
	s := &Scene{Width: 200, Height: 100, Buffer: 8, ScaleFactor: 2, View: View{Scale: 1}}
	p := NewPassForScene(s)
	if got, want := p.Detector().Extent(), geom.NewBox(-8, -8, 208, 108); got != want {
		t.Errorf("detector extent = %+v, want %+v", got, want)
	}
	if p.scale != 2 {
		t.Errorf("scale = %g, want 2", p.scale)
	}
	if p.Extent() != geom.NewBox(0, 0, 200, 100) {
		t.Errorf("Extent() = %+v", p.Extent())
	}

	// Options given to NewPassForScene override the scene.
	p = NewPassForScene(s, WithBuffer(0), WithScaleFactor(-1), WithShaper(nil), WithLogger(nil))
	if p.Detector().Extent() != p.Extent() {
		t.Errorf("buffer not overridden: %+v", p.Detector().Extent())
	}
	if p.scale != 2 {
		t.Errorf("invalid scale factor was applied: %g", p.scale)
	}
	if _, ok := p.shaper.(text.FixedShaper); !ok || p.logger == nil {
		t.Error("nil options replaced the defaults")
	}
}

func TestPassRenderScaleFactor(t *testing.T) {
	s := mustParse(t, `
width: 100
height: 100
scale-factor: 2
layers:
  - symbolizers:
      - {type: text, text: AB}
    features:
      - geometry: {type: point, coordinates: [50, 50]}
`)
	got, err := NewPassForScene(s).Render(s)
	if err != nil || len(got) != 1 {
		t.Fatalf("Render() = %d placements, %v", len(got), err)
	}
	// Size 10 doubles to 20: advances of 12 pixels.
	b := got[0].Bounds()
	if w := b.Width(); w < 23.9 || w > 24.1 {
		t.Errorf("label width = %g, want 24", w)
	}
}

func TestPassRenderView(t *testing.T) {
	s := mustParse(t, `
width: 100
height: 100
view: {scale: 2, dx: 10}
layers:
  - symbolizers:
      - {type: text, text: A}
    features:
      - geometry: {type: point, coordinates: [20, 20]}
`)
	got, err := NewPassForScene(s).Render(s)
	if err != nil || len(got) != 1 {
		t.Fatalf("Render() = %d placements, %v", len(got), err)
	}
	if got[0].BasePoint != geom.Pt(50, 40) {
		t.Errorf("BasePoint = %v, want (50,40)", got[0].BasePoint)
	}
	// The scene keeps feature coordinates.
	f := s.Layers[0].Features[0].Feature()
	if f.Geometries[0].Bounds().MinX != 20 {
		t.Error("Render modified the scene geometry")
	}
}
