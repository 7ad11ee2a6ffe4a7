// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/collision"
	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/placement"
	"github.com/gogpu/maplabel/symbolizer"
	"github.com/gogpu/maplabel/text"
)

// Placement is a label accepted during a pass.
type Placement struct {
	Layer     string
	FeatureID int64

	// Symbolizer is the symbolizer that produced the label.
	Symbolizer Symbolizer

	*placement.GlyphPositions
}

// Option configures a Pass.
type Option func(*Pass)

// WithShaper sets the shaper used for all labels. The default is a
// text.FixedShaper, which needs no fonts.
func WithShaper(s text.Shaper) Option {
	return func(p *Pass) {
		if s != nil {
			p.shaper = s
		}
	}
}

// WithLogger sets the logger of the pass. The default is maplabel.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(p *Pass) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithScaleFactor multiplies every configured length by s.
// Values of zero or less are ignored.
func WithScaleFactor(s float64) Option {
	return func(p *Pass) {
		if s > 0 {
			p.scale = s
		}
	}
}

// WithBuffer extends the collision extent by b pixels on every side, so
// labels just outside the canvas still block their neighbours.
func WithBuffer(b float64) Option {
	return func(p *Pass) {
		if b >= 0 {
			p.buffer = b
		}
	}
}

// Pass places the labels of scenes on one canvas. All symbolizers of a pass
// share a collision detector, so labels placed earlier win.
//
// A Pass is not safe for concurrent use.
type Pass struct {
	width, height int
	buffer        float64
	scale         float64
	shaper        text.Shaper
	logger        *slog.Logger

	detector   *collision.Detector
	placements []Placement
}

// NewPass creates a pass for a width x height canvas.
func NewPass(width, height int, opts ...Option) *Pass {
	p := &Pass{
		width:  width,
		height: height,
		scale:  1,
		shaper: text.FixedShaper{},
		logger: maplabel.Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.detector = collision.NewDetector(p.Extent().Expand(p.buffer))
	return p
}

// NewPassForScene creates a pass sized and scaled by s. opts are applied
// after the scene settings.
func NewPassForScene(s *Scene, opts ...Option) *Pass {
	base := []Option{WithScaleFactor(s.ScaleFactor), WithBuffer(s.Buffer)}
	return NewPass(s.Width, s.Height, append(base, opts...)...)
}

// Extent returns the visible canvas.
func (p *Pass) Extent() geom.Box {
	return geom.NewBox(0, 0, float64(p.width), float64(p.height))
}

// Detector returns the collision detector shared by the pass.
func (p *Pass) Detector() *collision.Detector { return p.detector }

// Placements returns every label accepted so far.
func (p *Pass) Placements() []Placement { return p.placements }

// Reset forgets all placements.
func (p *Pass) Reset() {
	p.detector.Clear()
	p.placements = nil
}

// Render places the labels of every layer of s, in order. Errors of a
// single feature drop its labels and are logged; the pass goes on. Render
// returns the placements made for s.
func (p *Pass) Render(s *Scene) ([]Placement, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil scene", ErrInvalidScene)
	}
	m := s.Matrix()
	start := len(p.placements)
	var features, failed int
	for li := range s.Layers {
		layer := &s.Layers[li]
		for fi := range layer.Features {
			features++
			f := transformFeature(layer.Features[fi].Feature(), m)
			for _, sym := range layer.Symbolizers {
				if err := p.place(layer.Name, f, sym); err != nil {
					failed++
					p.logger.Warn("render: label dropped",
						"layer", layer.Name, "feature", f.ID, "err", err)
				}
			}
		}
	}
	out := p.placements[start:]
	p.logger.Info("render: pass done",
		"layers", len(s.Layers), "features", features,
		"placements", len(out), "errors", failed)
	return out, nil
}

// place runs sym for f. Preview-only symbolizers place nothing.
func (p *Pass) place(layer string, f *symbolizer.Feature, sym Symbolizer) error {
	var (
		h   *symbolizer.Helper
		err error
	)
	opts := []symbolizer.Option{symbolizer.WithScaleFactor(p.scale)}
	switch s := sym.(type) {
	case *TextSymbolizer:
		var variants []placement.Properties
		if variants, err = s.Variants(f); err != nil {
			return err
		}
		h, err = symbolizer.NewTextHelper(f, variants, p.detector, p.Extent(), p.shaper, opts...)
	case *ShieldSymbolizer:
		var variants []placement.Properties
		if variants, err = s.Variants(f); err != nil {
			return err
		}
		h, err = symbolizer.NewShieldHelper(f, variants, p.detector, p.Extent(), p.shaper,
			s.Marker.PlacementMarker(p.scale), opts...)
	case *LineSymbolizer, *PolygonSymbolizer:
		return nil
	default:
		return fmt.Errorf("%w %T", ErrUnknownSymbolizer, sym)
	}
	if errors.Is(err, symbolizer.ErrNoGeometry) {
		p.logger.Debug("render: feature without geometry", "layer", layer, "feature", f.ID)
		return nil
	}
	if err != nil {
		return err
	}

	got, err := h.Get()
	for _, gp := range got {
		p.placements = append(p.placements, Placement{
			Layer:          layer,
			FeatureID:      f.ID,
			Symbolizer:     sym,
			GlyphPositions: gp,
		})
	}
	p.logger.Debug("render: feature placed",
		"layer", layer, "feature", f.ID, "kind", sym.Kind(),
		"placements", len(got), "pending", h.Pending())
	return err
}

func transformFeature(f *symbolizer.Feature, m geom.Matrix) *symbolizer.Feature {
	if m.IsIdentity() {
		return f
	}
	out := *f
	out.Geometries = make([]symbolizer.Geometry, len(f.Geometries))
	for i, g := range f.Geometries {
		out.Geometries[i] = g.Transform(m)
	}
	return &out
}
