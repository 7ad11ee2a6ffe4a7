// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/symbolizer"
	"github.com/gogpu/maplabel/text"
)

// Scene is a labelling job read from YAML: a canvas, the fonts to load and
// layers of features with their symbolizers.
//
// Example:
//
//	width: 400
//	height: 300
//	buffer: 16
//	fonts:
//	  - file: fonts/DejaVuSans.ttf
//	layers:
//	  - name: roads
//	    symbolizers:
//	      - type: line
//	        stroke: "#999"
//	      - type: text
//	        text: "[name]"
//	        placement: line
//	        size: 12
//	    features:
//	      - id: 1
//	        attributes: {name: Main Street}
//	        geometry:
//	          type: linestring
//	          coordinates: [[10, 150], [390, 120]]
type Scene struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Buffer extends the collision extent beyond the canvas on all sides.
	Buffer float64 `yaml:"buffer"`

	ScaleFactor float64 `yaml:"scale-factor"`
	Background  Color   `yaml:"background"`

	// View maps feature coordinates to pixels.
	View View `yaml:"view"`

	Fonts  []FontSpec `yaml:"fonts"`
	Layers []Layer    `yaml:"layers"`

	// dir resolves relative font paths.
	dir string
}

// View is a uniform scale followed by a translation. With FlipY the y
// axis points up in feature coordinates.
type View struct {
	Scale float64 `yaml:"scale"`
	DX    float64 `yaml:"dx"`
	DY    float64 `yaml:"dy"`
	FlipY bool    `yaml:"flip-y"`
}

// FontSpec names a font file, optionally registered under Family.
type FontSpec struct {
	File   string `yaml:"file"`
	Family string `yaml:"family"`
}

// Layer is a group of features drawn with the same symbolizers, in order.
type Layer struct {
	Name        string        `yaml:"name"`
	Symbolizers Symbolizers   `yaml:"symbolizers"`
	Features    []FeatureSpec `yaml:"features"`
}

// FeatureSpec is a feature as written in a scene file.
type FeatureSpec struct {
	ID         int64             `yaml:"id"`
	Attributes map[string]string `yaml:"attributes"`
	Geometry   GeometrySpec      `yaml:"geometry"`
}

// GeometrySpec decodes GeoJSON-like geometries: a type of point,
// multipoint, linestring, multilinestring, polygon or multipolygon and
// the matching nesting of coordinates.
type GeometrySpec struct {
	Geometries []symbolizer.Geometry
}

func defaultScene() *Scene {
	return &Scene{
		ScaleFactor: 1,
		Background:  white,
		View:        View{Scale: 1},
	}
}

// ParseScene decodes a scene from YAML.
func ParseScene(data []byte) (*Scene, error) {
	s := defaultScene()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("render: parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadScene reads a scene file. Relative font paths are resolved against
// the directory of the file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: load scene: %w", err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, err
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Validate reports scenes without a canvas or with non-positive scales.
func (s *Scene) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidScene, s.Width, s.Height)
	case s.ScaleFactor <= 0:
		return fmt.Errorf("%w: scale factor %g", ErrInvalidScene, s.ScaleFactor)
	case s.View.Scale <= 0:
		return fmt.Errorf("%w: view scale %g", ErrInvalidScene, s.View.Scale)
	case s.Buffer < 0:
		return fmt.Errorf("%w: buffer %g", ErrInvalidScene, s.Buffer)
	}
	return nil
}

// Extent returns the canvas box.
func (s *Scene) Extent() geom.Box {
	return geom.NewBox(0, 0, float64(s.Width), float64(s.Height))
}

// Matrix returns the transformation from feature coordinates to pixels.
func (s *Scene) Matrix() geom.Matrix {
	m := geom.Translate(s.View.DX, s.View.DY).Multiply(geom.Scale(s.View.Scale, s.View.Scale))
	if s.View.FlipY {
		m = geom.Translate(0, float64(s.Height)).Multiply(geom.Scale(1, -1)).Multiply(m)
	}
	return m
}

// LoadFonts registers the scene fonts with reg.
func (s *Scene) LoadFonts(reg *text.Registry) error {
	for _, f := range s.Fonts {
		path := f.File
		if !filepath.IsAbs(path) && s.dir != "" {
			path = filepath.Join(s.dir, path)
		}
		var opts []text.SourceOption
		if f.Family != "" {
			opts = append(opts, text.WithFamily(f.Family))
		}
		if _, err := reg.RegisterFile(path, opts...); err != nil {
			return fmt.Errorf("render: font %q: %w", f.File, err)
		}
	}
	return nil
}

// Feature converts f into a feature in feature coordinates.
func (f *FeatureSpec) Feature() *symbolizer.Feature {
	return &symbolizer.Feature{
		ID:         f.ID,
		Attributes: f.Attributes,
		Geometries: f.Geometry.Geometries,
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GeometrySpec) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Type        string    `yaml:"type"`
		Coordinates yaml.Node `yaml:"coordinates"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Coordinates.Kind == 0 {
		return fmt.Errorf("render: %s geometry (line %d): no coordinates", raw.Type, node.Line)
	}

	var err error
	switch strings.ToLower(raw.Type) {
	case "point":
		var c []float64
		if err = raw.Coordinates.Decode(&c); err == nil {
			var p geom.Point
			if p, err = toPoint(c); err == nil {
				g.Geometries = []symbolizer.Geometry{symbolizer.Point{Point: p}}
			}
		}
	case "multipoint":
		var c [][]float64
		if err = raw.Coordinates.Decode(&c); err == nil {
			var pts []geom.Point
			if pts, err = toPoints(c); err == nil {
				for _, p := range pts {
					g.Geometries = append(g.Geometries, symbolizer.Point{Point: p})
				}
			}
		}
	case "linestring":
		var c [][]float64
		if err = raw.Coordinates.Decode(&c); err == nil {
			var pts []geom.Point
			if pts, err = toPoints(c); err == nil {
				g.Geometries = []symbolizer.Geometry{symbolizer.LineString(pts)}
			}
		}
	case "multilinestring":
		var c [][][]float64
		if err = raw.Coordinates.Decode(&c); err == nil {
			for _, line := range c {
				var pts []geom.Point
				if pts, err = toPoints(line); err != nil {
					break
				}
				g.Geometries = append(g.Geometries, symbolizer.LineString(pts))
			}
		}
	case "polygon":
		var c [][][]float64
		if err = raw.Coordinates.Decode(&c); err == nil {
			var p symbolizer.Polygon
			if p, err = toPolygon(c); err == nil {
				g.Geometries = []symbolizer.Geometry{p}
			}
		}
	case "multipolygon":
		var c [][][][]float64
		if err = raw.Coordinates.Decode(&c); err == nil {
			for _, rings := range c {
				var p symbolizer.Polygon
				if p, err = toPolygon(rings); err != nil {
					break
				}
				g.Geometries = append(g.Geometries, p)
			}
		}
	default:
		return fmt.Errorf("%w %q (line %d)", ErrUnknownGeometry, raw.Type, node.Line)
	}
	if err != nil {
		return fmt.Errorf("render: %s geometry (line %d): %w", raw.Type, node.Line, err)
	}
	return nil
}

func toPoint(c []float64) (geom.Point, error) {
	if len(c) < 2 {
		return geom.Point{}, fmt.Errorf("coordinate %v needs x and y", c)
	}
	return geom.Pt(c[0], c[1]), nil
}

func toPoints(cs [][]float64) ([]geom.Point, error) {
	pts := make([]geom.Point, 0, len(cs))
	for _, c := range cs {
		p, err := toPoint(c)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func toPolygon(rings [][][]float64) (symbolizer.Polygon, error) {
	if len(rings) == 0 {
		return symbolizer.Polygon{}, errors.New("polygon without rings")
	}
	ext, err := toPoints(rings[0])
	if err != nil {
		return symbolizer.Polygon{}, err
	}
	p := symbolizer.Polygon{Exterior: ext}
	for _, r := range rings[1:] {
		hole, err := toPoints(r)
		if err != nil {
			return symbolizer.Polygon{}, err
		}
		p.Holes = append(p.Holes, hole)
	}
	return p, nil
}
