// Package placement decides where label text may be drawn.
//
// A Finder lays out the label text of one feature, tries candidate
// positions (points, or positions along a path) and commits the first
// that collides with nothing already placed. Accepted placements reserve
// their glyph boxes in a shared collision.Detector and are returned as
// GlyphPositions for rasterization.
//
// Lengths in Properties are in unscaled pixels; a Finder multiplies them
// by its scale factor.
package placement

import (
	"fmt"
	"strings"

	"github.com/gogpu/maplabel/text"
)

// Placement selects how anchor points are derived from a geometry.
type Placement int

const (
	// Point places one label at the centroid of polygons and the middle
	// of lines.
	Point Placement = iota
	// Line places labels along line and polygon outlines.
	Line
	// Vertex tries every vertex of the geometry.
	Vertex
	// Interior uses a point guaranteed to lie inside polygons.
	Interior
)

var placementNames = []string{"point", "line", "vertex", "interior"}

func (p Placement) String() string {
	if p < 0 || int(p) >= len(placementNames) {
		return "unknown"
	}
	return placementNames[p]
}

// UnmarshalText parses "point", "line", "vertex" and "interior".
func (p *Placement) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for i, n := range placementNames {
		if n == s {
			*p = Placement(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownPlacement, s)
}

// Upright controls the reading direction of text along paths.
type Upright int

const (
	// UprightAuto reads in the direction that keeps most glyphs upright.
	UprightAuto Upright = iota
	// UprightAutoDown prefers the reading direction that puts text
	// upside down.
	UprightAutoDown
	// UprightLeft always reads against the path direction.
	UprightLeft
	// UprightRight always reads along the path direction.
	UprightRight
	// UprightLeftOnly reads against the path and fails if most glyphs end
	// up upside down.
	UprightLeftOnly
	// UprightRightOnly reads along the path and fails if most glyphs end
	// up upside down.
	UprightRightOnly
)

var uprightNames = []string{"auto", "auto-down", "left", "right", "left-only", "right-only"}

func (u Upright) String() string {
	if u < 0 || int(u) >= len(uprightNames) {
		return "unknown"
	}
	return uprightNames[u]
}

// UnmarshalText parses the upright names, for example "auto" or "left-only".
func (u *Upright) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	s = strings.ReplaceAll(s, "_", "-")
	for i, n := range uprightNames {
		if n == s {
			*u = Upright(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownUpright, s)
}

// Properties is the complete configuration of one label variant.
type Properties struct {
	// Text is the label text after attribute substitution.
	Text string `yaml:"text"`

	Format text.Format           `yaml:",inline"`
	Layout text.LayoutProperties `yaml:",inline"`

	Placement Placement `yaml:"placement"`

	// Spacing is the distance between repeated labels along a path.
	// Zero places one label per path.
	Spacing float64 `yaml:"spacing"`

	// LabelPositionTolerance is how far along the path a label may move
	// from its regular position to avoid a collision. Zero means half the
	// spacing.
	LabelPositionTolerance float64 `yaml:"label-position-tolerance"`

	// AvoidEdges rejects labels that are not fully inside the canvas.
	AvoidEdges bool `yaml:"avoid-edges"`

	// AllowOverlap skips the collision test.
	AllowOverlap bool `yaml:"allow-overlap"`

	// Margin is the free space required around a label.
	Margin float64 `yaml:"margin"`

	// RepeatDistance is the minimum distance to labels with the same text.
	RepeatDistance float64 `yaml:"repeat-distance"`

	// MinimumDistance is the fallback for Margin on point labels and for
	// RepeatDistance on line labels.
	MinimumDistance float64 `yaml:"minimum-distance"`

	// MinimumPadding requires labels to stay this far inside the canvas.
	MinimumPadding float64 `yaml:"minimum-padding"`

	// MinimumPathLength skips paths shorter than this.
	MinimumPathLength float64 `yaml:"minimum-path-length"`

	// MaxCharAngleDelta is the largest allowed angle between neighbouring
	// clusters of a line label, in degrees. Zero disables the test.
	MaxCharAngleDelta float64 `yaml:"max-char-angle-delta"`

	// LargestBBoxOnly labels only the largest polygon of a multi-polygon.
	LargestBBoxOnly bool `yaml:"largest-bbox-only"`

	Upright Upright `yaml:"upright"`

	// Clip clips line geometries to the canvas before line placement.
	Clip bool `yaml:"clip"`
}

// DefaultProperties returns the properties used when a symbolizer sets
// nothing.
func DefaultProperties() Properties {
	return Properties{
		Format:            text.DefaultFormat(),
		Placement:         Point,
		MaxCharAngleDelta: 22.5,
		LargestBBoxOnly:   true,
		Upright:           UprightAuto,
	}
}
