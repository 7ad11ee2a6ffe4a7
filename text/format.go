package text

import "github.com/gogpu/maplabel/geom"

// Format selects the font and spacing of label text.
type Format struct {
	// Face is a font name understood by Registry.Source; empty selects
	// the default font.
	Face string `yaml:"face-name"`

	// Size is the font size in pixels per em.
	Size float64 `yaml:"size"`

	// CharacterSpacing is extra space added between clusters.
	CharacterSpacing float64 `yaml:"character-spacing"`

	// LineSpacing is extra space added to every line height.
	LineSpacing float64 `yaml:"line-spacing"`
}

// DefaultFormat returns a 10px format in the default font.
func DefaultFormat() Format {
	return Format{Size: 10}
}

// Scaled returns f with all lengths multiplied by s.
func (f Format) Scaled(s float64) Format {
	f.Size *= s
	f.CharacterSpacing *= s
	f.LineSpacing *= s
	return f
}

// LayoutProperties controls how a text block is positioned around its
// anchor.
type LayoutProperties struct {
	// DX and DY displace the block from the anchor. Positive DY moves down.
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`

	// Orientation rotates point labels, in degrees clockwise on screen.
	Orientation float64 `yaml:"orientation"`

	HAlign HAlign `yaml:"horizontal-alignment"`
	VAlign VAlign `yaml:"vertical-alignment"`
	JAlign JAlign `yaml:"justify-alignment"`

	// WrapWidth breaks lines at spaces once they grow wider than this.
	// Zero disables wrapping.
	WrapWidth float64 `yaml:"wrap-width"`

	// RotateDisplacement rotates the displacement together with the text.
	RotateDisplacement bool `yaml:"rotate-displacement"`
}

// Displacement returns the configured displacement as a vector.
func (p LayoutProperties) Displacement() geom.Point {
	return geom.Pt(p.DX, p.DY)
}
