package placement

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/text"
)

// Direction is a compass position of a label relative to its anchor.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	NorthEast
	SouthEast
	NorthWest
	SouthWest
	// Exact keeps the configured displacement.
	Exact
)

var directionNames = []string{"N", "E", "S", "W", "NE", "SE", "NW", "SW", "X"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// UnmarshalText parses the compass abbreviations N, E, S, W, NE, SE, NW,
// SW and X.
func (d *Direction) UnmarshalText(b []byte) error {
	s := strings.ToUpper(strings.TrimSpace(string(b)))
	for i, n := range directionNames {
		if n == s {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// displacement returns the displacement for d given the configured one.
// Compass positions use the magnitude of each component.
func (d Direction) displacement(dx, dy float64) geom.Point {
	dx, dy = math.Abs(dx), math.Abs(dy)
	switch d {
	case North:
		return geom.Pt(0, -dy)
	case East:
		return geom.Pt(dx, 0)
	case South:
		return geom.Pt(0, dy)
	case West:
		return geom.Pt(-dx, 0)
	case NorthEast:
		return geom.Pt(dx, -dy)
	case SouthEast:
		return geom.Pt(dx, dy)
	case NorthWest:
		return geom.Pt(-dx, -dy)
	case SouthWest:
		return geom.Pt(-dx, dy)
	default:
		return geom.Pt(0, 0)
	}
}

// SimpleVariants returns one variant of base per direction at the base
// size, followed by the same directions for every fallback size.
// Compass directions reset the alignments to automatic so the block
// extends away from the anchor.
func SimpleVariants(base Properties, dirs []Direction, sizes []float64) []Properties {
	if len(dirs) == 0 {
		dirs = []Direction{Exact}
	}
	all := append([]float64{base.Format.Size}, sizes...)
	out := make([]Properties, 0, len(dirs)*len(all))
	for _, size := range all {
		for _, d := range dirs {
			v := base
			v.Format.Size = size
			if d != Exact {
				disp := d.displacement(base.Layout.DX, base.Layout.DY)
				v.Layout.DX, v.Layout.DY = disp.X, disp.Y
				v.Layout.HAlign = text.HAlignAuto
				v.Layout.VAlign = text.VAlignAuto
				v.Layout.JAlign = text.JAlignAuto
			}
			out = append(out, v)
		}
	}
	return out
}

// ParseSimple parses a comma separated list of directions followed by
// fallback sizes, for example "N,S,E,W,12,10", and returns the variants
// of base it describes.
func ParseSimple(base Properties, list string) ([]Properties, error) {
	var (
		dirs  []Direction
		sizes []float64
	)
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if size, err := strconv.ParseFloat(field, 64); err == nil {
			sizes = append(sizes, size)
			continue
		}
		if len(sizes) > 0 {
			return nil, fmt.Errorf("%w: %q after sizes", ErrUnknownDirection, field)
		}
		var d Direction
		if err := d.UnmarshalText([]byte(field)); err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return SimpleVariants(base, dirs, sizes), nil
}
