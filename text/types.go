package text

import (
	"fmt"
	"strings"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Hinting specifies font hinting mode.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// HAlign positions a text block horizontally relative to its anchor.
type HAlign int

const (
	// HAlignAuto picks Left, Middle or Right from the sign of the
	// horizontal displacement.
	HAlignAuto HAlign = iota
	// HAlignLeft puts the block to the left of the anchor.
	HAlignLeft
	// HAlignMiddle centers the block on the anchor.
	HAlignMiddle
	// HAlignRight puts the block to the right of the anchor.
	HAlignRight
	// HAlignAdjust stretches character spacing on line placements so the
	// longest line fills the path.
	HAlignAdjust
)

var hAlignNames = []string{"auto", "left", "middle", "right", "adjust"}

func (a HAlign) String() string { return enumString(hAlignNames, int(a)) }

// UnmarshalText parses "left", "middle" (or "center"), "right", "auto" and "adjust".
func (a *HAlign) UnmarshalText(b []byte) error {
	v, err := parseEnum("horizontal alignment", hAlignNames, string(b))
	*a = HAlign(v)
	return err
}

// VAlign positions a text block vertically relative to its anchor.
type VAlign int

const (
	// VAlignAuto picks Top, Middle or Bottom from the sign of the vertical
	// displacement.
	VAlignAuto VAlign = iota
	// VAlignTop puts the block above the anchor.
	VAlignTop
	// VAlignMiddle centers the block on the anchor.
	VAlignMiddle
	// VAlignBottom puts the block below the anchor.
	VAlignBottom
)

var vAlignNames = []string{"auto", "top", "middle", "bottom"}

func (a VAlign) String() string { return enumString(vAlignNames, int(a)) }

// UnmarshalText parses "top", "middle" (or "center"), "bottom" and "auto".
func (a *VAlign) UnmarshalText(b []byte) error {
	v, err := parseEnum("vertical alignment", vAlignNames, string(b))
	*a = VAlign(v)
	return err
}

// JAlign justifies the lines of a block against each other.
type JAlign int

const (
	// JAlignAuto justifies towards the anchor: left for blocks displaced to
	// the right and vice versa.
	JAlignAuto JAlign = iota
	// JAlignLeft aligns the left edges of all lines.
	JAlignLeft
	// JAlignMiddle centers every line.
	JAlignMiddle
	// JAlignRight aligns the right edges of all lines.
	JAlignRight
)

var jAlignNames = []string{"auto", "left", "middle", "right"}

func (a JAlign) String() string { return enumString(jAlignNames, int(a)) }

// UnmarshalText parses "left", "middle" (or "center"), "right" and "auto".
func (a *JAlign) UnmarshalText(b []byte) error {
	v, err := parseEnum("justify alignment", jAlignNames, string(b))
	*a = JAlign(v)
	return err
}

func enumString(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return unknownStr
	}
	return names[v]
}

func parseEnum(what string, names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "center" {
		s = "middle"
	}
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("text: unknown %s %q", what, s)
}
