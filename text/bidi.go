package text

import "golang.org/x/text/unicode/bidi"

// BaseDirection returns the paragraph direction of s as defined by rules
// P2 and P3 of the Unicode bidirectional algorithm: the direction of the
// first strong character, or left-to-right when there is none.
func BaseDirection(s string) Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	return DirectionLTR
}
