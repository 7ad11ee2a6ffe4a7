package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is returned when no face is registered for a family.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrNoFonts is returned when a lookup is made on an empty registry.
	ErrNoFonts = errors.New("text: no fonts registered")

	// ErrUnsupportedFontType is returned when outlines cannot be extracted
	// from a face.
	ErrUnsupportedFontType = errors.New("text: unsupported font type for outline extraction")
)
