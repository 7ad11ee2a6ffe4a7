package symbolizer

import "errors"

// ErrNoGeometry is returned for a feature without any geometry that can
// carry a label.
var ErrNoGeometry = errors.New("symbolizer: feature has no geometry")
