package placement

import "errors"

// Sentinel errors for configuration values. Both abort the label of a
// single feature, never the whole render pass.
var (
	// ErrUnknownPlacement is returned for an unrecognized placement type.
	ErrUnknownPlacement = errors.New("placement: unknown placement")

	// ErrUnknownUpright is returned for an unrecognized upright mode.
	ErrUnknownUpright = errors.New("placement: unknown upright mode")

	// ErrUnknownDirection is returned for an unrecognized compass position
	// in a simple placement list.
	ErrUnknownDirection = errors.New("placement: unknown direction")
)
