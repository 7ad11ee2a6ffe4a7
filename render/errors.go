// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

var (
	// ErrUnknownSymbolizer is returned for symbolizer kinds the pass cannot
	// place.
	ErrUnknownSymbolizer = errors.New("render: unknown symbolizer")

	// ErrUnknownGeometry is returned for geometry types a scene cannot
	// describe.
	ErrUnknownGeometry = errors.New("render: unknown geometry type")

	// ErrInvalidScene is returned when a scene has no usable canvas.
	ErrInvalidScene = errors.New("render: invalid scene")
)
