// Package maplabel places map labels without collisions.
//
// # Overview
//
// maplabel decides where the text and shield labels of map features may be
// drawn. Labels are laid out from shaped glyphs, tried at candidate points
// or along paths, and accepted only if their glyph boxes do not collide
// with labels placed earlier in the same render pass.
//
// # Quick Start
//
//	scene, err := render.LoadScene("scene.yaml")
//	if err != nil {
//		return err
//	}
//	reg := text.NewRegistry()
//	if _, err := reg.RegisterData(goregular.TTF); err != nil {
//		return err
//	}
//
//	pass := render.NewPassForScene(scene, render.WithShaper(text.NewGoTextShaper(reg)))
//	placements, err := pass.Render(scene)
//
// # Architecture
//
// The library is organized leaf to root:
//   - geom: points, boxes, rotations, paths, clipping
//   - collision: quad-tree label collision detector
//   - vertexcache: arc-length cursor over paths
//   - text: fonts, shaping, lines and layouts
//   - placement: the placement finder state machine
//   - symbolizer: per-feature text and shield helpers
//   - render: render pass driver, YAML scenes, previews
//
// # Coordinate System
//
// All placement happens in device space:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise on screen
//
// # Logging
//
// maplabel is silent by default. See SetLogger.
package maplabel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
