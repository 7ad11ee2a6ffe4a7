// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render runs labelling passes over scenes and draws previews of
// the result.
//
// # Scenes
//
// A Scene is read from YAML with LoadScene or ParseScene. It names the
// canvas, the fonts to register and layers of features. Each layer lists
// symbolizers in drawing order:
//
//   - text: labels placed by the placement package
//   - shield: text together with a marker box
//   - line, polygon: geometry drawn in previews only
//
// Text expressions substitute "[attribute]" with the attribute of the
// feature being labelled.
//
// # Passes
//
// A Pass owns the collision detector shared by every symbolizer it runs.
// Labels are placed in layer order, then feature order, then symbolizer
// order, and earlier labels win:
//
//	scene, err := render.LoadScene("map.yaml")
//	if err != nil {
//	    return err
//	}
//	reg := text.NewRegistry()
//	if err := scene.LoadFonts(reg); err != nil {
//	    return err
//	}
//	pass := render.NewPassForScene(scene,
//	    render.WithShaper(text.NewGoTextShaper(reg)))
//	placements, err := pass.Render(scene)
//
// A configuration error in one feature drops the labels of that feature
// and is logged at warn level; the rest of the pass is unaffected.
//
// # Previews
//
// Preview draws a scene and its placements into a PixmapTarget with an
// anti-aliased rasterizer from golang.org/x/image/vector:
//
//	target := render.NewPixmapTarget(scene.Width, scene.Height)
//	render.NewPreview().Draw(target, scene, placements)
//	err = target.SavePNG("map.png")
package render
