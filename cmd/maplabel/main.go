// Command maplabel places the labels of a scene file and writes a preview.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/render"
	"github.com/gogpu/maplabel/text"
)

func main() {
	var (
		scenePath = flag.String("scene", "scene.yaml", "scene file")
		output    = flag.String("output", "labels.png", "output file")
		shaper    = flag.String("shaper", "gotext", "text shaper: gotext, builtin or fixed")
		boxes     = flag.Bool("boxes", false, "outline the collision boxes of every label")
		verbose   = flag.Bool("v", false, "log placement decisions")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	maplabel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	scene, err := render.LoadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	reg := text.NewRegistry()
	// Go Regular is the fallback for scenes without fonts.
	if _, err := reg.RegisterData(goregular.TTF); err != nil {
		log.Fatalf("Failed to load default font: %v", err)
	}
	if err := scene.LoadFonts(reg); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	s, err := newShaper(*shaper, reg)
	if err != nil {
		log.Fatal(err)
	}

	pass := render.NewPassForScene(scene, render.WithShaper(s))
	placements, err := pass.Render(scene)
	if err != nil {
		log.Fatalf("Failed to place labels: %v", err)
	}

	var opts []render.PreviewOption
	if *boxes {
		opts = append(opts, render.WithBoxes(render.Color{R: 0xff, A: 0xc0}))
	}
	target := render.NewPixmapTarget(scene.Width, scene.Height)
	render.NewPreview(opts...).Draw(target, scene, placements)
	if err := target.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Placed %d labels, saved to %s (%dx%d)\n", len(placements), *output, scene.Width, scene.Height)
}

func newShaper(name string, reg *text.Registry) (text.Shaper, error) {
	switch name {
	case "gotext":
		return text.NewCachedShaper(text.NewGoTextShaper(reg), 256), nil
	case "builtin":
		return text.NewCachedShaper(text.NewBuiltinShaper(reg), 256), nil
	case "fixed":
		return text.FixedShaper{}, nil
	default:
		return nil, fmt.Errorf("unknown shaper %q", name)
	}
}
