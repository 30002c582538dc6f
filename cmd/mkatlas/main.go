// Command mkatlas bakes the raw RGBA glyph atlas loaded by glyphtext.
//
// Usage:
//
//	go run ./cmd/mkatlas -o resources/font.raw [-png atlas.png]
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/glyphtext"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	out := flag.String("o", "font.raw", "raw atlas output path")
	preview := flag.String("png", "", "optional PNG preview path")
	flag.Parse()

	cfg := glyphtext.DefaultConfig()
	raw, err := glyphtext.BakeAtlas(cfg, basicfont.Face7x13)
	if err != nil {
		return fmt.Errorf("bake atlas: %w", err)
	}

	if err := os.WriteFile(*out, raw, 0o644); err != nil {
		return fmt.Errorf("write atlas: %w", err)
	}
	fmt.Printf("%s (%dx%d, %d glyphs)\n", *out, cfg.AtlasWidth, cfg.AtlasHeight, cfg.GlyphCount())

	if *preview == "" {
		return nil
	}
	img, err := glyphtext.AtlasImage(raw, cfg)
	if err != nil {
		return err
	}
	f, err := os.Create(*preview)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
