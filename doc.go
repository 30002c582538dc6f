/*
Package glyphtext draws screen-space text overlays from a fixed-layout
bitmap font atlas.

# Overview

The atlas is a single raw RGBA texture holding a monospace grid of
glyph cells, one per character code starting at space. Strings are
appended to a batch of quads; the whole batch draws as one triangle
strip, with degenerate triangles joining consecutive glyphs.

There is no layout engine: no wrapping, kerning or Unicode. Each byte of
a string is one glyph, and a string ends at its first NUL byte. Codes
outside the atlas grid produce texture coordinates outside [0, 1].

# Quick Start

	// Setup, on the thread owning the GL context.
	text, err := opengl.NewText("resources", 800, 600)
	if err != nil {
	    return err
	}
	defer text.Delete()

	// Per frame
	text.Clear()
	text.AddString(10, 570, "Hello", glyphtext.ColorWhite)
	text.AddString(10, 550, fmt.Sprintf("frame %d", n), glyphtext.ColorYellow)
	if err := text.Draw(); err != nil {
	    return err
	}

# Resources

A resource directory holds three files, named by Config:

	font.vert   vertex shader source
	font.frag   fragment shader source
	font.raw    AtlasWidth*AtlasHeight*4 bytes of RGBA, no header

The default config expects a 256x48 atlas of 8x16 cells, 32 per row.
Run "go generate" to bake resources/font.raw from the basic 7x13 face.

# Coordinates

Positions are window pixels with the origin at the bottom-left corner,
matching the fixed orthographic projection built from the window size.
The projection is not rebuilt when the window is resized.

# Threading

All calls must come from the goroutine locked to the thread that owns
the GL context.
*/
package glyphtext

//go:generate go run ./cmd/mkatlas -o resources/font.raw
