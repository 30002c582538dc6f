package glyphtext

import (
	"fmt"
	"slices"
)

// Per-glyph array strides.
const (
	cornersPerGlyph = 4
	positionStride  = 3 * cornersPerGlyph
	texCoordStride  = 2 * cornersPerGlyph
	colorStride     = 4 * cornersPerGlyph
	indicesPerGlyph = 6
)

// MaxGlyphs is the largest batch whose corners fit 16-bit indices.
const MaxGlyphs = (1 << 16) / cornersPerGlyph

// Batch accumulates glyph quads as four parallel arrays, drawn as a
// single triangle strip. Consecutive quads are joined by degenerate
// triangles, so the index list has 6N-2 entries for N glyphs.
//
// The arrays always describe the same number of glyphs. Indices depend
// only on that count, never on which glyphs were added.
type Batch struct {
	Positions []float32 // x, y, z per corner
	TexCoords []float32 // u, v per corner
	Colors    []float32 // r, g, b, a per corner
	Indices   []uint16  // Triangle strip over all corners

	glyphs int
}

// Len returns the number of glyphs in the batch.
func (b *Batch) Len() int {
	return b.glyphs
}

// IndexCount returns the number of strip indices, max(0, 6N-2).
func (b *Batch) IndexCount() int {
	return len(b.Indices)
}

// Reset empties the batch and releases its arrays. Safe to call on an
// empty batch.
func (b *Batch) Reset() {
	b.Positions = nil
	b.TexCoords = nil
	b.Colors = nil
	b.Indices = nil
	b.glyphs = 0
}

// AddString appends one quad per byte of text, stopping at the first NUL.
// The first quad's bottom-left corner is (x, y); each following quad
// advances by CellWidth*Scale. Nothing is appended if the batch would
// exceed MaxGlyphs.
func (b *Batch) AddString(cfg Config, x, y float32, text string, c Color) error {
	n := glyphLen(text)
	if n == 0 {
		return nil
	}
	if b.glyphs+n > MaxGlyphs {
		return fmt.Errorf("%w: %d + %d glyphs exceeds %d", ErrBatchFull, b.glyphs, n, MaxGlyphs)
	}

	b.grow(n)

	advance := float32(cfg.CellWidth) * cfg.Scale
	height := float32(cfg.CellHeight) * cfg.Scale
	rgba := c.Normalized()

	for i := 0; i < n; i++ {
		x0 := x + float32(i)*advance
		x1 := x + float32(i+1)*advance
		y1 := y + height

		b.Positions = append(b.Positions,
			x0, y, 0,
			x1, y, 0,
			x0, y1, 0,
			x1, y1, 0,
		)

		uv := cfg.TexCoordsFor(text[i])
		b.TexCoords = append(b.TexCoords, uv[:]...)

		for corner := 0; corner < cornersPerGlyph; corner++ {
			b.Colors = append(b.Colors, rgba[:]...)
		}

		b.addIndices()
	}
	return nil
}

// addIndices emits the strip indices for the glyph being added and
// advances the glyph count.
func (b *Batch) addIndices() {
	base := uint16(b.glyphs * cornersPerGlyph)
	if b.glyphs == 0 {
		b.Indices = append(b.Indices, 0, 1, 2, 3)
	} else {
		// Repeat the previous corner and this quad's first corner to
		// bridge the two quads with zero-area triangles.
		b.Indices = append(b.Indices, base-1, base, base, base+1, base+2, base+3)
	}
	b.glyphs++
}

// grow reserves room for n more glyphs.
func (b *Batch) grow(n int) {
	b.Positions = slices.Grow(b.Positions, n*positionStride)
	b.TexCoords = slices.Grow(b.TexCoords, n*texCoordStride)
	b.Colors = slices.Grow(b.Colors, n*colorStride)
	b.Indices = slices.Grow(b.Indices, n*indicesPerGlyph)
}
