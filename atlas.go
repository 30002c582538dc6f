package glyphtext

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// LoadAtlas reads a raw RGBA atlas. The file must be exactly
// cfg.AtlasSize bytes; it carries no header.
func LoadAtlas(path string, cfg Config) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load atlas: %w", err)
	}
	if len(data) != cfg.AtlasSize() {
		return nil, fmt.Errorf("load atlas %s: %w: got %d bytes, want %d",
			path, ErrAtlasSize, len(data), cfg.AtlasSize())
	}

	Logger().Debug("glyphtext: atlas loaded", "path", path, "bytes", len(data))
	return data, nil
}

// AtlasImage wraps raw atlas bytes as an image without copying.
func AtlasImage(raw []byte, cfg Config) (*image.RGBA, error) {
	if len(raw) != cfg.AtlasSize() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrAtlasSize, len(raw), cfg.AtlasSize())
	}
	return &image.RGBA{
		Pix:    raw,
		Stride: cfg.AtlasWidth * 4,
		Rect:   image.Rect(0, 0, cfg.AtlasWidth, cfg.AtlasHeight),
	}, nil
}

// BakeAtlas renders the glyphs from FirstCode onwards into the atlas
// grid, white on transparent, each centred in its cell. The result is
// in the raw layout LoadAtlas expects.
func BakeAtlas(cfg Config, face font.Face) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.AtlasWidth, cfg.AtlasHeight))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	top := (cfg.CellHeight - height) / 2

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}

	for i := 0; i < cfg.GlyphCount(); i++ {
		code := cfg.FirstCode + i
		if code > 0xFF {
			break
		}
		r := rune(code)
		if code >= 0x7F && code < 0xA0 {
			// C1 controls have no glyph.
			continue
		}

		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}

		cell := cfg.CellFor(byte(code))
		x := cell.Col*cfg.CellWidth + (cfg.CellWidth-adv.Round())/2
		y := cell.Row*cfg.CellHeight + top + ascent

		d.Dot = fixed.P(x, y)
		d.DrawString(string(r))
	}

	Logger().Debug("glyphtext: atlas baked", "glyphs", cfg.GlyphCount())
	return img.Pix, nil
}
