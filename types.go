package glyphtext

// Color is an 8-bit per channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	ColorWhite       = Color{255, 255, 255, 255}
	ColorBlack       = Color{0, 0, 0, 255}
	ColorRed         = Color{255, 0, 0, 255}
	ColorGreen       = Color{0, 255, 0, 255}
	ColorBlue        = Color{0, 0, 255, 255}
	ColorYellow      = Color{255, 255, 0, 255}
	ColorCyan        = Color{0, 255, 255, 255}
	ColorMagenta     = Color{255, 0, 255, 255}
	ColorGray        = Color{128, 128, 128, 255}
	ColorTransparent = Color{}
)

// RGBA creates a color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Normalized returns the color as floats in [0, 1].
func (c Color) Normalized() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// Cell addresses a glyph cell in the atlas grid.
type Cell struct {
	Col, Row int
}

// TexelRect is a rectangle in atlas texels, X1 and Y1 exclusive.
type TexelRect struct {
	X0, Y0 int
	X1, Y1 int
}
