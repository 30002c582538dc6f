package glyphtext

// CellFor returns the atlas cell holding code. Codes below FirstCode, or
// past the last row, map to cells outside the grid; they are not clamped.
func (c Config) CellFor(code byte) Cell {
	index := int(code) - c.FirstCode
	return Cell{Col: index % c.Columns, Row: index / c.Columns}
}

// InGrid reports whether cell lies inside the atlas grid.
func (c Config) InGrid(cell Cell) bool {
	return cell.Col >= 0 && cell.Col < c.Columns &&
		cell.Row >= 0 && cell.Row < c.Rows()
}

// TexelRectFor returns the texel rectangle of the glyph for code.
func (c Config) TexelRectFor(code byte) TexelRect {
	cell := c.CellFor(code)
	x := cell.Col * c.CellWidth
	y := cell.Row * c.CellHeight
	return TexelRect{X0: x, Y0: y, X1: x + c.CellWidth, Y1: y + c.CellHeight}
}

// TexCoordsFor returns normalized (u, v) pairs for the four quad corners
// in vertex order: bottom-left, bottom-right, top-left, top-right.
// The atlas is stored bottom-up, so the bottom corners sample the
// rectangle's Y1 edge.
func (c Config) TexCoordsFor(code byte) [8]float32 {
	r := c.TexelRectFor(code)
	w := float32(c.AtlasWidth)
	h := float32(c.AtlasHeight)

	u0, u1 := float32(r.X0)/w, float32(r.X1)/w
	v0, v1 := float32(r.Y0)/h, float32(r.Y1)/h

	return [8]float32{
		u0, v1,
		u1, v1,
		u0, v0,
		u1, v0,
	}
}

// glyphLen returns the number of glyphs text produces: its bytes up to
// the first NUL.
func glyphLen(text string) int {
	for i := 0; i < len(text); i++ {
		if text[i] == 0 {
			return i
		}
	}
	return len(text)
}
