package glyphtext

import (
	"fmt"
)

// Config holds the construction-time settings of a Text overlay.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// Resource file names, relative to the resource directory.
	VertexShaderFile   string
	FragmentShaderFile string
	AtlasFile          string

	// Scale multiplies the on-screen glyph size.
	Scale float32

	// Glyph cell size in texels.
	CellWidth  int
	CellHeight int

	// Atlas texture size in texels. The atlas is raw RGBA, no header.
	AtlasWidth  int
	AtlasHeight int

	// Columns is the number of glyph cells per atlas row.
	Columns int
	// FirstCode is the character code stored in cell (0, 0).
	FirstCode int

	// GLSL names resolved after linking.
	PositionAttrib    string
	ColorAttrib       string
	TexCoordAttrib    string
	ProjectionUniform string
	SamplerUniform    string
}

// DefaultConfig returns the settings for the stock 8x16 ASCII atlas.
func DefaultConfig() Config {
	return Config{
		VertexShaderFile:   "font.vert",
		FragmentShaderFile: "font.frag",
		AtlasFile:          "font.raw",
		Scale:              1.0,
		CellWidth:          8,
		CellHeight:         16,
		AtlasWidth:         256,
		AtlasHeight:        48,
		Columns:            32,
		FirstCode:          32,
		PositionAttrib:     "a_v4Position",
		ColorAttrib:        "a_v4FontColor",
		TexCoordAttrib:     "a_v2TexCoord",
		ProjectionUniform:  "u_m4Projection",
		SamplerUniform:     "u_s2dTexture",
	}
}

// Option modifies a Config.
type Option func(*Config)

// WithScale sets the glyph scale factor.
func WithScale(scale float32) Option {
	return func(c *Config) { c.Scale = scale }
}

// WithCellSize sets the glyph cell size in texels.
func WithCellSize(width, height int) Option {
	return func(c *Config) {
		c.CellWidth = width
		c.CellHeight = height
	}
}

// WithAtlasSize sets the atlas texture size in texels.
func WithAtlasSize(width, height int) Option {
	return func(c *Config) {
		c.AtlasWidth = width
		c.AtlasHeight = height
	}
}

// WithColumns sets the number of glyph cells per atlas row.
func WithColumns(columns int) Option {
	return func(c *Config) { c.Columns = columns }
}

// WithFirstCode sets the character code of the first atlas cell.
func WithFirstCode(code int) Option {
	return func(c *Config) { c.FirstCode = code }
}

// WithFiles overrides the shader and atlas file names.
// Empty arguments keep the current value.
func WithFiles(vertexShader, fragmentShader, atlas string) Option {
	return func(c *Config) {
		if vertexShader != "" {
			c.VertexShaderFile = vertexShader
		}
		if fragmentShader != "" {
			c.FragmentShaderFile = fragmentShader
		}
		if atlas != "" {
			c.AtlasFile = atlas
		}
	}
}

// Apply returns a copy of c with opts applied in order.
func (c Config) Apply(opts ...Option) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Validate reports whether the configuration can describe a usable atlas.
func (c Config) Validate() error {
	switch {
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalidConfig, c.Scale)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalidConfig, c.CellWidth, c.CellHeight)
	case c.Columns <= 0:
		return fmt.Errorf("%w: columns %d", ErrInvalidConfig, c.Columns)
	case c.AtlasWidth < c.CellWidth || c.AtlasHeight < c.CellHeight:
		return fmt.Errorf("%w: atlas %dx%d smaller than one cell", ErrInvalidConfig, c.AtlasWidth, c.AtlasHeight)
	}

	names := map[string]string{
		"vertex shader file":   c.VertexShaderFile,
		"fragment shader file": c.FragmentShaderFile,
		"atlas file":           c.AtlasFile,
		"position attribute":   c.PositionAttrib,
		"color attribute":      c.ColorAttrib,
		"texcoord attribute":   c.TexCoordAttrib,
		"projection uniform":   c.ProjectionUniform,
		"sampler uniform":      c.SamplerUniform,
	}
	for what, name := range names {
		if name == "" {
			return fmt.Errorf("%w: empty %s", ErrInvalidConfig, what)
		}
	}
	return nil
}

// AtlasSize returns the exact byte length of the raw RGBA atlas.
func (c Config) AtlasSize() int {
	return c.AtlasWidth * c.AtlasHeight * 4
}

// Rows returns the number of full glyph rows in the atlas.
func (c Config) Rows() int {
	return c.AtlasHeight / c.CellHeight
}

// GlyphCount returns how many cells the atlas grid holds.
func (c Config) GlyphCount() int {
	return c.Columns * c.Rows()
}

// LineHeight returns the on-screen height of one line of text.
func (c Config) LineHeight() float32 {
	return float32(c.CellHeight) * c.Scale
}

// Advance returns the on-screen width of text, counting bytes up to
// the first NUL.
func (c Config) Advance(text string) float32 {
	return float32(glyphLen(text)*c.CellWidth) * c.Scale
}
