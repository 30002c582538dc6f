package opengl

import (
	"github.com/go-theft-auto/glyphtext"
)

// NewText builds a Renderer from resourceDir and wraps it in a Text
// overlay for a width x height window.
func NewText(resourceDir string, width, height int, opts ...glyphtext.Option) (*glyphtext.Text, error) {
	cfg := glyphtext.DefaultConfig().Apply(opts...)

	r, err := NewRenderer(resourceDir, width, height, cfg)
	if err != nil {
		return nil, err
	}
	return glyphtext.New(r, opts...), nil
}
