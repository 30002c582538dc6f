package glyphtext

// Renderer draws a Batch. Implementations own the GPU objects.
type Renderer interface {
	// Render draws every glyph in b with a single draw call.
	Render(b *Batch) error
	// Delete releases the renderer's GPU resources.
	Delete()
}

// Text is a screen-space text overlay. Strings are appended to a batch
// which is drawn in one call and cleared between independent overlays.
//
// A Text must be used from the goroutine that owns the GL context.
type Text struct {
	renderer Renderer
	cfg      Config
	batch    Batch
}

// New creates a Text that draws through renderer.
// Options must match those the renderer was built with.
func New(renderer Renderer, opts ...Option) *Text {
	return &Text{
		renderer: renderer,
		cfg:      DefaultConfig().Apply(opts...),
	}
}

// Config returns the overlay configuration.
func (t *Text) Config() Config {
	return t.cfg
}

// Batch returns the pending glyph batch. It must not be modified.
func (t *Text) Batch() *Batch {
	return &t.batch
}

// Len returns the number of glyphs waiting to be drawn.
func (t *Text) Len() int {
	return t.batch.Len()
}

// AddString queues text with its first glyph's bottom-left corner at
// (x, y) in window pixels, origin bottom-left.
func (t *Text) AddString(x, y int, text string, c Color) error {
	return t.batch.AddString(t.cfg, float32(x), float32(y), text, c)
}

// Draw renders every glyph added since the last Clear. Drawing an empty
// batch does nothing.
func (t *Text) Draw() error {
	if t.renderer == nil {
		Logger().Warn("glyphtext: draw refused", "reason", "no renderer")
		return ErrNotReady
	}
	if t.batch.Len() == 0 {
		return nil
	}
	return t.renderer.Render(&t.batch)
}

// Clear drops all queued glyphs.
func (t *Text) Clear() {
	if t.batch.Len() > 0 {
		Logger().Debug("glyphtext: batch reset", "glyphs", t.batch.Len())
	}
	t.batch.Reset()
}

// Delete clears the batch and releases the renderer. The Text must not
// be drawn afterwards; further Delete calls are no-ops.
func (t *Text) Delete() {
	t.Clear()
	if t.renderer != nil {
		t.renderer.Delete()
		t.renderer = nil
	}
}
