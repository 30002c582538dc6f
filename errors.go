package glyphtext

import "errors"

var (
	// ErrInvalidConfig is returned when a Config cannot describe an atlas.
	ErrInvalidConfig = errors.New("glyphtext: invalid config")

	// ErrAtlasSize is returned when the raw atlas file is not exactly
	// Config.AtlasSize bytes long.
	ErrAtlasSize = errors.New("glyphtext: atlas size mismatch")

	// ErrLocationNotFound is returned when a shader attribute or uniform
	// cannot be resolved after linking.
	ErrLocationNotFound = errors.New("glyphtext: shader location not found")

	// ErrNotReady is returned when drawing with a renderer that was never
	// initialized.
	ErrNotReady = errors.New("glyphtext: renderer not initialized")

	// ErrBatchFull is returned when an append would overflow 16-bit indices.
	ErrBatchFull = errors.New("glyphtext: batch full")
)
