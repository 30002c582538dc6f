// Package opengl provides an OpenGL 4.1 core backend for glyphtext.
package opengl

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glyphtext"
)

// Renderer draws glyph batches with a dedicated shader program and atlas
// texture. The zero value is not ready; Render reports ErrNotReady.
type Renderer struct {
	cfg     glyphtext.Config
	program uint32
	texture uint32
	vao     uint32

	// One stream buffer per attribute, refilled on every draw.
	positionVBO uint32
	colorVBO    uint32
	texCoordVBO uint32
	ebo         uint32

	loc        locations
	projection mgl32.Mat4
}

// NewRenderer compiles the text program from resourceDir and uploads the
// glyph atlas. The projection is fixed to a width x height window with
// its origin at the bottom-left. It must be called with a current GL
// context, and leaves the text program in use and texture unit 0 active.
func NewRenderer(resourceDir string, width, height int, cfg glyphtext.Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vertexSource, err := readShaderSource(resourceDir, cfg.VertexShaderFile)
	if err != nil {
		return nil, err
	}
	fragmentSource, err := readShaderSource(resourceDir, cfg.FragmentShaderFile)
	if err != nil {
		return nil, err
	}
	atlas, err := glyphtext.LoadAtlas(filepath.Join(resourceDir, cfg.AtlasFile), cfg)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:        cfg,
		loc:        unresolvedLocations(),
		projection: mgl32.Ortho(0, float32(width), 0, float32(height), 0, 1),
	}

	r.program, err = createShaderProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	glyphtext.Logger().Debug("glyphtext: program linked", "program", r.program, "dir", resourceDir)

	r.loc, err = resolveLocations(cfg,
		func(name string) int32 { return gl.GetAttribLocation(r.program, gl.Str(name+"\x00")) },
		func(name string) int32 { return gl.GetUniformLocation(r.program, gl.Str(name+"\x00")) },
	)
	if err != nil {
		r.Delete()
		return nil, err
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.loc.projection, 1, false, &r.projection[0])
	gl.Uniform1i(r.loc.sampler, 0)

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.positionVBO)
	gl.GenBuffers(1, &r.colorVBO)
	gl.GenBuffers(1, &r.texCoordVBO)
	gl.GenBuffers(1, &r.ebo)

	r.texture = createAtlasTexture(cfg, atlas)

	return r, nil
}

// createAtlasTexture uploads the raw RGBA atlas on texture unit 0.
func createAtlasTexture(cfg glyphtext.Config, data []byte) uint32 {
	var tex uint32
	gl.ActiveTexture(gl.TEXTURE0)
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(cfg.AtlasWidth), int32(cfg.AtlasHeight),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))
	return tex
}

// Ready reports whether the renderer was fully initialized.
func (r *Renderer) Ready() bool {
	return r.program != 0 && r.loc.resolved()
}

// TextureID returns the OpenGL texture ID of the glyph atlas.
func (r *Renderer) TextureID() uint32 {
	return r.texture
}

// Projection returns the fixed orthographic projection.
func (r *Renderer) Projection() mgl32.Mat4 {
	return r.projection
}

// Render draws b as one triangle strip. The caller's vertex array,
// array buffer and program bindings are restored afterwards.
func (r *Renderer) Render(b *glyphtext.Batch) error {
	if !r.Ready() {
		glyphtext.Logger().Warn("glyphtext: draw refused", "reason", "renderer not initialized")
		return glyphtext.ErrNotReady
	}
	if b == nil || b.Len() == 0 {
		return nil
	}

	// Save GL state
	var lastVertexArray, lastArrayBuffer, lastProgram int32
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &lastVertexArray)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &lastArrayBuffer)
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)

	streamAttrib(r.positionVBO, r.loc.position, 3, b.Positions)
	streamAttrib(r.colorVBO, r.loc.color, 4, b.Colors)
	streamAttrib(r.texCoordVBO, r.loc.texCoord, 2, b.TexCoords)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*2, gl.Ptr(b.Indices), gl.STREAM_DRAW)

	gl.UniformMatrix4fv(r.loc.projection, 1, false, &r.projection[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)

	gl.DrawElementsWithOffset(gl.TRIANGLE_STRIP, int32(b.IndexCount()), gl.UNSIGNED_SHORT, 0)

	gl.DisableVertexAttribArray(uint32(r.loc.color))
	gl.DisableVertexAttribArray(uint32(r.loc.texCoord))
	gl.DisableVertexAttribArray(uint32(r.loc.position))

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BindVertexArray(uint32(lastVertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(lastArrayBuffer))

	return nil
}

// streamAttrib refills vbo with data and points attribute loc at it.
func streamAttrib(vbo uint32, loc int32, size int32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STREAM_DRAW)
	gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(uint32(loc))
}

// Delete releases OpenGL resources. It is safe to call more than once.
func (r *Renderer) Delete() {
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
	}
	for _, buf := range []*uint32{&r.ebo, &r.texCoordVBO, &r.colorVBO, &r.positionVBO} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
		}
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}

	*r = Renderer{cfg: r.cfg, loc: unresolvedLocations()}
}

var _ glyphtext.Renderer = (*Renderer)(nil)
