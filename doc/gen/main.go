// Command gen renders sample overlays in a hidden window, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go generate
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glyphtext"
	"github.com/go-theft-auto/glyphtext/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	resourceDir  = "resources"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single overlay screenshot to capture.
type screenshot struct {
	name   string                           // filename without extension
	width  int                              // viewport width
	height int                              // viewport height
	opts   []glyphtext.Option               // overlay options
	draw   func(text *glyphtext.Text) error // appends the overlay strings
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	// The hidden window is larger than every screenshot.
	window, err := opengl.NewWindow(windowWidth, windowHeight, "screenshot-gen", false)
	if err != nil {
		return err
	}
	defer window.Destroy()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(s screenshot, outDir string) error {
	// The projection is fixed per overlay, so each shot gets its own.
	text, err := opengl.NewText(resourceDir, s.width, s.height, s.opts...)
	if err != nil {
		return err
	}
	defer text.Delete()

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if err := s.draw(text); err != nil {
		return err
	}
	if err := text.Draw(); err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of overlay screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "charset", width: 300, height: 120,
			draw: func(text *glyphtext.Text) error {
				cfg := text.Config()
				y := 120 - 24
				for row := 0; row < cfg.Rows(); row++ {
					line := make([]byte, cfg.Columns)
					for col := range line {
						line[col] = byte(cfg.FirstCode + row*cfg.Columns + col)
					}
					if err := text.AddString(8, y, string(line), glyphtext.ColorWhite); err != nil {
						return err
					}
					y -= int(cfg.LineHeight())
				}
				return nil
			},
		},
		{
			name: "colors", width: 300, height: 100,
			draw: func(text *glyphtext.Text) error {
				colors := []glyphtext.Color{
					glyphtext.ColorRed, glyphtext.ColorGreen, glyphtext.ColorBlue,
					glyphtext.ColorYellow, glyphtext.ColorCyan, glyphtext.ColorMagenta,
				}
				x := 8
				for _, c := range colors {
					if err := text.AddString(x, 40, "Aa", c); err != nil {
						return err
					}
					x += int(text.Config().Advance("Aa "))
				}
				return nil
			},
		},
		{
			name: "scaled", width: 400, height: 120,
			opts: []glyphtext.Option{glyphtext.WithScale(3)},
			draw: func(text *glyphtext.Text) error {
				return text.AddString(8, 40, "Scale x3", glyphtext.ColorWhite)
			},
		},
	}
}
