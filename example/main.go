// Example draws a text overlay with a live frame counter.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go generate               # bake resources/font.raw
//	go run ./example/         # run this example
//
// Press Escape to quit.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glyphtext"
	"github.com/go-theft-auto/glyphtext/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "glyphtext example"
	resourceDir  = "resources"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.NewWindow(windowWidth, windowHeight, windowTitle, true)
	if err != nil {
		return err
	}
	glfw.SwapInterval(1) // vsync
	opengl.CloseOnEscape(window)

	text, err := opengl.NewText(resourceDir, windowWidth, windowHeight, glyphtext.WithScale(2))
	if err != nil {
		return fmt.Errorf("text overlay: %w", err)
	}
	defer text.Delete()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	cfg := text.Config()
	lineHeight := int(cfg.LineHeight())
	start := time.Now()
	frames := 0

	for !window.ShouldClose() {
		glfw.PollEvents()

		gl.Viewport(0, 0, windowWidth, windowHeight)
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		elapsed := time.Since(start).Seconds()
		fps := 0.0
		if elapsed > 0 {
			fps = float64(frames) / elapsed
		}

		// The overlay is rebuilt every frame.
		text.Clear()
		y := windowHeight - lineHeight - 8
		lines := []struct {
			s string
			c glyphtext.Color
		}{
			{"glyphtext example", glyphtext.ColorWhite},
			{fmt.Sprintf("frame %d", frames), glyphtext.ColorYellow},
			{fmt.Sprintf("%.1f fps", fps), glyphtext.ColorGreen},
			{"press Escape to quit", glyphtext.RGBA(160, 160, 170, 255)},
		}
		for _, l := range lines {
			if err := text.AddString(8, y, l.s, l.c); err != nil {
				return err
			}
			y -= lineHeight
		}

		// Two appends continuing on one line.
		label := "status: "
		if err := text.AddString(8, y, label, glyphtext.ColorCyan); err != nil {
			return err
		}
		if err := text.AddString(8+int(cfg.Advance(label)), y, "ok", glyphtext.ColorGreen); err != nil {
			return err
		}

		if err := text.Draw(); err != nil {
			return fmt.Errorf("text draw: %w", err)
		}

		window.SwapBuffers()
		frames++
	}

	return nil
}
