// Example shows a property panel driven by a propui.Frame.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Settings are read from propui.toml in the working directory when present.
// Double-clicking a numeric slider commits the number on the clipboard.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/propui"
	"github.com/go-theft-auto/propui/backend/opengl"
	"github.com/go-theft-auto/propui/config"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

// light is the data model edited by the panel. The panel never copies it.
type light struct {
	Enabled     bool
	Intensity   float32
	Range       float64
	Samples     int
	Mode        int
	ModeOpen    bool
	ShadowsOpen bool
	Shadows     bool
	Bias        float64
}

var modes = []string{"Point", "Spot", "Directional"}

func (l *light) build(a *propui.Arbiter) error {
	a.Label("Light")
	a.Checkbox("Enabled", propui.Bind(&l.Enabled))
	a.ScalarSlider("Intensity", 0, 1, propui.Bind(&l.Intensity))
	a.BoundedFloat("Range", 0, 100, propui.Bind(&l.Range))
	a.ComboBox("Mode", modes, propui.Bind(&l.Mode), propui.Bind(&l.ModeOpen))
	a.CollapsingContainer("Shadows", propui.Bind(&l.ShadowsOpen), func() {
		a.Checkbox("Cast shadows", propui.Bind(&l.Shadows))
		a.BoundedFloat("Bias", 0, 0.1, propui.Bind(&l.Bias))
		a.BoundedInt("Samples", 1, 16, propui.Bind(&l.Samples))
	})
	a.Button("Reset", func() { *l = defaultLight() })
	return nil
}

func defaultLight() light {
	return light{Enabled: true, Intensity: 0.8, Range: 25, Samples: 4, Bias: 0.005}
}

func main() {
	configPath := flag.String("config", "propui.toml", "settings file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Apply(); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	atlas := propui.NewFontAtlas(nil)
	w, h := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(w, h, atlas)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	model := defaultLight()
	dirty := true
	frame := propui.NewFrame(propui.Vec2{X: float32(w), Y: float32(h)}, model.build,
		propui.WithTextMeasurer(atlas),
		propui.WithRedrawRequest(func() { dirty = true }),
		propui.WithLogger(slog.Default()),
	)
	adapter := opengl.NewGLFWPointerAdapter(window, frame)
	frame.SetHost(opengl.ClipboardHost{}, adapter.ToHost)

	for !window.ShouldClose() {
		glfw.WaitEvents()
		if !dirty {
			continue
		}
		dirty = false

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := propui.AcquireDrawList(atlas)
		if err := frame.Draw(dl); err != nil {
			slog.Error("draw", "err", err)
		}
		err := renderer.Render(dl)
		propui.ReleaseDrawList(dl)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		window.SwapBuffers()
	}
	return nil
}
