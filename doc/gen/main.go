// Command gen renders every widget with sample data, captures framebuffer pixels,
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
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

	"github.com/go-theft-auto/propui"
	"github.com/go-theft-auto/propui/backend/opengl"
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

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                  // filename without extension
	width  int                     // viewport width
	height int                     // viewport height
	build  propui.LayoutFunc       // frame content
	events []func(f *propui.Frame) // pointer events replayed before capture
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	atlas := propui.NewFontAtlas(nil)
	renderer, err := opengl.NewRenderer(800, 600, atlas)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, atlas, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, atlas *propui.FontAtlas, s screenshot, outDir string) error {
	// The hidden window stays at 800x600 (larger than every screenshot); only
	// the projection changes.
	renderer.Resize(s.width, s.height)

	frame := propui.NewFrame(propui.Vec2{X: float32(s.width), Y: float32(s.height)}, s.build,
		propui.WithTextMeasurer(atlas))
	for _, ev := range s.events {
		ev(frame)
	}

	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	dl := propui.AcquireDrawList(atlas)
	defer propui.ReleaseDrawList(dl)
	if err := frame.Draw(dl); err != nil {
		return err
	}
	if err := renderer.Render(dl); err != nil {
		return err
	}

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

func hover(x, y float32) func(f *propui.Frame) {
	return func(f *propui.Frame) {
		f.OnMouseMove(propui.PointerEvent{Pos: propui.Vec2{X: x, Y: y}})
	}
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	var (
		checked     = true
		unchecked   = false
		intensity   = float32(0.65)
		distance    = 42.5
		samples     = 6
		mode        = 1
		modeOpen    = true
		closedCombo = false
		sectionOpen = true
		nested      = false
	)
	modes := []string{"Point", "Spot", "Directional"}

	return []screenshot{
		{
			name: "checkbox", width: 200, height: 50,
			build: func(a *propui.Arbiter) error {
				a.Checkbox("Enabled", propui.Bind(&checked))
				a.Checkbox("Disabled", propui.Bind(&unchecked))
				return nil
			},
		},
		{
			name: "button", width: 160, height: 40,
			build: func(a *propui.Arbiter) error {
				a.Button("Apply", nil)
				return nil
			},
			events: []func(*propui.Frame){hover(20, 12)},
		},
		{
			name: "sliders", width: 300, height: 70,
			build: func(a *propui.Arbiter) error {
				a.ScalarSlider("Intensity", 0, 1, propui.Bind(&intensity))
				a.BoundedFloat("Distance", 0, 100, propui.Bind(&distance))
				a.BoundedInt("Samples", 1, 16, propui.Bind(&samples))
				return nil
			},
		},
		{
			name: "combo_closed", width: 260, height: 40,
			build: func(a *propui.Arbiter) error {
				a.ComboBox("Mode", modes, propui.Bind(&mode), propui.Bind(&closedCombo))
				return nil
			},
		},
		{
			name: "combo_open", width: 260, height: 110,
			build: func(a *propui.Arbiter) error {
				a.ComboBox("Mode", modes, propui.Bind(&mode), propui.Bind(&modeOpen))
				return nil
			},
			events: []func(*propui.Frame){hover(40, 50)},
		},
		{
			name: "collapsing", width: 300, height: 120,
			build: func(a *propui.Arbiter) error {
				a.CollapsingContainer("Shadows", propui.Bind(&sectionOpen), func() {
					a.Checkbox("Cast shadows", propui.Bind(&checked))
					a.CollapsingContainer("Advanced", propui.Bind(&nested), nil)
				})
				return nil
			},
		},
	}
}
