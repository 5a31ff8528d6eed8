package opengl

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/propui"
)

// Double-click thresholds. GLFW reports single presses only.
const (
	doubleClickTime     = 0.4 // seconds
	doubleClickDistance = 4   // pixels
)

// PointerSink receives pointer events in frame coordinates. *propui.Frame
// implements it.
type PointerSink interface {
	OnMouseMove(ev propui.PointerEvent)
	OnMouseDown(ev propui.PointerEvent)
	OnMouseUp(ev propui.PointerEvent)
	OnDoubleClick(ev propui.PointerEvent)
	Resize(size propui.Vec2)
}

// GLFWPointerAdapter forwards GLFW cursor, button and size callbacks to a sink.
// The frame is drawn at Origin inside the window.
type GLFWPointerAdapter struct {
	window *glfw.Window
	sink   PointerSink
	Origin propui.Vec2

	lastPress    float64
	lastPressPos propui.Vec2
}

// NewGLFWPointerAdapter installs the callbacks on window.
func NewGLFWPointerAdapter(window *glfw.Window, sink PointerSink) *GLFWPointerAdapter {
	adapter := &GLFWPointerAdapter{
		window:    window,
		sink:      sink,
		lastPress: -1,
	}
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetFramebufferSizeCallback(adapter.framebufferSizeCallback)
	return adapter
}

// ToHost maps frame coordinates to window coordinates.
func (a *GLFWPointerAdapter) ToHost(p propui.Vec2) propui.Vec2 {
	return p.Add(a.Origin)
}

func (a *GLFWPointerAdapter) toFrame(x, y float64) propui.Vec2 {
	return propui.Vec2{X: float32(x), Y: float32(y)}.Sub(a.Origin)
}

func (a *GLFWPointerAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButtonToPropui(button)
	if !ok {
		return
	}
	ev := propui.PointerEvent{Pos: a.toFrame(w.GetCursorPos()), Button: b}

	switch action {
	case glfw.Press:
		if b == propui.MouseButtonLeft {
			now := glfw.GetTime()
			if isDoubleClick(a.lastPress, a.lastPressPos, now, ev.Pos) {
				a.lastPress = -1
				a.sink.OnDoubleClick(ev)
				return
			}
			a.lastPress, a.lastPressPos = now, ev.Pos
		}
		a.sink.OnMouseDown(ev)
	case glfw.Release:
		a.sink.OnMouseUp(ev)
	}
}

func (a *GLFWPointerAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.sink.OnMouseMove(propui.PointerEvent{Pos: a.toFrame(xpos, ypos)})
}

func (a *GLFWPointerAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	a.sink.Resize(propui.Vec2{X: float32(width), Y: float32(height)}.Sub(a.Origin))
}

// isDoubleClick reports whether a press at now/pos completes a double click
// started by the press at prev/prevPos. A negative prev means none.
func isDoubleClick(prev float64, prevPos propui.Vec2, now float64, pos propui.Vec2) bool {
	if prev < 0 || now-prev > doubleClickTime {
		return false
	}
	d := pos.Sub(prevPos)
	return d.X*d.X+d.Y*d.Y <= doubleClickDistance*doubleClickDistance
}

// glfwMouseButtonToPropui maps GLFW mouse buttons to propui buttons.
func glfwMouseButtonToPropui(button glfw.MouseButton) (propui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return propui.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return propui.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return propui.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

// ClipboardHost is a propui.HostControl without native edit boxes: a numeric
// edit commits the number currently on the clipboard.
type ClipboardHost struct {
	Log *slog.Logger
}

// EditNumber implements propui.HostControl.
func (h ClipboardHost) EditNumber(bounds propui.Rect, value float64, commit func(float64)) {
	log := h.Log
	if log == nil {
		log = slog.Default()
	}
	text := strings.TrimSpace(glfw.GetClipboardString())
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		log.Warn("clipboard does not hold a number", "text", text, "current", value)
		return
	}
	log.Debug("numeric edit from clipboard", "value", v, "bounds", bounds)
	commit(v)
}
