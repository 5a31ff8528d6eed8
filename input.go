package propui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// PointerEvent is one raw pointer event from the host, in frame coordinates.
type PointerEvent struct {
	Pos    Vec2
	Button MouseButton
}

// HostControl is the native control hosting the frame. It is only needed for the
// auxiliary numeric-edit popup opened by double-clicking a bounded editor.
type HostControl interface {
	// EditNumber shows a numeric editor over bounds (host coordinates) prefilled
	// with value. commit is called at most once with the accepted number.
	EditNumber(bounds Rect, value float64, commit func(float64))
}

// IO is the input snapshot handed to draw and input callbacks. A fresh IO is
// built for every dispatch and every draw.
type IO struct {
	Hover          ID   // node under the pointer
	LeftDown       bool // left button currently held
	LeftTransition bool // true exactly on the left press or release edge
	RightDown      bool // right button pressed by this event
	DoubleClick    bool
	Pointer        Vec2

	// Host and ToHost are set only for double-click dispatches.
	Host   HostControl
	ToHost func(Vec2) Vec2
}

// Hovered reports whether id is under the pointer.
func (io *IO) Hovered(id ID) bool {
	return id != 0 && io.Hover == id
}

// ButtonBehavior is the press logic shared by every clickable widget.
// A click registers on the release edge while still hovering the target, so
// dragging off and back on never fires twice.
func ButtonBehavior(id ID, io *IO) (hovered, held, pressed bool) {
	hovered = io.Hovered(id)
	held = hovered && io.LeftDown
	pressed = hovered && !io.LeftDown && io.LeftTransition
	return hovered, held, pressed
}

// Binding is a get/set accessor pair for state owned by the caller's data model.
// The toolkit never keeps widget state of its own.
type Binding[T any] struct {
	Get func() T
	Set func(T)
}

// Bind returns a Binding backed by a variable.
func Bind[T any](v *T) Binding[T] {
	return Binding[T]{
		Get: func() T { return *v },
		Set: func(x T) { *v = x },
	}
}
