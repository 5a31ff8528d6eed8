package propui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-theft-auto/propui/flex"
)

// ErrLayoutFailed wraps the error returned by a Frame's perform callback.
var ErrLayoutFailed = errors.New("propui: layout pass failed")

// LayoutFunc builds the frame's content. It runs inside the frame's top root
// every time the cached layout is missing. Returning an error aborts the pass;
// the frame then keeps using the previous layout.
type LayoutFunc func(a *Arbiter) error

// frameRootLabel names the root every pass starts with.
const frameRootLabel = "##frame"

// Frame is the session controller between a host control and the builder. It
// caches the layout of the last pass, routes pointer events to the hovered node
// and repaints from the cache.
//
// A Frame is single-threaded. All methods must be called from the host's UI
// thread; callbacks run synchronously inside them.
type Frame struct {
	size    Vec2
	perform LayoutFunc
	arbiter *Arbiter

	result *layoutResult
	valid  bool
	passes int

	hover    ID
	leftDown bool
	pointer  Vec2

	redraw func()
	host   HostControl
	toHost func(Vec2) Vec2
	log    *slog.Logger
}

// FrameOption configures a Frame.
type FrameOption func(*Frame)

// WithRedrawRequest sets the callback asking the host to repaint.
func WithRedrawRequest(fn func()) FrameOption {
	return func(f *Frame) { f.redraw = fn }
}

// WithTextMeasurer sets the measurer used while building. It should agree with
// the Canvas that will draw the frame.
func WithTextMeasurer(m TextMeasurer) FrameOption {
	return func(f *Frame) {
		if m != nil {
			f.arbiter.measurer = m
		}
	}
}

// WithHost sets the host control for numeric-edit popups and the mapping from
// frame to host coordinates.
func WithHost(h HostControl, toHost func(Vec2) Vec2) FrameOption {
	return func(f *Frame) { f.SetHost(h, toHost) }
}

// WithLogger sets the logger. The default is the package logger.
func WithLogger(l *slog.Logger) FrameOption {
	return func(f *Frame) { f.log = l }
}

// WithMetrics overrides the widget sizes.
func WithMetrics(m Metrics) FrameOption {
	return func(f *Frame) { f.arbiter.metrics = m }
}

// NewFrame creates a frame of the given size. A zero dimension is sized to
// content.
func NewFrame(size Vec2, perform LayoutFunc, opts ...FrameOption) *Frame {
	f := &Frame{
		size:    size,
		perform: perform,
		arbiter: NewArbiter(nil),
		log:     logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// LayedOut reports whether the cached layout is current.
func (f *Frame) LayedOut() bool { return f.valid }

// Passes returns the number of successful layout passes so far.
func (f *Frame) Passes() int { return f.passes }

// Hover returns the identity under the pointer, zero for none.
func (f *Frame) Hover() ID { return f.hover }

// Size returns the frame size.
func (f *Frame) Size() Vec2 { return f.size }

// InvalidateLayout discards the cached layout. The next draw, measure or event
// rebuilds it.
func (f *Frame) InvalidateLayout() {
	f.valid = false
}

// SetHost replaces the host control, see WithHost.
func (f *Frame) SetHost(h HostControl, toHost func(Vec2) Vec2) {
	f.host = h
	f.toHost = toHost
}

// Resize changes the frame size and invalidates the layout.
func (f *Frame) Resize(size Vec2) {
	if size == f.size {
		return
	}
	f.size = size
	f.InvalidateLayout()
	f.requestRedraw()
}

// FrameRect returns the absolute rectangle of id in the current (possibly stale)
// layout.
func (f *Frame) FrameRect(id ID) (Rect, bool) {
	if f.result == nil {
		return Rect{}, false
	}
	return f.result.FrameRect(id)
}

// Measure returns the size of the frame's top root, running a pass if needed.
func (f *Frame) Measure() (Vec2, error) {
	err := f.ensureLayout()
	if f.result == nil || len(f.result.roots) == 0 {
		return Vec2{}, err
	}
	r := f.result.absRect(f.result.roots[0])
	return Vec2{r.W, r.H}, err
}

// Draw paints the cached layout in order: roots in creation order, each
// breadth-first. If a new pass fails, the previous layout is drawn and the
// error is returned.
func (f *Frame) Draw(c Canvas) error {
	err := f.ensureLayout()
	if f.result == nil {
		return err
	}
	p := NewPainter(c)
	io := &IO{Hover: f.hover, LeftDown: f.leftDown, Pointer: f.pointer}
	for i := range f.result.entries {
		e := &f.result.entries[i]
		if e.draw == nil {
			continue
		}
		frame := f.result.absRect(i)
		e.draw(p, frame, frame.Inset(e.padding), e.id, io)
	}
	return err
}

func (f *Frame) requestRedraw() {
	if f.redraw != nil {
		f.redraw()
	}
}

// ensureLayout runs a pass when the cache is invalid. On failure the previous
// result stays in place and the cache stays invalid.
func (f *Frame) ensureLayout() error {
	if f.valid {
		return nil
	}
	res, err := f.runPass()
	if err != nil {
		f.log.Error("layout pass failed", "err", err, "pass", f.passes+1)
		return err
	}
	f.result = res
	f.valid = true
	f.passes++
	if verbose() {
		f.log.Debug("layout pass", "pass", f.passes, "entries", len(res.entries), "roots", len(res.roots))
	}
	return nil
}

func (f *Frame) runPass() (*layoutResult, error) {
	a := f.arbiter
	m := a.metrics
	a.Reset()

	style := flex.Style{
		Direction:  flex.Column,
		AlignItems: flex.AlignStart,
		Padding:    flex.Uniform(m.FramePadding),
		Gap:        m.ItemSpacing,
	}
	if f.size.X > 0 {
		style.Width = flex.Px(f.size.X)
	}
	if f.size.Y > 0 {
		style.Height = flex.Px(f.size.Y)
	}
	a.BeginRoot(frameRootLabel, WithRootStyle(style), WithRootDraw(func(p *Painter, frame, _ Rect, _ ID, _ *IO) {
		p.FillRect(frame, StyleColor(ColorPanelBg), 0, CornersNone)
	}))

	if f.perform != nil {
		if err := f.perform(a); err != nil {
			a.abort()
			return nil, fmt.Errorf("%w: %w", ErrLayoutFailed, err)
		}
	}
	a.EndRoot()
	a.Finish()
	return buildLayout(a, f.size), nil
}

type eventKind uint8

const (
	eventMove eventKind = iota
	eventDown
	eventUp
	eventDoubleClick
)

// OnMouseMove updates hover and lets the hovered node react to drags.
func (f *Frame) OnMouseMove(ev PointerEvent) { f.dispatch(eventMove, ev) }

// OnMouseDown dispatches a button press.
func (f *Frame) OnMouseDown(ev PointerEvent) { f.dispatch(eventDown, ev) }

// OnMouseUp dispatches a button release.
func (f *Frame) OnMouseUp(ev PointerEvent) { f.dispatch(eventUp, ev) }

// OnDoubleClick dispatches the second press of a double click. It behaves like
// a left press with IO.DoubleClick set and the host control available.
func (f *Frame) OnDoubleClick(ev PointerEvent) { f.dispatch(eventDoubleClick, ev) }

func (f *Frame) dispatch(kind eventKind, ev PointerEvent) {
	if err := f.ensureLayout(); err != nil && f.result == nil {
		return
	}
	f.pointer = ev.Pos

	prev := f.hover
	hit := -1
	if f.result != nil {
		hit = f.result.hitTest(ev.Pos)
	}
	f.hover = 0
	if hit >= 0 {
		f.hover = f.result.entries[hit].id
	}
	hoverChanged := f.hover != prev
	if hoverChanged && verbose() {
		f.log.Debug("hover changed", "from", uint64(prev), "to", uint64(f.hover))
	}

	io := &IO{Hover: f.hover, Pointer: ev.Pos}
	left := ev.Button == MouseButtonLeft
	switch kind {
	case eventDown:
		if left {
			f.leftDown = true
			io.LeftTransition = true
		} else if ev.Button == MouseButtonRight {
			io.RightDown = true
		}
	case eventUp:
		if left {
			f.leftDown = false
			io.LeftTransition = true
		}
	case eventDoubleClick:
		f.leftDown = true
		io.LeftTransition = true
		io.DoubleClick = true
		io.Host = f.host
		io.ToHost = f.toHost
	}
	io.LeftDown = f.leftDown

	ran := false
	if hit >= 0 {
		e := &f.result.entries[hit]
		if e.input != nil {
			frame := f.result.absRect(hit)
			e.input(frame, frame.Inset(e.padding), e.id, io)
			ran = true
		}
	}

	if kind != eventMove || ran || hoverChanged {
		f.InvalidateLayout()
		f.requestRedraw()
	}
}
