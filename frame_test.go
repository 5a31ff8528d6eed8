package propui_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/propui"
	"github.com/go-theft-auto/propui/flex"
)

// recordCanvas is a Canvas that only remembers what was asked of it.
type recordCanvas struct {
	rects []propui.Rect
	texts []string
}

func (c *recordCanvas) MeasureText(text string) propui.Vec2 {
	return propui.DefaultMeasurer().MeasureText(text)
}

func (c *recordCanvas) FillRect(r propui.Rect, _ uint32, _ float32, _ propui.Corner) {
	c.rects = append(c.rects, r)
}

func (c *recordCanvas) FillConvexPoly(_ []propui.Vec2, _ uint32)              {}
func (c *recordCanvas) FillTriangle(_, _, _ propui.Vec2, _ uint32)            {}
func (c *recordCanvas) Polyline(_ []propui.Vec2, _ uint32, _ bool, _ float32) {}

func (c *recordCanvas) DrawText(_ propui.Vec2, text string, _ uint32) {
	c.texts = append(c.texts, text)
}

func (c *recordCanvas) hasText(s string) bool {
	for _, t := range c.texts {
		if t == s {
			return true
		}
	}
	return false
}

// fakeHost records numeric-edit requests and commits a fixed value.
type fakeHost struct {
	bounds propui.Rect
	value  float64
	commit float64
	calls  int
}

func (h *fakeHost) EditNumber(bounds propui.Rect, value float64, commit func(float64)) {
	h.calls++
	h.bounds = bounds
	h.value = value
	commit(h.commit)
}

func at(x, y float32) propui.PointerEvent {
	return propui.PointerEvent{Pos: propui.Vec2{X: x, Y: y}, Button: propui.MouseButtonLeft}
}

func click(f *propui.Frame, x, y float32) {
	f.OnMouseDown(at(x, y))
	f.OnMouseUp(at(x, y))
}

var frameSize = propui.Vec2{X: 300, Y: 200}

func TestCheckboxTogglesOnRelease(t *testing.T) {
	enabled := false
	var id propui.ID
	f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		id = a.Checkbox("Enable", propui.Bind(&enabled)).ID()
		return nil
	})

	// box is the first child of the row at the root's padding offset
	f.OnMouseDown(at(10, 10))
	if enabled {
		t.Fatal("checkbox toggled on press")
	}
	if f.Hover() != id {
		t.Fatalf("hover = %d, want checkbox %d", f.Hover(), id)
	}
	f.OnMouseUp(at(10, 10))
	if !enabled {
		t.Fatal("checkbox did not toggle on release")
	}

	click(f, 10, 10)
	if enabled {
		t.Fatal("second click should toggle back")
	}
}

func TestCheckboxReleaseElsewhereDoesNothing(t *testing.T) {
	enabled := false
	f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		a.Checkbox("Enable", propui.Bind(&enabled))
		return nil
	})

	f.OnMouseDown(at(10, 10))
	f.OnMouseMove(at(250, 150))
	f.OnMouseUp(at(250, 150))
	if enabled {
		t.Error("release off the checkbox should not toggle it")
	}
}

func TestLayoutInvalidation(t *testing.T) {
	redraws := 0
	f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		a.Label("static")
		return nil
	}, propui.WithRedrawRequest(func() { redraws++ }))

	if f.LayedOut() {
		t.Fatal("new frame should not be laid out")
	}
	if err := f.Draw(&recordCanvas{}); err != nil {
		t.Fatal(err)
	}
	if !f.LayedOut() || f.Passes() != 1 {
		t.Fatalf("after draw: laid out %v, passes %d", f.LayedOut(), f.Passes())
	}

	// empty area: hover moves from nothing to the frame root
	f.OnMouseMove(at(250, 150))
	if f.LayedOut() {
		t.Error("hover change should invalidate the layout")
	}
	if redraws != 1 {
		t.Errorf("redraws = %d, want 1", redraws)
	}
	_ = f.Draw(&recordCanvas{})

	f.OnMouseMove(at(251, 150))
	if !f.LayedOut() {
		t.Error("move with unchanged hover and no callback should keep the layout")
	}
	if redraws != 1 {
		t.Errorf("redraws = %d, want 1", redraws)
	}

	f.OnMouseDown(propui.PointerEvent{Pos: propui.Vec2{X: 251, Y: 150}, Button: propui.MouseButtonRight})
	if f.LayedOut() {
		t.Error("right press should invalidate the layout")
	}
	if redraws != 2 {
		t.Errorf("redraws = %d, want 2", redraws)
	}

	if err := f.Draw(&recordCanvas{}); err != nil {
		t.Fatal(err)
	}
	n := f.Passes()
	f.OnMouseDown(at(10, 8))
	if f.LayedOut() {
		t.Error("left press should invalidate the layout")
	}
	if err := f.Draw(&recordCanvas{}); err != nil {
		t.Fatal(err)
	}
	if f.Passes() != n+1 {
		t.Errorf("passes after left press = %d, want %d", f.Passes(), n+1)
	}
}

func TestComboOpenAndSelect(t *testing.T) {
	selected, open := 0, false
	items := []string{"A", "B", "C"}
	f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		a.ComboBox("Mode", items, propui.Bind(&selected), propui.Bind(&open))
		return nil
	})

	click(f, 50, 14)
	if !open {
		t.Fatal("clicking the box should open the list")
	}

	// list is anchored at the box's bottom-left (4, 25); rows are 17px high
	// below a 1px border, so row "B" spans y 43..60
	rec := &recordCanvas{}
	if err := f.Draw(rec); err != nil {
		t.Fatal(err)
	}
	if !rec.hasText("C") {
		t.Fatal("open list should draw its items")
	}

	click(f, 50, 50)
	if selected != 1 {
		t.Errorf("selected = %d, want 1", selected)
	}
	if open {
		t.Error("picking an item should close the list")
	}

	rec = &recordCanvas{}
	_ = f.Draw(rec)
	if rec.hasText("C") {
		t.Error("closed list should not be drawn")
	}
	if !rec.hasText("B") {
		t.Error("box should show the selected item")
	}
}

func TestComboRowsIdentifiedByIndex(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		start int
		y     float32
		want  int
	}{
		// rows start at y 26 below the box and its border, 17px each
		{"empty item", []string{"", "B"}, 1, 34, 0},
		{"duplicate items", []string{"A", "A"}, 0, 51, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected, open := tt.start, false
			f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
				a.ComboBox("Mode", tt.items, propui.Bind(&selected), propui.Bind(&open))
				return nil
			})

			click(f, 50, 14)
			if !open {
				t.Fatal("clicking the box should open the list")
			}
			click(f, 10, tt.y)
			if selected != tt.want {
				t.Errorf("selected = %d, want %d", selected, tt.want)
			}
			if open {
				t.Error("picking an item should close the list")
			}
		})
	}
}

func TestFloatSlidersStayWithinMax(t *testing.T) {
	offset, bias := -1.0, float32(-1)
	f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		a.BoundedFloat("Offset", -5, -0.3, propui.Bind(&offset))
		return nil
	})
	g := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		a.ScalarSlider("Bias", -5, -0.2, propui.Bind(&bias))
		return nil
	})

	// track spans x 4..154; the far end maps to fraction 1
	f.OnMouseDown(at(153, 10))
	if offset != -0.3 {
		t.Errorf("offset = %v, want -0.3", offset)
	}
	g.OnMouseDown(at(153, 10))
	if bias != -0.2 {
		t.Errorf("bias = %v, want -0.2", bias)
	}
}

func TestLaterRootWinsHitTest(t *testing.T) {
	var frameID, first, second propui.ID
	square := flex.Style{Width: flex.Px(50), Height: flex.Px(50)}
	f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		frameID = a.CurrentID()
		first = a.BeginRoot("first", propui.AtPosition(propui.Vec2{X: 10, Y: 10}), propui.WithRootStyle(square)).ID()
		a.EndRoot()
		second = a.BeginRoot("second", propui.AtPosition(propui.Vec2{X: 20, Y: 20}), propui.WithRootStyle(square)).ID()
		a.EndRoot()
		return nil
	})

	tests := []struct {
		x, y float32
		want *propui.ID
	}{
		{30, 30, &second},
		{15, 15, &first},
		{65, 65, &second},
		{5, 5, &frameID},
	}
	for _, tt := range tests {
		f.OnMouseMove(at(tt.x, tt.y))
		if f.Hover() != *tt.want {
			t.Errorf("hover at (%v, %v) = %d, want %d", tt.x, tt.y, f.Hover(), *tt.want)
		}
	}

	r, ok := f.FrameRect(second)
	if !ok || r != (propui.Rect{X: 20, Y: 20, W: 50, H: 50}) {
		t.Errorf("FrameRect(second) = %v, %v", r, ok)
	}
}

func TestIntSliderDrag(t *testing.T) {
	count := 0
	f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		a.BoundedInt("Count", 0, 10, propui.Bind(&count))
		return nil
	})

	// track spans x 4..154; the thumb is 150/11 wide, so x 79 is the midpoint
	f.OnMouseDown(at(79, 10))
	if count != 5 {
		t.Fatalf("count = %d, want 5", count)
	}
	f.OnMouseMove(at(150, 10))
	if count != 10 {
		t.Errorf("dragging past the end should clamp, got %d", count)
	}
	f.OnMouseUp(at(150, 10))
	f.OnMouseMove(at(4, 10))
	if count != 10 {
		t.Errorf("moving without the button held should not change the value, got %d", count)
	}
}

func TestDoubleClickOpensHostEditor(t *testing.T) {
	gain := 2.5
	host := &fakeHost{commit: 42.5}
	toHost := func(p propui.Vec2) propui.Vec2 { return propui.Vec2{X: p.X + 100, Y: p.Y + 200} }
	f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		a.BoundedFloat("Gain", 0, 10, propui.Bind(&gain))
		return nil
	}, propui.WithHost(host, toHost))

	f.OnDoubleClick(at(50, 10))
	if host.calls != 1 {
		t.Fatalf("host editor calls = %d, want 1", host.calls)
	}
	if host.value != 2.5 {
		t.Errorf("editor prefilled with %v, want 2.5", host.value)
	}
	if host.bounds.X != 104 || host.bounds.Y != 204 || host.bounds.W != 150 {
		t.Errorf("editor bounds = %v", host.bounds)
	}
	if gain != 10 {
		t.Errorf("committed value should clamp to 10, got %v", gain)
	}
}

func TestFailedPassKeepsPreviousLayout(t *testing.T) {
	errBoom := errors.New("boom")
	fail := false
	var label propui.ID
	f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		label = a.Label("kept").ID()
		if fail {
			a.BeginRow("half-built")
			return errBoom
		}
		return nil
	})
	if err := f.Draw(&recordCanvas{}); err != nil {
		t.Fatal(err)
	}

	fail = true
	f.InvalidateLayout()
	rec := &recordCanvas{}
	err := f.Draw(rec)
	if !errors.Is(err, propui.ErrLayoutFailed) || !errors.Is(err, errBoom) {
		t.Fatalf("Draw error = %v", err)
	}
	if !rec.hasText("kept") {
		t.Error("previous layout should still be drawn")
	}
	if _, ok := f.FrameRect(label); !ok {
		t.Error("previous layout should still resolve rectangles")
	}
	if f.LayedOut() {
		t.Error("failed pass should leave the layout invalid")
	}

	fail = false
	if err := f.Draw(&recordCanvas{}); err != nil {
		t.Fatal(err)
	}
	if !f.LayedOut() || f.Passes() != 2 {
		t.Errorf("recovered: laid out %v, passes %d", f.LayedOut(), f.Passes())
	}
}

func TestUnbalancedPassPanics(t *testing.T) {
	f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		a.BeginRow("never closed")
		return nil
	})
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, propui.ErrUnbalanced) {
			t.Errorf("recovered %v, want ErrUnbalanced", r)
		}
	}()
	_ = f.Draw(&recordCanvas{})
}

func TestMeasureAutoSizedFrame(t *testing.T) {
	f := propui.NewFrame(propui.Vec2{}, func(a *propui.Arbiter) error {
		a.Label("Hello")
		return nil
	})
	size, err := f.Measure()
	if err != nil {
		t.Fatal(err)
	}
	// 5 glyphs of 7px plus 4px padding on each side
	if size != (propui.Vec2{X: 43, Y: 21}) {
		t.Errorf("Measure = %v, want {43 21}", size)
	}
}

func TestResizeInvalidates(t *testing.T) {
	redraws := 0
	f := propui.NewFrame(frameSize, nil, propui.WithRedrawRequest(func() { redraws++ }))
	_ = f.Draw(&recordCanvas{})

	f.Resize(frameSize)
	if !f.LayedOut() || redraws != 0 {
		t.Error("resizing to the same size should be a no-op")
	}
	f.Resize(propui.Vec2{X: 400, Y: 300})
	if f.LayedOut() || redraws != 1 {
		t.Error("resize should invalidate and request a redraw")
	}
	size, _ := f.Measure()
	if size != (propui.Vec2{X: 400, Y: 300}) {
		t.Errorf("Measure after resize = %v", size)
	}
}

func TestCollapsingContainerToggles(t *testing.T) {
	open := false
	f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		a.CollapsingContainer("Advanced", propui.Bind(&open), func() {
			a.Label("secret")
		})
		return nil
	})

	rec := &recordCanvas{}
	_ = f.Draw(rec)
	if rec.hasText("secret") {
		t.Fatal("closed container drew its content")
	}

	// header row starts at the root padding
	click(f, 10, 10)
	if !open {
		t.Fatal("header click should open the container")
	}
	rec = &recordCanvas{}
	_ = f.Draw(rec)
	if !rec.hasText("secret") {
		t.Error("open container should draw its content")
	}
}

func TestButtonClicksOnRelease(t *testing.T) {
	clicks := 0
	f := propui.NewFrame(frameSize, func(a *propui.Arbiter) error {
		a.Button("Go", func() { clicks++ })
		return nil
	})

	f.OnMouseDown(at(10, 10))
	if clicks != 0 {
		t.Fatal("button fired on press")
	}
	f.OnMouseUp(at(10, 10))
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}

	click(f, 250, 150)
	if clicks != 1 {
		t.Errorf("click outside the button fired it, clicks = %d", clicks)
	}
}
