package propui

import "github.com/go-theft-auto/propui/flex"

// Button adds a framed text button. onClick runs on release over the button.
func (a *Arbiter) Button(label string, onClick func()) Handle {
	m := a.metrics
	h := a.BeginContainer(label, flex.Style{
		Direction:  flex.Row,
		AlignItems: flex.AlignCenter,
		Padding:    flex.Symmetric(m.FramePadding*2, m.FramePadding),
	})
	h.OnDraw(func(p *Painter, frame, _ Rect, id ID, io *IO) {
		_, held, _ := ButtonBehavior(id, io)
		bg := StyleColor(ColorButton)
		switch {
		case held:
			bg = StyleColor(ColorButtonActive)
		case io.Hovered(id):
			bg = StyleColor(ColorButtonHovered)
		}
		p.FillRect(frame, bg, m.Rounding, CornersAll)
	})
	h.OnInput(func(_, _ Rect, id ID, io *IO) {
		if _, _, pressed := ButtonBehavior(id, io); pressed && onClick != nil {
			onClick()
		}
	})
	a.text("", label, ColorText)
	a.EndContainer()
	return h
}

// Checkbox adds a check box followed by its label. Clicking anywhere on the row
// toggles value.
func (a *Arbiter) Checkbox(label string, value Binding[bool]) Handle {
	m := a.metrics
	h := a.BeginContainer(label, flex.Style{
		Direction:  flex.Row,
		AlignItems: flex.AlignCenter,
		Gap:        m.ItemSpacing,
	})
	id := h.ID()
	h.OnInput(func(_, _ Rect, id ID, io *IO) {
		if _, _, pressed := ButtonBehavior(id, io); pressed {
			value.Set(!value.Get())
		}
	})

	a.Leaf("", fixedSize(m.CheckboxSize, m.CheckboxSize), func(p *Painter, frame, _ Rect, _ ID, io *IO) {
		_, held, _ := ButtonBehavior(id, io)
		bg := StyleColor(ColorFrameBg)
		switch {
		case held:
			bg = StyleColor(ColorFrameBgActive)
		case io.Hovered(id):
			bg = StyleColor(ColorFrameBgHovered)
		}
		p.FillRect(frame, bg, m.Rounding, CornersAll)
		p.PathRect(frame, m.Rounding, CornersAll)
		p.PathStroke(StyleColor(ColorBorder), true, m.BorderSize)
		if value.Get() {
			drawCheckMark(p, frame, StyleColor(ColorCheckMark))
		}
	}, nil)
	a.text("", label, ColorText)
	a.EndContainer()
	return h
}

func drawCheckMark(p *Painter, r Rect, color uint32) {
	pad := maxf(1, r.W/6)
	sz := r.W - pad*2
	thickness := maxf(sz/5, 1)
	third := sz / 3
	bx := r.X + pad + third
	by := r.Y + r.H - pad - third/2
	p.PathLineTo(Vec2{bx - third, by - third})
	p.PathLineTo(Vec2{bx, by})
	p.PathLineTo(Vec2{bx + third*2, by - third*2})
	p.PathStroke(color, false, thickness)
}
