package propui

import "github.com/go-theft-auto/propui/flex"

// CollapsingContainer adds a header that shows or hides body. body is only run
// while open, so a closed container builds no content nodes at all.
//
//	a.CollapsingContainer("Advanced", propui.Bind(&advancedOpen), func() {
//	    a.BoundedInt("Samples", 1, 16, propui.Bind(&samples))
//	})
func (a *Arbiter) CollapsingContainer(label string, open Binding[bool], body func()) Handle {
	h, isOpen := a.beginCollapsing(label, open)
	if isOpen {
		if body != nil {
			body()
		}
		a.EndCollapsingContainer()
	}
	return h
}

// BeginCollapsingContainer opens a collapsing container, returning its handle and
// whether its content should be built. EndCollapsingContainer must be called
// only if it returned true.
//
//	if _, open := a.BeginCollapsingContainer("Advanced", propui.Bind(&advancedOpen)); open {
//	    a.Label("Content")
//	    a.EndCollapsingContainer()
//	}
func (a *Arbiter) BeginCollapsingContainer(label string, open Binding[bool]) (Handle, bool) {
	return a.beginCollapsing(label, open)
}

// EndCollapsingContainer closes the content column and the container.
func (a *Arbiter) EndCollapsingContainer() {
	a.EndContainer()
	a.EndContainer()
}

func (a *Arbiter) beginCollapsing(label string, open Binding[bool]) (Handle, bool) {
	m := a.metrics
	outer := a.BeginContainer(label, flex.Style{
		Direction:  flex.Column,
		AlignItems: flex.AlignStretch,
		Gap:        m.ItemSpacing,
	})

	header := a.BeginContainer("##header", flex.Style{
		Direction:  flex.Row,
		AlignItems: flex.AlignCenter,
		Gap:        m.ItemSpacing,
		Padding:    flex.Uniform(m.FramePadding),
	})
	header.OnDraw(func(p *Painter, frame, _ Rect, id ID, io *IO) {
		bg := StyleColor(ColorHeader)
		if io.Hovered(id) {
			bg = StyleColor(ColorHeaderHovered)
		}
		p.FillRect(frame, bg, m.Rounding, CornersAll)
	})
	header.OnInput(func(_, _ Rect, id ID, io *IO) {
		if _, _, pressed := ButtonBehavior(id, io); pressed {
			open.Set(!open.Get())
		}
	})

	a.Leaf("", fixedSize(m.ArrowSize, m.ArrowSize), func(p *Painter, frame, _ Rect, _ ID, _ *IO) {
		drawDisclosureArrow(p, frame, open.Get(), StyleColor(ColorArrow))
	}, nil)
	a.text("", label, ColorText)
	a.EndContainer()

	isOpen := open.Get()
	if !isOpen {
		a.EndContainer()
		return outer, false
	}
	a.BeginContainer("##content", flex.Style{
		Direction:  flex.Column,
		AlignItems: flex.AlignStart,
		Gap:        m.ItemSpacing,
		Padding:    flex.Edges{Left: m.IndentWidth},
	})
	return outer, true
}

// drawDisclosureArrow draws a right-pointing triangle when closed and a
// down-pointing one when open.
func drawDisclosureArrow(p *Painter, r Rect, open bool, color uint32) {
	if open {
		p.FillTriangle(Vec2{r.X, r.Y + r.H/4}, Vec2{r.X + r.W, r.Y + r.H/4}, Vec2{r.X + r.W/2, r.Y + r.H*3/4}, color)
		return
	}
	p.FillTriangle(Vec2{r.X + r.W/4, r.Y}, Vec2{r.X + r.W*3/4, r.Y + r.H/2}, Vec2{r.X + r.W/4, r.Y + r.H}, color)
}
