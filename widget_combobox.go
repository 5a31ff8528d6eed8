package propui

import (
	"strconv"

	"github.com/go-theft-auto/propui/flex"
)

// ComboBox adds a dropdown selector. The open flag is owned by the caller, one
// per combo instance; clicking the box toggles it and picking an item closes it.
//
// The list is a hovering root anchored below the box, so it draws over and takes
// hits before everything built earlier in the pass.
//
//	a.ComboBox("Quality", []string{"Low", "Medium", "High"}, propui.Bind(&quality), propui.Bind(&qualityOpen))
func (a *Arbiter) ComboBox(label string, items []string, selected Binding[int], open Binding[bool]) Handle {
	m := a.metrics
	row := a.BeginContainer(label, flex.Style{
		Direction:  flex.Row,
		AlignItems: flex.AlignCenter,
		Gap:        m.ItemSpacing,
	})

	lineH := a.measurer.MeasureText("M").Y
	boxH := lineH + m.FramePadding*2
	boxW := m.ComboWidth
	for _, item := range items {
		if w := a.measurer.MeasureText(item).X + m.FramePadding*3 + m.ArrowSize; w > boxW {
			boxW = w
		}
	}

	current := func() string {
		i := selected.Get()
		if i < 0 || i >= len(items) {
			return ""
		}
		return items[i]
	}

	box := a.Leaf("##combo", fixedSize(boxW, boxH),
		func(p *Painter, frame, _ Rect, id ID, io *IO) {
			isOpen := open.Get()
			bg := StyleColor(ColorButton)
			if isOpen || io.Hovered(id) {
				bg = StyleColor(ColorButtonHovered)
			}
			corners := CornersAll
			if isOpen {
				corners = CornersTop
			}
			p.FillRect(frame, bg, m.Rounding, corners)
			p.PathRect(frame, m.Rounding, corners)
			p.PathStroke(StyleColor(ColorBorder), true, m.BorderSize)
			p.DrawText(Vec2{frame.X + m.FramePadding, frame.Y + (frame.H-lineH)/2}, current(), StyleColor(ColorText))

			ax := frame.X + frame.W - m.FramePadding - m.ArrowSize
			ay := frame.Y + frame.H/2
			s := m.ArrowSize
			if isOpen {
				p.FillTriangle(Vec2{ax + s/2, ay - s/4}, Vec2{ax, ay + s/4}, Vec2{ax + s, ay + s/4}, StyleColor(ColorArrow))
			} else {
				p.FillTriangle(Vec2{ax + s/2, ay + s/4}, Vec2{ax + s, ay - s/4}, Vec2{ax, ay - s/4}, StyleColor(ColorArrow))
			}
		},
		func(_, _ Rect, id ID, io *IO) {
			if _, _, pressed := ButtonBehavior(id, io); pressed {
				open.Set(!open.Get())
			}
		})

	if open.Get() {
		boxID := box.ID()
		a.BeginHoveringContainer("##popup", func(r Resolver) Vec2 {
			if rect, ok := r.FrameRect(boxID); ok {
				return rect.BottomLeft()
			}
			return Vec2{}
		}).Style(func(s *flex.Style) { s.MinWidth = flex.Px(boxW) })

		for i, item := range items {
			index, text := i, item
			a.Leaf("##item"+strconv.Itoa(i), fixedSize(a.measurer.MeasureText(item).X+m.FramePadding*2, lineH+m.PopupRowExtra*2),
				func(p *Painter, frame, _ Rect, id ID, io *IO) {
					switch {
					case io.Hovered(id):
						p.FillRect(frame, StyleColor(ColorRowHovered), 0, CornersNone)
					case selected.Get() == index:
						p.FillRect(frame, StyleColor(ColorSelection), 0, CornersNone)
					}
					p.DrawText(Vec2{frame.X + m.FramePadding, frame.Y + m.PopupRowExtra}, text, StyleColor(ColorText))
				},
				func(_, _ Rect, id ID, io *IO) {
					if _, _, pressed := ButtonBehavior(id, io); pressed {
						selected.Set(index)
						open.Set(false)
					}
				})
		}
		a.EndHoveringContainer()
	}

	if label != "" {
		a.text("", label, ColorText)
	}
	a.EndContainer()
	return row
}
