// Package flex implements the single-pass flexbox layout used by propui.
//
// A tree of Nodes is described with a Style per node and, for leaves, an optional
// MeasureFunc that reports intrinsic size. Calculate resolves every node's rectangle
// relative to its parent's top-left corner (padding included in the parent's box).
//
// The engine is intentionally small: one direction per container, grow on the main
// axis, stretch/start/center/end on the cross axis, fixed/percent/auto sizes with
// min/max clamps. A child is laid out a second time only when grow or stretch forces
// its size; there is no wrapping, shrinking or baseline alignment.
package flex

import "github.com/chewxy/math32"

// Direction is the main axis of a container.
type Direction uint8

const (
	Column Direction = iota // children stack top to bottom (default)
	Row                     // children stack left to right
)

// Align positions children on the cross axis.
type Align uint8

const (
	AlignStretch Align = iota // auto-sized children fill the cross axis (default)
	AlignStart
	AlignCenter
	AlignEnd
)

// Unit tags a Value.
type Unit uint8

const (
	UnitAuto Unit = iota
	UnitPoint
	UnitPercent
)

// Value is a length that is either automatic, absolute, or a percentage of the
// parent's available size.
type Value struct {
	Value float32
	Unit  Unit
}

// Auto is the zero Value: size comes from content or measurement.
var Auto = Value{}

// Px returns an absolute length.
func Px(v float32) Value { return Value{Value: v, Unit: UnitPoint} }

// Percent returns a length relative to the parent's available size (0-100).
func Percent(v float32) Value { return Value{Value: v, Unit: UnitPercent} }

// IsAuto reports whether the value is automatic.
func (v Value) IsAuto() bool { return v.Unit == UnitAuto }

func (v Value) resolve(parent float32) (float32, bool) {
	switch v.Unit {
	case UnitPoint:
		return v.Value, true
	case UnitPercent:
		if undefined(parent) {
			return 0, false
		}
		return parent * v.Value / 100, true
	}
	return 0, false
}

// Edges holds per-side lengths for margin and padding.
type Edges struct {
	Left, Top, Right, Bottom float32
}

// Uniform returns Edges with the same length on every side.
func Uniform(v float32) Edges { return Edges{Left: v, Top: v, Right: v, Bottom: v} }

// Symmetric returns Edges with x on left/right and y on top/bottom.
func Symmetric(x, y float32) Edges { return Edges{Left: x, Top: y, Right: x, Bottom: y} }

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float32 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float32 { return e.Top + e.Bottom }

// Style carries the flex properties of one node.
type Style struct {
	Direction  Direction
	AlignItems Align

	Margin  Edges
	Padding Edges
	Gap     float32 // main-axis space between children

	Grow float32

	Width, Height       Value
	MinWidth, MinHeight Value
	MaxWidth, MaxHeight Value
}

// MeasureFunc reports the intrinsic size of a leaf given the space available to its
// content box. Either argument may be +Inf or NaN when the space is unconstrained.
type MeasureFunc func(availW, availH float32) (w, h float32)

// Layout is the resolved box of a node, relative to its parent's top-left corner.
type Layout struct {
	Left, Top     float32
	Width, Height float32
	Padding       Edges
}

// Node is one element of the layout tree.
type Node struct {
	Style    Style
	Measure  MeasureFunc
	Children []*Node
	Layout   Layout
}

// Calculate lays out root and all of its descendants inside the given available
// space. Pass math32.Inf(1) for an unconstrained axis.
func Calculate(root *Node, availW, availH float32) {
	if root == nil {
		return
	}
	nan := math32.NaN()
	layoutNode(root, availW-root.Style.Margin.Horizontal(), availH-root.Style.Margin.Vertical(), nan, nan)
	root.Layout.Left = root.Style.Margin.Left
	root.Layout.Top = root.Style.Margin.Top
}

func undefined(v float32) bool {
	return math32.IsNaN(v) || math32.IsInf(v, 0)
}

// layoutNode sizes n and arranges its children. forcedW/forcedH override the
// node's own width/height when not NaN.
func layoutNode(n *Node, availW, availH, forcedW, forcedH float32) {
	s := &n.Style

	w, wok := forcedW, !math32.IsNaN(forcedW)
	if !wok {
		w, wok = s.Width.resolve(availW)
	}
	h, hok := forcedH, !math32.IsNaN(forcedH)
	if !hok {
		h, hok = s.Height.resolve(availH)
	}

	innerAvailW := availW
	if wok {
		innerAvailW = w
	}
	innerAvailH := availH
	if hok {
		innerAvailH = h
	}
	innerAvailW = shrink(innerAvailW, s.Padding.Horizontal())
	innerAvailH = shrink(innerAvailH, s.Padding.Vertical())

	var contentW, contentH float32
	switch {
	case len(n.Children) > 0:
		contentW, contentH = measureChildren(n, innerAvailW, innerAvailH)
	case n.Measure != nil:
		contentW, contentH = n.Measure(innerAvailW, innerAvailH)
	}

	if !wok {
		w = contentW + s.Padding.Horizontal()
	}
	if !hok {
		h = contentH + s.Padding.Vertical()
	}
	w = clampSize(w, s.MinWidth, s.MaxWidth, availW)
	h = clampSize(h, s.MinHeight, s.MaxHeight, availH)

	n.Layout.Width = w
	n.Layout.Height = h
	n.Layout.Padding = s.Padding

	if len(n.Children) > 0 {
		arrangeChildren(n, w-s.Padding.Horizontal(), h-s.Padding.Vertical())
	}
}

// measureChildren gives every child its natural size and returns the content size
// of n along (width, height).
func measureChildren(n *Node, innerW, innerH float32) (float32, float32) {
	nan := math32.NaN()
	row := n.Style.Direction == Row

	var main, cross float32
	for i, c := range n.Children {
		m := c.Style.Margin
		layoutNode(c, shrink(innerW, m.Horizontal()), shrink(innerH, m.Vertical()), nan, nan)

		cm, cc := c.Layout.Height+m.Vertical(), c.Layout.Width+m.Horizontal()
		if row {
			cm, cc = c.Layout.Width+m.Horizontal(), c.Layout.Height+m.Vertical()
		}
		main += cm
		if i > 0 {
			main += n.Style.Gap
		}
		cross = math32.Max(cross, cc)
	}
	if row {
		return main, cross
	}
	return cross, main
}

// arrangeChildren distributes free main-axis space to growing children, stretches
// auto-sized children on the cross axis and assigns positions.
func arrangeChildren(n *Node, innerW, innerH float32) {
	s := &n.Style
	row := s.Direction == Row

	mainSize, crossSize := innerH, innerW
	if row {
		mainSize, crossSize = innerW, innerH
	}

	var used, totalGrow float32
	for i, c := range n.Children {
		used += mainOf(c, row) + mainMargins(c, row)
		if i > 0 {
			used += s.Gap
		}
		if c.Style.Grow > 0 {
			totalGrow += c.Style.Grow
		}
	}
	free := mainSize - used

	cursor := s.Padding.Top
	crossStart := s.Padding.Left
	if row {
		cursor, crossStart = s.Padding.Left, s.Padding.Top
	}

	for _, c := range n.Children {
		m := c.Style.Margin
		cm, cc := mainOf(c, row), crossOf(c, row)

		newMain := cm
		if free > 0 && totalGrow > 0 && c.Style.Grow > 0 {
			newMain += free * c.Style.Grow / totalGrow
		}
		newCross := cc
		crossAuto := c.Style.Width.IsAuto()
		if row {
			crossAuto = c.Style.Height.IsAuto()
		}
		if s.AlignItems == AlignStretch && crossAuto && !undefined(crossSize) {
			newCross = math32.Max(0, crossSize-crossMargins(c, row))
		}

		if newMain != cm || newCross != cc {
			fw, fh := newCross, newMain
			if row {
				fw, fh = newMain, newCross
			}
			layoutNode(c, shrink(innerW, m.Horizontal()), shrink(innerH, m.Vertical()), fw, fh)
			if fw != c.Layout.Width || fh != c.Layout.Height {
				// min/max clamps win over forced sizes
				newMain, newCross = mainOf(c, row), crossOf(c, row)
			}
		}

		var offset float32
		if !undefined(crossSize) {
			slack := crossSize - crossMargins(c, row) - newCross
			switch s.AlignItems {
			case AlignCenter:
				offset = slack / 2
			case AlignEnd:
				offset = slack
			}
		}

		if row {
			c.Layout.Left = cursor + m.Left
			c.Layout.Top = crossStart + m.Top + offset
			cursor += m.Left + newMain + m.Right + s.Gap
		} else {
			c.Layout.Top = cursor + m.Top
			c.Layout.Left = crossStart + m.Left + offset
			cursor += m.Top + newMain + m.Bottom + s.Gap
		}
	}
}

func mainOf(c *Node, row bool) float32 {
	if row {
		return c.Layout.Width
	}
	return c.Layout.Height
}

func crossOf(c *Node, row bool) float32 {
	if row {
		return c.Layout.Height
	}
	return c.Layout.Width
}

func mainMargins(c *Node, row bool) float32 {
	if row {
		return c.Style.Margin.Horizontal()
	}
	return c.Style.Margin.Vertical()
}

func crossMargins(c *Node, row bool) float32 {
	if row {
		return c.Style.Margin.Vertical()
	}
	return c.Style.Margin.Horizontal()
}

// shrink subtracts d from an available length, leaving unconstrained lengths alone.
func shrink(avail, d float32) float32 {
	if undefined(avail) {
		return avail
	}
	return math32.Max(0, avail-d)
}

func clampSize(v float32, lo, hi Value, parent float32) float32 {
	if mx, ok := hi.resolve(parent); ok {
		v = math32.Min(v, mx)
	}
	if mn, ok := lo.resolve(parent); ok {
		v = math32.Max(v, mn)
	}
	return v
}
