package propui

import (
	"errors"

	"github.com/go-theft-auto/propui/flex"
)

// NodeKind tags what an arena slot holds.
type NodeKind uint8

const (
	KindContainer NodeKind = iota // structural, children laid out by flex
	KindLeaf                      // sized by its measure callback
	KindRoot                      // layout root, optionally positioned absolutely
)

// DrawFunc paints a node. frame is the absolute frame rectangle, content is frame
// inset by the resolved padding.
type DrawFunc func(p *Painter, frame, content Rect, id ID, io *IO)

// InputFunc handles a pointer dispatch for the hovered node.
type InputFunc func(frame, content Rect, id ID, io *IO)

// Resolver looks up frame rectangles resolved earlier in the same pass.
type Resolver interface {
	FrameRect(id ID) (Rect, bool)
}

// RootFrameFunc assigns a root's absolute position once layout has run. Roots are
// resolved in creation order, so a root can anchor to anything built before it.
type RootFrameFunc func(r Resolver) Vec2

// ErrStaleHandle is the panic value for handles used outside their pass.
var ErrStaleHandle = errors.New("propui: node handle from a discarded pass")

const noNode int32 = -1

// node is one arena slot. Children form a singly linked list so resetting the
// arena never leaves per-node slices behind.
type node struct {
	id    ID
	kind  NodeKind
	label string

	style   flex.Style
	measure flex.MeasureFunc
	draw    DrawFunc
	input   InputFunc

	first, last, next int32

	// roots only
	pos       Vec2
	rootFrame RootFrameFunc
}

// Handle refers to a node of the pass that created it. Using a handle after the
// next pass has started panics with ErrStaleHandle.
type Handle struct {
	a   *Arbiter
	idx int32
	gen uint32
}

// Valid reports whether the handle belongs to the arbiter's current pass.
func (h Handle) Valid() bool {
	return h.a != nil && h.gen == h.a.gen && h.idx >= 0 && int(h.idx) < len(h.a.nodes)
}

func (h Handle) node() *node {
	if !h.Valid() {
		panic(ErrStaleHandle)
	}
	return &h.a.nodes[h.idx]
}

// mutable returns the node for modification; only allowed while building.
func (h Handle) mutable() *node {
	n := h.node()
	if !h.a.building {
		panic(ErrStaleHandle)
	}
	return n
}

// ID returns the node identity.
func (h Handle) ID() ID { return h.node().id }

// Kind returns the node kind.
func (h Handle) Kind() NodeKind { return h.node().kind }

// Style edits the node's flex properties in place.
func (h Handle) Style(fn func(s *flex.Style)) Handle {
	fn(&h.mutable().style)
	return h
}

// Grow sets the flex grow factor.
func (h Handle) Grow(g float32) Handle {
	h.mutable().style.Grow = g
	return h
}

// Width sets the preferred width.
func (h Handle) Width(v flex.Value) Handle {
	h.mutable().style.Width = v
	return h
}

// Height sets the preferred height.
func (h Handle) Height(v flex.Value) Handle {
	h.mutable().style.Height = v
	return h
}

// Margin sets the outer spacing.
func (h Handle) Margin(e flex.Edges) Handle {
	h.mutable().style.Margin = e
	return h
}

// Padding sets the inner spacing.
func (h Handle) Padding(e flex.Edges) Handle {
	h.mutable().style.Padding = e
	return h
}

// Gap sets the spacing between children.
func (h Handle) Gap(g float32) Handle {
	h.mutable().style.Gap = g
	return h
}

// OnDraw replaces the draw callback.
func (h Handle) OnDraw(fn DrawFunc) Handle {
	h.mutable().draw = fn
	return h
}

// OnInput replaces the input callback.
func (h Handle) OnInput(fn InputFunc) Handle {
	h.mutable().input = fn
	return h
}
