package propui

import (
	"errors"
	"fmt"

	"github.com/go-theft-auto/propui/flex"
)

// ErrUnbalanced is the panic value for mismatched Begin/End calls.
var ErrUnbalanced = errors.New("propui: unbalanced container stack")

// Arbiter builds the node tree of one layout pass. Identity is derived from the
// parent's identity and the label, so the same label under the same parent maps
// to the same ID in every pass.
//
// Nodes live in an arena that is reset at the start of each pass. Handles carry
// the pass generation, which makes a handle kept across passes panic on use.
type Arbiter struct {
	nodes    []node
	roots    []int32
	parents  []int32 // open containers across all roots
	scopes   []int   // len(parents) at each open BeginRoot
	gen      uint32
	building bool

	measurer TextMeasurer
	metrics  Metrics
}

// NewArbiter returns an arbiter measuring text with m. A nil m uses DefaultMeasurer.
func NewArbiter(m TextMeasurer) *Arbiter {
	if m == nil {
		m = DefaultMeasurer()
	}
	return &Arbiter{
		nodes:    make([]node, 0, 64),
		measurer: m,
		metrics:  DefaultMetrics,
	}
}

// Metrics returns the sizes widgets use.
func (a *Arbiter) Metrics() Metrics { return a.metrics }

// SetMetrics replaces the widget sizes for subsequent passes.
func (a *Arbiter) SetMetrics(m Metrics) { a.metrics = m }

// Measurer returns the text measurer.
func (a *Arbiter) Measurer() TextMeasurer { return a.measurer }

// Reset discards the previous pass. Every handle issued before becomes stale.
func (a *Arbiter) Reset() {
	a.gen++
	a.nodes = a.nodes[:0]
	a.roots = a.roots[:0]
	a.parents = a.parents[:0]
	a.scopes = a.scopes[:0]
	a.building = true
}

// Finish closes the pass. Open roots or containers are a programming error.
func (a *Arbiter) Finish() {
	if len(a.scopes) != 0 || len(a.parents) != 0 {
		panic(fmt.Errorf("%w: %d roots and %d containers still open at end of pass",
			ErrUnbalanced, len(a.scopes), len(a.parents)-len(a.scopes)))
	}
	a.building = false
}

// abort ends a pass that failed part-way. The partial tree is unusable.
func (a *Arbiter) abort() {
	a.gen++
	a.parents = a.parents[:0]
	a.scopes = a.scopes[:0]
	a.building = false
}

// Roots returns handles to every root of the pass in creation order.
func (a *Arbiter) Roots() []Handle {
	out := make([]Handle, len(a.roots))
	for i, r := range a.roots {
		out[i] = a.handle(r)
	}
	return out
}

// Len returns the number of nodes built so far.
func (a *Arbiter) Len() int { return len(a.nodes) }

// Current returns the innermost open container.
func (a *Arbiter) Current() Handle {
	if len(a.parents) == 0 {
		panic(fmt.Errorf("%w: no open container", ErrUnbalanced))
	}
	return a.handle(a.parents[len(a.parents)-1])
}

// CurrentID returns the identity of the innermost open container, or zero
// outside any root.
func (a *Arbiter) CurrentID() ID {
	if len(a.parents) == 0 {
		return 0
	}
	return a.nodes[a.parents[len(a.parents)-1]].id
}

func (a *Arbiter) handle(idx int32) Handle {
	return Handle{a: a, idx: idx, gen: a.gen}
}

func (a *Arbiter) mustBuild() {
	if !a.building {
		panic(fmt.Errorf("%w: builder used outside a pass", ErrUnbalanced))
	}
}

// add appends a node. A non-empty label gives it an identity under the current
// container; an empty label makes it passive (ID zero, never hit).
func (a *Arbiter) add(kind NodeKind, label string, style flex.Style) int32 {
	a.mustBuild()
	var id ID
	if label != "" {
		id = ChildID(a.CurrentID(), label)
	}
	idx := int32(len(a.nodes))
	a.nodes = append(a.nodes, node{
		id:    id,
		kind:  kind,
		label: label,
		style: style,
		first: noNode,
		last:  noNode,
		next:  noNode,
	})
	if kind != KindRoot {
		if len(a.parents) == 0 {
			panic(fmt.Errorf("%w: %q added outside any root", ErrUnbalanced, label))
		}
		a.attach(a.parents[len(a.parents)-1], idx)
	}
	return idx
}

func (a *Arbiter) attach(parent, child int32) {
	p := &a.nodes[parent]
	if p.first == noNode {
		p.first = child
	} else {
		a.nodes[p.last].next = child
	}
	p.last = child
}

// RootOption configures a root at BeginRoot.
type RootOption func(n *node)

// AtPosition places the root at a fixed absolute position.
func AtPosition(p Vec2) RootOption {
	return func(n *node) { n.pos = p }
}

// AnchoredTo positions the root after layout with fn.
func AnchoredTo(fn RootFrameFunc) RootOption {
	return func(n *node) { n.rootFrame = fn }
}

// WithRootStyle sets the root's flex style.
func WithRootStyle(s flex.Style) RootOption {
	return func(n *node) { n.style = s }
}

// WithRootDraw sets the root's background painter.
func WithRootDraw(fn DrawFunc) RootOption {
	return func(n *node) { n.draw = fn }
}

// BeginRoot opens a new layout root. Roots opened inside another root take their
// identity from the enclosing container but are laid out independently and are
// drawn and hit-tested after everything built before them.
func (a *Arbiter) BeginRoot(label string, opts ...RootOption) Handle {
	idx := a.add(KindRoot, label, flex.Style{})
	n := &a.nodes[idx]
	for _, opt := range opts {
		opt(n)
	}
	a.roots = append(a.roots, idx)
	a.scopes = append(a.scopes, len(a.parents))
	a.parents = append(a.parents, idx)
	return a.handle(idx)
}

// EndRoot closes the innermost root. Containers opened inside it must be closed.
func (a *Arbiter) EndRoot() {
	a.mustBuild()
	if len(a.scopes) == 0 {
		panic(fmt.Errorf("%w: EndRoot without BeginRoot", ErrUnbalanced))
	}
	base := a.scopes[len(a.scopes)-1]
	if len(a.parents) != base+1 {
		panic(fmt.Errorf("%w: %d containers still open at EndRoot",
			ErrUnbalanced, len(a.parents)-base-1))
	}
	a.scopes = a.scopes[:len(a.scopes)-1]
	a.parents = a.parents[:base]
}

// BeginHoveringContainer opens a floating root drawn over everything built
// before it, such as a dropdown. anchor positions it once layout has run.
func (a *Arbiter) BeginHoveringContainer(label string, anchor RootFrameFunc) Handle {
	m := a.metrics
	return a.BeginRoot(label,
		AnchoredTo(anchor),
		WithRootStyle(flex.Style{
			Direction:  flex.Column,
			AlignItems: flex.AlignStretch,
			Padding:    flex.Uniform(m.BorderSize),
			MinWidth:   flex.Px(m.ComboWidth),
		}),
		WithRootDraw(func(p *Painter, frame, _ Rect, _ ID, _ *IO) {
			p.FillRect(frame, StyleColor(ColorPopupBg), m.Rounding, CornersBottom)
			p.PathRect(frame, m.Rounding, CornersBottom)
			p.PathStroke(StyleColor(ColorBorder), true, m.BorderSize)
		}),
	)
}

// EndHoveringContainer closes the floating root.
func (a *Arbiter) EndHoveringContainer() { a.EndRoot() }

// BeginContainer opens a structural container with the given style.
func (a *Arbiter) BeginContainer(label string, style flex.Style) Handle {
	idx := a.add(KindContainer, label, style)
	a.parents = append(a.parents, idx)
	return a.handle(idx)
}

// EndContainer closes the innermost container.
func (a *Arbiter) EndContainer() {
	a.mustBuild()
	n := len(a.parents)
	if n == 0 || a.nodes[a.parents[n-1]].kind != KindContainer {
		panic(fmt.Errorf("%w: EndContainer without matching BeginContainer", ErrUnbalanced))
	}
	a.parents = a.parents[:n-1]
}

// BeginRow opens a container laying its children out left to right.
func (a *Arbiter) BeginRow(label string) Handle {
	return a.BeginContainer(label, flex.Style{
		Direction:  flex.Row,
		AlignItems: flex.AlignCenter,
		Gap:        a.metrics.ItemSpacing,
	})
}

// EndRow closes a row.
func (a *Arbiter) EndRow() { a.EndContainer() }

// BeginColumn opens a container stacking its children top to bottom.
func (a *Arbiter) BeginColumn(label string) Handle {
	return a.BeginContainer(label, flex.Style{
		Direction:  flex.Column,
		AlignItems: flex.AlignStart,
		Gap:        a.metrics.ItemSpacing,
	})
}

// EndColumn closes a column.
func (a *Arbiter) EndColumn() { a.EndContainer() }

// Leaf adds a node sized by measure. Any of measure, draw and input may be nil.
func (a *Arbiter) Leaf(label string, measure flex.MeasureFunc, draw DrawFunc, input InputFunc) Handle {
	idx := a.add(KindLeaf, label, flex.Style{})
	n := &a.nodes[idx]
	n.measure = measure
	n.draw = draw
	n.input = input
	return a.handle(idx)
}

// Spacer adds an invisible leaf that absorbs free space along the main axis.
func (a *Arbiter) Spacer() Handle {
	return a.Leaf("", nil, nil, nil).Grow(1)
}

// Label adds a line of text. Labels have an identity but no input.
func (a *Arbiter) Label(text string) Handle {
	return a.text(text, text, ColorText)
}

// text adds a text leaf. An empty label makes it passive.
func (a *Arbiter) text(label, text string, role ColorRole) Handle {
	size := a.measurer.MeasureText(text)
	return a.Leaf(label, fixedSize(size.X, size.Y), func(p *Painter, _, content Rect, _ ID, _ *IO) {
		p.DrawText(content.Min(), text, StyleColor(role))
	}, nil)
}

// fixedSize measures as a constant size.
func fixedSize(w, h float32) flex.MeasureFunc {
	return func(_, _ float32) (float32, float32) { return w, h }
}
