package propui

import (
	"github.com/chewxy/math32"
	"github.com/go-theft-auto/propui/flex"
)

// layoutEntry is one laid-out node. Entries are stored breadth-first per root,
// roots in creation order, so a reverse scan visits the topmost node first.
type layoutEntry struct {
	id      ID
	parent  int // entry index, -1 for roots
	root    int // entry index of the owning root
	local   Rect
	padding flex.Edges
	draw    DrawFunc
	input   InputFunc

	// roots only
	origin    Vec2
	rootFrame RootFrameFunc
}

// layoutResult is the flattened output of one pass. It stays valid after the
// arbiter is reset, which lets a frame keep a stale result when a pass fails.
type layoutResult struct {
	entries []layoutEntry
	roots   []int
}

// buildLayout runs flex over every root of the finished pass in a and flattens
// the result. Roots without a fixed size are laid out within size.
func buildLayout(a *Arbiter, size Vec2) *layoutResult {
	res := &layoutResult{entries: make([]layoutEntry, 0, len(a.nodes))}
	tree := make([]flex.Node, len(a.nodes))
	for i := range a.nodes {
		n := &a.nodes[i]
		tree[i].Style = n.style
		tree[i].Measure = n.measure
		for c := n.first; c != noNode; c = a.nodes[c].next {
			tree[i].Children = append(tree[i].Children, &tree[c])
		}
	}

	availW, availH := size.X, size.Y
	if availW <= 0 {
		availW = math32.Inf(1)
	}
	if availH <= 0 {
		availH = math32.Inf(1)
	}

	type item struct {
		idx    int32
		parent int
	}
	var queue []item
	for _, r := range a.roots {
		flex.Calculate(&tree[r], availW, availH)

		queue = append(queue[:0], item{idx: r, parent: -1})
		for head := 0; head < len(queue); head++ {
			it := queue[head]
			n := &a.nodes[it.idx]
			l := tree[it.idx].Layout
			e := layoutEntry{
				id:      n.id,
				parent:  it.parent,
				local:   Rect{X: l.Left, Y: l.Top, W: l.Width, H: l.Height},
				padding: l.Padding,
				draw:    n.draw,
				input:   n.input,
			}
			self := len(res.entries)
			if it.parent < 0 {
				e.root = self
				e.origin = n.pos
				e.rootFrame = n.rootFrame
				res.roots = append(res.roots, self)
			} else {
				e.root = res.entries[it.parent].root
			}
			res.entries = append(res.entries, e)
			for c := n.first; c != noNode; c = a.nodes[c].next {
				queue = append(queue, item{idx: c, parent: self})
			}
		}
	}

	for _, r := range res.roots {
		if fn := res.entries[r].rootFrame; fn != nil {
			res.entries[r].origin = fn(res)
		}
	}
	return res
}

// absRect returns the absolute frame rectangle of entry i: its local offset plus
// every ancestor's, plus the root's origin.
func (r *layoutResult) absRect(i int) Rect {
	e := &r.entries[i]
	x, y := e.local.X, e.local.Y
	for p := e.parent; p >= 0; p = r.entries[p].parent {
		x += r.entries[p].local.X
		y += r.entries[p].local.Y
	}
	o := r.entries[e.root].origin
	return Rect{X: x + o.X, Y: y + o.Y, W: e.local.W, H: e.local.H}
}

// FrameRect implements Resolver.
func (r *layoutResult) FrameRect(id ID) (Rect, bool) {
	if id == 0 {
		return Rect{}, false
	}
	for i := range r.entries {
		if r.entries[i].id == id {
			return r.absRect(i), true
		}
	}
	return Rect{}, false
}

// hitTest returns the last hit-testable entry containing p, or -1.
func (r *layoutResult) hitTest(p Vec2) int {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].id == 0 {
			continue
		}
		if r.absRect(i).Contains(p) {
			return i
		}
	}
	return -1
}
