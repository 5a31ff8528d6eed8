package propui

import "github.com/chewxy/math32"

// arcTable holds 12 points on the unit circle, 30 degrees apart, starting at
// (1, 0) and turning clockwise on screen (Y grows downward).
var arcTable = func() (t [12]Vec2) {
	for i := range t {
		s, c := math32.Sincos(float32(i) * 2 * math32.Pi / 12)
		t[i] = Vec2{X: c, Y: s}
	}
	return t
}()

// Table index ranges for each quarter circle. Each range spans three table steps
// and emits four vertices.
const (
	arcTopLeftMin, arcTopLeftMax         = 6, 9
	arcTopRightMin, arcTopRightMax       = 9, 12
	arcBottomRightMin, arcBottomRightMax = 0, 3
	arcBottomLeftMin, arcBottomLeftMax   = 3, 6
)

// Path accumulates vertices for one shape. Fill and Stroke are terminal: they
// hand the vertices to a Canvas and clear the path, so shapes must not be
// interleaved.
type Path struct {
	points []Vec2
}

// Clear drops pending vertices, keeping capacity.
func (p *Path) Clear() { p.points = p.points[:0] }

// LineTo appends a vertex.
func (p *Path) LineTo(pt Vec2) { p.points = append(p.points, pt) }

// Len returns the number of pending vertices.
func (p *Path) Len() int { return len(p.points) }

// Points returns the pending vertices. The slice is only valid until the next
// mutation.
func (p *Path) Points() []Vec2 { return p.points }

// ArcToFast appends the table points aMin..aMax (inclusive, indices wrap at 12)
// scaled by radius around center. A zero radius collapses to a single vertex at
// center, which is how square corners are emitted.
func (p *Path) ArcToFast(center Vec2, radius float32, aMin, aMax int) {
	if radius <= 0 || aMin > aMax {
		p.LineTo(center)
		return
	}
	for a := aMin; a <= aMax; a++ {
		c := arcTable[a%len(arcTable)]
		p.LineTo(Vec2{X: center.X + c.X*radius, Y: center.Y + c.Y*radius})
	}
}

// Rect appends a closed rectangle outline, rounding the corners selected by mask.
// The radius is clamped first so that arcs on the same side never overlap.
func (p *Path) Rect(r Rect, rounding float32, corners Corner) {
	rounding = ClampRounding(r, rounding, corners)
	a, b := r.Min(), r.Max()

	if rounding <= 0 || corners == CornersNone {
		p.LineTo(a)
		p.LineTo(Vec2{X: b.X, Y: a.Y})
		p.LineTo(b)
		p.LineTo(Vec2{X: a.X, Y: b.Y})
		return
	}

	rtl := cornerRadius(corners, CornerTopLeft, rounding)
	rtr := cornerRadius(corners, CornerTopRight, rounding)
	rbr := cornerRadius(corners, CornerBottomRight, rounding)
	rbl := cornerRadius(corners, CornerBottomLeft, rounding)

	p.ArcToFast(Vec2{X: a.X + rtl, Y: a.Y + rtl}, rtl, arcTopLeftMin, arcTopLeftMax)
	p.ArcToFast(Vec2{X: b.X - rtr, Y: a.Y + rtr}, rtr, arcTopRightMin, arcTopRightMax)
	p.ArcToFast(Vec2{X: b.X - rbr, Y: b.Y - rbr}, rbr, arcBottomRightMin, arcBottomRightMax)
	p.ArcToFast(Vec2{X: a.X + rbl, Y: b.Y - rbl}, rbl, arcBottomLeftMin, arcBottomLeftMax)
}

// FillConvex fills the path as a convex polygon and clears it.
func (p *Path) FillConvex(c Canvas, color uint32) {
	if len(p.points) >= 3 {
		c.FillConvexPoly(p.points, color)
	}
	p.Clear()
}

// Stroke draws the path as a polyline and clears it.
func (p *Path) Stroke(c Canvas, color uint32, closed bool, thickness float32) {
	if len(p.points) >= 2 {
		c.Polyline(p.points, color, closed, thickness)
	}
	p.Clear()
}

// ClampRounding limits a corner radius to what fits the rectangle. When both
// corners along a side are rounded the radius may use at most half of that side,
// otherwise the whole side.
func ClampRounding(r Rect, rounding float32, corners Corner) float32 {
	if rounding <= 0 || corners == CornersNone {
		return 0
	}
	wf, hf := float32(1), float32(1)
	if corners&CornersTop == CornersTop || corners&CornersBottom == CornersBottom {
		wf = 0.5
	}
	if corners&CornersLeft == CornersLeft || corners&CornersRight == CornersRight {
		hf = 0.5
	}
	rounding = minf(rounding, math32.Abs(r.W)*wf)
	rounding = minf(rounding, math32.Abs(r.H)*hf)
	return maxf(0, rounding)
}

func cornerRadius(mask, corner Corner, rounding float32) float32 {
	if mask&corner != 0 {
		return rounding
	}
	return 0
}
