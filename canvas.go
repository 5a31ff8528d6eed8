package propui

// Corner selects which corners of a rectangle are rounded.
type Corner uint8

const (
	CornerTopLeft Corner = 1 << iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft

	CornersNone   Corner = 0
	CornersTop           = CornerTopLeft | CornerTopRight
	CornersBottom        = CornerBottomLeft | CornerBottomRight
	CornersLeft          = CornerTopLeft | CornerBottomLeft
	CornersRight         = CornerTopRight | CornerBottomRight
	CornersAll           = CornersTop | CornersBottom
)

// Canvas is the 2D rasterizer the toolkit draws into. It only understands
// rectangles, convex polygons, triangles, polylines and text; everything else is
// reduced to those by Path.
//
// Implementations must copy point slices they need to keep: callers reuse them.
type Canvas interface {
	TextMeasurer

	FillRect(r Rect, color uint32, rounding float32, corners Corner)
	FillConvexPoly(points []Vec2, color uint32)
	FillTriangle(a, b, c Vec2, color uint32)
	Polyline(points []Vec2, color uint32, closed bool, thickness float32)
	DrawText(pos Vec2, text string, color uint32)
}

// TextMeasurer reports the size of rendered text. The host's text services
// implement it; FaceMeasurer is the built-in one.
type TextMeasurer interface {
	MeasureText(text string) Vec2
}

// Painter is handed to draw callbacks. It forwards primitive calls to the Canvas
// and owns the sequential path state used for rounded shapes.
type Painter struct {
	Canvas
	path Path
}

// NewPainter wraps a canvas.
func NewPainter(c Canvas) *Painter {
	return &Painter{Canvas: c}
}

// PathClear drops pending vertices.
func (p *Painter) PathClear() { p.path.Clear() }

// PathLineTo appends a vertex.
func (p *Painter) PathLineTo(pt Vec2) { p.path.LineTo(pt) }

// PathArcToFast appends a 12-step table arc. See Path.ArcToFast.
func (p *Painter) PathArcToFast(center Vec2, radius float32, aMin, aMax int) {
	p.path.ArcToFast(center, radius, aMin, aMax)
}

// PathRect appends a closed rounded rectangle outline.
func (p *Painter) PathRect(r Rect, rounding float32, corners Corner) {
	p.path.Rect(r, rounding, corners)
}

// PathFillConvex fills the pending path and clears it.
func (p *Painter) PathFillConvex(color uint32) { p.path.FillConvex(p.Canvas, color) }

// PathStroke strokes the pending path and clears it.
func (p *Painter) PathStroke(color uint32, closed bool, thickness float32) {
	p.path.Stroke(p.Canvas, color, closed, thickness)
}
