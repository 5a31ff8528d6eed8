package propui

import (
	"testing"

	"github.com/chewxy/math32"
)

// recorder is a Canvas that keeps a copy of every primitive.
type recorder struct {
	rects     []Rect
	polys     [][]Vec2
	lines     [][]Vec2
	triangles int
	texts     []string
}

func (r *recorder) MeasureText(text string) Vec2 { return DefaultMeasurer().MeasureText(text) }

func (r *recorder) FillRect(rect Rect, _ uint32, _ float32, _ Corner) {
	r.rects = append(r.rects, rect)
}

func (r *recorder) FillConvexPoly(points []Vec2, _ uint32) {
	r.polys = append(r.polys, append([]Vec2(nil), points...))
}

func (r *recorder) FillTriangle(_, _, _ Vec2, _ uint32) { r.triangles++ }

func (r *recorder) Polyline(points []Vec2, _ uint32, _ bool, _ float32) {
	r.lines = append(r.lines, append([]Vec2(nil), points...))
}

func (r *recorder) DrawText(_ Vec2, text string, _ uint32) { r.texts = append(r.texts, text) }

func near(a, b float32) bool { return math32.Abs(a-b) < 1e-4 }

func TestArcTable(t *testing.T) {
	want := []Vec2{
		0: {1, 0},
		3: {0, 1},
		6: {-1, 0},
		9: {0, -1},
	}
	for i, w := range want {
		if i%3 != 0 {
			continue
		}
		got := arcTable[i]
		if !near(got.X, w.X) || !near(got.Y, w.Y) {
			t.Errorf("arcTable[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestPathRectVertexCount(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 40}
	tests := []struct {
		name    string
		corners Corner
		want    int
	}{
		{"none", CornersNone, 4},
		{"all", CornersAll, 16},
		{"left", CornersLeft, 10},
		{"top", CornersTop, 10},
		{"single", CornerBottomRight, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Path
			p.Rect(r, 5, tt.corners)
			if p.Len() != tt.want {
				t.Errorf("got %d vertices, want %d", p.Len(), tt.want)
			}
		})
	}
}

func TestPathRectSquareCornerIsExact(t *testing.T) {
	var p Path
	p.Rect(Rect{X: 10, Y: 20, W: 100, H: 40}, 5, CornersLeft)
	pts := p.Points()

	// TL arc (4), TR square (1), BR square (1), BL arc (4)
	if got := pts[4]; got != (Vec2{110, 20}) {
		t.Errorf("top-right = %v, want {110 20}", got)
	}
	if got := pts[5]; got != (Vec2{110, 60}) {
		t.Errorf("bottom-right = %v, want {110 60}", got)
	}
	// TL arc starts on the left edge and ends on the top edge
	if !near(pts[0].X, 10) || !near(pts[0].Y, 25) {
		t.Errorf("top-left arc start = %v, want {10 25}", pts[0])
	}
	if !near(pts[3].X, 15) || !near(pts[3].Y, 20) {
		t.Errorf("top-left arc end = %v, want {15 20}", pts[3])
	}
}

func TestClampRounding(t *testing.T) {
	tests := []struct {
		name    string
		r       Rect
		radius  float32
		corners Corner
		want    float32
	}{
		{"fits", Rect{W: 100, H: 40}, 5, CornersAll, 5},
		{"both corners on each side halve", Rect{W: 100, H: 10}, 50, CornersAll, 5},
		{"left side halves height only", Rect{W: 100, H: 10}, 50, CornersLeft, 5},
		{"single corner uses full side", Rect{W: 100, H: 10}, 50, CornerTopLeft, 10},
		{"top side halves width", Rect{W: 8, H: 100}, 50, CornersTop, 4},
		{"no corners", Rect{W: 100, H: 10}, 5, CornersNone, 0},
		{"negative radius", Rect{W: 100, H: 10}, -3, CornersAll, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampRounding(tt.r, tt.radius, tt.corners); !near(got, tt.want) {
				t.Errorf("ClampRounding = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathFillAndStrokeClear(t *testing.T) {
	rec := &recorder{}
	var p Path

	p.LineTo(Vec2{0, 0})
	p.LineTo(Vec2{1, 0})
	p.FillConvex(rec, ColorWhite)
	if len(rec.polys) != 0 {
		t.Error("fill with two vertices should draw nothing")
	}
	if p.Len() != 0 {
		t.Error("fill should clear the path")
	}

	p.Rect(Rect{W: 10, H: 10}, 2, CornersAll)
	p.FillConvex(rec, ColorWhite)
	if len(rec.polys) != 1 || len(rec.polys[0]) != 16 {
		t.Fatalf("expected one 16-vertex polygon, got %v", rec.polys)
	}

	p.LineTo(Vec2{0, 0})
	p.Stroke(rec, ColorWhite, false, 1)
	if len(rec.lines) != 0 {
		t.Error("stroke with one vertex should draw nothing")
	}
	p.LineTo(Vec2{0, 0})
	p.LineTo(Vec2{5, 5})
	p.Stroke(rec, ColorWhite, false, 1)
	if len(rec.lines) != 1 || p.Len() != 0 {
		t.Errorf("expected one polyline and an empty path, got %d lines, %d pending", len(rec.lines), p.Len())
	}
}

func TestArcToFastZeroRadius(t *testing.T) {
	var p Path
	p.ArcToFast(Vec2{3, 4}, 0, 0, 3)
	if p.Len() != 1 || p.Points()[0] != (Vec2{3, 4}) {
		t.Errorf("zero radius should emit the center once, got %v", p.Points())
	}
}
