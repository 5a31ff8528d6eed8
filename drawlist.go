package propui

import (
	"sync"

	"github.com/chewxy/math32"
)

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are split whenever the texture changes.
type DrawCmd struct {
	ElemCount    uint32 // Number of indices to draw
	TextureID    uint32 // Texture ID (0 = no texture)
	VertexOffset uint32 // Offset into vertex buffer
	IndexOffset  uint32 // Offset into index buffer
}

// drawListPool provides efficient reuse of DrawList buffers.
// A Frame redraws every pass, so buffers are recycled instead of reallocated.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList(atlas *FontAtlas) *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	dl.Font = atlas
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		dl.Font = nil
		drawListPool.Put(dl)
	}
}

// DrawList is the vertex-buffer Canvas. It tessellates every primitive into
// triangles and batches them by texture.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	// Font used by DrawText/MeasureText. Nil disables text drawing and measures
	// with DefaultMeasurer.
	Font *FontAtlas

	textureID    uint32 // Current texture for batching
	cmdOffset    uint32 // Vertex offset for current command
	idxCmdOffset uint32 // Index offset for current command
	scratch      Path   // Rounded-rect tessellation
}

var _ Canvas = (*DrawList)(nil)

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
	dl.scratch.Clear()
}

// setTexture switches the texture for subsequent primitives, splitting the
// current command if needed.
func (dl *DrawList) setTexture(textureID uint32) {
	if dl.textureID != textureID || len(dl.CmdBuffer) == 0 {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the starting index.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

// addIndices adds indices (relative to current command's vertex offset).
func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

func solid(p Vec2, color uint32) Vertex {
	return Vertex{Pos: [2]float32{p.X, p.Y}, Color: color}
}

// FillRect draws a filled rectangle, rounding the corners in mask.
func (dl *DrawList) FillRect(r Rect, color uint32, rounding float32, corners Corner) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}
	if rounding > 0 && corners != CornersNone {
		dl.scratch.Rect(r, rounding, corners)
		dl.scratch.FillConvex(dl, color)
		return
	}

	dl.setTexture(0)
	idx := dl.addVertices(
		solid(Vec2{r.X, r.Y}, color),
		solid(Vec2{r.X + r.W, r.Y}, color),
		solid(Vec2{r.X + r.W, r.Y + r.H}, color),
		solid(Vec2{r.X, r.Y + r.H}, color),
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// FillConvexPoly fills a convex polygon as a triangle fan.
func (dl *DrawList) FillConvexPoly(points []Vec2, color uint32) {
	if color&0xFF000000 == 0 || len(points) < 3 {
		return
	}
	dl.setTexture(0)
	idx := dl.addVertices(solid(points[0], color))
	for _, p := range points[1:] {
		dl.addVertices(solid(p, color))
	}
	for i := uint16(1); i < uint16(len(points)-1); i++ {
		dl.addIndices(idx, idx+i, idx+i+1)
	}
}

// FillTriangle draws a filled triangle.
func (dl *DrawList) FillTriangle(a, b, c Vec2, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.setTexture(0)
	idx := dl.addVertices(solid(a, color), solid(b, color), solid(c, color))
	dl.addIndices(idx, idx+1, idx+2)
}

// Polyline strokes consecutive points with quads of the given thickness.
func (dl *DrawList) Polyline(points []Vec2, color uint32, closed bool, thickness float32) {
	if color&0xFF000000 == 0 || len(points) < 2 {
		return
	}
	for i := 0; i+1 < len(points); i++ {
		dl.addLine(points[i], points[i+1], color, thickness)
	}
	if closed && len(points) > 2 {
		dl.addLine(points[len(points)-1], points[0], color, thickness)
	}
}

// addLine draws a line between two points.
// Uses a quad to create thickness.
func (dl *DrawList) addLine(a, b Vec2, color uint32, thickness float32) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / math32.Sqrt(dx*dx+dy*dy)
	}

	// Normal perpendicular to line
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.setTexture(0)
	idx := dl.addVertices(
		solid(Vec2{a.X + nx, a.Y + ny}, color),
		solid(Vec2{b.X + nx, b.Y + ny}, color),
		solid(Vec2{b.X - nx, b.Y - ny}, color),
		solid(Vec2{a.X - nx, a.Y - ny}, color),
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// DrawText draws text with its top-left corner at pos using the atlas.
func (dl *DrawList) DrawText(pos Vec2, text string, color uint32) {
	if color&0xFF000000 == 0 || len(text) == 0 || dl.Font == nil {
		return
	}
	a := dl.Font
	dl.setTexture(a.TextureID)

	cw, ch := float32(a.CellW), float32(a.CellH)
	x := pos.X
	for _, r := range text {
		u0, v0, u1, v1 := a.glyphUV(r)
		idx := dl.addVertices(
			Vertex{Pos: [2]float32{x, pos.Y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{x + cw, pos.Y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{x + cw, pos.Y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{x, pos.Y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
		x += cw
	}
}

// MeasureText returns the size DrawText would cover.
func (dl *DrawList) MeasureText(text string) Vec2 {
	if dl.Font != nil {
		return dl.Font.MeasureText(text)
	}
	return DefaultMeasurer().MeasureText(text)
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
