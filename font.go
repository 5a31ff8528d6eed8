package propui

import (
	"image"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph range baked into a FontAtlas (printable ASCII).
const (
	atlasFirstRune = 32
	atlasLastRune  = 126
	atlasCols      = 16
)

// FaceMeasurer measures text with an x/image font face.
type FaceMeasurer struct {
	Face font.Face
}

// DefaultMeasurer returns a measurer for the built-in 7x13 bitmap face, which is
// the same face NewFontAtlas bakes by default.
func DefaultMeasurer() FaceMeasurer {
	return FaceMeasurer{Face: basicfont.Face7x13}
}

// MeasureText returns the advance width and line height of text.
func (m FaceMeasurer) MeasureText(text string) Vec2 {
	face := m.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	return Vec2{
		X: fixedToFloat(font.MeasureString(face, text)),
		Y: fixedToFloat(metrics.Ascent + metrics.Descent),
	}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// FontAtlas is a monospace glyph atlas: printable ASCII rasterized into a grid of
// equal cells, alpha only. The GL backend uploads Image and stores the texture in
// TextureID.
type FontAtlas struct {
	Image     *image.Alpha
	CellW     int
	CellH     int
	TextureID uint32
}

// NewFontAtlas rasterizes face into a new atlas. A nil face uses basicfont.Face7x13.
func NewFontAtlas(face font.Face) *FontAtlas {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = fixed.I(8)
	}
	cellW := adv.Ceil()
	cellH := (metrics.Ascent + metrics.Descent).Ceil()
	rows := (atlasLastRune - atlasFirstRune + atlasCols) / atlasCols

	img := image.NewAlpha(image.Rect(0, 0, cellW*atlasCols, cellH*rows))
	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := rune(atlasFirstRune); r <= atlasLastRune; r++ {
		i := int(r - atlasFirstRune)
		col, row := i%atlasCols, i/atlasCols
		d.Dot = fixed.P(col*cellW, row*cellH+metrics.Ascent.Ceil())
		d.DrawString(string(r))
	}

	return &FontAtlas{Image: img, CellW: cellW, CellH: cellH}
}

// MeasureText returns the size of text laid out in atlas cells.
func (a *FontAtlas) MeasureText(text string) Vec2 {
	return Vec2{
		X: float32(utf8.RuneCountInString(text) * a.CellW),
		Y: float32(a.CellH),
	}
}

// glyphUV returns the texture coordinates of r's cell.
func (a *FontAtlas) glyphUV(r rune) (u0, v0, u1, v1 float32) {
	r = unicodeFallback(r)
	if r < atlasFirstRune || r > atlasLastRune {
		r = '?'
	}
	i := int(r - atlasFirstRune)
	col, row := i%atlasCols, i/atlasCols

	b := a.Image.Bounds()
	tw, th := float32(b.Dx()), float32(b.Dy())
	u0 = float32(col*a.CellW) / tw
	v0 = float32(row*a.CellH) / th
	u1 = float32((col+1)*a.CellW) / tw
	v1 = float32((row+1)*a.CellH) / th
	return u0, v0, u1, v1
}

// unicodeFallback maps common Unicode symbols to ASCII equivalents
// for the atlas (printable ASCII only).
func unicodeFallback(r rune) rune {
	if r >= atlasFirstRune && r <= atlasLastRune {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•':
		return '*'
	case '✓', '✔':
		return '+'
	case '—', '–':
		return '-'
	default:
		return r
	}
}
