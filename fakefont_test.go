package textmesh

import "image"

// fakeTexture is an atlas handle with a settable allocation ID.
type fakeTexture struct {
	id uint64
}

func (t fakeTexture) ID() uint64        { return t.id }
func (t fakeTexture) Size() image.Point { return image.Pt(64, 64) }

// fakeFont is a monospaced Font with fixed metrics:
//
//   - every glyph advances 10px (11px bold) and covers an 8x8 box
//     hanging below the pen
//   - line spacing is 1.5x the character size
//   - underline sits 2px below the baseline, 1px thick
//
// It counts glyph lookups so tests can observe rebuilds. onGlyph, when
// set, runs after each lookup is counted.
type fakeFont struct {
	kerning    map[[2]rune]float32
	textureID  uint64
	glyphCalls int
	onGlyph    func()
}

func newFakeFont() *fakeFont {
	return &fakeFont{kerning: map[[2]rune]float32{}, textureID: 1}
}

func (f *fakeFont) Glyph(r rune, _ uint, bold bool, outlineThickness float32) Glyph {
	f.glyphCalls++
	if f.onGlyph != nil {
		f.onGlyph()
	}
	g := Glyph{Advance: 10}
	if bold {
		g.Advance++
	}
	if r == ' ' || r == '\t' {
		return g
	}
	g.Bounds = Rect{Width: 8, Height: 8}
	g.TextureRect = image.Rect(2, 2, 10, 10)
	if outlineThickness != 0 {
		g.Bounds = g.Bounds.Inflate(outlineThickness)
		g.TextureRect = image.Rect(12, 2, 22, 12)
	}
	return g
}

func (f *fakeFont) Kerning(first, second rune, _ uint, _ bool) float32 {
	return f.kerning[[2]rune{first, second}]
}

func (f *fakeFont) LineSpacing(size uint) float32   { return float32(size) * 1.5 }
func (f *fakeFont) UnderlinePosition(uint) float32  { return 2 }
func (f *fakeFont) UnderlineThickness(uint) float32 { return 1 }
func (f *fakeFont) Texture(uint) Texture            { return fakeTexture{id: f.textureID} }

// drawCall records one DrawVertices invocation.
type drawCall struct {
	vertices []Vertex
	states   RenderStates
}

// recordingTarget is a RenderTarget that stores every call.
type recordingTarget struct {
	calls []drawCall
}

func (r *recordingTarget) DrawVertices(vertices []Vertex, states RenderStates) {
	r.calls = append(r.calls, drawCall{vertices: append([]Vertex(nil), vertices...), states: states})
}
