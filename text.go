package textmesh

import "slices"

// Text is a drawable string: content, a font, a character size and a
// set of style attributes, turned into two textured triangle lists
// (fill and outline) on demand.
//
// Geometry is built lazily. Setters only record the change; the next
// call to LocalBounds, GlobalBounds, Vertices, OutlineVertices or Draw
// rebuilds it. The cached geometry is also rebuilt when the font's
// atlas for the current size has been reallocated since the last build.
//
// Text is not safe for concurrent use.
type Text struct {
	Transformable

	content             []rune
	font                Font
	characterSize       uint
	style               Style
	fillColor           Color
	outlineColor        Color
	outlineThickness    float32
	letterSpacingFactor float32
	lineSpacingFactor   float32
	lineAlignment       LineAlignment

	vertices        []Vertex
	outlineVertices []Vertex
	bounds          Rect
	lineOffsets     []float32
	dirty           bool
	textureID       uint64
}

// NewText creates a Text drawing s with font at characterSize pixels.
//
// The font is not owned by the Text and must outlive it. A nil font is
// allowed and produces empty geometry until one is set.
func NewText(font Font, s string, characterSize uint, opts ...Option) *Text {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Text{
		Transformable:       NewTransformable(),
		content:             []rune(s),
		font:                font,
		characterSize:       characterSize,
		style:               o.style,
		fillColor:           o.fillColor,
		outlineColor:        o.outlineColor,
		outlineThickness:    o.outlineThickness,
		letterSpacingFactor: o.letterSpacing,
		lineSpacingFactor:   o.lineSpacing,
		lineAlignment:       o.alignment,
		lineOffsets:         []float32{0},
		dirty:               true,
	}
	if o.hasPosition {
		t.SetPosition(o.position)
	}
	return t
}

// SetString replaces the content with the runes of s.
func (t *Text) SetString(s string) {
	t.SetRunes([]rune(s))
}

// SetRunes replaces the content. The slice is copied.
func (t *Text) SetRunes(content []rune) {
	if slices.Equal(t.content, content) {
		return
	}
	t.content = append(t.content[:0], content...)
	t.dirty = true
}

// String returns the content as a Go string.
func (t *Text) String() string { return string(t.content) }

// Runes returns a copy of the content.
func (t *Text) Runes() []rune { return append([]rune(nil), t.content...) }

// SetFont sets the font used to render the text.
// Fonts are compared by identity.
func (t *Text) SetFont(font Font) {
	if t.font != font {
		t.font = font
		t.dirty = true
	}
}

// Font returns the current font, which may be nil.
func (t *Text) Font() Font { return t.font }

// SetCharacterSize sets the character size in pixels.
func (t *Text) SetCharacterSize(size uint) {
	if t.characterSize != size {
		t.characterSize = size
		t.dirty = true
	}
}

// CharacterSize returns the character size in pixels.
func (t *Text) CharacterSize() uint { return t.characterSize }

// SetLetterSpacing sets the letter spacing factor. 1 is the font's
// natural spacing.
func (t *Text) SetLetterSpacing(factor float32) {
	if t.letterSpacingFactor != factor {
		t.letterSpacingFactor = factor
		t.dirty = true
	}
}

// LetterSpacing returns the letter spacing factor.
func (t *Text) LetterSpacing() float32 { return t.letterSpacingFactor }

// SetLineSpacing sets the line spacing factor. 1 is the font's
// natural line height.
func (t *Text) SetLineSpacing(factor float32) {
	if t.lineSpacingFactor != factor {
		t.lineSpacingFactor = factor
		t.dirty = true
	}
}

// LineSpacing returns the line spacing factor.
func (t *Text) LineSpacing() float32 { return t.lineSpacingFactor }

// SetStyle sets the style flags.
func (t *Text) SetStyle(style Style) {
	if t.style != style {
		t.style = style
		t.dirty = true
	}
}

// Style returns the style flags.
func (t *Text) Style() Style { return t.style }

// SetFillColor sets the fill color. When the geometry is up to date
// the cached vertices are recolored in place instead of rebuilt.
func (t *Text) SetFillColor(c Color) {
	if c == t.fillColor {
		return
	}
	t.fillColor = c
	if !t.dirty {
		recolor(t.vertices, c)
	}
}

// FillColor returns the fill color.
func (t *Text) FillColor() Color { return t.fillColor }

// SetOutlineColor sets the outline color. Like SetFillColor, it never
// triggers a rebuild.
func (t *Text) SetOutlineColor(c Color) {
	if c == t.outlineColor {
		return
	}
	t.outlineColor = c
	if !t.dirty {
		recolor(t.outlineVertices, c)
	}
}

// OutlineColor returns the outline color.
func (t *Text) OutlineColor() Color { return t.outlineColor }

// SetOutlineThickness sets the outline thickness in pixels. Zero
// disables the outline entirely.
func (t *Text) SetOutlineThickness(thickness float32) {
	if t.outlineThickness != thickness {
		t.outlineThickness = thickness
		t.dirty = true
	}
}

// OutlineThickness returns the outline thickness.
func (t *Text) OutlineThickness() float32 { return t.outlineThickness }

// SetLineAlignment sets the horizontal alignment of lines.
func (t *Text) SetLineAlignment(align LineAlignment) {
	if t.lineAlignment != align {
		t.lineAlignment = align
		t.dirty = true
	}
}

// LineAlignment returns the horizontal alignment of lines.
func (t *Text) LineAlignment() LineAlignment { return t.lineAlignment }

// LocalBounds returns the bounding rectangle of the fill geometry in
// local coordinates, grown by the outline thickness when one is set.
func (t *Text) LocalBounds() Rect {
	t.ensureGeometryUpdate()
	return t.bounds
}

// GlobalBounds returns LocalBounds transformed by the Text's transform.
func (t *Text) GlobalBounds() Rect {
	return t.Transform().TransformRect(t.LocalBounds())
}

// Vertices returns the fill triangle list. The slice is owned by the
// Text and valid until the next mutation.
func (t *Text) Vertices() []Vertex {
	t.ensureGeometryUpdate()
	return t.vertices
}

// OutlineVertices returns the outline triangle list, empty when the
// outline thickness is zero. The slice is owned by the Text.
func (t *Text) OutlineVertices() []Vertex {
	t.ensureGeometryUpdate()
	return t.outlineVertices
}

// Texture returns the atlas the vertices sample, or nil without a font.
func (t *Text) Texture() Texture {
	if t.font == nil {
		return nil
	}
	return t.font.Texture(t.characterSize)
}

// Draw implements Drawable. The outline is drawn before the fill.
func (t *Text) Draw(target RenderTarget, states RenderStates) {
	if t.font == nil {
		return
	}
	t.ensureGeometryUpdate()

	states.Transform = states.Transform.Multiply(t.Transform())
	states.Texture = t.font.Texture(t.characterSize)

	if t.outlineThickness != 0 {
		target.DrawVertices(t.outlineVertices, states)
	}
	target.DrawVertices(t.vertices, states)
}

// geometryValid reports whether the cached geometry can be used as is.
func (t *Text) geometryValid() bool {
	if t.dirty {
		return false
	}
	if t.font == nil {
		return true
	}
	return t.font.Texture(t.characterSize).ID() == t.textureID
}

// ensureGeometryUpdate rebuilds the cached geometry if it is stale.
func (t *Text) ensureGeometryUpdate() {
	if t.geometryValid() {
		return
	}

	t.dirty = false
	t.vertices = t.vertices[:0]
	t.outlineVertices = t.outlineVertices[:0]
	t.bounds = Rect{}
	t.lineOffsets = append(t.lineOffsets[:0], 0)

	if t.font == nil {
		return
	}

	// Glyph lookups may grow the atlas, so its ID is read after the build.
	if len(t.content) > 0 {
		t.buildGeometry()
	}
	t.textureID = t.font.Texture(t.characterSize).ID()

	Logger().Debug("textmesh: geometry rebuilt",
		"runes", len(t.content),
		"vertices", len(t.vertices),
		"outline_vertices", len(t.outlineVertices),
		"texture_id", t.textureID)
}
