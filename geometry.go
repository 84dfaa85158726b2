package textmesh

import "math"

// italicShear is the horizontal shear applied to italic glyphs, per
// pixel of height: 12 degrees expressed in radians.
const italicShear = float32(12 * math.Pi / 180)

// glyphPadding is added around each glyph quad, in both position and
// texture space, so antialiased edges are not clipped.
const glyphPadding = 1

// decorationTexCoord points into the opaque block every atlas reserves
// at its origin; decoration quads sample it for a solid color.
var decorationTexCoord = Point{X: 1, Y: 1}

// appendGlyphQuad appends the two triangles covering g drawn with its
// pen at pos.
func appendGlyphQuad(vertices []Vertex, pos Point, c Color, g Glyph, shear float32) []Vertex {
	left := g.Bounds.Left - glyphPadding
	top := g.Bounds.Top - glyphPadding
	right := g.Bounds.Right() + glyphPadding
	bottom := g.Bounds.Bottom() + glyphPadding

	u1 := float32(g.TextureRect.Min.X) - glyphPadding
	v1 := float32(g.TextureRect.Min.Y) - glyphPadding
	u2 := float32(g.TextureRect.Max.X) + glyphPadding
	v2 := float32(g.TextureRect.Max.Y) + glyphPadding

	topLeft := Vertex{Position: Point{X: pos.X + left - shear*top, Y: pos.Y + top}, Color: c, TexCoords: Point{X: u1, Y: v1}}
	topRight := Vertex{Position: Point{X: pos.X + right - shear*top, Y: pos.Y + top}, Color: c, TexCoords: Point{X: u2, Y: v1}}
	bottomLeft := Vertex{Position: Point{X: pos.X + left - shear*bottom, Y: pos.Y + bottom}, Color: c, TexCoords: Point{X: u1, Y: v2}}
	bottomRight := Vertex{Position: Point{X: pos.X + right - shear*bottom, Y: pos.Y + bottom}, Color: c, TexCoords: Point{X: u2, Y: v2}}

	return append(vertices, topLeft, topRight, bottomLeft, bottomLeft, topRight, bottomRight)
}

// appendLine appends an underline or strikethrough quad spanning
// [left, right] on the line whose baseline is at baseline. The stroke is
// centered on baseline+offset and snapped to whole pixels; outline grows
// the quad on all four sides.
func appendLine(vertices []Vertex, left, right, baseline float32, c Color, offset, thickness, outline float32) []Vertex {
	top := float32(math.Floor(float64(baseline + offset - thickness/2 + 0.5)))
	bottom := top + float32(math.Floor(float64(thickness+0.5)))

	left -= outline
	right += outline
	top -= outline
	bottom += outline

	topLeft := Vertex{Position: Point{X: left, Y: top}, Color: c, TexCoords: decorationTexCoord}
	topRight := Vertex{Position: Point{X: right, Y: top}, Color: c, TexCoords: decorationTexCoord}
	bottomLeft := Vertex{Position: Point{X: left, Y: bottom}, Color: c, TexCoords: decorationTexCoord}
	bottomRight := Vertex{Position: Point{X: right, Y: bottom}, Color: c, TexCoords: decorationTexCoord}

	return append(vertices, topLeft, topRight, bottomLeft, bottomLeft, topRight, bottomRight)
}

// buildGeometry rebuilds both vertex buffers and the bounds from the
// current content and style. The buffers must already be truncated.
func (t *Text) buildGeometry() {
	a := t.newAdvancer()
	t.updateLineOffsets(a)

	var shear float32
	if t.style.Has(Italic) {
		shear = italicShear
	}
	outlined := t.outlineThickness != 0

	// Decoration offsets from the baseline, underline first.
	var decorations []float32
	var stroke float32
	if t.style.Has(Underlined) || t.style.Has(StrikeThrough) {
		stroke = t.font.UnderlineThickness(t.characterSize)
	}
	if t.style.Has(Underlined) {
		decorations = append(decorations, t.font.UnderlinePosition(t.characterSize))
	}
	if t.style.Has(StrikeThrough) {
		// The center of a lowercase 'x' is the strikethrough height.
		ref := t.font.Glyph('x', t.characterSize, a.bold, 0)
		decorations = append(decorations, ref.Bounds.Center().Y)
	}
	decorate := func(left, right, baseline float32) {
		for _, offset := range decorations {
			t.vertices = appendLine(t.vertices, left, right, baseline, t.fillColor, offset, stroke, 0)
			if outlined {
				t.outlineVertices = appendLine(t.outlineVertices, left, right, baseline, t.outlineColor, offset, stroke, t.outlineThickness)
			}
		}
	}

	lineStart := t.lineOffsets[0]
	x := lineStart
	y := float32(t.characterSize)

	minX, minY := float32(t.characterSize), float32(t.characterSize)
	var maxX, maxY float32
	var prev rune
	line := 0

	for _, cur := range t.content {
		class := classify(cur)
		if class == classReturn {
			continue
		}

		x += a.kerning(prev, cur)

		if class == classNewline && prev != '\n' {
			decorate(lineStart, x, y)
		}
		prev = cur

		if class != classGlyph {
			minX = min(minX, x)
			minY = min(minY, y)

			if class == classNewline {
				y += a.spacing.LineSpacing
				line++
				lineStart = t.lineOffsets[line]
				x = lineStart
			} else {
				x = a.advance(x, cur, class)
			}

			maxX = max(maxX, x)
			maxY = max(maxY, y)
			continue
		}

		pen := Point{X: x, Y: y}
		if outlined {
			og := t.font.Glyph(cur, t.characterSize, a.bold, t.outlineThickness)
			t.outlineVertices = appendGlyphQuad(t.outlineVertices, pen, t.outlineColor, og, shear)
		}

		g := t.font.Glyph(cur, t.characterSize, a.bold, 0)
		t.vertices = appendGlyphQuad(t.vertices, pen, t.fillColor, g, shear)

		minX = min(minX, x+g.Bounds.Left-shear*g.Bounds.Bottom())
		maxX = max(maxX, x+g.Bounds.Right()-shear*g.Bounds.Top)
		minY = min(minY, y+g.Bounds.Top)
		maxY = max(maxY, y+g.Bounds.Bottom())

		x += a.glyphAdvance(g)
	}

	if x > 0 {
		decorate(lineStart, x, y)
	}

	if outlined {
		grow := float32(math.Ceil(math.Abs(float64(t.outlineThickness))))
		minX -= grow
		maxX += grow
		minY -= grow
		maxY += grow
	}

	t.bounds = Rect{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}
