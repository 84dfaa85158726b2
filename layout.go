package textmesh

import "math"

// tabWidth is the number of whitespace widths a tab advances by.
// Tabs are a flat multiple; they do not snap to column stops.
const tabWidth = 4

// charClass partitions characters by how they move the cursor.
type charClass uint8

const (
	classGlyph charClass = iota
	classSpace
	classTab
	classNewline
	classReturn
)

func classify(r rune) charClass {
	switch r {
	case ' ':
		return classSpace
	case '\t':
		return classTab
	case '\n':
		return classNewline
	case '\r':
		return classReturn
	default:
		return classGlyph
	}
}

// advancer holds the cursor rules shared by the line width pass, the
// geometry builder and the character position query, so the three walks
// always agree on where each character lands.
//
// Carriage returns are measured like any other glyph by the line width
// pass and the position query; only the geometry builder skips them.
type advancer struct {
	font    Font
	size    uint
	bold    bool
	spacing Spacing
}

func (t *Text) newAdvancer() advancer {
	bold := t.style.Has(Bold)
	return advancer{
		font:    t.font,
		size:    t.characterSize,
		bold:    bold,
		spacing: resolveSpacing(t.font, t.characterSize, bold, t.letterSpacingFactor, t.lineSpacingFactor),
	}
}

// kerning returns the adjustment applied before placing cur after prev.
func (a advancer) kerning(prev, cur rune) float32 {
	return a.font.Kerning(prev, cur, a.size, a.bold)
}

// glyphAdvance returns the cursor advance after a regular glyph.
func (a advancer) glyphAdvance(g Glyph) float32 {
	return g.Advance + a.spacing.LetterSpacing
}

// advance moves x across cur. Newlines are left to the caller and do
// not move x here.
func (a advancer) advance(x float32, cur rune, class charClass) float32 {
	switch class {
	case classSpace:
		return x + a.spacing.WhitespaceWidth
	case classTab:
		return x + a.spacing.WhitespaceWidth*tabWidth
	case classNewline:
		return x
	default:
		return x + a.glyphAdvance(a.font.Glyph(cur, a.size, a.bold, 0))
	}
}

// updateLineOffsets measures every line and stores, per line, the
// horizontal offset at which it starts under the current alignment.
// There is always at least one entry.
func (t *Text) updateLineOffsets(a advancer) {
	t.lineOffsets = t.lineOffsets[:0]

	var x, maxWidth float32
	var prev rune
	for _, cur := range t.content {
		class := classify(cur)
		x += a.kerning(prev, cur)
		prev = cur

		if class == classNewline {
			maxWidth = max(maxWidth, x)
			t.lineOffsets = append(t.lineOffsets, x)
			x = 0
			continue
		}
		x = a.advance(x, cur, class)
	}

	// The trailing line, which is the whole string when there is no newline.
	maxWidth = max(maxWidth, x)
	t.lineOffsets = append(t.lineOffsets, x)

	for i, width := range t.lineOffsets {
		t.lineOffsets[i] = alignOffset(t.lineAlignment, width, maxWidth)
	}
}

// alignOffset converts a line width into its starting offset, rounded
// half away from zero to a whole pixel.
func alignOffset(align LineAlignment, width, maxWidth float32) float32 {
	var offset float32
	switch align {
	case AlignCenter:
		offset = (maxWidth - width) / 2
	case AlignRight:
		offset = maxWidth - width
	default:
		offset = 0
	}
	return float32(math.Round(float64(offset)))
}
