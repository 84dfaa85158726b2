package textmesh

// Spacing holds the whitespace and line metrics derived from a Text's
// style and its font. It is recomputed for every layout pass.
type Spacing struct {
	// WhitespaceWidth is the advance of a space, letter spacing included.
	WhitespaceWidth float32

	// LetterSpacing is the extra advance added after every regular glyph.
	LetterSpacing float32

	// LineSpacing is the distance between two consecutive baselines.
	LineSpacing float32
}

// resolveSpacing derives Spacing from the font metrics at size.
//
// Letter spacing is proportional to the font's natural word gap: a
// factor of 1 adds nothing, a factor of 2 adds a third of a space.
func resolveSpacing(font Font, size uint, bold bool, letterFactor, lineFactor float32) Spacing {
	whitespace := font.Glyph(' ', size, bold, 0).Advance
	letter := (whitespace / 3) * (letterFactor - 1)
	return Spacing{
		WhitespaceWidth: whitespace + letter,
		LetterSpacing:   letter,
		LineSpacing:     font.LineSpacing(size) * lineFactor,
	}
}
