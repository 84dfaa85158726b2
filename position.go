package textmesh

// FindCharacterPos returns the position of the character at index,
// in the Text's parent coordinate space (its transform applied).
//
// The position is the pen position on the top of the line where the
// character would be drawn, consistent with the generated geometry.
// An index past the end is clamped to the content length, which yields
// the position right after the last character.
func (t *Text) FindCharacterPos(index int) Point {
	index = max(0, min(index, len(t.content)))
	if t.font == nil {
		return t.Transform().TransformPoint(Point{})
	}

	a := t.newAdvancer()
	t.updateLineOffsets(a)

	line := 0
	pos := Point{X: t.lineOffsets[0]}
	var prev rune
	for _, cur := range t.content[:index] {
		class := classify(cur)
		pos.X += a.kerning(prev, cur)
		prev = cur

		if class == classNewline {
			line++
			pos.Y += a.spacing.LineSpacing
			pos.X = t.lineOffsets[line]
			continue
		}
		pos.X = a.advance(pos.X, cur, class)
	}

	return t.Transform().TransformPoint(pos)
}
