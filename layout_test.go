package textmesh

import "testing"

func TestResolveSpacing(t *testing.T) {
	tests := []struct {
		name          string
		bold          bool
		letter, line  float32
		wantSpace     float32
		wantLetter    float32
		wantLineSpace float32
	}{
		{"natural", false, 1, 1, 10, 0, 30},
		{"bold space", true, 1, 1, 11, 0, 30},
		{"wide letters", false, 4, 1, 20, 10, 30},
		{"tight letters", false, 0.7, 1, 9, -1, 30},
		{"double lines", false, 1, 2, 10, 0, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := resolveSpacing(newFakeFont(), 20, tt.bold, tt.letter, tt.line)
			if !approx(s.WhitespaceWidth, tt.wantSpace) {
				t.Errorf("WhitespaceWidth = %v, want %v", s.WhitespaceWidth, tt.wantSpace)
			}
			if !approx(s.LetterSpacing, tt.wantLetter) {
				t.Errorf("LetterSpacing = %v, want %v", s.LetterSpacing, tt.wantLetter)
			}
			if !approx(s.LineSpacing, tt.wantLineSpace) {
				t.Errorf("LineSpacing = %v, want %v", s.LineSpacing, tt.wantLineSpace)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want charClass
	}{
		{'a', classGlyph},
		{' ', classSpace},
		{'\t', classTab},
		{'\n', classNewline},
		{'\r', classReturn},
		{'\u00a0', classGlyph},
	}
	for _, tt := range tests {
		if got := classify(tt.r); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestLineOffsets(t *testing.T) {
	tests := []struct {
		name    string
		content string
		align   LineAlignment
		kern    map[[2]rune]float32
		want    []float32
	}{
		{"empty", "", AlignLeft, nil, []float32{0}},
		{"single left", "Hello", AlignLeft, nil, []float32{0}},
		{"single center", "Hello", AlignCenter, nil, []float32{0}},
		{"left", "AAA\nA", AlignLeft, nil, []float32{0, 0}},
		{"center", "AAA\nA", AlignCenter, nil, []float32{0, 10}},
		{"right", "AAA\nA", AlignRight, nil, []float32{0, 20}},
		{"last line widest", "A\nAAA", AlignRight, nil, []float32{20, 0}},
		{"trailing newline", "AA\n", AlignRight, nil, []float32{0, 20}},
		{"blank middle line", "AA\n\nA", AlignCenter, nil, []float32{0, 10, 5}},
		{"tab width", "\t\nA", AlignRight, nil, []float32{0, 30}},
		{"carriage return measured", "AA\r\nA", AlignRight, nil, []float32{0, 20}},
		// 15 / 2 = 7.5 rounds away from zero.
		{"half pixel", "AA\nA", AlignCenter, map[[2]rune]float32{{'A', 'A'}: 5}, []float32{0, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeFont()
			for k, v := range tt.kern {
				f.kerning[k] = v
			}
			txt := NewText(f, tt.content, 20, WithAlignment(tt.align))
			txt.updateLineOffsets(txt.newAdvancer())

			if len(txt.lineOffsets) != len(tt.want) {
				t.Fatalf("lineOffsets = %v, want %v", txt.lineOffsets, tt.want)
			}
			for i := range tt.want {
				if !approx(txt.lineOffsets[i], tt.want[i]) {
					t.Errorf("lineOffsets = %v, want %v", txt.lineOffsets, tt.want)
					break
				}
			}
		})
	}
}

func TestLineOffsetsCarriageReturnSpacing(t *testing.T) {
	// Letter spacing 4 adds 10px after every glyph, the CR included:
	// line 0 is 40px wide, line 1 is 20px.
	txt := NewText(newFakeFont(), "A\r\nA", 20, WithAlignment(AlignRight), WithLetterSpacing(4))
	txt.updateLineOffsets(txt.newAdvancer())

	want := []float32{0, 20}
	if len(txt.lineOffsets) != len(want) || !approx(txt.lineOffsets[0], want[0]) || !approx(txt.lineOffsets[1], want[1]) {
		t.Errorf("lineOffsets = %v, want %v", txt.lineOffsets, want)
	}
}

func TestAlignOffset(t *testing.T) {
	tests := []struct {
		align           LineAlignment
		width, maxWidth float32
		want            float32
	}{
		{AlignLeft, 3, 10, 0},
		{AlignCenter, 3, 10, 4},
		{AlignCenter, 4, 10, 3},
		{AlignRight, 3, 10, 7},
		{AlignRight, 10, 10, 0},
		{LineAlignment(42), 3, 10, 0},
	}
	for _, tt := range tests {
		if got := alignOffset(tt.align, tt.width, tt.maxWidth); got != tt.want {
			t.Errorf("alignOffset(%v, %v, %v) = %v, want %v", tt.align, tt.width, tt.maxWidth, got, tt.want)
		}
	}
}

func TestFindCharacterPos(t *testing.T) {
	tests := []struct {
		name    string
		content string
		align   LineAlignment
		index   int
		want    Point
	}{
		{"start", "AB", AlignLeft, 0, Pt(0, 0)},
		{"after first", "A", AlignLeft, 1, Pt(10, 0)},
		{"end", "AB", AlignLeft, 2, Pt(20, 0)},
		{"clamped", "AB", AlignLeft, 100, Pt(20, 0)},
		{"negative", "AB", AlignLeft, -3, Pt(0, 0)},
		{"space and tab", "A \tB", AlignLeft, 3, Pt(60, 0)},
		{"next line", "A\nB", AlignLeft, 2, Pt(0, 30)},
		{"crlf", "A\r\nB", AlignLeft, 3, Pt(0, 30)},
		{"before line feed", "A\r\nB", AlignLeft, 2, Pt(20, 0)},
		{"before newline", "A\nB", AlignLeft, 1, Pt(10, 0)},
		{"centered second line", "AAAA\nAA", AlignCenter, 6, Pt(20, 30)},
		{"right aligned end", "AAAA\nAA", AlignRight, 7, Pt(40, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := NewText(newFakeFont(), tt.content, 20, WithAlignment(tt.align))
			if got := txt.FindCharacterPos(tt.index); !approxPoint(got, tt.want) {
				t.Errorf("FindCharacterPos(%d) = %+v, want %+v", tt.index, got, tt.want)
			}
		})
	}
}

func TestFindCharacterPosMatchesGeometry(t *testing.T) {
	f := newFakeFont()
	f.kerning[[2]rune{'A', 'V'}] = -3
	txt := NewText(f, "AV\n AV", 20, WithAlignment(AlignCenter))

	v := txt.Vertices()
	// Pen of the last glyph, recovered from its padded top-left corner.
	lastPen := Point{X: v[len(v)-verticesPerQuad].Position.X + glyphPadding}

	// The position query does not include the kerning into the queried
	// character, so add it back for the comparison.
	pos := txt.FindCharacterPos(5)
	if !approx(pos.X-3, lastPen.X) {
		t.Errorf("FindCharacterPos(5).X = %v, geometry pen = %v", pos.X, lastPen.X)
	}
	if !approx(pos.Y, 30) {
		t.Errorf("FindCharacterPos(5).Y = %v, want 30", pos.Y)
	}
}

func TestFindCharacterPosTransformed(t *testing.T) {
	txt := NewText(newFakeFont(), "AB", 20, WithPosition(Pt(100, 50)))
	if got := txt.FindCharacterPos(1); !approxPoint(got, Pt(110, 50)) {
		t.Errorf("FindCharacterPos(1) = %+v, want (110,50)", got)
	}

	txt.SetRotation(90)
	if got := txt.FindCharacterPos(1); !approxPoint(got, Pt(100, 60)) {
		t.Errorf("rotated FindCharacterPos(1) = %+v, want (100,60)", got)
	}
}
