package textmesh

import "strings"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Style is a bit set of typographic style flags. Flags combine freely.
type Style uint32

// Regular is the plain style with no flags set.
const Regular Style = 0

const (
	// Bold selects the bold glyph variant.
	Bold Style = 1 << iota
	// Italic shears glyphs horizontally.
	Italic
	// Underlined draws a line under each line of text.
	Underlined
	// StrikeThrough draws a line through each line of text.
	StrikeThrough
)

// Has reports whether all flags in f are set in s.
func (s Style) Has(f Style) bool {
	return s&f == f
}

// String returns the set flags joined by '|', or "Regular".
func (s Style) String() string {
	if s == Regular {
		return "Regular"
	}
	var parts []string
	for _, f := range []struct {
		flag Style
		name string
	}{
		{Bold, "Bold"},
		{Italic, "Italic"},
		{Underlined, "Underlined"},
		{StrikeThrough, "StrikeThrough"},
	} {
		if s.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	if len(parts) == 0 {
		return unknownStr
	}
	return strings.Join(parts, "|")
}

// LineAlignment controls the horizontal placement of each line
// relative to the widest line.
type LineAlignment int

const (
	// AlignLeft places every line at x = 0.
	AlignLeft LineAlignment = iota
	// AlignCenter centers each line within the widest line.
	AlignCenter
	// AlignRight aligns the right edge of each line with the widest line.
	AlignRight
)

// String returns the string representation of the alignment.
func (a LineAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}
