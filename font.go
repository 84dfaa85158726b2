package textmesh

import "image"

// Glyph describes one rasterized character of a font at a given size
// and style.
type Glyph struct {
	// Advance is the horizontal offset to the next character, in pixels.
	Advance float32

	// Bounds is the glyph box relative to the pen position on the
	// baseline. Y grows downward, so Top is usually negative.
	Bounds Rect

	// TextureRect is the glyph's pixel rectangle in the font atlas.
	TextureRect image.Rectangle
}

// Texture is a font atlas as seen by the layout core.
//
// ID identifies the underlying allocation. It must change whenever
// the atlas is reallocated (for example, grown to fit new glyphs),
// because texture coordinates computed against the old allocation
// can no longer be trusted.
type Texture interface {
	ID() uint64
	Size() image.Point
}

// Font supplies glyphs and metrics to a [Text].
//
// A Font is shared and externally owned; Text only reads it. Lookups
// are expected to always succeed, returning a zero-size fallback glyph
// when a character is missing. Glyph lookups may reallocate the atlas
// returned by Texture as a side effect.
type Font interface {
	// Glyph returns the glyph for r. A non-zero outlineThickness selects
	// the outlined variant, whose advance is identical to the plain one.
	Glyph(r rune, size uint, bold bool, outlineThickness float32) Glyph

	// Kerning returns the horizontal adjustment between first and second.
	// first may be 0 at the start of the string.
	Kerning(first, second rune, size uint, bold bool) float32

	// LineSpacing returns the natural distance between two baselines.
	LineSpacing(size uint) float32

	// UnderlinePosition returns the offset of the underline from the
	// baseline, positive downward.
	UnderlinePosition(size uint) float32

	// UnderlineThickness returns the stroke thickness of the underline.
	UnderlineThickness(size uint) float32

	// Texture returns the atlas holding the glyphs of the given size.
	Texture(size uint) Texture
}
