// Package font loads TrueType and OpenType fonts and rasterizes their
// glyphs into per-size texture atlases for use with textmesh.
//
// # Loading
//
//	fnt, err := font.Default()                   // embedded Go Regular
//	fnt, err := font.Load("fonts/Inter.ttf")     // from a file
//	fnt, err := font.FindSystem("DejaVuSans.ttf") // from system font dirs
//
// Options adjust hinting, kerning source, DPI and atlas sizing:
//
//	fnt, err := font.Default(font.WithHinting(font.HintingNone), font.WithKerning(font.KerningTable))
//
// # Atlases
//
// Each character size has its own [Atlas]. Glyph pixels are white with
// coverage in alpha, padded by one transparent texel, and a 2x2 opaque
// block is reserved at the origin for solid decoration quads. An atlas
// doubles in size when full; its ID changes on every growth so that
// cached geometry referring to it is rebuilt, and its Version changes
// whenever pixels change so that GPU copies can be refreshed.
//
// # Kerning
//
// By default pairs are shaped with the HarfBuzz port from
// go-text/typesetting, which honors GPOS pair positioning. Pairs that
// do not shape to two glyphs fall back to the font's 'kern' table.
package font
