package font

import (
	"bytes"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// pairShaper measures kerning by shaping character pairs with HarfBuzz.
// HarfBuzz applies GPOS pair adjustments, and the legacy 'kern' table
// for fonts without GPOS, to the advance of the first glyph; comparing
// it against the first glyph shaped alone yields the kerning.
//
// pairShaper is not safe for concurrent use; Font serializes access.
type pairShaper struct {
	face   *gtfont.Face
	shaper shaping.HarfbuzzShaper
	lang   language.Language
}

func newPairShaper(data []byte) (*pairShaper, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &pairShaper{
		face: face,
		lang: language.NewLanguage("en"),
	}, nil
}

// kerning returns the pair adjustment at the given pixel size. ok is
// false when the pair does not shape to two glyphs (a ligature, for
// example), in which case the caller should use another source.
func (s *pairShaper) kerning(first, second rune, pixelSize float64) (k float32, ok bool) {
	input := shaping.Input{
		Text:      []rune{first, second},
		RunStart:  0,
		RunEnd:    2,
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      fixed.Int26_6(pixelSize * 64),
		Script:    pairScript(first, second),
		Language:  s.lang,
	}
	pair := s.shaper.Shape(input)
	if len(pair.Glyphs) != 2 {
		return 0, false
	}
	pairAdvance := pair.Glyphs[0].Advance

	input.Text = input.Text[:1]
	input.RunEnd = 1
	single := s.shaper.Shape(input)
	if len(single.Glyphs) != 1 {
		return 0, false
	}

	return float32(pairAdvance-single.Glyphs[0].Advance) / 64, true
}

// pairScript returns the script of the first non-space rune of a pair.
func pairScript(first, second rune) language.Script {
	for _, r := range [2]rune{first, second} {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
