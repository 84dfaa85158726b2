package font

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textmesh"
)

// Font is a TrueType/OpenType font rasterized into one glyph atlas per
// character size. It implements [textmesh.Font].
//
// Glyphs are rasterized on first use. Bold glyphs are the regular
// outline grown by one pixel; outlined glyphs are grown further by the
// outline thickness rounded up. Any lookup may grow the atlas of its
// size, which changes the atlas ID.
//
// Font is safe for concurrent use.
type Font struct {
	mu sync.Mutex

	cfg    Config
	otf    *opentype.Font
	kerner *pairShaper
	name   string
	pages  map[uint]*page

	// Underline metrics from the post table, in ems, y down.
	// hasPost is false when the font has no usable table.
	underlinePos   float64
	underlineThick float64
	hasPost        bool
}

// page holds everything cached for one character size.
type page struct {
	face   xfont.Face
	pixels float64
	atlas  *Atlas
	glyphs map[glyphKey]textmesh.Glyph
	kerns  map[[2]rune]float32
}

type glyphKey struct {
	r       rune
	bold    bool
	outline float32
}

var _ textmesh.Font = (*Font)(nil)

// Parse loads a font from TrueType or OpenType data.
func Parse(data []byte, opts ...Option) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}

	f := &Font{
		cfg:   cfg,
		otf:   otf,
		pages: make(map[uint]*page),
	}
	if name, err := otf.Name(nil, sfnt.NameIDFamily); err == nil {
		f.name = name
	}
	if post, upem := otf.PostTable(), float64(otf.UnitsPerEm()); post != nil && upem > 0 {
		f.underlinePos = -float64(post.UnderlinePosition) / upem
		f.underlineThick = float64(post.UnderlineThickness) / upem
		f.hasPost = true
	}

	if cfg.Kerning == KerningGPOS {
		k, err := newPairShaper(data)
		if err != nil {
			slogger().Warn("font: shaping unavailable, using kern table", "font", f.name, "err", err)
		} else {
			f.kerner = k
		}
	}
	return f, nil
}

// Load reads and parses a font file.
func Load(path string, opts ...Option) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	return Parse(data, opts...)
}

// FindSystem locates an installed font by file name (for example
// "DejaVuSans.ttf" or "arial") in the platform font directories and
// loads it.
func FindSystem(name string, opts ...Option) (*Font, error) {
	path, err := findfont.Find(name)
	if err != nil {
		slogger().Debug("font: system lookup failed", "name", name, "err", err)
		return nil, fmt.Errorf("%w: %s", ErrFontNotFound, name)
	}
	return Load(path, opts...)
}

// Default returns a new Font using the embedded Go Regular typeface.
func Default(opts ...Option) (*Font, error) {
	return Parse(goregular.TTF, opts...)
}

// DefaultBold returns a new Font using the embedded Go Bold typeface.
func DefaultBold(opts ...Option) (*Font, error) {
	return Parse(gobold.TTF, opts...)
}

// Name returns the font family name, or "" if the font has none.
func (f *Font) Name() string { return f.name }

// Config returns the configuration the font was loaded with.
func (f *Font) Config() Config { return f.cfg }

// Glyph implements textmesh.Font.
func (f *Font) Glyph(r rune, size uint, bold bool, outlineThickness float32) textmesh.Glyph {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := f.page(size)
	key := glyphKey{r: r, bold: bold, outline: outlineThickness}
	if g, ok := p.glyphs[key]; ok {
		return g
	}
	g := f.loadGlyph(p, r, bold, outlineThickness)
	p.glyphs[key] = g
	return g
}

// Kerning implements textmesh.Font. Kerning does not depend on bold.
func (f *Font) Kerning(first, second rune, size uint, _ bool) float32 {
	if first == 0 || second == 0 || f.cfg.Kerning == KerningNone {
		return 0
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	p := f.page(size)
	pair := [2]rune{first, second}
	if k, ok := p.kerns[pair]; ok {
		return k
	}

	var k float32
	ok := false
	if f.kerner != nil {
		k, ok = f.kerner.kerning(first, second, p.pixels)
	}
	if !ok && p.face != nil {
		k = fixedToFloat32(p.face.Kern(first, second))
	}
	p.kerns[pair] = k
	return k
}

// LineSpacing implements textmesh.Font.
func (f *Font) LineSpacing(size uint) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := f.page(size)
	if p.face == nil {
		return 0
	}
	return fixedToFloat32(p.face.Metrics().Height)
}

// UnderlinePosition implements textmesh.Font using the post table.
// Fonts without one get a tenth of the pixel size below the baseline.
func (f *Font) UnderlinePosition(size uint) float32 {
	if !f.hasPost {
		return float32(f.pixelSize(size) / 10)
	}
	return float32(f.underlinePos * f.pixelSize(size))
}

// UnderlineThickness implements textmesh.Font using the post table.
// Fonts without one get a fourteenth of the pixel size, at least one
// pixel.
func (f *Font) UnderlineThickness(size uint) float32 {
	if !f.hasPost {
		return float32(max(1, f.pixelSize(size)/14))
	}
	return float32(f.underlineThick * f.pixelSize(size))
}

// Texture implements textmesh.Font. It returns the atlas for size.
func (f *Font) Texture(size uint) textmesh.Texture {
	return f.Atlas(size)
}

// Atlas returns the concrete atlas for size, creating it if needed.
func (f *Font) Atlas(size uint) *Atlas {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page(size).atlas
}

func (f *Font) pixelSize(size uint) float64 {
	return float64(size) * f.cfg.DPI / 72
}

// page returns the cache for size, creating it on first use.
// f.mu must be held.
func (f *Font) page(size uint) *page {
	if p, ok := f.pages[size]; ok {
		return p
	}

	p := &page{
		pixels: f.pixelSize(size),
		atlas:  newAtlas(f.cfg.InitialAtlasSize, f.cfg.MaxAtlasSize),
		glyphs: make(map[glyphKey]textmesh.Glyph),
		kerns:  make(map[[2]rune]float32),
	}
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     f.cfg.DPI,
		Hinting: f.cfg.Hinting.ximage(),
	})
	if err != nil {
		slogger().Warn("font: cannot create face", "font", f.name, "size", size, "err", err)
	} else {
		p.face = face
	}
	f.pages[size] = p
	return p
}

// loadGlyph rasterizes r and packs it into the page atlas.
func (f *Font) loadGlyph(p *page, r rune, bold bool, outline float32) textmesh.Glyph {
	if p.face == nil {
		return textmesh.Glyph{}
	}

	dr, mask, maskp, advance, ok := p.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return textmesh.Glyph{}
	}

	g := textmesh.Glyph{Advance: fixedToFloat32(advance)}
	if bold {
		g.Advance++
	}
	if dr.Empty() {
		return g
	}

	radius := 0
	if bold {
		radius++
	}
	if outline != 0 {
		radius += int(math.Ceil(math.Abs(float64(outline))))
	}

	cov := dilate(coverage(mask, maskp, dr.Size(), radius), radius)
	rect, err := p.atlas.insert(cov)
	if err != nil {
		slogger().Warn("font: glyph dropped", "rune", string(r), "size", p.pixels, "err", err)
		return g
	}

	g.Bounds = textmesh.Rect{
		Left:   float32(dr.Min.X - radius),
		Top:    float32(dr.Min.Y - radius),
		Width:  float32(rect.Dx()),
		Height: float32(rect.Dy()),
	}
	g.TextureRect = rect
	return g
}

// fixedToFloat32 converts fixed.Int26_6 to float32.
func fixedToFloat32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
