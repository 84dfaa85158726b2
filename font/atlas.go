package font

import (
	"image"
	"image/color"
	"sync/atomic"

	"golang.org/x/image/draw"
)

// glyphPadding is the transparent border kept around every glyph in
// the atlas; quads sample one texel beyond the glyph rectangle.
const glyphPadding = 1

// whiteBlockSize is the side of the opaque block reserved at the atlas
// origin. Underline and strikethrough quads sample its center.
const whiteBlockSize = 2

// atlasIDs hands out allocation IDs. IDs are never reused, so a Text
// can detect that an atlas was reallocated by comparing IDs.
var atlasIDs atomic.Uint64

// Atlas is the glyph texture for one character size of a [Font].
//
// Pixels are white with coverage in the alpha channel, so the vertex
// color tints glyphs directly. An Atlas implements textmesh.Texture.
type Atlas struct {
	id      atomic.Uint64
	version atomic.Uint64

	img     *image.NRGBA
	packer  *shelfAllocator
	maxSize int
}

func newAtlas(size, maxSize int) *Atlas {
	a := &Atlas{
		img:     image.NewNRGBA(image.Rect(0, 0, size, size)),
		packer:  newShelfAllocator(size, size),
		maxSize: maxSize,
	}
	a.id.Store(atlasIDs.Add(1))

	x, y, _ := a.packer.allocate(whiteBlockSize, whiteBlockSize)
	draw.Draw(a.img, image.Rect(x, y, x+whiteBlockSize, y+whiteBlockSize),
		image.NewUniform(color.White), image.Point{}, draw.Src)
	return a
}

// ID identifies the current pixel allocation. It changes when the
// atlas grows.
func (a *Atlas) ID() uint64 { return a.id.Load() }

// Version increases whenever pixels change, including growth. GPU
// targets use it to decide when to re-upload.
func (a *Atlas) Version() uint64 { return a.version.Load() }

// Size returns the atlas dimensions in pixels.
func (a *Atlas) Size() image.Point { return a.img.Rect.Size() }

// Image returns the atlas pixels. The image is replaced when the atlas
// grows, and must not be read while glyphs are being loaded.
func (a *Atlas) Image() *image.NRGBA { return a.img }

// insert copies a coverage mask into the atlas and returns the
// rectangle it occupies, growing the atlas if needed.
func (a *Atlas) insert(mask *image.Alpha) (image.Rectangle, error) {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	pw, ph := w+2*glyphPadding, h+2*glyphPadding

	x, y, ok := a.packer.allocate(pw, ph)
	for !ok {
		if err := a.grow(); err != nil {
			return image.Rectangle{}, err
		}
		x, y, ok = a.packer.allocate(pw, ph)
	}

	dst := image.Rect(x+glyphPadding, y+glyphPadding, x+glyphPadding+w, y+glyphPadding+h)
	for row := 0; row < h; row++ {
		src := mask.Pix[mask.PixOffset(mask.Rect.Min.X, mask.Rect.Min.Y+row):][:w]
		off := a.img.PixOffset(dst.Min.X, dst.Min.Y+row)
		for col, cov := range src {
			p := a.img.Pix[off+col*4 : off+col*4+4]
			p[0], p[1], p[2], p[3] = 0xff, 0xff, 0xff, cov
		}
	}
	a.version.Add(1)
	return dst, nil
}

// grow doubles both dimensions, keeping existing pixels in place.
func (a *Atlas) grow() error {
	size := a.img.Rect.Dx()
	if size*2 > a.maxSize {
		return ErrAtlasFull
	}

	img := image.NewNRGBA(image.Rect(0, 0, size*2, size*2))
	draw.Draw(img, a.img.Rect, a.img, image.Point{}, draw.Src)
	a.img = img
	a.packer.resize(size*2, size*2)
	a.id.Store(atlasIDs.Add(1))
	a.version.Add(1)

	slogger().Debug("font: atlas grown", "size", size*2, "id", a.ID())
	return nil
}
