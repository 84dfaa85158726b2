package font

import (
	"image"

	"golang.org/x/image/draw"
)

// coverage copies a glyph mask into a standalone alpha image of size sz,
// surrounded by a transparent margin of radius pixels.
func coverage(mask image.Image, maskp image.Point, sz image.Point, radius int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, sz.X+2*radius, sz.Y+2*radius))
	draw.Draw(dst, image.Rect(radius, radius, radius+sz.X, radius+sz.Y), mask, maskp, draw.Src)
	return dst
}

// dilate grows the covered area by radius pixels using a disc shaped
// maximum filter. It is how bold and outlined glyph variants are
// derived from the regular rasterization.
func dilate(src *image.Alpha, radius int) *image.Alpha {
	if radius <= 0 {
		return src
	}

	b := src.Rect
	dst := image.NewAlpha(b)
	r2 := radius * radius
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var m uint8
			for dy := -radius; dy <= radius && m < 0xff; dy++ {
				sy := y + dy
				if sy < b.Min.Y || sy >= b.Max.Y {
					continue
				}
				for dx := -radius; dx <= radius; dx++ {
					sx := x + dx
					if sx < b.Min.X || sx >= b.Max.X || dx*dx+dy*dy > r2 {
						continue
					}
					m = max(m, src.Pix[src.PixOffset(sx, sy)])
				}
			}
			dst.Pix[dst.PixOffset(x, y)] = m
		}
	}
	return dst
}
