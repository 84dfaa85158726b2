// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"

	"github.com/gogpu/textmesh"
)

// AtlasImage is implemented by textures whose pixels are available on
// the CPU, such as font.Atlas. Textures that do not implement it are
// sampled as opaque white.
type AtlasImage interface {
	Image() *image.NRGBA
}

// rasterizeTriangles draws a triangle list into dst.
//
// Pixels are covered when their center lies inside a triangle (top-left
// fill convention, no antialiasing: glyph edges are already smoothed by
// the atlas coverage). Texture coordinates are sampled nearest-texel and
// the texel modulates the vertex color before source-over blending.
func rasterizeTriangles(dst *image.RGBA, vertices []textmesh.Vertex, states textmesh.RenderStates) {
	var tex *image.NRGBA
	if ai, ok := states.Texture.(AtlasImage); ok {
		tex = ai.Image()
	}

	for i := 0; i+2 < len(vertices); i += 3 {
		var tri [3]textmesh.Vertex
		for j := range tri {
			tri[j] = vertices[i+j]
			tri[j].Position = states.Transform.TransformPoint(tri[j].Position)
		}
		fillTriangle(dst, tri, tex)
	}
}

func fillTriangle(dst *image.RGBA, tri [3]textmesh.Vertex, tex *image.NRGBA) {
	p0, p1, p2 := tri[0].Position, tri[1].Position, tri[2].Position

	area := edge(p0, p1, p2)
	if area == 0 {
		return
	}
	// Orient counter-clockwise in y-down space so the weights are positive.
	if area < 0 {
		tri[1], tri[2] = tri[2], tri[1]
		p1, p2 = p2, p1
		area = -area
	}

	b := dst.Bounds()
	minX := max(b.Min.X, int(math.Floor(float64(min(p0.X, p1.X, p2.X)))))
	maxX := min(b.Max.X, int(math.Ceil(float64(max(p0.X, p1.X, p2.X)))))
	minY := max(b.Min.Y, int(math.Floor(float64(min(p0.Y, p1.Y, p2.Y)))))
	maxY := min(b.Max.Y, int(math.Ceil(float64(max(p0.Y, p1.Y, p2.Y)))))

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := textmesh.Point{X: float32(x) + 0.5, Y: float32(y) + 0.5}
			w0 := edge(p1, p2, p)
			w1 := edge(p2, p0, p)
			w2 := edge(p0, p1, p)
			if !inside(w0, p1, p2) || !inside(w1, p2, p0) || !inside(w2, p0, p1) {
				continue
			}
			w0, w1, w2 = w0/area, w1/area, w2/area

			c := tri[0].Color
			if tex != nil {
				u := w0*tri[0].TexCoords.X + w1*tri[1].TexCoords.X + w2*tri[2].TexCoords.X
				v := w0*tri[0].TexCoords.Y + w1*tri[1].TexCoords.Y + w2*tri[2].TexCoords.Y
				c = c.Modulate(sample(tex, u, v))
			}
			blend(dst, x, y, c)
		}
	}
}

// edge returns twice the signed area of the triangle (a, b, p).
func edge(a, b, p textmesh.Point) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// inside applies the top-left rule so pixels on shared edges of
// adjacent triangles are filled exactly once.
func inside(w float32, a, b textmesh.Point) bool {
	if w != 0 {
		return w > 0
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	return dy < 0 || (dy == 0 && dx > 0)
}

// sample returns the texel containing (u, v) in pixel units; outside
// the image it is transparent.
func sample(tex *image.NRGBA, u, v float32) textmesh.Color {
	x := int(math.Floor(float64(u)))
	y := int(math.Floor(float64(v)))
	if !(image.Point{X: x, Y: y}).In(tex.Rect) {
		return textmesh.Transparent
	}
	n := tex.NRGBAAt(x, y)
	return textmesh.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// blend composites a non-premultiplied color over a premultiplied pixel.
func blend(dst *image.RGBA, x, y int, c textmesh.Color) {
	if c.A == 0 {
		return
	}
	off := dst.PixOffset(x, y)
	px := dst.Pix[off : off+4]
	a := uint32(c.A)
	inv := 255 - a
	px[0] = uint8((uint32(c.R)*a + uint32(px[0])*inv) / 255)
	px[1] = uint8((uint32(c.G)*a + uint32(px[1])*inv) / 255)
	px[2] = uint8((uint32(c.B)*a + uint32(px[2])*inv) / 255)
	px[3] = uint8((a*255 + uint32(px[3])*inv) / 255)
}
