// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/textmesh"
)

// PixmapTarget is a CPU-backed render target using *image.RGBA.
//
// It implements textmesh.RenderTarget by rasterizing the triangle lists
// it receives in software, sampling glyph coverage from the atlas.
// It is the default target for pure CPU rendering workflows.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	txt.Draw(target, textmesh.DefaultRenderStates())
//	img := target.Image()
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a new CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a render target.
// The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with the given color.
func (t *PixmapTarget) Clear(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	bounds := t.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t.img.SetRGBA(x, y, rgba)
		}
	}
}

// GetPixel returns the color at the given coordinates.
func (t *PixmapTarget) GetPixel(x, y int) color.Color {
	return t.img.At(x, y)
}

// SavePNG saves the target contents to a PNG file.
func (t *PixmapTarget) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, t.img)
}

// DrawVertices implements textmesh.RenderTarget.
func (t *PixmapTarget) DrawVertices(vertices []textmesh.Vertex, states textmesh.RenderStates) {
	rasterizeTriangles(t.img, vertices, states)
}

// Ensure PixmapTarget implements textmesh.RenderTarget.
var _ textmesh.RenderTarget = (*PixmapTarget)(nil)
