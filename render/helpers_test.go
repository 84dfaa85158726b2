// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/textmesh"
)

// quad builds the two triangles of an axis-aligned rectangle in the
// same vertex order textmesh uses.
func quad(x0, y0, x1, y1 float32, c textmesh.Color, u0, v0, u1, v1 float32) []textmesh.Vertex {
	tl := textmesh.Vertex{Position: textmesh.Pt(x0, y0), Color: c, TexCoords: textmesh.Pt(u0, v0)}
	tr := textmesh.Vertex{Position: textmesh.Pt(x1, y0), Color: c, TexCoords: textmesh.Pt(u1, v0)}
	bl := textmesh.Vertex{Position: textmesh.Pt(x0, y1), Color: c, TexCoords: textmesh.Pt(u0, v1)}
	br := textmesh.Vertex{Position: textmesh.Pt(x1, y1), Color: c, TexCoords: textmesh.Pt(u1, v1)}
	return []textmesh.Vertex{tl, tr, bl, bl, tr, br}
}

// testAtlas is an in-memory atlas with settable ID and version.
type testAtlas struct {
	id      uint64
	version uint64
	img     *image.NRGBA
}

func newTestAtlas(size int) *testAtlas {
	return &testAtlas{id: 1, img: image.NewNRGBA(image.Rect(0, 0, size, size))}
}

func (a *testAtlas) ID() uint64          { return a.id }
func (a *testAtlas) Version() uint64     { return a.version }
func (a *testAtlas) Size() image.Point   { return a.img.Rect.Size() }
func (a *testAtlas) Image() *image.NRGBA { return a.img }

// opaqueTexture has no CPU pixels.
type opaqueTexture struct{}

func (opaqueTexture) ID() uint64        { return 99 }
func (opaqueTexture) Size() image.Point { return image.Pt(8, 8) }

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct {
	format gputypes.TextureFormat
}

func (m *mockProvider) Device() gpucontext.Device             { return nil }
func (m *mockProvider) Queue() gpucontext.Queue               { return nil }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return nil }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }

func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// mockTexture records updates and destruction.
type mockTexture struct {
	width, height int
	updates       int
	destroyed     bool
}

func (m *mockTexture) UpdateData(data []byte) error {
	if len(data) != m.width*m.height*4 {
		return errors.New("size mismatch")
	}
	m.updates++
	return nil
}

func (m *mockTexture) Destroy() { m.destroyed = true }

// mockCreator implements TextureCreator.
type mockCreator struct {
	created []*mockTexture
	fail    bool
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (any, error) {
	if m.fail {
		return nil, errors.New("device lost")
	}
	if len(data) != width*height*4 {
		return nil, errors.New("size mismatch")
	}
	tex := &mockTexture{width: width, height: height}
	m.created = append(m.created, tex)
	return tex, nil
}
