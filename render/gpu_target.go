// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/textmesh"
)

// Errors returned by GPUTarget.
var (
	// ErrNilDeviceHandle is returned when NewGPUTarget receives a nil handle.
	ErrNilDeviceHandle = errors.New("render: nil device handle")

	// ErrNilCreator is returned when NewGPUTarget receives a nil texture creator.
	ErrNilCreator = errors.New("render: nil texture creator")
)

// Batch is one draw call prepared by GPUTarget: a vertex buffer encoded
// with VertexLayout and the GPU texture it samples.
type Batch struct {
	// Vertices holds Count vertices of VertexStride bytes each.
	Vertices []byte

	// Count is the number of vertices.
	Count int

	// Texture is the GPU texture returned by the TextureCreator, or nil
	// for untextured geometry.
	Texture any
}

// gpuAtlas tracks the GPU copy of one atlas.
type gpuAtlas struct {
	texture any
	id      uint64
	version uint64
}

// versioned is implemented by atlases that report content changes.
type versioned interface {
	Version() uint64
}

// GPUTarget collects textmesh draws into GPU-ready batches.
//
// GPUTarget implements textmesh.RenderTarget. Each DrawVertices call is
// encoded into a Batch; atlases are uploaded through the TextureCreator
// on first use, re-uploaded when their Version changes and recreated
// when their ID changes. The host records the batches into its own
// render pass using VertexLayout, PrimitiveState and CompileShader.
//
// Example:
//
//	target, _ := render.NewGPUTarget(provider, renderer, 800, 600)
//	txt.Draw(target, textmesh.DefaultRenderStates())
//	for _, b := range target.Batches() {
//	    // bind b.Texture, upload b.Vertices, draw b.Count vertices
//	}
//	target.Reset()
type GPUTarget struct {
	handle  DeviceHandle
	creator TextureCreator
	width   int
	height  int

	batches  []Batch
	textures map[textmesh.Texture]*gpuAtlas
	err      error
}

// NewGPUTarget creates a GPU target of the given size in pixels.
func NewGPUTarget(handle DeviceHandle, creator TextureCreator, width, height int) (*GPUTarget, error) {
	if handle == nil {
		return nil, ErrNilDeviceHandle
	}
	if creator == nil {
		return nil, ErrNilCreator
	}
	return &GPUTarget{
		handle:   handle,
		creator:  creator,
		width:    width,
		height:   height,
		textures: make(map[textmesh.Texture]*gpuAtlas),
	}, nil
}

// Width returns the target width in pixels.
func (t *GPUTarget) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *GPUTarget) Height() int { return t.height }

// Format returns the surface format reported by the device handle,
// falling back to BGRA8 when the host does not report one.
func (t *GPUTarget) Format() gputypes.TextureFormat {
	if f := t.handle.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		return f
	}
	return gputypes.TextureFormatBGRA8Unorm
}

// Resize changes the viewport size used by the shader uniforms.
func (t *GPUTarget) Resize(width, height int) {
	t.width = width
	t.height = height
}

// Viewport returns the shader uniform block: width, height and padding.
func (t *GPUTarget) Viewport() [4]float32 {
	return [4]float32{float32(t.width), float32(t.height), 0, 0}
}

// DrawVertices implements textmesh.RenderTarget.
func (t *GPUTarget) DrawVertices(vertices []textmesh.Vertex, states textmesh.RenderStates) {
	if len(vertices) == 0 {
		return
	}

	var tex any
	var size image.Point
	if states.Texture != nil {
		var err error
		tex, err = t.upload(states.Texture)
		if err != nil {
			t.err = errors.Join(t.err, err)
			slogger().Warn("render: atlas upload failed", "err", err)
			return
		}
		size = states.Texture.Size()
	}

	t.batches = append(t.batches, Batch{
		Vertices: EncodeVertices(nil, vertices, states.Transform, size),
		Count:    len(vertices),
		Texture:  tex,
	})
}

// Batches returns the batches recorded since the last Reset.
func (t *GPUTarget) Batches() []Batch { return t.batches }

// Err returns the errors accumulated since the last Reset.
func (t *GPUTarget) Err() error { return t.err }

// Reset clears recorded batches and errors. GPU textures are kept.
func (t *GPUTarget) Reset() {
	t.batches = t.batches[:0]
	t.err = nil
}

// Close destroys all GPU textures created by the target.
func (t *GPUTarget) Close() {
	for key, a := range t.textures {
		destroy(a.texture)
		delete(t.textures, key)
	}
}

// upload returns the GPU texture for atlas, creating or refreshing it.
func (t *GPUTarget) upload(atlas textmesh.Texture) (any, error) {
	ai, ok := atlas.(AtlasImage)
	if !ok {
		return nil, fmt.Errorf("render: texture %T has no CPU pixels", atlas)
	}

	var version uint64
	if v, ok := atlas.(versioned); ok {
		version = v.Version()
	}

	cur := t.textures[atlas]
	switch {
	case cur != nil && cur.id == atlas.ID() && cur.version == version:
		return cur.texture, nil

	case cur != nil && cur.id == atlas.ID():
		if updater, ok := cur.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(ai.Image().Pix); err != nil {
				return nil, fmt.Errorf("render: atlas update failed: %w", err)
			}
			cur.version = version
			return cur.texture, nil
		}
	}

	img := ai.Image()
	size := img.Rect.Size()
	created, err := t.creator.NewTextureFromRGBA(size.X, size.Y, img.Pix)
	if err != nil {
		return nil, fmt.Errorf("render: NewTextureFromRGBA failed: %w", err)
	}
	if cur != nil {
		destroy(cur.texture)
	}
	t.textures[atlas] = &gpuAtlas{texture: created, id: atlas.ID(), version: version}

	slogger().Debug("render: atlas uploaded", "id", atlas.ID(), "width", size.X, "height", size.Y)
	return created, nil
}

func destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
