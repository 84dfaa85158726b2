// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/textmesh"
)

//go:embed shaders/text.wgsl
var textShaderSource string

// VertexStride is the size in bytes of one encoded vertex:
// position (2 x f32), color (4 x f32), texture coordinates (2 x f32).
const VertexStride = 32

// ShaderSource returns the WGSL source of the text shader.
func ShaderSource() string {
	return textShaderSource
}

// CompileShader compiles the text shader to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(textShaderSource)
	if err != nil {
		return nil, fmt.Errorf("render: failed to compile text shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return spirvCode, nil
}

// VertexLayout returns the vertex buffer layout matching EncodeVertices.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1},  // color
				{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2}, // tex_coords
			},
		},
	}
}

// PrimitiveState returns the primitive state for textmesh triangle lists.
// Italic shear and negative scales flip winding, so culling is disabled.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// AtlasFormat is the texture format atlases are uploaded in.
const AtlasFormat = gputypes.TextureFormatRGBA8Unorm

// EncodeVertices appends the GPU encoding of vertices to dst.
//
// Positions are transformed by m on the CPU and texture coordinates are
// normalized by atlasSize; a zero atlasSize leaves them unnormalized.
func EncodeVertices(dst []byte, vertices []textmesh.Vertex, m textmesh.Matrix, atlasSize image.Point) []byte {
	su, sv := float32(1), float32(1)
	if atlasSize.X > 0 && atlasSize.Y > 0 {
		su, sv = 1/float32(atlasSize.X), 1/float32(atlasSize.Y)
	}

	var buf [VertexStride]byte
	for _, v := range vertices {
		p := m.TransformPoint(v.Position)
		c := v.Color.Floats()
		putFloats(buf[:],
			p.X, p.Y,
			c[0], c[1], c[2], c[3],
			v.TexCoords.X*su, v.TexCoords.Y*sv,
		)
		dst = append(dst, buf[:]...)
	}
	return dst
}

func putFloats(b []byte, fs ...float32) {
	for i, f := range fs {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(f))
	}
}
