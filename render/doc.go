// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides render targets for textmesh geometry.
//
// # Targets
//
//   - PixmapTarget: CPU-backed *image.RGBA target with a software
//     triangle rasterizer that samples glyph coverage from the atlas
//   - GPUTarget: encodes draws into GPU-ready vertex batches and keeps
//     atlas textures uploaded through a host-provided TextureCreator
//
// Both implement textmesh.RenderTarget, so a Text draws into either:
//
//	target := render.NewPixmapTarget(800, 600)
//	txt.Draw(target, textmesh.DefaultRenderStates())
//	_ = target.SavePNG("out.png")
//
// # GPU Integration
//
// textmesh RECEIVES a GPU device from the host application, it does NOT
// create its own. The host supplies a DeviceHandle (for the surface
// format) and a TextureCreator, builds a render pipeline from
// VertexLayout, PrimitiveState and CompileShader, and records the
// batches returned by GPUTarget.Batches each frame:
//
//	target, err := render.NewGPUTarget(provider, creator, w, h)
//	txt.Draw(target, textmesh.DefaultRenderStates())
//	for _, b := range target.Batches() {
//	    // bind b.Texture, write b.Vertices, draw b.Count vertices
//	}
//	target.Reset()
package render
