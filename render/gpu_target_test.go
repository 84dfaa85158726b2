// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/textmesh"
	"github.com/gogpu/textmesh/font"
)

func newTestGPUTarget(t *testing.T) (*GPUTarget, *mockCreator) {
	t.Helper()
	creator := &mockCreator{}
	target, err := NewGPUTarget(&mockProvider{}, creator, 800, 600)
	if err != nil {
		t.Fatalf("NewGPUTarget() error = %v", err)
	}
	return target, creator
}

func TestNewGPUTarget_Errors(t *testing.T) {
	if _, err := NewGPUTarget(nil, &mockCreator{}, 1, 1); !errors.Is(err, ErrNilDeviceHandle) {
		t.Errorf("nil handle error = %v, want ErrNilDeviceHandle", err)
	}
	if _, err := NewGPUTarget(NullDeviceHandle{}, nil, 1, 1); !errors.Is(err, ErrNilCreator) {
		t.Errorf("nil creator error = %v, want ErrNilCreator", err)
	}
}

func TestGPUTarget_Format(t *testing.T) {
	tests := []struct {
		name    string
		surface gputypes.TextureFormat
		want    gputypes.TextureFormat
	}{
		{"reported", gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8Unorm},
		{"fallback", gputypes.TextureFormatUndefined, gputypes.TextureFormatBGRA8Unorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := NewGPUTarget(&mockProvider{format: tt.surface}, &mockCreator{}, 1, 1)
			if err != nil {
				t.Fatal(err)
			}
			if got := target.Format(); got != tt.want {
				t.Errorf("Format() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGPUTarget_NullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}
	_ = handle.AdapterInfo()
	if handle.Device() != nil || handle.Queue() != nil || handle.Adapter() != nil {
		t.Error("NullDeviceHandle returned a non-nil GPU object")
	}

	target, err := NewGPUTarget(handle, &mockCreator{}, 4, 4)
	if err != nil {
		t.Fatalf("NewGPUTarget() error = %v", err)
	}
	if got := target.Format(); got != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format() = %v, want BGRA8Unorm fallback", got)
	}
}

func TestGPUTarget_Viewport(t *testing.T) {
	target, _ := newTestGPUTarget(t)
	target.Resize(320, 240)
	if got := target.Viewport(); got != [4]float32{320, 240, 0, 0} {
		t.Errorf("Viewport() = %v", got)
	}
	if target.Width() != 320 || target.Height() != 240 {
		t.Errorf("size = %dx%d", target.Width(), target.Height())
	}
}

func TestGPUTarget_ReusesAtlas(t *testing.T) {
	target, creator := newTestGPUTarget(t)
	atlas := newTestAtlas(8)
	states := textmesh.RenderStates{Transform: textmesh.Identity(), Texture: atlas}

	target.DrawVertices(quad(0, 0, 4, 4, textmesh.White, 0, 0, 4, 4), states)
	target.DrawVertices(quad(4, 0, 8, 4, textmesh.White, 4, 0, 8, 4), states)

	if len(creator.created) != 1 {
		t.Fatalf("textures created = %d, want 1", len(creator.created))
	}
	batches := target.Batches()
	if len(batches) != 2 {
		t.Fatalf("batches = %d, want 2", len(batches))
	}
	for i, b := range batches {
		if b.Count != 6 || len(b.Vertices) != 6*VertexStride {
			t.Errorf("batch %d: count %d, %d bytes", i, b.Count, len(b.Vertices))
		}
		if b.Texture != creator.created[0] {
			t.Errorf("batch %d does not reference the uploaded texture", i)
		}
	}
}

func TestGPUTarget_VersionBumpUpdatesInPlace(t *testing.T) {
	target, creator := newTestGPUTarget(t)
	atlas := newTestAtlas(8)
	states := textmesh.RenderStates{Transform: textmesh.Identity(), Texture: atlas}

	target.DrawVertices(quad(0, 0, 1, 1, textmesh.White, 0, 0, 1, 1), states)
	atlas.version++
	target.DrawVertices(quad(0, 0, 1, 1, textmesh.White, 0, 0, 1, 1), states)

	if len(creator.created) != 1 {
		t.Fatalf("textures created = %d, want 1", len(creator.created))
	}
	if creator.created[0].updates != 1 {
		t.Errorf("updates = %d, want 1", creator.created[0].updates)
	}
}

func TestGPUTarget_IDChangeRecreates(t *testing.T) {
	target, creator := newTestGPUTarget(t)
	atlas := newTestAtlas(8)
	states := textmesh.RenderStates{Transform: textmesh.Identity(), Texture: atlas}

	target.DrawVertices(quad(0, 0, 1, 1, textmesh.White, 0, 0, 1, 1), states)
	atlas.id = 2
	atlas.img = newTestAtlas(16).img
	target.DrawVertices(quad(0, 0, 1, 1, textmesh.White, 0, 0, 1, 1), states)

	if len(creator.created) != 2 {
		t.Fatalf("textures created = %d, want 2", len(creator.created))
	}
	if !creator.created[0].destroyed {
		t.Error("old texture not destroyed")
	}
	if creator.created[1].width != 16 {
		t.Errorf("new texture width = %d, want 16", creator.created[1].width)
	}

	target.Close()
	if !creator.created[1].destroyed {
		t.Error("Close() did not destroy the live texture")
	}
}

func TestGPUTarget_UploadErrors(t *testing.T) {
	tests := []struct {
		name    string
		texture textmesh.Texture
		fail    bool
	}{
		{"no pixels", opaqueTexture{}, false},
		{"creator failure", newTestAtlas(4), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &mockCreator{fail: tt.fail}
			target, err := NewGPUTarget(&mockProvider{}, creator, 1, 1)
			if err != nil {
				t.Fatal(err)
			}
			states := textmesh.RenderStates{Transform: textmesh.Identity(), Texture: tt.texture}
			target.DrawVertices(quad(0, 0, 1, 1, textmesh.White, 0, 0, 1, 1), states)

			if target.Err() == nil {
				t.Error("Err() = nil, want upload error")
			}
			if len(target.Batches()) != 0 {
				t.Errorf("batches = %d, want 0", len(target.Batches()))
			}

			target.Reset()
			if target.Err() != nil {
				t.Errorf("Err() after Reset = %v", target.Err())
			}
		})
	}
}

func TestGPUTarget_UntexturedAndEmpty(t *testing.T) {
	target, creator := newTestGPUTarget(t)
	target.DrawVertices(nil, textmesh.DefaultRenderStates())
	target.DrawVertices(quad(0, 0, 1, 1, textmesh.Red, 0, 0, 0, 0), textmesh.DefaultRenderStates())

	batches := target.Batches()
	if len(batches) != 1 {
		t.Fatalf("batches = %d, want 1", len(batches))
	}
	if batches[0].Texture != nil {
		t.Errorf("untextured batch texture = %v", batches[0].Texture)
	}
	if len(creator.created) != 0 {
		t.Errorf("textures created = %d, want 0", len(creator.created))
	}

	target.Reset()
	if len(target.Batches()) != 0 {
		t.Error("Reset() kept batches")
	}
}

func TestGPUTarget_DrawText(t *testing.T) {
	fnt, err := font.Default()
	if err != nil {
		t.Fatalf("font.Default() error = %v", err)
	}
	target, creator := newTestGPUTarget(t)

	txt := textmesh.NewText(fnt, "GPU", 24, textmesh.WithOutline(textmesh.Black, 2))
	txt.Draw(target, textmesh.DefaultRenderStates())

	if err := target.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	batches := target.Batches()
	if len(batches) != 2 {
		t.Fatalf("batches = %d, want outline and fill", len(batches))
	}
	if batches[0].Count != len(txt.OutlineVertices()) || batches[1].Count != len(txt.Vertices()) {
		t.Errorf("batch counts = %d,%d", batches[0].Count, batches[1].Count)
	}
	if len(creator.created) != 1 {
		t.Errorf("textures created = %d, want 1", len(creator.created))
	}
}
