// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// textmesh RECEIVES the device from the host, it does NOT create one.
// The handle is used to learn the surface format that the text pipeline
// must render into; resource creation goes through a TextureCreator.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, so any host
// in the gpucontext ecosystem can be passed directly.
type DeviceHandle = gpucontext.DeviceProvider

// TextureCreator creates GPU textures from RGBA pixel data. It matches
// the texture creator exposed by gogpu renderers.
//
// The returned texture may also implement gpucontext.TextureUpdater, in
// which case atlas changes are uploaded in place, and Destroy(), which is
// called when an atlas is reallocated.
type TextureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// textureDestroyer is the interface for destroying textures.
type textureDestroyer interface {
	Destroy()
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only rendering where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns an empty description for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
