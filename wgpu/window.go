// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/probe"
)

// Window adapts a gpucontext.DeviceProvider — typically a live gogpu
// application window — to probe.Window, so an existing surface can be
// handed to the prober as the surface owner.
type Window struct {
	provider gpucontext.DeviceProvider

	// applied holds the format the prober wrote back via SetFormat.
	// Providers cannot renegotiate a live swapchain, so the adapter
	// just remembers the request and reports it from Format.
	applied *probe.SurfaceFormat
}

// NewWindow wraps a device provider. A nil provider yields a window
// that reports itself invalid.
func NewWindow(provider gpucontext.DeviceProvider) *Window {
	return &Window{provider: provider}
}

// Valid reports whether the provider has a live device behind it.
func (w *Window) Valid() bool {
	return w.provider != nil && w.provider.Device() != nil
}

// SupportsAccelerated reports whether the provider exposes a GPU
// adapter at all.
func (w *Window) SupportsAccelerated() bool {
	return w.provider != nil && w.provider.Adapter() != nil
}

// Format derives a probe format from the provider's surface format.
func (w *Window) Format() probe.SurfaceFormat {
	if w.applied != nil {
		return *w.applied
	}
	f := probe.SurfaceFormat{Profile: probe.ProfileCore}
	if w.provider == nil {
		return f
	}
	switch w.provider.SurfaceFormat() {
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatRGBA8Unorm:
		f.AlphaBits = 8
	}
	return f
}

// SetFormat records the format the prober settled on.
func (w *Window) SetFormat(f probe.SurfaceFormat) {
	w.applied = &f
}
