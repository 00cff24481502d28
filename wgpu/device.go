// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/probe"
)

// Device implements probe.Device on gogpu/wgpu. Each CreateContext
// call brings up a fresh instance/adapter/device chain; the prober
// throws the context away after the check, so nothing is cached.
type Device struct{}

// NewDevice creates a wgpu-backed probe device.
func NewDevice() *Device {
	return &Device{}
}

// CreateContext requests an adapter and a logical device and wraps
// them in a capability-query context. This is the step the prober
// brackets with the crash sentinel: a broken native driver can take
// the process down inside the adapter or device request.
func (d *Device) CreateContext(format probe.SurfaceFormat) (probe.RenderContext, error) {
	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: no adapter available: %w", err)
	}

	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		_ = core.AdapterDrop(adapterID)
		return nil, fmt.Errorf("wgpu: adapter info: %w", err)
	}

	deviceID, err := core.RequestDevice(adapterID, &gputypes.DeviceDescriptor{
		Label:          "probe-device",
		RequiredLimits: gputypes.DefaultLimits(),
	})
	if err != nil {
		_ = core.AdapterDrop(adapterID)
		return nil, fmt.Errorf("wgpu: request device: %w", err)
	}

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		_ = core.DeviceDrop(deviceID)
		_ = core.AdapterDrop(adapterID)
		return nil, fmt.Errorf("wgpu: device queue: %w", err)
	}

	limits, err := core.GetDeviceLimits(deviceID)
	if err != nil {
		_ = core.DeviceDrop(deviceID)
		_ = core.AdapterDrop(adapterID)
		return nil, fmt.Errorf("wgpu: device limits: %w", err)
	}

	// wgpu surfaces are negotiated as 8-bit BGRA/RGBA; report that
	// back instead of echoing the request. WebGPU semantics map to a
	// core profile context.
	negotiated := format
	negotiated.AlphaBits = 8
	negotiated.Profile = probe.ProfileCore
	negotiated.ES = false

	return &Context{
		adapter:      adapterID,
		device:       deviceID,
		queue:        queueID,
		renderer:     info.Name,
		vendor:       info.Vendor,
		driver:       info.Driver,
		backend:      fmt.Sprint(info.Backend),
		maxTexture2D: limits.MaxTextureDimension2D,
		maxBuffer:    limits.MaxBufferSize,
		format:       negotiated,
	}, nil
}
