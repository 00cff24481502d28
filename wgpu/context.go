// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/probe"
)

// Context is a throwaway wgpu device used only for capability queries.
// It satisfies probe.RenderContext.
type Context struct {
	adapter core.AdapterID
	device  core.DeviceID
	queue   core.QueueID

	renderer string
	vendor   string
	driver   string
	backend  string

	maxTexture2D uint32
	maxBuffer    uint64

	format probe.SurfaceFormat
	closed bool
}

// Valid reports whether device bring-up produced a usable device.
func (c *Context) Valid() bool {
	return !c.closed && !c.device.IsZero()
}

// HasFeature answers the prober's required-feature checks. WebGPU
// class hardware carries all three guarantees by specification; the
// limit checks confirm the device actually reported a working texture
// unit rather than a zeroed limits struct.
func (c *Context) HasFeature(f probe.Feature) bool {
	switch f {
	case probe.FeatureNPOTTextures:
		// No power-of-two restriction exists in WebGPU.
		return c.maxTexture2D > 0
	case probe.FeatureFramebuffers:
		// Offscreen render attachments are mandatory.
		return c.maxBuffer > 0
	case probe.FeatureShaders:
		return true
	}
	return false
}

// LinkProgram compiles both stages through naga. naga performs full
// WGSL validation including entry point and interface checks, which is
// the closest equivalent of a GL program link on this stack.
func (c *Context) LinkProgram(vertex, fragment string) error {
	if _, err := naga.Compile(vertex); err != nil {
		return fmt.Errorf("wgpu: vertex stage: %w", err)
	}
	if _, err := naga.Compile(fragment); err != nil {
		return fmt.Errorf("wgpu: fragment stage: %w", err)
	}
	return nil
}

// Format returns the negotiated surface format.
func (c *Context) Format() probe.SurfaceFormat {
	return c.format
}

// Renderer returns the adapter name, e.g. "NVIDIA GeForce RTX 3080".
func (c *Context) Renderer() string { return c.renderer }

// Vendor returns the adapter vendor string.
func (c *Context) Vendor() string { return c.vendor }

// Version returns the driver version string.
func (c *Context) Version() string { return c.driver }

// Extensions returns nil: wgpu has no GL-style extension string and
// the core API does not enumerate optional features yet. The prober
// logs the backend name instead through Renderer/Vendor.
func (c *Context) Extensions() []string { return nil }

// Backend returns the graphics API the adapter runs on (Vulkan, Metal,
// DX12, GL). Not part of probe.RenderContext; diagnostic tools use it
// directly.
func (c *Context) Backend() string { return c.backend }

// Close drops the device and adapter. Idempotent; a zero-value Context
// closes without touching wgpu.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true

	if !c.device.IsZero() {
		if err := core.DeviceDrop(c.device); err != nil {
			probe.Logger().Warn("wgpu: error releasing device", "err", err)
		}
		c.device = core.DeviceID{}
	}
	if !c.adapter.IsZero() {
		if err := core.AdapterDrop(c.adapter); err != nil {
			probe.Logger().Warn("wgpu: error releasing adapter", "err", err)
		}
		c.adapter = core.AdapterID{}
	}
	c.queue = core.QueueID{}
}
