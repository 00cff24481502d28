// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpu adapts the gogpu/wgpu stack to the probe capability
// interfaces.
//
// Device brings up a throwaway instance/adapter/device/queue chain and
// wraps it in a Context that answers the prober's feature, format and
// string queries. Window adapts a live gpucontext.DeviceProvider (for
// example a gogpu application window) so it can be passed to
// CheckCapabilities as the surface owner.
//
// Typical usage:
//
//	prober := probe.NewProber(wgpu.NewDevice(),
//	    probe.WithSentinel(sentinel))
//	caps := prober.CheckCapabilities(nil)
package wgpu
