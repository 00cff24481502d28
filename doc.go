// Package probe checks whether a GPU rendering backend is usable on
// the current machine.
//
// A Prober runs a short sequential checklist against a Device adapter:
// it negotiates a surface format, creates a throwaway rendering
// context, verifies the required feature flags, links a minimal test
// program and classifies the context profile. Every failure collapses
// to the zero Capabilities value; the reasons are only observable in
// the log output.
//
// Context creation is the one step that can take the whole process
// down on a broken driver. The Sentinel type brackets it with a marker
// file so the next launch can tell that the previous probe never
// finished and skip it:
//
//	sentinel := probe.NewSentinel(path)
//	if sentinel.LastCheckFailed() {
//	    // previous probe crashed, stay on software rendering
//	}
//	prober := probe.NewProber(device, probe.WithSentinel(sentinel))
//	caps := prober.CheckCapabilities(nil)
//
// The wgpu subpackage adapts the gogpu/wgpu stack to the Device
// interface; the angle subpackage persists an explicit rendering
// backend choice across launches.
//
// By default the package produces no log output. Call SetLogger to see
// probe diagnostics.
package probe
