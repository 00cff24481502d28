package probe

import "strings"

// Device creates throwaway rendering contexts for capability probing.
// Adapters over a concrete GPU stack implement it; see the wgpu
// subpackage for the gogpu/wgpu one.
type Device interface {
	// CreateContext creates a rendering context with the requested
	// surface format. The caller owns the returned context and must
	// Close it. On a broken driver this call may take the whole
	// process down, which is why the prober brackets it with the
	// crash sentinel.
	CreateContext(format SurfaceFormat) (RenderContext, error)
}

// RenderContext is the minimal capability-query surface of an active
// rendering context.
type RenderContext interface {
	// Valid reports whether context creation actually produced a
	// usable context.
	Valid() bool

	// HasFeature reports support for a single capability flag.
	HasFeature(f Feature) bool

	// LinkProgram compiles and links a program from the given vertex
	// and fragment stage sources.
	LinkProgram(vertex, fragment string) error

	// Format returns the negotiated surface format, which may differ
	// from the requested one.
	Format() SurfaceFormat

	// Renderer, Vendor and Version return the driver identification
	// strings, empty when the underlying query has no answer.
	Renderer() string
	Vendor() string
	Version() string

	// Extensions lists the extensions the context exposes.
	Extensions() []string

	// Close releases the context. Close is idempotent.
	Close()
}

// Window is an existing surface owner. Passing one to CheckCapabilities
// probes against that window's surface instead of a fresh offscreen one
// and applies the negotiated format back to it.
type Window interface {
	// Valid reports whether a native window handle exists or could be
	// created on demand.
	Valid() bool

	// SupportsAccelerated reports whether the platform can do
	// accelerated rendering in this window.
	SupportsAccelerated() bool

	// Format returns the window's current surface format.
	Format() SurfaceFormat

	// SetFormat applies a format back to the window.
	SetFormat(f SurfaceFormat)
}

// PlatformDisplay is implemented by contexts that expose the
// platform-layer display extension string (the EGL display on
// ANGLE-style stacks).
type PlatformDisplay interface {
	DisplayExtensionString() string
}

// PlatformExtensions returns the platform-layer extension list of ctx,
// split on whitespace, or nil when the context has no native display
// to query.
func PlatformExtensions(ctx RenderContext) []string {
	pd, ok := ctx.(PlatformDisplay)
	if !ok {
		return nil
	}
	s := pd.DisplayExtensionString()
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
