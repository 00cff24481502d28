package probe

import (
	"strings"
	"sync"
)

// Prober runs the capability checklist against a Device adapter.
//
// A Prober carries its configuration explicitly; the only package-wide
// state is the logger. Construct one per GPU stack and reuse it — the
// driver bug list registration and the diagnostic string dump happen
// once per Prober, not once per call.
//
// A Prober is meant to be driven from a single goroutine, typically
// the UI or initialization thread. Every step blocks the calling
// goroutine to completion; there are no timeouts, a hung driver call
// is only caught by the sentinel on the next launch.
type Prober struct {
	device   Device
	sentinel *Sentinel
	buglist  string
	disabled bool

	quirksOnce  sync.Once
	stringsOnce sync.Once
}

// Option configures a Prober.
type Option func(*Prober)

// WithSentinel enables crash-sentinel bracketing around the risky
// context-creation step. Without it the probe runs unprotected.
func WithSentinel(s *Sentinel) Option {
	return func(p *Prober) { p.sentinel = s }
}

// WithDriverBugList registers the driver quirk database at path on the
// first capability check, if the file exists.
func WithDriverBugList(path string) Option {
	return func(p *Prober) { p.buglist = path }
}

// NewProber creates a prober for the given device adapter.
func NewProber(device Device, opts ...Option) *Prober {
	p := &Prober{device: device}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ForceDisable turns every subsequent CheckCapabilities call into an
// immediate unsupported result, without touching the sentinel. Hosts
// use it when the user switches hardware acceleration off.
func (p *Prober) ForceDisable(disable bool) {
	p.disabled = disable
}

// CheckCapabilities probes the device and reports what the machine can
// do. Passing a non-nil Window probes against that window's surface
// and applies the negotiated format back to it; passing nil uses a
// fresh offscreen format.
//
// Every failure returns the zero Capabilities value. Callers only ever
// branch on the aggregate booleans; the per-step reasons go to the log.
func (p *Prober) CheckCapabilities(w Window) Capabilities {
	log := Logger()
	if p.disabled {
		log.Info("probe: force-disabled")
		return Capabilities{}
	}

	if p.buglist != "" {
		p.quirksOnce.Do(func() { registerQuirkList(p.buglist) })
	}

	var format SurfaceFormat
	if w != nil {
		if !w.Valid() {
			log.Warn("probe: could not create window for surface owner")
			return Capabilities{}
		}
		if !w.SupportsAccelerated() {
			log.Warn("probe: accelerated rendering not supported for window")
			return Capabilities{}
		}
		format = w.Format()
	}
	if format.AlphaBits < 8 {
		format.AlphaBits = 8
	}
	if w != nil {
		w.SetFormat(format)
	}

	// The sentinel brackets exactly the call that can crash the
	// process. A crash here leaves the file behind for the next
	// launch; any other outcome removes it.
	if p.sentinel != nil {
		p.sentinel.Start()
	}
	ctx, err := p.device.CreateContext(format)
	if p.sentinel != nil {
		p.sentinel.Finish()
	}

	if err != nil || ctx == nil {
		log.Warn("probe: could not create rendering context", "err", err)
		return Capabilities{}
	}
	defer ctx.Close()
	if !ctx.Valid() {
		log.Warn("probe: rendering context is not valid")
		return Capabilities{}
	}

	for _, f := range requiredFeatures {
		if !ctx.HasFeature(f) {
			log.Warn("probe: required feature not supported", "feature", f)
			return Capabilities{}
		}
	}

	if err := ctx.LinkProgram(probeVertexShader, probeFragmentShader); err != nil {
		log.Warn("probe: could not link test program", "err", err)
		return Capabilities{}
	}

	negotiated := ctx.Format()
	switch negotiated.Profile {
	case ProfileNone:
		if !negotiated.ES {
			log.Warn("probe: context has no profile and is not ES")
			return Capabilities{}
		}
		log.Info("probe: profile", "profile", "es")
	case ProfileCore, ProfileCompatibility:
		log.Info("probe: profile", "profile", negotiated.Profile)
	}

	p.stringsOnce.Do(func() { logContextStrings(ctx) })

	caps := Capabilities{Supported: true}
	if negotiated.AlphaBits >= 8 {
		caps.Transparency = true
		log.Info("probe: context created", "version", negotiated.Version())
	} else {
		log.Info("probe: context created without alpha",
			"version", negotiated.Version())
	}
	return caps
}

// noString is logged in place of a driver string the context could not
// provide.
const noString = "[unknown]"

func logContextStrings(ctx RenderContext) {
	log := Logger()
	log.Info("probe: renderer", "name", orPlaceholder(ctx.Renderer()))
	log.Info("probe: vendor", "name", orPlaceholder(ctx.Vendor()))
	log.Info("probe: version", "version", orPlaceholder(ctx.Version()))
	log.Info("probe: extensions", "list", strings.Join(ctx.Extensions(), ", "))
	if ext := PlatformExtensions(ctx); len(ext) > 0 {
		log.Info("probe: platform extensions", "list", strings.Join(ext, ", "))
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return noString
	}
	return s
}
