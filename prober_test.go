package probe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeContext implements RenderContext for prober tests. The missing
// mask marks features reported as unsupported.
type fakeContext struct {
	valid   bool
	missing Feature
	linkErr error
	format  SurfaceFormat

	renderer   string
	vendor     string
	version    string
	extensions []string

	closed bool
}

func (c *fakeContext) Valid() bool                 { return c.valid }
func (c *fakeContext) HasFeature(f Feature) bool   { return c.missing&f == 0 }
func (c *fakeContext) Format() SurfaceFormat       { return c.format }
func (c *fakeContext) Renderer() string            { return c.renderer }
func (c *fakeContext) Vendor() string              { return c.vendor }
func (c *fakeContext) Version() string             { return c.version }
func (c *fakeContext) Extensions() []string        { return c.extensions }
func (c *fakeContext) Close()                      { c.closed = true }
func (c *fakeContext) LinkProgram(v, f string) error {
	return c.linkErr
}

// fakeDisplayContext additionally exposes a platform display string.
type fakeDisplayContext struct {
	fakeContext
	display string
}

func (c *fakeDisplayContext) DisplayExtensionString() string { return c.display }

// fakeDevice implements Device. onCreate runs inside CreateContext so
// tests can observe the sentinel state mid-probe.
type fakeDevice struct {
	ctx       *fakeContext
	err       error
	onCreate  func(format SurfaceFormat)
	requested SurfaceFormat
	calls     int
}

func (d *fakeDevice) CreateContext(format SurfaceFormat) (RenderContext, error) {
	d.calls++
	d.requested = format
	if d.onCreate != nil {
		d.onCreate(format)
	}
	if d.err != nil {
		return nil, d.err
	}
	if d.ctx == nil {
		return nil, nil
	}
	return d.ctx, nil
}

// fakeWindow implements Window.
type fakeWindow struct {
	valid       bool
	accelerated bool
	format      SurfaceFormat
	applied     *SurfaceFormat
}

func (w *fakeWindow) Valid() bool               { return w.valid }
func (w *fakeWindow) SupportsAccelerated() bool { return w.accelerated }
func (w *fakeWindow) Format() SurfaceFormat     { return w.format }
func (w *fakeWindow) SetFormat(f SurfaceFormat) { w.applied = &f }

// goodContext returns a context that passes every probe step.
func goodContext() *fakeContext {
	return &fakeContext{
		valid: true,
		format: SurfaceFormat{
			AlphaBits:    8,
			MajorVersion: 3,
			MinorVersion: 2,
			Profile:      ProfileCore,
		},
		renderer: "Test Renderer",
		vendor:   "Test Vendor",
		version:  "3.2 test",
	}
}

func TestCheckCapabilitiesSupported(t *testing.T) {
	ctx := goodContext()
	p := NewProber(&fakeDevice{ctx: ctx})

	caps := p.CheckCapabilities(nil)
	if !caps.Supported {
		t.Error("CheckCapabilities() should report supported")
	}
	if !caps.Transparency {
		t.Error("CheckCapabilities() should report transparency for 8-bit alpha")
	}
	if !ctx.closed {
		t.Error("context should be closed after the check")
	}
}

func TestCheckCapabilitiesForceDisabled(t *testing.T) {
	sentinel := NewSentinel(filepath.Join(t.TempDir(), "check"))
	device := &fakeDevice{ctx: goodContext()}
	p := NewProber(device, WithSentinel(sentinel))
	p.ForceDisable(true)

	caps := p.CheckCapabilities(nil)
	if caps != (Capabilities{}) {
		t.Errorf("force-disabled check = %+v, want zero value", caps)
	}
	if device.calls != 0 {
		t.Error("force-disabled check must not touch the device")
	}
	if sentinel.LastCheckFailed() {
		t.Error("force-disabled check must not touch the sentinel file")
	}

	p.ForceDisable(false)
	if caps := p.CheckCapabilities(nil); !caps.Supported {
		t.Error("re-enabled prober should probe again")
	}
}

func TestCheckCapabilitiesSentinelLifecycle(t *testing.T) {
	sentinel := NewSentinel(filepath.Join(t.TempDir(), "check"))

	sawSentinel := false
	device := &fakeDevice{ctx: goodContext()}
	device.onCreate = func(SurfaceFormat) {
		sawSentinel = sentinel.LastCheckFailed()
	}

	p := NewProber(device, WithSentinel(sentinel))
	p.CheckCapabilities(nil)

	if !sawSentinel {
		t.Error("sentinel file should exist while the context is being created")
	}
	if sentinel.LastCheckFailed() {
		t.Error("sentinel file should be removed after a clean run")
	}
}

func TestCheckCapabilitiesSentinelRemovedOnFailure(t *testing.T) {
	// A graceful failure past the sentinel write must still remove it;
	// only a hard crash leaves it behind.
	sentinel := NewSentinel(filepath.Join(t.TempDir(), "check"))
	device := &fakeDevice{err: errors.New("driver said no")}

	p := NewProber(device, WithSentinel(sentinel))
	if caps := p.CheckCapabilities(nil); caps.Supported {
		t.Error("failed context creation should report unsupported")
	}
	if sentinel.LastCheckFailed() {
		t.Error("sentinel should be removed after a graceful failure")
	}
}

func TestCheckCapabilitiesWindow(t *testing.T) {
	t.Run("invalid window", func(t *testing.T) {
		device := &fakeDevice{ctx: goodContext()}
		p := NewProber(device)
		w := &fakeWindow{valid: false, accelerated: true}
		if caps := p.CheckCapabilities(w); caps.Supported {
			t.Error("invalid window should fail the check")
		}
		if device.calls != 0 {
			t.Error("invalid window must short-circuit before context creation")
		}
	})

	t.Run("no acceleration", func(t *testing.T) {
		p := NewProber(&fakeDevice{ctx: goodContext()})
		w := &fakeWindow{valid: true, accelerated: false}
		if caps := p.CheckCapabilities(w); caps.Supported {
			t.Error("window without acceleration should fail the check")
		}
	})

	t.Run("alpha forced to 8 bits", func(t *testing.T) {
		device := &fakeDevice{ctx: goodContext()}
		p := NewProber(device)
		w := &fakeWindow{
			valid:       true,
			accelerated: true,
			format:      SurfaceFormat{AlphaBits: 0, Profile: ProfileCore},
		}
		if caps := p.CheckCapabilities(w); !caps.Supported {
			t.Fatal("valid window should pass the check")
		}
		if w.applied == nil {
			t.Fatal("negotiated format should be applied back to the window")
		}
		if w.applied.AlphaBits != 8 {
			t.Errorf("applied alpha = %d, want 8", w.applied.AlphaBits)
		}
		if device.requested.AlphaBits != 8 {
			t.Errorf("requested alpha = %d, want 8", device.requested.AlphaBits)
		}
	})
}

func TestCheckCapabilitiesContextFailures(t *testing.T) {
	tests := []struct {
		name   string
		device *fakeDevice
	}{
		{"creation error", &fakeDevice{err: errors.New("boom")}},
		{"nil context", &fakeDevice{}},
		{"invalid context", &fakeDevice{ctx: &fakeContext{valid: false}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProber(tt.device)
			if caps := p.CheckCapabilities(nil); caps != (Capabilities{}) {
				t.Errorf("CheckCapabilities() = %+v, want zero value", caps)
			}
		})
	}
}

func TestCheckCapabilitiesMissingFeature(t *testing.T) {
	for _, missing := range []Feature{
		FeatureNPOTTextures,
		FeatureFramebuffers,
		FeatureShaders,
	} {
		t.Run(missing.String(), func(t *testing.T) {
			ctx := goodContext()
			ctx.missing = missing
			p := NewProber(&fakeDevice{ctx: ctx})
			if caps := p.CheckCapabilities(nil); caps.Supported {
				t.Errorf("missing %v should fail the check", missing)
			}
			if !ctx.closed {
				t.Error("context should be closed on feature failure")
			}
		})
	}
}

func TestCheckCapabilitiesLinkFailure(t *testing.T) {
	ctx := goodContext()
	ctx.linkErr = errors.New("no varyings for you")
	p := NewProber(&fakeDevice{ctx: ctx})
	if caps := p.CheckCapabilities(nil); caps.Supported {
		t.Error("link failure should fail the check")
	}
}

func TestCheckCapabilitiesProfiles(t *testing.T) {
	tests := []struct {
		name      string
		profile   Profile
		es        bool
		supported bool
	}{
		{"no profile, not ES", ProfileNone, false, false},
		{"no profile, ES", ProfileNone, true, true},
		{"core", ProfileCore, false, true},
		{"compatibility", ProfileCompatibility, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := goodContext()
			ctx.format.Profile = tt.profile
			ctx.format.ES = tt.es
			p := NewProber(&fakeDevice{ctx: ctx})
			caps := p.CheckCapabilities(nil)
			if caps.Supported != tt.supported {
				t.Errorf("supported = %v, want %v", caps.Supported, tt.supported)
			}
		})
	}
}

func TestCheckCapabilitiesTransparency(t *testing.T) {
	tests := []struct {
		alpha        int
		transparency bool
	}{
		{0, false},
		{1, false},
		{8, true},
		{16, true},
	}
	for _, tt := range tests {
		ctx := goodContext()
		ctx.format.AlphaBits = tt.alpha
		p := NewProber(&fakeDevice{ctx: ctx})
		caps := p.CheckCapabilities(nil)
		if !caps.Supported {
			t.Fatalf("alpha=%d: check should still be supported", tt.alpha)
		}
		if caps.Transparency != tt.transparency {
			t.Errorf("alpha=%d: transparency = %v, want %v",
				tt.alpha, caps.Transparency, tt.transparency)
		}
	}
}

func TestCheckCapabilitiesQuirkListOnce(t *testing.T) {
	dir := t.TempDir()
	buglist := filepath.Join(dir, "gpu_driver_bug_list.json")
	content := `{"entries":[{"id":1,"description":"x"}]}`
	if err := os.WriteFile(buglist, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv(QuirkListEnv, "")

	p := NewProber(&fakeDevice{ctx: goodContext()}, WithDriverBugList(buglist))
	p.CheckCapabilities(nil)
	p.CheckCapabilities(nil)

	if got := os.Getenv(QuirkListEnv); got != buglist {
		t.Errorf("%s = %q, want %q", QuirkListEnv, got, buglist)
	}
}

func TestPlatformExtensions(t *testing.T) {
	plain := goodContext()
	if got := PlatformExtensions(plain); got != nil {
		t.Errorf("PlatformExtensions(plain) = %v, want nil", got)
	}

	display := &fakeDisplayContext{display: "EGL_KHR_image EGL_KHR_fence_sync"}
	got := PlatformExtensions(display)
	want := []string{"EGL_KHR_image", "EGL_KHR_fence_sync"}
	if len(got) != len(want) {
		t.Fatalf("PlatformExtensions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PlatformExtensions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	empty := &fakeDisplayContext{}
	if got := PlatformExtensions(empty); got != nil {
		t.Errorf("PlatformExtensions(empty display) = %v, want nil", got)
	}
}
