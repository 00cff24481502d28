package probe

import "fmt"

// Capabilities is the aggregate result of a rendering capability check.
// The zero value means the backend is unusable; callers that need the
// reason for a negative result have to look at the log output.
type Capabilities struct {
	// Supported reports that every mandatory probe step succeeded:
	// surface, context, required features, test program link and
	// profile classification.
	Supported bool

	// Transparency reports that the negotiated surface carries an
	// alpha channel of at least 8 bits.
	Transparency bool
}

// Feature is a boolean capability queried from an active rendering
// context. Features are bit flags so fakes and adapters can keep a
// simple mask of what is missing.
type Feature uint32

const (
	// FeatureNPOTTextures is support for non-power-of-two texture sizes.
	FeatureNPOTTextures Feature = 1 << iota

	// FeatureFramebuffers is support for offscreen framebuffer objects.
	FeatureFramebuffers

	// FeatureShaders is support for programmable shader stages.
	FeatureShaders
)

// requiredFeatures are checked in order during a capability probe; the
// first missing one fails the check.
var requiredFeatures = []Feature{
	FeatureNPOTTextures,
	FeatureFramebuffers,
	FeatureShaders,
}

func (f Feature) String() string {
	switch f {
	case FeatureNPOTTextures:
		return "npot-textures"
	case FeatureFramebuffers:
		return "framebuffers"
	case FeatureShaders:
		return "shaders"
	}
	return fmt.Sprintf("Feature(%d)", uint32(f))
}

// Profile is the negotiated rendering context variant.
type Profile uint8

const (
	// ProfileNone means the context reported no profile. Acceptable
	// only for ES class contexts.
	ProfileNone Profile = iota

	// ProfileCore is a core profile context.
	ProfileCore

	// ProfileCompatibility is a compatibility profile context.
	ProfileCompatibility
)

func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case ProfileCore:
		return "core"
	case ProfileCompatibility:
		return "compatibility"
	}
	return fmt.Sprintf("Profile(%d)", uint8(p))
}

// SurfaceFormat describes a rendering surface configuration. A prober
// requests one and inspects the negotiated one the context reports
// back; the two may differ.
type SurfaceFormat struct {
	// AlphaBits is the alpha channel size in bits.
	AlphaBits int

	// MajorVersion and MinorVersion identify the context version.
	MajorVersion int
	MinorVersion int

	// Profile is the context profile variant.
	Profile Profile

	// ES marks an OpenGL ES class context. A context with ProfileNone
	// is acceptable only when ES is set.
	ES bool
}

// Version returns the context version as "major.minor".
func (f SurfaceFormat) Version() string {
	return fmt.Sprintf("%d.%d", f.MajorVersion, f.MinorVersion)
}
