package probe

import _ "embed"

// Embedded WGSL sources for the minimal link test. The vertex stage
// applies a viewport transform and passes a texture coordinate
// through; the fragment stage samples a 32-bit RGBA texture. Each file
// is a self-contained module so adapters can compile the stages
// independently.

//go:embed shaders/probe_vertex.wgsl
var probeVertexShader string

//go:embed shaders/probe_fragment.wgsl
var probeFragmentShader string

// TestProgramSources returns the vertex and fragment sources of the
// minimal probe program. Exposed for adapters and tools that want to
// run the same link test outside a full capability check.
func TestProgramSources() (vertex, fragment string) {
	return probeVertexShader, probeFragmentShader
}
