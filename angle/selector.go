// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package angle

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/gogpu/probe"
)

// EnvVar is the environment override the platform layer consults when
// picking an ANGLE backend. Configure sets it to the resolved token and
// clears it for Auto.
const EnvVar = "GOGPU_ANGLE_PLATFORM"

// maxTokenRead bounds how much of the selection file is read; valid
// tokens are far shorter, anything beyond this is garbage anyway.
const maxTokenRead = 32

// Selector reads and writes the backend selection file.
//
// The resolved value is per Selector: set only by Configure, read by
// Current. Selection file I/O is best effort — failures are logged and
// the selection simply stays at or falls back to Auto.
type Selector struct {
	path     string
	resolved Backend
}

// NewSelector creates a selector for the given selection file path.
// The path belongs to the host application's integration layer.
func NewSelector(path string) *Selector {
	return &Selector{path: path}
}

// Configure clears any previous environment override, reads the
// selection file and resolves the backend. Unrecognized non-empty
// content logs a warning and resolves to Auto; an absent or empty file
// resolves to Auto silently.
func (s *Selector) Configure() {
	os.Unsetenv(EnvVar)
	s.resolved = Auto
	if s.path == "" {
		return
	}

	f, err := os.Open(s.path)
	if err != nil {
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxTokenRead))
	if err != nil || len(raw) == 0 {
		return
	}

	content := string(raw)
	for _, t := range tokens {
		if strings.HasPrefix(content, t.token) {
			s.resolved = t.backend
			os.Setenv(EnvVar, t.token)
			return
		}
	}
	probe.Logger().Warn("angle: unknown backend token",
		"token", strings.TrimSpace(content))
}

// Change persists the backend choice: Auto removes the selection file,
// every other value overwrites it with its token. Write failures are
// logged and otherwise ignored — the selection just does not stick.
//
// Change panics on a value outside the Backend enum.
func (s *Selector) Change(b Backend) {
	switch b {
	case Auto:
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			probe.Logger().Warn("angle: could not remove selection file",
				"path", s.path, "err", err)
		}
	case OpenGL, D3D9, D3D11, D3D11on12:
		if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
			probe.Logger().Warn("angle: could not write selection file",
				"path", s.path, "err", err)
		}
	default:
		panic("angle: invalid backend value")
	}
}

// Current returns the backend resolved by the last Configure call, or
// Auto if Configure has not run yet.
func (s *Selector) Current() Backend {
	return s.resolved
}
