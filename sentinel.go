package probe

import (
	"errors"
	"os"
)

// sentinelContent is the single byte the sentinel file holds. Presence
// of the file is the entire protocol; the content only exists so the
// file is never empty.
const sentinelContent = "1"

// Sentinel is a marker file whose existence means a capability probe
// started and did not finish cleanly. The prober writes it right
// before the context-creation step and removes it right after, so a
// driver crash in between leaves it on disk for the next launch to
// find.
type Sentinel struct {
	path string
}

// NewSentinel creates a sentinel backed by the given path. The path
// belongs to the host application, typically somewhere under its user
// data directory.
func NewSentinel(path string) *Sentinel {
	return &Sentinel{path: path}
}

// Path returns the sentinel file path.
func (s *Sentinel) Path() string { return s.path }

// Start writes the sentinel file. Best effort: when the file cannot be
// written the probe simply runs without crash protection this time.
func (s *Sentinel) Start() {
	if err := os.WriteFile(s.path, []byte(sentinelContent), 0o644); err != nil {
		Logger().Warn("probe: could not write crash sentinel",
			"path", s.path, "err", err)
	}
}

// Finish removes the sentinel file. Idempotent: calling it when the
// file does not exist is fine.
func (s *Sentinel) Finish() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		Logger().Warn("probe: could not remove crash sentinel",
			"path", s.path, "err", err)
	}
}

// LastCheckFailed reports whether a previous probe wrote the sentinel
// and never reached Finish — in other words, the last capability check
// most likely crashed the process. Callers use it to skip the probe
// entirely on the next launch.
func (s *Sentinel) LastCheckFailed() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
