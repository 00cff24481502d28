package probe

import (
	"encoding/json"
	"os"
)

// QuirkListEnv is the environment variable through which a registered
// driver bug list is handed to the rendering stack. The prober only
// publishes the path; the consumers live elsewhere in the stack.
const QuirkListEnv = "GOGPU_DRIVER_BUG_LIST"

// quirkList mirrors the Chromium gpu_driver_bug_list.json layout just
// far enough to count entries for the diagnostic log line.
type quirkList struct {
	Entries []struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"entries"`
}

// registerQuirkList publishes the driver bug list at path via
// QuirkListEnv and logs that the override is active. Returns false
// when no readable file exists at path.
func registerQuirkList(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	// Entry count is informational only; a list that does not parse is
	// still handed over, its consumer does its own validation.
	entries := -1
	var list quirkList
	if err := json.Unmarshal(data, &list); err == nil {
		entries = len(list.Entries)
	}

	if err := os.Setenv(QuirkListEnv, path); err != nil {
		Logger().Warn("probe: could not set driver bug list override", "err", err)
		return false
	}
	if entries >= 0 {
		Logger().Info("probe: using custom driver bug list",
			"path", path, "entries", entries)
	} else {
		Logger().Info("probe: using custom driver bug list", "path", path)
	}
	return true
}
