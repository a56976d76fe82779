// Package capture tracks the out-of-band pause marker. The marker is a
// plain file in the user's runtime directory; the daemon's poll loop checks
// it every tick and skips sampling while it exists, so pause/resume work
// from any process without IPC.
package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const pauseFileSuffix = "paused"

// IsPaused reports whether the pause marker exists.
func IsPaused() bool {
	_, err := os.Stat(PausePath())
	return err == nil
}

// SetPaused writes or removes the pause marker.
func SetPaused(paused bool) error {
	return setPausedAt(PausePath(), paused)
}

func setPausedAt(path string, paused bool) error {
	if paused {
		if err := os.WriteFile(path, []byte("paused\n"), 0o600); err != nil {
			return fmt.Errorf("write capture pause marker %s: %w", path, err)
		}
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove capture pause marker %s: %w", path, err)
	}
	return nil
}

// PausePath returns the per-user marker location: XDG_RUNTIME_DIR when set,
// the temp dir otherwise.
func PausePath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, fmt.Sprintf("slyboard-%s-%s", userHint(), pauseFileSuffix))
}

func userHint() string {
	if user := strings.TrimSpace(os.Getenv("USER")); user != "" {
		return user
	}
	return "user"
}
