//go:build !linux

package clip

import "github.com/slyboard/slyboard/internal/activewindow"

// New returns a no-op backend on platforms without clipboard integration.
// slyboard targets Linux desktops; everything else runs headless.
func New(_ activewindow.Provider) Backend {
	return &headlessBackend{}
}
