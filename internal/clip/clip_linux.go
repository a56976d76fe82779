//go:build linux

package clip

import (
	"log/slog"

	"golang.design/x/clipboard"

	"github.com/slyboard/slyboard/internal/activewindow"
	"github.com/slyboard/slyboard/internal/history"
)

type linuxBackend struct {
	windows activewindow.Provider
}

// New returns the Linux clipboard backend, or a headless no-op backend when
// the display environment is unavailable (e.g. a server without X11 or
// Wayland). clipboard.Init is called here rather than in init() so that CLI
// sub-commands (history, status, pause) never touch the display.
func New(windows activewindow.Provider) Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return &headlessBackend{}
	}
	return &linuxBackend{windows: windows}
}

func (b *linuxBackend) Name() string { return "Linux clipboard (poll)" }

// ReadEntry prefers text over images when both formats are offered, which
// matches how paste targets resolve the same ambiguity.
func (b *linuxBackend) ReadEntry() *history.Entry {
	if text := clipboard.Read(clipboard.FmtText); len(text) > 0 {
		entry := history.NewText(string(text))
		return &entry
	}
	if img := clipboard.Read(clipboard.FmtImage); len(img) > 0 {
		return decodeImageEntry(img)
	}
	return nil
}

func (b *linuxBackend) ReadActiveWindow() *activewindow.Context {
	if b.windows == nil {
		return nil
	}
	return b.windows.Capture()
}
