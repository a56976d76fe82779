package clip

import (
	"github.com/slyboard/slyboard/internal/activewindow"
	"github.com/slyboard/slyboard/internal/history"
)

// headlessBackend is a no-op backend for environments without a display
// server. It never observes content, so the poller simply idles.
type headlessBackend struct{}

func (b *headlessBackend) Name() string { return "headless (no-op)" }

func (b *headlessBackend) ReadEntry() *history.Entry { return nil }

func (b *headlessBackend) ReadActiveWindow() *activewindow.Context { return nil }
