// Package clip adapts the system clipboard to the history core. Build
// constraints select the implementation:
//
//	clip_linux.go — Linux via golang.design/x/clipboard
//	clip_other.go — headless / unsupported-platform stub
//
// A backend bundles the two read capabilities the poller needs per tick:
// the current clipboard content and the currently focused window.
package clip

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	"github.com/slyboard/slyboard/internal/activewindow"
	"github.com/slyboard/slyboard/internal/history"
)

// Backend reads the current clipboard state. Both reads fail soft: nil
// means "nothing available this tick", never an error.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ReadEntry returns the current clipboard content, or nil when the
	// clipboard is empty or holds only unsupported types.
	ReadEntry() *history.Entry

	// ReadActiveWindow returns the focused-window context for provenance
	// tagging. Backends without a capture provider return nil.
	ReadActiveWindow() *activewindow.Context
}

// decodeImageEntry converts PNG-encoded clipboard bytes into a pixel-level
// image entry. golang.design/x/clipboard always hands images over as PNG;
// the history model stores raw RGBA rows.
func decodeImageEntry(data []byte) *history.Entry {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	if len(rgba.Pix) == 0 {
		return nil
	}

	entry := history.NewImage(
		int32(bounds.Dx()),
		int32(bounds.Dy()),
		int32(rgba.Stride),
		true, // RGBA always carries an alpha channel
		8,
		4,
		rgba.Pix,
	)
	return &entry
}
