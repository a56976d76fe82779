// Package history implements the clipboard-history core: the entry model,
// the bounded deduplicating store, and the JSON codec for its backing file.
package history

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/slyboard/slyboard/internal/activewindow"
)

// Kind discriminates the entry variants on disk and in memory.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
)

// labelRuneLimit caps text labels produced by Label.
const labelRuneLimit = 70

// Entry is one clipboard capture. Kind selects which fields are meaningful:
// Value for text entries, the pixel fields for images. SourceWindow is
// provenance only — it never participates in equality, so two captures of
// the same content from different windows dedup to one history entry (the
// stored provenance is whatever the latest capture carried).
type Entry struct {
	Kind Kind `json:"kind"`

	// Text
	Value string `json:"value,omitempty"`

	// Image. Pixels is raw pixel data, dimensions and layout described by
	// the surrounding fields.
	Width         int32  `json:"width,omitempty"`
	Height        int32  `json:"height,omitempty"`
	Rowstride     int32  `json:"rowstride,omitempty"`
	HasAlpha      bool   `json:"has_alpha,omitempty"`
	BitsPerSample int32  `json:"bits_per_sample,omitempty"`
	Channels      int32  `json:"channels,omitempty"`
	Pixels        []byte `json:"pixels,omitempty"`

	SourceWindow *activewindow.Context `json:"source_window,omitempty"`
}

// NewText returns a text entry without provenance.
func NewText(value string) Entry {
	return Entry{Kind: KindText, Value: value}
}

// NewImage returns an image entry without provenance.
func NewImage(width, height, rowstride int32, hasAlpha bool, bitsPerSample, channels int32, pixels []byte) Entry {
	return Entry{
		Kind:          KindImage,
		Width:         width,
		Height:        height,
		Rowstride:     rowstride,
		HasAlpha:      hasAlpha,
		BitsPerSample: bitsPerSample,
		Channels:      channels,
		Pixels:        pixels,
	}
}

// IsEmpty reports whether the entry carries no content. Empty entries are
// never stored. Entries of an unknown kind count as empty so that a decoded
// file from a newer version degrades to dropping them rather than storing
// husks.
func (e Entry) IsEmpty() bool {
	switch e.Kind {
	case KindText:
		return e.Value == ""
	case KindImage:
		return len(e.Pixels) == 0
	default:
		return true
	}
}

// ContentEquals reports content equality, ignoring SourceWindow.
func (e Entry) ContentEquals(other Entry) bool {
	if e.Kind != other.Kind {
		return false
	}
	switch e.Kind {
	case KindText:
		return e.Value == other.Value
	case KindImage:
		return e.Width == other.Width &&
			e.Height == other.Height &&
			e.Rowstride == other.Rowstride &&
			e.HasAlpha == other.HasAlpha &&
			e.BitsPerSample == other.BitsPerSample &&
			e.Channels == other.Channels &&
			bytes.Equal(e.Pixels, other.Pixels)
	default:
		return false
	}
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (e Entry) Clone() Entry {
	out := e
	if e.Pixels != nil {
		out.Pixels = bytes.Clone(e.Pixels)
	}
	out.SourceWindow = e.SourceWindow.Clone()
	return out
}

// String renders the entry for plain history output: raw text, or the image
// dimensions.
func (e Entry) String() string {
	if e.Kind == KindImage {
		return fmt.Sprintf("[image] %dx%d", e.Width, e.Height)
	}
	return e.Value
}

// Label renders a single-line menu label: newlines escaped and text
// truncated at a rune boundary.
func (e Entry) Label() string {
	if e.Kind == KindImage {
		return fmt.Sprintf("[image] %dx%d", e.Width, e.Height)
	}
	sanitized := strings.NewReplacer("\n", `\n`, "\r", `\r`).Replace(e.Value)
	runes := []rune(sanitized)
	if len(runes) <= labelRuneLimit {
		return sanitized
	}
	return string(runes[:labelRuneLimit]) + "..."
}
