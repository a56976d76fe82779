// Package poller implements the clipboard change detector: one sample per
// tick, compared against the last observed value, with blacklist-based
// suppression keyed on the focused window.
package poller

import (
	"strings"

	"github.com/slyboard/slyboard/internal/activewindow"
	"github.com/slyboard/slyboard/internal/clip"
	"github.com/slyboard/slyboard/internal/history"
)

// Poller samples a clipboard backend and decides, per tick, whether a new
// history entry should be recorded. It is not safe for concurrent use; the
// host drives it from a single loop.
type Poller struct {
	backend   clip.Backend
	lastSeen  *history.Entry
	blacklist []string
}

// New returns a poller over backend. Blacklist entries are normalized
// (trimmed, lower-cased) once here; blank entries are dropped.
func New(backend clip.Backend, blacklist []string) *Poller {
	p := &Poller{backend: backend}
	for _, item := range blacklist {
		if norm := normalize(item); norm != "" {
			p.blacklist = append(p.blacklist, norm)
		}
	}
	return p
}

// PollOnce samples the clipboard once and returns the entry to record, or
// nil when nothing is available, nothing changed, the value is empty, or
// capture is suppressed by the blacklist. A suppressed value still becomes
// the comparison baseline, so the same content is not re-evaluated on every
// subsequent tick.
func (p *Poller) PollOnce() *history.Entry {
	entry := p.backend.ReadEntry()
	if entry == nil || entry.IsEmpty() {
		return nil
	}
	if p.lastSeen != nil && p.lastSeen.ContentEquals(*entry) {
		return nil
	}

	baseline := entry.Clone()
	p.lastSeen = &baseline

	window := p.backend.ReadActiveWindow()
	if p.suppressed(window) {
		return nil
	}

	entry.SourceWindow = window
	return entry
}

// suppressed applies the blacklist policy: a captured context whose app id
// exactly equals a blacklist entry, or whose title contains one as a
// substring. No context never suppresses — capture fails open.
func (p *Poller) suppressed(window *activewindow.Context) bool {
	if len(p.blacklist) == 0 || window == nil {
		return false
	}
	appID := normalize(window.AppID)
	title := normalize(window.Title)
	for _, item := range p.blacklist {
		if appID != "" && appID == item {
			return true
		}
		if strings.Contains(title, item) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
