package poller

import (
	"testing"

	"github.com/slyboard/slyboard/internal/activewindow"
	"github.com/slyboard/slyboard/internal/history"
)

// fakeBackend replays a scripted sequence of clipboard reads with a fixed
// focused window.
type fakeBackend struct {
	entries []*history.Entry
	window  *activewindow.Context
	reads   int
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) ReadEntry() *history.Entry {
	if f.reads >= len(f.entries) {
		return nil
	}
	entry := f.entries[f.reads]
	f.reads++
	if entry == nil {
		return nil
	}
	clone := entry.Clone()
	return &clone
}

func (f *fakeBackend) ReadActiveWindow() *activewindow.Context { return f.window }

func text(value string) *history.Entry {
	e := history.NewText(value)
	return &e
}

func TestPollOnceDetectsChanges(t *testing.T) {
	backend := &fakeBackend{entries: []*history.Entry{
		text("x"), text("x"), text("y"), nil, text("y"), text("x"),
	}}
	p := New(backend, nil)

	wants := []string{"x", "", "y", "", "", "x"}
	for i, want := range wants {
		got := p.PollOnce()
		if want == "" {
			if got != nil {
				t.Fatalf("tick %d: got %+v, want nil", i, got)
			}
			continue
		}
		if got == nil || got.Value != want {
			t.Fatalf("tick %d: got %+v, want %q", i, got, want)
		}
	}
}

func TestPollOnceSkipsEmptyEntries(t *testing.T) {
	backend := &fakeBackend{entries: []*history.Entry{text(""), nil}}
	p := New(backend, nil)

	if got := p.PollOnce(); got != nil {
		t.Fatalf("empty entry: got %+v", got)
	}
	if got := p.PollOnce(); got != nil {
		t.Fatalf("nil read: got %+v", got)
	}
}

func TestPollOnceTagsSourceWindow(t *testing.T) {
	window := &activewindow.Context{Backend: "hyprctl", Title: "Editor", AppID: "editor"}
	backend := &fakeBackend{entries: []*history.Entry{text("x")}, window: window}
	p := New(backend, nil)

	got := p.PollOnce()
	if got == nil || got.SourceWindow == nil {
		t.Fatalf("got %+v, want entry with source window", got)
	}
	if got.SourceWindow.Title != "Editor" {
		t.Errorf("SourceWindow.Title = %q", got.SourceWindow.Title)
	}
}

func TestBlacklistSuppressesByAppID(t *testing.T) {
	window := &activewindow.Context{Backend: "hyprctl", Title: "Vault", AppID: "KeePassXC"}
	backend := &fakeBackend{entries: []*history.Entry{text("secret")}, window: window}
	p := New(backend, []string{"  keepassxc  "})

	if got := p.PollOnce(); got != nil {
		t.Fatalf("blacklisted app id should suppress, got %+v", got)
	}
}

func TestBlacklistSuppressesByTitleSubstring(t *testing.T) {
	window := &activewindow.Context{Backend: "xdotool", Title: "Team Slack - general"}
	backend := &fakeBackend{entries: []*history.Entry{text("message")}, window: window}
	p := New(backend, []string{"slack"})

	if got := p.PollOnce(); got != nil {
		t.Fatalf("blacklisted title substring should suppress, got %+v", got)
	}
}

func TestBlacklistAppIDMatchIsExact(t *testing.T) {
	window := &activewindow.Context{Backend: "hyprctl", Title: "notes", AppID: "keepassxc-helper"}
	backend := &fakeBackend{entries: []*history.Entry{text("note")}, window: window}
	p := New(backend, []string{"keepassxc"})

	if got := p.PollOnce(); got == nil {
		t.Fatal("app id match must be exact, not substring")
	}
}

func TestSuppressionFailsOpen(t *testing.T) {
	backend := &fakeBackend{entries: []*history.Entry{text("x")}, window: nil}
	p := New(backend, []string{"keepassxc"})

	if got := p.PollOnce(); got == nil {
		t.Fatal("no window context should never suppress")
	}
}

func TestSuppressedValueStillUpdatesBaseline(t *testing.T) {
	window := &activewindow.Context{Backend: "hyprctl", Title: "Vault", AppID: "keepassxc"}
	backend := &fakeBackend{entries: []*history.Entry{text("secret"), text("secret")}, window: window}
	p := New(backend, []string{"keepassxc"})

	if got := p.PollOnce(); got != nil {
		t.Fatalf("first read should be suppressed, got %+v", got)
	}
	// The suppressed value is now the baseline; re-reading the same content
	// must not re-run the blacklist check every tick.
	if got := p.PollOnce(); got != nil {
		t.Fatalf("unchanged suppressed value should stay nil, got %+v", got)
	}
	if backend.reads != 2 {
		t.Fatalf("reads = %d, want 2", backend.reads)
	}
}

func TestNewDropsBlankBlacklistEntries(t *testing.T) {
	p := New(&fakeBackend{}, []string{" ", "", "Slack"})
	if len(p.blacklist) != 1 || p.blacklist[0] != "slack" {
		t.Fatalf("blacklist = %v, want [slack]", p.blacklist)
	}
}
