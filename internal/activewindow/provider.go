// Package activewindow queries the desktop environment for the currently
// focused window, used to tag clipboard captures with their origin. Capture
// never fails loudly: a provider either produces a Context or nil. Backend
// selection mirrors the config file:
//
//	auto      — hyprctl first, then a generic xdotool pipeline (default)
//	disabled  — never captures
//	command   — a user-supplied program whose stdout is the window title
package activewindow

import (
	"os/exec"
	"strings"
	"unicode/utf8"
)

// Selection names from configuration.
const (
	BackendAuto     = "auto"
	BackendDisabled = "disabled"
	BackendCommand  = "command"
)

// Context describes the focused window at capture time. Backend records
// which capture method produced it ("hyprctl", "xdotool", "command").
// Title is always non-empty; every other field is optional and absent when
// the backend could not report it.
type Context struct {
	Backend       string `json:"backend"`
	Title         string `json:"title"`
	AppID         string `json:"app_id,omitempty"`
	InitialAppID  string `json:"initial_app_id,omitempty"`
	InitialTitle  string `json:"initial_title,omitempty"`
	WindowID      string `json:"window_id,omitempty"`
	PID           *int64 `json:"pid,omitempty"`
	WorkspaceID   *int64 `json:"workspace_id,omitempty"`
	WorkspaceName string `json:"workspace_name,omitempty"`
	IsXWayland    *bool  `json:"is_xwayland,omitempty"`
}

// Clone returns an independent copy of the context.
func (c *Context) Clone() *Context {
	if c == nil {
		return nil
	}
	out := *c
	out.PID = clonePtr(c.PID)
	out.WorkspaceID = clonePtr(c.WorkspaceID)
	out.IsXWayland = clonePtr(c.IsXWayland)
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Provider is a capture method for the focused window.
type Provider interface {
	// Capture returns the currently focused window, or nil when no context
	// is available. It may block while an external command runs.
	Capture() *Context
}

// Disabled is the Provider that never captures.
type Disabled struct{}

func (Disabled) Capture() *Context { return nil }

// ParseFunc maps raw command output (already trimmed) to a Context, or nil.
type ParseFunc func(raw string) *Context

// CommandProvider runs one fixed external program and feeds its stdout to a
// parse function. Spawn failure, non-zero exit, and non-UTF8 output all
// collapse to nil.
type CommandProvider struct {
	program string
	args    []string
	parse   ParseFunc
}

// NewCommandProvider returns a provider invoking program with args.
func NewCommandProvider(program string, args []string, parse ParseFunc) *CommandProvider {
	return &CommandProvider{program: program, args: args, parse: parse}
}

func (p *CommandProvider) Capture() *Context {
	out, err := exec.Command(p.program, p.args...).Output()
	if err != nil {
		return nil
	}
	if !utf8.Valid(out) {
		return nil
	}
	return p.parse(strings.TrimSpace(string(out)))
}

// xdotoolScript reconstructs the focused window via the classic X11 tools as
// key=value lines for ParseXdotool. Any missing tool makes the whole
// pipeline exit non-zero, which Capture treats as "no context".
const xdotoolScript = `window_id=$(xdotool getactivewindow 2>/dev/null) || exit 1; ` +
	`title=$(xdotool getwindowname "$window_id" 2>/dev/null || true); ` +
	`app_id=$(xdotool getwindowclassname "$window_id" 2>/dev/null || true); ` +
	`pid=$(xdotool getwindowpid "$window_id" 2>/dev/null || true); ` +
	`workspace_id=$(xdotool get_desktop_for_window "$window_id" 2>/dev/null || true); ` +
	`printf 'window_id=%s\n' "$window_id"; ` +
	`printf 'title=%s\n' "$title"; ` +
	`printf 'app_id=%s\n' "$app_id"; ` +
	`printf 'pid=%s\n' "$pid"; ` +
	`printf 'workspace_id=%s\n' "$workspace_id";`

// Auto tries a fixed, ordered list of concrete providers and returns the
// first context produced. hyprctl comes first: compositor-reported focus is
// richer than anything the X11 tools can reconstruct.
type Auto struct {
	providers []Provider
}

// NewAuto returns the default provider chain.
func NewAuto() *Auto {
	return &Auto{providers: []Provider{
		NewCommandProvider("hyprctl", []string{"activewindow", "-j"}, ParseHyprctl),
		NewCommandProvider("sh", []string{"-c", xdotoolScript}, ParseXdotool),
	}}
}

func (a *Auto) Capture() *Context {
	for _, p := range a.providers {
		if ctx := p.Capture(); ctx != nil {
			return ctx
		}
	}
	return nil
}

// Selection is the configuration-level choice of capture backend. Program
// and Args are only meaningful for BackendCommand.
type Selection struct {
	Backend string
	Program string
	Args    []string
}

// NewProvider maps a validated configuration selection to a Provider.
// Unknown or empty backend names fall back to Auto, the default.
func NewProvider(sel Selection) Provider {
	switch sel.Backend {
	case BackendDisabled:
		return Disabled{}
	case BackendCommand:
		return NewCommandProvider(sel.Program, sel.Args, ParseCommand)
	default:
		return NewAuto()
	}
}
