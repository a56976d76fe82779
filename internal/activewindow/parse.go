package activewindow

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParseHyprctl decodes the JSON object printed by `hyprctl activewindow -j`.
// A non-empty title is required; every optional field independently falls
// back to absent when missing, wrong-typed, or blank.
func ParseHyprctl(raw string) *Context {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}

	title := trimmedString(parsed["title"])
	if title == "" {
		return nil
	}

	ctx := &Context{
		Backend:      "hyprctl",
		Title:        title,
		AppID:        trimmedString(parsed["class"]),
		InitialAppID: trimmedString(parsed["initialClass"]),
		InitialTitle: trimmedString(parsed["initialTitle"]),
		WindowID:     trimmedString(parsed["address"]),
		PID:          jsonInt(parsed["pid"]),
	}
	if workspace, ok := parsed["workspace"].(map[string]any); ok {
		ctx.WorkspaceID = jsonInt(workspace["id"])
		ctx.WorkspaceName = trimmedString(workspace["name"])
	}
	if xwayland, ok := parsed["xwayland"].(bool); ok {
		ctx.IsXWayland = &xwayland
	}
	return ctx
}

// ParseXdotool decodes newline-delimited key=value pairs produced by the
// xdotool shell pipeline. Unknown keys are ignored; non-numeric pid and
// workspace_id values become absent. A title is required.
func ParseXdotool(raw string) *Context {
	ctx := &Context{Backend: "xdotool"}
	for _, line := range strings.Split(raw, "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "title":
			if value != "" {
				ctx.Title = value
			}
		case "app_id":
			if value != "" {
				ctx.AppID = value
			}
		case "window_id":
			if value != "" {
				ctx.WindowID = value
			}
		case "pid":
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				ctx.PID = &n
			}
		case "workspace_id":
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				ctx.WorkspaceID = &n
			}
		}
	}
	if ctx.Title == "" {
		return nil
	}
	return ctx
}

// ParseCommand treats the entire trimmed output of a user-supplied command
// as the window title.
func ParseCommand(raw string) *Context {
	title := strings.TrimSpace(raw)
	if title == "" {
		return nil
	}
	return &Context{Backend: "command", Title: title}
}

func trimmedString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// jsonInt converts a decoded JSON number to an int64, or nil for anything
// that is not a number. encoding/json decodes numbers as float64.
func jsonInt(v any) *int64 {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	n := int64(f)
	return &n
}
