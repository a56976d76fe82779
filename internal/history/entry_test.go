package history

import (
	"strings"
	"testing"

	"github.com/slyboard/slyboard/internal/activewindow"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{"empty text", NewText(""), true},
		{"text", NewText("x"), false},
		{"empty image", NewImage(2, 2, 8, true, 8, 4, nil), true},
		{"image", NewImage(2, 2, 8, true, 8, 4, []byte{1, 2, 3}), false},
		{"unknown kind", Entry{Kind: "blob", Value: "x"}, true},
	}
	for _, tt := range tests {
		if got := tt.entry.IsEmpty(); got != tt.want {
			t.Errorf("%s: IsEmpty() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestContentEqualsIgnoresSourceWindow(t *testing.T) {
	a := NewText("hello")
	b := NewText("hello")
	b.SourceWindow = &activewindow.Context{Backend: "hyprctl", Title: "Editor"}

	if !a.ContentEquals(b) {
		t.Error("entries differing only in SourceWindow should be content-equal")
	}
	if a.ContentEquals(NewText("other")) {
		t.Error("different text values should not be content-equal")
	}
}

func TestContentEqualsImage(t *testing.T) {
	a := NewImage(2, 1, 8, true, 8, 4, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	b := NewImage(2, 1, 8, true, 8, 4, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if !a.ContentEquals(b) {
		t.Error("identical images should be content-equal")
	}

	c := b
	c.Pixels = []byte{9, 2, 3, 4, 5, 6, 7, 8}
	if a.ContentEquals(c) {
		t.Error("images with different pixels should not be content-equal")
	}

	d := b
	d.Width = 1
	d.Height = 2
	if a.ContentEquals(d) {
		t.Error("images with different dimensions should not be content-equal")
	}

	if a.ContentEquals(NewText("x")) {
		t.Error("image and text should never be content-equal")
	}
}

func TestCloneIsDisconnected(t *testing.T) {
	pid := int64(42)
	orig := NewImage(1, 1, 4, true, 8, 4, []byte{1, 2, 3, 4})
	orig.SourceWindow = &activewindow.Context{Backend: "hyprctl", Title: "Editor", PID: &pid}

	clone := orig.Clone()
	clone.Pixels[0] = 99
	clone.SourceWindow.Title = "changed"
	*clone.SourceWindow.PID = 7

	if orig.Pixels[0] != 1 {
		t.Error("mutating a clone's pixels leaked into the original")
	}
	if orig.SourceWindow.Title != "Editor" || *orig.SourceWindow.PID != 42 {
		t.Error("mutating a clone's source window leaked into the original")
	}
}

func TestLabel(t *testing.T) {
	if got := NewText("one\ntwo\rthree").Label(); got != `one\ntwo\rthree` {
		t.Errorf("Label() = %q, want escaped newlines", got)
	}

	long := strings.Repeat("ä", 80)
	got := NewText(long).Label()
	if want := strings.Repeat("ä", 70) + "..."; got != want {
		t.Errorf("Label() truncation = %q, want %q", got, want)
	}

	img := NewImage(640, 480, 2560, true, 8, 4, []byte{1})
	if got := img.Label(); got != "[image] 640x480" {
		t.Errorf("image Label() = %q", got)
	}
}

func TestString(t *testing.T) {
	if got := NewText("raw\nvalue").String(); got != "raw\nvalue" {
		t.Errorf("text String() = %q, want raw value", got)
	}
	if got := NewImage(10, 20, 40, true, 8, 4, []byte{1}).String(); got != "[image] 10x20" {
		t.Errorf("image String() = %q", got)
	}
}
