package clip

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/slyboard/slyboard/internal/history"
)

func TestDecodeImageEntry(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(2, 1, color.RGBA{B: 255, A: 128})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	entry := decodeImageEntry(buf.Bytes())
	if entry == nil {
		t.Fatal("decodeImageEntry returned nil for a valid PNG")
	}
	if entry.Kind != history.KindImage {
		t.Errorf("Kind = %q", entry.Kind)
	}
	if entry.Width != 3 || entry.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 3x2", entry.Width, entry.Height)
	}
	if entry.Rowstride != 12 || entry.Channels != 4 || entry.BitsPerSample != 8 || !entry.HasAlpha {
		t.Errorf("pixel format = stride %d channels %d bits %d alpha %v",
			entry.Rowstride, entry.Channels, entry.BitsPerSample, entry.HasAlpha)
	}
	if len(entry.Pixels) != 24 {
		t.Errorf("len(Pixels) = %d, want 24", len(entry.Pixels))
	}
	if entry.Pixels[0] != 255 || entry.Pixels[3] != 255 {
		t.Errorf("pixel (0,0) = %v, want opaque red", entry.Pixels[:4])
	}
}

func TestDecodeImageEntryRejectsGarbage(t *testing.T) {
	if entry := decodeImageEntry([]byte("not a png")); entry != nil {
		t.Fatalf("got %+v, want nil", entry)
	}
	if entry := decodeImageEntry(nil); entry != nil {
		t.Fatalf("got %+v, want nil", entry)
	}
}

func TestHeadlessBackendIsInert(t *testing.T) {
	b := headlessBackend{}
	if b.ReadEntry() != nil || b.ReadActiveWindow() != nil {
		t.Fatal("headless backend must never produce data")
	}
	if b.Name() == "" {
		t.Fatal("backend name must be set")
	}
}
