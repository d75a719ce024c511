package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{1500 * time.Millisecond, "00:01"},
		{75 * time.Second, "01:15"},
		{-time.Second, "00:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFrameHistory(t *testing.T) {
	h := newFrameHistory(3)
	if mean, longest := h.stats(); mean != 0 || longest != 0 {
		t.Errorf("empty stats = %v, %v", mean, longest)
	}

	h.record(10 * time.Millisecond)
	h.record(20 * time.Millisecond)
	if h.len() != 2 {
		t.Fatalf("len = %d, want 2", h.len())
	}
	if mean, longest := h.stats(); mean != 15*time.Millisecond || longest != 20*time.Millisecond {
		t.Errorf("stats = %v, %v, want 15ms, 20ms", mean, longest)
	}

	// Wraps and forgets the oldest interval.
	h.record(30 * time.Millisecond)
	h.record(60 * time.Millisecond)
	if h.len() != 3 {
		t.Fatalf("len = %d, want 3", h.len())
	}
	if mean, longest := h.stats(); mean != 110*time.Millisecond/3 || longest != 60*time.Millisecond {
		t.Errorf("stats = %v, %v", mean, longest)
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := map[string]string{
		"":              "frame",
		"after release": "after_release",
		"a/b\\c":        "a_b_c",
		"ok-1_2":        "ok-1_2",
	}
	for in, want := range tests {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestScreenshotPathsAreUnique(t *testing.T) {
	g, _ := newTestGame(t)
	first := g.screenshotPath("20240501_120000", "frame")
	second := g.screenshotPath("20240501_120000", "frame")
	if first == second {
		t.Fatalf("two captures in one second share %s", first)
	}
	if want := filepath.Join(g.screenshotDir, "20240501_120000_002_frame.png"); second != want {
		t.Errorf("second path = %s, want %s", second, want)
	}
}

func TestToNRGBAUnpremultiplies(t *testing.T) {
	img := toNRGBA([]byte{
		0x80, 0x40, 0x00, 0x80, // half transparent
		0x10, 0x20, 0x30, 0xff, // opaque
	}, 2, 1)

	if got := img.Pix[:4]; got[0] != 0xff || got[1] != 0x7f || got[2] != 0 || got[3] != 0x80 {
		t.Errorf("pixel 0 = %v", got)
	}
	if got := img.Pix[4:8]; got[0] != 0x10 || got[1] != 0x20 || got[2] != 0x30 || got[3] != 0xff {
		t.Errorf("pixel 1 = %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := writePNG(path, toNRGBA(make([]byte, 16), 2, 2)); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}
