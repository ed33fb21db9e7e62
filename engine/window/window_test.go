package window

import (
	"testing"
	"time"
)

func TestNewEngineWindowDefaults(t *testing.T) {
	w := newEngineWindow()
	if w.title != DefaultTitle {
		t.Fatalf("title = %q, want %q", w.title, DefaultTitle)
	}
	if w.Width() != 800 || w.Height() != 600 {
		t.Fatalf("size = %dx%d, want 800x600", w.Width(), w.Height())
	}
	if w.IsRunning() {
		t.Fatal("window without a platform window should not report running")
	}
	if err := w.Close(); err == nil {
		t.Fatal("closing an unspawned window should fail")
	}
}

func TestWindowOptions(t *testing.T) {
	w := newEngineWindow(
		WithTitle("custom"),
		WithSize(1024, 768),
		WithMinSize(320, 240),
		WithMaxSize(1920, 1080),
		WithEventWait(10*time.Millisecond),
	)
	if w.title != "custom" || w.width != 1024 || w.height != 768 {
		t.Fatalf("unexpected window config: %+v", w)
	}
	if w.minWidth != 320 || w.minHeight != 240 || w.maxWidth != 1920 || w.maxHeight != 1080 {
		t.Fatalf("unexpected size limits: %+v", w)
	}
	if w.eventWait != 10*time.Millisecond {
		t.Fatalf("eventWait = %v", w.eventWait)
	}

	w = newEngineWindow(WithTitle(""), WithSize(0, -1), WithEventWait(-time.Second))
	if w.title != DefaultTitle || w.width != DefaultWidth || w.height != DefaultHeight || w.eventWait != 0 {
		t.Fatalf("invalid option values should be ignored: %+v", w)
	}
}

func TestDispatchScrollIgnoresHorizontal(t *testing.T) {
	w := newEngineWindow()
	var got []float32
	w.SetScrollCallback(func(direction float32) { got = append(got, direction) })

	w.dispatchScroll(0)
	w.dispatchScroll(1)
	w.dispatchScroll(-2.5)

	if len(got) != 2 || got[0] != 1 || got[1] != -2.5 {
		t.Fatalf("scroll directions = %v, want [1 -2.5]", got)
	}
}

func TestDispatchResizeUpdatesSize(t *testing.T) {
	w := newEngineWindow()
	var gotW, gotH int
	w.SetResizeCallback(func(width, height int) { gotW, gotH = width, height })

	w.dispatchResize(1280, 0)

	if gotW != 1280 || gotH != 0 {
		t.Fatalf("callback got %dx%d", gotW, gotH)
	}
	if w.Width() != 1280 || w.Height() != 0 {
		t.Fatalf("stored size %dx%d", w.Width(), w.Height())
	}
}
