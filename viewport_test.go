package reveal

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestViewportMaxScroll(t *testing.T) {
	v := newViewport(1000, 800)
	if !math.IsInf(v.MaxScroll(), 1) {
		t.Errorf("unclamped MaxScroll = %v", v.MaxScroll())
	}
	v.ContentHeight = 3000
	assertNear(t, "MaxScroll", v.MaxScroll(), 2200)
	v.ContentHeight = 500
	assertNear(t, "short content", v.MaxScroll(), 0)
}

func TestViewportIsMobile(t *testing.T) {
	if newViewport(1024, 768).IsMobile() {
		t.Error("1024 is desktop")
	}
	if !newViewport(375, 812).IsMobile() {
		t.Error("375 is mobile")
	}
}

func TestViewportPageToScreen(t *testing.T) {
	v := newViewport(1000, 800)
	v.ScrollY = 500
	v.MarkDirty()
	sx, sy := v.PageToScreen(100, 700)
	assertNear(t, "sx", sx, 100)
	assertNear(t, "sy", sy, 200)
	px, py := v.ScreenToPage(sx, sy)
	assertNear(t, "px", px, 100)
	assertNear(t, "py", py, 700)
}

func TestViewportVisibleBounds(t *testing.T) {
	v := newViewport(1000, 800)
	v.ScrollY = 1200
	got := v.VisibleBounds()
	if got != (Rect{Y: 1200, Width: 1000, Height: 800}) {
		t.Errorf("VisibleBounds = %+v", got)
	}
}

func TestViewportScrollToClampsAndFinishes(t *testing.T) {
	v := newViewport(1000, 800)
	v.ContentHeight = 2000
	v.ScrollTo(5000, 1, ease.Linear)
	if !v.Scrolling() {
		t.Fatal("expected scroll animation")
	}
	v.update(0.5)
	assertClose(t, "half", v.ScrollY, 600, 1e-3)
	v.update(0.5)
	assertNear(t, "end", v.ScrollY, 1200)
	if v.Scrolling() {
		t.Error("animation should be finished")
	}
	if v.update(0.1) {
		t.Error("update without animation reported a change")
	}
}

func TestViewportStopScroll(t *testing.T) {
	v := newViewport(1000, 800)
	v.ScrollTo(400, 1, nil)
	v.update(0.25)
	y := v.ScrollY
	v.StopScroll()
	v.update(0.25)
	assertNear(t, "ScrollY", v.ScrollY, y)
}
