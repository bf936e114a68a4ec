package reveal

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds an active scroll-to tween for the vertical scroll position.
type scrollAnim struct {
	tween *gween.Tween
}

// Viewport is the visible window onto the document: its size and the current
// scroll position.
type Viewport struct {
	// ScrollX and ScrollY are the document coordinates of the viewport's
	// top-left corner.
	ScrollX, ScrollY float64
	// Width and Height are the viewport size in pixels.
	Width, Height float64
	// ContentHeight is the document height. Scrolling is clamped to
	// [0, ContentHeight-Height]. Zero disables clamping.
	ContentHeight float64

	viewMatrix [6]float64
	dirty      bool

	scrollTween *scrollAnim
}

func newViewport(width, height float64) *Viewport {
	return &Viewport{Width: width, Height: height, dirty: true}
}

// IsMobile reports whether the viewport is narrower than MobileBreakpoint.
func (v *Viewport) IsMobile() bool { return IsMobileWidth(v.Width) }

// MaxScroll returns the largest reachable ScrollY.
func (v *Viewport) MaxScroll() float64 {
	if v.ContentHeight <= 0 {
		return math.Inf(1)
	}
	return math.Max(0, v.ContentHeight-v.Height)
}

// ScrollTo animates the scroll position to y over duration seconds. A zero
// duration jumps on the next update.
func (v *Viewport) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.InOutQuad
	}
	v.scrollTween = &scrollAnim{
		tween: gween.New(float32(v.ScrollY), float32(v.clamp(y)), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in flight.
func (v *Viewport) Scrolling() bool { return v.scrollTween != nil }

// StopScroll cancels a ScrollTo animation, leaving ScrollY where it is.
func (v *Viewport) StopScroll() { v.scrollTween = nil }

func (v *Viewport) clamp(y float64) float64 {
	return math.Max(0, math.Min(y, v.MaxScroll()))
}

// update advances the scroll animation and reports whether ScrollY changed.
// Called from Page.Update.
func (v *Viewport) update(dt float32) bool {
	if v.scrollTween == nil {
		return false
	}
	prev := v.ScrollY
	val, done := v.scrollTween.tween.Update(dt)
	v.ScrollY = v.clamp(float64(val))
	if done {
		v.scrollTween = nil
	}
	if v.ScrollY != prev {
		v.dirty = true
		return true
	}
	return false
}

// computeViewMatrix recomputes the cached page-to-screen matrix if dirty.
func (v *Viewport) computeViewMatrix() [6]float64 {
	if !v.dirty {
		return v.viewMatrix
	}
	v.dirty = false
	v.viewMatrix = [6]float64{1, 0, 0, 1, -v.ScrollX, -v.ScrollY}
	return v.viewMatrix
}

// PageToScreen converts document coordinates to screen coordinates.
func (v *Viewport) PageToScreen(px, py float64) (sx, sy float64) {
	return transformPoint(v.computeViewMatrix(), px, py)
}

// ScreenToPage converts screen coordinates to document coordinates.
func (v *Viewport) ScreenToPage(sx, sy float64) (px, py float64) {
	return transformPoint(invertAffine(v.computeViewMatrix()), sx, sy)
}

// VisibleBounds returns the document-space rectangle currently on screen.
func (v *Viewport) VisibleBounds() Rect {
	return Rect{X: v.ScrollX, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// MarkDirty forces a recomputation of the view matrix.
func (v *Viewport) MarkDirty() {
	v.dirty = true
}
