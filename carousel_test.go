package reveal

import "testing"

func newSlides(p *Page, n int) []*Element {
	out := make([]*Element, n)
	for i := range out {
		out[i] = addBox(p, "slide", Rect{Width: 400, Height: 300})
	}
	return out
}

// detachedSlides are never drawn; the carousel's index logic does not need
// them attached.
func detachedSlides(n int) []*Element {
	out := make([]*Element, n)
	for i := range out {
		out[i] = NewElement("slide", Rect{Width: 400, Height: 300})
	}
	return out
}

func TestCarouselAdvancesEveryInterval(t *testing.T) {
	p := newTestPage(t, 1000, 800)
	slides := newSlides(p, 3)

	var c *Carousel
	mountFunc(t, p, "testimonials", func(ctx *Context) error {
		c = ctx.Carousel(CarouselConfig{Slides: slides})
		return nil
	})
	if c.Current() != 0 || c.Previous() != -1 {
		t.Fatalf("Current = %d, Previous = %d", c.Current(), c.Previous())
	}

	want := []int{1, 2, 0}
	for i, w := range want {
		p.Update(6)
		if c.Current() != w {
			t.Errorf("after %d intervals: Current = %d, want %d", i+1, c.Current(), w)
		}
	}
	if c.Advances() != 3 {
		t.Errorf("Advances = %d, want 3", c.Advances())
	}
}

func TestCarouselLongFrameAdvancesSeveralTimes(t *testing.T) {
	c := newCarousel(NewEngine(nil), CarouselConfig{Slides: detachedSlides(3)})
	c.Update(18)
	if c.Current() != 0 || c.Advances() != 3 {
		t.Errorf("Current = %d, Advances = %d", c.Current(), c.Advances())
	}
	c.Update(5.9)
	if c.Advances() != 3 {
		t.Error("advanced before the interval elapsed")
	}
	assertClose(t, "Elapsed", c.Elapsed(), 5.9, 1e-9)
}

func TestCarouselGoToWraps(t *testing.T) {
	var changes [][2]int
	c := newCarousel(NewEngine(nil), CarouselConfig{
		Slides:   detachedSlides(3),
		OnChange: func(from, to int) { changes = append(changes, [2]int{from, to}) },
	})

	c.GoTo(-1)
	if c.Current() != 2 || c.Previous() != 0 {
		t.Errorf("GoTo(-1): Current = %d, Previous = %d", c.Current(), c.Previous())
	}
	c.Next()
	if c.Current() != 0 {
		t.Errorf("Next from last: Current = %d", c.Current())
	}
	c.Prev()
	if c.Current() != 2 {
		t.Errorf("Prev from first: Current = %d", c.Current())
	}
	c.GoTo(5)
	if c.Current() != 2 {
		t.Errorf("GoTo(5): Current = %d", c.Current())
	}
	if len(changes) != 3 {
		t.Errorf("OnChange calls = %v, GoTo to the current slide should not fire", changes)
	}
}

func TestCarouselManualNavigationKeepsTimer(t *testing.T) {
	c := newCarousel(NewEngine(nil), CarouselConfig{Slides: detachedSlides(3)})
	c.Update(4)
	c.Next()
	c.Update(2)
	if c.Current() != 2 {
		t.Errorf("Current = %d, want 2", c.Current())
	}
}

func TestCarouselTransitionShowsIncomingSlide(t *testing.T) {
	p := newTestPage(t, 1000, 800)
	slides := newSlides(p, 3)
	layers := []*Element{addBox(p, "layer", Rect{}), addBox(p, "layer", Rect{})}
	c := newCarousel(p.Engine(), CarouselConfig{Slides: slides, Layers: layers})

	c.Update(2)
	if c.Phase() != CarouselIdle {
		t.Fatalf("Phase = %v after the first transition", c.Phase())
	}
	assertNear(t, "slide 0 alpha", slides[0].Alpha, 1)
	assertNear(t, "slide 1 alpha", slides[1].Alpha, 0)
	assertNear(t, "slide 1 x", slides[1].X, 400)

	c.Next()
	if c.Phase() != CarouselTransitioning {
		t.Fatalf("Phase = %v after Next", c.Phase())
	}
	c.Update(1.5)
	assertNear(t, "slide 1 alpha", slides[1].Alpha, 1)
	assertNear(t, "slide 1 x", slides[1].X, 0)
	assertNear(t, "slide 0 alpha", slides[0].Alpha, 0)
	assertNear(t, "slide 0 scale", slides[0].ScaleX, 0.8)
	assertNear(t, "layer 0 x", layers[0].X, 50)
	assertNear(t, "layer 1 x", layers[1].X, -50)
}

func TestCarouselSingleSlideNeverAdvances(t *testing.T) {
	c := newCarousel(NewEngine(nil), CarouselConfig{Slides: detachedSlides(1)})
	c.Update(60)
	if c.Advances() != 0 || c.Current() != 0 {
		t.Errorf("Advances = %d, Current = %d", c.Advances(), c.Current())
	}
}

func TestCarouselKillStopsTimer(t *testing.T) {
	c := newCarousel(NewEngine(nil), CarouselConfig{Slides: detachedSlides(3)})
	c.Kill()
	c.Update(12)
	c.Next()
	if c.Current() != 0 || !c.Killed() {
		t.Errorf("Current = %d after Kill", c.Current())
	}
	if !c.Transition().Killed() {
		t.Error("transition not killed")
	}
}
