package reveal

import "fmt"

// HorizontalScrollConfig describes a pinned section whose wide content strip
// translates horizontally while the page scrolls vertically.
type HorizontalScrollConfig struct {
	Name string
	// Section is pinned and defines the region start ("top top").
	Section *Element
	// Container is the wide strip; its ContentWidth is W.
	Container *Element
	// Padding is added to the travel distance so the last card clears the
	// edge. Defaults to 100.
	Padding float64
	// EndPadding is added to the scroll distance.
	EndPadding float64
	// Scrub is the catch-up time; default 1. Negative applies progress
	// synchronously.
	Scrub float64
}

// HorizontalScroll pins Section from "top top" for W-V+EndPadding pixels of
// scroll and maps that progress linearly onto the container's x from 0 to
// -(W-V+Padding), where W is the container's content width and V the
// viewport width. Both distances are recomputed on every refresh.
func HorizontalScroll(ctx *Context, cfg HorizontalScrollConfig) (*Trigger, error) {
	if !cfg.Section.IsAttached() || !cfg.Container.IsAttached() {
		return nil, fmt.Errorf("horizontal scroll %q: %w", cfg.Name, ErrMissingTarget)
	}
	if cfg.Padding == 0 {
		cfg.Padding = 100
	}
	switch {
	case cfg.Scrub == 0:
		cfg.Scrub = 1
	case cfg.Scrub < 0:
		cfg.Scrub = 0
	}
	vp := ctx.Viewport()
	travel := func() float64 {
		return cfg.Container.ContentWidth() - vp.Width
	}

	tl := ctx.Timeline(Vars{Ease: MustEase("none")})
	tl.To([]*Element{cfg.Container}, Props{PropX: -(travel() + cfg.Padding)}, Vars{Duration: 1})
	tw := tl.Tweens()[0]

	t := ctx.ScrollTrigger(TriggerConfig{
		Name:      cfg.Name,
		Trigger:   cfg.Section,
		Start:     Edge(0, 0),
		End:       AfterFunc(func() float64 { return travel() + cfg.EndPadding }),
		Mode:      ModeScrub,
		Scrub:     cfg.Scrub,
		Pin:       true,
		Animation: tl,
		OnRefresh: func(*Trigger) {
			tw.SetTo(PropX, -(travel() + cfg.Padding))
		},
	})
	return t, nil
}
