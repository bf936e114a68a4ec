package landing

import (
	"fmt"

	"github.com/phanxgames/reveal"
)

// Features shows the feature cards: a pinned horizontal strip on desktop and
// a vertical list on mobile. Crossing the breakpoint remounts the page.
type Features struct {
	layout *Layout
	strip  *reveal.Trigger
}

func (f *Features) Name() string { return "features" }

// Strip returns the pinned horizontal trigger, nil on mobile.
func (f *Features) Strip() *reveal.Trigger { return f.strip }

func (f *Features) Mount(ctx *reveal.Context) error {
	e := &f.layout.Features
	f.strip = nil

	heading := ctx.Timeline(reveal.Vars{Ease: easeOut3}).
		FromTo(els(e.Heading), rise(50), settled(), reveal.Vars{Duration: 0.8})
	entrance(ctx, "features-heading", e.Heading, "top 80%", heading)

	f.decorate(ctx, e)

	var err error
	if ctx.Mobile() {
		f.mountMobile(ctx, e)
	} else {
		err = f.mountDesktop(ctx, e)
	}
	ctx.WatchBreakpoint()
	return err
}

func (f *Features) decorate(ctx *reveal.Context, e *FeaturesElements) {
	for i, d := range e.Decorations {
		pop := ctx.Timeline(reveal.Vars{Ease: reveal.MustEase("elastic.out")}).FromTo(els(d),
			reveal.Props{reveal.PropAlpha: 0, reveal.PropScale: 0.5},
			reveal.Props{reveal.PropAlpha: 0.8, reveal.PropScale: 1},
			reveal.Vars{Duration: 1.5, Delay: 0.2 * float64(i)})
		entrance(ctx, fmt.Sprintf("features-deco-reveal-%d", i), e.Section, "top 80%", pop)

		xDir := 15.0
		if i%3 == 0 {
			xDir = -15
		}
		ctx.To(els(d), reveal.Props{
			reveal.PropY:        sign(i, -20, 20),
			reveal.PropX:        xDir,
			reveal.PropRotation: sign(i, -5, 5),
		}, reveal.Vars{
			Duration: 3 + float64(i),
			Repeat:   reveal.RepeatForever,
			Yoyo:     true,
			Ease:     easeSine,
		})

		if !ctx.Mobile() {
			drift := ctx.Timeline(reveal.Vars{Ease: easeLinear}).
				To(els(d), reveal.Props{reveal.PropY: sign(i, -100, 100)}, reveal.Vars{Duration: 1})
			scrubbed(ctx, fmt.Sprintf("features-deco-%d", i), e.Section, "top bottom", "bottom top", 0, drift)
		}
	}
}

func (f *Features) mountDesktop(ctx *reveal.Context, e *FeaturesElements) error {
	strip, err := reveal.HorizontalScroll(ctx, reveal.HorizontalScrollConfig{
		Name:      "features-strip",
		Section:   e.Section,
		Container: e.Container,
		Scrub:     1,
	})
	if err != nil {
		return err
	}
	f.strip = strip

	cards := ctx.Timeline(reveal.Vars{Ease: easeOut3}).FromTo(e.Cards,
		reveal.Props{reveal.PropAlpha: 0, reveal.PropY: 50, reveal.PropRotationY: -15, reveal.PropZ: -100},
		reveal.Props{reveal.PropAlpha: 1, reveal.PropY: 0, reveal.PropRotationY: 0, reveal.PropZ: 0},
		reveal.Vars{Duration: 0.8, Stagger: 0.1})
	entrance(ctx, "features-cards", e.Section, "top 80%", cards)

	for i, card := range e.Cards {
		depth := ctx.Timeline(reveal.Vars{Ease: easeLinear}).FromTo(els(card),
			reveal.Props{reveal.PropZ: 0},
			reveal.Props{reveal.PropZ: sign(i, 50, -50)},
			reveal.Vars{Duration: 1})
		scrubbed(ctx, fmt.Sprintf("features-card-depth-%d", i), e.Section, "top bottom", "bottom top", 0, depth)
	}
	return nil
}

func (f *Features) mountMobile(ctx *reveal.Context, e *FeaturesElements) {
	for i, card := range e.Cards {
		tl := ctx.Timeline(reveal.Vars{Ease: easeOut2}).FromTo(els(card), rise(30), settled(),
			reveal.Vars{Duration: 0.5, Delay: 0.1 * float64(i)})
		entrance(ctx, fmt.Sprintf("features-card-%d", i), card, "top 90%", tl)
	}
	ctx.To(e.Icons, reveal.Props{reveal.PropScale: 1.05}, reveal.Vars{
		Duration: 1.5,
		Repeat:   reveal.RepeatForever,
		Yoyo:     true,
		Ease:     easeSine,
	})
}
