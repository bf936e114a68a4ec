package landing

import (
	"fmt"

	"github.com/phanxgames/reveal"
)

// Testimonials rotates the quotes in a carousel over parallax layers.
type Testimonials struct {
	layout   *Layout
	carousel *reveal.Carousel
}

func (t *Testimonials) Name() string { return "testimonials" }

// Carousel returns the carousel of the current mount.
func (t *Testimonials) Carousel() *reveal.Carousel { return t.carousel }

func (t *Testimonials) Mount(ctx *reveal.Context) error {
	e := &t.layout.Testimonials

	in := ctx.Timeline(reveal.Vars{Ease: easeOut3}).
		FromTo(els(e.Slides), rise(100), settled(), reveal.Vars{Duration: 1})
	entrance(ctx, "testimonials-slides", e.Section, "top 80%", in)

	bg := ctx.Timeline(reveal.Vars{Ease: easeLinear}).
		To(els(e.Background), reveal.Props{reveal.PropBackgroundY: 30}, reveal.Vars{Duration: 1})
	scrubbed(ctx, "testimonials-bg", e.Section, "", "", 0, bg)

	lift := ctx.Timeline(reveal.Vars{Ease: easeLinear}).
		To(els(e.Slides), reveal.Props{reveal.PropY: -50}, reveal.Vars{Duration: 1})
	scrubbed(ctx, "testimonials-lift", e.Section, "", "", 0.5, lift)

	for i, layer := range e.Layers {
		speed := 0.1 * float64(i+1)
		dir := sign(i, -1, 1)
		tl := ctx.Timeline(reveal.Vars{Ease: easeLinear}).To(els(layer), reveal.Props{
			reveal.PropY:        dir * 50 * speed,
			reveal.PropX:        dir * 30 * speed,
			reveal.PropRotation: dir * 5 * speed,
		}, reveal.Vars{Duration: 1})
		scrubbed(ctx, fmt.Sprintf("testimonials-layer-%d", i), e.Section, "", "", 0, tl)
	}

	t.carousel = ctx.Carousel(reveal.CarouselConfig{
		Slides: e.Slide,
		Layers: e.Layers,
	})
	return nil
}
