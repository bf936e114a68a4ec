package landing

import (
	"fmt"

	"github.com/phanxgames/reveal"
)

// overlayDrift is each overlay's scroll travel as a fraction of its height,
// and overlayScrub its catch-up time.
var (
	overlayDrift = []float64{0.1, 0.2, 0.15}
	overlayScrub = []float64{0.5, 0.7, 0.9}
)

// Hero is the full-height opening section: a staggered entrance, parallax
// layers tied to scroll, and idle floating decorations.
type Hero struct {
	layout   *Layout
	entrance *reveal.Timeline
}

func (h *Hero) Name() string { return "hero" }

// Entrance returns the entrance timeline of the current mount.
func (h *Hero) Entrance() *reveal.Timeline { return h.entrance }

func (h *Hero) Mount(ctx *reveal.Context) error {
	e := &h.layout.Hero
	hidden := reveal.Props{reveal.PropAlpha: 0}
	shown := reveal.Props{reveal.PropAlpha: 1}

	tl := ctx.Timeline(reveal.Vars{Ease: easeOut3})
	tl.FromTo(els(e.Background),
		reveal.Props{reveal.PropScale: 1.2, reveal.PropAlpha: 0},
		reveal.Props{reveal.PropScale: 1, reveal.PropAlpha: 1},
		reveal.Vars{Duration: 1.5})
	tl.FromTo(e.Overlays, hidden, shown, reveal.Vars{Duration: 1, Stagger: 0.2}, reveal.Offset(-1))
	tl.FromTo(els(e.Heading), rise(50), settled(), reveal.Vars{Duration: 0.8}, reveal.Offset(-0.8))
	tl.FromTo(els(e.Paragraph), rise(30), settled(), reveal.Vars{Duration: 0.8}, reveal.Offset(-0.6))
	tl.FromTo(els(e.Button), rise(20), settled(), reveal.Vars{Duration: 0.6}, reveal.Offset(-0.4))
	tl.FromTo(e.Floating, rise(20), settled(), reveal.Vars{Duration: 1, Stagger: 0.1}, reveal.Offset(-0.4))
	tl.Play()
	h.entrance = tl

	bg := ctx.Timeline(reveal.Vars{Ease: easeLinear}).To(els(e.Background),
		reveal.Props{reveal.PropY: 0.3 * e.Background.Bounds.Height, reveal.PropScale: 1.1},
		reveal.Vars{Duration: 1})
	scrubbed(ctx, "hero-bg", e.Section, "top top", "bottom top", 0, bg)

	for i, o := range e.Overlays {
		k := i % len(overlayDrift)
		tl := ctx.Timeline(reveal.Vars{Ease: easeLinear}).To(els(o),
			reveal.Props{reveal.PropY: overlayDrift[k] * o.Bounds.Height},
			reveal.Vars{Duration: 1})
		scrubbed(ctx, fmt.Sprintf("hero-overlay-%d", i), e.Section, "top top", "bottom top", overlayScrub[k], tl)
	}

	content := ctx.Timeline(reveal.Vars{Ease: easeLinear}).To(els(e.Content),
		reveal.Props{reveal.PropY: -0.3 * e.Content.Bounds.Height, reveal.PropAlpha: 0},
		reveal.Vars{Duration: 1})
	scrubbed(ctx, "hero-content", e.Section, "top top", "center top", 0, content)

	for i, f := range e.Floating {
		xDir := -1.0
		if i%3 == 0 {
			xDir = 1
		}
		ctx.To(els(f), reveal.Props{
			reveal.PropY:        sign(i, 15, -15),
			reveal.PropX:        xDir * 10,
			reveal.PropRotation: sign(i, 5, -5),
		}, reveal.Vars{
			Duration: 3 + 0.5*float64(i),
			Repeat:   reveal.RepeatForever,
			Yoyo:     true,
			Ease:     easeSine,
		})

		away := ctx.Timeline(reveal.Vars{Ease: easeLinear}).To(els(f),
			reveal.Props{reveal.PropY: sign(i, -100, 100), reveal.PropAlpha: 0},
			reveal.Vars{Duration: 1})
		scrubbed(ctx, fmt.Sprintf("hero-float-%d", i), e.Section, "top top", "center top", 0, away)
	}
	return nil
}

// rise is the hidden state of an element that slides up into place.
func rise(dy float64) reveal.Props {
	return reveal.Props{reveal.PropY: dy, reveal.PropAlpha: 0}
}

func settled() reveal.Props {
	return reveal.Props{reveal.PropY: 0, reveal.PropAlpha: 1}
}
