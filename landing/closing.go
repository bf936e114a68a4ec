package landing

import (
	"github.com/phanxgames/reveal"
)

// CTA is the call-to-action band above the footer.
type CTA struct {
	layout *Layout
}

func (c *CTA) Name() string { return "cta" }

func (c *CTA) Mount(ctx *reveal.Context) error {
	e := &c.layout.CTA

	in := ctx.Timeline(reveal.Vars{Ease: easeOut3}).
		FromTo(els(e.Content), rise(100), settled(), reveal.Vars{Duration: 1})
	entrance(ctx, "cta-content", e.Section, "top 80%", in)

	ctx.To(els(e.Button), reveal.Props{reveal.PropScale: 1.05}, reveal.Vars{
		Duration: 0.8,
		Repeat:   reveal.RepeatForever,
		Yoyo:     true,
		Ease:     easeInOut1,
	})

	bg := ctx.Timeline(reveal.Vars{Ease: easeLinear}).FromTo(els(e.Section),
		reveal.Props{reveal.PropBackgroundY: 50},
		reveal.Props{reveal.PropBackgroundY: 30},
		reveal.Vars{Duration: 1})
	scrubbed(ctx, "cta-bg", e.Section, "", "", 0, bg)
	return nil
}

// Footer reveals the brand and link columns as the page bottom comes in.
type Footer struct {
	layout *Layout
}

func (f *Footer) Name() string { return "footer" }

func (f *Footer) Mount(ctx *reveal.Context) error {
	e := &f.layout.Footer

	cols := ctx.Timeline(reveal.Vars{Ease: easeOut2}).
		FromTo(e.Columns, rise(50), settled(), reveal.Vars{Duration: 0.6, Stagger: 0.1})
	entrance(ctx, "footer-columns", e.Section, "top 90%", cols)

	logo := ctx.Timeline(reveal.Vars{Ease: easeBack}).FromTo(els(e.Logo),
		reveal.Props{reveal.PropScale: 0.8, reveal.PropAlpha: 0, reveal.PropRotation: -10},
		reveal.Props{reveal.PropScale: 1, reveal.PropAlpha: 1, reveal.PropRotation: 0},
		reveal.Vars{Duration: 0.8})
	entrance(ctx, "footer-logo", e.Section, "top 90%", logo)
	return nil
}
