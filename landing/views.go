package landing

import (
	"github.com/phanxgames/reveal"
)

var (
	easeOut3   = reveal.MustEase("power3.out")
	easeOut2   = reveal.MustEase("power2.out")
	easeBack   = reveal.MustEase("back.out(1.7)")
	easeSine   = reveal.MustEase("sine.inOut")
	easeInOut1 = reveal.MustEase("power1.inOut")
	easeLinear = reveal.MustEase("none")
)

func els(e ...*reveal.Element) []*reveal.Element { return e }

// sign returns a when i is even, b otherwise.
func sign(i int, a, b float64) float64 {
	if i%2 == 0 {
		return a
	}
	return b
}

// entrance binds tl to trigger with the default toggle actions: it plays
// when the trigger's start line is crossed and reverses when scrolled back.
func entrance(ctx *reveal.Context, name string, trigger *reveal.Element, start string, tl *reveal.Timeline) *reveal.Trigger {
	return ctx.ScrollTrigger(reveal.TriggerConfig{
		Name:      name,
		Trigger:   trigger,
		Start:     reveal.MustOffset(start),
		Animation: tl,
	})
}

// scrubbed binds tl's progress to the scroll region [start, end] of
// trigger. Empty offsets keep the defaults; smooth is the catch-up time,
// zero for a direct mapping.
func scrubbed(ctx *reveal.Context, name string, trigger *reveal.Element, start, end string, smooth float64, tl *reveal.Timeline) *reveal.Trigger {
	cfg := reveal.TriggerConfig{
		Name:      name,
		Trigger:   trigger,
		Mode:      reveal.ModeScrub,
		Scrub:     smooth,
		Animation: tl,
	}
	if start != "" {
		cfg.Start = reveal.MustOffset(start)
	}
	if end != "" {
		cfg.End = reveal.MustOffset(end)
	}
	return ctx.ScrollTrigger(cfg)
}

// Views is the landing page's set of sections, in document order.
type Views struct {
	Navbar       *Navbar
	Hero         *Hero
	Features     *Features
	Stats        *Statistics
	Testimonials *Testimonials
	CTA          *CTA
	Footer       *Footer
}

// NewViews creates one view per section of l.
func NewViews(l *Layout) *Views {
	return &Views{
		Navbar:       &Navbar{layout: l},
		Hero:         &Hero{layout: l},
		Features:     &Features{layout: l},
		Stats:        &Statistics{layout: l},
		Testimonials: &Testimonials{layout: l},
		CTA:          &CTA{layout: l},
		Footer:       &Footer{layout: l},
	}
}

// All returns the views in mount order.
func (v *Views) All() []reveal.View {
	return []reveal.View{v.Navbar, v.Hero, v.Features, v.Stats, v.Testimonials, v.CTA, v.Footer}
}

// Mount mounts every view on page, stopping at the first failure.
func (v *Views) Mount(page *reveal.Page) error {
	for _, view := range v.All() {
		if err := page.Mount(view); err != nil {
			return err
		}
	}
	return nil
}

// New builds the landing page for content on page and mounts all of its
// views.
func New(page *reveal.Page, content *Content) (*Layout, *Views, error) {
	l := Build(page, content)
	v := NewViews(l)
	if err := v.Mount(page); err != nil {
		return nil, nil, err
	}
	return l, v, nil
}
