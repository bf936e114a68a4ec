// Package reveal is a scroll-synchronized animation engine for [Ebitengine].
//
// A [Page] is a tall document of [Element] boxes viewed through a
// [Viewport]. Animations are [Timeline] values built from keyframe groups
// (FromTo, To, Set) with per-group duration, delay, stagger, repeat, yoyo
// and easing, tweened with [gween]. A [Trigger] binds a timeline to a scroll
// region of an element, either toggling playback as the region is crossed
// or scrubbing the timeline's progress with the scroll position, and can pin
// an element in place while the region is active.
//
// # Quick start
//
// Sections of a page implement [View]. Everything a view creates through
// its [Context] is torn down when the context unmounts:
//
//	type hero struct{ heading *reveal.Element }
//
//	func (h *hero) Name() string { return "hero" }
//
//	func (h *hero) Mount(ctx *reveal.Context) error {
//		tl := ctx.Timeline(reveal.Vars{Ease: reveal.MustEase("power3.out")})
//		tl.FromTo([]*reveal.Element{h.heading},
//			reveal.Props{reveal.PropY: 50, reveal.PropAlpha: 0},
//			reveal.Props{reveal.PropY: 0, reveal.PropAlpha: 1},
//			reveal.Vars{Duration: 0.8})
//		ctx.ScrollTrigger(reveal.TriggerConfig{
//			Trigger:   h.heading,
//			Start:     reveal.MustOffset("top 80%"),
//			Animation: tl,
//		})
//		return nil
//	}
//
//	page := reveal.NewPage(1280, 720)
//	page.Root().AddChild(heading)
//	page.Mount(&hero{heading: heading})
//	reveal.Run(page, reveal.RunConfig{Title: "Landing"})
//
// For full control, implement [ebiten.Game] yourself, call [Page.Scroll] and
// [Page.Resize] from your input handling and [Page.Update] once per tick,
// and draw with a [Renderer].
//
// # Lifecycle
//
// Viewports narrower than [MobileBreakpoint] are mobile. A view that calls
// [Context.WatchBreakpoint] reloads the page (or, with [BreakpointRebind],
// remounts just itself) when the viewport crosses to the other side.
//
// # Helpers
//
// [HorizontalScroll] pins a section and maps vertical scroll onto a wide
// strip's horizontal translation. [Context.Carousel] rotates slides on a
// fixed interval. [Context.AnimateValue] counts an element's number up.
//
// Trigger transitions can be forwarded to a [Donburi] world with the
// adapter in reveal/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package reveal
