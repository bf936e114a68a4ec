package reveal

import (
	"time"

	"go.uber.org/zap"
)

// View is one section of a page. Mount builds its timelines and triggers
// through ctx; everything created that way is torn down by ctx.Unmount.
type View interface {
	Name() string
	Mount(ctx *Context) error
}

// BreakpointPolicy decides what a viewport crossing MobileBreakpoint does to
// views that watch it.
type BreakpointPolicy uint8

const (
	// BreakpointReload unmounts every view, scrolls to the top and mounts
	// them all again, like a browser reload.
	BreakpointReload BreakpointPolicy = iota
	// BreakpointRebind remounts only the view whose side changed.
	BreakpointRebind
)

// Context is the per-mount scope of a view. It records every animation,
// trigger and listener created through it.
type Context struct {
	id     uint32
	page   *Page
	view   View
	mobile bool
	logger *zap.Logger

	timelines []*Timeline
	tweens    []*Tween
	triggers  []*Trigger
	listeners []ListenerHandle
	carousels []*Carousel
	counters  []*Counter
	cleanups  []func()

	unmounted bool
}

func newContext(p *Page, v View) *Context {
	return &Context{
		id:     p.engine.registry.newOwner(),
		page:   p,
		view:   v,
		mobile: p.viewport.IsMobile(),
		logger: p.engine.logger.With(zap.String("view", v.Name())),
	}
}

// ID returns the context id that owns its registry entries.
func (c *Context) ID() uint32 { return c.id }

// Page returns the page the view is mounted on.
func (c *Context) Page() *Page { return c.page }

// Root returns the page's document element.
func (c *Context) Root() *Element { return c.page.root }

// Viewport returns the page viewport.
func (c *Context) Viewport() *Viewport { return c.page.viewport }

// Logger returns a logger tagged with the view name.
func (c *Context) Logger() *zap.Logger { return c.logger }

// Mobile reports the breakpoint side evaluated when the view was mounted.
func (c *Context) Mobile() bool { return c.mobile }

// Unmounted reports whether Unmount has run.
func (c *Context) Unmounted() bool { return c.unmounted }

// Triggers returns the triggers created through this context that are
// still attached.
func (c *Context) Triggers() []*Trigger {
	var out []*Trigger
	for _, t := range c.triggers {
		if t.attached {
			out = append(out, t)
		}
	}
	return out
}

// Timelines returns the timelines created through this context.
func (c *Context) Timelines() []*Timeline { return c.timelines }

// present filters out missing targets, logging each at debug level.
func (c *Context) present(targets []*Element) []*Element {
	out := targets[:0:0]
	for i, el := range targets {
		if !el.IsAttached() {
			c.logger.Debug("skipping missing target", zap.Int("index", i), zap.Error(ErrMissingTarget))
			continue
		}
		out = append(out, el)
	}
	return out
}

// Timeline creates a stopped timeline owned by this context.
func (c *Context) Timeline(defaults Vars) *Timeline {
	tl := c.page.engine.Timeline(defaults)
	tl.Name = c.view.Name()
	c.timelines = append(c.timelines, tl)
	return tl
}

// FromTo creates and plays a fromTo group owned by this context. Missing
// targets are skipped.
func (c *Context) FromTo(targets []*Element, from, to Props, v Vars) *Timeline {
	tl := c.Timeline(Vars{}).FromTo(c.present(targets), from, to, v)
	tl.Play()
	return tl
}

// To creates and plays a to group owned by this context.
func (c *Context) To(targets []*Element, to Props, v Vars) *Timeline {
	tl := c.Timeline(Vars{}).To(c.present(targets), to, v)
	tl.Play()
	return tl
}

// Tween runs a standalone tween on the engine loop, owned by this context.
func (c *Context) Tween(tw *Tween) *Tween {
	c.tweens = append(c.tweens, tw)
	c.page.engine.add(tw)
	return tw
}

// ScrollTrigger registers a scroll binding owned by this context and applies
// the current scroll position to it. A missing trigger element yields a
// detached trigger that never fires.
func (c *Context) ScrollTrigger(cfg TriggerConfig) *Trigger {
	t := newTrigger(cfg)
	if !cfg.Trigger.IsAttached() {
		c.logger.Debug("skipping trigger without element", zap.String("trigger", cfg.Name),
			zap.Error(ErrMissingTarget))
		return t
	}
	if c.unmounted {
		c.logger.Debug("trigger created after unmount", zap.String("trigger", cfg.Name),
			zap.Error(ErrStaleBinding))
		return t
	}
	c.triggers = append(c.triggers, t)
	c.page.engine.registry.add(t, c.id, c.page)
	return t
}

// OnScroll registers a page scroll listener removed on Unmount.
func (c *Context) OnScroll(fn func(scrollY float64)) ListenerHandle {
	h := c.page.OnScroll(func(y float64) {
		if c.unmounted {
			return
		}
		fn(y)
	})
	c.listeners = append(c.listeners, h)
	return h
}

// OnResize registers a page resize listener removed on Unmount.
func (c *Context) OnResize(fn func(width, height float64)) ListenerHandle {
	h := c.page.OnResize(func(w, hh float64) {
		if c.unmounted {
			return
		}
		fn(w, hh)
	})
	c.listeners = append(c.listeners, h)
	return h
}

// Carousel starts a carousel owned by this context.
func (c *Context) Carousel(cfg CarouselConfig) *Carousel {
	car := newCarousel(c.page.engine, cfg)
	c.carousels = append(c.carousels, car)
	c.page.engine.add(car)
	return car
}

// AnimateValue counts el's numeric content from start to end over duration.
// A missing element yields a killed counter that never writes.
func (c *Context) AnimateValue(el *Element, start, end float64, duration time.Duration) *Counter {
	anim := CounterAnimation{Start: start, End: end, Duration: duration}
	if !el.IsAttached() {
		c.logger.Debug("skipping counter without element", zap.Error(ErrMissingTarget))
		return &Counter{el: el, anim: anim, killed: true}
	}
	anim.Suffix = el.Suffix
	ctr := newCounter(el, anim)
	c.counters = append(c.counters, ctr)
	c.page.engine.add(ctr)
	return ctr
}

// Defer registers fn to run on Unmount, after everything else is torn down.
// Deferred functions run last registered first.
func (c *Context) Defer(fn func()) {
	c.cleanups = append(c.cleanups, fn)
}

// WatchBreakpoint reacts when the viewport crosses MobileBreakpoint away
// from the side recorded at mount, according to the page's policy.
func (c *Context) WatchBreakpoint() {
	c.OnResize(func(w, _ float64) {
		if IsMobileWidth(w) == c.mobile {
			return
		}
		c.logger.Debug("breakpoint crossed", zap.Float64("width", w), zap.Bool("wasMobile", c.mobile))
		switch c.page.policy {
		case BreakpointRebind:
			c.page.rebind(c)
		default:
			if err := c.page.Reload(); err != nil {
				c.logger.Warn("reload failed", zap.Error(err))
			}
		}
	})
}

// Unmount kills every timeline, tween, counter, carousel and trigger created
// through the context, reverts animated properties, removes its listeners and
// runs deferred cleanups. Only this context's registry entries are touched.
// Calling Unmount again is a no-op.
func (c *Context) Unmount() {
	if c.unmounted {
		return
	}
	c.unmounted = true
	e := c.page.engine

	for _, car := range c.carousels {
		car.Revert()
		e.remove(car)
	}
	for _, ctr := range c.counters {
		ctr.Kill()
		e.remove(ctr)
	}
	removed := e.registry.RemoveOwner(c.id)
	for i := len(c.tweens) - 1; i >= 0; i-- {
		c.tweens[i].Done = true
		c.tweens[i].revert()
		e.remove(c.tweens[i])
	}
	for i := len(c.timelines) - 1; i >= 0; i-- {
		c.timelines[i].Revert()
		e.remove(c.timelines[i])
	}
	for _, h := range c.listeners {
		h.Remove()
	}
	for i := len(c.cleanups) - 1; i >= 0; i-- {
		c.cleanups[i]()
	}
	c.page.removeContext(c)
	c.logger.Debug("unmounted", zap.Int("triggers", removed))
}
