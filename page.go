package reveal

import (
	"fmt"

	"go.uber.org/zap"
)

// Page is the top-level object that owns the element tree, the viewport, the
// mounted views and the scroll/resize event hub.
type Page struct {
	root     *Element
	viewport *Viewport
	engine   *Engine
	store    EventSink
	debug    bool

	// Layout, when set, recomputes element bounds for a viewport size. It
	// runs on Resize and Refresh before triggers are re-resolved.
	Layout func(width, height float64)

	policy   BreakpointPolicy
	views    []View
	contexts []*Context
	reloads  int
	onReload []func()

	handlers    handlerRegistry
	injectQueue []syntheticEvent
	testRunner  *TestRunner
}

// NewPage creates a page with a document root and a viewport of the given
// size, driven by the process-wide engine.
func NewPage(width, height float64) *Page {
	return &Page{
		root:     newRoot(width, height),
		viewport: newViewport(width, height),
		engine:   Default(),
	}
}

// Root returns the document element.
func (p *Page) Root() *Element { return p.root }

// Viewport returns the page viewport.
func (p *Page) Viewport() *Viewport { return p.viewport }

// Engine returns the engine driving the page.
func (p *Page) Engine() *Engine { return p.engine }

// SetEngine replaces the engine. Call it before mounting any view.
func (p *Page) SetEngine(e *Engine) {
	if e == nil {
		e = Default()
	}
	p.engine = e
}

// Logger returns the engine logger.
func (p *Page) Logger() *zap.Logger { return p.engine.logger }

// SetLogger replaces the engine logger.
func (p *Page) SetLogger(l *zap.Logger) {
	p.engine.SetLogger(l)
	if p.debug {
		debugLogger = p.engine.logger
	}
}

// SetEventSink sets the optional ECS bridge.
func (p *Page) SetEventSink(store EventSink) {
	p.store = store
}

// SetBreakpointPolicy selects what a breakpoint crossing does.
func (p *Page) SetBreakpointPolicy(policy BreakpointPolicy) {
	p.policy = policy
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-element
// access panics, tree depth and child count warnings are logged, and per-frame
// stats are logged at debug level. A page without a logger gets a development
// logger.
func (p *Page) SetDebugMode(enabled bool) {
	p.debug = enabled
	globalDebug = enabled
	if !enabled {
		debugLogger = zap.NewNop()
		return
	}
	if !p.engine.logger.Core().Enabled(zap.FatalLevel) {
		if l, err := zap.NewDevelopment(); err == nil {
			p.engine.SetLogger(l)
		}
	}
	debugLogger = p.engine.logger
}

func (p *Page) emit(ev TriggerEvent) {
	if p.store != nil {
		p.store.EmitEvent(ev)
	}
	if p.debug {
		p.engine.logger.Debug("trigger event",
			zap.Stringer("type", ev.Type),
			zap.String("trigger", ev.Name),
			zap.Float64("progress", ev.Progress),
			zap.Float64("scrollY", ev.ScrollY))
	}
}

// --- Views ---

// Mount creates a context for v, records the breakpoint side, and runs v's
// Mount. A failing mount is unmounted before the wrapped error is returned.
func (p *Page) Mount(v View) error {
	if err := p.mountView(v); err != nil {
		return err
	}
	p.views = append(p.views, v)
	return nil
}

func (p *Page) mountView(v View) error {
	ctx := newContext(p, v)
	p.contexts = append(p.contexts, ctx)
	if err := v.Mount(ctx); err != nil {
		ctx.Unmount()
		p.engine.logger.Warn("mount failed", zap.String("view", v.Name()), zap.Error(err))
		return fmt.Errorf("mount %s: %w", v.Name(), err)
	}
	p.engine.logger.Debug("mounted", zap.String("view", v.Name()),
		zap.Bool("mobile", ctx.mobile),
		zap.Int("triggers", len(ctx.triggers)))
	return nil
}

// Contexts returns the live contexts in mount order. The returned slice MUST
// NOT be mutated.
func (p *Page) Contexts() []*Context { return p.contexts }

// Context returns the live context of the named view, or nil.
func (p *Page) Context(name string) *Context {
	for _, c := range p.contexts {
		if c.view.Name() == name {
			return c
		}
	}
	return nil
}

func (p *Page) removeContext(c *Context) {
	for i, cc := range p.contexts {
		if cc == c {
			copy(p.contexts[i:], p.contexts[i+1:])
			p.contexts[len(p.contexts)-1] = nil
			p.contexts = p.contexts[:len(p.contexts)-1]
			return
		}
	}
}

// UnmountAll tears down every mounted view, last mounted first. The views
// stay registered for Reload.
func (p *Page) UnmountAll() {
	for len(p.contexts) > 0 {
		p.contexts[len(p.contexts)-1].Unmount()
	}
}

// Reload is the full page reload a breakpoint crossing performs: every view
// is unmounted, the scroll position returns to 0, layout runs, and every view
// is mounted again. The first mount error is returned; later views still
// mount.
func (p *Page) Reload() error {
	p.UnmountAll()
	p.viewport.StopScroll()
	p.viewport.ScrollY = 0
	p.viewport.dirty = true
	if p.Layout != nil {
		p.Layout(p.viewport.Width, p.viewport.Height)
	}
	var first error
	for _, v := range p.views {
		if err := p.mountView(v); err != nil && first == nil {
			first = err
		}
	}
	p.reloads++
	p.engine.logger.Debug("page reloaded", zap.Int("reloads", p.reloads),
		zap.Float64("width", p.viewport.Width))
	for _, fn := range p.onReload {
		fn()
	}
	return first
}

// Reloads returns how many times the page has been reloaded.
func (p *Page) Reloads() int { return p.reloads }

// OnReload registers a hook run after every Reload.
func (p *Page) OnReload(fn func()) {
	p.onReload = append(p.onReload, fn)
}

// rebind remounts a single view in place.
func (p *Page) rebind(c *Context) {
	v := c.view
	c.Unmount()
	if err := p.mountView(v); err != nil {
		p.engine.logger.Warn("rebind failed", zap.String("view", v.Name()), zap.Error(err))
	}
}

// Triggers returns the number of live triggers bound to this page.
func (p *Page) Triggers() int {
	n := 0
	for _, t := range p.engine.registry.triggers {
		if t.page == p {
			n++
		}
	}
	return n
}

// --- Events ---

// Scroll sets the scroll position (clamped to the content) and dispatches it:
// triggers first, in creation order, then scroll listeners. A user scroll
// cancels any ScrollTo animation.
func (p *Page) Scroll(y float64) {
	p.viewport.StopScroll()
	p.setScroll(p.viewport.clamp(y))
}

// ScrollBy scrolls relative to the current position.
func (p *Page) ScrollBy(dy float64) {
	p.Scroll(p.viewport.ScrollY + dy)
}

func (p *Page) setScroll(y float64) {
	p.viewport.ScrollY = y
	p.viewport.dirty = true
	p.engine.registry.update(p, y)
	p.handlers.fireScroll(y)
}

// Resize changes the viewport size, re-runs layout, re-resolves every trigger
// and then calls resize listeners.
func (p *Page) Resize(width, height float64) {
	p.viewport.Width = width
	p.viewport.Height = height
	p.viewport.dirty = true
	p.root.Bounds.Width = width
	p.Refresh()
	p.handlers.fireResize(width, height)
}

// Refresh re-runs layout and re-resolves every trigger against it, then
// reapplies the current scroll position.
func (p *Page) Refresh() {
	if p.Layout != nil {
		p.Layout(p.viewport.Width, p.viewport.Height)
	}
	p.viewport.ScrollY = p.viewport.clamp(p.viewport.ScrollY)
	p.engine.registry.refresh(p)
}

// SetContentHeight sets the document height used for scroll clamping.
func (p *Page) SetContentHeight(h float64) {
	p.viewport.ContentHeight = h
	p.root.Bounds.Height = h
}

// ScrollTo animates the scroll position, dispatching every intermediate
// position like a user scroll.
func (p *Page) ScrollTo(y float64, duration float32) {
	p.viewport.ScrollTo(y, duration, nil)
}

// Update advances one frame of dt seconds: test script, injected input,
// ScrollTo animation, then the engine.
func (p *Page) Update(dt float64) {
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	p.processInjectedInput()
	if p.viewport.update(float32(dt)) {
		p.setScroll(p.viewport.ScrollY)
	}
	p.engine.Update(dt)
	if p.debug {
		p.debugLog(frameStats{
			tickers:  p.engine.Active(),
			triggers: p.Triggers(),
			contexts: len(p.contexts),
		})
	}
}
