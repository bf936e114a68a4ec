package reveal

import "github.com/hajimehoshi/ebiten/v2"

// --- Listener registry ---

type listenerKind uint8

const (
	listenScroll listenerKind = iota
	listenResize
)

type scrollHandler struct {
	id uint32
	fn func(scrollY float64)
}

type resizeHandler struct {
	id uint32
	fn func(width, height float64)
}

type handlerRegistry struct {
	scroll []scrollHandler
	resize []resizeHandler
	nextID uint32
}

// ListenerHandle allows removing a registered page-level listener.
type ListenerHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind listenerKind
}

// Remove unregisters this listener so it no longer fires. Removing twice, or
// removing the zero handle, is a no-op.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case listenScroll:
		h.reg.scroll = removeScrollHandler(h.reg.scroll, h.id)
	case listenResize:
		h.reg.resize = removeResizeHandler(h.reg.resize, h.id)
	}
}

func removeScrollHandler(s []scrollHandler, id uint32) []scrollHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = scrollHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeResizeHandler(s []resizeHandler, id uint32) []resizeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = resizeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) len() int { return len(r.scroll) + len(r.resize) }

// fireScroll calls scroll listeners in registration order. Listeners removed
// during dispatch still see this event.
func (r *handlerRegistry) fireScroll(y float64) {
	hs := append([]scrollHandler(nil), r.scroll...)
	for _, h := range hs {
		h.fn(y)
	}
}

func (r *handlerRegistry) fireResize(w, h float64) {
	hs := append([]resizeHandler(nil), r.resize...)
	for _, rh := range hs {
		rh.fn(w, h)
	}
}

// --- Page-level registration ---

// OnScroll registers a callback for every scroll position change.
func (p *Page) OnScroll(fn func(scrollY float64)) ListenerHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.scroll = append(p.handlers.scroll, scrollHandler{id: id, fn: fn})
	return ListenerHandle{id: id, reg: &p.handlers, kind: listenScroll}
}

// OnResize registers a callback for viewport size changes.
func (p *Page) OnResize(fn func(width, height float64)) ListenerHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.resize = append(p.handlers.resize, resizeHandler{id: id, fn: fn})
	return ListenerHandle{id: id, reg: &p.handlers, kind: listenResize}
}

// Listeners returns the number of registered scroll and resize listeners.
func (p *Page) Listeners() int { return p.handlers.len() }

// --- Device input ---

// wheelStep is the number of pixels one wheel notch scrolls.
const wheelStep = 60.0

// processInput turns wheel and keyboard input into scroll events. Called from
// the ebiten game loop.
func (p *Page) processInput() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.ScrollBy(-dy * wheelStep)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyPageDown):
		p.ScrollBy(p.viewport.Height * 0.05)
	case ebiten.IsKeyPressed(ebiten.KeyPageUp):
		p.ScrollBy(-p.viewport.Height * 0.05)
	case ebiten.IsKeyPressed(ebiten.KeyDown):
		p.ScrollBy(wheelStep / 6)
	case ebiten.IsKeyPressed(ebiten.KeyUp):
		p.ScrollBy(-wheelStep / 6)
	}
}
