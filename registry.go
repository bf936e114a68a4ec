package reveal

import "go.uber.org/zap"

// Registry is the engine-wide list of live triggers. Every view's mount
// appends to it and its unmount removes exactly the entries it added.
type Registry struct {
	triggers []*Trigger
	buf      []*Trigger
	depth    int // nested dispatches in progress
	nextID   uint32
	owners   uint32
	logger   *zap.Logger
}

func newRegistry(logger *zap.Logger) *Registry {
	return &Registry{logger: logger}
}

// newOwner hands out a context id. Zero is never returned.
func (r *Registry) newOwner() uint32 {
	r.owners++
	return r.owners
}

// Len returns the number of live triggers.
func (r *Registry) Len() int { return len(r.triggers) }

// All returns the live triggers. The returned slice MUST NOT be mutated.
func (r *Registry) All() []*Trigger { return r.triggers }

// Owned returns the live triggers created by the given context id.
func (r *Registry) Owned(owner uint32) []*Trigger {
	var out []*Trigger
	for _, t := range r.triggers {
		if t.owner == owner {
			out = append(out, t)
		}
	}
	return out
}

// add registers t, resolves its offsets and applies the current scroll.
func (r *Registry) add(t *Trigger, owner uint32, page *Page) {
	r.nextID++
	t.id = r.nextID
	t.owner = owner
	t.page = page
	t.registry = r
	t.attached = true
	r.triggers = append(r.triggers, t)
	if page != nil {
		t.refresh(page.viewport.Height, r.logger)
		t.update(page.viewport.ScrollY, r.logger)
	}
}

func (r *Registry) remove(t *Trigger) {
	for i, c := range r.triggers {
		if c == t {
			copy(r.triggers[i:], r.triggers[i+1:])
			r.triggers[len(r.triggers)-1] = nil
			r.triggers = r.triggers[:len(r.triggers)-1]
			return
		}
	}
}

// RemoveOwner kills every trigger created by owner and returns how many were
// removed. Other owners' entries are untouched.
func (r *Registry) RemoveOwner(owner uint32) int {
	n := 0
	for _, t := range r.snapshot() {
		if t.owner == owner {
			t.Kill()
			n++
		}
	}
	return n
}

// snapshot copies the live list so callbacks may kill triggers mid-dispatch.
// A callback that scrolls the page dispatches again from inside a dispatch;
// only the outermost one reuses buf.
func (r *Registry) snapshot() []*Trigger {
	if r.depth > 0 {
		return append([]*Trigger(nil), r.triggers...)
	}
	r.buf = append(r.buf[:0], r.triggers...)
	return r.buf
}

// update dispatches a scroll position to the page's triggers in creation
// order.
func (r *Registry) update(page *Page, scroll float64) {
	list := r.snapshot()
	r.depth++
	defer func() { r.depth-- }()
	for _, t := range list {
		if t.page == page {
			t.update(scroll, r.logger)
		}
	}
}

// refresh re-resolves the page's triggers after a layout or viewport change
// and reapplies the scroll position.
func (r *Registry) refresh(page *Page) {
	list := r.snapshot()
	r.depth++
	for _, t := range list {
		if t.page == page && t.attached {
			t.refresh(page.viewport.Height, r.logger)
		}
	}
	r.depth--
	r.update(page, page.viewport.ScrollY)
}

func (r *Registry) tick(dt float64) {
	list := r.snapshot()
	r.depth++
	defer func() { r.depth-- }()
	for _, t := range list {
		t.tick(dt)
	}
}
