package reveal

type injectKind uint8

const (
	injectScrollTo injectKind = iota
	injectScrollBy
	injectResize
)

// syntheticEvent is a queued scroll or resize. Page coordinates are used, the
// same units a real wheel or window event produces after conversion.
type syntheticEvent struct {
	kind   injectKind
	y      float64
	width  float64
	height float64
}

// InjectScroll queues an absolute scroll to y. The event is consumed on the
// next frame's Update.
func (p *Page) InjectScroll(y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectScrollTo, y: y})
}

// InjectScrollBy queues a relative scroll, like one wheel notch.
func (p *Page) InjectScrollBy(dy float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectScrollBy, y: dy})
}

// InjectResize queues a viewport resize.
func (p *Page) InjectResize(width, height float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: injectResize, width: width, height: height})
}

// InjectSweep queues a linear scroll from one position to another over the
// given number of frames. Minimum frames is 2 (start and end).
func (p *Page) InjectSweep(from, to float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectScroll(from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectScroll(from + (to-from)*t)
	}
	p.InjectScroll(to)
}

// Pending returns the number of queued synthetic events.
func (p *Page) Pending() int { return len(p.injectQueue) }

// processInjectedInput pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed (device input should be skipped).
func (p *Page) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	switch evt.kind {
	case injectScrollTo:
		p.Scroll(evt.y)
	case injectScrollBy:
		p.ScrollBy(evt.y)
	case injectResize:
		p.Resize(evt.width, evt.height)
	}
	return true
}
