package reveal

import "go.uber.org/zap"

// CarouselPhase is the carousel's state-machine phase.
type CarouselPhase uint8

const (
	CarouselIdle CarouselPhase = iota
	CarouselTransitioning
)

func (p CarouselPhase) String() string {
	if p == CarouselTransitioning {
		return "transitioning"
	}
	return "idle"
}

// CarouselConfig describes a rotating set of slides.
type CarouselConfig struct {
	Slides []*Element
	// Layers are decorative elements that drift on every transition,
	// alternating direction by index parity.
	Layers []*Element

	Interval           float64 // seconds between automatic advances; default 6
	TransitionDuration float64 // slide entrance/exit; default 1.2
	LayerDuration      float64 // layer drift; default 1.5

	// OnChange runs after the index changes, before the transition plays.
	OnChange func(from, to int)
}

const (
	defaultCarouselInterval   = 6.0
	defaultCarouselTransition = 1.2
	defaultCarouselLayers     = 1.5
)

// Hidden and shown slide states.
var (
	slideHidden = Props{PropAlpha: 0, PropScale: 0.8, PropRotationY: -15}
	slideShown  = Props{PropAlpha: 1, PropScale: 1, PropRotationY: 0, PropX: 0}
)

// Carousel cycles through slides on a fixed interval. Manual navigation
// neither pauses nor resets the interval timer.
type Carousel struct {
	engine *Engine
	cfg    CarouselConfig

	current    int
	previous   int
	elapsed    float64
	transition *Timeline
	advances   int
	killed     bool

	// property values before the first transition, restored by Revert
	orig []carouselValue
}

type carouselValue struct {
	el   *Element
	prop Property
	v    float64
}

func newCarousel(e *Engine, cfg CarouselConfig) *Carousel {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultCarouselInterval
	}
	if cfg.TransitionDuration <= 0 {
		cfg.TransitionDuration = defaultCarouselTransition
	}
	if cfg.LayerDuration <= 0 {
		cfg.LayerDuration = defaultCarouselLayers
	}
	c := &Carousel{engine: e, cfg: cfg, previous: -1}
	c.capture(cfg.Slides, PropX, PropAlpha, PropScale, PropRotationY)
	c.capture(cfg.Layers, PropX, PropAlpha)
	if len(cfg.Slides) > 0 {
		c.play(-1, 0)
	}
	return c
}

// Len returns the number of slides.
func (c *Carousel) Len() int { return len(c.cfg.Slides) }

// Current returns the visible slide index, always in [0, Len()).
func (c *Carousel) Current() int { return c.current }

// Previous returns the slide shown before Current, or -1.
func (c *Carousel) Previous() int { return c.previous }

// Phase reports whether a transition is running.
func (c *Carousel) Phase() CarouselPhase {
	if c.transition != nil && c.transition.IsActive() {
		return CarouselTransitioning
	}
	return CarouselIdle
}

// Elapsed returns the time since the last automatic advance.
func (c *Carousel) Elapsed() float64 { return c.elapsed }

// Advances returns how many automatic advances have fired.
func (c *Carousel) Advances() int { return c.advances }

// Next shows the following slide, wrapping to 0 after the last.
func (c *Carousel) Next() { c.GoTo(c.current + 1) }

// Prev shows the preceding slide, wrapping to the last before 0.
func (c *Carousel) Prev() { c.GoTo(c.current - 1) }

// GoTo shows slide k mod Len. Going to the current slide does nothing.
func (c *Carousel) GoTo(k int) {
	n := len(c.cfg.Slides)
	if n == 0 || c.killed {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == c.current {
		return
	}
	from := c.current
	c.previous = from
	c.current = k
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(from, k)
	}
	c.play(from, k)
}

// play replaces any running transition with one from slide from (-1 for
// none) to slide to.
func (c *Carousel) play(from, to int) {
	if c.transition != nil {
		c.transition.Kill()
	}
	tl := NewTimeline(Vars{Duration: c.cfg.TransitionDuration, Ease: MustEase("power3.out")})
	tl.Name = "carousel"
	for i, s := range c.cfg.Slides {
		if i == from || i == to {
			continue
		}
		tl.Set([]*Element{s}, hiddenAt(s), At(0))
	}
	if from >= 0 {
		out := c.cfg.Slides[from]
		tl.To([]*Element{out}, hiddenAt(out), Vars{}, At(0))
	}
	in := c.cfg.Slides[to]
	tl.FromTo([]*Element{in}, hiddenAt(in), slideShown, Vars{}, At(0))
	for i, layer := range c.cfg.Layers {
		dir := 1.0
		if i%2 == 1 {
			dir = -1
		}
		tl.FromTo([]*Element{layer},
			Props{PropX: dir * -50, PropAlpha: 0.5},
			Props{PropX: dir * 50, PropAlpha: 1},
			Vars{Duration: c.cfg.LayerDuration, Ease: MustEase("power1.inOut")}, At(0))
	}
	tl.Play()
	c.transition = tl
	c.engine.logger.Debug("carousel transition", zap.Int("from", from), zap.Int("to", to))
}

// hiddenAt is the hidden state with the slide pushed one width to the right.
func hiddenAt(s *Element) Props {
	p := Props{PropX: s.Bounds.Width}
	for k, v := range slideHidden {
		p[k] = v
	}
	return p
}

// Transition returns the running or last transition timeline.
func (c *Carousel) Transition() *Timeline { return c.transition }

// Kill stops the timer and the running transition.
func (c *Carousel) Kill() {
	c.killed = true
	if c.transition != nil {
		c.transition.Kill()
	}
}

// Revert kills the carousel and restores every slide and layer property its
// transitions wrote to the value it had when the carousel was created.
func (c *Carousel) Revert() {
	c.Kill()
	for _, o := range c.orig {
		if o.el.IsAttached() {
			o.el.Set(o.prop, o.v)
		}
	}
}

func (c *Carousel) capture(els []*Element, props ...Property) {
	for _, el := range els {
		if !el.IsAttached() {
			continue
		}
		for _, p := range props {
			c.orig = append(c.orig, carouselValue{el: el, prop: p, v: el.Get(p)})
		}
	}
}

// Killed reports whether Kill was called.
func (c *Carousel) Killed() bool { return c.killed }

// Update advances the running transition and the interval timer by dt
// seconds. Several intervals elapsing in one call advance several times.
func (c *Carousel) Update(dt float64) {
	if c.killed {
		return
	}
	if c.transition != nil {
		c.transition.Update(dt)
	}
	if len(c.cfg.Slides) < 2 {
		return
	}
	c.elapsed += dt
	for c.elapsed >= c.cfg.Interval {
		c.elapsed -= c.cfg.Interval
		c.advances++
		c.Next()
	}
}

func (c *Carousel) tick(dt float64) bool {
	c.Update(dt)
	return !c.killed
}
