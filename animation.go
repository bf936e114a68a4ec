package reveal

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RepeatForever makes a tween loop until it is killed.
const RepeatForever = -1

// defaultDuration is used when neither Vars nor timeline defaults set one.
const defaultDuration = 0.5

// Vars is the timing description of a keyframe group. Inside a timeline a
// zero field inherits the timeline default, so a child cannot ask for a zero
// Delay, Stagger or Repeat, or Yoyo false, when the default sets one. Build
// such children on a timeline without that default.
type Vars struct {
	Duration float64 // seconds
	Delay    float64 // seconds before the group starts
	Stagger  float64 // extra delay per target index
	Ease     ease.TweenFunc
	Repeat   int  // extra cycles; RepeatForever loops
	Yoyo     bool // alternate direction on every repeat
}

// merge fills zero fields of v from defaults.
func (v Vars) merge(defaults Vars) Vars {
	if v.Duration <= 0 {
		v.Duration = defaults.Duration
	}
	if v.Duration <= 0 {
		v.Duration = defaultDuration
	}
	if v.Ease == nil {
		v.Ease = defaults.Ease
	}
	if v.Ease == nil {
		v.Ease = DefaultEase
	}
	if v.Delay == 0 {
		v.Delay = defaults.Delay
	}
	if v.Stagger == 0 {
		v.Stagger = defaults.Stagger
	}
	if v.Repeat == 0 {
		v.Repeat = defaults.Repeat
	}
	if !v.Yoyo {
		v.Yoyo = defaults.Yoyo
	}
	return v
}

// Tween interpolates a set of properties on one Element. It is the keyframe
// group of a Timeline, and also usable on its own: call Update(dt) each frame.
// If the target is missing, disposed or detached the tween writes nothing and
// reports itself Done.
type Tween struct {
	target *Element
	props  []Property

	// one entry per backing field (PropScale contributes two)
	fields []*float64
	orig   []float64 // values before the tween was built, for revert
	from   []float64
	to     []float64
	curves []*gween.Tween

	hasFrom  bool // false for To tweens; start values are captured lazily
	captured bool
	hasValue bool

	delay    float64
	duration float64
	repeat   int
	yoyo     bool
	easeFn   ease.TweenFunc

	// render bookkeeping for timeline seeking
	initialized bool
	lastEt      float64

	// standalone playhead
	time float64
	Done bool

	OnComplete func()
}

func newTween(target *Element, from, to Props, v Vars) *Tween {
	tw := &Tween{
		target:   target,
		hasFrom:  from != nil,
		delay:    v.Delay,
		duration: v.Duration,
		repeat:   v.Repeat,
		yoyo:     v.Yoyo,
		easeFn:   v.Ease,
		lastEt:   math.Inf(-1),
	}
	if target == nil {
		return tw
	}
	for _, p := range to.Sorted() {
		tw.props = append(tw.props, p)
		if p == PropValue {
			tw.hasValue = true
		}
		for _, f := range target.fields(p) {
			tw.fields = append(tw.fields, f)
			tw.orig = append(tw.orig, *f)
			tw.to = append(tw.to, to[p])
			if from != nil {
				if fv, ok := from[p]; ok {
					tw.from = append(tw.from, fv)
					continue
				}
			}
			tw.from = append(tw.from, *f)
		}
	}
	if tw.hasFrom {
		tw.buildCurves()
	}
	return tw
}

// buildCurves creates one gween curve per field from the current from/to.
func (tw *Tween) buildCurves() {
	d := float32(tw.duration)
	if d <= 0 {
		d = 1
	}
	tw.curves = make([]*gween.Tween, len(tw.fields))
	for i := range tw.fields {
		tw.curves[i] = gween.New(float32(tw.from[i]), float32(tw.to[i]), d, tw.easeFn)
	}
	tw.captured = true
}

// capture records the live values as the start of a To tween.
func (tw *Tween) capture() {
	for i, f := range tw.fields {
		tw.from[i] = *f
	}
	tw.buildCurves()
}

// Target returns the animated element (may be nil).
func (tw *Tween) Target() *Element { return tw.target }

// Properties returns the animated properties in build order.
func (tw *Tween) Properties() []Property { return tw.props }

// Delay returns the start delay in seconds.
func (tw *Tween) Delay() float64 { return tw.delay }

// Duration returns the length of one cycle in seconds.
func (tw *Tween) Duration() float64 { return tw.duration }

// TotalDuration is delay + duration × cycles. Infinite for RepeatForever.
func (tw *Tween) TotalDuration() float64 {
	if tw.repeat < 0 {
		return math.Inf(1)
	}
	return tw.delay + tw.duration*float64(tw.repeat+1)
}

// SetTo replaces the end value of p. Used when a layout-dependent target
// (a pinned strip's travel distance) changes on refresh.
func (tw *Tween) SetTo(p Property, v float64) {
	if tw.target == nil {
		return
	}
	i := 0
	for _, prop := range tw.props {
		n := len(tw.target.fields(prop))
		if prop == p {
			for j := i; j < i+n; j++ {
				tw.to[j] = v
			}
		}
		i += n
	}
	if tw.captured {
		tw.buildCurves()
	}
}

// live reports whether writes may reach the target.
func (tw *Tween) live() bool {
	return tw.target.IsAttached() && len(tw.fields) > 0
}

// phase maps elapsed time past the delay to the normalized position within
// the current cycle, with yoyo cycles mirrored.
func (tw *Tween) phase(et float64) float64 {
	if et <= 0 {
		return 0
	}
	d := tw.duration
	if d <= 0 {
		return 1
	}
	if tw.repeat >= 0 {
		total := d * float64(tw.repeat+1)
		if et >= total {
			if tw.yoyo && tw.repeat%2 == 1 {
				return 0
			}
			return 1
		}
	}
	cycle := math.Floor(et / d)
	q := (et - cycle*d) / d
	if tw.yoyo && int64(cycle)%2 == 1 {
		q = 1 - q
	}
	return q
}

// valueAt evaluates field i at normalized position q. The endpoints are
// returned exactly; the curve is only evaluated in between.
func (tw *Tween) valueAt(i int, q float64) float64 {
	switch {
	case q <= 0:
		return tw.from[i]
	case q >= 1:
		return tw.to[i]
	}
	v, _ := tw.curves[i].Set(float32(q * tw.duration))
	return float64(v)
}

// renderAt writes the state at local time (seconds since the tween's slot in
// its timeline, delay included). Before the delay has elapsed only a fromTo's
// first render or a rewind past the start writes anything.
func (tw *Tween) renderAt(local float64) {
	if !tw.live() {
		return
	}
	et := local - tw.delay
	prev := tw.lastEt
	tw.lastEt = et
	if total := tw.TotalDuration(); tw.initialized && et >= total && prev >= total {
		return
	}
	if et < 0 {
		switch {
		case tw.hasFrom && !tw.initialized:
		case tw.captured && prev >= 0:
		default:
			return
		}
		et = 0
	}
	tw.initialized = true
	if !tw.captured {
		tw.capture()
	}
	q := tw.phase(et)
	for i, f := range tw.fields {
		*f = tw.valueAt(i, q)
	}
	if tw.hasValue {
		tw.target.syncText()
	}
	tw.target.dirty = true
}

// revert restores the values the target had before the tween was built.
func (tw *Tween) revert() {
	if !tw.live() {
		return
	}
	for i, f := range tw.fields {
		*f = tw.orig[i]
	}
	if tw.hasValue {
		tw.target.syncText()
	}
	tw.target.dirty = true
	tw.initialized = false
	tw.lastEt = math.Inf(-1)
}

// Update advances a standalone tween by dt seconds. If the target has been
// disposed or detached, Done is set and no writes occur.
func (tw *Tween) Update(dt float64) {
	if tw.Done {
		return
	}
	if !tw.live() {
		tw.Done = true
		return
	}
	tw.time += dt
	tw.renderAt(tw.time)
	if tw.time >= tw.TotalDuration() {
		tw.Done = true
		if tw.OnComplete != nil {
			tw.OnComplete()
		}
	}
}

// tick lets a standalone tween ride the engine loop.
func (tw *Tween) tick(dt float64) bool {
	tw.Update(dt)
	return !tw.Done
}

// TweenPosition creates a tween that animates X and Y offsets to the given
// values over duration seconds using the easing function.
func TweenPosition(el *Element, toX, toY float64, duration float64, fn ease.TweenFunc) *Tween {
	return newTween(el, Props{PropX: valueOr(el, PropX), PropY: valueOr(el, PropY)},
		Props{PropX: toX, PropY: toY}, Vars{Duration: duration, Ease: fn})
}

// TweenScale creates a tween that animates ScaleX and ScaleY.
func TweenScale(el *Element, toSX, toSY float64, duration float64, fn ease.TweenFunc) *Tween {
	return newTween(el, Props{PropScaleX: valueOr(el, PropScaleX), PropScaleY: valueOr(el, PropScaleY)},
		Props{PropScaleX: toSX, PropScaleY: toSY}, Vars{Duration: duration, Ease: fn})
}

// TweenAlpha creates a tween that animates Alpha.
func TweenAlpha(el *Element, to float64, duration float64, fn ease.TweenFunc) *Tween {
	return newTween(el, Props{PropAlpha: valueOr(el, PropAlpha)},
		Props{PropAlpha: to}, Vars{Duration: duration, Ease: fn})
}

// TweenRotation creates a tween that animates Rotation (degrees).
func TweenRotation(el *Element, to float64, duration float64, fn ease.TweenFunc) *Tween {
	return newTween(el, Props{PropRotation: valueOr(el, PropRotation)},
		Props{PropRotation: to}, Vars{Duration: duration, Ease: fn})
}

// TweenFromTo creates a standalone tween with explicit start and end values.
func TweenFromTo(el *Element, from, to Props, v Vars) *Tween {
	return newTween(el, from, to, v.merge(Vars{}))
}

func valueOr(el *Element, p Property) float64 {
	if el == nil {
		return 0
	}
	return el.Get(p)
}
