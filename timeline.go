package reveal

import "math"

type positionKind uint8

const (
	posEnd      positionKind = iota // after the previous child, plus offset
	posAbsolute                     // fixed time on the timeline
	posPrevious                     // same start as the previous child, plus offset
)

// Position places a child on a timeline.
type Position struct {
	kind   positionKind
	offset float64
}

// AtEnd places a child right after the previous one. This is the default.
func AtEnd() Position { return Position{kind: posEnd} }

// Offset places a child relative to the end of the previous one. Negative
// values overlap ("-=0.8"), positive values leave a gap ("+=0.2").
func Offset(d float64) Position { return Position{kind: posEnd, offset: d} }

// At places a child at an absolute time in seconds.
func At(t float64) Position { return Position{kind: posAbsolute, offset: t} }

// WithPrevious starts a child together with the previous one.
func WithPrevious() Position { return Position{kind: posPrevious} }

// timelineChild is either a tween or a nested timeline, placed at start.
type timelineChild struct {
	start float64
	tween *Tween
	tl    *Timeline
}

func (c *timelineChild) totalDuration() float64 {
	if c.tween != nil {
		return c.tween.TotalDuration()
	}
	return c.tl.Duration()
}

func (c *timelineChild) renderAt(t float64) {
	if c.tween != nil {
		c.tween.renderAt(t - c.start)
		return
	}
	c.tl.renderAt(t - c.start)
}

// Timeline is an ordered, composable sequence of tweens. Build it with
// FromTo/To/Set/Add, then drive it with Play/Reverse and Update(dt), or map a
// scroll position onto it with SetProgress.
type Timeline struct {
	Name string

	defaults  Vars
	children  []timelineChild
	cursor    float64 // end of the most recently added child
	prevStart float64 // start of the most recently added child

	time     float64
	reversed bool
	playing  bool
	paused   bool
	killed   bool

	OnComplete        func()
	OnReverseComplete func()
	OnUpdate          func()
}

// NewTimeline creates an empty, stopped timeline. defaults fill unset Vars of
// every child added to it.
func NewTimeline(defaults Vars) *Timeline {
	return &Timeline{defaults: defaults}
}

// resolve turns a Position into a start time.
func (tl *Timeline) resolve(pos []Position) float64 {
	p := AtEnd()
	if len(pos) > 0 {
		p = pos[0]
	}
	var start float64
	switch p.kind {
	case posAbsolute:
		start = p.offset
	case posPrevious:
		start = tl.prevStart + p.offset
	default:
		start = tl.cursor + p.offset
	}
	if start < 0 {
		start = 0
	}
	return start
}

// place records a group's span and advances the cursor.
func (tl *Timeline) place(start, span float64) {
	tl.prevStart = start
	if math.IsInf(span, 1) {
		span = 0
	}
	tl.cursor = start + span
}

// FromTo adds one keyframe group per target, all at the same position, with
// each target's delay offset by index × Stagger. The from state is rendered
// immediately.
func (tl *Timeline) FromTo(targets []*Element, from, to Props, v Vars, pos ...Position) *Timeline {
	if from == nil {
		from = Props{}
	}
	return tl.addGroup(targets, from, to, v, pos)
}

// To adds keyframe groups whose start values are captured from the targets
// the first time the group plays.
func (tl *Timeline) To(targets []*Element, to Props, v Vars, pos ...Position) *Timeline {
	return tl.addGroup(targets, nil, to, v, pos)
}

// Set writes props on the targets at the given position with no duration.
func (tl *Timeline) Set(targets []*Element, props Props, pos ...Position) *Timeline {
	start := tl.resolve(pos)
	for _, el := range targets {
		tw := newTween(el, props, props, Vars{Ease: DefaultEase})
		tl.children = append(tl.children, timelineChild{start: start, tween: tw})
		tw.renderAt(tl.time - start)
	}
	tl.place(start, 0)
	return tl
}

func (tl *Timeline) addGroup(targets []*Element, from, to Props, v Vars, pos []Position) *Timeline {
	v = v.merge(tl.defaults)
	start := tl.resolve(pos)
	span := 0.0
	for i, el := range targets {
		tv := v
		tv.Delay = v.Delay + float64(i)*v.Stagger
		tw := newTween(el, from, to, tv)
		tl.children = append(tl.children, timelineChild{start: start, tween: tw})
		if from != nil {
			tw.renderAt(tl.time - start)
		}
		if d := tw.TotalDuration(); d > span {
			span = d
		}
	}
	tl.place(start, span)
	return tl
}

// Add nests another timeline at the given position.
func (tl *Timeline) Add(child *Timeline, pos ...Position) *Timeline {
	start := tl.resolve(pos)
	tl.children = append(tl.children, timelineChild{start: start, tl: child})
	tl.place(start, child.Duration())
	return tl
}

// Append nests other so it starts offset seconds after the previous child
// ends. Negative offsets overlap.
func (tl *Timeline) Append(other *Timeline, offset float64) *Timeline {
	return tl.Add(other, Offset(offset))
}

// Tweens returns every tween of the timeline, nested ones included, in order.
func (tl *Timeline) Tweens() []*Tween {
	var out []*Tween
	for i := range tl.children {
		c := &tl.children[i]
		if c.tween != nil {
			out = append(out, c.tween)
			continue
		}
		out = append(out, c.tl.Tweens()...)
	}
	return out
}

// Duration is the max over children of start + delay + duration.
func (tl *Timeline) Duration() float64 {
	d := 0.0
	for i := range tl.children {
		c := &tl.children[i]
		if end := c.start + c.totalDuration(); end > d {
			d = end
		}
	}
	return d
}

// Time returns the playhead in seconds.
func (tl *Timeline) Time() float64 { return tl.time }

// Progress returns the playhead as a fraction of Duration. An infinite
// timeline reports 0.
func (tl *Timeline) Progress() float64 {
	d := tl.Duration()
	if d <= 0 || math.IsInf(d, 1) {
		if d <= 0 && tl.time > 0 {
			return 1
		}
		return 0
	}
	return tl.time / d
}

// renderAt renders every child at timeline-local time t.
func (tl *Timeline) renderAt(t float64) {
	for i := range tl.children {
		tl.children[i].renderAt(t)
	}
}

// Seek moves the playhead and renders synchronously.
func (tl *Timeline) Seek(t float64) {
	if tl.killed {
		return
	}
	d := tl.Duration()
	if t < 0 {
		t = 0
	}
	if t > d {
		t = d
	}
	tl.time = t
	tl.renderAt(t)
	if tl.OnUpdate != nil {
		tl.OnUpdate()
	}
}

// SetProgress seeks to p × Duration, p clamped to [0, 1].
func (tl *Timeline) SetProgress(p float64) {
	d := tl.Duration()
	if math.IsInf(d, 1) {
		return
	}
	tl.Seek(clamp01(p) * d)
}

// Play runs the timeline forward from the playhead. Calling Play on a
// timeline that is already playing forward does not restart it.
func (tl *Timeline) Play() {
	if tl.killed {
		return
	}
	tl.reversed = false
	tl.paused = false
	tl.playing = tl.time < tl.Duration()
	if tl.playing && tl.time == 0 {
		tl.renderAt(0)
	}
}

// Reverse runs the timeline backward toward its start.
func (tl *Timeline) Reverse() {
	if tl.killed {
		return
	}
	tl.reversed = true
	tl.paused = false
	tl.playing = tl.time > 0
}

// Restart rewinds to 0 and plays forward.
func (tl *Timeline) Restart() {
	if tl.killed {
		return
	}
	tl.time = 0
	tl.renderAt(0)
	tl.Play()
}

// Reset rewinds to 0 and stops.
func (tl *Timeline) Reset() {
	if tl.killed {
		return
	}
	tl.time = 0
	tl.renderAt(0)
	tl.playing = false
	tl.reversed = false
}

// Complete jumps to the end and stops.
func (tl *Timeline) Complete() {
	d := tl.Duration()
	if tl.killed || math.IsInf(d, 1) {
		return
	}
	tl.time = d
	tl.renderAt(d)
	tl.playing = false
}

// Pause freezes the playhead.
func (tl *Timeline) Pause() { tl.paused = true }

// Resume continues in the current direction.
func (tl *Timeline) Resume() {
	if tl.killed {
		return
	}
	tl.paused = false
	if tl.reversed {
		tl.playing = tl.time > 0
	} else {
		tl.playing = tl.time < tl.Duration()
	}
}

// Kill stops the timeline permanently. The engine drops it on the next tick.
func (tl *Timeline) Kill() {
	tl.killed = true
	tl.playing = false
}

// Revert kills the timeline and restores every target property it touched to
// the value it had before the timeline was built.
func (tl *Timeline) Revert() {
	tl.Kill()
	tws := tl.Tweens()
	for i := len(tws) - 1; i >= 0; i-- {
		tws[i].revert()
	}
}

// IsActive reports whether the playhead is moving.
func (tl *Timeline) IsActive() bool {
	return tl.playing && !tl.paused && !tl.killed
}

// Reversed reports the playback direction.
func (tl *Timeline) Reversed() bool { return tl.reversed }

// Killed reports whether Kill was called.
func (tl *Timeline) Killed() bool { return tl.killed }

// Update advances the playhead by dt seconds in the current direction.
func (tl *Timeline) Update(dt float64) {
	if !tl.IsActive() {
		return
	}
	d := tl.Duration()
	if tl.reversed {
		tl.time -= dt
		if tl.time <= 0 {
			tl.time = 0
			tl.playing = false
		}
	} else {
		tl.time += dt
		if tl.time >= d {
			tl.time = d
			tl.playing = false
		}
	}
	tl.renderAt(tl.time)
	if tl.OnUpdate != nil {
		tl.OnUpdate()
	}
	if !tl.playing {
		if tl.reversed && tl.OnReverseComplete != nil {
			tl.OnReverseComplete()
		}
		if !tl.reversed && tl.OnComplete != nil {
			tl.OnComplete()
		}
	}
}

func (tl *Timeline) tick(dt float64) bool {
	if tl.killed {
		return false
	}
	tl.Update(dt)
	return !tl.killed
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
