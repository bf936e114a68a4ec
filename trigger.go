package reveal

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

// Mode selects how a trigger drives its animation.
type Mode uint8

const (
	// ModeToggle plays/reverses the animation on region entry/exit according
	// to ToggleActions.
	ModeToggle Mode = iota
	// ModeScrub maps scroll progress straight onto animation progress.
	ModeScrub
)

// Action is what a toggle trigger does to its animation on a transition.
type Action uint8

const (
	ActionNone Action = iota
	ActionPlay
	ActionPause
	ActionResume
	ActionReverse
	ActionRestart
	ActionReset
	ActionComplete
)

var actionNames = [...]string{"none", "play", "pause", "resume", "reverse", "restart", "reset", "complete"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ToggleActions holds the actions for onEnter, onLeave, onEnterBack and
// onLeaveBack, in that order. The zero value means DefaultToggleActions.
type ToggleActions [4]Action

// DefaultToggleActions plays forward on enter, does nothing on leave or
// re-entry from below, and reverses when scrolled back above the start.
var DefaultToggleActions = ToggleActions{ActionPlay, ActionNone, ActionNone, ActionReverse}

// ParseToggleActions parses four space separated action names, for example
// "play none none reverse".
func ParseToggleActions(s string) (ToggleActions, error) {
	parts := strings.Fields(s)
	if len(parts) != 4 {
		return ToggleActions{}, fmt.Errorf("%w: %q", ErrBadToggleActions, s)
	}
	var out ToggleActions
	for i, p := range parts {
		found := false
		for a, name := range actionNames {
			if name == p {
				out[i] = Action(a)
				found = true
				break
			}
		}
		if !found {
			return ToggleActions{}, fmt.Errorf("%w: %q", ErrBadToggleActions, p)
		}
	}
	return out, nil
}

func (ta ToggleActions) String() string {
	return ta[0].String() + " " + ta[1].String() + " " + ta[2].String() + " " + ta[3].String()
}

// TriggerState is the position of the scroll relative to a trigger region.
type TriggerState uint8

const (
	StateBefore TriggerState = iota // region not reached yet
	StateActive                     // inside [start, end]
	StateAfter                      // scrolled past end
)

var stateNames = [...]string{"before", "active", "after"}

func (s TriggerState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// TriggerConfig describes a scroll binding.
type TriggerConfig struct {
	Name string

	// Trigger is the element whose layout box defines the region.
	Trigger *Element
	// Start defaults to "top bottom", End to "bottom top".
	Start, End ScrollOffset

	Mode Mode
	// Scrub, in scrub mode, is the catch-up time in seconds. Zero applies
	// progress synchronously inside the scroll event.
	Scrub float64
	// Actions applies in toggle mode.
	Actions ToggleActions

	// Pin fixes PinTarget (default Trigger) in the viewport while active.
	Pin       bool
	PinTarget *Element

	Animation *Timeline

	OnEnter     func(*Trigger)
	OnLeave     func(*Trigger)
	OnEnterBack func(*Trigger)
	OnLeaveBack func(*Trigger)
	OnUpdate    func(*Trigger)
	OnRefresh   func(*Trigger)
}

var (
	defaultStart = Edge(0, 1) // "top bottom"
	defaultEnd   = Edge(1, 0) // "bottom top"
)

// Trigger is a live scroll binding. Create it through Context.ScrollTrigger so
// it is torn down with its view.
type Trigger struct {
	id    uint32
	owner uint32
	page  *Page
	cfg   TriggerConfig

	start, end float64
	invalid    bool

	progress float64 // progress implied by the scroll position
	smoothed float64 // progress applied to the animation
	state    TriggerState
	scroll   float64

	attached bool
	registry *Registry
}

func newTrigger(cfg TriggerConfig) *Trigger {
	if cfg.Start.IsZero() {
		cfg.Start = defaultStart
	}
	if cfg.End.IsZero() {
		cfg.End = defaultEnd
	}
	if cfg.Actions == (ToggleActions{}) {
		cfg.Actions = DefaultToggleActions
	}
	if cfg.Pin && cfg.PinTarget == nil {
		cfg.PinTarget = cfg.Trigger
	}
	return &Trigger{cfg: cfg}
}

// ID returns the registry-assigned id.
func (t *Trigger) ID() uint32 { return t.id }

// Owner returns the id of the context that created the trigger.
func (t *Trigger) Owner() uint32 { return t.owner }

// Name returns the configured name.
func (t *Trigger) Name() string { return t.cfg.Name }

// Start returns the resolved start scroll position.
func (t *Trigger) Start() float64 { return t.start }

// End returns the resolved end scroll position.
func (t *Trigger) End() float64 { return t.end }

// Mode returns the binding mode.
func (t *Trigger) Mode() Mode { return t.cfg.Mode }

// Progress returns the progress last applied to the animation.
func (t *Trigger) Progress() float64 { return t.smoothed }

// TargetProgress returns the progress implied by the current scroll position.
func (t *Trigger) TargetProgress() float64 { return t.progress }

// State returns the region state.
func (t *Trigger) State() TriggerState { return t.state }

// IsActive reports whether the scroll position is inside the region.
func (t *Trigger) IsActive() bool { return t.state == StateActive }

// Attached reports whether the trigger still receives events.
func (t *Trigger) Attached() bool { return t.attached }

// Animation returns the bound timeline (may be nil).
func (t *Trigger) Animation() *Timeline { return t.cfg.Animation }

// Element returns the trigger element.
func (t *Trigger) Element() *Element { return t.cfg.Trigger }

// PinSpacing is the extra scroll distance a pinned trigger consumes, which a
// layout adds below the pinned element.
func (t *Trigger) PinSpacing() float64 {
	if !t.cfg.Pin || t.invalid {
		return 0
	}
	return t.end - t.start
}

// ProgressAt is the scrub mapping clamp((scroll-start)/(end-start), 0, 1). An
// invalid range yields 0.
func (t *Trigger) ProgressAt(scroll float64) float64 {
	if t.invalid {
		return 0
	}
	return clamp01((scroll - t.start) / (t.end - t.start))
}

// Kill detaches the trigger from the registry and releases its pin. The
// animation is left alone. Safe to call more than once.
func (t *Trigger) Kill() {
	if !t.attached {
		return
	}
	t.attached = false
	if t.registry != nil {
		t.registry.remove(t)
	}
	if pin := t.cfg.PinTarget; t.cfg.Pin && pin.IsAttached() {
		pin.PinOffset = 0
		pin.dirty = true
	}
}

// refresh resolves the offsets against the current layout.
func (t *Trigger) refresh(viewportHeight float64, logger *zap.Logger) {
	el := t.cfg.Trigger
	if !el.IsAttached() {
		logger.Debug("trigger element missing on refresh", zap.String("trigger", t.cfg.Name))
		return
	}
	t.start = t.cfg.Start.resolve(el.Bounds, viewportHeight, 0)
	t.end = t.cfg.End.resolve(el.Bounds, viewportHeight, t.start)
	t.invalid = !(t.end > t.start) || math.IsNaN(t.end)
	if t.invalid {
		logger.Warn("invalid scroll range, progress clamped to 0",
			zap.String("trigger", t.cfg.Name),
			zap.Float64("start", t.start),
			zap.Float64("end", t.end),
			zap.Error(ErrInvalidRange))
	}
	if t.cfg.OnRefresh != nil {
		t.cfg.OnRefresh(t)
	}
	t.emit(EventRefresh)
}

// update applies a scroll position. Events that reach a detached trigger are
// no-ops.
func (t *Trigger) update(scroll float64, logger *zap.Logger) {
	if !t.attached {
		logger.Debug("scroll event on detached trigger", zap.String("trigger", t.cfg.Name),
			zap.Error(ErrStaleBinding))
		return
	}
	if !t.cfg.Trigger.IsAttached() {
		return
	}
	t.scroll = scroll
	t.progress = t.ProgressAt(scroll)

	next := StateActive
	switch {
	case scroll < t.start:
		next = StateBefore
	case !t.invalid && scroll > t.end:
		next = StateAfter
	}
	prev := t.state
	t.state = next
	switch {
	case prev == StateBefore && next == StateActive:
		t.transition(EventEnter)
	case prev == StateActive && next == StateAfter:
		t.transition(EventLeave)
	case prev == StateAfter && next == StateActive:
		t.transition(EventEnterBack)
	case prev == StateActive && next == StateBefore:
		t.transition(EventLeaveBack)
	case prev == StateBefore && next == StateAfter:
		t.transition(EventEnter)
		if t.attached {
			t.transition(EventLeave)
		}
	case prev == StateAfter && next == StateBefore:
		t.transition(EventEnterBack)
		if t.attached {
			t.transition(EventLeaveBack)
		}
	}
	// A callback may have killed us.
	if !t.attached {
		return
	}

	if t.cfg.Mode == ModeScrub && t.cfg.Scrub <= 0 {
		t.smoothed = t.progress
		if t.cfg.Animation != nil {
			t.cfg.Animation.SetProgress(t.progress)
		}
	}
	t.updatePin()
	if t.cfg.OnUpdate != nil {
		t.cfg.OnUpdate(t)
	}
}

func (t *Trigger) transition(ev EventType) {
	var cb func(*Trigger)
	switch ev {
	case EventEnter:
		cb = t.cfg.OnEnter
	case EventLeave:
		cb = t.cfg.OnLeave
	case EventEnterBack:
		cb = t.cfg.OnEnterBack
	case EventLeaveBack:
		cb = t.cfg.OnLeaveBack
	}
	if t.cfg.Mode == ModeToggle {
		t.apply(t.cfg.Actions[ev])
	}
	if cb != nil {
		cb(t)
	}
	t.emit(ev)
}

func (t *Trigger) apply(a Action) {
	tl := t.cfg.Animation
	if tl == nil {
		return
	}
	switch a {
	case ActionPlay:
		tl.Play()
	case ActionPause:
		tl.Pause()
	case ActionResume:
		tl.Resume()
	case ActionReverse:
		tl.Reverse()
	case ActionRestart:
		tl.Restart()
	case ActionReset:
		tl.Reset()
	case ActionComplete:
		tl.Complete()
	}
}

func (t *Trigger) updatePin() {
	if !t.cfg.Pin {
		return
	}
	pin := t.cfg.PinTarget
	if !pin.IsAttached() {
		return
	}
	off := 0.0
	if !t.invalid {
		off = math.Max(0, math.Min(t.scroll-t.start, t.end-t.start))
	}
	if pin.PinOffset != off {
		pin.PinOffset = off
		pin.dirty = true
	}
}

// tick eases the applied progress toward the scroll progress when Scrub > 0.
func (t *Trigger) tick(dt float64) {
	if !t.attached || t.cfg.Mode != ModeScrub || t.cfg.Scrub <= 0 {
		return
	}
	if t.smoothed == t.progress {
		return
	}
	k := dt / t.cfg.Scrub
	if k > 1 {
		k = 1
	}
	t.smoothed += (t.progress - t.smoothed) * k
	if math.Abs(t.progress-t.smoothed) < 1e-4 {
		t.smoothed = t.progress
	}
	if t.cfg.Animation != nil {
		t.cfg.Animation.SetProgress(t.smoothed)
	}
}

func (t *Trigger) emit(ev EventType) {
	if t.page == nil {
		return
	}
	var elID uint32
	if t.cfg.Trigger != nil {
		elID = t.cfg.Trigger.ID
	}
	t.page.emit(TriggerEvent{
		Type:      ev,
		TriggerID: t.id,
		ElementID: elID,
		Name:      t.cfg.Name,
		Progress:  t.progress,
		ScrollY:   t.scroll,
	})
}
