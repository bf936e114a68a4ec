package reveal

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var linear = MustEase("none")

func TestParseToggleActions(t *testing.T) {
	got, err := ParseToggleActions("play none none reverse")
	if err != nil {
		t.Fatal(err)
	}
	if got != DefaultToggleActions {
		t.Errorf("got %v, want %v", got, DefaultToggleActions)
	}
	if got.String() != "play none none reverse" {
		t.Errorf("String() = %q", got.String())
	}
	for _, bad := range []string{"play none none", "play none none rewind", ""} {
		if _, err := ParseToggleActions(bad); !errors.Is(err, ErrBadToggleActions) {
			t.Errorf("ParseToggleActions(%q) err = %v", bad, err)
		}
	}
}

func TestToggleTriggerPlaysAndReverses(t *testing.T) {
	p := newTestPage(t, 1000, 800)
	el := addBox(p, "box", Rect{Y: 2000, Width: 1000, Height: 400})

	var tl *Timeline
	var tr *Trigger
	mountFunc(t, p, "v", func(ctx *Context) error {
		tl = ctx.Timeline(Vars{Ease: linear}).
			FromTo([]*Element{el}, Props{PropY: 50}, Props{PropY: 0}, Vars{Duration: 1})
		tr = ctx.ScrollTrigger(TriggerConfig{
			Trigger:   el,
			Start:     MustOffset("top 80%"),
			Animation: tl,
		})
		return nil
	})
	assertNear(t, "start", tr.Start(), 1360)
	assertNear(t, "end", tr.End(), 2400)
	assertNear(t, "Y before entry", el.Y, 50)

	p.Scroll(1400)
	if tr.State() != StateActive || !tl.IsActive() {
		t.Fatalf("state = %v, playing = %v", tr.State(), tl.IsActive())
	}
	p.Update(0.5)
	assertClose(t, "Y mid", el.Y, 25, 1e-3)
	p.Update(0.6)
	assertNear(t, "Y end", el.Y, 0)

	// Leaving and re-entering from below does nothing.
	p.Scroll(3000)
	p.Scroll(2000)
	if tl.IsActive() || tl.Time() != tl.Duration() {
		t.Errorf("re-entry restarted the animation: time %v", tl.Time())
	}

	// Scrolling back above the start reverses.
	p.Scroll(1000)
	if !tl.Reversed() {
		t.Fatal("expected reverse on leaveBack")
	}
	p.Update(2)
	assertNear(t, "Y reversed", el.Y, 50)
}

func TestToggleTriggerJumpFiresBothTransitions(t *testing.T) {
	p := newTestPage(t, 1000, 800)
	el := addBox(p, "box", Rect{Y: 2000, Width: 1000, Height: 400})

	var events []EventType
	rec := func(ev EventType) func(*Trigger) {
		return func(*Trigger) { events = append(events, ev) }
	}
	mountFunc(t, p, "v", func(ctx *Context) error {
		ctx.ScrollTrigger(TriggerConfig{
			Trigger:     el,
			OnEnter:     rec(EventEnter),
			OnLeave:     rec(EventLeave),
			OnEnterBack: rec(EventEnterBack),
			OnLeaveBack: rec(EventLeaveBack),
		})
		return nil
	})

	p.Scroll(4000)
	p.Scroll(0)
	want := []EventType{EventEnter, EventLeave, EventEnterBack, EventLeaveBack}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, events[i], want[i])
		}
	}
}

func TestScrubTriggerIsMonotonic(t *testing.T) {
	p := newTestPage(t, 1000, 800)
	el := addBox(p, "box", Rect{Y: 1000, Width: 1000, Height: 500})

	var tr *Trigger
	mountFunc(t, p, "v", func(ctx *Context) error {
		tl := ctx.Timeline(Vars{Ease: linear}).To([]*Element{el}, Props{PropX: 100}, Vars{Duration: 1})
		tr = ctx.ScrollTrigger(TriggerConfig{Trigger: el, Mode: ModeScrub, Animation: tl})
		return nil
	})
	// "top bottom" = 200, "bottom top" = 1500.
	p.Scroll(850)
	assertClose(t, "progress", tr.Progress(), 0.5, 1e-9)
	assertClose(t, "X", el.X, 50, 1e-3)

	prev := -1.0
	for y := 0.0; y <= 2000; y += 50 {
		p.Scroll(y)
		if el.X < prev-1e-9 {
			t.Fatalf("X decreased scrolling down at %v: %v < %v", y, el.X, prev)
		}
		prev = el.X
	}
	assertNear(t, "X at end", el.X, 100)
	for y := 2000.0; y >= 0; y -= 50 {
		p.Scroll(y)
		if el.X > prev+1e-9 {
			t.Fatalf("X increased scrolling up at %v", y)
		}
		prev = el.X
	}
	assertNear(t, "X at start", el.X, 0)
}

func TestScrubSmoothingCatchesUp(t *testing.T) {
	p := newTestPage(t, 1000, 800)
	el := addBox(p, "box", Rect{Y: 1000, Width: 1000, Height: 500})

	var tr *Trigger
	mountFunc(t, p, "v", func(ctx *Context) error {
		tl := ctx.Timeline(Vars{Ease: linear}).To([]*Element{el}, Props{PropX: 100}, Vars{Duration: 1})
		tr = ctx.ScrollTrigger(TriggerConfig{Trigger: el, Mode: ModeScrub, Scrub: 1, Animation: tl})
		return nil
	})
	p.Scroll(850)
	assertNear(t, "smoothed before tick", tr.Progress(), 0)
	assertNear(t, "target", tr.TargetProgress(), 0.5)

	p.Update(0.5)
	assertClose(t, "smoothed after 0.5s", tr.Progress(), 0.25, 1e-9)
	for i := 0; i < 600; i++ {
		p.Update(1.0 / 60)
	}
	assertNear(t, "smoothed settled", tr.Progress(), 0.5)
	assertClose(t, "X settled", el.X, 50, 1e-3)
}

func TestPinnedTriggerHoldsElement(t *testing.T) {
	p := newTestPage(t, 1000, 800)
	el := addBox(p, "section", Rect{Y: 1000, Width: 1000, Height: 800})

	var tr *Trigger
	mountFunc(t, p, "v", func(ctx *Context) error {
		tr = ctx.ScrollTrigger(TriggerConfig{
			Trigger: el,
			Start:   Edge(0, 0),
			End:     After(500),
			Pin:     true,
		})
		return nil
	})
	assertNear(t, "PinSpacing", tr.PinSpacing(), 500)

	p.Scroll(1200)
	assertNear(t, "PinOffset active", el.PinOffset, 200)
	p.Scroll(2500)
	assertNear(t, "PinOffset after", el.PinOffset, 500)
	p.Scroll(0)
	assertNear(t, "PinOffset before", el.PinOffset, 0)

	p.Scroll(1300)
	tr.Kill()
	assertNear(t, "PinOffset killed", el.PinOffset, 0)
}

func TestInvalidRangeWarnsAndClamps(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := newTestPage(t, 1000, 800)
	p.SetEngine(NewEngine(zap.New(core)))
	el := addBox(p, "box", Rect{Y: 1000, Width: 1000, Height: 400})

	var tr *Trigger
	mountFunc(t, p, "v", func(ctx *Context) error {
		tr = ctx.ScrollTrigger(TriggerConfig{
			Name:    "flat",
			Trigger: el,
			Mode:    ModeScrub,
			Start:   MustOffset("top top"),
			End:     MustOffset("top top"),
		})
		return nil
	})

	warn := logs.FilterMessage("invalid scroll range, progress clamped to 0")
	if warn.Len() != 1 {
		t.Fatalf("warnings = %d, want 1", warn.Len())
	}
	if name := warn.All()[0].ContextMap()["trigger"]; name != "flat" {
		t.Errorf("trigger field = %v", name)
	}
	p.Scroll(2000)
	assertNear(t, "progress", tr.Progress(), 0)
	if tr.State() != StateActive {
		t.Errorf("state = %v, want active (an invalid range has no after state)", tr.State())
	}
}

func TestTriggerOnMissingElementIsDetached(t *testing.T) {
	p := newTestPage(t, 1000, 800)
	orphan := NewElement("orphan", Rect{Y: 100, Height: 100})

	var tr *Trigger
	fired := false
	mountFunc(t, p, "v", func(ctx *Context) error {
		tr = ctx.ScrollTrigger(TriggerConfig{Trigger: orphan, OnEnter: func(*Trigger) { fired = true }})
		return nil
	})
	if tr.Attached() || p.Triggers() != 0 {
		t.Fatal("trigger on a detached element should not register")
	}
	p.Scroll(500)
	if fired {
		t.Error("detached trigger fired")
	}
}

func TestTriggerKillIsIdempotent(t *testing.T) {
	p := newTestPage(t, 1000, 800)
	el := addBox(p, "box", Rect{Y: 1000, Width: 1000, Height: 400})

	var a, b *Trigger
	mountFunc(t, p, "v", func(ctx *Context) error {
		a = ctx.ScrollTrigger(TriggerConfig{Trigger: el})
		b = ctx.ScrollTrigger(TriggerConfig{Trigger: el})
		return nil
	})
	a.Kill()
	a.Kill()
	if p.Triggers() != 1 || !b.Attached() {
		t.Errorf("Triggers = %d, b attached = %v", p.Triggers(), b.Attached())
	}
}

func TestTriggerCallbackMayKillItself(t *testing.T) {
	p := newTestPage(t, 1000, 800)
	el := addBox(p, "box", Rect{Y: 1000, Width: 1000, Height: 400})

	calls := 0
	mountFunc(t, p, "v", func(ctx *Context) error {
		ctx.ScrollTrigger(TriggerConfig{
			Trigger: el,
			OnEnter: func(tr *Trigger) { calls++; tr.Kill() },
			OnLeave: func(*Trigger) { calls++ },
		})
		return nil
	})
	p.Scroll(4000)
	p.Scroll(0)
	p.Scroll(600)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRegistryRemoveOwnerOnlyTouchesOwner(t *testing.T) {
	p := newTestPage(t, 1000, 800)
	el := addBox(p, "box", Rect{Y: 1000, Width: 1000, Height: 400})

	one := mountFunc(t, p, "one", func(ctx *Context) error {
		ctx.ScrollTrigger(TriggerConfig{Trigger: el})
		ctx.ScrollTrigger(TriggerConfig{Trigger: el})
		return nil
	})
	two := mountFunc(t, p, "two", func(ctx *Context) error {
		ctx.ScrollTrigger(TriggerConfig{Trigger: el})
		return nil
	})

	reg := p.Engine().Registry()
	if n := reg.RemoveOwner(one.ID()); n != 2 {
		t.Errorf("removed %d, want 2", n)
	}
	if reg.Len() != 1 || len(reg.Owned(two.ID())) != 1 {
		t.Errorf("Len = %d, owned by two = %d", reg.Len(), len(reg.Owned(two.ID())))
	}
	if n := reg.RemoveOwner(one.ID()); n != 0 {
		t.Errorf("second RemoveOwner removed %d", n)
	}
}

func TestRegistryScopesTriggersByPage(t *testing.T) {
	e := NewEngine(nil)
	pa := NewPage(1000, 800)
	pa.SetEngine(e)
	pa.SetContentHeight(5000)
	pb := NewPage(1000, 800)
	pb.SetEngine(e)
	pb.SetContentHeight(5000)

	ea := addBox(pa, "a", Rect{Y: 1000, Width: 1000, Height: 400})
	eb := addBox(pb, "b", Rect{Y: 1000, Width: 1000, Height: 400})
	var ta, tb *Trigger
	mountFunc(t, pa, "a", func(ctx *Context) error {
		ta = ctx.ScrollTrigger(TriggerConfig{Trigger: ea})
		return nil
	})
	mountFunc(t, pb, "b", func(ctx *Context) error {
		tb = ctx.ScrollTrigger(TriggerConfig{Trigger: eb})
		return nil
	})

	pa.Scroll(500)
	if !ta.IsActive() || tb.IsActive() {
		t.Errorf("a active = %v, b active = %v", ta.IsActive(), tb.IsActive())
	}
	if pa.Triggers() != 1 || pb.Triggers() != 1 {
		t.Errorf("page triggers = %d, %d", pa.Triggers(), pb.Triggers())
	}
}
