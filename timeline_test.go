package reveal

import (
	"math"
	"testing"
)

func TestTimelineSequencesGroups(t *testing.T) {
	a := attached("a", Rect{})
	b := attached("b", Rect{})

	tl := NewTimeline(Vars{Ease: linear})
	tl.FromTo([]*Element{a}, Props{PropX: 0}, Props{PropX: 10}, Vars{Duration: 1})
	tl.FromTo([]*Element{b}, Props{PropX: 0}, Props{PropX: 10}, Vars{Duration: 1})
	assertNear(t, "Duration", tl.Duration(), 2)

	tl.Play()
	tl.Update(1.5)
	assertNear(t, "a.X", a.X, 10)
	assertClose(t, "b.X", b.X, 5, 1e-4)
}

func TestTimelinePositions(t *testing.T) {
	els := []*Element{attached("a", Rect{}), attached("b", Rect{}), attached("c", Rect{}), attached("d", Rect{})}
	to := Props{PropAlpha: 1}

	tl := NewTimeline(Vars{Duration: 1})
	tl.To(els[:1], to, Vars{Duration: 1.5})
	tl.To(els[1:2], to, Vars{}, Offset(-1))    // starts at 0.5
	tl.To(els[2:3], to, Vars{}, WithPrevious()) // starts at 0.5
	tl.To(els[3:4], to, Vars{}, At(4))

	tws := tl.Tweens()
	starts := []float64{0, 0.5, 0.5, 4}
	for i, c := range tl.children {
		assertNear(t, "start", c.start, starts[i])
	}
	if len(tws) != 4 {
		t.Fatalf("tweens = %d", len(tws))
	}
	assertNear(t, "Duration", tl.Duration(), 5)
}

func TestTimelineNegativeOffsetClampsToZero(t *testing.T) {
	tl := NewTimeline(Vars{})
	tl.To([]*Element{attached("a", Rect{})}, Props{PropX: 1}, Vars{Duration: 1}, Offset(-5))
	assertNear(t, "start", tl.children[0].start, 0)
}

func TestTimelineStagger(t *testing.T) {
	els := []*Element{attached("a", Rect{}), attached("b", Rect{}), attached("c", Rect{})}
	tl := NewTimeline(Vars{Ease: linear})
	tl.FromTo(els, Props{PropY: 50}, Props{PropY: 0}, Vars{Duration: 1, Stagger: 0.2})

	assertNear(t, "Duration", tl.Duration(), 1.4)
	for i, tw := range tl.Tweens() {
		assertNear(t, "delay", tw.Delay(), 0.2*float64(i))
	}
	// From state is rendered immediately, delays included.
	for _, e := range els {
		assertNear(t, "from Y", e.Y, 50)
	}

	tl.Play()
	tl.Update(1)
	assertNear(t, "a.Y", els[0].Y, 0)
	assertClose(t, "c.Y", els[2].Y, 20, 1e-4)
}

func TestTimelineSetProgress(t *testing.T) {
	e := attached("a", Rect{})
	tl := NewTimeline(Vars{Ease: linear})
	tl.To([]*Element{e}, Props{PropX: 100}, Vars{Duration: 2})

	tl.SetProgress(0.25)
	assertClose(t, "X", e.X, 25, 1e-4)
	assertNear(t, "Time", tl.Time(), 0.5)
	tl.SetProgress(2)
	assertNear(t, "X clamped", e.X, 100)
	assertNear(t, "Progress", tl.Progress(), 1)
	tl.SetProgress(-1)
	assertNear(t, "X start", e.X, 0)
}

func TestTimelineReverseAndCallbacks(t *testing.T) {
	e := attached("a", Rect{})
	tl := NewTimeline(Vars{Ease: linear})
	tl.FromTo([]*Element{e}, Props{PropX: 0}, Props{PropX: 10}, Vars{Duration: 1})

	done, back := 0, 0
	tl.OnComplete = func() { done++ }
	tl.OnReverseComplete = func() { back++ }

	tl.Play()
	tl.Update(2)
	if done != 1 || tl.IsActive() {
		t.Fatalf("done = %d, active = %v", done, tl.IsActive())
	}
	tl.Reverse()
	tl.Update(0.5)
	assertClose(t, "X halfway back", e.X, 5, 1e-4)
	tl.Update(0.5)
	if back != 1 {
		t.Errorf("reverse complete calls = %d", back)
	}
	assertNear(t, "X back", e.X, 0)
}

func TestTimelinePlayDoesNotRestart(t *testing.T) {
	e := attached("a", Rect{})
	tl := NewTimeline(Vars{Ease: linear})
	tl.FromTo([]*Element{e}, Props{PropX: 0}, Props{PropX: 10}, Vars{Duration: 1})
	tl.Play()
	tl.Update(0.5)
	tl.Play()
	assertNear(t, "Time", tl.Time(), 0.5)
	tl.Restart()
	assertNear(t, "Time after Restart", tl.Time(), 0)
	assertNear(t, "X after Restart", e.X, 0)
}

func TestTimelinePauseResumeCompleteReset(t *testing.T) {
	e := attached("a", Rect{})
	tl := NewTimeline(Vars{Ease: linear})
	tl.FromTo([]*Element{e}, Props{PropX: 0}, Props{PropX: 10}, Vars{Duration: 1})
	tl.Play()
	tl.Update(0.25)
	tl.Pause()
	tl.Update(0.5)
	assertNear(t, "Time paused", tl.Time(), 0.25)
	tl.Resume()
	tl.Update(0.25)
	assertNear(t, "Time resumed", tl.Time(), 0.5)

	tl.Complete()
	assertNear(t, "X complete", e.X, 10)
	tl.Reset()
	assertNear(t, "X reset", e.X, 0)
	if tl.IsActive() {
		t.Error("Reset should stop the timeline")
	}
}

func TestTimelineNested(t *testing.T) {
	e := attached("a", Rect{})
	inner := NewTimeline(Vars{Ease: linear})
	inner.FromTo([]*Element{e}, Props{PropY: 0}, Props{PropY: 10}, Vars{Duration: 1})

	outer := NewTimeline(Vars{})
	outer.To([]*Element{attached("b", Rect{})}, Props{PropX: 1}, Vars{Duration: 1})
	outer.Append(inner, 0.5)
	assertNear(t, "Duration", outer.Duration(), 2.5)
	if len(outer.Tweens()) != 2 {
		t.Errorf("Tweens = %d", len(outer.Tweens()))
	}
	outer.Seek(2)
	assertClose(t, "Y", e.Y, 5, 1e-4)
}

func TestTimelineKillAndRevert(t *testing.T) {
	e := attached("a", Rect{})
	e.Alpha = 0.3
	tl := NewTimeline(Vars{Ease: linear})
	tl.FromTo([]*Element{e}, Props{PropAlpha: 0}, Props{PropAlpha: 1}, Vars{Duration: 1})
	tl.Play()
	tl.Update(0.5)

	tl.Revert()
	if !tl.Killed() || tl.IsActive() {
		t.Error("Revert should kill")
	}
	assertNear(t, "Alpha", e.Alpha, 0.3)
	tl.Play()
	tl.Update(1)
	assertNear(t, "Alpha after play on killed", e.Alpha, 0.3)
}

func TestTimelineInfiniteChild(t *testing.T) {
	e := attached("a", Rect{})
	tl := NewTimeline(Vars{})
	tl.To([]*Element{e}, Props{PropY: 15}, Vars{Duration: 3, Repeat: RepeatForever, Yoyo: true})
	if !math.IsInf(tl.Duration(), 1) {
		t.Fatalf("Duration = %v", tl.Duration())
	}
	tl.Play()
	tl.Update(1000)
	if !tl.IsActive() {
		t.Error("an infinite timeline should keep playing")
	}
	assertNear(t, "Progress", tl.Progress(), 0)
}

func TestEngineDropsFinishedTickers(t *testing.T) {
	e := NewEngine(nil)
	el := attached("a", Rect{})
	tl := e.To([]*Element{el}, Props{PropX: 10}, Vars{Duration: 1})
	e.Update(2)
	if e.Active() != 1 {
		t.Fatalf("Active = %d; a finished timeline stays until killed", e.Active())
	}
	tl.Kill()
	e.Update(0.1)
	if e.Active() != 0 {
		t.Errorf("Active = %d after kill", e.Active())
	}
	assertNear(t, "Clock", e.Clock(), 2.1)
}
