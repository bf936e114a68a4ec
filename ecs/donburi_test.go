package ecs

import (
	"testing"

	"github.com/phanxgames/reveal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []reveal.TriggerEvent
	TriggerEventType.Subscribe(world, func(w donburi.World, e reveal.TriggerEvent) {
		received = append(received, e)
	})

	store.EmitEvent(reveal.TriggerEvent{
		Type:      reveal.EventEnter,
		TriggerID: 42,
		ElementID: 7,
		Name:      "hero",
		ScrollY:   200,
	})
	store.EmitEvent(reveal.TriggerEvent{
		Type:     reveal.EventLeave,
		Progress: 1,
	})

	// Events are queued; process them.
	TriggerEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != reveal.EventEnter || e0.TriggerID != 42 || e0.Name != "hero" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.ScrollY != 200 {
		t.Errorf("event 0 scrollY = %v", e0.ScrollY)
	}
	if e1 := received[1]; e1.Type != reveal.EventLeave || e1.Progress != 1 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var store reveal.EventSink = NewDonburiStore(world)
	_ = store
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	TriggerEventType.Subscribe(world, func(w donburi.World, e reveal.TriggerEvent) {
		count1++
	})
	TriggerEventType.Subscribe(world, func(w donburi.World, e reveal.TriggerEvent) {
		count2++
	})

	store.EmitEvent(reveal.TriggerEvent{Type: reveal.EventEnterBack})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

type sectionView struct {
	el *reveal.Element
}

func (v *sectionView) Name() string { return "section" }

func (v *sectionView) Mount(ctx *reveal.Context) error {
	ctx.ScrollTrigger(reveal.TriggerConfig{
		Name:    "section",
		Trigger: v.el,
		Start:   reveal.MustOffset("top 80%"),
	})
	return nil
}

func TestDonburiStore_PageTransitions(t *testing.T) {
	world := donburi.NewWorld()
	page := reveal.NewPage(1000, 800)
	page.SetEngine(reveal.NewEngine(nil))
	page.SetEventSink(NewDonburiStore(world))
	page.SetContentHeight(4000)

	el := reveal.NewElement("section", reveal.Rect{Y: 1500, Width: 1000, Height: 400})
	page.Root().AddChild(el)
	if err := page.Mount(&sectionView{el: el}); err != nil {
		t.Fatal(err)
	}

	var types []reveal.EventType
	TriggerEventType.Subscribe(world, func(w donburi.World, e reveal.TriggerEvent) {
		if e.Type != reveal.EventRefresh {
			types = append(types, e.Type)
		}
	})

	// start = 1500 - 0.8*800 = 860, end = 1900.
	page.Scroll(900)
	page.Scroll(2000)
	page.Scroll(1000)
	page.Scroll(0)
	TriggerEventType.ProcessEvents(world)

	want := []reveal.EventType{reveal.EventEnter, reveal.EventLeave, reveal.EventEnterBack, reveal.EventLeaveBack}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiStore_EventCarriesScrollState(t *testing.T) {
	world := donburi.NewWorld()
	page := reveal.NewPage(1000, 800)
	page.SetEngine(reveal.NewEngine(nil))
	page.SetEventSink(NewDonburiStore(world))
	page.SetContentHeight(4000)

	el := reveal.NewElement("section", reveal.Rect{Y: 1500, Width: 1000, Height: 400})
	page.Root().AddChild(el)
	if err := page.Mount(&sectionView{el: el}); err != nil {
		t.Fatal(err)
	}

	var got []reveal.TriggerEvent
	TriggerEventType.Subscribe(world, func(w donburi.World, e reveal.TriggerEvent) {
		if e.Type == reveal.EventEnter {
			got = append(got, e)
		}
	})

	page.Scroll(964)
	if len(got) != 0 {
		t.Fatal("events delivered before ProcessEvents")
	}
	TriggerEventType.ProcessEvents(world)
	if len(got) != 1 {
		t.Fatalf("enter events = %d, want 1", len(got))
	}
	// (964 - 860) / (1900 - 860) = 0.1
	if p := got[0].Progress; p < 0.1-1e-9 || p > 0.1+1e-9 {
		t.Errorf("progress = %v, want 0.1", p)
	}
	if got[0].ScrollY != 964 || got[0].ElementID != el.ID || got[0].Name != "section" {
		t.Errorf("event = %+v", got[0])
	}
}
