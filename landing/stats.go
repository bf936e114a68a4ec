package landing

import (
	"fmt"
	"time"

	"github.com/phanxgames/reveal"
	"go.uber.org/zap"
)

// countDuration is how long a stat takes to count up to its value.
const countDuration = 2000 * time.Millisecond

// Statistics slides the stat cards in and counts every figure up from zero
// when the cards come into view.
type Statistics struct {
	layout   *Layout
	counters []*reveal.Counter
}

func (s *Statistics) Name() string { return "stats" }

// Counters returns the counters of the current mount, empty until the cards
// have been entered.
func (s *Statistics) Counters() []*reveal.Counter { return s.counters }

func (s *Statistics) Mount(ctx *reveal.Context) error {
	e := &s.layout.Stats
	stats := s.layout.Content.Stats
	s.counters = nil

	rocket := ctx.Timeline(reveal.Vars{Ease: easeOut3}).FromTo(els(e.Rocket),
		reveal.Props{reveal.PropX: -100, reveal.PropAlpha: 0, reveal.PropRotation: -5},
		reveal.Props{reveal.PropX: 0, reveal.PropAlpha: 1, reveal.PropRotation: 0},
		reveal.Vars{Duration: 1})
	entrance(ctx, "stats-rocket", e.Section, "top 80%", rocket)

	cards := ctx.Timeline(reveal.Vars{Ease: easeBack}).FromTo(e.Cards,
		reveal.Props{reveal.PropX: 100, reveal.PropAlpha: 0},
		reveal.Props{reveal.PropX: 0, reveal.PropAlpha: 1},
		reveal.Vars{Duration: 0.8, Stagger: 0.2})
	// Counting starts on every forward entry, so scrolling back above the
	// section and down again replays the figures.
	ctx.ScrollTrigger(reveal.TriggerConfig{
		Name:      "stats-cards",
		Trigger:   e.Container,
		Start:     reveal.MustOffset("top 80%"),
		Animation: cards,
		OnEnter:   func(*reveal.Trigger) { s.count(ctx, e, stats) },
	})

	ctx.To(els(e.Rocket), reveal.Props{reveal.PropY: 20}, reveal.Vars{
		Duration: 2,
		Repeat:   reveal.RepeatForever,
		Yoyo:     true,
		Ease:     easeInOut1,
	})

	for i, card := range e.Cards {
		drift := ctx.Timeline(reveal.Vars{Ease: easeLinear}).FromTo(els(card),
			reveal.Props{reveal.PropY: 10},
			reveal.Props{reveal.PropY: -10 + 5*float64(i)},
			reveal.Vars{Duration: 1, Delay: 0.1 * float64(i)})
		scrubbed(ctx, fmt.Sprintf("stats-card-%d", i), card, "", "", 0, drift)
	}
	return nil
}

func (s *Statistics) count(ctx *reveal.Context, e *StatsElements, stats []Stat) {
	if len(s.counters) > 0 {
		for _, c := range s.counters {
			c.Restart()
		}
		return
	}
	for i, el := range e.Values {
		s.counters = append(s.counters, ctx.AnimateValue(el, 0, stats[i].Value, countDuration))
	}
	ctx.Logger().Debug("counting stats", zap.Int("counters", len(s.counters)))
}
