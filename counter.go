package reveal

import (
	"math"
	"strconv"
	"time"
)

// CounterAnimation counts a number from Start to End over Duration. It is a
// pure function of elapsed time.
type CounterAnimation struct {
	Start    float64
	End      float64
	Duration time.Duration
	Suffix   string
}

// ValueAt returns floor(progress × (End-Start) + Start) where progress is
// elapsed/Duration clamped to 1. At or after Duration it is exactly End.
func (a CounterAnimation) ValueAt(elapsed time.Duration) int {
	if a.Duration <= 0 || elapsed >= a.Duration {
		return int(math.Floor(a.End))
	}
	if elapsed <= 0 {
		return int(math.Floor(a.Start))
	}
	progress := float64(elapsed) / float64(a.Duration)
	return int(math.Floor(progress*(a.End-a.Start) + a.Start))
}

// Text renders the value at elapsed followed by the suffix, e.g. "98%".
func (a CounterAnimation) Text(elapsed time.Duration) string {
	return strconv.Itoa(a.ValueAt(elapsed)) + a.Suffix
}

// Counter drives an element's numeric content with a CounterAnimation.
type Counter struct {
	el      *Element
	anim    CounterAnimation
	elapsed time.Duration
	done    bool
	killed  bool
}

func newCounter(el *Element, anim CounterAnimation) *Counter {
	c := &Counter{el: el, anim: anim}
	c.write()
	return c
}

// Animation returns the counter's animation.
func (c *Counter) Animation() CounterAnimation { return c.anim }

// Elapsed returns the time counted so far.
func (c *Counter) Elapsed() time.Duration { return c.elapsed }

// Done reports whether the end value has been written.
func (c *Counter) Done() bool { return c.done }

// Value returns the current counted value.
func (c *Counter) Value() int { return c.anim.ValueAt(c.elapsed) }

// Restart counts again from Start.
func (c *Counter) Restart() {
	if c.killed {
		return
	}
	c.elapsed = 0
	c.done = false
	c.write()
}

// Kill stops the counter where it is.
func (c *Counter) Kill() { c.killed = true }

// Update advances the counter by dt seconds.
func (c *Counter) Update(dt float64) {
	if c.done || c.killed {
		return
	}
	c.elapsed += time.Duration(dt * float64(time.Second))
	if c.elapsed >= c.anim.Duration {
		c.elapsed = c.anim.Duration
		c.done = true
	}
	c.write()
}

func (c *Counter) write() {
	if !c.el.IsAttached() {
		return
	}
	v := c.anim.ValueAt(c.elapsed)
	c.el.Value = float64(v)
	c.el.Suffix = c.anim.Suffix
	c.el.Text = strconv.Itoa(v) + c.anim.Suffix
	c.el.dirty = true
}

// tick keeps a finished counter registered so Restart can reuse it; only
// Kill drops it from the engine.
func (c *Counter) tick(dt float64) bool {
	c.Update(dt)
	return !c.killed
}
