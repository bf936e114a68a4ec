package landing

import (
	"errors"
	"fmt"

	"github.com/phanxgames/reveal"
	"go.uber.org/zap"
)

// ErrUnknownAnchor is returned by Navigate for a section that does not exist.
var ErrUnknownAnchor = errors.New("landing: unknown anchor")

// scrolledThreshold is the scroll position past which the navbar switches
// to its compact style.
const scrolledThreshold = 20.0

// navigateDuration is the smooth-scroll time of anchor links, in seconds.
const navigateDuration = 0.8

var colorNavScrolled = reveal.Color{R: 0.07, G: 0.09, B: 0.1, A: 0.95}

// Navbar is the fixed top bar. It slides in on mount and tracks whether the
// page has scrolled past scrolledThreshold.
type Navbar struct {
	layout   *Layout
	page     *reveal.Page
	scrolled bool
}

func (n *Navbar) Name() string { return "navbar" }

func (n *Navbar) Mount(ctx *reveal.Context) error {
	n.page = ctx.Page()
	bar := n.layout.Navbar.Bar
	ctx.FromTo(els(bar),
		reveal.Props{reveal.PropY: -100, reveal.PropAlpha: 0},
		reveal.Props{reveal.PropY: 0, reveal.PropAlpha: 1},
		reveal.Vars{Duration: 0.6, Ease: easeOut3})

	n.setScrolled(ctx.Viewport().ScrollY > scrolledThreshold)
	ctx.OnScroll(func(y float64) {
		n.setScrolled(y > scrolledThreshold)
	})
	ctx.Defer(func() { n.setScrolled(false) })
	return nil
}

func (n *Navbar) setScrolled(v bool) {
	if v == n.scrolled {
		return
	}
	n.scrolled = v
	bar := n.layout.Navbar.Bar
	if v {
		bar.Color = colorNavScrolled
	} else {
		bar.Color = colorDark
	}
	bar.MarkDirty()
}

// Scrolled reports whether the page is scrolled past the navbar threshold.
func (n *Navbar) Scrolled() bool { return n.scrolled }

// Navigate smooth-scrolls so the named section sits just below the navbar.
func (n *Navbar) Navigate(anchor string) error {
	y, ok := n.layout.Anchor(anchor)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAnchor, anchor)
	}
	if n.page == nil {
		return fmt.Errorf("navigate %q: %w", anchor, reveal.ErrStaleBinding)
	}
	target := y - navHeight
	if target < 0 {
		target = 0
	}
	n.page.Logger().Debug("navigate", zap.String("anchor", anchor), zap.Float64("y", target))
	n.page.ScrollTo(target, navigateDuration)
	return nil
}
