package landing

import (
	"fmt"
	"math"

	"github.com/phanxgames/reveal"
)

// Section heights and spacing, in pixels.
const (
	navHeight      = 72.0
	cardWidth      = 360.0
	cardHeight     = 320.0
	cardGap        = 32.0
	stripPadding   = 48.0
	mobileCardH    = 220.0
	statsHeight    = 640.0
	statCardHeight = 200.0
	testimonialsH  = 600.0
	ctaHeight      = 420.0
	footerHeight   = 360.0
)

var (
	colorDark  = reveal.Color{R: 0.07, G: 0.09, B: 0.1, A: 1}
	colorGreen = reveal.Color{R: 0.13, G: 0.77, B: 0.37, A: 1}
	colorCard  = reveal.Color{R: 1, G: 1, B: 1, A: 0.9}
	colorMist  = reveal.Color{R: 0.95, G: 0.96, B: 0.97, A: 1}
	colorShade = reveal.Color{R: 0, G: 0, B: 0, A: 0.35}
	colorGlow  = reveal.Color{R: 0.2, G: 0.8, B: 0.6, A: 0.15}
)

type NavbarElements struct {
	Bar   *reveal.Element
	Links []*reveal.Element
}

type HeroElements struct {
	Section    *reveal.Element
	Background *reveal.Element
	Overlays   []*reveal.Element
	Content    *reveal.Element
	Heading    *reveal.Element
	Paragraph  *reveal.Element
	Button     *reveal.Element
	Floating   []*reveal.Element
}

type FeaturesElements struct {
	Section     *reveal.Element
	Heading     *reveal.Element
	Container   *reveal.Element
	Cards       []*reveal.Element
	Icons       []*reveal.Element
	Decorations []*reveal.Element
}

type StatsElements struct {
	Section   *reveal.Element
	Rocket    *reveal.Element
	Container *reveal.Element
	Cards     []*reveal.Element
	Values    []*reveal.Element
}

type TestimonialsElements struct {
	Section    *reveal.Element
	Background *reveal.Element
	Slides     *reveal.Element
	Slide      []*reveal.Element
	Layers     []*reveal.Element
}

type CTAElements struct {
	Section *reveal.Element
	Content *reveal.Element
	Button  *reveal.Element
}

type FooterElements struct {
	Section *reveal.Element
	Logo    *reveal.Element
	Columns []*reveal.Element
}

// Layout owns the element tree of the landing page and recomputes its
// geometry for a viewport size, the way CSS would reflow it.
type Layout struct {
	Content *Content

	Navbar       NavbarElements
	Hero         HeroElements
	Features     FeaturesElements
	Stats        StatsElements
	Testimonials TestimonialsElements
	CTA          CTAElements
	Footer       FooterElements

	page    *reveal.Page
	height  float64
	mobile  bool
	anchors map[string]float64
}

// Build creates the page's elements from content, attaches them to the
// page root, arranges them for the current viewport and installs itself as
// the page's layout pass.
func Build(page *reveal.Page, content *Content) *Layout {
	l := &Layout{Content: content, page: page, anchors: map[string]float64{}}
	root := page.Root()

	l.Navbar.Bar = box(root, "navbar", colorDark)
	l.Navbar.Bar.Fixed = true
	for i, item := range content.Nav {
		link := box(l.Navbar.Bar, fmt.Sprintf("navbar/link-%d", i), reveal.Color{})
		link.Text = item
		link.Fixed = true
		l.Navbar.Links = append(l.Navbar.Links, link)
	}

	h := &l.Hero
	h.Section = box(root, "hero", colorDark)
	h.Background = box(h.Section, "hero/bg", reveal.Color{R: 0.1, G: 0.3, B: 0.2, A: 1})
	for i := 0; i < content.Hero.Overlays; i++ {
		h.Overlays = append(h.Overlays, box(h.Section, fmt.Sprintf("hero/overlay-%d", i), colorShade))
	}
	for i := 0; i < content.Hero.Floating; i++ {
		h.Floating = append(h.Floating, box(h.Section, fmt.Sprintf("hero/float-%d", i), colorGlow))
	}
	h.Content = box(h.Section, "hero/content", reveal.Color{})
	h.Heading = text(h.Content, "hero/heading", content.Hero.Heading)
	h.Paragraph = text(h.Content, "hero/paragraph", content.Hero.Paragraph)
	h.Button = box(h.Content, "hero/button", colorGreen)
	h.Button.Text = content.Hero.Button

	f := &l.Features
	f.Section = box(root, "features", colorMist)
	for i := 0; i < content.Features.Decorations; i++ {
		f.Decorations = append(f.Decorations, box(f.Section, fmt.Sprintf("features/deco-%d", i), colorGlow))
	}
	f.Heading = text(f.Section, "features/heading", content.Features.Heading)
	f.Container = box(f.Section, "features/container", reveal.Color{})
	for i, item := range content.Features.Items {
		card := box(f.Container, fmt.Sprintf("features/card-%d", i), colorCard)
		card.Text = item.Title
		f.Cards = append(f.Cards, card)
		f.Icons = append(f.Icons, box(card, fmt.Sprintf("features/card-%d/icon", i), colorGreen))
	}

	s := &l.Stats
	s.Section = box(root, "stats", colorMist)
	s.Rocket = box(s.Section, "stats/rocket", reveal.Color{R: 0.8, G: 0.85, B: 0.9, A: 1})
	s.Container = box(s.Section, "stats/container", reveal.Color{})
	for i, st := range content.Stats {
		card := box(s.Container, fmt.Sprintf("stats/card-%d", i), colorCard)
		val := text(card, fmt.Sprintf("stats/value-%d", i), "")
		val.Suffix = st.Unit
		val.SetValue(0)
		s.Cards = append(s.Cards, card)
		s.Values = append(s.Values, val)
	}

	t := &l.Testimonials
	t.Section = box(root, "testimonials", colorMist)
	t.Background = box(t.Section, "testimonials/bg", reveal.Color{R: 0.9, G: 0.95, B: 0.92, A: 1})
	t.Background.BackgroundY = 50
	for i := 0; i < content.Testimonials.Layers; i++ {
		t.Layers = append(t.Layers, box(t.Section, fmt.Sprintf("testimonials/layer-%d", i), colorGlow))
	}
	t.Slides = box(t.Section, "testimonials/slides", reveal.Color{})
	for i, item := range content.Testimonials.Items {
		slide := box(t.Slides, fmt.Sprintf("testimonials/slide-%d", i), colorCard)
		slide.Text = item.Quote + "\n- " + item.Author + ", " + item.Role
		t.Slide = append(t.Slide, slide)
	}

	c := &l.CTA
	c.Section = box(root, "cta", colorDark)
	c.Section.BackgroundY = 50
	c.Content = text(c.Section, "cta/content", content.CTA.Heading)
	c.Button = box(c.Content, "cta/button", colorGreen)
	c.Button.Text = content.CTA.Button

	ft := &l.Footer
	ft.Section = box(root, "footer", colorDark)
	ft.Logo = text(ft.Section, "footer/logo", content.Brand)
	for i, col := range content.Footer.Columns {
		ft.Columns = append(ft.Columns, text(ft.Section, fmt.Sprintf("footer/col-%d", i), col.Title))
	}

	vp := page.Viewport()
	l.Arrange(vp.Width, vp.Height)
	page.Layout = l.Arrange
	return l
}

func box(parent *reveal.Element, name string, c reveal.Color) *reveal.Element {
	e := reveal.NewElement(name, reveal.Rect{})
	e.Color = c
	parent.AddChild(e)
	return e
}

func text(parent *reveal.Element, name, s string) *reveal.Element {
	e := box(parent, name, reveal.Color{})
	e.Text = s
	return e
}

// Mobile reports whether the last Arrange used the mobile layout.
func (l *Layout) Mobile() bool { return l.mobile }

// Height returns the document height, pin spacing included.
func (l *Layout) Height() float64 { return l.height }

// Anchor returns the top of a section by name: hero, features, stats,
// testimonials, cta or footer.
func (l *Layout) Anchor(name string) (float64, bool) {
	y, ok := l.anchors[name]
	return y, ok
}

// StripTravel is how far the desktop features strip must move for its last
// card to reach the viewport edge.
func (l *Layout) StripTravel() float64 {
	return math.Max(0, l.Features.Container.ContentWidth()-l.page.Viewport().Width)
}

// Arrange lays every section out for a w×h viewport and updates the page's
// content height.
func (l *Layout) Arrange(w, h float64) {
	l.mobile = reveal.IsMobileWidth(w)
	y := 0.0
	nav := &l.Navbar
	nav.Bar.SetBounds(reveal.Rect{Width: w, Height: navHeight})
	linkW := 120.0
	for i, link := range nav.Links {
		x := w - float64(len(nav.Links)-i)*linkW
		link.SetBounds(reveal.Rect{X: x, Y: 20, Width: linkW, Height: 32})
		link.Visible = !l.mobile
	}

	l.anchors["hero"] = y
	y = l.arrangeHero(w, h, y)
	l.anchors["features"] = y
	y = l.arrangeFeatures(w, h, y)
	l.anchors["stats"] = y
	y = l.arrangeStats(w, y)
	l.anchors["testimonials"] = y
	y = l.arrangeTestimonials(w, y)
	l.anchors["cta"] = y
	y = l.arrangeCTA(w, y)
	l.anchors["footer"] = y
	y = l.arrangeFooter(w, y)

	l.height = y
	l.page.SetContentHeight(y)
}

func (l *Layout) arrangeHero(w, h, y float64) float64 {
	hero := &l.Hero
	sec := reveal.Rect{Y: y, Width: w, Height: h}
	hero.Section.SetBounds(sec)
	hero.Background.SetBounds(sec)
	for _, o := range hero.Overlays {
		o.SetBounds(sec)
	}
	// Quarter and third positions, like the absolute decorations they mimic.
	spots := [][3]float64{{0.25, 0.25, 128}, {0.5, 0.6, 160}, {0.66, 0.5, 96}, {0.6, 0.33, 64}}
	for i, f := range hero.Floating {
		s := spots[i%len(spots)]
		f.SetBounds(reveal.Rect{X: w * s[0], Y: y + h*s[1], Width: s[2], Height: s[2]})
	}
	cw := math.Min(720, w-32)
	cx := (w - cw) / 2
	cy := y + h/2 - 140
	hero.Content.SetBounds(reveal.Rect{X: cx, Y: cy, Width: cw, Height: 280})
	hero.Heading.SetBounds(reveal.Rect{X: cx, Y: cy, Width: cw, Height: 120})
	hero.Paragraph.SetBounds(reveal.Rect{X: cx, Y: cy + 140, Width: cw, Height: 60})
	hero.Button.SetBounds(reveal.Rect{X: w/2 - 100, Y: cy + 220, Width: 200, Height: 56})
	return y + h
}

func (l *Layout) arrangeFeatures(w, h, y float64) float64 {
	f := &l.Features
	f.Heading.SetBounds(reveal.Rect{X: stripPadding, Y: y + 80, Width: w - 2*stripPadding, Height: 60})
	var height float64
	if l.mobile {
		cy := y + 180
		f.Container.SetBounds(reveal.Rect{Y: cy, Width: w, Height: float64(len(f.Cards)) * (mobileCardH + 16)})
		f.Container.ScrollWidth = 0
		for i, card := range f.Cards {
			r := reveal.Rect{X: 16, Y: cy + float64(i)*(mobileCardH+16), Width: w - 32, Height: mobileCardH}
			card.SetBounds(r)
			f.Icons[i].SetBounds(reveal.Rect{X: r.X + 16, Y: r.Y + 16, Width: 48, Height: 48})
		}
		height = 180 + f.Container.Bounds.Height + 80
	} else {
		cy := y + 180
		f.Container.SetBounds(reveal.Rect{Y: cy, Width: w, Height: cardHeight})
		n := float64(len(f.Cards))
		f.Container.ScrollWidth = 2*stripPadding + n*cardWidth + (n-1)*cardGap
		for i, card := range f.Cards {
			r := reveal.Rect{X: stripPadding + float64(i)*(cardWidth+cardGap), Y: cy, Width: cardWidth, Height: cardHeight}
			card.SetBounds(r)
			f.Icons[i].SetBounds(reveal.Rect{X: r.X + 24, Y: r.Y + 24, Width: 56, Height: 56})
		}
		height = math.Max(h, 180+cardHeight+80)
	}
	f.Section.SetBounds(reveal.Rect{Y: y, Width: w, Height: height})
	for i, d := range f.Decorations {
		size := 160.0 - float64(i)*30
		d.SetBounds(reveal.Rect{X: w * (0.1 + 0.35*float64(i)), Y: y + height*(0.15+0.3*float64(i%2)), Width: size, Height: size})
	}
	if !l.mobile {
		// Pinning holds the section for the strip's travel distance.
		height += l.StripTravel()
	}
	return y + height
}

func (l *Layout) arrangeStats(w, y float64) float64 {
	s := &l.Stats
	var height float64
	if l.mobile {
		s.Rocket.SetBounds(reveal.Rect{X: w/2 - 128, Y: y + 80, Width: 256, Height: 256})
		cy := y + 376
		s.Container.SetBounds(reveal.Rect{X: 16, Y: cy, Width: w - 32, Height: float64(len(s.Cards)) * (statCardHeight + 16)})
		for i, card := range s.Cards {
			r := reveal.Rect{X: 16, Y: cy + float64(i)*(statCardHeight+16), Width: w - 32, Height: statCardHeight}
			card.SetBounds(r)
			s.Values[i].SetBounds(reveal.Rect{X: r.X + 24, Y: r.Y + 24, Width: 160, Height: 64})
		}
		height = 376 + s.Container.Bounds.Height + 80
	} else {
		s.Rocket.SetBounds(reveal.Rect{X: w * 0.05, Y: y + 160, Width: 320, Height: 320})
		cx := w * 0.4
		cw := w*0.6 - stripPadding
		s.Container.SetBounds(reveal.Rect{X: cx, Y: y + 80, Width: cw, Height: 2*statCardHeight + 24})
		colW := (cw - 24) / 2
		for i, card := range s.Cards {
			r := reveal.Rect{
				X:      cx + float64(i%2)*(colW+24),
				Y:      y + 80 + float64(i/2)*(statCardHeight+24),
				Width:  colW,
				Height: statCardHeight,
			}
			card.SetBounds(r)
			s.Values[i].SetBounds(reveal.Rect{X: r.X + 24, Y: r.Y + 24, Width: 160, Height: 64})
		}
		height = statsHeight
	}
	s.Section.SetBounds(reveal.Rect{Y: y, Width: w, Height: height})
	return y + height
}

func (l *Layout) arrangeTestimonials(w, y float64) float64 {
	t := &l.Testimonials
	sec := reveal.Rect{Y: y, Width: w, Height: testimonialsH}
	t.Section.SetBounds(sec)
	t.Background.SetBounds(sec)
	sw := math.Min(800, w-96)
	slides := reveal.Rect{X: (w - sw) / 2, Y: y + 160, Width: sw, Height: 280}
	t.Slides.SetBounds(slides)
	for _, s := range t.Slide {
		s.SetBounds(slides)
	}
	for i, layer := range t.Layers {
		size := 200.0 + float64(i)*60
		layer.SetBounds(reveal.Rect{X: w*0.8*float64(i%2) + 20, Y: y + 60 + float64(i)*120, Width: size, Height: size})
	}
	return y + testimonialsH
}

func (l *Layout) arrangeCTA(w, y float64) float64 {
	c := &l.CTA
	c.Section.SetBounds(reveal.Rect{Y: y, Width: w, Height: ctaHeight})
	cw := math.Min(720, w-32)
	content := reveal.Rect{X: (w - cw) / 2, Y: y + 80, Width: cw, Height: 260}
	c.Content.SetBounds(content)
	c.Button.SetBounds(reveal.Rect{X: w/2 - 110, Y: content.Y + 180, Width: 220, Height: 56})
	return y + ctaHeight
}

func (l *Layout) arrangeFooter(w, y float64) float64 {
	ft := &l.Footer
	height := footerHeight
	cols := len(ft.Columns) + 1
	if l.mobile {
		height = 120 + float64(cols)*120
		ft.Logo.SetBounds(reveal.Rect{X: 16, Y: y + 48, Width: w - 32, Height: 80})
		for i, col := range ft.Columns {
			col.SetBounds(reveal.Rect{X: 16, Y: y + 168 + float64(i)*120, Width: w - 32, Height: 100})
		}
	} else {
		colW := (w - 2*stripPadding) / float64(cols)
		ft.Logo.SetBounds(reveal.Rect{X: stripPadding, Y: y + 48, Width: colW, Height: 120})
		for i, col := range ft.Columns {
			col.SetBounds(reveal.Rect{X: stripPadding + float64(i+1)*colW, Y: y + 48, Width: colW, Height: 160})
		}
	}
	ft.Section.SetBounds(reveal.Rect{Y: y, Width: w, Height: height})
	return y + height
}
