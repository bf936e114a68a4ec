package reveal

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// pixel is a 1x1 white image scaled to fill element boxes.
var pixel *ebiten.Image

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(colorWhiteRGBA)
	}
	return pixel
}

// Renderer draws a page's element tree with Ebitengine: every visible element
// with a non-transparent Color is a filled box, and elements with Text get a
// label.
type Renderer struct {
	// ClearColor fills the screen before drawing.
	ClearColor Color
	// Font labels elements that carry Text. Nil disables labels.
	Font *TTFFont
	// CullEnabled skips elements outside the viewport.
	CullEnabled bool

	drawn int
}

// NewRenderer creates a renderer with culling enabled.
func NewRenderer(font *TTFFont) *Renderer {
	return &Renderer{
		ClearColor:  Color{R: 0.97, G: 0.97, B: 1, A: 1},
		Font:        font,
		CullEnabled: true,
	}
}

// Drawn returns how many elements the last Draw emitted.
func (r *Renderer) Drawn() int { return r.drawn }

// Draw renders the page as seen through its viewport.
func (r *Renderer) Draw(screen *ebiten.Image, p *Page) {
	if r.ClearColor.A > 0 {
		screen.Fill(r.ClearColor.rgba())
	}
	r.drawn = 0
	vp := p.viewport
	view := vp.computeViewMatrix()
	updateWorldTransform(p.root, identityTransform, 1, false)
	visible := vp.VisibleBounds()
	r.traverse(screen, p.root, view, visible)
}

// fixedView keeps fixed elements in place regardless of scroll.
var fixedView = identityTransform

// traverse walks the tree depth-first. Culling only suppresses the element's
// own box; children are always visited because presentation offsets can move
// them outside the parent.
func (r *Renderer) traverse(screen *ebiten.Image, e *Element, view [6]float64, visible Rect) {
	if !e.Visible || e.worldAlpha <= 0 {
		return
	}
	if e.Fixed {
		view = fixedView
		visible = Rect{Width: visible.Width, Height: visible.Height}
	}
	w, h := e.Width, e.Bounds.Height
	culled := r.CullEnabled && !worldAABB(e.worldTransform, w, h).Intersects(visible)
	if !culled && !e.root {
		m := multiplyAffine(view, e.worldTransform)
		if e.Color.A > 0 && w > 0 && h > 0 {
			var geo ebiten.GeoM
			geo.Scale(w, h)
			geo.Concat(geoM(m))
			op := &ebiten.DrawImageOptions{GeoM: geo}
			op.ColorScale.Scale(float32(e.Color.R), float32(e.Color.G), float32(e.Color.B),
				float32(e.Color.A*e.worldAlpha))
			screen.DrawImage(whitePixel(), op)
			r.drawn++
		}
		if e.Text != "" && r.Font != nil {
			op := &text.DrawOptions{}
			op.GeoM.Translate(8, 8)
			op.GeoM.Concat(geoM(m))
			op.ColorScale.ScaleAlpha(float32(e.worldAlpha))
			op.ColorScale.Scale(0.1, 0.1, 0.15, 1)
			op.LineSpacing = r.Font.LineHeight()
			text.Draw(screen, e.Text, r.Font.Face(), op)
		}
	}
	for _, c := range e.children {
		r.traverse(screen, c, view, visible)
	}
}

// geoM converts an affine matrix to an Ebitengine GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// worldAABB computes the axis-aligned bounding box for a rectangle of size (w, h)
// transformed by the given affine matrix. Zero allocations.
func worldAABB(transform [6]float64, w, h float64) Rect {
	a, b, cc, d, tx, ty := transform[0], transform[2], transform[1], transform[3], transform[4], transform[5]

	// Transform four corners: (0,0), (w,0), (w,h), (0,h)
	x0, y0 := tx, ty
	x1, y1 := a*w+tx, cc*w+ty
	x2, y2 := a*w+b*h+tx, cc*w+d*h+ty
	x3, y3 := b*h+tx, d*h+ty

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
