package reveal

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestWorldAABBIdentity(t *testing.T) {
	got := worldAABB([6]float64{1, 0, 0, 1, 10, 20}, 100, 50)
	if got != (Rect{X: 10, Y: 20, Width: 100, Height: 50}) {
		t.Errorf("AABB = %+v", got)
	}
}

func TestWorldAABBRotated(t *testing.T) {
	// 90 degrees: (w, h) = (100, 50) becomes 50 wide, 100 tall.
	got := worldAABB([6]float64{0, 1, -1, 0, 0, 0}, 100, 50)
	assertNear(t, "X", got.X, -50)
	assertNear(t, "Width", got.Width, 50)
	assertNear(t, "Height", got.Height, 100)
}

func TestGeoMMatchesAffine(t *testing.T) {
	m := [6]float64{2, 0.5, -0.5, 3, 10, 20}
	g := geoM(m)
	x, y := g.Apply(4, 7)
	wx, wy := transformPoint(m, 4, 7)
	assertNear(t, "x", x, wx)
	assertNear(t, "y", y, wy)
}

func newRenderPage(t *testing.T) *Page {
	t.Helper()
	p := newTestPage(t, 1000, 800)
	addBox(p, "above", Rect{Y: 100, Width: 1000, Height: 100})
	addBox(p, "onscreen", Rect{Y: 2100, Width: 1000, Height: 100})
	nav := addBox(p, "nav", Rect{Width: 1000, Height: 72})
	nav.Fixed = true
	hidden := addBox(p, "hidden", Rect{Y: 2200, Width: 100, Height: 100})
	hidden.Visible = false
	faded := addBox(p, "faded", Rect{Y: 2300, Width: 100, Height: 100})
	faded.Set(PropAlpha, 0)
	p.Scroll(2000)
	return p
}

func TestRendererCullsOffscreen(t *testing.T) {
	p := newRenderPage(t)
	screen := ebiten.NewImage(1000, 800)
	r := NewRenderer(nil)
	r.Draw(screen, p)
	// onscreen and the fixed nav.
	if r.Drawn() != 2 {
		t.Errorf("Drawn = %d, want 2", r.Drawn())
	}
}

func TestRendererCullingDisabled(t *testing.T) {
	p := newRenderPage(t)
	screen := ebiten.NewImage(1000, 800)
	r := NewRenderer(nil)
	r.CullEnabled = false
	r.Draw(screen, p)
	if r.Drawn() != 3 {
		t.Errorf("Drawn = %d, want 3", r.Drawn())
	}
}

func TestRendererSkipsTransparentColor(t *testing.T) {
	p := newTestPage(t, 1000, 800)
	box := addBox(p, "box", Rect{Width: 100, Height: 100})
	box.Color = Color{}
	screen := ebiten.NewImage(1000, 800)
	r := NewRenderer(nil)
	r.Draw(screen, p)
	if r.Drawn() != 0 {
		t.Errorf("Drawn = %d, want 0", r.Drawn())
	}
}
