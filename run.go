package reveal

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws the debug overlay.
	ShowFPS bool
	// Font is TTF data for element labels. Defaults to Go Regular.
	Font     []byte
	FontSize float64
}

// game adapts a Page to ebiten.Game.
type game struct {
	page     *Page
	renderer *Renderer
	overlay  *debugOverlay
}

// Run opens a window and drives the page until the window closes: wheel and
// keyboard input scroll it, window resizes resize it, and every tick advances
// its animations by 1/TPS seconds.
func Run(p *Page, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = int(p.viewport.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(p.viewport.Height)
	}
	if cfg.Font == nil {
		cfg.Font = goregular.TTF
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = 16
	}
	font, err := LoadTTFFont(cfg.Font, cfg.FontSize)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	g := &game{page: p, renderer: NewRenderer(font)}
	if cfg.ShowFPS || p.debug {
		g.overlay = &debugOverlay{}
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	if g.page.Pending() == 0 {
		g.page.processInput()
	}
	dt := 1.0 / float64(ebiten.TPS())
	g.page.Update(dt)
	if g.overlay != nil {
		g.overlay.update(dt, g.page)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.page)
	if g.overlay != nil {
		g.overlay.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.page.viewport.Width || h != g.page.viewport.Height {
		g.page.Resize(w, h)
	}
	return outsideWidth, outsideHeight
}
