package reveal

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayInterval is how often the debug overlay text is rebuilt, in seconds.
const overlayInterval = 0.5

// debugOverlay prints FPS, TPS and scroll state in the top-left corner. The
// text is refreshed every ~0.5 seconds.
type debugOverlay struct {
	lastUpdate float64
	text       string
}

func (o *debugOverlay) update(dt float64, p *Page) {
	o.lastUpdate += dt
	if o.text != "" && o.lastUpdate < overlayInterval {
		return
	}
	o.lastUpdate = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nscroll: %.0f\ntriggers: %d\nreloads: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), p.viewport.ScrollY, p.Triggers(), p.reloads)
}

func (o *debugOverlay) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, o.text)
}
