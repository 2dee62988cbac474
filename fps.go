package ink

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsOverlay draws FPS, TPS and timeline counts in the top-left corner.
// The text is refreshed every ~0.5 seconds.
type statsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func (o *statsOverlay) update(dt float64, t *Timeline, views []*InkView) {
	if o.img == nil {
		// 140x48 is enough for four short lines.
		o.img = ebiten.NewImage(140, 48)
	}
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	ripples := 0
	for _, v := range views {
		ripples += v.legacy.Len()
	}

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nanims: %d\nripples: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), t.Len(), ripples))
}

func (o *statsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		return
	}
	screen.DrawImage(o.img, nil)
}
