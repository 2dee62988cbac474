package ink

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the view's ink onto dst. The view's frame is interpreted in
// dst's pixel space.
func (v *InkView) Draw(dst *ebiten.Image) {
	DrawCommands(dst, v.RenderCommands())
}

// DrawLayer renders l and its descendants onto dst, with origin as the
// top-left corner of l's parent.
func DrawLayer(dst *ebiten.Image, l *Layer, origin Vec2) {
	DrawCommands(dst, AppendRenderCommands(nil, l, origin))
}

// DrawCommands fills each command's circle on dst, clipping through a
// sub-image when the command carries a clip rect.
func DrawCommands(dst *ebiten.Image, cmds []RenderCommand) {
	for i := range cmds {
		c := &cmds[i]
		target := dst
		if !c.Clip.IsNull() {
			r := image.Rect(
				int(math.Floor(c.Clip.X)),
				int(math.Floor(c.Clip.Y)),
				int(math.Ceil(c.Clip.X+c.Clip.Width)),
				int(math.Ceil(c.Clip.Y+c.Clip.Height)),
			).Intersect(dst.Bounds())
			if r.Empty() {
				continue
			}
			target = dst.SubImage(r).(*ebiten.Image)
		}
		vector.DrawFilledCircle(target,
			float32(c.Center.X), float32(c.Center.Y), float32(c.Radius),
			c.Color.premultiplied(), true)
	}
}
