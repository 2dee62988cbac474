package ink

import "math"

// RenderCommand is one filled circle emitted while walking a layer tree.
// Coordinates are in the space the tree's root was walked from.
type RenderCommand struct {
	Center Vec2
	Radius float64

	// Color has the accumulated opacity of the layer and its ancestors folded
	// into its alpha.
	Color Color

	// Clip is the rectangle the circle must be clipped to, or RectNull.
	Clip Rect
}

// RenderCommands walks the view's layers and returns the circles to draw,
// back to front, in the coordinate space of the view's parent.
func (v *InkView) RenderCommands() []RenderCommand {
	return AppendRenderCommands(nil, v.root, Vec2{})
}

// AppendRenderCommands walks l and its descendants, appending one command per
// visible circle. origin is the top-left corner of l's parent.
func AppendRenderCommands(cmds []RenderCommand, l *Layer, origin Vec2) []RenderCommand {
	return traverse(cmds, l, origin, 1, RectNull)
}

func traverse(cmds []RenderCommand, l *Layer, origin Vec2, parentAlpha float64, clip Rect) []RenderCommand {
	opacity, scale, pos := l.displayed()
	alpha := parentAlpha * opacity
	if alpha <= 0 {
		return cmds
	}

	center := origin.Add(pos)
	topLeft := Vec2{X: center.X - l.Bounds.Width/2, Y: center.Y - l.Bounds.Height/2}
	if l.MasksToBounds {
		clip = intersectRect(clip, Rect{X: topLeft.X, Y: topLeft.Y, Width: l.Bounds.Width, Height: l.Bounds.Height})
		if clip.IsEmpty() {
			return cmds
		}
	}

	if r := l.Radius * scale; r > 0 && l.FillColor.A > 0 {
		cmds = append(cmds, RenderCommand{
			Center: center,
			Radius: r,
			Color:  l.FillColor.WithAlpha(alpha),
			Clip:   clip,
		})
	}
	for _, child := range l.children {
		cmds = traverse(cmds, child, topLeft, alpha, clip)
	}
	return cmds
}

// intersectRect returns the overlap of a and b. A null rect places no limit.
func intersectRect(a, b Rect) Rect {
	if a.IsNull() {
		return b
	}
	if b.IsNull() {
		return a
	}
	x0 := math.Max(a.X, b.X)
	y0 := math.Max(a.Y, b.Y)
	x1 := math.Min(a.X+a.Width, b.X+b.Width)
	y1 := math.Min(a.Y+a.Height, b.Y+b.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
