package ink

// layerIDCounter is a plain counter (no atomic, ink is single-threaded).
var layerIDCounter uint32

func nextLayerID() uint32 {
	layerIDCounter++
	return layerIDCounter
}

// Layer is the render-tree element ripples draw into. A layer is positioned
// by its center (Position, in the parent's coordinate space) and sized by
// Bounds. When Radius > 0 it draws a filled circle of that radius centered in
// its bounds, scaled by Scale and faded by Opacity.
//
// Fields are the model values. While an animation runs, the displayed value
// comes from the Timeline; see PresentationOpacity and friends.
type Layer struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Layer
	children []*Layer

	// Geometry
	Position Vec2
	Bounds   Size
	Scale    float64
	Opacity  float64

	// Shape
	Radius        float64
	FillColor     Color
	MasksToBounds bool

	// Animations attached by a Timeline, keyed like Timeline.Schedule.
	animations map[string]*Handle
	presented  bool
	pres       presentation

	disposed bool
}

// presentation holds the values last written by the Timeline.
type presentation struct {
	opacity  float64
	scale    float64
	position Vec2
}

// NewLayer creates an empty layer with unit scale and full opacity.
func NewLayer(name string) *Layer {
	return &Layer{
		ID:      nextLayerID(),
		Name:    name,
		Scale:   1,
		Opacity: 1,
	}
}

// Frame returns the layer's rectangle in its parent's coordinate space.
func (l *Layer) Frame() Rect {
	return Rect{
		X:      l.Position.X - l.Bounds.Width/2,
		Y:      l.Position.Y - l.Bounds.Height/2,
		Width:  l.Bounds.Width,
		Height: l.Bounds.Height,
	}
}

// SetFrame positions and sizes the layer so that Frame() == r.
func (l *Layer) SetFrame(r Rect) {
	l.Bounds = r.Size()
	l.Position = r.Center()
}

// LocalBounds returns the layer's rectangle in its own coordinate space.
func (l *Layer) LocalBounds() Rect {
	return Rect{Width: l.Bounds.Width, Height: l.Bounds.Height}
}

// --- Tree manipulation ---

// AddChild appends child to this layer's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this layer (cycle).
func (l *Layer) AddChild(child *Layer) {
	if child == nil {
		panic("ink: cannot add nil layer")
	}
	if globalDebug {
		debugCheckDisposed(l, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, l) {
		panic("ink: adding layer would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = l
	l.children = append(l.children, child)
	if globalDebug {
		debugCheckChildCount(l)
	}
}

// RemoveChild detaches child from this layer.
// Panics if child.Parent != l.
func (l *Layer) RemoveChild(child *Layer) {
	if child.Parent != l {
		panic("ink: layer's parent is not this layer")
	}
	l.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this layer from its parent.
// No-op if this layer has no parent.
func (l *Layer) RemoveFromParent() {
	if l.Parent == nil {
		return
	}
	l.Parent.RemoveChild(l)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (l *Layer) Children() []*Layer {
	return l.children
}

// NumChildren returns the number of children.
func (l *Layer) NumChildren() int {
	return len(l.children)
}

// --- Animations ---

// Animation returns the handle attached under key, or nil.
func (l *Layer) Animation(key string) *Handle {
	return l.animations[key]
}

// NumAnimations returns how many animations are attached.
func (l *Layer) NumAnimations() int {
	return len(l.animations)
}

// RemoveAllAnimations cancels every attached animation. Completion
// callbacks of removed animations do not run.
func (l *Layer) RemoveAllAnimations() {
	for _, h := range l.animations {
		h.detach()
	}
	clear(l.animations)
}

func (l *Layer) attach(key string, h *Handle) {
	if l.animations == nil {
		l.animations = make(map[string]*Handle, 3)
	}
	if old, ok := l.animations[key]; ok && old != h {
		old.detach()
	}
	l.animations[key] = h
}

func (l *Layer) release(key string, h *Handle) {
	if l.animations[key] == h {
		delete(l.animations, key)
	}
}

// animating reports whether a started animation drives the given channel.
func (l *Layer) animating(ch Channel) bool {
	for _, h := range l.animations {
		if h.run != nil && h.run.started && h.run.anim.Channel == ch {
			return true
		}
	}
	return false
}

// PresentationOpacity returns the opacity currently on screen. ok is false
// when the layer has not been composited since its animations were added.
func (l *Layer) PresentationOpacity() (v float64, ok bool) {
	if !l.presented {
		return 0, false
	}
	if l.animating(ChannelOpacity) {
		return l.pres.opacity, true
	}
	return l.Opacity, true
}

// PresentationScale returns the scale currently on screen.
func (l *Layer) PresentationScale() (v float64, ok bool) {
	if !l.presented {
		return 0, false
	}
	if l.animating(ChannelScale) {
		return l.pres.scale, true
	}
	return l.Scale, true
}

// PresentationPosition returns the position currently on screen.
func (l *Layer) PresentationPosition() (v Vec2, ok bool) {
	if !l.presented {
		return Vec2{}, false
	}
	if l.animating(ChannelPosition) {
		return l.pres.position, true
	}
	return l.Position, true
}

// displayed returns the values a renderer should draw, falling back to the
// model when nothing has been composited yet.
func (l *Layer) displayed() (opacity, scale float64, position Vec2) {
	opacity, scale, position = l.Opacity, l.Scale, l.Position
	if !l.presented {
		return
	}
	if l.animating(ChannelOpacity) {
		opacity = l.pres.opacity
	}
	if l.animating(ChannelScale) {
		scale = l.pres.scale
	}
	if l.animating(ChannelPosition) {
		position = l.pres.position
	}
	return
}

// --- Disposal ---

// Dispose removes this layer from its parent, cancels its animations,
// marks it as disposed, and recursively disposes all descendants.
func (l *Layer) Dispose() {
	if l.disposed {
		return
	}
	l.RemoveFromParent()
	l.dispose()
}

func (l *Layer) dispose() {
	l.disposed = true
	l.ID = 0
	l.RemoveAllAnimations()
	for _, child := range l.children {
		child.Parent = nil
		child.dispose()
	}
	l.children = nil
	l.Parent = nil
}

// IsDisposed returns true if this layer has been disposed.
func (l *Layer) IsDisposed() bool {
	return l.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of layer.
func isAncestor(candidate, layer *Layer) bool {
	for p := layer; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from l.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (l *Layer) removeChildByPtr(child *Layer) {
	for i, c := range l.children {
		if c == child {
			copy(l.children[i:], l.children[i+1:])
			l.children[len(l.children)-1] = nil
			l.children = l.children[:len(l.children)-1]
			return
		}
	}
}
