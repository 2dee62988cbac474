package ink

import "time"

// Ripple is one legacy ink ripple: its lifecycle state and the data needed to
// draw and animate it. A Ripple never points back at the view that owns it;
// it knows only its container layer and its ID.
type Ripple struct {
	ID    RippleID
	State RippleState

	Radius      float64
	Point       Vec2 // touch location in the container's coordinate space
	TargetFrame Rect // container frame at spread time
	Color       Color

	Bounded            bool
	MaxRadius          float64 // <= 0 means unconstrained
	SpreadDuration     time.Duration
	EvaporateDuration  time.Duration
	UseCustomCenter    bool
	CustomCenter       Vec2
	UseLinearExpansion bool

	layer            *Layer
	container        *Layer
	animationCleared bool
}

// newRipple creates a ripple in the None state that will attach its shape
// layer to container on Enter.
func newRipple(container *Layer) Ripple {
	if container == nil {
		panic("ink: ripple requires a container layer")
	}
	id := nextRippleID()
	return Ripple{
		ID:               id,
		State:            RippleNone,
		Bounded:          true,
		layer:            NewLayer("ripple"),
		container:        container,
		animationCleared: true,
	}
}

// Layer returns the ripple's shape layer.
func (r *Ripple) Layer() *Layer {
	return r.layer
}

// AnimationCleared reports whether all of the ripple's animations have been
// removed. It is false from Enter until the ripple is torn down.
func (r *Ripple) AnimationCleared() bool {
	return r.animationCleared
}

// setupRipple sizes the shape layer to a circle of diameter 2*Radius sitting
// at the layer's local origin and fills it with Color.
func (r *Ripple) setupRipple() {
	dim := r.Radius * 2
	r.layer.SetFrame(Rect{Width: dim, Height: dim})
	r.layer.Radius = r.Radius
	r.layer.FillColor = r.Color
}

// Enter attaches the ripple to its container and starts spreading. It is
// legal only from None or Complete and reports whether it took effect.
func (r *Ripple) Enter(animated bool) bool {
	if r.State != RippleNone && r.State != RippleComplete {
		debugf("ripple %d: enter ignored in state %s", r.ID, r.State)
		return false
	}
	r.State = RippleSpreading
	r.container.AddChild(r.layer)
	r.animationCleared = false
	return true
}

// Exit marks the ripple Complete unless it was cancelled. Cancelled is
// sticky.
func (r *Ripple) Exit(animated bool) {
	if r.State != RippleCancelled {
		r.State = RippleComplete
	}
}

// forceCancel moves a ripple that has not finished to Cancelled. A ripple
// that already exited normally stays Complete.
func (r *Ripple) forceCancel() bool {
	switch r.State {
	case RippleNone, RippleSpreading:
		r.State = RippleCancelled
		return true
	case RippleCancelled:
		return true
	default:
		return false
	}
}

// removeAllAnimations detaches every animation on the shape layer.
func (r *Ripple) removeAllAnimations() {
	r.layer.RemoveAllAnimations()
	r.animationCleared = true
}
