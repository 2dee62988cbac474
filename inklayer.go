package ink

import (
	"math"

	"github.com/tanema/gween/ease"
)

// InkLayer timings, in seconds.
const (
	inkCommonDuration         = 0.083
	inkEndFadeOutDuration     = 0.15
	inkStartScaleDuration     = 0.333
	inkStartFadeHalfDuration  = 0.167
	inkStartFadeHalfBeginTime = 0.25

	inkScaleStartMin = 0.2
	inkScaleStartMax = 0.6
	inkScaleDivisor  = 300.0
)

const (
	inkStartScaleKey    = "inkStartScale"
	inkStartPositionKey = "inkStartPosition"
	inkStartOpacityKey  = "inkStartOpacity"
	inkChangeKey        = "inkChange"
	inkEndKey           = "inkEnd"
)

// InkLayer is the single-ripple ink: one circle that spreads from the touch
// point toward the center of its bounds, follows the touch in and out of the
// bounds, and fades on release.
//
// Points passed to Start, Change and End are in the same coordinate space as
// the bounds given to SetBounds.
type InkLayer struct {
	ID RippleID

	// EndAnimationDelay delays the release fade, in seconds. While the start
	// animation is still running End waits 0.25s instead.
	EndAnimationDelay float32

	// InitialRadius and FinalRadius are derived from the bounds by SetBounds.
	InitialRadius float64
	FinalRadius   float64

	// MaxRippleRadius, when > 0, replaces FinalRadius as the drawn radius.
	MaxRippleRadius float64

	InkColor Color
	Delegate Delegate

	layer    *Layer
	timeline *Timeline
	bounds   Rect

	startActive bool
	started     bool
	ended       bool
}

// NewInkLayer creates an ink layer animated by timeline.
// Panics if timeline is nil.
func NewInkLayer(timeline *Timeline) *InkLayer {
	if timeline == nil {
		panic("ink: NewInkLayer requires a Timeline")
	}
	return &InkLayer{
		ID:       nextRippleID(),
		InkColor: DefaultInkColor,
		layer:    NewLayer("inkLayer"),
		timeline: timeline,
	}
}

// Clone returns a new ink layer with the same configuration and a fresh ID.
// Animation state and the delegate are not copied.
func (k *InkLayer) Clone() *InkLayer {
	c := NewInkLayer(k.timeline)
	c.EndAnimationDelay = k.EndAnimationDelay
	c.InitialRadius = k.InitialRadius
	c.FinalRadius = k.FinalRadius
	c.MaxRippleRadius = k.MaxRippleRadius
	c.InkColor = k.InkColor
	c.bounds = k.bounds
	c.layer.SetFrame(k.bounds)
	return c
}

// Layer returns the shape layer.
func (k *InkLayer) Layer() *Layer {
	return k.layer
}

// Bounds returns the rect set by SetBounds.
func (k *InkLayer) Bounds() Rect {
	return k.bounds
}

// SetBounds sizes the layer to b and derives the radii from its diagonal.
func (k *InkLayer) SetBounds(b Rect) {
	k.bounds = b
	k.layer.SetFrame(b)
	half := b.Hypot() / 2
	k.InitialRadius = half * 0.6
	k.FinalRadius = half + 10
}

// StartAnimationActive reports whether the start spread is still running.
func (k *InkLayer) StartAnimationActive() bool {
	return k.startActive
}

// Started reports whether Start has been called.
func (k *InkLayer) Started() bool {
	return k.started
}

// Ended reports whether End has run.
func (k *InkLayer) Ended() bool {
	return k.ended
}

// radius returns the drawn circle radius.
func (k *InkLayer) radius() float64 {
	if k.MaxRippleRadius > 0 {
		return k.MaxRippleRadius
	}
	return k.FinalRadius
}

// startScale is the scale the animated spread begins at, proportional to the
// shorter side of the bounds.
func (k *InkLayer) startScale() float64 {
	s := math.Min(k.bounds.Width, k.bounds.Height) / inkScaleDivisor
	return math.Max(inkScaleStartMin, math.Min(inkScaleStartMax, s))
}

// Start draws the ink and, when animated, spreads it from point to the center
// of the bounds. The start notification fires before Start returns.
func (k *InkLayer) Start(point Vec2, animated bool) {
	l := k.layer
	l.Radius = k.radius()
	l.FillColor = k.InkColor
	center := k.bounds.Center()
	k.started = true

	if !animated {
		l.Opacity = 1
		l.Scale = 1
		l.Position = center
	} else {
		l.Opacity = 0
		l.Position = point
		k.startActive = true

		done := join(3, func() { k.startActive = false })
		k.timeline.Schedule(l, inkStartScaleKey, Animation{
			Channel:  ChannelScale,
			From:     k.startScale(),
			To:       1,
			Duration: inkStartScaleDuration,
			Delay:    inkCommonDuration,
			Curve:    MaterialEaseInOut,
		}, done)
		k.timeline.Schedule(l, inkStartPositionKey, Animation{
			Channel:   ChannelPosition,
			FromPoint: point,
			ToPoint:   center,
			Duration:  inkStartScaleDuration,
			Delay:     inkCommonDuration,
			Curve:     MaterialEaseInOut,
		}, done)
		k.timeline.Schedule(l, inkStartOpacityKey, Animation{
			Channel:  ChannelOpacity,
			From:     0,
			To:       1,
			Duration: inkCommonDuration,
			Delay:    inkCommonDuration,
			Curve:    ease.Linear,
		}, done)
	}

	debugf("ink layer %d start at (%.1f, %.1f) radius %.1f animated=%t", k.ID, point.X, point.Y, l.Radius, animated)
	if k.Delegate != nil {
		k.Delegate.AnimationDidStart(k.ID)
	}
}

// Change fades the ink in while point is inside the bounds and out while it
// is outside. While the start spread runs the fade waits for it.
func (k *InkLayer) Change(point Vec2) {
	if k.ended {
		return
	}
	var delay float32
	if k.startActive {
		delay = inkStartFadeHalfBeginTime + inkStartFadeHalfDuration
	}
	target := 0.0
	if k.bounds.Contains(point) {
		target = 1
	}
	current, ok := k.layer.PresentationOpacity()
	if !ok {
		current = 0
	}
	k.timeline.Schedule(k.layer, inkChangeKey, Animation{
		Channel:  ChannelOpacity,
		From:     current,
		To:       target,
		Duration: inkCommonDuration,
		Delay:    delay,
		Curve:    ease.Linear,
	}, nil)
}

// End fades the ink out from full opacity if point is inside the bounds, or
// from zero if it is not. Once the fade finishes the end notification fires
// and then the layer is detached. Calls after the first are ignored.
func (k *InkLayer) End(point Vec2, animated bool) {
	if k.ended {
		return
	}
	k.ended = true
	delay := k.EndAnimationDelay
	if k.startActive {
		delay = inkStartFadeHalfBeginTime
	}
	from := 1.0
	if !k.bounds.Contains(point) {
		from = 0
	}

	if !animated {
		k.layer.RemoveAllAnimations()
		k.startActive = false
		k.layer.Opacity = 0
		k.finish()
		return
	}

	k.layer.Opacity = 0
	k.timeline.Schedule(k.layer, inkEndKey, Animation{
		Channel:  ChannelOpacity,
		From:     from,
		To:       0,
		Duration: inkEndFadeOutDuration,
		Delay:    delay,
		Curve:    ease.Linear,
	}, k.finish)
	// The fade is the only opacity animation from here on.
	for _, key := range []string{inkChangeKey, inkStartOpacityKey} {
		if h := k.layer.Animation(key); h != nil {
			h.Cancel()
		}
	}
}

// finish notifies the delegate and detaches the layer.
func (k *InkLayer) finish() {
	debugf("ink layer %d end", k.ID)
	if k.Delegate != nil {
		k.Delegate.AnimationDidEnd(k.ID)
	}
	k.layer.RemoveAllAnimations()
	k.startActive = false
	k.layer.RemoveFromParent()
}
