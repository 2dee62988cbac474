package ink

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// Foreground ripple timings, in seconds unless noted.
const (
	boundedOpacityExitDuration    = 0.4
	boundedPositionExitDuration   = 0.3
	boundedRadiusExitDuration     = 0.8
	radiusGrowthMultiplier        = 350.0
	unboundedEnterDelay           = 0.08
	unboundedOpacityEnterDuration = 0.12
	waveTouchDownAcceleration     = 1024.0
	waveTouchUpAcceleration       = 3400.0

	// centerOffsetFraction is how far a bounded ripple drifts toward the
	// center of its target while it exits.
	centerOffsetFraction = 0.3

	// randomResolution is the number of distinct radius jitter steps.
	randomResolution = 10000
)

const (
	foregroundOpacityKey  = "foregroundOpacityAnim"
	foregroundPositionKey = "foregroundPositionAnim"
	foregroundScaleKey    = "foregroundScaleAnim"
)

// ForegroundRipple is a Ripple that drives its own spread and exit
// animations on a Timeline. When its exit finishes it reports back through
// onFinish with whether the end notification is allowed.
type ForegroundRipple struct {
	Ripple

	timeline *Timeline
	onFinish func(id RippleID, notify bool)

	exiting  bool
	finished bool
	pending  int
	notify   bool
}

func newForegroundRipple(container *Layer, timeline *Timeline, onFinish func(RippleID, bool)) *ForegroundRipple {
	if timeline == nil {
		panic("ink: foreground ripple requires a Timeline")
	}
	return &ForegroundRipple{
		Ripple:   newRipple(container),
		timeline: timeline,
		onFinish: onFinish,
	}
}

// Finished reports whether the ripple has been torn down.
func (f *ForegroundRipple) Finished() bool {
	return f.finished
}

// jitterRadius returns the spread radius with its per-ripple random factor in
// [0.9, 1.0] of radiusGrowthMultiplier.
func jitterRadius(rnd *rand.Rand) float64 {
	u := float64(rnd.IntN(randomResolution+1)) / randomResolution
	return (0.9 + u*0.1) * radiusGrowthMultiplier
}

// radiusBounds picks the ripple radius. Bounded ripples ignore maxRadius.
func radiusBounds(maxRadius, derived float64, bounded bool) float64 {
	if maxRadius > 0 && !bounded {
		return maxRadius
	}
	return derived
}

// SetupRipple picks the jittered radius from rnd and sizes the shape layer.
func (f *ForegroundRipple) SetupRipple(rnd *rand.Rand) {
	f.Radius = radiusBounds(f.MaxRadius, jitterRadius(rnd), f.Bounded)
	f.setupRipple()
}

// frameOffset converts target-frame coordinates into container coordinates.
func (f *ForegroundRipple) frameOffset() Vec2 {
	return f.TargetFrame.Origin().Sub(f.container.Frame().Origin())
}

// finalCenter is the point the ripple gravitates toward.
func (f *ForegroundRipple) finalCenter() Vec2 {
	if f.UseCustomCenter {
		return f.CustomCenter
	}
	return f.TargetFrame.Center()
}

// Enter attaches the ripple and schedules its spread: a short fade in and a
// scale from zero. Unbounded ripples also travel toward their final center.
func (f *ForegroundRipple) Enter(animated bool) bool {
	if !f.Ripple.Enter(animated) {
		return false
	}
	f.exiting = false
	f.finished = false

	offset := f.frameOffset()
	start := f.Point.Add(offset)
	center := f.finalCenter().Add(offset)
	l := f.layer
	l.Position = start

	if !animated {
		l.Opacity = 1
		l.Scale = 1
		if !f.Bounded {
			l.Position = center
		}
		return true
	}

	l.Opacity = 0
	l.Scale = 0

	opacity := Animation{
		Channel:  ChannelOpacity,
		From:     0,
		To:       1,
		Duration: unboundedOpacityEnterDuration,
		Curve:    ease.Linear,
	}
	if !f.Bounded {
		opacity.Delay = unboundedEnterDelay
	}
	f.timeline.Schedule(l, foregroundOpacityKey, opacity, nil)

	if f.Bounded {
		// Bounded ink expands on release; see ExitAnimations.
		return true
	}

	duration := float32(math.Sqrt(f.Radius / waveTouchDownAcceleration))
	curve := LogDecelerate
	if f.UseLinearExpansion {
		duration = float32(f.SpreadDuration.Seconds())
		curve = ease.Linear
	}
	f.timeline.Schedule(l, foregroundScaleKey, Animation{
		Channel:  ChannelScale,
		From:     0,
		To:       1,
		Duration: duration,
		Curve:    curve,
	}, nil)
	f.timeline.Schedule(l, foregroundPositionKey, Animation{
		Channel:   ChannelPosition,
		FromPoint: start,
		ToPoint:   center,
		Duration:  duration,
		Curve:     curve,
	}, nil)
	return true
}

// Exit finishes the ripple normally. Animated exits fade and expand the ripple
// before detaching it; a second call while the exit runs is ignored.
func (f *ForegroundRipple) Exit(animated bool) {
	f.exit(animated)
}

// Cancel forces the ripple into Cancelled and exits it. Cancelled ripples
// still animate out and detach, but their end notification is suppressed.
func (f *ForegroundRipple) Cancel(animated bool) {
	f.forceCancel()
	f.exit(animated)
}

// Abort tears the ripple down at once as cancelled. Unlike Cancel(false) the
// end notification is suppressed; a ripple that already exited normally
// still reports its end.
func (f *ForegroundRipple) Abort() {
	if f.finished {
		return
	}
	f.forceCancel()
	f.removeAllAnimations()
	f.layer.Opacity = 0
	f.finish(f.State != RippleCancelled)
}

func (f *ForegroundRipple) exit(animated bool) {
	if f.finished {
		return
	}
	if f.exiting && animated {
		return
	}
	f.Ripple.Exit(animated)

	if !animated {
		f.removeAllAnimations()
		f.layer.Opacity = 0
		f.finish(true)
		return
	}

	opacity, opacityOK := f.layer.PresentationOpacity()
	scale, scaleOK := f.layer.PresentationScale()
	if !opacityOK {
		opacity = 0
	}
	if !scaleOK {
		scale = 0
	}

	anims := ExitAnimations(ExitInput{
		Bounded:         f.Bounded,
		Radius:          f.Radius,
		Point:           f.Point,
		TargetFrame:     f.TargetFrame,
		HostFrame:       f.container.Frame(),
		UseCustomCenter: f.UseCustomCenter,
		CustomCenter:    f.CustomCenter,
		CurrentOpacity:  opacity,
		CurrentScale:    scale,
	})

	f.exiting = true
	f.pending = len(anims)
	f.notify = false
	for _, a := range anims {
		owner := a.CompletionOwner
		f.timeline.Schedule(f.layer, foregroundKey(a.Channel), a, func() {
			f.animationDidStop(owner)
		})
	}
}

// animationDidStop runs as each exit animation detaches. Only the completion
// owner decides whether the end notification may fire; teardown waits for
// the last animation.
func (f *ForegroundRipple) animationDidStop(owner bool) {
	f.pending--
	if owner {
		f.notify = f.State != RippleCancelled
	}
	if f.pending <= 0 {
		f.finish(f.notify)
	}
}

// finish detaches the ripple and reports back exactly once.
func (f *ForegroundRipple) finish(notify bool) {
	if f.finished {
		return
	}
	f.finished = true
	f.exiting = false
	f.removeAllAnimations()
	f.layer.RemoveFromParent()
	if f.onFinish != nil {
		f.onFinish(f.ID, notify)
	}
}

func foregroundKey(ch Channel) string {
	switch ch {
	case ChannelOpacity:
		return foregroundOpacityKey
	case ChannelPosition:
		return foregroundPositionKey
	default:
		return foregroundScaleKey
	}
}

// ExitInput is everything ExitAnimations needs to know about a ripple.
type ExitInput struct {
	Bounded     bool
	Radius      float64
	Point       Vec2
	TargetFrame Rect
	HostFrame   Rect

	UseCustomCenter bool
	CustomCenter    Vec2

	// Displayed opacity and scale when the exit starts. Use 0 when the
	// values cannot be read back.
	CurrentOpacity float64
	CurrentScale   float64
}

// ExitAnimations returns the animations that take a ripple off screen, with
// exactly one of them marked as the completion owner.
//
// Bounded ripples fade out, drift 30% of the way toward the center and expand
// from zero, each over a fixed duration. Unbounded ripples continue from
// their displayed opacity and scale; the time left to expand comes from the
// combined touch-down and touch-up wave accelerations.
func ExitAnimations(in ExitInput) []Animation {
	var opacity, scale Animation
	var anims []Animation

	if in.Bounded {
		offset := in.TargetFrame.Origin().Sub(in.HostFrame.Origin())
		start := in.Point.Add(offset)
		end := in.TargetFrame.Center()
		if in.UseCustomCenter {
			end = in.CustomCenter
		}
		end = end.Add(offset)

		opacity = Animation{
			Channel:  ChannelOpacity,
			From:     1,
			To:       0,
			Duration: boundedOpacityExitDuration,
			Curve:    ease.Linear,
		}
		position := Animation{
			Channel:   ChannelPosition,
			FromPoint: start,
			ToPoint:   InterpolatePoint(start, end, centerOffsetFraction),
			Duration:  boundedPositionExitDuration,
			Curve:     LogDecelerate,
		}
		scale = Animation{
			Channel:  ChannelScale,
			From:     0,
			To:       1,
			Duration: boundedRadiusExitDuration,
			Curve:    LogDecelerate,
		}
		assignCompletionOwner(&opacity, &scale)
		anims = []Animation{opacity, position, scale}
		return anims
	}

	remaining := math.Max(0, 1-in.CurrentScale)
	unboundedDuration := math.Sqrt(remaining * in.Radius / (waveTouchDownAcceleration + waveTouchUpAcceleration))

	opacity = Animation{
		Channel:  ChannelOpacity,
		From:     in.CurrentOpacity,
		To:       0,
		Duration: float32(in.CurrentOpacity/3 + boundedPositionExitDuration),
		Curve:    ease.Linear,
	}
	scale = Animation{
		Channel:  ChannelScale,
		From:     in.CurrentScale,
		To:       1,
		Duration: float32(unboundedDuration + boundedPositionExitDuration),
		Curve:    LogDecelerate,
	}
	assignCompletionOwner(&opacity, &scale)
	anims = []Animation{opacity, scale}
	return anims
}

// assignCompletionOwner gives completion ownership to the longer of the two
// animations. Ties go to opacity.
func assignCompletionOwner(opacity, scale *Animation) {
	if opacity.Duration < scale.Duration {
		scale.CompletionOwner = true
		opacity.CompletionOwner = false
		return
	}
	opacity.CompletionOwner = true
	scale.CompletionOwner = false
}
