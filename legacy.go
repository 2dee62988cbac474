package ink

import (
	"math/rand/v2"
	"time"
)

// Default legacy ripple durations.
const (
	DefaultSpreadDuration    = 250 * time.Millisecond
	DefaultEvaporateDuration = 150 * time.Millisecond
)

const legacyResetKey = "legacyResetAllInk"

// LegacyInkLayer owns the legacy ripple pipeline: a container layer that the
// ripples draw into and a registry of the ripples currently alive. Any number
// of ripples may be registered at once, one per touch.
//
// The exported fields configure ripples created by later SpreadFromPoint
// calls; ripples in flight keep the values they started with.
type LegacyInkLayer struct {
	Bounded            bool
	MaxRippleRadius    float64
	InkColor           Color
	SpreadDuration     time.Duration
	EvaporateDuration  time.Duration
	UseCustomInkCenter bool
	CustomInkCenter    Vec2
	UseLinearExpansion bool

	// Delegate receives start, end and cancel notifications for every ripple.
	Delegate Delegate

	layer    *Layer
	timeline *Timeline
	rnd      *rand.Rand
	ripples  map[RippleID]*ForegroundRipple
	order    []RippleID
}

// NewLegacyInkLayer creates a legacy pipeline drawing into container. rnd
// supplies the radius jitter; nil seeds a fresh PCG source.
// Panics if container or timeline is nil.
func NewLegacyInkLayer(container *Layer, timeline *Timeline, rnd *rand.Rand) *LegacyInkLayer {
	if container == nil {
		panic("ink: NewLegacyInkLayer requires a container layer")
	}
	if timeline == nil {
		panic("ink: NewLegacyInkLayer requires a Timeline")
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &LegacyInkLayer{
		Bounded:           true,
		InkColor:          DefaultInkColor,
		SpreadDuration:    DefaultSpreadDuration,
		EvaporateDuration: DefaultEvaporateDuration,
		layer:             container,
		timeline:          timeline,
		rnd:               rnd,
		ripples:           make(map[RippleID]*ForegroundRipple),
	}
}

// Layer returns the container layer.
func (l *LegacyInkLayer) Layer() *Layer {
	return l.layer
}

// SetRand replaces the radius jitter source.
func (l *LegacyInkLayer) SetRand(rnd *rand.Rand) {
	if rnd != nil {
		l.rnd = rnd
	}
}

// Len returns the number of registered ripples.
func (l *LegacyInkLayer) Len() int {
	return len(l.ripples)
}

// Active returns the IDs of the registered ripples in creation order.
func (l *LegacyInkLayer) Active() []RippleID {
	out := make([]RippleID, len(l.order))
	copy(out, l.order)
	return out
}

// Ripple looks up a registered ripple.
func (l *LegacyInkLayer) Ripple(id RippleID) (*ForegroundRipple, bool) {
	r, ok := l.ripples[id]
	return r, ok
}

// SpreadFromPoint creates a ripple at p (container coordinates), enters it and
// registers it. The start notification fires before it returns.
func (l *LegacyInkLayer) SpreadFromPoint(p Vec2, animated bool) RippleID {
	r := newForegroundRipple(l.layer, l.timeline, l.rippleFinished)
	r.Point = p
	r.TargetFrame = l.layer.Frame()
	r.Color = l.InkColor
	r.Bounded = l.Bounded
	r.MaxRadius = l.MaxRippleRadius
	r.SpreadDuration = l.SpreadDuration
	r.EvaporateDuration = l.EvaporateDuration
	r.UseCustomCenter = l.UseCustomInkCenter
	r.CustomCenter = l.CustomInkCenter
	r.UseLinearExpansion = l.UseLinearExpansion
	r.SetupRipple(l.rnd)

	l.ripples[r.ID] = r
	l.order = append(l.order, r.ID)
	r.Enter(animated)

	debugf("ripple %d spread at (%.1f, %.1f) radius %.1f bounded=%t", r.ID, p.X, p.Y, r.Radius, r.Bounded)
	if l.Delegate != nil {
		l.Delegate.AnimationDidStart(r.ID)
	}
	return r.ID
}

// Evaporate exits one spreading ripple normally. Reports whether the ripple
// was registered and spreading.
func (l *LegacyInkLayer) Evaporate(id RippleID, animated bool) bool {
	r, ok := l.ripples[id]
	if !ok || r.State != RippleSpreading {
		return false
	}
	r.Exit(animated)
	return true
}

// EvaporateAll exits every spreading ripple normally.
func (l *LegacyInkLayer) EvaporateAll(animated bool) {
	for _, id := range l.Active() {
		l.Evaporate(id, animated)
	}
}

// CancelAll takes every registered ripple through the cancel path.
func (l *LegacyInkLayer) CancelAll(animated bool) {
	for _, id := range l.Active() {
		if r, ok := l.ripples[id]; ok {
			r.Cancel(animated)
		}
	}
}

// ResetAllInk clears every ripple. When animated, the whole container fades
// out over EvaporateDuration first and the ripples then report through the
// cancel path; without animation they are cancelled like CancelAll(false).
func (l *LegacyInkLayer) ResetAllInk(animated bool) {
	if !animated || l.EvaporateDuration <= 0 {
		l.CancelAll(false)
		return
	}
	l.timeline.Schedule(l.layer, legacyResetKey, Animation{
		Channel:  ChannelOpacity,
		From:     1,
		To:       0,
		Duration: float32(l.EvaporateDuration.Seconds()),
	}, func() {
		l.abortAll()
		l.layer.Opacity = 1
	})
}

// abortAll tears every registered ripple down with its end suppressed.
func (l *LegacyInkLayer) abortAll() {
	for _, id := range l.Active() {
		if r, ok := l.ripples[id]; ok {
			r.Abort()
		}
	}
}

// rippleFinished deregisters a torn-down ripple and reports its outcome.
func (l *LegacyInkLayer) rippleFinished(id RippleID, notify bool) {
	if _, ok := l.ripples[id]; !ok {
		return
	}
	delete(l.ripples, id)
	for i, other := range l.order {
		if other == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}

	debugf("ripple %d finished (notify=%t, %d left)", id, notify, len(l.ripples))
	if l.Delegate == nil {
		return
	}
	if notify {
		l.Delegate.AnimationDidEnd(id)
		return
	}
	if c, ok := l.Delegate.(CancelObserver); ok {
		c.AnimationDidCancel(id)
	}
}
