package ink

import (
	"strconv"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Channel is the layer property an Animation drives.
type Channel uint8

const (
	ChannelOpacity  Channel = iota // Layer.Opacity
	ChannelPosition                // Layer.Position, along a two-point path
	ChannelScale                   // Layer.Scale
)

func (c Channel) String() string {
	switch c {
	case ChannelOpacity:
		return "opacity"
	case ChannelPosition:
		return "position"
	case ChannelScale:
		return "scale"
	default:
		return "unknown"
	}
}

// Animation describes one timed transition of a layer property. Durations and
// delays are in seconds, matching gween.
type Animation struct {
	Channel Channel

	// From and To are used by the opacity and scale channels.
	From, To float64

	// FromPoint and ToPoint are used by the position channel.
	FromPoint, ToPoint Vec2

	Duration float32
	Delay    float32

	// Curve eases the transition. Nil means ease.Linear.
	Curve ease.TweenFunc

	// CompletionOwner marks the animation whose completion decides whether
	// the end notification may fire.
	CompletionOwner bool
}

// Handle refers to a scheduled animation. Cancelling it detaches the
// animation without running its completion callback.
type Handle struct {
	run   *running
	key   string
	layer *Layer
}

// Active reports whether the animation is still attached to its layer.
func (h *Handle) Active() bool {
	return h != nil && h.run != nil
}

// Key returns the key the animation was attached under.
func (h *Handle) Key() string {
	return h.key
}

// Animation returns the descriptor the handle was scheduled with.
func (h *Handle) Animation() Animation {
	if h.run == nil {
		return Animation{}
	}
	return h.run.anim
}

// Cancel detaches the animation. No-op if it already finished or was removed.
func (h *Handle) Cancel() {
	if !h.Active() {
		return
	}
	h.layer.release(h.key, h)
	h.detach()
}

func (h *Handle) detach() {
	if h.run == nil {
		return
	}
	h.run.detached = true
	h.run = nil
}

// running is the Timeline's bookkeeping for one scheduled animation.
type running struct {
	anim       Animation
	layer      *Layer
	key        string
	handle     *Handle
	tweens     [2]*gween.Tween
	delay      float32
	started    bool
	detached   bool
	onComplete func()
}

// Timeline is the compositor clock. It owns every scheduled animation, steps
// them with gween tweens on Update, writes displayed values onto layers and
// runs completion callbacks once an animation reaches its end.
//
// There is no global timeline. Callers own one and call Update each frame.
type Timeline struct {
	running   []*running
	done      []*running
	now       float32
	nextKey   uint32
	completed int
}

// NewTimeline creates an empty timeline at time zero.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Now returns the number of seconds the timeline has advanced.
func (t *Timeline) Now() float32 {
	return t.now
}

// Len returns the number of attached animations.
func (t *Timeline) Len() int {
	n := 0
	for _, r := range t.running {
		if !r.detached {
			n++
		}
	}
	return n
}

// Schedule attaches a to layer under key and returns a handle to it. An
// animation already attached to the layer under the same key is replaced and
// its completion callback is dropped. An empty key gets a unique one.
//
// onComplete, if non-nil, runs from Update after the animation has reached
// its final value and has been detached.
func (t *Timeline) Schedule(layer *Layer, key string, a Animation, onComplete func()) *Handle {
	if layer == nil {
		panic("ink: cannot schedule an animation on a nil layer")
	}
	if key == "" {
		t.nextKey++
		key = "anim-" + strconv.FormatUint(uint64(t.nextKey), 10)
	}
	if a.Curve == nil {
		a.Curve = ease.Linear
	}

	r := &running{
		anim:       a,
		layer:      layer,
		key:        key,
		delay:      a.Delay,
		onComplete: onComplete,
	}
	switch a.Channel {
	case ChannelPosition:
		r.tweens[0] = gween.New(float32(a.FromPoint.X), float32(a.ToPoint.X), a.Duration, a.Curve)
		r.tweens[1] = gween.New(float32(a.FromPoint.Y), float32(a.ToPoint.Y), a.Duration, a.Curve)
	default:
		r.tweens[0] = gween.New(float32(a.From), float32(a.To), a.Duration, a.Curve)
	}

	h := &Handle{run: r, key: key, layer: layer}
	r.handle = h
	layer.attach(key, h)
	t.running = append(t.running, r)

	if globalDebug {
		debugf("schedule %s on layer %q: %v -> %v over %.3fs (delay %.3fs)",
			a.Channel, layer.Name, a.From, a.To, a.Duration, a.Delay)
	}
	return h
}

// Update advances every attached animation by dt seconds. Animations that
// reach their end are written to the layer model, detached, and then have
// their callbacks run in scheduling order.
func (t *Timeline) Update(dt float32) {
	t.now += dt

	live := t.running[:0]
	for _, r := range t.running {
		if r.detached {
			continue
		}
		if t.advance(r, dt) {
			t.done = append(t.done, r)
			continue
		}
		live = append(live, r)
	}
	for i := len(live); i < len(t.running); i++ {
		t.running[i] = nil
	}
	t.running = live

	if len(t.done) == 0 {
		return
	}

	done := t.done
	t.done = nil
	for _, r := range done {
		r.layer.release(r.key, r.handle)
		r.handle.detach()
	}
	t.completed += len(done)
	if globalDebug {
		debugTimeline(t, len(done))
	}
	for _, r := range done {
		if r.onComplete != nil {
			r.onComplete()
		}
	}
}

// advance steps one animation and reports whether it finished.
func (t *Timeline) advance(r *running, dt float32) bool {
	l := r.layer
	l.presented = true

	if r.delay > 0 {
		if dt < r.delay {
			r.delay -= dt
			return false
		}
		dt -= r.delay
		r.delay = 0
	}
	r.started = true

	if r.anim.Duration <= 0 {
		applyFinal(r)
		return true
	}

	var finished bool
	switch r.anim.Channel {
	case ChannelOpacity:
		var v float32
		v, finished = r.tweens[0].Update(dt)
		l.pres.opacity = float64(v)
	case ChannelScale:
		var v float32
		v, finished = r.tweens[0].Update(dt)
		l.pres.scale = float64(v)
	case ChannelPosition:
		x, fx := r.tweens[0].Update(dt)
		y, fy := r.tweens[1].Update(dt)
		l.pres.position = Vec2{X: float64(x), Y: float64(y)}
		finished = fx && fy
	}

	if finished {
		applyFinal(r)
	}
	return finished
}

// applyFinal writes the exact end value to both the model and the
// presentation so the layer holds it after the animation detaches.
func applyFinal(r *running) {
	l := r.layer
	switch r.anim.Channel {
	case ChannelOpacity:
		l.Opacity = r.anim.To
		l.pres.opacity = r.anim.To
	case ChannelScale:
		l.Scale = r.anim.To
		l.pres.scale = r.anim.To
	case ChannelPosition:
		l.Position = r.anim.ToPoint
		l.pres.position = r.anim.ToPoint
	}
}

// join returns a callback that runs fn after it has been called n times.
func join(n int, fn func()) func() {
	return func() {
		n--
		if n == 0 && fn != nil {
			fn()
		}
	}
}
