package ink

import (
	"log"
	"math/rand/v2"
)

// InkView hosts the ink for one touchable control. It owns the root layer,
// the legacy ripple pipeline and the active single-ripple InkLayer, and routes
// touches to whichever pipeline the configuration selects.
//
// Touch points are in the view's own coordinate space: (0,0) is the top-left
// corner of its frame.
type InkView struct {
	frame    Rect
	cfg      Config
	delegate Delegate

	root     *Layer
	timeline *Timeline
	legacy   *LegacyInkLayer

	active *InkLayer
}

// NewInkView creates a view covering frame whose animations run on timeline.
// Panics if timeline is nil.
func NewInkView(frame Rect, timeline *Timeline) *InkView {
	if timeline == nil {
		panic("ink: NewInkView requires a Timeline")
	}
	root := NewLayer("inkView")
	container := NewLayer("legacyInk")
	root.AddChild(container)

	v := &InkView{
		cfg:      DefaultConfig(),
		root:     root,
		timeline: timeline,
	}
	v.legacy = NewLegacyInkLayer(container, timeline, nil)
	v.legacy.Delegate = guardedDelegate{view: v}
	v.SetFrame(frame)
	v.applyConfig()
	return v
}

// --- Accessors ---

// Layer returns the root layer; renderers draw it.
func (v *InkView) Layer() *Layer {
	return v.root
}

// Timeline returns the timeline the view animates on.
func (v *InkView) Timeline() *Timeline {
	return v.timeline
}

// Legacy returns the legacy ripple pipeline.
func (v *InkView) Legacy() *LegacyInkLayer {
	return v.legacy
}

// ActiveInkLayer returns the current single-ripple layer, or nil.
func (v *InkView) ActiveInkLayer() *InkLayer {
	return v.active
}

// Frame returns the view's rectangle in its parent's coordinate space.
func (v *InkView) Frame() Rect {
	return v.frame
}

// Bounds returns the view's rectangle in its own coordinate space.
func (v *InkView) Bounds() Rect {
	return Rect{Width: v.frame.Width, Height: v.frame.Height}
}

// SetFrame moves and resizes the view. Ripples already in flight keep the
// target frame they spread with.
func (v *InkView) SetFrame(frame Rect) {
	v.frame = frame
	v.root.SetFrame(frame)
	v.legacy.Layer().SetFrame(v.Bounds())
}

// SetDelegate sets the receiver of start, end and cancel notifications.
func (v *InkView) SetDelegate(d Delegate) {
	v.delegate = d
}

// SetRand replaces the legacy radius jitter source.
func (v *InkView) SetRand(rnd *rand.Rand) {
	v.legacy.SetRand(rnd)
}

// Config returns the current configuration.
func (v *InkView) Config() Config {
	return v.cfg
}

// SetConfig replaces the configuration. Ripples in flight are unaffected.
func (v *InkView) SetConfig(cfg Config) {
	v.cfg = cfg
	v.applyConfig()
}

// InkColor returns the configured ink color, or DefaultInkColor when none is
// set. The zero Color counts as unset, so fully transparent ink needs a
// non-zero RGB, e.g. Color{R: 1}.
func (v *InkView) InkColor() Color {
	if v.cfg.InkColor == (Color{}) {
		return DefaultInkColor
	}
	return v.cfg.InkColor
}

// SetInkColor sets the ink color for new ripples. The zero Color restores
// DefaultInkColor.
func (v *InkView) SetInkColor(c Color) {
	v.cfg.InkColor = c
	v.applyConfig()
}

// SetInkStyle switches between clipped and unclipped ink. The legacy ripple
// bounded flag follows the style.
func (v *InkView) SetInkStyle(s InkStyle) {
	v.cfg.InkStyle = s
	v.cfg.Bounded = s == InkStyleBounded
	v.applyConfig()
}

// SetMaxRippleRadius limits unbounded legacy ripples and single-ripple ink.
// Values <= 0 remove the limit.
func (v *InkView) SetMaxRippleRadius(r float64) {
	v.cfg.MaxRippleRadius = r
	v.applyConfig()
}

// SetUsesLegacyRipple selects the legacy pipeline (true) or the single-ripple
// InkLayer pipeline.
func (v *InkView) SetUsesLegacyRipple(legacy bool) {
	v.cfg.UsesLegacyRipple = legacy
}

// SetCustomInkCenter makes legacy ripples gravitate toward center instead of
// the middle of the view.
func (v *InkView) SetCustomInkCenter(use bool, center Vec2) {
	v.cfg.UsesCustomInkCenter = use
	v.cfg.CustomInkCenter = center
	v.applyConfig()
}

func (v *InkView) applyConfig() {
	clip := v.cfg.InkStyle == InkStyleBounded
	v.root.MasksToBounds = clip
	v.legacy.Layer().MasksToBounds = clip

	l := v.legacy
	l.Bounded = v.cfg.Bounded
	l.MaxRippleRadius = v.cfg.MaxRippleRadius
	l.InkColor = v.InkColor()
	l.SpreadDuration = v.cfg.SpreadDuration
	l.EvaporateDuration = v.cfg.EvaporateDuration
	l.UseCustomInkCenter = v.cfg.UsesCustomInkCenter
	l.CustomInkCenter = v.cfg.CustomInkCenter
	l.UseLinearExpansion = v.cfg.UseLinearExpansion
}

// --- Touches ---

// TouchBegin starts animated ink at p.
func (v *InkView) TouchBegin(p Vec2) {
	v.StartTouchBegan(p, true)
}

// TouchMove follows a moving touch. Only the single-ripple pipeline reacts.
func (v *InkView) TouchMove(p Vec2) {
	if v.cfg.UsesLegacyRipple || v.active == nil {
		return
	}
	v.active.Change(p)
}

// TouchEnd releases the ink at p.
func (v *InkView) TouchEnd(p Vec2) {
	v.StartTouchEnded(p, true)
}

// TouchCancel abandons the touch; see CancelAllAnimations.
func (v *InkView) TouchCancel(animated bool) {
	v.CancelAllAnimations(animated)
}

// StartTouchBegan spreads ink from p. In single-ripple mode any previously
// active ink is ended first, so at most one InkLayer is ever active.
func (v *InkView) StartTouchBegan(p Vec2, animated bool) {
	if v.frame.IsEmpty() {
		debugf("touch at (%.1f, %.1f) ignored: view has no area", p.X, p.Y)
		return
	}
	if v.cfg.UsesLegacyRipple {
		v.legacy.SpreadFromPoint(p, animated)
		return
	}

	if v.active != nil {
		v.active.End(p, true)
	}
	k := NewInkLayer(v.timeline)
	k.InkColor = v.InkColor()
	k.MaxRippleRadius = v.cfg.MaxRippleRadius
	k.Delegate = guardedDelegate{view: v}
	k.SetBounds(v.Bounds())
	k.Layer().Opacity = 0
	v.root.AddChild(k.Layer())
	v.active = k
	k.Start(p, animated)
}

// StartTouchEnded lets the ink at p evaporate. In legacy mode every spreading
// ripple evaporates, including those of other pointers still held.
func (v *InkView) StartTouchEnded(p Vec2, animated bool) {
	if v.cfg.UsesLegacyRipple {
		v.legacy.EvaporateAll(animated)
		return
	}
	if v.active != nil {
		v.active.End(p, animated)
	}
}

// CancelAllAnimations removes all ink. Animated, legacy ripples fade out
// together and report through the cancel path; without animation they are
// cancelled like LegacyInkLayer.CancelAll(false). Single-ripple ink ends
// normally.
func (v *InkView) CancelAllAnimations(animated bool) {
	if v.cfg.UsesLegacyRipple {
		v.legacy.ResetAllInk(animated)
		return
	}
	if v.active != nil {
		v.active.End(Vec2{}, animated)
	}
}

// ResetAllInk clears the legacy ripples regardless of the selected pipeline.
func (v *InkView) ResetAllInk(animated bool) {
	v.legacy.ResetAllInk(animated)
}

// --- Notifications ---

func (v *InkView) inkDidEnd(id RippleID) {
	if v.active != nil && v.active.ID == id {
		v.active = nil
	}
}

// guardedDelegate forwards notifications to the view's delegate. A panicking
// delegate is logged and skipped.
type guardedDelegate struct {
	view *InkView
}

func (g guardedDelegate) call(kind RippleEventKind, id RippleID, fn func(Delegate)) {
	d := g.view.delegate
	if d == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ink: delegate panicked on %s of ripple %d: %v", kind, id, r)
		}
	}()
	fn(d)
}

func (g guardedDelegate) AnimationDidStart(id RippleID) {
	g.call(RippleEventStart, id, func(d Delegate) { d.AnimationDidStart(id) })
}

func (g guardedDelegate) AnimationDidEnd(id RippleID) {
	g.view.inkDidEnd(id)
	g.call(RippleEventEnd, id, func(d Delegate) { d.AnimationDidEnd(id) })
}

func (g guardedDelegate) AnimationDidCancel(id RippleID) {
	g.call(RippleEventCancel, id, func(d Delegate) {
		if c, ok := d.(CancelObserver); ok {
			c.AnimationDidCancel(id)
		}
	})
}
