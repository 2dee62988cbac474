package ink

import (
	"math/rand/v2"
	"testing"
	"time"
)

// recorder collects delegate notifications in order.
type recorder struct {
	events []RippleEvent
}

func (r *recorder) AnimationDidStart(id RippleID) {
	r.events = append(r.events, RippleEvent{Kind: RippleEventStart, RippleID: id})
}

func (r *recorder) AnimationDidEnd(id RippleID) {
	r.events = append(r.events, RippleEvent{Kind: RippleEventEnd, RippleID: id})
}

func (r *recorder) AnimationDidCancel(id RippleID) {
	r.events = append(r.events, RippleEvent{Kind: RippleEventCancel, RippleID: id})
}

func (r *recorder) count(kind RippleEventKind, id RippleID) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind && e.RippleID == id {
			n++
		}
	}
	return n
}

func newTestLegacy(t *testing.T) (*LegacyInkLayer, *Timeline, *recorder) {
	t.Helper()
	tl := NewTimeline()
	container := NewLayer("container")
	container.SetFrame(Rect{Width: 120, Height: 48})
	l := NewLegacyInkLayer(container, tl, rand.New(rand.NewPCG(3, 4)))
	rec := &recorder{}
	l.Delegate = rec
	return l, tl, rec
}

func TestNewLegacyInkLayerDefaults(t *testing.T) {
	l, _, _ := newTestLegacy(t)
	if !l.Bounded {
		t.Error("legacy ink should default to bounded")
	}
	if l.InkColor != DefaultInkColor {
		t.Errorf("InkColor = %v", l.InkColor)
	}
	if l.SpreadDuration != 250*time.Millisecond || l.EvaporateDuration != 150*time.Millisecond {
		t.Errorf("durations = %v / %v", l.SpreadDuration, l.EvaporateDuration)
	}
}

func TestNewLegacyInkLayerPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"nil container": func() { NewLegacyInkLayer(nil, NewTimeline(), nil) },
		"nil timeline":  func() { NewLegacyInkLayer(NewLayer("c"), nil, nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestSpreadFromPointRegistersAndNotifiesStart(t *testing.T) {
	l, _, rec := newTestLegacy(t)
	l.InkColor = Color{R: 1, A: 0.2}
	l.MaxRippleRadius = 30
	l.Bounded = false

	id := l.SpreadFromPoint(Vec2{X: 5, Y: 6}, true)
	r, ok := l.Ripple(id)
	if !ok {
		t.Fatal("ripple not registered")
	}
	if r.State != RippleSpreading {
		t.Errorf("state = %s", r.State)
	}
	if r.Color != l.InkColor || r.Radius != 30 || r.Bounded {
		t.Errorf("ripple config not copied: %+v", r.Ripple)
	}
	if r.TargetFrame != l.Layer().Frame() {
		t.Errorf("TargetFrame = %v, want container frame", r.TargetFrame)
	}
	if len(rec.events) != 1 || rec.events[0] != (RippleEvent{Kind: RippleEventStart, RippleID: id}) {
		t.Errorf("events = %+v", rec.events)
	}
}

func TestEvaporateEndsAfterDetach(t *testing.T) {
	l, tl, rec := newTestLegacy(t)
	id := l.SpreadFromPoint(Vec2{X: 10, Y: 10}, true)
	r, _ := l.Ripple(id)
	l.Delegate = DelegateFuncs{
		OnStart: rec.AnimationDidStart,
		OnEnd: func(id RippleID) {
			if r.Layer().Parent != nil {
				t.Error("end notified before the ripple detached")
			}
			if _, still := l.Ripple(id); still {
				t.Error("end notified before the ripple left the registry")
			}
			rec.AnimationDidEnd(id)
		},
	}
	tl.Update(0.2)
	l.EvaporateAll(true)
	tl.Update(1)

	if rec.count(RippleEventEnd, id) != 1 {
		t.Errorf("end fired %d times, want 1", rec.count(RippleEventEnd, id))
	}
	if l.Len() != 0 {
		t.Errorf("registry still holds %d ripples", l.Len())
	}
	if rec.events[0].Kind != RippleEventStart {
		t.Error("start must come before end")
	}
}

func TestMultipleRipplesIndependent(t *testing.T) {
	l, tl, rec := newTestLegacy(t)
	a := l.SpreadFromPoint(Vec2{X: 10, Y: 10}, true)
	b := l.SpreadFromPoint(Vec2{X: 100, Y: 40}, true)
	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}
	if got := l.Active(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Active = %v, want [%d %d]", got, a, b)
	}
	ra, _ := l.Ripple(a)
	rb, _ := l.Ripple(b)
	if ra.Layer() == rb.Layer() {
		t.Error("ripples share a shape layer")
	}

	if !l.Evaporate(a, false) {
		t.Fatal("Evaporate refused a spreading ripple")
	}
	if l.Len() != 1 || rec.count(RippleEventEnd, a) != 1 || rec.count(RippleEventEnd, b) != 0 {
		t.Errorf("after evaporating a: len %d events %+v", l.Len(), rec.events)
	}
	if l.Evaporate(a, false) {
		t.Error("Evaporate of an unregistered ripple should report false")
	}
	tl.Update(1)
	if _, ok := l.Ripple(b); !ok {
		t.Error("b should still be registered while held")
	}
}

func TestCancelAllAnimatedReportsCancel(t *testing.T) {
	l, tl, rec := newTestLegacy(t)
	id := l.SpreadFromPoint(Vec2{X: 10, Y: 10}, true)
	tl.Update(0.05)
	l.CancelAll(true)
	tl.Update(2)

	if rec.count(RippleEventEnd, id) != 0 {
		t.Error("cancelled ripple reported a normal end")
	}
	if rec.count(RippleEventCancel, id) != 1 {
		t.Errorf("cancel fired %d times, want 1", rec.count(RippleEventCancel, id))
	}
	if l.Len() != 0 || l.Layer().NumChildren() != 0 {
		t.Error("cancelled ripple should still be torn down")
	}
}

func TestResetAllInkFadesContainer(t *testing.T) {
	l, tl, rec := newTestLegacy(t)
	l.SpreadFromPoint(Vec2{X: 10, Y: 10}, true)
	l.SpreadFromPoint(Vec2{X: 20, Y: 10}, true)
	l.ResetAllInk(true)

	tl.Update(0.1)
	if l.Len() != 2 {
		t.Error("ripples removed before the container fade finished")
	}
	if o, _ := l.Layer().PresentationOpacity(); o >= 1 {
		t.Errorf("container opacity = %v, want fading", o)
	}
	tl.Update(0.1)
	if l.Len() != 0 {
		t.Errorf("Len = %d after reset, want 0", l.Len())
	}
	if l.Layer().Opacity != 1 {
		t.Errorf("container opacity = %v, want restored to 1", l.Layer().Opacity)
	}
	for _, e := range rec.events {
		if e.Kind == RippleEventEnd {
			t.Errorf("ripple %d reported a normal end after an animated reset", e.RippleID)
		}
	}
	if n := len(rec.events); n != 4 {
		t.Errorf("got %d events, want a start and a cancel per ripple", n)
	}
}

func TestResetAllInkKeepsNormalEnd(t *testing.T) {
	l, tl, rec := newTestLegacy(t)
	id := l.SpreadFromPoint(Vec2{X: 10, Y: 10}, true)
	tl.Update(0.2)
	l.Evaporate(id, true)
	l.ResetAllInk(true)
	tl.Update(1)

	// The ripple exited normally before the reset.
	if rec.count(RippleEventEnd, id) != 1 || rec.count(RippleEventCancel, id) != 0 {
		t.Errorf("events = %+v", rec.events)
	}
}

func TestResetAllInkNotAnimated(t *testing.T) {
	l, _, _ := newTestLegacy(t)
	l.SpreadFromPoint(Vec2{X: 10, Y: 10}, true)
	l.ResetAllInk(false)
	if l.Len() != 0 {
		t.Errorf("Len = %d, want 0", l.Len())
	}
}
