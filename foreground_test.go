package ink

import (
	"math"
	"math/rand/v2"
	"testing"
)

type finishRecord struct {
	id     RippleID
	notify bool
}

func newTestForeground(t *testing.T, bounded bool) (*ForegroundRipple, *Timeline, *Layer, *[]finishRecord) {
	t.Helper()
	tl := NewTimeline()
	container := NewLayer("container")
	container.SetFrame(Rect{Width: 200, Height: 100})
	var finished []finishRecord
	f := newForegroundRipple(container, tl, func(id RippleID, notify bool) {
		finished = append(finished, finishRecord{id, notify})
	})
	f.Bounded = bounded
	f.Point = Vec2{X: 20, Y: 30}
	f.TargetFrame = container.Frame()
	f.Color = DefaultInkColor
	f.SpreadDuration = DefaultSpreadDuration
	f.SetupRipple(rand.New(rand.NewPCG(1, 2)))
	return f, tl, container, &finished
}

func TestJitterRadiusRange(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 7))
	for range 200 {
		r := jitterRadius(rnd)
		if r < 0.9*radiusGrowthMultiplier-1e-9 || r > radiusGrowthMultiplier+1e-9 {
			t.Fatalf("radius %v outside [315, 350]", r)
		}
	}
}

func TestJitterRadiusReproducible(t *testing.T) {
	a := rand.New(rand.NewPCG(42, 1))
	b := rand.New(rand.NewPCG(42, 1))
	for range 10 {
		if ra, rb := jitterRadius(a), jitterRadius(b); ra != rb {
			t.Fatalf("same seed gave %v and %v", ra, rb)
		}
	}
}

func TestRadiusBounds(t *testing.T) {
	if got := radiusBounds(40, 330, false); got != 40 {
		t.Errorf("unbounded with max = %v, want 40", got)
	}
	if got := radiusBounds(40, 330, true); got != 330 {
		t.Errorf("bounded ignores max: got %v, want 330", got)
	}
	if got := radiusBounds(0, 330, false); got != 330 {
		t.Errorf("zero max is unconstrained: got %v", got)
	}
	if got := radiusBounds(-5, 330, false); got != 330 {
		t.Errorf("negative max is unconstrained: got %v", got)
	}
}

func TestExitAnimationsBounded(t *testing.T) {
	anims := ExitAnimations(ExitInput{
		Bounded:     true,
		Radius:      340,
		Point:       Vec2{X: 10, Y: 10},
		TargetFrame: Rect{X: 0, Y: 0, Width: 100, Height: 50},
		HostFrame:   Rect{X: 0, Y: 0, Width: 100, Height: 50},
	})
	if len(anims) != 3 {
		t.Fatalf("got %d animations, want 3", len(anims))
	}
	opacity, position, scale := anims[0], anims[1], anims[2]

	if opacity.Channel != ChannelOpacity || opacity.From != 1 || opacity.To != 0 ||
		math.Abs(float64(opacity.Duration)-0.4) > 1e-6 {
		t.Errorf("opacity = %+v", opacity)
	}
	if position.Channel != ChannelPosition || math.Abs(float64(position.Duration)-0.3) > 1e-6 {
		t.Errorf("position = %+v", position)
	}
	// 30% of the way from (10,10) to the center (50,25).
	if math.Abs(position.ToPoint.X-22) > 1e-9 || math.Abs(position.ToPoint.Y-14.5) > 1e-9 {
		t.Errorf("position target = %v, want (22, 14.5)", position.ToPoint)
	}
	if position.FromPoint != (Vec2{X: 10, Y: 10}) {
		t.Errorf("position start = %v", position.FromPoint)
	}
	if scale.Channel != ChannelScale || scale.From != 0 || scale.To != 1 ||
		math.Abs(float64(scale.Duration)-0.8) > 1e-6 {
		t.Errorf("scale = %+v", scale)
	}
	if !scale.CompletionOwner || opacity.CompletionOwner || position.CompletionOwner {
		t.Error("the longer scale animation should own completion")
	}
}

func TestExitAnimationsBoundedOffsetAndCustomCenter(t *testing.T) {
	anims := ExitAnimations(ExitInput{
		Bounded:         true,
		Point:           Vec2{X: 0, Y: 0},
		TargetFrame:     Rect{X: 20, Y: 10, Width: 100, Height: 50},
		HostFrame:       Rect{X: 10, Y: 0, Width: 200, Height: 100},
		UseCustomCenter: true,
		CustomCenter:    Vec2{X: 100, Y: 100},
	})
	position := anims[1]
	// Offset (10,10): start (10,10), end (110,110), 30% → (40,40).
	if position.FromPoint != (Vec2{X: 10, Y: 10}) {
		t.Errorf("start = %v, want (10, 10)", position.FromPoint)
	}
	if math.Abs(position.ToPoint.X-40) > 1e-9 || math.Abs(position.ToPoint.Y-40) > 1e-9 {
		t.Errorf("target = %v, want (40, 40)", position.ToPoint)
	}
}

func TestExitAnimationsUnbounded(t *testing.T) {
	anims := ExitAnimations(ExitInput{
		Radius:         350,
		CurrentOpacity: 1,
		CurrentScale:   0.5,
	})
	if len(anims) != 2 {
		t.Fatalf("got %d animations, want 2 (no position)", len(anims))
	}
	opacity, scale := anims[0], anims[1]
	wantScale := math.Sqrt(0.5*350/(1024+3400)) + 0.3
	if math.Abs(float64(scale.Duration)-wantScale) > 1e-5 {
		t.Errorf("scale duration = %v, want %v", scale.Duration, wantScale)
	}
	if scale.From != 0.5 || scale.To != 1 {
		t.Errorf("scale = %v -> %v", scale.From, scale.To)
	}
	wantOpacity := 1.0/3 + 0.3
	if math.Abs(float64(opacity.Duration)-wantOpacity) > 1e-5 {
		t.Errorf("opacity duration = %v, want %v", opacity.Duration, wantOpacity)
	}
	if !opacity.CompletionOwner || scale.CompletionOwner {
		t.Error("opacity runs longer and should own completion")
	}
}

func TestExitAnimationsUnboundedMissingReadback(t *testing.T) {
	anims := ExitAnimations(ExitInput{Radius: 350})
	opacity, scale := anims[0], anims[1]
	if opacity.From != 0 || scale.From != 0 {
		t.Errorf("from values = %v, %v; want 0, 0", opacity.From, scale.From)
	}
	if math.Abs(float64(opacity.Duration)-0.3) > 1e-6 {
		t.Errorf("opacity duration = %v, want 0.3", opacity.Duration)
	}
	if !scale.CompletionOwner || opacity.CompletionOwner {
		t.Error("scale runs longer and should own completion")
	}
}

func TestAssignCompletionOwnerTie(t *testing.T) {
	o := Animation{Duration: 0.5}
	s := Animation{Duration: 0.5}
	assignCompletionOwner(&o, &s)
	if !o.CompletionOwner || s.CompletionOwner {
		t.Error("ties go to opacity")
	}
}

func TestForegroundEnterBounded(t *testing.T) {
	f, _, container, _ := newTestForeground(t, true)
	if !f.Enter(true) {
		t.Fatal("Enter refused")
	}
	l := f.Layer()
	if l.Parent != container {
		t.Error("ripple not attached")
	}
	if l.Animation(foregroundOpacityKey) == nil {
		t.Error("bounded enter should fade in")
	}
	if l.Animation(foregroundScaleKey) != nil || l.Animation(foregroundPositionKey) != nil {
		t.Error("bounded enter should not expand or move")
	}
	if l.Position != f.Point {
		t.Errorf("position = %v, want the touch point", l.Position)
	}
	if f.Radius < 315 || f.Radius > 350 {
		t.Errorf("radius %v not jittered from the growth multiplier", f.Radius)
	}
}

func TestForegroundEnterUnbounded(t *testing.T) {
	f, tl, _, _ := newTestForeground(t, false)
	f.Enter(true)
	l := f.Layer()
	if l.NumAnimations() != 3 {
		t.Fatalf("unbounded enter scheduled %d animations, want 3", l.NumAnimations())
	}
	h := l.Animation(foregroundOpacityKey)
	if d := h.Animation().Delay; math.Abs(float64(d)-0.08) > 1e-6 {
		t.Errorf("opacity delay = %v, want 0.08", d)
	}
	scale := l.Animation(foregroundScaleKey).Animation()
	if want := math.Sqrt(f.Radius / 1024); math.Abs(float64(scale.Duration)-want) > 1e-5 {
		t.Errorf("spread duration = %v, want %v", scale.Duration, want)
	}
	pos := l.Animation(foregroundPositionKey).Animation()
	if pos.ToPoint != (Vec2{X: 100, Y: 50}) {
		t.Errorf("unbounded ripple should travel to the center, got %v", pos.ToPoint)
	}

	tl.Update(0.25)
	if s, ok := l.PresentationScale(); !ok || s <= 0 || s >= 1 {
		t.Errorf("mid-spread scale = %v (ok=%v)", s, ok)
	}
}

func TestForegroundEnterLinearExpansion(t *testing.T) {
	f, _, _, _ := newTestForeground(t, false)
	f.UseLinearExpansion = true
	f.Enter(true)
	scale := f.Layer().Animation(foregroundScaleKey).Animation()
	if math.Abs(float64(scale.Duration)-0.25) > 1e-6 {
		t.Errorf("linear spread duration = %v, want SpreadDuration 0.25", scale.Duration)
	}
}

func TestForegroundExitNotAnimated(t *testing.T) {
	f, _, container, finished := newTestForeground(t, true)
	f.Enter(true)
	f.Exit(false)

	if len(*finished) != 1 || !(*finished)[0].notify || (*finished)[0].id != f.ID {
		t.Fatalf("finished = %+v, want one notifying record", *finished)
	}
	if f.Layer().Parent != nil || container.NumChildren() != 0 {
		t.Error("ripple should be detached synchronously")
	}
	if f.Layer().Opacity != 0 || !f.AnimationCleared() || f.Layer().NumAnimations() != 0 {
		t.Error("non-animated exit should clear animations and zero opacity")
	}
	if f.State != RippleComplete {
		t.Errorf("state = %s, want complete", f.State)
	}
}

func TestForegroundExitAnimatedNotifiesOnce(t *testing.T) {
	f, tl, container, finished := newTestForeground(t, true)
	f.Enter(true)
	tl.Update(0.5)
	f.Exit(true)
	f.Exit(true) // ignored while exiting

	tl.Update(0.5)
	if len(*finished) != 0 {
		t.Fatal("finished before the longest exit animation")
	}
	if f.Layer().Parent != container {
		t.Error("ripple detached early")
	}
	tl.Update(0.5)

	if len(*finished) != 1 || !(*finished)[0].notify {
		t.Fatalf("finished = %+v, want exactly one notifying record", *finished)
	}
	if f.Layer().Parent != nil {
		t.Error("ripple still attached after exit")
	}
	if !f.Finished() || !f.AnimationCleared() {
		t.Error("ripple should be finished with animations cleared")
	}
	tl.Update(1)
	if len(*finished) != 1 {
		t.Error("finish reported more than once")
	}
}

func TestForegroundCancelSuppressesEnd(t *testing.T) {
	f, tl, _, finished := newTestForeground(t, false)
	f.Enter(true)
	tl.Update(0.1)
	f.Cancel(true)
	if f.State != RippleCancelled {
		t.Fatalf("state = %s, want cancelled", f.State)
	}
	tl.Update(2)

	if len(*finished) != 1 {
		t.Fatalf("finished %d times, want 1", len(*finished))
	}
	if (*finished)[0].notify {
		t.Error("cancelled ripple must not permit the end notification")
	}
	if f.Layer().Parent != nil {
		t.Error("cancelled ripple should still detach")
	}
}

func TestForegroundCancelAfterExitStarted(t *testing.T) {
	f, tl, _, finished := newTestForeground(t, true)
	f.Enter(true)
	f.Exit(true)
	f.Cancel(true) // already exiting; state stays complete
	tl.Update(2)
	if len(*finished) != 1 || !(*finished)[0].notify {
		t.Errorf("finished = %+v", *finished)
	}
	if f.State != RippleComplete {
		t.Errorf("state = %s, want complete", f.State)
	}
}

func TestForegroundUnboundedExitReadsPresentation(t *testing.T) {
	f, tl, _, _ := newTestForeground(t, false)
	f.Enter(true)
	tl.Update(0.2)
	opacity, _ := f.Layer().PresentationOpacity()
	scale, _ := f.Layer().PresentationScale()

	f.Exit(true)
	o := f.Layer().Animation(foregroundOpacityKey).Animation()
	s := f.Layer().Animation(foregroundScaleKey).Animation()
	if math.Abs(o.From-opacity) > 1e-6 || math.Abs(s.From-scale) > 1e-6 {
		t.Errorf("exit starts at (%v, %v), want displayed (%v, %v)", o.From, s.From, opacity, scale)
	}
}

func TestForegroundAbortSuppressesEnd(t *testing.T) {
	f, _, container, finished := newTestForeground(t, true)
	f.Enter(true)
	f.Abort()
	if len(*finished) != 1 || (*finished)[0].notify {
		t.Errorf("finished = %+v, want one suppressed teardown", *finished)
	}
	if f.State != RippleCancelled || container.NumChildren() != 0 {
		t.Errorf("state %s children %d", f.State, container.NumChildren())
	}
	f.Abort()
	if len(*finished) != 1 {
		t.Error("second Abort should be a no-op")
	}
}
