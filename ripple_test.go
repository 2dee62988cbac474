package ink

import "testing"

func TestRippleEnterExitComplete(t *testing.T) {
	container := NewLayer("container")
	r := newRipple(container)
	if r.State != RippleNone {
		t.Fatalf("initial state = %s, want none", r.State)
	}
	if !r.AnimationCleared() {
		t.Error("new ripple should report animations cleared")
	}

	if !r.Enter(true) {
		t.Fatal("Enter from none refused")
	}
	if r.State != RippleSpreading {
		t.Errorf("state after Enter = %s, want spreading", r.State)
	}
	if r.AnimationCleared() {
		t.Error("Enter should clear animationCleared")
	}
	if r.Layer().Parent != container {
		t.Error("Enter should attach the shape layer to the container")
	}

	r.Exit(true)
	if r.State != RippleComplete {
		t.Errorf("state after Exit = %s, want complete", r.State)
	}
	r.Exit(true)
	if r.State != RippleComplete {
		t.Errorf("second Exit changed state to %s", r.State)
	}
}

func TestRippleEnterOnlyFromNoneOrComplete(t *testing.T) {
	r := newRipple(NewLayer("c"))
	r.Enter(false)
	if r.Enter(false) {
		t.Error("Enter while spreading should be refused")
	}
	r.Exit(false)
	if !r.Enter(false) {
		t.Error("Enter from complete should be allowed")
	}
	r.forceCancel()
	if r.Enter(false) {
		t.Error("Enter from cancelled should be refused")
	}
}

func TestRippleCancelledIsSticky(t *testing.T) {
	r := newRipple(NewLayer("c"))
	r.Enter(true)
	if !r.forceCancel() {
		t.Fatal("forceCancel while spreading should succeed")
	}
	r.Exit(true)
	r.Exit(false)
	if r.State != RippleCancelled {
		t.Errorf("state = %s, want cancelled", r.State)
	}
	if !r.forceCancel() {
		t.Error("forceCancel on a cancelled ripple should still report cancelled")
	}
}

func TestRippleForceCancelAfterComplete(t *testing.T) {
	r := newRipple(NewLayer("c"))
	r.Enter(true)
	r.Exit(true)
	if r.forceCancel() {
		t.Error("forceCancel should not override a completed ripple")
	}
	if r.State != RippleComplete {
		t.Errorf("state = %s, want complete", r.State)
	}
}

func TestRippleSetup(t *testing.T) {
	r := newRipple(NewLayer("c"))
	r.Radius = 12
	r.Color = Color{R: 1, A: 0.5}
	r.setupRipple()
	l := r.Layer()
	if l.Bounds != (Size{Width: 24, Height: 24}) {
		t.Errorf("Bounds = %v, want 24x24", l.Bounds)
	}
	if l.Radius != 12 || l.FillColor != r.Color {
		t.Errorf("shape radius %v color %v", l.Radius, l.FillColor)
	}
}

func TestRippleIDsUnique(t *testing.T) {
	c := NewLayer("c")
	a, b := newRipple(c), newRipple(c)
	if a.ID == b.ID || a.ID == 0 {
		t.Errorf("ids %d and %d", a.ID, b.ID)
	}
}

func TestNewRippleNilContainerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	newRipple(nil)
}

func TestRippleStateString(t *testing.T) {
	for s, want := range map[RippleState]string{
		RippleNone: "none", RippleSpreading: "spreading", RippleComplete: "complete", RippleCancelled: "cancelled",
	} {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
