package ink

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene hosts a set of InkViews on one Timeline and drives them from an
// ebiten game loop. It implements ebiten.Game: mouse and touch input is
// routed to the view under the pointer, the timeline advances one tick per
// Update, and Draw renders every view back to front.
type Scene struct {
	// ClearColor fills the screen before the views are drawn. A zero alpha
	// leaves the screen untouched.
	ClearColor Color

	// OnDraw, when set, runs after the clear and before the ink is drawn so
	// the host can render its controls underneath.
	OnDraw func(screen *ebiten.Image)

	// ShowStats draws FPS, TPS and animation counts over the views.
	ShowStats bool

	// ScreenshotDir receives Screenshot captures.
	ScreenshotDir string

	timeline *Timeline
	views    []*InkView
	stats    statsOverlay

	script          *TouchScript
	scriptView      *InkView
	screenshotQueue []string

	width, height int

	// Input state
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
}

// NewScene creates an empty scene with its own Timeline. width and height
// are the logical screen size reported from Layout; zero means "use the
// outside size".
func NewScene(width, height int) *Scene {
	return &Scene{
		ScreenshotDir: "screenshots",
		timeline:      NewTimeline(),
		width:         width,
		height:        height,
	}
}

// Timeline returns the scene's timeline.
func (s *Scene) Timeline() *Timeline {
	return s.timeline
}

// NewInkView creates a view on the scene's timeline and adds it on top.
func (s *Scene) NewInkView(frame Rect) *InkView {
	v := NewInkView(frame, s.timeline)
	s.AddView(v)
	return v
}

// AddView adds v on top of the existing views. v must share the scene's
// timeline.
func (s *Scene) AddView(v *InkView) {
	if v.timeline != s.timeline {
		panic("ink: view was created on a different Timeline")
	}
	s.views = append(s.views, v)
}

// RemoveView removes v and releases any pointer captured by it.
func (s *Scene) RemoveView(v *InkView) {
	for i, other := range s.views {
		if other == v {
			copy(s.views[i:], s.views[i+1:])
			s.views[len(s.views)-1] = nil
			s.views = s.views[:len(s.views)-1]
			break
		}
	}
	for i := range s.pointers {
		if s.pointers[i].view == v {
			s.pointers[i] = pointerState{}
		}
	}
	if s.scriptView == v {
		s.script = nil
		s.scriptView = nil
	}
}

// Views returns the views back to front. The returned slice MUST NOT be
// mutated by the caller.
func (s *Scene) Views() []*InkView {
	return s.views
}

// Update processes input and advances the timeline by one tick.
func (s *Scene) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.processInput()
	s.stepScript()
	s.timeline.Update(dt)
	if s.ShowStats {
		s.stats.update(float64(dt), s.timeline, s.views)
	}
	return nil
}

// Draw clears the screen and renders every view.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.premultiplied())
	}
	if s.OnDraw != nil {
		s.OnDraw(screen)
	}
	for _, v := range s.views {
		v.Draw(screen)
	}
	if s.ShowStats {
		s.stats.draw(screen)
	}
	s.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s.width > 0 && s.height > 0 {
		return s.width, s.height
	}
	return outsideWidth, outsideHeight
}

// viewAt returns the topmost view whose frame contains p.
func (s *Scene) viewAt(p Vec2) *InkView {
	for i := len(s.views) - 1; i >= 0; i-- {
		if s.views[i].frame.Contains(p) {
			return s.views[i]
		}
	}
	return nil
}
