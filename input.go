package ink

import "github.com/hajimehoshi/ebiten/v2"

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// pointerState tracks one pointer between press and release. The view that
// received the press keeps every event until the release.
type pointerState struct {
	down bool
	last Vec2
	view *InkView
}

// Press delivers a pointer press at p (screen coordinates) to the topmost view
// under it. Injected input and tests call it directly.
func (s *Scene) Press(pointerID int, p Vec2) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &s.pointers[pointerID]
	if ps.down {
		return
	}
	ps.down = true
	ps.last = p
	ps.view = s.viewAt(p)
	if ps.view != nil {
		ps.view.TouchBegin(p.Sub(ps.view.frame.Origin()))
	}
}

// Move delivers a pointer move to the view that received the press.
func (s *Scene) Move(pointerID int, p Vec2) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &s.pointers[pointerID]
	if !ps.down || p == ps.last {
		return
	}
	ps.last = p
	if ps.view != nil {
		ps.view.TouchMove(p.Sub(ps.view.frame.Origin()))
	}
}

// Release delivers a pointer release to the view that received the press.
func (s *Scene) Release(pointerID int, p Vec2) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &s.pointers[pointerID]
	if !ps.down {
		return
	}
	v := ps.view
	*ps = pointerState{}
	if v != nil {
		v.TouchEnd(p.Sub(v.frame.Origin()))
	}
}

// processInput is called from Scene.Update to handle mouse and touch input.
func (s *Scene) processInput() {
	s.processMousePointer()
	s.processTouchPointers()
}

// processMousePointer handles the left mouse button (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	p := Vec2{X: float64(mx), Y: float64(my)}
	s.processPointer(0, p, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, Vec2{X: float64(tx), Y: float64(ty)}, true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			if ps := &s.pointers[i]; ps.down {
				s.Release(i, ps.last)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer turns a sampled pointer state into press, move and release.
func (s *Scene) processPointer(pointerID int, p Vec2, pressed bool) {
	ps := &s.pointers[pointerID]
	switch {
	case pressed && !ps.down:
		s.Press(pointerID, p)
	case pressed && ps.down:
		s.Move(pointerID, p)
	case !pressed && ps.down:
		s.Release(pointerID, p)
	}
}
