package ink

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a touch script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Animated *bool   `json:"animated,omitempty"`
}

type touchScriptJSON struct {
	Steps []scriptStep `json:"steps"`
}

type touchPhase uint8

const (
	touchBegin touchPhase = iota
	touchMove
	touchEnd
)

// queuedTouch is one synthetic touch waiting to be delivered.
type queuedTouch struct {
	phase touchPhase
	point Vec2
}

// TouchScript replays a JSON sequence of touches against an InkView, one
// touch per frame. Actions: begin, move, end, tap, drag, cancel, wait and
// snapshot.
type TouchScript struct {
	// OnSnapshot is called for every snapshot step with its label.
	OnSnapshot func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	queue     []queuedTouch
	done      bool
}

// LoadTouchScript parses a JSON touch script.
func LoadTouchScript(data []byte) (*TouchScript, error) {
	var script touchScriptJSON
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("ink: parse touch script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("ink: parse touch script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "begin", "move", "end", "tap", "drag", "cancel", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("ink: parse touch script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TouchScript{steps: script.Steps}, nil
}

// Done reports whether every step has been executed.
func (s *TouchScript) Done() bool {
	return s.done
}

// Step advances the script by one frame, delivering at most one touch to v.
func (s *TouchScript) Step(v *InkView) {
	if s.done {
		return
	}
	if len(s.queue) > 0 {
		t := s.queue[0]
		copy(s.queue, s.queue[1:])
		s.queue = s.queue[:len(s.queue)-1]
		switch t.phase {
		case touchBegin:
			v.TouchBegin(t.point)
		case touchMove:
			v.TouchMove(t.point)
		case touchEnd:
			v.TouchEnd(t.point)
		}
		s.checkDone()
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		s.checkDone()
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++
	p := Vec2{X: st.X, Y: st.Y}

	switch st.Action {
	case "begin":
		v.TouchBegin(p)
	case "move":
		v.TouchMove(p)
	case "end":
		v.TouchEnd(p)
	case "tap":
		v.TouchBegin(p)
		s.queue = append(s.queue, queuedTouch{phase: touchEnd, point: p})
	case "drag":
		s.queueDrag(v, st)
	case "cancel":
		animated := true
		if st.Animated != nil {
			animated = *st.Animated
		}
		v.TouchCancel(animated)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		if s.OnSnapshot != nil {
			s.OnSnapshot(st.Label)
		}
	}
	s.checkDone()
}

// queueDrag begins the touch now and queues the moves and the release.
// The whole drag consumes st.Frames frames, at least 2.
func (s *TouchScript) queueDrag(v *InkView, st scriptStep) {
	frames := st.Frames
	if frames < 2 {
		frames = 2
	}
	from := Vec2{X: st.FromX, Y: st.FromY}
	to := Vec2{X: st.ToX, Y: st.ToY}
	v.TouchBegin(from)
	moves := frames - 2
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves+1)
		s.queue = append(s.queue, queuedTouch{phase: touchMove, point: InterpolatePoint(from, to, t)})
	}
	s.queue = append(s.queue, queuedTouch{phase: touchEnd, point: to})
}

func (s *TouchScript) checkDone() {
	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(s.queue) == 0 {
		s.done = true
	}
}

// Run steps the script and the timeline together, dt seconds per frame,
// until the script is done and every animation has finished or maxFrames
// frames have passed. It returns the number of frames run.
func (s *TouchScript) Run(v *InkView, dt float32, maxFrames int) int {
	frames := 0
	for frames < maxFrames {
		if s.done && v.timeline.Len() == 0 {
			break
		}
		s.Step(v)
		v.timeline.Update(dt)
		frames++
	}
	return frames
}
