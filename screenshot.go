package ink

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. The PNG is
// written to ScreenshotDir with a timestamped name at the end of Draw.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// RunScript replays script against v, one step per Update. Snapshot steps
// without their own handler queue a Screenshot.
func (s *Scene) RunScript(script *TouchScript, v *InkView) {
	if script.OnSnapshot == nil {
		script.OnSnapshot = s.Screenshot
	}
	s.script = script
	s.scriptView = v
}

// stepScript advances the running script, if any.
func (s *Scene) stepScript() {
	if s.script == nil {
		return
	}
	s.script.Step(s.scriptView)
	if s.script.Done() {
		debugf("touch script finished")
		s.script = nil
		s.scriptView = nil
	}
}

// flushScreenshots captures screen once for every queued label.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	dir := s.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[ink] screenshot: mkdir %s: %v\n", dir, err)
		s.screenshotQueue = s.screenshotQueue[:0]
		return
	}

	img := unpremultiply(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.screenshotQueue {
		path := filepath.Join(dir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := gg.SavePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[ink] screenshot: %v\n", err)
		}
	}
	s.screenshotQueue = s.screenshotQueue[:0]
}

// unpremultiply reads back screen as straight-alpha NRGBA.
func unpremultiply(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	screen.ReadPixels(img.Pix)
	for i := 0; i < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = uint8(min(int(img.Pix[i+c])*255/int(a), 255))
		}
	}
	return img
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing everything else
// with '_'. Empty labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
