package ink

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// SnapshotOptions controls headless rendering. The zero value renders onto a
// transparent image without a caption.
type SnapshotOptions struct {
	// Background fills the image before the ink is drawn. Nil leaves it
	// transparent.
	Background color.Color

	// Caption, when set, is drawn along the bottom-left edge in a monospace
	// face.
	Caption     string
	CaptionSize float64
}

// Snapshot rasterizes the view's current ink into an image the size of its
// frame, without a GPU. Animations are sampled at their last ticked values.
func (v *InkView) Snapshot(opts SnapshotOptions) (image.Image, error) {
	w := int(v.frame.Width + 0.5)
	h := int(v.frame.Height + 0.5)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("ink: snapshot: view has no area (%gx%g)", v.frame.Width, v.frame.Height)
	}
	// Commands are in the parent's space; shift them so the frame starts at 0,0.
	origin := Vec2{X: -v.frame.X, Y: -v.frame.Y}
	dc, err := rasterize(w, h, AppendRenderCommands(nil, v.root, origin), opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG writes a snapshot of the view to path.
func (v *InkView) SavePNG(path string, opts SnapshotOptions) error {
	img, err := v.Snapshot(opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("ink: save %s: %w", path, err)
	}
	return nil
}

// RasterizeCommands draws cmds onto a new w x h image.
func RasterizeCommands(w, h int, cmds []RenderCommand, opts SnapshotOptions) (image.Image, error) {
	dc, err := rasterize(w, h, cmds, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func rasterize(w, h int, cmds []RenderCommand, opts SnapshotOptions) (*gg.Context, error) {
	dc := gg.NewContext(w, h)
	if opts.Background != nil {
		dc.SetColor(opts.Background)
		dc.Clear()
	}

	for i := range cmds {
		c := &cmds[i]
		dc.Push()
		if !c.Clip.IsNull() {
			dc.DrawRectangle(c.Clip.X, c.Clip.Y, c.Clip.Width, c.Clip.Height)
			dc.Clip()
		}
		dc.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
		dc.SetRGBA(c.Color.R, c.Color.G, c.Color.B, clamp01(c.Color.A))
		dc.Fill()
		dc.Pop()
	}

	if opts.Caption != "" {
		face, err := captionFace(opts.CaptionSize)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(color.Black)
		dc.DrawString(opts.Caption, 4, float64(h)-4)
	}
	return dc, nil
}

// captionFont is parsed on first use.
var captionFont *truetype.Font

func captionFace(size float64) (font.Face, error) {
	if captionFont == nil {
		f, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("ink: parse caption font: %w", err)
		}
		captionFont = f
	}
	if size <= 0 {
		size = 12
	}
	return truetype.NewFace(captionFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
