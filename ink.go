package ink

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// DefaultInkColor is near-black at 8% opacity, the ink color used when none
// is configured.
var DefaultInkColor = Color{R: 0, G: 0, B: 0, A: 0.08}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// premultiplied converts c to 8-bit premultiplied components.
func (c Color) premultiplied() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for ebiten fills.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for points, offsets and centers.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectNull is the null rectangle: it has no position and contains nothing.
// Geometry helpers propagate it rather than treating it as the zero rect.
var RectNull = Rect{X: math.Inf(1), Y: math.Inf(1)}

// IsNull reports whether r is RectNull.
func (r Rect) IsNull() bool {
	return math.IsInf(r.X, 1) || math.IsInf(r.Y, 1)
}

// Origin returns the top-left corner.
func (r Rect) Origin() Vec2 { return Vec2{r.X, r.Y} }

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{r.Width, r.Height} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Hypot returns the length of the rectangle's diagonal.
func (r Rect) Hypot() float64 {
	return Hypot(r.Width, r.Height)
}

// Standardize returns r with a non-negative width and height.
func (r Rect) Standardize() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Integral returns the smallest rectangle with integer origin and size that
// contains r.
func (r Rect) Integral() Rect {
	if r.IsNull() {
		return RectNull
	}
	r = r.Standardize()
	minX, minY := math.Floor(r.X), math.Floor(r.Y)
	maxX, maxY := math.Ceil(r.X+r.Width), math.Ceil(r.Y+r.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether the point lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.Width <= r.X+r.Width &&
		o.Y+o.Height <= r.Y+r.Height
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.IsNull() || r.Width <= 0 || r.Height <= 0
}

// InkStyle selects whether ink is clipped to its view.
type InkStyle uint8

const (
	InkStyleBounded   InkStyle = iota // ink is clipped to the view's bounds
	InkStyleUnbounded                 // ink may spread past the view's bounds
)

// RippleState tracks where a ripple is in its lifecycle.
type RippleState uint8

const (
	RippleNone      RippleState = iota // created, not yet entered
	RippleSpreading                    // entered and expanding
	RippleComplete                     // exited normally
	RippleCancelled                    // exited through the cancel path; sticky
)

func (s RippleState) String() string {
	switch s {
	case RippleNone:
		return "none"
	case RippleSpreading:
		return "spreading"
	case RippleComplete:
		return "complete"
	case RippleCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// RippleID identifies one ripple across notifications. IDs are never reused
// within a process.
type RippleID uint32

// rippleIDCounter is a plain counter (no atomic, ink is single-threaded).
var rippleIDCounter uint32

func nextRippleID() RippleID {
	rippleIDCounter++
	return RippleID(rippleIDCounter)
}
