package ink

import "math"

// floatEqualK scales the epsilon band in FloatEqual.
const floatEqualK = 3

// minNormalFloat64 is the smallest positive normal float64 (2^-1022).
const minNormalFloat64 = 0x1p-1022

// epsilonFloat64 is the difference between 1 and the next representable float64.
const epsilonFloat64 = 0x1p-52

// Hypot returns sqrt(x*x + y*y).
func Hypot(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// FloatEqual reports whether a and b are equal within a relative tolerance of
// a few ulps, or both lie within the subnormal band around zero.
func FloatEqual(a, b float64) bool {
	diff := math.Abs(a - b)
	return diff < floatEqualK*epsilonFloat64*math.Abs(a+b) || diff < minNormalFloat64
}

// FloatIsExactlyZero reports whether v is zero to within machine epsilon.
func FloatIsExactlyZero(v float64) bool {
	return math.Abs(v) < epsilonFloat64
}

// InterpolatePoint returns the point t of the way from start to end.
func InterpolatePoint(start, end Vec2, t float64) Vec2 {
	return Vec2{
		X: start.X + (end.X-start.X)*t,
		Y: start.Y + (end.Y-start.Y)*t,
	}
}

// AlignRectToScale expands rect to the smallest standardized rect containing
// it whose origin and size are aligned to the 1/scale pixel grid.
// A scale of zero is treated as 1. The null rect is returned unchanged.
func AlignRectToScale(rect Rect, scale float64) Rect {
	if rect.IsNull() {
		return RectNull
	}
	if FloatEqual(scale, 0) {
		scale = 1
	}
	if FloatEqual(scale, 1) {
		return rect.Integral()
	}

	rect = rect.Standardize()
	origin := Vec2{
		X: math.Floor(rect.X*scale) / scale,
		Y: math.Floor(rect.Y*scale) / scale,
	}
	adjust := Size{Width: rect.X - origin.X, Height: rect.Y - origin.Y}
	return Rect{
		X:      origin.X,
		Y:      origin.Y,
		Width:  math.Ceil((rect.Width+adjust.Width)*scale) / scale,
		Height: math.Ceil((rect.Height+adjust.Height)*scale) / scale,
	}
}

// CeilSizeToScale expands size to the closest larger pixel-aligned value.
// Unlike AlignRectToScale, a scale of zero yields the zero size.
func CeilSizeToScale(size Size, scale float64) Size {
	if FloatEqual(scale, 0) {
		return Size{}
	}
	return Size{
		Width:  math.Ceil(size.Width*scale) / scale,
		Height: math.Ceil(size.Height*scale) / scale,
	}
}

// RoundPointToScale rounds point to the nearest pixel on the 1/scale grid.
// A scale of zero yields the zero point.
func RoundPointToScale(point Vec2, scale float64) Vec2 {
	if FloatEqual(scale, 0) {
		return Vec2{}
	}
	return Vec2{
		X: math.Round(point.X*scale) / scale,
		Y: math.Round(point.Y*scale) / scale,
	}
}

// RoundCenterForBoundsAndScale returns the center point of a view such that
// its origin lands on the pixel grid. Returns the zero point if scale is zero
// or bounds is RectNull.
func RoundCenterForBoundsAndScale(center Vec2, bounds Rect, scale float64) Vec2 {
	if FloatEqual(scale, 0) || bounds.IsNull() {
		return Vec2{}
	}
	half := Vec2{X: bounds.Width / 2, Y: bounds.Height / 2}
	origin := RoundPointToScale(center.Sub(half), scale)
	return origin.Add(half)
}
