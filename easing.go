package ink

import (
	"math"

	"github.com/tanema/gween/ease"
)

// CubicBezier returns an easing function for the cubic Bézier timing curve
// with control points (0,0), (x1,y1), (x2,y2), (1,1). The result plugs into
// gween like any function from the ease package.
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	c := bezierCurve{x1: x1, y1: y1, x2: x2, y2: y2}
	return func(t, b, change, d float32) float32 {
		if d <= 0 {
			return b + change
		}
		p := float64(t / d)
		return b + change*float32(c.solve(p))
	}
}

// LogDecelerate approximates a logarithmic deceleration. Ripples use it for
// their scale and position so they move quickly at first and settle slowly.
var LogDecelerate = CubicBezier(0.157, 0.72, 0.386, 0.987)

// MaterialEaseInOut is the standard material motion curve.
var MaterialEaseInOut = CubicBezier(0.4, 0, 0.2, 1)

// bezierCurve evaluates a unit cubic Bézier timing function.
type bezierCurve struct {
	x1, y1, x2, y2 float64
}

func bezierComponent(p1, p2, s float64) float64 {
	// B(s) = 3(1-s)^2 s p1 + 3(1-s) s^2 p2 + s^3
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func bezierDerivative(p1, p2, s float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}

// solve maps progress x in [0,1] to the eased value y. Newton's method
// converges for well-behaved curves; bisection covers flat derivatives.
func (c bezierCurve) solve(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	s := x
	for range 8 {
		err := bezierComponent(c.x1, c.x2, s) - x
		if math.Abs(err) < 1e-7 {
			return bezierComponent(c.y1, c.y2, s)
		}
		dx := bezierDerivative(c.x1, c.x2, s)
		if math.Abs(dx) < 1e-6 {
			break
		}
		s -= err / dx
	}

	lo, hi := 0.0, 1.0
	s = x
	for range 64 {
		v := bezierComponent(c.x1, c.x2, s)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return bezierComponent(c.y1, c.y2, s)
}
