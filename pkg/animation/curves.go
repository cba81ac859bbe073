package animation

import "math"

// Easing curves transform linear animation progress into natural-feeling
// motion. Each curve maps t in [0, 1] to a transformed value; pass one to
// [Coordinator.Eased] or apply it to a progress sample directly.

// Linear returns progress unchanged (no easing).
func Linear(t float64) float64 {
	return t
}

// Ease is a general-purpose curve, equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates, equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates, equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut accelerates through the middle, equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns an easing function matching CSS cubic-bezier().
// The parameters are the two control points (x1,y1) and (x2,y2); the
// curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezierComponent(y1, y2, solveBezierParam(x1, x2, t))
	}
}

// solveBezierParam finds u such that the bezier x-component at u equals t.
func solveBezierParam(x1, x2, t float64) float64 {
	// Newton-Raphson converges quickly for most inputs.
	u := t
	for loopIter := 0; loopIter < 8; loopIter++ {
		x := bezierComponent(x1, x2, u) - t
		if math.Abs(x) < 1e-7 {
			return clampUnit(u)
		}
		dx := bezierDerivative(x1, x2, u)
		if math.Abs(dx) < 1e-7 {
			break
		}
		u -= x / dx
	}

	// Bisection fallback guarantees a stable solution in [0, 1].
	lo, hi := 0.0, 1.0
	u = clampUnit(u)
	for loopIter := 0; loopIter < 12; loopIter++ {
		x := bezierComponent(x1, x2, u) - t
		if math.Abs(x) < 1e-7 {
			break
		}
		if x > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}
	return u
}

func bezierComponent(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
