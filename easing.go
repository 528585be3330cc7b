package linechart

import "math"

// EasingFunc remaps linear time progress to perceived progress.
// Domain and range are [0,1].
type EasingFunc func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// EaseInOutCubic accelerates through the first half of the animation
// and decelerates through the second.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// CubicBezier returns the easing described by a cubic Bézier curve
// from (0,0) to (1,1) with control points (x0,y0) and (x1,y1), the
// same parameterization CSS timing functions use. The curve parameter
// is recovered from x with a few Newton iterations.
func CubicBezier(x0, y0, x1, y1 float64) EasingFunc {
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}

		t := x
		for i := 0; i < 5; i++ {
			t2 := t * t
			t3 := t2 * t
			d := 1 - t
			d2 := d * d

			nx := 3*d2*t*x0 + 3*d*t2*x1 + t3
			dxdt := 3*d2*x0 + 6*d*t*(x1-x0) + 3*t2*(1-x1)
			if dxdt == 0 {
				break
			}

			t -= (nx - x) / dxdt
			if t <= 0 || t >= 1 {
				break
			}
		}
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}

		t2 := t * t
		t3 := t2 * t
		d := 1 - t
		d2 := d * d
		return 3*d2*t*y0 + 3*d*t2*y1 + t3
	}
}
