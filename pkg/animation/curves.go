package animation

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 { return t }

var (
	// EaseIn starts slowly and accelerates.
	EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)
	// EaseOut starts quickly and decelerates.
	EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)
	// EaseInOut accelerates, then decelerates.
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

// CubicBezier returns the easing curve through (0,0), (x1,y1), (x2,y2) and
// (1,1), matching CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		// x(u) is monotonic for control points in [0, 1]; bisect for u.
		lo, hi := 0.0, 1.0
		u := t
		for i := 0; i < 32; i++ {
			x := bezier(x1, x2, u)
			if x < t {
				lo = u
			} else {
				hi = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

// bezier evaluates one coordinate of the cubic with fixed end points 0 and 1.
func bezier(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}
