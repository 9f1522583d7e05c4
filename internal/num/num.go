// Package num provides the scalar root-finding and bounded minimization
// routines used by the airfoil geometry code. The functions operate on
// one-dimensional objectives over a fixed interval and are bounded by
// iteration budgets rather than wall-clock limits.
package num

import (
	"errors"
	"math"
)

const (
	// machine epsilon for float64, 2^-52.
	eps = 0x1p-52
	// inverse golden ratio squared, the golden section step.
	cgold = 0.3819660112501051
)

var (
	// ErrBracket is returned when a root is not bracketed by the interval.
	ErrBracket = errors.New("num: root not bracketed")
	// ErrIterations is returned when an iterative search exhausts its
	// iteration budget without meeting its tolerance.
	ErrIterations = errors.New("num: exceeded iteration budget")
)

// RootBrent finds a root of f on [a, b] using Brent's method. f(a) and f(b)
// must have opposite signs.
func RootBrent(f func(float64) float64, a, b, tol float64, maxIter int) (float64, error) {
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, ErrBracket
	}
	c, fc := a, fa
	d := b - a
	e := d
	for i := 0; i < maxIter; i++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*eps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// attempt inverse quadratic interpolation
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				// interpolation rejected, bisect
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}
	return b, ErrIterations
}

// RootNewton finds a root of f near x0 using Newton iteration with the
// analytic derivative df.
func RootNewton(f, df func(float64) float64, x0, tol float64, maxIter int) (float64, error) {
	x := x0
	for i := 0; i < maxIter; i++ {
		fx := f(x)
		if math.Abs(fx) < tol {
			return x, nil
		}
		dfx := df(x)
		if dfx == 0 {
			return x, errors.New("num: newton derivative vanished")
		}
		step := fx / dfx
		x -= step
		if math.Abs(step) < tol {
			return x, nil
		}
	}
	return x, ErrIterations
}

// MinimizeBounded minimizes f over [a, b] using Brent's bounded method
// (golden section with parabolic interpolation). It returns the abscissa of
// the minimum.
func MinimizeBounded(f func(float64) float64, a, b, tol float64, maxIter int) (float64, error) {
	x := a + cgold*(b-a)
	w, v := x, x
	fx := f(x)
	fw, fv := fx, fx
	var d, e float64
	for i := 0; i < maxIter; i++ {
		xm := 0.5 * (a + b)
		tol1 := tol*math.Abs(x) + 1e-11
		tol2 := 2 * tol1
		if math.Abs(x-xm) <= tol2-0.5*(b-a) {
			return x, nil
		}
		golden := true
		if math.Abs(e) > tol1 {
			// parabola through x, w, v
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			etmp := e
			e = d
			if math.Abs(p) < math.Abs(0.5*q*etmp) && p > q*(a-x) && p < q*(b-x) {
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = math.Copysign(tol1, xm-x)
				}
				golden = false
			}
		}
		if golden {
			if x >= xm {
				e = a - x
			} else {
				e = b - x
			}
			d = cgold * e
		}
		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + math.Copysign(tol1, d)
		}
		fu := f(u)
		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, w = w, u
				fv, fw = fw, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}
	}
	return x, ErrIterations
}
