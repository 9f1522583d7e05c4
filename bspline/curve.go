// Package bspline implements clamped B-spline curves in the plane: fitting
// by interpolation or least squares, evaluation and differentiation,
// splitting by knot insertion, and curve-to-curve projection. Curves are
// parameterized over s in [0, 1].
package bspline

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/foilkit/foil/internal/d2"
)

// knotTol is the tolerance for treating two knot values as equal.
const knotTol = 1e-12

// Curve is a clamped B-spline curve of order k (degree k-1).
type Curve struct {
	k   int
	t   []float64 // knot vector, len(t) == len(ctl)+k
	ctl []r2.Vec
	x   []r2.Vec // data points the curve was fit to, nil for direct construction

	deriv *Curve // lazily built derivative curve
}

// Order returns the spline order k (degree plus one).
func (c *Curve) Order() int { return c.k }

// Knots returns the knot vector.
func (c *Curve) Knots() []float64 { return c.t }

// ControlPoints returns the control point slice.
func (c *Curve) ControlPoints() []r2.Vec { return c.ctl }

// Points returns the data points the curve was fit to, or nil for a curve
// built directly from control points.
func (c *Curve) Points() []r2.Vec { return c.x }

// Len returns the number of fitted data points.
func (c *Curve) Len() int { return len(c.x) }

// findSpan returns the knot span index i such that t[i] <= u < t[i+1].
func (c *Curve) findSpan(u float64) int {
	p := c.k - 1
	n := len(c.ctl) - 1
	if u >= c.t[n+1] {
		return n
	}
	if u <= c.t[p] {
		return p
	}
	lo, hi := p, n+1
	mid := (lo + hi) / 2
	for u < c.t[mid] || u >= c.t[mid+1] {
		if u < c.t[mid] {
			hi = mid
		} else {
			lo = mid
		}
		mid = (lo + hi) / 2
	}
	return mid
}

// basisFuns returns the k nonzero basis functions at u for span i.
func basisFuns(t []float64, i int, u float64, p int) []float64 {
	n := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	n[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - t[i+1-j]
		right[j] = t[i+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			den := right[r+1] + left[j-r]
			var temp float64
			if den != 0 {
				temp = n[r] / den
			}
			n[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		n[j] = saved
	}
	return n
}

// Value evaluates the curve at parameter s using de Boor's algorithm.
// s is clamped to [0, 1].
func (c *Curve) Value(s float64) r2.Vec {
	u := d2.Clamp(s, 0, 1)
	p := c.k - 1
	i := c.findSpan(u)
	d := make([]r2.Vec, p+1)
	copy(d, c.ctl[i-p:i+1])
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			ii := i - p + j
			den := c.t[ii+p-r+1] - c.t[ii]
			var alpha float64
			if den != 0 {
				alpha = (u - c.t[ii]) / den
			}
			d[j] = r2.Add(r2.Scale(1-alpha, d[j-1]), r2.Scale(alpha, d[j]))
		}
	}
	return d[p]
}

// derivCurve returns the curve's derivative as a B-spline of order k-1.
func (c *Curve) derivCurve() *Curve {
	p := c.k - 1
	q := make([]r2.Vec, len(c.ctl)-1)
	for i := range q {
		den := c.t[i+p+1] - c.t[i+1]
		if den != 0 {
			q[i] = r2.Scale(float64(p)/den, r2.Sub(c.ctl[i+1], c.ctl[i]))
		}
	}
	return &Curve{k: c.k - 1, t: c.t[1 : len(c.t)-1], ctl: q}
}

func (c *Curve) derivative() *Curve {
	if c.deriv == nil {
		c.deriv = c.derivCurve()
	}
	return c.deriv
}

// Derivative evaluates dC/ds at parameter s.
func (c *Curve) Derivative(s float64) r2.Vec {
	if c.k < 2 {
		return r2.Vec{}
	}
	return c.derivative().Value(s)
}

// SecondDerivative evaluates d2C/ds2 at parameter s.
func (c *Curve) SecondDerivative(s float64) r2.Vec {
	if c.k < 3 {
		return r2.Vec{}
	}
	return c.derivative().derivative().Value(s)
}

// insertKnot returns a new curve with the knot u inserted once (Boehm's
// algorithm). The curve shape is unchanged.
func (c *Curve) insertKnot(u float64) *Curve {
	p := c.k - 1
	i := c.findSpan(u)
	ctl := make([]r2.Vec, len(c.ctl)+1)
	copy(ctl[:i-p+1], c.ctl[:i-p+1])
	for j := i - p + 1; j <= i; j++ {
		den := c.t[j+p] - c.t[j]
		var alpha float64
		if den != 0 {
			alpha = (u - c.t[j]) / den
		}
		ctl[j] = r2.Add(r2.Scale(1-alpha, c.ctl[j-1]), r2.Scale(alpha, c.ctl[j]))
	}
	copy(ctl[i+1:], c.ctl[i:])
	t := make([]float64, len(c.t)+1)
	copy(t[:i+1], c.t[:i+1])
	t[i+1] = u
	copy(t[i+2:], c.t[i+1:])
	return &Curve{k: c.k, t: t, ctl: ctl}
}

// multiplicity returns the number of knots equal to u within tolerance.
func (c *Curve) multiplicity(u float64) int {
	m := 0
	for _, tv := range c.t {
		if tv > u-knotTol && tv < u+knotTol {
			m++
		}
	}
	return m
}

// reparam returns the curve with its knot vector affinely mapped to [0, 1].
func (c *Curve) reparam() *Curve {
	t0 := c.t[0]
	t1 := c.t[len(c.t)-1]
	span := t1 - t0
	t := make([]float64, len(c.t))
	for i, tv := range c.t {
		t[i] = (tv - t0) / span
	}
	return &Curve{k: c.k, t: t, ctl: c.ctl}
}

// Split partitions the curve at parameter s into two curves, each
// reparameterized over [0, 1].
func (c *Curve) Split(s float64) (*Curve, *Curve) {
	p := c.k - 1
	u := d2.Clamp(s, 0, 1)
	cc := c
	for m := cc.multiplicity(u); m < p; m++ {
		cc = cc.insertKnot(u)
	}
	// a is the number of knots strictly below the cut
	a := 0
	for _, tv := range cc.t {
		if tv < u-knotTol {
			a++
		}
	}
	leftT := make([]float64, a+p+1)
	copy(leftT, cc.t[:a+p])
	leftT[a+p] = u
	rightT := make([]float64, 1+len(cc.t)-a)
	rightT[0] = u
	copy(rightT[1:], cc.t[a:])

	left := &Curve{k: cc.k, t: leftT, ctl: append([]r2.Vec(nil), cc.ctl[:a]...)}
	right := &Curve{k: cc.k, t: rightT, ctl: append([]r2.Vec(nil), cc.ctl[a-1:]...)}
	return left.reparam(), right.reparam()
}
