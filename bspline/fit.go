package bspline

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// chordParams returns the normalized cumulative chord-length parameter of
// each point.
func chordParams(points []r2.Vec) []float64 {
	s := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		s[i] = s[i-1] + r2.Norm(r2.Sub(points[i], points[i-1]))
	}
	total := s[len(s)-1]
	if total == 0 {
		return s
	}
	for i := range s {
		s[i] /= total
	}
	return s
}

// averagedKnots builds the clamped knot vector for interpolation by knot
// averaging over the parameter values.
func averagedKnots(params []float64, k int) []float64 {
	n := len(params)
	p := k - 1
	t := make([]float64, n+k)
	for i := 0; i < k; i++ {
		t[i] = 0
		t[n+k-1-i] = 1
	}
	for j := 1; j < n-p; j++ {
		sum := 0.0
		for i := j; i < j+p; i++ {
			sum += params[i]
		}
		t[j+p] = sum / float64(p)
	}
	return t
}

// uniformKnots builds a clamped knot vector with uniformly spaced interior
// knots for nCtl control points.
func uniformKnots(nCtl, k int) []float64 {
	p := k - 1
	t := make([]float64, nCtl+k)
	for i := 0; i < k; i++ {
		t[i] = 0
		t[nCtl+k-1-i] = 1
	}
	for j := 1; j < nCtl-p; j++ {
		t[j+p] = float64(j) / float64(nCtl-p)
	}
	return t
}

// collocation fills row i of a with the nonzero basis functions at u.
func collocation(a *mat.Dense, row int, c *Curve, u float64) {
	p := c.k - 1
	span := c.findSpan(u)
	bf := basisFuns(c.t, span, u, p)
	for j := 0; j <= p; j++ {
		a.Set(row, span-p+j, bf[j])
	}
}

// Interpolate fits an order-k B-spline through the ordered point set using
// chord-length parameterization. The order is clamped to the number of
// points.
func Interpolate(points []r2.Vec, k int) (*Curve, error) {
	n := len(points)
	if n < 2 {
		return nil, errors.New("bspline: interpolation needs at least 2 points")
	}
	if k < 2 {
		return nil, errors.New("bspline: order must be at least 2")
	}
	if k > n {
		k = n
	}
	params := chordParams(points)
	c := &Curve{
		k:   k,
		t:   averagedKnots(params, k),
		ctl: make([]r2.Vec, n),
		x:   append([]r2.Vec(nil), points...),
	}
	a := mat.NewDense(n, n, nil)
	b := mat.NewDense(n, 2, nil)
	for i, u := range params {
		collocation(a, i, c, u)
		b.Set(i, 0, points[i].X)
		b.Set(i, 1, points[i].Y)
	}
	var sol mat.Dense
	if err := sol.Solve(a, b); err != nil {
		return nil, fmt.Errorf("bspline: interpolation system: %w", err)
	}
	for i := range c.ctl {
		c.ctl[i] = r2.Vec{X: sol.At(i, 0), Y: sol.At(i, 1)}
	}
	return c, nil
}

// Fit least-squares fits an order-k B-spline with nCtl control points through
// the ordered point set. The first and last control points are pinned to the
// end data points.
func Fit(points []r2.Vec, k, nCtl int) (*Curve, error) {
	n := len(points)
	if nCtl >= n {
		return Interpolate(points, k)
	}
	if nCtl < k {
		return nil, errors.New("bspline: fewer control points than spline order")
	}
	params := chordParams(points)
	c := &Curve{
		k:   k,
		t:   uniformKnots(nCtl, k),
		ctl: make([]r2.Vec, nCtl),
		x:   append([]r2.Vec(nil), points...),
	}
	c.ctl[0] = points[0]
	c.ctl[nCtl-1] = points[n-1]
	if nCtl == 2 {
		return c, nil
	}

	// Solve for the interior control points with the end points held fixed.
	full := mat.NewDense(n, nCtl, nil)
	for i, u := range params {
		collocation(full, i, c, u)
	}
	a := mat.NewDense(n, nCtl-2, nil)
	b := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		for j := 1; j < nCtl-1; j++ {
			a.Set(i, j-1, full.At(i, j))
		}
		b.Set(i, 0, points[i].X-full.At(i, 0)*c.ctl[0].X-full.At(i, nCtl-1)*c.ctl[nCtl-1].X)
		b.Set(i, 1, points[i].Y-full.At(i, 0)*c.ctl[0].Y-full.At(i, nCtl-1)*c.ctl[nCtl-1].Y)
	}
	var sol mat.Dense
	if err := sol.Solve(a, b); err != nil {
		return nil, fmt.Errorf("bspline: least squares system: %w", err)
	}
	for j := 1; j < nCtl-1; j++ {
		c.ctl[j] = r2.Vec{X: sol.At(j-1, 0), Y: sol.At(j-1, 1)}
	}
	return c, nil
}

// FromControlPoints constructs a curve directly from a knot vector, order
// and control points. The knot vector is normalized to [0, 1].
func FromControlPoints(knots []float64, k int, ctl []r2.Vec) (*Curve, error) {
	if len(knots) != len(ctl)+k {
		return nil, fmt.Errorf("bspline: knot count %d != control point count %d + order %d", len(knots), len(ctl), k)
	}
	c := &Curve{k: k, t: append([]float64(nil), knots...), ctl: append([]r2.Vec(nil), ctl...)}
	return c.reparam(), nil
}

// Line returns the order-2 curve through the two points: a straight segment
// from p0 at s=0 to p1 at s=1.
func Line(p0, p1 r2.Vec) *Curve {
	return &Curve{
		k:   2,
		t:   []float64{0, 0, 1, 1},
		ctl: []r2.Vec{p0, p1},
		x:   []r2.Vec{p0, p1},
	}
}
