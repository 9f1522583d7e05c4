package bspline

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/foilkit/foil/internal/d2"
)

// projectScan is the grid size of the coarse parameter scan used to seed an
// unguided projection.
const projectScan = 25

// Project finds the closest-approach parameter pair between the receiver and
// another curve by damped Newton iteration on the squared distance. If an
// intersection exists the distance converges to zero and the returned
// parameters locate it.
//
// guess may supply a starting parameter pair (s on the receiver, t on
// other); without one the curves are coarsely scanned for the best seed.
// The iteration stops when the applied parameter update drops below tol or
// after maxIter iterations. Parameters are clamped to [0, 1], so a search
// that leaves the domain converges to a curve endpoint; callers detect this
// from the returned parameter.
func (c *Curve) Project(other *Curve, maxIter int, tol float64, guess ...float64) (s, t, dist float64) {
	if len(guess) >= 2 {
		s, t = d2.Clamp(guess[0], 0, 1), d2.Clamp(guess[1], 0, 1)
	} else {
		best := math.MaxFloat64
		for i := 0; i <= projectScan; i++ {
			si := float64(i) / projectScan
			ci := c.Value(si)
			for j := 0; j <= projectScan; j++ {
				tj := float64(j) / projectScan
				if d := r2.Norm2(r2.Sub(ci, other.Value(tj))); d < best {
					best = d
					s, t = si, tj
				}
			}
		}
	}
	for iter := 0; iter < maxIter; iter++ {
		p := c.Value(s)
		q := other.Value(t)
		d := r2.Sub(p, q)
		dp := c.Derivative(s)
		dq := other.Derivative(t)
		g0 := r2.Dot(d, dp)
		g1 := -r2.Dot(d, dq)
		h00 := r2.Dot(dp, dp) + r2.Dot(d, c.SecondDerivative(s))
		h11 := r2.Dot(dq, dq) - r2.Dot(d, other.SecondDerivative(t))
		h01 := -r2.Dot(dp, dq)
		det := h00*h11 - h01*h01
		var ds, dt float64
		if math.Abs(det) < 1e-300 {
			// singular system, fall back to scaled steepest descent
			ds = -g0 / math.Max(h00, 1e-12)
			dt = -g1 / math.Max(h11, 1e-12)
		} else {
			ds = -(h11*g0 - h01*g1) / det
			dt = -(h00*g1 - h01*g0) / det
		}
		sNew := d2.Clamp(s+ds, 0, 1)
		tNew := d2.Clamp(t+dt, 0, 1)
		moved := math.Abs(sNew-s) + math.Abs(tNew-t)
		s, t = sNew, tNew
		if moved < tol {
			break
		}
	}
	return s, t, r2.Norm(r2.Sub(c.Value(s), other.Value(t)))
}
