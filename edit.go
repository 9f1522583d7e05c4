package foil

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/foilkit/foil/bspline"
)

// DefaultXCut is the default trailing edge cut location as a fraction of
// the chord.
const DefaultXCut = 0.98

// MakeBluntTE cuts the upper and lower surfaces at xCut (a fraction of the
// chord) to create a blunt trailing edge perpendicular to the chord line.
// Optional guess values seed the parametric location of the top and bottom
// surface intersections; they default to 0.5.
//
// If a projection converges to a curve endpoint the cut did not intersect
// that surface. The rebuild still completes with the converged parameter and
// the returned error wraps ErrCutMiss; retry with a different guess.
func (a *Airfoil) MakeBluntTE(xCut float64, guess ...float64) error {
	topGuess, bottomGuess := 0.5, 0.5
	if len(guess) >= 1 {
		topGuess = guess[0]
	}
	if len(guess) >= 2 {
		bottomGuess = guess[1]
	}

	cut := r2.Add(a.le, r2.Scale(xCut, r2.Sub(a.te, a.le)))
	dir := chordNormal(a.twist, 1)
	ray := bspline.Line(
		r2.Sub(cut, r2.Scale(2*a.chord, dir)),
		r2.Add(cut, r2.Scale(2*a.chord, dir)),
	)
	top, bottom := a.Split()
	sTop, _, _ := top.Project(ray, 5000, projEps, topGuess, 0.5)
	sBottom, _, _ := bottom.Project(ray, 5000, projEps, bottomGuess, 0.5)

	var warn error
	if sTop == 0 {
		warn = errors.Join(warn, fmt.Errorf("%w: top surface not cut, try another top guess", ErrCutMiss))
	}
	if sBottom == 1 {
		warn = errors.Join(warn, fmt.Errorf("%w: bottom surface not cut, try another bottom guess", ErrCutMiss))
	}

	// Keep the original coordinates with a positive projection onto the
	// chord direction measured from the cut point, i.e. toward the LE.
	chord := r2.Sub(a.le, a.te)
	coords := []r2.Vec{top.Value(sTop)}
	for _, x := range a.Points() {
		if r2.Dot(chord, r2.Sub(x, cut)) > 0 {
			coords = append(coords, x)
		}
	}
	coords = append(coords, bottom.Value(sBottom))
	if err := a.Recompute(coords); err != nil {
		return err
	}
	return warn
}

// SharpenTE creates a sharp trailing edge from a blunt one by extending the
// upper and lower trailing edge tangent lines to their intersection. A
// sharp airfoil is first blunt-cut at xCut, which must lie strictly inside
// (0, 1).
func (a *Airfoil) SharpenTE(xCut float64) error {
	if xCut >= 1 || xCut <= 0 {
		return ErrXCut
	}
	var warn error
	if a.closed {
		if err := a.MakeBluntTE(xCut); err != nil {
			if !errors.Is(err, ErrCutMiss) {
				return err
			}
			warn = err
		}
	}

	valU := a.spline.Value(0)
	derU := a.spline.Derivative(0)
	slopeU := derU.Y / derU.X
	valL := a.spline.Value(1)
	derL := a.spline.Derivative(1)
	slopeL := derL.Y / derL.X

	// The two TE edges are lines in slope-intercept form; a valid sharp TE
	// needs them to intersect aft of the cut.
	if slopeU == slopeL {
		return Error("foil: slopes at blunt TE are parallel, no intersection point for a sharp TE")
	}
	if slopeU > slopeL {
		return Error("foil: slopes at blunt TE indicate an intersection towards the LE of the airfoil")
	}

	x := (valL.Y - valU.Y - valL.X*slopeL + valU.X*slopeU) / (slopeU - slopeL)
	y := valL.Y + slopeL*(x-valL.X)
	pt := r2.Vec{X: x, Y: y}

	coords := make([]r2.Vec, 0, len(a.Points())+2)
	coords = append(coords, pt)
	coords = append(coords, a.Points()...)
	coords = append(coords, pt)
	if err := a.Recompute(coords); err != nil {
		return err
	}
	return warn
}

// roundTEControlPoints lays out the control points of the small connecting
// curve used to round a blunt trailing edge: anchors at the two TE
// endpoints, a tangent extension half a TE unit past each anchor, and for
// k=4 an apex one TE unit along the chord direction past the TE.
func roundTEControlPoints(p0, p1 r2.Vec, slope0, slope1 float64, te, chordDir r2.Vec, teUnit float64, k int) []r2.Vec {
	ctl := make([]r2.Vec, k+1)
	ctl[0] = p0
	ctl[1] = r2.Vec{X: p0.X + 0.5*teUnit, Y: p0.Y + 0.5*teUnit*slope0}
	ctl[k] = p1
	ctl[k-1] = r2.Vec{X: p1.X + 0.5*teUnit, Y: p1.Y + 0.5*teUnit*slope1}
	if k == 4 {
		ctl[2] = r2.Add(te, r2.Scale(teUnit, chordDir))
	}
	return ctl
}

// RoundTE replaces a blunt trailing edge with a smooth rounded one built
// from an order-k connecting spline (k is 3 or 4). A sharp airfoil is first
// blunt-cut at xCut. nPts is the number of trailing edge points to splice
// in; dist scales the length of the rounded addition relative to the TE
// thickness.
func (a *Airfoil) RoundTE(xCut float64, k, nPts int, dist float64) error {
	if xCut >= 1 || xCut <= 0 {
		return ErrXCut
	}
	if k != 3 && k != 4 {
		return Error("foil: rounding spline order must be 3 or 4")
	}
	var warn error
	if a.closed {
		if err := a.MakeBluntTE(xCut); err != nil {
			if !errors.Is(err, ErrCutMiss) {
				return err
			}
			warn = err
		}
	}

	teUnit := a.TEThickness() * dist
	knots := make([]float64, 0, 2*k+1)
	for i := 0; i < k; i++ {
		knots = append(knots, 0)
	}
	knots = append(knots, 0.5)
	for i := 0; i < k; i++ {
		knots = append(knots, 1)
	}

	der0 := a.spline.Derivative(0)
	der1 := a.spline.Derivative(1)
	ctl := roundTEControlPoints(
		a.spline.Value(0), a.spline.Value(1),
		der0.Y/der0.X, der1.Y/der1.X,
		a.te, r2.Unit(r2.Sub(a.te, a.le)), teUnit, k,
	)
	connector, err := bspline.FromControlPoints(knots, k, ctl)
	if err != nil {
		return err
	}

	// Sample both halves of the connector from its midpoint outward and
	// splice them onto the boundary, dropping the duplicated endpoints.
	upper, lower := connector.Split(0.5)
	half := nPts / 2
	upperPts := make([]r2.Vec, half)
	lowerPts := make([]r2.Vec, half)
	for i := 0; i < half; i++ {
		s := 1 - float64(i)/float64(half-1)
		upperPts[i] = upper.Value(s)
		lowerPts[i] = lower.Value(s)
	}

	coords := make([]r2.Vec, 0, len(a.Points())+2*half-2)
	coords = append(coords, upperPts[:half-1]...)
	coords = append(coords, a.Points()...)
	coords = append(coords, lowerPts[1:]...)
	if err := a.Recompute(coords); err != nil {
		return err
	}
	return warn
}

// RemoveTE strips spurious trailing-edge segments from the coordinate set.
// A segment whose start lies beyond the chordwise fraction xtol from the LE
// is flagged when the magnitude of the dot product of its unit direction
// with the unit chord direction falls below tol, i.e. the segment runs
// roughly perpendicular to the chord. Flagged points are removed, the
// airfoil recomputed, and the removed points returned.
func (a *Airfoil) RemoveTE(tol, xtol float64) ([]r2.Vec, error) {
	coords := a.Points()
	chordVec := r2.Sub(a.te, a.le)
	unitChord := r2.Unit(chordVec)
	xLimit := a.le.X + chordVec.X*xtol

	keep := make(map[int]bool)
	removed := make(map[int]bool)
	for i := 0; i < len(coords)-1; i++ {
		if coords[i].X >= xLimit {
			delta := r2.Unit(r2.Sub(coords[i+1], coords[i]))
			if dot := r2.Dot(unitChord, delta); dot < tol && dot > -tol {
				removed[i] = true
				removed[i+1] = true
				continue
			}
		}
		keep[i] = true
		keep[i+1] = true
	}

	kept := make([]r2.Vec, 0, len(keep))
	for _, i := range sortedKeys(keep) {
		kept = append(kept, coords[i])
	}
	tePts := make([]r2.Vec, 0, len(removed))
	for _, i := range sortedKeys(removed) {
		tePts = append(tePts, coords[i])
	}
	if err := a.Recompute(kept); err != nil {
		return nil, err
	}
	return tePts, nil
}

func sortedKeys(m map[int]bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
