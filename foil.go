// Package foil models a single planar airfoil as a parametric B-spline
// curve and derives the geometric quantities an aerodynamic design tool
// needs: leading and trailing edge location, chord, twist, camber line,
// thickness distributions and their extrema. It also supports controlled
// edits to the trailing edge (blunting, sharpening, rounding, stripping)
// that rebuild the whole derived state.
//
// An Airfoil is constructed from an ordered coordinate set that starts and
// ends at the trailing edge. If the first and last points coincide the
// trailing edge is sharp (closed); otherwise it is blunt. Orientation does
// not matter on input: clockwise coordinate sets are reversed so that the
// boundary spline always runs counter-clockwise, from the upper trailing
// edge surface over the leading edge to the lower trailing edge surface.
package foil

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/foilkit/foil/bspline"
	"github.com/foilkit/foil/internal/d2"
	"github.com/foilkit/foil/internal/num"
)

const (
	// projEps is the projection tolerance, the machine epsilon 2^-52.
	projEps = 0x1p-52
	// rootTol is the parametric tolerance of the leading edge search.
	rootTol = 1e-12
	// optTol is the relative tolerance of the bounded extremal searches.
	optTol = 1e-10
	// optIter bounds the extremal search iteration count.
	optIter = 500
)

// ThicknessType selects the thickness measurement convention.
type ThicknessType string

const (
	// British thickness is the surface separation measured perpendicular
	// to the chord.
	British ThicknessType = "british"
	// American thickness is the surface separation measured perpendicular
	// to the local camber line tangent.
	American ThicknessType = "american"
)

// Airfoil is a single closed or open planar airfoil. All derived state is a
// consistent function of the current boundary spline; every mutation funnels
// through Recompute. An Airfoil is not safe for concurrent mutation, but
// distinct instances share no state.
type Airfoil struct {
	order     int
	nCtl      int
	normalize bool

	spline *bspline.Curve
	te, le r2.Vec
	sLE    float64
	chord  float64
	twist  float64 // degrees
	closed bool

	camber   *bspline.Curve
	british  *bspline.Curve
	american *bspline.Curve

	sampled []r2.Vec
}

// Option configures airfoil construction.
type Option func(*Airfoil)

// WithOrder sets the boundary spline order k (order n implies C^(n-2)
// continuity). The default is 4.
func WithOrder(k int) Option {
	return func(a *Airfoil) { a.order = k }
}

// WithControlPoints switches the boundary spline from interpolation to a
// least-squares fit with n control points.
func WithControlPoints(n int) Option {
	return func(a *Airfoil) { a.nCtl = n }
}

// Normalized centers the leading edge on the origin, zeroes the twist and
// scales the chord to one after construction.
func Normalized() Option {
	return func(a *Airfoil) { a.normalize = true }
}

// New builds an airfoil from an ordered coordinate set whose first and last
// points are the trailing edge.
//
// The leading edge is recovered by a bracketed root search over the
// parametric interval [0.3, 0.7], which assumes the leading edge lies near
// the middle of the trailing-edge-first parameterization. Coordinate sets
// violating that assumption fail construction.
func New(coords []r2.Vec, opts ...Option) (*Airfoil, error) {
	a := &Airfoil{order: 4}
	for _, o := range opts {
		o(a)
	}
	if len(coords) < 3 {
		return nil, Error("foil: need at least 3 coordinates")
	}
	if err := a.Recompute(coords); err != nil {
		return nil, err
	}
	if a.normalize {
		if err := a.NormalizeAirfoil(true, true, true); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Recompute rebuilds the boundary spline and every derived quantity from a
// raw ordered coordinate set. It is the single entry point for establishing
// derived state: trailing and leading edge, chord, twist, closedness, the
// camber spline and both thickness splines. The sampled-point cache is
// cleared.
func (a *Airfoil) Recompute(coords []r2.Vec) error {
	if signedArea(coords) > 0 {
		// Clockwise winding: flip and recompute. The area test on the
		// reversed set is guaranteed to pass.
		return a.Recompute(d2.Set(coords).Reverse())
	}
	var err error
	if a.nCtl > 0 {
		a.spline, err = bspline.Fit(coords, a.order, a.nCtl)
	} else {
		a.spline, err = bspline.Interpolate(coords, a.order)
	}
	if err != nil {
		return err
	}

	a.te = r2.Scale(0.5, r2.Add(a.spline.Value(0), a.spline.Value(1)))
	a.le, a.sLE, err = a.findLE()
	if err != nil {
		return err
	}
	chordVec := r2.Sub(a.te, a.le)
	a.chord = r2.Norm(chordVec)
	a.twist = rtod(math.Atan2(chordVec.Y, chordVec.X))
	a.closed = coords[0] == coords[len(coords)-1]
	a.sampled = nil

	// Derived-curve resolution tracks the input resolution.
	n := 2 * len(coords)
	camberPts, err := a.CamberPoints(n)
	if err != nil {
		return err
	}
	if a.camber, err = bspline.Interpolate(camberPts, 3); err != nil {
		return err
	}
	brit, err := a.ThicknessPoints(n, British)
	if err != nil {
		return err
	}
	if a.british, err = bspline.Interpolate(brit, 3); err != nil {
		return err
	}
	amer, err := a.ThicknessPoints(n, American)
	if err != nil {
		return err
	}
	if a.american, err = bspline.Interpolate(amer, 3); err != nil {
		return err
	}
	return nil
}

// findLE locates the point on the boundary farthest from the trailing edge
// as the root of the derivative of the squared distance to the TE.
func (a *Airfoil) findLE() (r2.Vec, float64, error) {
	dellds := func(s float64) float64 {
		pt := a.spline.Value(s)
		d := a.spline.Derivative(s)
		return (pt.X-a.te.X)*d.X + (pt.Y-a.te.Y)*d.Y
	}
	sLE, err := num.RootBrent(dellds, 0.3, 0.7, rootTol, 200)
	if err != nil {
		return r2.Vec{}, 0, Error("foil: leading edge not bracketed in s=[0.3,0.7]: " + err.Error())
	}
	return a.spline.Value(sLE), sLE, nil
}

// TE returns the trailing edge, the midpoint of the two boundary endpoints.
func (a *Airfoil) TE() r2.Vec { return a.te }

// LE returns the leading edge, the boundary point farthest from the TE.
func (a *Airfoil) LE() r2.Vec { return a.le }

// SLE returns the boundary spline parameter of the leading edge.
func (a *Airfoil) SLE() float64 { return a.sLE }

// Chord returns the distance between leading and trailing edges.
func (a *Airfoil) Chord() float64 { return a.chord }

// Twist returns the angle of the TE-LE vector in degrees.
func (a *Airfoil) Twist() float64 { return a.twist }

// IsClosed reports whether the trailing edge is sharp, i.e. the first and
// last input coordinates coincide.
func (a *Airfoil) IsClosed() bool { return a.closed }

// Points returns the coordinate set the boundary spline was built from.
func (a *Airfoil) Points() []r2.Vec { return a.spline.Points() }

// Spline returns the boundary spline.
func (a *Airfoil) Spline() *bspline.Curve { return a.spline }

// Camber returns the camber spline, parameterized from the leading edge at
// s=0 to the trailing edge at s=1.
func (a *Airfoil) Camber() *bspline.Curve { return a.camber }

// Thickness returns the thickness spline for the given convention, mapping
// camber-line x-position to local thickness.
func (a *Airfoil) Thickness(typ ThicknessType) (*bspline.Curve, error) {
	switch typ {
	case British:
		return a.british, nil
	case American:
		return a.american, nil
	}
	return nil, ErrThicknessType
}

// TEThickness returns the distance between the two boundary endpoints,
// zero for a sharp trailing edge.
func (a *Airfoil) TEThickness() float64 {
	return r2.Norm(r2.Sub(a.spline.Value(0), a.spline.Value(1)))
}

// TEAngle returns the trailing edge angle in degrees: pi minus the angle
// between the two endpoint tangents.
func (a *Airfoil) TEAngle() float64 {
	top := r2.Unit(a.spline.Derivative(0))
	bottom := r2.Unit(a.spline.Derivative(1))
	return rtod(math.Pi - math.Acos(clampUnit(r2.Dot(top, bottom))))
}

// LERadius returns the leading edge osculating-circle radius. The value is
// approximate: it is sensitive to the input points and the spline order.
func (a *Airfoil) LERadius() float64 {
	first := a.spline.Derivative(a.sLE)
	second := a.spline.SecondDerivative(a.sLE)
	return math.Pow(r2.Norm(first), 3) / math.Abs(r2.Cross(first, second))
}

// FindPoint intersects the boundary with the axis-aligned line at the given
// position (axis 0 for x, 1 for y) by Newton iteration from the parametric
// guess. It returns the intersection and its boundary parameter.
func (a *Airfoil) FindPoint(position float64, axis int, guess float64) (r2.Vec, float64, error) {
	component := func(v r2.Vec) float64 {
		if axis == 0 {
			return v.X
		}
		return v.Y
	}
	f := func(s float64) float64 { return component(a.spline.Value(s)) - position }
	df := func(s float64) float64 { return component(a.spline.Derivative(s)) }
	s, err := num.RootNewton(f, df, guess, rootTol, 100)
	if err != nil {
		return r2.Vec{}, 0, Error("foil: intersection search failed: " + err.Error())
	}
	return a.spline.Value(s), s, nil
}

// Split partitions the boundary at the leading edge into the top surface
// (TE at s=0 to LE at s=1) and the bottom surface (LE at s=0 to TE at s=1).
func (a *Airfoil) Split() (top, bottom *bspline.Curve) {
	return a.spline.Split(a.sLE)
}

// SampledPoints returns the most recently sampled boundary discretization,
// or nil if the geometry changed since the last call to Sample.
func (a *Airfoil) SampledPoints() []r2.Vec { return a.sampled }
