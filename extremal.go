package foil

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/foilkit/foil/internal/num"
)

// MaxThickness returns the chordwise station and value of the maximum
// thickness under the given convention, found by bounded minimization of
// the negated thickness spline over s in [0, 1].
func (a *Airfoil) MaxThickness(typ ThicknessType) (x, thickness float64, err error) {
	curve, err := a.Thickness(typ)
	if err != nil {
		return 0, 0, err
	}
	s, err := num.MinimizeBounded(func(s float64) float64 {
		return -curve.Value(s).Y
	}, 0, 1, optTol, optIter)
	if err != nil {
		return 0, 0, Error("foil: could not determine the maximum thickness")
	}
	pt := curve.Value(s)
	return pt.X, pt.Y, nil
}

// camberExtremum finds the most positive (maximum true) or most negative
// camber. It returns the chordwise fraction of the extremum and the signed
// camber value normalized by the chord.
func (a *Airfoil) camberExtremum(maximum bool) (x, camber float64, err error) {
	factor := 1.0
	if maximum {
		factor = -1
	}
	s, err := num.MinimizeBounded(func(s float64) float64 {
		return factor * a.signedCamber(s)
	}, 0, 1, optTol, optIter)
	if err != nil {
		if maximum {
			return 0, 0, Error("foil: could not determine maximum camber")
		}
		return 0, 0, Error("foil: could not determine minimum camber")
	}
	pt := a.camber.Value(s)
	proj := a.findChordProj(pt)
	x = r2.Norm(r2.Sub(proj, a.le)) / a.chord
	return x, a.signedCamber(s) / a.chord, nil
}

// MaxCamber returns the chordwise fraction and chord-normalized value of
// the maximum camber.
func (a *Airfoil) MaxCamber() (x, camber float64, err error) {
	return a.camberExtremum(true)
}

// MinCamber returns the chordwise fraction and chord-normalized value of
// the most negative camber.
func (a *Airfoil) MinCamber() (x, camber float64, err error) {
	return a.camberExtremum(false)
}

// IsReflex reports whether the camber line curves upward at the trailing
// edge.
func (a *Airfoil) IsReflex() bool {
	return a.camber.Derivative(1).Y > 0
}

// IsSymmetric reports whether both camber extrema are below tol in
// magnitude. A tol <= 0 selects the default 1e-6.
func (a *Airfoil) IsSymmetric(tol float64) (bool, error) {
	if tol <= 0 {
		tol = 1e-6
	}
	_, minC, err := a.MinCamber()
	if err != nil {
		return false, err
	}
	_, maxC, err := a.MaxCamber()
	if err != nil {
		return false, err
	}
	return math.Abs(minC) < tol && math.Abs(maxC) < tol, nil
}
