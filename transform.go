package foil

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rigid transforms. Each replaces the coordinate set and re-runs the full
// recompute, so all derived state stays consistent.

func rotateCoords(coords []r2.Vec, angleRad float64, origin r2.Vec) []r2.Vec {
	sin, cos := math.Sincos(angleRad)
	out := make([]r2.Vec, len(coords))
	for i, c := range coords {
		d := r2.Sub(c, origin)
		out[i] = r2.Add(origin, r2.Vec{
			X: cos*d.X - sin*d.Y,
			Y: sin*d.X + cos*d.Y,
		})
	}
	return out
}

func scaleCoords(coords []r2.Vec, factor float64, origin r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(coords))
	for i, c := range coords {
		out[i] = r2.Add(origin, r2.Scale(factor, r2.Sub(c, origin)))
	}
	return out
}

func translateCoords(coords []r2.Vec, delta r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(coords))
	for i, c := range coords {
		out[i] = r2.Add(c, delta)
	}
	return out
}

// Rotate rotates the airfoil by an angle in degrees about the origin.
func (a *Airfoil) Rotate(angleDeg float64, origin r2.Vec) error {
	return a.Recompute(rotateCoords(a.Points(), dtor(angleDeg), origin))
}

// Derotate rotates the airfoil about the origin so the twist becomes zero.
func (a *Airfoil) Derotate(origin r2.Vec) error {
	return a.Rotate(-a.twist, origin)
}

// Scale scales the airfoil by factor about the origin.
func (a *Airfoil) Scale(factor float64, origin r2.Vec) error {
	return a.Recompute(scaleCoords(a.Points(), factor, origin))
}

// Translate translates the airfoil by delta.
func (a *Airfoil) Translate(delta r2.Vec) error {
	return a.Recompute(translateCoords(a.Points(), delta))
}

// NormalizeChord scales the airfoil about the origin so the chord is one.
func (a *Airfoil) NormalizeChord(origin r2.Vec) error {
	if a.chord == 1 {
		return nil
	}
	return a.Scale(1/a.chord, origin)
}

// Center translates the airfoil so the leading edge sits on the origin.
func (a *Airfoil) Center() error {
	if a.le == (r2.Vec{}) {
		return nil
	}
	return a.Translate(r2.Scale(-1, a.le))
}

// NormalizeAirfoil optionally centers the leading edge on the origin, zeroes
// the twist and sets the chord to one. The operations rotate and scale about
// the origin, so their order matters and is fixed: center, derotate,
// normalize.
func (a *Airfoil) NormalizeAirfoil(derotate, normalize, center bool) error {
	if center {
		if err := a.Center(); err != nil {
			return err
		}
	}
	if derotate {
		if err := a.Derotate(r2.Vec{}); err != nil {
			return err
		}
	}
	if normalize {
		if err := a.NormalizeChord(r2.Vec{}); err != nil {
			return err
		}
	}
	return nil
}
