package foil

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/foilkit/foil/bspline"
)

// Camber and thickness rasterization. Both engines walk a linear grid of
// interior stations (the endpoints are added back explicitly), shoot a
// finite ray through each station and intersect it with the boundary split
// into top and bottom halves at the leading edge.

// CamberPoints returns n camber points from the leading edge to the
// trailing edge. Each interior point is the midpoint of the intersections
// of a chord-normal ray with the top and bottom surfaces.
func (a *Airfoil) CamberPoints(n int) ([]r2.Vec, error) {
	top, bottom := a.Split()
	chordLine := bspline.Line(a.le, a.te)

	pts := make([]r2.Vec, 0, n)
	pts = append(pts, a.le)
	dir := chordNormal(a.twist, 1)
	for j := 1; j <= n-2; j++ {
		station := chordLine.Value(float64(j) / float64(n-1))
		// Rays are long relative to local curvature, so the projections
		// need no initial guess.
		ray := bspline.Line(
			r2.Add(station, r2.Scale(a.chord, dir)),
			r2.Sub(station, r2.Scale(a.chord, dir)),
		)
		sTop, _, _ := top.Project(ray, 5000, projEps)
		sBottom, _, _ := bottom.Project(ray, 5000, projEps)
		pts = append(pts, r2.Scale(0.5, r2.Add(top.Value(sTop), bottom.Value(sBottom))))
	}
	pts = append(pts, a.te)
	return pts, nil
}

// ThicknessPoints returns n thickness samples against the camber-line
// x-position. British thickness casts every ray perpendicular to the chord
// and reports the signed y-separation of the two surface intersections;
// american thickness casts each ray perpendicular to the local camber
// tangent and reports their Euclidean separation. The first and last rows
// are (LE.x, 0) and (TE.x, TE thickness).
func (a *Airfoil) ThicknessPoints(n int, typ ThicknessType) ([]r2.Vec, error) {
	if typ != British && typ != American {
		return nil, ErrThicknessType
	}
	top, bottom := a.Split()

	pts := make([]r2.Vec, 0, n)
	pts = append(pts, r2.Vec{X: a.le.X})
	for j := 1; j <= n-2; j++ {
		s := float64(j) / float64(n-1)
		var dir r2.Vec
		if typ == British {
			dir = chordNormal(a.twist, -1)
		} else {
			d := a.camber.Derivative(s)
			dir = r2.Unit(r2.Vec{X: -d.Y, Y: d.X})
		}
		station := a.camber.Value(s)
		ray := bspline.Line(
			r2.Add(station, r2.Scale(10*a.chord, dir)),
			r2.Sub(station, r2.Scale(10*a.chord, dir)),
		)

		// Seed the projections from the ray midpoint's chordwise fraction.
		// The top surface runs from TE at s=0 to LE at s=1, so its guess is
		// reversed relative to the chordwise direction.
		frac := (ray.Value(0.5).X - a.le.X) / a.chord
		topGuess, bottomGuess := 1-frac, frac
		if frac > 1 {
			topGuess, bottomGuess = 0, 1
		} else if frac < 0 {
			topGuess, bottomGuess = 1, 0
		}
		sTop, _, _ := top.Project(ray, 100, projEps, topGuess, 0.5)
		sBottom, _, _ := bottom.Project(ray, 100, projEps, bottomGuess, 0.5)

		var thickness float64
		if typ == British {
			thickness = top.Value(sTop).Y - bottom.Value(sBottom).Y
		} else {
			thickness = r2.Norm(r2.Sub(top.Value(sTop), bottom.Value(sBottom)))
		}
		pts = append(pts, r2.Vec{X: station.X, Y: thickness})
	}
	pts = append(pts, r2.Vec{X: a.te.X, Y: a.TEThickness()})
	return pts, nil
}

// findChordProj returns the perpendicular projection of coord onto the
// chord line.
func (a *Airfoil) findChordProj(coord r2.Vec) r2.Vec {
	chord := r2.Sub(a.le, a.te)
	s := (-chord.X*(a.te.X-coord.X) - chord.Y*(a.te.Y-coord.Y)) / (chord.X*chord.X + chord.Y*chord.Y)
	return r2.Add(a.te, r2.Scale(s, chord))
}

// signedCamber returns the signed perpendicular distance from the camber
// point at parameter s to the chord line. The sign comes from the cross
// product of the offset direction with the normalized chord direction.
func (a *Airfoil) signedCamber(s float64) float64 {
	pt := a.camber.Value(s)
	proj := a.findChordProj(pt)
	offset := r2.Sub(pt, proj)
	norm := r2.Norm(offset)
	if norm == 0 {
		return 0
	}
	chord := r2.Unit(r2.Sub(a.le, a.te))
	cross := r2.Cross(r2.Scale(1/norm, offset), chord)
	return cross * norm
}
