package foil

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/foilkit/foil/internal/d2"
)

// FFDBox is a free-form deformation control lattice around the airfoil:
// nffd chordwise stations, lower/upper rows, two z planes, xyz components.
type FFDBox [][2][2][3]float64

// closestY returns the upper and lower surface y values nearest the
// vertical line at x, by linear interpolation of the straddling segments.
func closestY(coords []r2.Vec, x float64) (yUpper, yLower float64) {
	first := true
	for i := 0; i < len(coords)-1; i++ {
		a, b := coords[i], coords[i+1]
		if (a.X-x)*(b.X-x) > 0 {
			continue
		}
		y := a.Y
		if b.X != a.X {
			y += (b.Y - a.Y) * (x - a.X) / (b.X - a.X)
		}
		if first {
			yUpper, yLower = y, y
			first = false
		} else {
			if y > yUpper {
				yUpper = y
			}
			if y < yLower {
				yLower = y
			}
		}
	}
	if first {
		// x is outside the airfoil, fall back to the nearest point
		nearest := coords[0]
		for _, c := range coords[1:] {
			if da, db := c.X-x, nearest.X-x; da*da < db*db {
				nearest = c
			}
		}
		yUpper, yLower = nearest.Y, nearest.Y
	}
	return yUpper, yLower
}

// BuildFFD constructs an FFD lattice from the airfoil. A fitted box hugs the
// surface at each chordwise slice with the given y margins; otherwise a
// plain bounding box is used. xslice overrides the automatic slice placement
// (and nffd); coords overrides the airfoil's own coordinates.
func (a *Airfoil) BuildFFD(nffd int, fitted bool, xmargin, ymarginU, ymarginL float64, xslice []float64, coords []r2.Vec) FFDBox {
	if coords == nil {
		coords = a.Points()
	}
	set := d2.Set(coords)
	lo, hi := set.Min(), set.Max()

	if xslice == nil {
		xslice = make([]float64, nffd)
		for i := range xslice {
			t := float64(i) / float64(nffd-1)
			xslice[i] = lo.X - xmargin + (hi.X+2*xmargin)*t
		}
	} else {
		nffd = len(xslice)
	}

	yLower := make([]float64, nffd)
	yUpper := make([]float64, nffd)
	for i, x := range xslice {
		if fitted {
			margin := ymarginU + (ymarginL-ymarginU)*x
			yu, yl := closestY(coords, x)
			yUpper[i] = yu + margin
			yLower[i] = yl - margin
		} else {
			yUpper[i] = hi.Y + ymarginU
			yLower[i] = lo.Y - ymarginL
		}
	}

	box := make(FFDBox, nffd)
	for i := range box {
		for k := 0; k < 2; k++ {
			box[i][0][k] = [3]float64{xslice[i], yLower[i], float64(k)}
			box[i][1][k] = [3]float64{xslice[i], yUpper[i], float64(k)}
		}
	}
	return box
}
