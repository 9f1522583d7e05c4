package foil

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/foilkit/foil/sampling"
)

// Sample discretizes the boundary into n points using the given spacing
// policy joined at the leading edge (nil selects cosine spacing). For blunt
// airfoils nTEPts extra points are distributed along the open trailing edge
// and the loop is closed by repeating the first point; teKnot additionally
// duplicates the last surface point to mark the TE corner for downstream
// meshing tools.
//
// The result is cached and returned by SampledPoints until the next
// geometry change. Sampling never alters the geometry itself.
func (a *Airfoil) Sample(n int, fn sampling.Spacing, nTEPts int, teKnot bool) []r2.Vec {
	if fn == nil {
		fn = sampling.Cosine
	}
	params := sampling.Joined(n, fn, a.sLE)
	coords := make([]r2.Vec, 0, n+nTEPts+2)
	for _, s := range params {
		coords = append(coords, a.spline.Value(s))
	}
	if !a.closed && teKnot {
		coords = append(coords, coords[len(coords)-1])
	}
	if !a.closed && nTEPts > 0 {
		// interior points of the blunt TE segment, lower to upper
		lower := a.spline.Value(1)
		upper := a.spline.Value(0)
		for i := 1; i <= nTEPts; i++ {
			t := float64(i) / float64(nTEPts+1)
			coords = append(coords, r2.Add(lower, r2.Scale(t, r2.Sub(upper, lower))))
		}
	}
	if !a.closed {
		coords = append(coords, coords[0])
	}
	a.sampled = coords
	return coords
}
