package foil

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// dtor converts degrees to radians.
func dtor(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// rtod converts radians to degrees.
func rtod(radians float64) float64 {
	return (180 / math.Pi) * radians
}

// clampUnit clamps x into [-1, 1] before an inverse trig call.
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// signedArea accumulates the signed area under each segment connecting
// adjacent coordinates, wrapping last to first. A positive sum means the
// coordinates wind clockwise.
func signedArea(coords []r2.Vec) float64 {
	area := 0.0
	prev := coords[len(coords)-1]
	for _, c := range coords {
		area += (c.X - prev.X) * (c.Y + prev.Y)
		prev = c
	}
	return area
}

// chordNormal returns the unit direction perpendicular to the chord for a
// twist given in degrees: the angle pi/2 + sign*twist. The thickness
// rasterizer and the camber rasterizer use opposite twist signs.
func chordNormal(twistDeg, sign float64) r2.Vec {
	angle := math.Pi/2 + sign*dtor(twistDeg)
	return r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}
