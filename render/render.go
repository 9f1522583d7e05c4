// Package render writes airfoil geometry to the coordinate file formats
// design tools consume (dat, plot3d, FFD lattices) and plots airfoils with
// gonum/plot. The writers work against io.Writer; each has a Create
// convenience that writes a file.
package render

import (
	"os"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/foilkit/foil"
)

// Format selects a coordinate output format.
type Format string

const (
	FormatDat    Format = "dat"
	FormatPlot3D Format = "plot3d"
)

// CreateCoords writes the airfoil's most recently sampled coordinates to a
// file. It fails with foil.ErrNoCoords if nothing has been sampled since
// the last geometry change; pass splineCoords to write the underlying
// boundary coordinates instead.
func CreateCoords(a *foil.Airfoil, path string, format Format, splineCoords bool) error {
	var coords []r2.Vec
	if splineCoords {
		coords = a.Points()
	} else {
		coords = a.SampledPoints()
	}
	if coords == nil {
		return foil.ErrNoCoords
	}
	switch format {
	case FormatDat:
		return CreateDat(path, coords)
	case FormatPlot3D:
		return CreatePlot3D(path, coords)
	}
	return foil.Error(string(format) + " is not a supported output format")
}

func createFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}
