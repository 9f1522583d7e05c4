package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
)

// WritePlot3D writes coordinates as a single-block plot3d surface: the
// airfoil section extruded across two unit-spaced z planes, dimensions
// N x 2 x 1.
func WritePlot3D(w io.Writer, coords []r2.Vec) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, 1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", len(coords), 2, 1); err != nil {
		return err
	}
	// x, then y, then z, each repeated for the two z planes
	for plane := 0; plane < 2; plane++ {
		for _, c := range coords {
			fmt.Fprintf(bw, "%20.16g\n", c.X)
		}
	}
	for plane := 0; plane < 2; plane++ {
		for _, c := range coords {
			fmt.Fprintf(bw, "%20.16g\n", c.Y)
		}
	}
	for plane := 0; plane < 2; plane++ {
		for range coords {
			fmt.Fprintf(bw, "%20.16g\n", float64(plane))
		}
	}
	return bw.Flush()
}

// CreatePlot3D writes a plot3d surface file.
func CreatePlot3D(path string, coords []r2.Vec) error {
	return createFile(path, func(f *os.File) error {
		return WritePlot3D(f, coords)
	})
}
