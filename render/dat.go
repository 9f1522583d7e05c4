package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
)

// WriteDat writes coordinates as a two-column dat file, one point per line.
func WriteDat(w io.Writer, coords []r2.Vec) error {
	bw := bufio.NewWriter(w)
	for _, c := range coords {
		if _, err := fmt.Fprintf(bw, "%12.10f %12.10f\n", c.X, c.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// CreateDat writes a dat coordinate file.
func CreateDat(path string, coords []r2.Vec) error {
	return createFile(path, func(f *os.File) error {
		return WriteDat(f, coords)
	})
}
