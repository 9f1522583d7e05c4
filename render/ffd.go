package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/foilkit/foil"
)

// WriteFFD writes an FFD control lattice as a single-block plot3d file with
// dimensions nffd x 2 x 2.
func WriteFFD(w io.Writer, box foil.FFDBox) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, 1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", len(box), 2, 2); err != nil {
		return err
	}
	for dim := 0; dim < 3; dim++ {
		for k := 0; k < 2; k++ {
			for j := 0; j < 2; j++ {
				for i := range box {
					fmt.Fprintf(bw, "%20.16g\n", box[i][j][k][dim])
				}
			}
		}
	}
	return bw.Flush()
}

// CreateFFD writes an FFD lattice file.
func CreateFFD(path string, box foil.FFDBox) error {
	return createFile(path, func(f *os.File) error {
		return WriteFFD(f, box)
	})
}
