package render_test

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/foilkit/foil"
	"github.com/foilkit/foil/render"
)

func testCoords() []r2.Vec {
	return []r2.Vec{
		{X: 1, Y: 0.001},
		{X: 0.5, Y: 0.06},
		{X: 0, Y: 0},
		{X: 0.5, Y: -0.06},
		{X: 1, Y: -0.001},
	}
}

func testAirfoil(t *testing.T) *foil.Airfoil {
	t.Helper()
	n := 41
	coords := make([]r2.Vec, 0, 2*n-1)
	yt := func(x float64) float64 {
		return 0.6 * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x - 0.1036*x*x*x*x)
	}
	for i := 0; i < n; i++ {
		x := 0.5 * (1 + math.Cos(math.Pi*float64(i)/float64(n-1)))
		coords = append(coords, r2.Vec{X: x, Y: yt(x)})
	}
	for i := n - 2; i >= 0; i-- {
		x := 0.5 * (1 + math.Cos(math.Pi*float64(i)/float64(n-1)))
		coords = append(coords, r2.Vec{X: x, Y: -yt(x)})
	}
	a, err := foil.New(coords)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func countLines(t *testing.T, b *bytes.Buffer) int {
	t.Helper()
	sc := bufio.NewScanner(bytes.NewReader(b.Bytes()))
	n := 0
	for sc.Scan() {
		n++
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestWriteDat(t *testing.T) {
	coords := testCoords()
	var buf bytes.Buffer
	if err := render.WriteDat(&buf, coords); err != nil {
		t.Fatal(err)
	}
	if got := countLines(t, &buf); got != len(coords) {
		t.Fatalf("got %d lines, want %d", got, len(coords))
	}
	var x, y float64
	if _, err := fmt.Fscan(bytes.NewReader(buf.Bytes()), &x, &y); err != nil {
		t.Fatal(err)
	}
	if x != coords[0].X || y != coords[0].Y {
		t.Errorf("first row (%v, %v), want %v", x, y, coords[0])
	}
}

func TestWritePlot3D(t *testing.T) {
	coords := testCoords()
	var buf bytes.Buffer
	if err := render.WritePlot3D(&buf, coords); err != nil {
		t.Fatal(err)
	}
	r := bytes.NewReader(buf.Bytes())
	var nblocks, ni, nj, nk int
	if _, err := fmt.Fscan(r, &nblocks, &ni, &nj, &nk); err != nil {
		t.Fatal(err)
	}
	if nblocks != 1 || ni != len(coords) || nj != 2 || nk != 1 {
		t.Fatalf("header %d / %d %d %d", nblocks, ni, nj, nk)
	}
	// 3 dims, 2 z planes, one value per line plus the two header lines
	if got, want := countLines(t, &buf), 2+6*len(coords); got != want {
		t.Errorf("got %d lines, want %d", got, want)
	}
}

func TestWriteFFD(t *testing.T) {
	a := testAirfoil(t)
	const nffd = 8
	box := a.BuildFFD(nffd, true, 0.01, 0.02, 0.02, nil, nil)
	if len(box) != nffd {
		t.Fatalf("got %d lattice slices, want %d", len(box), nffd)
	}
	var buf bytes.Buffer
	if err := render.WriteFFD(&buf, box); err != nil {
		t.Fatal(err)
	}
	r := bytes.NewReader(buf.Bytes())
	var nblocks, ni, nj, nk int
	if _, err := fmt.Fscan(r, &nblocks, &ni, &nj, &nk); err != nil {
		t.Fatal(err)
	}
	if nblocks != 1 || ni != nffd || nj != 2 || nk != 2 {
		t.Fatalf("header %d / %d %d %d", nblocks, ni, nj, nk)
	}
	if got, want := countLines(t, &buf), 2+3*2*2*nffd; got != want {
		t.Errorf("got %d lines, want %d", got, want)
	}
}

func TestCreateCoords(t *testing.T) {
	a := testAirfoil(t)
	dir := t.TempDir()

	// nothing sampled yet
	err := render.CreateCoords(a, filepath.Join(dir, "none.dat"), render.FormatDat, false)
	if !errors.Is(err, foil.ErrNoCoords) {
		t.Fatalf("got %v, want ErrNoCoords", err)
	}

	path := filepath.Join(dir, "spline.dat")
	if err := render.CreateCoords(a, path, render.FormatDat, true); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("dat file is empty")
	}

	a.Sample(100, nil, 0, false)
	p3d := filepath.Join(dir, "sampled.xyz")
	if err := render.CreateCoords(a, p3d, render.FormatPlot3D, false); err != nil {
		t.Fatal(err)
	}

	if err := render.CreateCoords(a, filepath.Join(dir, "bad"), render.Format("vtk"), true); err == nil {
		t.Error("unsupported format accepted")
	}
}

func TestSavePNG(t *testing.T) {
	a := testAirfoil(t)
	path := filepath.Join(t.TempDir(), "foil.png")
	if err := render.SavePNG(a, path, true); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("png file is empty")
	}
}
