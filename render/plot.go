package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/foilkit/foil"
)

// camberPlotSamples is the camber line resolution used when plotting.
const camberPlotSamples = 200

// Plot builds a figure of the airfoil boundary, preferring the most
// recently sampled points over the raw boundary coordinates. withCamber
// adds the camber line.
func Plot(a *foil.Airfoil, withCamber bool) (*plot.Plot, error) {
	coords := a.SampledPoints()
	if coords == nil {
		coords = a.Points()
	}

	pts := make(plotter.XYs, len(coords))
	for i, c := range coords {
		pts[i].X = c.X
		pts[i].Y = c.Y
	}

	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	lines := []interface{}{"surface", pts}

	if withCamber {
		camber := a.Camber()
		cpts := make(plotter.XYs, camberPlotSamples)
		for i := range cpts {
			v := camber.Value(float64(i) / float64(camberPlotSamples-1))
			cpts[i].X = v.X
			cpts[i].Y = v.Y
		}
		lines = append(lines, "camber", cpts)
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return nil, err
	}
	return p, nil
}

// SavePNG renders the airfoil figure to a PNG file.
func SavePNG(a *foil.Airfoil, path string, withCamber bool) error {
	p, err := Plot(a, withCamber)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
