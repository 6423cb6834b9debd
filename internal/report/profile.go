package report

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pathfind"
)

var (
	profileWidth  = 10 * vg.Inch
	profileHeight = 5 * vg.Inch
)

// profilePlot draws energy against step index with the barrier marked.
func profilePlot(p pathfind.Path) (*plot.Plot, error) {
	if p.Len() == 0 {
		return nil, ErrEmptyPath
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Minimum energy path (%d points, barrier %g)", p.Len(), p.Barrier())
	pl.X.Label.Text = "Step"
	pl.Y.Label.Text = "Energy"
	pl.Add(plotter.NewGrid())

	pts := make(plotter.XYs, p.Len())
	for i, e := range p.Energies {
		pts[i] = plotter.XY{X: float64(i), Y: e}
	}
	line, marks, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("report: profile line: %w", err)
	}
	line.Color = color.RGBA{R: 49, G: 104, B: 142, A: 255}
	line.Width = vg.Points(1.5)
	marks.Radius = vg.Points(2)
	pl.Add(line, marks)

	barrier := p.Barrier()
	ceiling := plotter.NewFunction(func(float64) float64 { return barrier })
	ceiling.Color = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	ceiling.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	pl.Add(ceiling)
	pl.Legend.Add("energy", line, marks)
	pl.Legend.Add("barrier", ceiling)

	return pl, nil
}

// WriteProfile renders the energy profile of p as PNG to w.
func WriteProfile(w io.Writer, p pathfind.Path) error {
	pl, err := profilePlot(p)
	if err != nil {
		return err
	}
	wt, err := pl.WriterTo(profileWidth, profileHeight, "png")
	if err != nil {
		return fmt.Errorf("report: render profile: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}

// SaveProfile renders the energy profile of p to path; the image format
// follows the extension.
func SaveProfile(path string, p pathfind.Path) error {
	pl, err := profilePlot(p)
	if err != nil {
		return err
	}
	if err = pl.Save(profileWidth, profileHeight, path); err != nil {
		return fmt.Errorf("report: save profile %s: %w", path, err)
	}

	return nil
}
