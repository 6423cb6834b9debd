package report

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/lattice"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pathfind"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pmf"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/tensor"
)

var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// WriteSurface renders a 2-D surface as an HTML scatter heat map with the
// path drawn on top. Cells with non-finite energy are left out.
func WriteSurface[T tensor.Number](w io.Writer, s *pmf.Surface[T], p pathfind.Path) error {
	if s.Dims() != 2 {
		return fmt.Errorf("%w: got %d", ErrNotTwoDimensional, s.Dims())
	}

	grid := s.Grid()
	cells := make([]opts.ScatterData, 0, grid.Size())
	finite := make([]float64, 0, grid.Size())
	for off := 0; off < grid.Size(); off++ {
		e := s.EnergyAtOffset(off)
		if math.IsNaN(e) || math.IsInf(e, 0) {
			continue
		}
		idx, err := grid.Unravel(off)
		if err != nil {
			return err
		}
		rc, err := s.InternalToRC(lattice.Point(idx))
		if err != nil {
			return err
		}
		finite = append(finite, e)
		cells = append(cells, opts.ScatterData{Value: []interface{}{rc[0], rc[1], e}})
	}
	lo, hi := 0.0, 1.0
	if len(finite) > 0 {
		lo, hi = floats.Min(finite), floats.Max(finite)
	}

	route := make([]opts.ScatterData, 0, p.Len())
	for i, rc := range p.Coords {
		if math.IsNaN(p.Energies[i]) || math.IsInf(p.Energies[i], 0) {
			continue
		}
		route = append(route, opts.ScatterData{Name: fmt.Sprintf("step %d", i), Value: []interface{}{rc[0], rc[1], p.Energies[i]}})
	}

	lower, upper, width := s.Lower(), s.Upper(), s.Width()
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "MULE surface", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Potential of mean force", Subtitle: fmt.Sprintf("cells=%d path=%d barrier=%g", len(cells), p.Len(), p.Barrier())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: lower[0] - width[0], Max: upper[0] + width[0], Name: "RC 1", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: lower[1] - width[1], Max: upper[1] + width[1], Name: "RC 2", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	scatter.AddSeries("surface", cells, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	scatter.AddSeries("path", route, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}))

	return scatter.Render(w)
}

// SaveSurface writes the HTML surface map to path.
func SaveSurface[T tensor.Number](path string, s *pmf.Surface[T], p pathfind.Path) error {
	return saveWith(path, func(w io.Writer) error { return WriteSurface(w, s, p) })
}
