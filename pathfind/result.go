package pathfind

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/lattice"
)

// Path is the trajectory found by a search, ordered start to end.
// Points, Coords and Energies are index-aligned.
type Path struct {
	Points   []lattice.Point // grid indices
	Coords   [][]float64     // bin-center continuous coordinates
	Energies []float64       // grid value at each point
}

// Len returns the number of points on the path.
func (p Path) Len() int { return len(p.Points) }

// Barrier returns the highest energy along the path, or NaN for an empty path.
func (p Path) Barrier() float64 {
	if len(p.Energies) == 0 {
		return math.NaN()
	}

	return floats.Max(p.Energies)
}

// Path walks the parent links back from the end cell and returns the
// trajectory in start-to-end order.
// Returns ErrNotRun before a successful Run.
func (f *Finder) Path() (Path, error) {
	if !f.done {
		return Path{}, ErrNotRun
	}

	var idxs []int
	for v := f.end; v != -1; v = f.parent[v] {
		idxs = append(idxs, v)
	}
	slices.Reverse(idxs)

	out := Path{
		Points:   make([]lattice.Point, len(idxs)),
		Coords:   make([][]float64, len(idxs)),
		Energies: make([]float64, len(idxs)),
	}
	for i, v := range idxs {
		p := f.lat.Coordinate(v)
		rc, err := f.surf.InternalToRC(p)
		if err != nil {
			return Path{}, err
		}
		out.Points[i] = p
		out.Coords[i] = rc
		out.Energies[i] = f.surf.EnergyAtOffset(v)
	}

	return out, nil
}

// Explored returns the continuous coordinates of every closed cell in
// closing order; the last one is the end cell.
// Returns ErrNotRun before a successful Run.
func (f *Finder) Explored() ([][]float64, error) {
	if !f.done {
		return nil, ErrNotRun
	}
	out := make([][]float64, len(f.explored))
	for i, v := range f.explored {
		rc, err := f.surf.InternalToRC(f.lat.Coordinate(v))
		if err != nil {
			return nil, err
		}
		out[i] = rc
	}

	return out, nil
}

// ExploredCount returns the number of closed cells.
// Returns ErrNotRun before a successful Run.
func (f *Finder) ExploredCount() (int, error) {
	if !f.done {
		return 0, ErrNotRun
	}

	return len(f.explored), nil
}
