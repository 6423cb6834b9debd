package pathfind

import "github.com/fhh2626/Multidimensional-lowest-energy--Mule/lattice"

// ManhattanPotential returns a heuristic bound to the current targets:
//
//	h(p) = Σ_targets Σ_axes AxisDistance(axis, p, target) · force[axis]
//
// Axis distances honor periodicity (see lattice.AxisDistance). With no
// targets it is identically zero. Later SetTargets calls do not affect a
// heuristic already returned.
func (f *Finder) ManhattanPotential() Heuristic {
	lat := f.lat
	targets := f.Targets()

	return func(p lattice.Point) float64 {
		var sum float64
		for _, t := range targets {
			for axis, c := range p {
				sum += float64(lat.AxisDistance(axis, c, t.Point[axis])) * t.Force[axis]
			}
		}

		return sum
	}
}
