// Package mule is the MUltidimensional Least Energy finder: it traces the
// path of least energetic barrier between two points of an N-dimensional
// potential of mean force.
//
// The module is organized as flat packages, one concern each:
//
//	tensor/   generic N-D row-major grid, element-wise arithmetic, tabular I/O
//	lattice/  lattice index/coordinate mapping, periodic adjacency and distance
//	pmf/      reaction-coordinate surface over a grid, NAMD and plain readers/writers
//	pathfind/ bottleneck best-first search with pluggable heuristics
//
// and the mule command under cmd/mule, which reads an INI (or YAML) run
// configuration and writes <prefix>.traj and <prefix>.energy.
//
// Quick example, a ridge of height 5 between two minima:
//
//	0 5 0
//	3 9 3      start (0,0), end (0,2)
//	3 4 3      path crosses at most 4 going around
//
//	path, err := pathfind.Search(surface, pathfind.Request{
//	    Start: []float64{0, 0}, End: []float64{0, 2}, Periodic: []bool{false, false},
//	})
package mule
