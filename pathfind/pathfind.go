package pathfind

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/lattice"
)

// Finder holds the inputs of one search and, after Run, its results.
// A Finder is not safe for concurrent use; the surface is only read.
type Finder struct {
	surf    Surface
	lat     *lattice.Lattice
	start   int // row-major index of the start cell
	end     int // row-major index of the end cell
	targets []Target
	options Options

	// results of the last successful Run
	done     bool
	parent   []int
	explored []int
}

// New prepares a search on surf from start to end, both continuous
// coordinates, with one periodicity flag per axis.
//
// Errors: ErrNilSurface, ErrDimensionMismatch when a vector length differs
// from surf.Dims(), ErrOutOfBounds when start or end maps outside the grid.
func New(surf Surface, start, end []float64, periodic []bool, opts ...Option) (*Finder, error) {
	if surf == nil {
		return nil, ErrNilSurface
	}
	dim := surf.Dims()
	if len(start) != dim || len(end) != dim || len(periodic) != dim {
		return nil, fmt.Errorf("%w: start=%d end=%d periodic=%d, surface has %d axes",
			ErrDimensionMismatch, len(start), len(end), len(periodic), dim)
	}
	lat, err := lattice.New(surf.Shape(), periodic)
	if err != nil {
		return nil, fmt.Errorf("pathfind: build lattice: %w", err)
	}

	f := &Finder{surf: surf, lat: lat, options: gatherOptions(opts)}
	if f.start, err = f.locate(start); err != nil {
		return nil, fmt.Errorf("pathfind: start: %w", err)
	}
	if f.end, err = f.locate(end); err != nil {
		return nil, fmt.Errorf("pathfind: end: %w", err)
	}

	return f, nil
}

// locate maps a continuous coordinate to a cell index.
func (f *Finder) locate(rc []float64) (int, error) {
	p, err := f.surf.RCToInternal(rc)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}
	idx, err := f.lat.Index(p)
	if err != nil {
		return 0, fmt.Errorf("%w: %v maps to %v", ErrOutOfBounds, rc, p)
	}

	return idx, nil
}

// Lattice returns the search graph.
func (f *Finder) Lattice() *lattice.Lattice { return f.lat }

// Start returns the grid point of the start cell.
func (f *Finder) Start() lattice.Point { return f.lat.Coordinate(f.start) }

// End returns the grid point of the end cell.
func (f *Finder) End() lattice.Point { return f.lat.Coordinate(f.end) }

// SetTargets replaces the steering targets used by ManhattanPotential.
// points[k] is a continuous coordinate and forces[k] its per-axis force
// constants. Passing no points clears the targets.
//
// Errors: ErrDimensionMismatch, ErrOutOfBounds.
func (f *Finder) SetTargets(points, forces [][]float64) error {
	if len(points) != len(forces) {
		return fmt.Errorf("%w: %d target points, %d force vectors", ErrDimensionMismatch, len(points), len(forces))
	}
	dim := f.lat.Dims()
	targets := make([]Target, 0, len(points))
	for k, rc := range points {
		if len(rc) != dim || len(forces[k]) != dim {
			return fmt.Errorf("%w: target %d has %d coordinates and %d forces, want %d",
				ErrDimensionMismatch, k, len(rc), len(forces[k]), dim)
		}
		idx, err := f.locate(rc)
		if err != nil {
			return fmt.Errorf("pathfind: target %d: %w", k, err)
		}
		targets = append(targets, Target{
			Point: f.lat.Coordinate(idx),
			Force: slices.Clone(forces[k]),
		})
	}
	f.targets = targets

	return nil
}

// Targets returns a copy of the configured targets.
func (f *Finder) Targets() []Target {
	out := make([]Target, len(f.targets))
	for i, t := range f.targets {
		out[i] = Target{Point: slices.Clone(t.Point), Force: slices.Clone(t.Force)}
	}

	return out
}

// Run performs the search with heuristic h (nil means ZeroHeuristic).
// Earlier results are discarded first, so a failed Run leaves none.
//
// Errors: ErrUnreachable when the end cell cannot be closed;
// lattice.ErrNoNeighbors (wrapped) for a cell without neighbors.
func (f *Finder) Run(h Heuristic) error {
	if h == nil {
		h = ZeroHeuristic
	}
	f.done, f.parent, f.explored = false, nil, nil

	log := f.options.Logger
	log.Debug().
		Ints("start", f.Start()).
		Ints("end", f.End()).
		Int("targets", len(f.targets)).
		Msg("search started")

	r := newRunner(f, h)
	if err := r.process(); err != nil {
		log.Debug().Err(err).Int("explored", len(r.explored)).Msg("search failed")
		return err
	}

	f.done, f.parent, f.explored = true, r.parent, r.explored
	log.Debug().Int("explored", len(f.explored)).Msg("search finished")

	return nil
}

// cell states
const (
	unvisited uint8 = iota
	open
	closed
)

// runner holds the mutable state of a single Run.
type runner struct {
	lat       *lattice.Lattice
	surf      Surface
	h         Heuristic
	start     int
	end       int
	threshold float64

	state    []uint8 // per-cell lifecycle
	parent   []int   // parent index recorded on opening; -1 for none
	explored []int   // closed cells in closing order
	pq       nodePQ
	seq      int
	nbrs     []int // neighbor scratch buffer
}

func newRunner(f *Finder, h Heuristic) *runner {
	n := f.lat.Size()
	r := &runner{
		lat:       f.lat,
		surf:      f.surf,
		h:         h,
		start:     f.start,
		end:       f.end,
		threshold: f.options.BarrierThreshold,
		state:     make([]uint8, n),
		parent:    make([]int, n),
		nbrs:      make([]int, 0, 2*f.lat.Dims()),
	}
	for i := range r.parent {
		r.parent[i] = -1
	}

	return r
}

// push opens idx with the given parent.
func (r *runner) push(idx, parent int) {
	r.state[idx] = open
	r.parent[idx] = parent
	heap.Push(&r.pq, &nodeItem{
		idx:      idx,
		priority: r.surf.EnergyAtOffset(idx) + r.h(r.lat.Coordinate(idx)),
		seq:      r.seq,
	})
	r.seq++
}

// passable reports whether the search may enter idx.
func (r *runner) passable(idx int) bool {
	e := r.surf.EnergyAtOffset(idx)
	return !math.IsNaN(e) && e < r.threshold
}

// process is the main loop: close the best open cell, stop at the end
// cell, otherwise open its unvisited passable neighbors.
func (r *runner) process() error {
	heap.Init(&r.pq)
	r.push(r.start, -1)

	var err error
	for r.pq.Len() > 0 {
		u := heap.Pop(&r.pq).(*nodeItem).idx
		r.state[u] = closed
		r.explored = append(r.explored, u)
		if u == r.end {
			return nil
		}

		if r.nbrs, err = r.lat.Neighbors(u, r.nbrs); err != nil {
			return fmt.Errorf("pathfind: expand: %w", err)
		}
		for _, v := range r.nbrs {
			if r.state[v] != unvisited || !r.passable(v) {
				continue
			}
			r.push(v, u)
		}
	}

	return fmt.Errorf("%w: %v after closing %d points", ErrUnreachable, r.lat.Coordinate(r.end), len(r.explored))
}

// Search runs a complete search described by req on surf. Targets, when
// given, enable the Manhattan potential bias.
func Search(surf Surface, req Request, opts ...Option) (Path, error) {
	f, err := New(surf, req.Start, req.End, req.Periodic, opts...)
	if err != nil {
		return Path{}, err
	}
	var h Heuristic = ZeroHeuristic
	if len(req.Targets) > 0 {
		if err = f.SetTargets(req.Targets, req.Forces); err != nil {
			return Path{}, err
		}
		h = f.ManhattanPotential()
	}
	if err = f.Run(h); err != nil {
		return Path{}, err
	}

	return f.Path()
}

// Request bundles the inputs of Search. Targets and Forces are parallel
// lists of continuous coordinates and per-axis force constants.
type Request struct {
	Start    []float64
	End      []float64
	Periodic []bool
	Targets  [][]float64
	Forces   [][]float64
}
