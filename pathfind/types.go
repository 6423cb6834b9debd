package pathfind

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/lattice"
)

// Sentinel errors returned by the search.
var (
	// ErrNilSurface indicates a nil surface passed to New.
	ErrNilSurface = errors.New("pathfind: surface is nil")

	// ErrDimensionMismatch indicates start, end, periodicity or target
	// vectors whose length differs from the surface dimension.
	ErrDimensionMismatch = errors.New("pathfind: dimension mismatch")

	// ErrOutOfBounds indicates a start, end or target coordinate outside the grid.
	ErrOutOfBounds = errors.New("pathfind: coordinate outside the surface")

	// ErrUnreachable indicates the open set drained before the end point was closed.
	ErrUnreachable = errors.New("pathfind: end point is unreachable")

	// ErrNotRun indicates results were requested before a successful Run.
	ErrNotRun = errors.New("pathfind: search has not completed")

	// ErrBadThreshold indicates a NaN barrier threshold.
	ErrBadThreshold = errors.New("pathfind: barrier threshold must not be NaN")
)

// Surface is the read-only view of a potential of mean force the search needs.
// *pmf.Surface[T] satisfies it for every element type.
type Surface interface {
	Dims() int
	Shape() []int
	RCToInternal(rc []float64) (lattice.Point, error)
	InternalToRC(p lattice.Point) ([]float64, error)
	EnergyAtOffset(offset int) float64
}

// Heuristic biases the priority of a grid point. It must be deterministic.
type Heuristic func(p lattice.Point) float64

// ZeroHeuristic adds nothing to the priority.
func ZeroHeuristic(lattice.Point) float64 { return 0 }

// Target is a steering point in grid space with one force constant per axis.
type Target struct {
	Point lattice.Point
	Force []float64
}

// Options configures a Finder.
//
// BarrierThreshold – cells with energy >= threshold (or NaN) are impassable.
// Logger           – receives debug records; zerolog.Nop() by default.
type Options struct {
	BarrierThreshold float64
	Logger           zerolog.Logger
}

// Option is a functional option for New and Search.
type Option func(*Options)

// WithBarrierThreshold marks cells with energy >= t as walls.
// The start cell is always entered. Panics on NaN.
//
// With the default +Inf, cells of +Inf energy are walls as well, so a path
// never crosses them even when no other route exists.
func WithBarrierThreshold(t float64) Option {
	if math.IsNaN(t) {
		panic(ErrBadThreshold.Error())
	}
	return func(o *Options) {
		o.BarrierThreshold = t
	}
}

// WithLogger routes search diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the defaults:
//   - BarrierThreshold: +Inf
//   - Logger:           zerolog.Nop()
func DefaultOptions() Options {
	return Options{
		BarrierThreshold: math.Inf(1),
		Logger:           zerolog.Nop(),
	}
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
