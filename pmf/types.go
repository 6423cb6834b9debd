package pmf

import (
	"errors"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/tensor"
)

// Sentinel errors for surface construction, lookup and parsing.
var (
	// ErrDimensionMismatch indicates bound, width or coordinate vectors of
	// inconsistent length.
	ErrDimensionMismatch = errors.New("pmf: dimension mismatch")
	// ErrBadBounds indicates a non-positive width, an upper bound below the
	// lower bound, or a non-positive bin count.
	ErrBadBounds = errors.New("pmf: invalid boundaries")
	// ErrOutOfRange indicates a coordinate that falls outside the grid.
	ErrOutOfRange = errors.New("pmf: coordinate out of range")
	// ErrFormat indicates a malformed NAMD header or data row.
	ErrFormat = errors.New("pmf: malformed pmf file")
)

// DefaultTolerance is the default bin-edge tolerance ε.
const DefaultTolerance = 1e-8

// Options configures a Surface.
type Options struct {
	Tolerance float64 // bin-edge tolerance ε, > 0
}

// Option is a functional option for Surface constructors.
type Option func(*Options)

// WithTolerance sets ε. It panics on a non-positive value.
func WithTolerance(eps float64) Option {
	if !(eps > 0) {
		panic("pmf: WithTolerance: eps must be positive")
	}
	return func(o *Options) {
		o.Tolerance = eps
	}
}

// DefaultOptions returns the defaults: Tolerance = DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Surface is a grid of values placed in reaction-coordinate space.
// Invariant: len(lower) == len(width) == len(upper) == len(shape) == data.Dims()
// and shape equals data.Shape().
type Surface[T tensor.Number] struct {
	lower []float64
	width []float64
	upper []float64
	shape []int
	data  *tensor.Dense[T]
	eps   float64
}
