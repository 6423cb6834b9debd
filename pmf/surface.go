package pmf

import (
	"fmt"
	"math"
	"slices"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/lattice"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/tensor"
)

// New builds a zero-valued surface from explicit boundaries. The number of
// grid points on axis i is round((upper[i]-lower[i]+ε)/width[i]) + 1, so
// both boundaries are grid points.
func New[T tensor.Number](lower, width, upper []float64, opts ...Option) (*Surface[T], error) {
	cfg := gatherOptions(opts)
	if len(lower) == 0 || len(lower) != len(width) || len(lower) != len(upper) {
		return nil, fmt.Errorf("%w: lower=%d width=%d upper=%d", ErrDimensionMismatch, len(lower), len(width), len(upper))
	}
	shape := make([]int, len(lower))
	for i := range lower {
		if !(width[i] > 0) || upper[i] < lower[i] {
			return nil, fmt.Errorf("%w: axis %d lower=%g width=%g upper=%g", ErrBadBounds, i, lower[i], width[i], upper[i])
		}
		shape[i] = int(math.Round((upper[i]-lower[i]+cfg.Tolerance)/width[i])) + 1
	}

	return newSurface[T](slices.Clone(lower), slices.Clone(width), slices.Clone(upper), shape, cfg)
}

// FromHeader builds a zero-valued surface from NAMD-style axis descriptors:
// the unshifted origin, the bin width and the bin count. Grid points sit at
// bin centers, so lower[i] = origin[i] + width[i]/2.
func FromHeader[T tensor.Number](origins, widths []float64, counts []int, opts ...Option) (*Surface[T], error) {
	cfg := gatherOptions(opts)
	if len(origins) == 0 || len(origins) != len(widths) || len(origins) != len(counts) {
		return nil, fmt.Errorf("%w: origins=%d widths=%d counts=%d", ErrDimensionMismatch, len(origins), len(widths), len(counts))
	}
	lower := make([]float64, len(origins))
	upper := make([]float64, len(origins))
	for i := range origins {
		if !(widths[i] > 0) || counts[i] <= 0 {
			return nil, fmt.Errorf("%w: axis %d width=%g count=%d", ErrBadBounds, i, widths[i], counts[i])
		}
		lower[i] = origins[i] + 0.5*widths[i]
		upper[i] = lower[i] + widths[i]*float64(counts[i]-1)
	}

	return newSurface[T](lower, slices.Clone(widths), upper, slices.Clone(counts), cfg)
}

func newSurface[T tensor.Number](lower, width, upper []float64, shape []int, cfg Options) (*Surface[T], error) {
	data, err := tensor.New[T](shape, 0)
	if err != nil {
		return nil, fmt.Errorf("pmf: allocate grid: %w", err)
	}

	return &Surface[T]{
		lower: lower,
		width: width,
		upper: upper,
		shape: shape,
		data:  data,
		eps:   cfg.Tolerance,
	}, nil
}

// Dims returns the number of reaction coordinates.
func (s *Surface[T]) Dims() int { return len(s.shape) }

// Shape returns a copy of the grid shape.
func (s *Surface[T]) Shape() []int { return slices.Clone(s.shape) }

// Lower returns a copy of the per-axis lower bounds (first bin centers).
func (s *Surface[T]) Lower() []float64 { return slices.Clone(s.lower) }

// Upper returns a copy of the per-axis upper bounds (last bin centers).
func (s *Surface[T]) Upper() []float64 { return slices.Clone(s.upper) }

// Width returns a copy of the per-axis bin widths.
func (s *Surface[T]) Width() []float64 { return slices.Clone(s.width) }

// Tolerance returns ε.
func (s *Surface[T]) Tolerance() float64 { return s.eps }

// DecimalDigits is the number of decimals coordinates are rounded to on
// output: -log10(ε) - 1.
func (s *Surface[T]) DecimalDigits() int {
	return int(math.Round(-math.Log10(s.eps))) - 1
}

// Grid returns the backing grid. It is shared with the surface.
func (s *Surface[T]) Grid() *tensor.Dense[T] { return s.data }

// RCToInternal converts a continuous coordinate to a grid index by
// truncating (rc - lower + ε) / width toward zero on every axis. A value
// less than one width below lower therefore still maps to 0, which keeps the
// outer edges of a NAMD grid on the grid. The result is not range checked.
func (s *Surface[T]) RCToInternal(rc []float64) (lattice.Point, error) {
	if len(rc) != len(s.shape) {
		return nil, fmt.Errorf("%w: coordinate has %d components, surface has %d", ErrDimensionMismatch, len(rc), len(s.shape))
	}
	p := make(lattice.Point, len(rc))
	for i, x := range rc {
		p[i] = int((x - s.lower[i] + s.eps) / s.width[i])
	}

	return p, nil
}

// InternalToRC converts a grid index to the continuous coordinate of its
// bin center.
func (s *Surface[T]) InternalToRC(p lattice.Point) ([]float64, error) {
	if len(p) != len(s.shape) {
		return nil, fmt.Errorf("%w: point has %d components, surface has %d", ErrDimensionMismatch, len(p), len(s.shape))
	}
	rc := make([]float64, len(p))
	for i, c := range p {
		rc[i] = float64(c)*s.width[i] + s.lower[i]
	}

	return rc, nil
}

// Locate converts rc to a grid index and checks that it lies on the grid.
func (s *Surface[T]) Locate(rc []float64) (lattice.Point, error) {
	p, err := s.RCToInternal(rc)
	if err != nil {
		return nil, err
	}
	for i, c := range p {
		if c < 0 || c >= s.shape[i] {
			return nil, fmt.Errorf("%w: %v maps to %v outside %v", ErrOutOfRange, rc, p, s.shape)
		}
	}

	return p, nil
}

// Contains reports whether rc maps onto the grid.
func (s *Surface[T]) Contains(rc []float64) bool {
	_, err := s.Locate(rc)
	return err == nil
}

// EnergyAt returns the value of the bin containing rc.
func (s *Surface[T]) EnergyAt(rc []float64) (T, error) {
	p, err := s.Locate(rc)
	if err != nil {
		return 0, err
	}

	return s.data.At(p)
}

// EnergyAtInternal returns the value at grid index p.
func (s *Surface[T]) EnergyAtInternal(p lattice.Point) (T, error) {
	v, err := s.data.At(p)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}

	return v, nil
}

// EnergyAtOffset returns the value at a row-major offset as float64.
// The caller guarantees the offset is in range.
func (s *Surface[T]) EnergyAtOffset(offset int) float64 {
	return float64(s.data.AtOffset(offset))
}

// Set stores v in the bin containing rc.
func (s *Surface[T]) Set(rc []float64, v T) error {
	p, err := s.Locate(rc)
	if err != nil {
		return err
	}

	return s.data.Set(p, v)
}
