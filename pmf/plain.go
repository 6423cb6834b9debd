package pmf

import (
	"fmt"
	"io"
	"os"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/tensor"
)

// ReadPlain builds a surface from explicit boundaries and fills it from a
// plain table whose rows are "rc_1 … rc_D value". The column count is set
// by the first row: it must be at least D+1, extra columns are ignored and
// short rows are zero-padded.
func ReadPlain[T tensor.Number](r io.Reader, lower, width, upper []float64, opts ...Option) (*Surface[T], error) {
	s, err := New[T](lower, width, upper, opts...)
	if err != nil {
		return nil, err
	}
	table, err := tensor.ReadDat[float64](r)
	if err != nil {
		return nil, fmt.Errorf("pmf: plain table: %w", err)
	}

	dim := s.Dims()
	shape := table.Shape()
	rows, cols := shape[0], shape[1]
	if cols < dim+1 {
		return nil, fmt.Errorf("%w: table has %d columns, want at least %d", ErrFormat, cols, dim+1)
	}
	cells := table.Data()
	rc := make([]float64, dim)
	for row := 0; row < rows; row++ {
		base := row * cols
		copy(rc, cells[base:base+dim])
		if err = s.Set(rc, T(cells[base+dim])); err != nil {
			return nil, fmt.Errorf("pmf: row %d: %w", row, err)
		}
	}

	return s, nil
}

// LoadPlain reads a plain PMF table from path.
func LoadPlain[T tensor.Number](path string, lower, width, upper []float64, opts ...Option) (*Surface[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pmf: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := ReadPlain[T](f, lower, width, upper, opts...)
	if err != nil {
		return nil, fmt.Errorf("pmf: %s: %w", path, err)
	}

	return s, nil
}
