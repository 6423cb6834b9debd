package pmf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/tensor"
)

const headerMarker = "#"

// ReadNAMD parses a self-describing (NAMD) PMF. The first line must be the
// "# D" header, followed by D axis lines "# origin width count periodic".
// Every remaining non-blank, non-comment line is a data row
// "rc_1 … rc_D value", placed with RCToInternal; rows may come in any order.
//
// Errors: ErrFormat for a missing marker or malformed header/row,
// ErrOutOfRange for a row outside the declared grid.
func ReadNAMD[T tensor.Number](r io.Reader, opts ...Option) (*Surface[T], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	// 1) dimension header
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("pmf: read header: %w", err)
		}
		return nil, fmt.Errorf("%w: empty input", ErrFormat)
	}
	line := sc.Text()
	if !strings.HasPrefix(line, headerMarker) {
		return nil, fmt.Errorf("%w: first line %q lacks the %q marker", ErrFormat, line, headerMarker)
	}
	head := strings.Fields(strings.TrimPrefix(line, headerMarker))
	if len(head) < 1 {
		return nil, fmt.Errorf("%w: header %q has no dimension", ErrFormat, line)
	}
	dim, err := strconv.Atoi(head[0])
	if err != nil || dim <= 0 {
		return nil, fmt.Errorf("%w: bad dimension %q", ErrFormat, head[0])
	}

	// 2) axis descriptors
	origins := make([]float64, dim)
	widths := make([]float64, dim)
	counts := make([]int, dim)
	for i := 0; i < dim; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d axis lines, got %d", ErrFormat, dim, i)
		}
		line = sc.Text()
		if !strings.HasPrefix(line, headerMarker) {
			return nil, fmt.Errorf("%w: axis line %d %q lacks the %q marker", ErrFormat, i, line, headerMarker)
		}
		f := strings.Fields(strings.TrimPrefix(line, headerMarker))
		if len(f) < 3 {
			return nil, fmt.Errorf("%w: axis line %d %q needs origin, width and count", ErrFormat, i, line)
		}
		o, e1 := strconv.ParseFloat(f[0], 64)
		w, e2 := strconv.ParseFloat(f[1], 64)
		n, e3 := strconv.Atoi(f[2])
		if err = errors.Join(e1, e2, e3); err != nil {
			return nil, fmt.Errorf("%w: axis line %d: %v", ErrFormat, i, err)
		}
		origins[i], widths[i], counts[i] = o, w, n
	}

	s, err := FromHeader[T](origins, widths, counts, opts...)
	if err != nil {
		return nil, err
	}

	// 3) data rows
	rc := make([]float64, dim)
	lineNo := dim + 1
	for sc.Scan() {
		lineNo++
		line = sc.Text()
		if strings.HasPrefix(line, headerMarker) {
			continue
		}
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		if len(f) < dim+1 {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrFormat, lineNo, len(f), dim+1)
		}
		for i := 0; i < dim; i++ {
			if rc[i], err = strconv.ParseFloat(f[i], 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
			}
		}
		v, perr := strconv.ParseFloat(f[dim], 64)
		if perr != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, perr)
		}
		if err = s.Set(rc, T(v)); err != nil {
			return nil, fmt.Errorf("pmf: line %d: %w", lineNo, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("pmf: read rows: %w", err)
	}

	return s, nil
}

// WriteNAMD serializes s in the self-describing format. Origins are written
// as lower-width/2 and every periodicity marker as 0. Rows follow row-major
// order with coordinates rounded to DecimalDigits; a blank line follows each
// completed run of an axis.
func WriteNAMD[T tensor.Number](w io.Writer, s *Surface[T]) error {
	bw := bufio.NewWriter(w)
	dim := s.Dims()

	fmt.Fprintf(bw, "# %d\n", dim)
	for i := 0; i < dim; i++ {
		fmt.Fprintf(bw, "# %10s %10s %10d 0\n",
			strconv.FormatFloat(s.lower[i]-0.5*s.width[i], 'g', -1, 64),
			strconv.FormatFloat(s.width[i], 'g', -1, 64),
			s.shape[i])
	}
	_ = bw.WriteByte('\n')

	digits := s.DecimalDigits()
	data := s.data.Data()
	idx := make([]int, dim)
	for off := range data {
		for i, c := range idx {
			_, _ = bw.WriteString(formatCoord(float64(c)*s.width[i]+s.lower[i], digits))
			_ = bw.WriteByte(' ')
		}
		_, _ = bw.WriteString(tensor.FormatValue(data[off]))
		_ = bw.WriteByte('\n')

		// odometer increment, last axis fastest
		for n := dim - 1; n >= 0; n-- {
			idx[n]++
			if idx[n] < s.shape[n] {
				break
			}
			idx[n] = 0
			_ = bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// formatCoord rounds x to digits decimals.
func formatCoord(x float64, digits int) string {
	scale := math.Pow(10, float64(digits))
	r := math.Round(x*scale) / scale
	if r == 0 {
		r = 0 // drop negative zero
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}

// LoadNAMD reads a self-describing PMF file.
func LoadNAMD[T tensor.Number](path string, opts ...Option) (*Surface[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pmf: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := ReadNAMD[T](f, opts...)
	if err != nil {
		return nil, fmt.Errorf("pmf: %s: %w", path, err)
	}

	return s, nil
}

// SaveNAMD writes s to path in the self-describing format.
func SaveNAMD[T tensor.Number](path string, s *Surface[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pmf: create %s: %w", path, err)
	}
	if err = WriteNAMD(f, s); err != nil {
		_ = f.Close()
		return fmt.Errorf("pmf: write %s: %w", path, err)
	}

	return f.Close()
}
