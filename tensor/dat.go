// SPDX-License-Identifier: MIT

package tensor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single tabular line.
const maxLineBytes = 1 << 20

// ReadDat parses whitespace-separated columns into a 2-D grid.
// Lines starting with '#' and blank lines are skipped. The shape is
// [rows, columns of the first row]; short rows are zero-padded and extra
// columns are dropped.
// Returns ErrFormat for an unparsable number or when no data row exists.
func ReadDat[T Number](r io.Reader) (*Dense[T], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]string
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tensor: read dat: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrFormat)
	}

	cols := len(rows[0])
	out, err := New[T]([]int{len(rows), cols}, 0)
	if err != nil {
		return nil, err
	}
	for i, fields := range rows {
		for j := 0; j < cols && j < len(fields); j++ {
			v, perr := strconv.ParseFloat(fields[j], 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %q", ErrFormat, i, j, fields[j])
			}
			out.data[i*cols+j] = T(v)
		}
	}

	return out, nil
}

// WriteDat writes a 2-D grid as space-separated rows.
// Returns ErrDimensionMismatch if d is not 2-D.
func WriteDat[T Number](w io.Writer, d *Dense[T]) error {
	if d.Dims() != 2 {
		return fmt.Errorf("tensor: write dat of %d-D grid: %w", d.Dims(), ErrDimensionMismatch)
	}
	bw := bufio.NewWriter(w)
	rows, cols := d.shape[0], d.shape[1]
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(FormatValue(d.data[i*cols+j]))
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

// LoadDat reads a tabular file from path.
func LoadDat[T Number](path string) (*Dense[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tensor: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadDat[T](f)
}

// SaveDat writes a 2-D grid to path, truncating any existing file.
func SaveDat[T Number](path string, d *Dense[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tensor: create %s: %w", path, err)
	}
	if err = WriteDat(f, d); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// FormatValue renders v with the shortest representation that parses back
// to the same value.
func FormatValue[T Number](v T) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return strconv.FormatUint(uint64(v), 10)
	}

	return strconv.FormatInt(int64(v), 10)
}
