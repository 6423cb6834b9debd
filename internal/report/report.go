// Package report writes the results of a path search: the trajectory, its
// energies, the explored points and optional plots.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pathfind"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/tensor"
)

var (
	// ErrEmptyPath indicates a plot of a path without points.
	ErrEmptyPath = errors.New("report: path has no points")
	// ErrNotTwoDimensional indicates a surface map of a surface with D != 2.
	ErrNotTwoDimensional = errors.New("report: surface map needs exactly two coordinates")
)

// Files holds the output file names derived from a prefix.
type Files struct {
	Traj     string
	Energy   string
	Explored string
	Profile  string
	Surface  string
}

// FilesFor appends the standard extensions to prefix.
func FilesFor(prefix string) Files {
	return Files{
		Traj:     prefix + ".traj",
		Energy:   prefix + ".energy",
		Explored: prefix + ".explored",
		Profile:  prefix + ".png",
		Surface:  prefix + ".html",
	}
}

// WriteRows writes one space separated row per line.
func WriteRows(w io.Writer, rows [][]float64) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(tensor.FormatValue(v))
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteColumn writes one value per line.
func WriteColumn(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		_, _ = bw.WriteString(tensor.FormatValue(v))
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

// saveWith creates path and fills it with write.
func saveWith(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}

	return nil
}

// SaveTrajectory writes the path coordinates to files.Traj and the
// index-aligned energies to files.Energy.
func SaveTrajectory(files Files, p pathfind.Path) error {
	if err := saveWith(files.Traj, func(w io.Writer) error { return WriteRows(w, p.Coords) }); err != nil {
		return err
	}

	return saveWith(files.Energy, func(w io.Writer) error { return WriteColumn(w, p.Energies) })
}

// SaveExplored writes the explored coordinates, in closing order, to path.
func SaveExplored(path string, points [][]float64) error {
	return saveWith(path, func(w io.Writer) error { return WriteRows(w, points) })
}
