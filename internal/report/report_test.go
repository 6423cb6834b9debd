package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/internal/report"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/lattice"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pathfind"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pmf"
)

func samplePath() pathfind.Path {
	return pathfind.Path{
		Points:   []lattice.Point{{0, 0}, {1, 0}, {1, 1}},
		Coords:   [][]float64{{-1, 0.5}, {-0.5, 0.5}, {-0.5, 0.75}},
		Energies: []float64{0, 2.5, 1},
	}
}

func TestFilesFor(t *testing.T) {
	f := report.FilesFor("out/ref")
	assert.Equal(t, report.Files{
		Traj:     "out/ref.traj",
		Energy:   "out/ref.energy",
		Explored: "out/ref.explored",
		Profile:  "out/ref.png",
		Surface:  "out/ref.html",
	}, f)
}

func TestWriteRowsAndColumn(t *testing.T) {
	var rows, col bytes.Buffer
	require.NoError(t, report.WriteRows(&rows, samplePath().Coords))
	require.NoError(t, report.WriteColumn(&col, samplePath().Energies))

	assert.Equal(t, "-1 0.5\n-0.5 0.5\n-0.5 0.75\n", rows.String())
	assert.Equal(t, "0\n2.5\n1\n", col.String())
}

func TestSaveTrajectoryAndExplored(t *testing.T) {
	files := report.FilesFor(filepath.Join(t.TempDir(), "run"))
	require.NoError(t, report.SaveTrajectory(files, samplePath()))
	require.NoError(t, report.SaveExplored(files.Explored, [][]float64{{1}, {2}}))

	traj, err := os.ReadFile(files.Traj)
	require.NoError(t, err)
	energy, err := os.ReadFile(files.Energy)
	require.NoError(t, err)
	explored, err := os.ReadFile(files.Explored)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(string(traj), "\n"))
	assert.Equal(t, "0\n2.5\n1\n", string(energy))
	assert.Equal(t, "1\n2\n", string(explored))

	err = report.SaveExplored(filepath.Join(t.TempDir(), "missing", "x.explored"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteProfile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteProfile(&buf, samplePath()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "not a PNG")

	require.ErrorIs(t, report.WriteProfile(&buf, pathfind.Path{}), report.ErrEmptyPath)

	path := filepath.Join(t.TempDir(), "profile.png")
	require.NoError(t, report.SaveProfile(path, samplePath()))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteSurface(t *testing.T) {
	s, err := pmf.New[float64]([]float64{-1, 0.5}, []float64{0.5, 0.25}, []float64{-0.5, 0.75})
	require.NoError(t, err)
	copy(s.Grid().Data(), []float64{0, 3, 2.5, 1})

	var buf bytes.Buffer
	require.NoError(t, report.WriteSurface(&buf, s, samplePath()))
	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "surface")
	assert.Contains(t, html, "step 2")

	path := filepath.Join(t.TempDir(), "surface.html")
	require.NoError(t, report.SaveSurface(path, s, samplePath()))
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestWriteSurface_RequiresTwoDimensions(t *testing.T) {
	s, err := pmf.New[float64]([]float64{0}, []float64{1}, []float64{3})
	require.NoError(t, err)
	err = report.WriteSurface(&bytes.Buffer{}, s, pathfind.Path{})
	require.ErrorIs(t, err, report.ErrNotTwoDimensional)
}
