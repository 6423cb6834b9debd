package pathfind_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/lattice"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pathfind"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pmf"
)

// unitSurface builds a surface with lower 0 and width 1 on every axis, so
// continuous coordinates equal grid indices.
func unitSurface(t *testing.T, shape []int, data []float64) *pmf.Surface[float64] {
	t.Helper()
	lower := make([]float64, len(shape))
	width := make([]float64, len(shape))
	upper := make([]float64, len(shape))
	for i, n := range shape {
		width[i] = 1
		upper[i] = float64(n - 1)
	}
	s, err := pmf.New[float64](lower, width, upper)
	require.NoError(t, err)
	require.Equal(t, shape, s.Shape())
	require.Len(t, data, s.Grid().Size())
	copy(s.Grid().Data(), data)

	return s
}

// detourGrid: the direct route along row 0 crosses 5, the detour through
// rows 1-2 sums higher but never exceeds 4.
func detourGrid(t *testing.T) *pmf.Surface[float64] {
	return unitSurface(t, []int{3, 3}, []float64{
		0, 5, 0,
		3, 9, 3,
		3, 4, 3,
	})
}

var inf = math.Inf(1)

//----------------------------------------------------------------------------//
// Search semantics
//----------------------------------------------------------------------------//

func TestRun_PrefersLowerBarrier(t *testing.T) {
	f, err := pathfind.New(detourGrid(t), []float64{0, 0}, []float64{0, 2}, []bool{false, false})
	require.NoError(t, err)
	require.NoError(t, f.Run(nil))

	path, err := f.Path()
	require.NoError(t, err)
	want := []lattice.Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}}
	if diff := cmp.Diff(want, path.Points); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []float64{0, 3, 3, 4, 3, 3, 0}, path.Energies)
	assert.Equal(t, []float64{2, 2}, path.Coords[4])
	assert.Equal(t, 4.0, path.Barrier())
	assert.Equal(t, 7, path.Len())

	n, err := f.ExploredCount()
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestRun_UnreachableBehindWall(t *testing.T) {
	s := unitSurface(t, []int{3, 3}, []float64{
		0, inf, 0,
		3, inf, 3,
		3, inf, 3,
	})
	f, err := pathfind.New(s, []float64{0, 0}, []float64{0, 2}, []bool{false, false})
	require.NoError(t, err)

	err = f.Run(nil)
	require.ErrorIs(t, err, pathfind.ErrUnreachable)

	_, err = f.Path()
	require.ErrorIs(t, err, pathfind.ErrNotRun)
	_, err = f.Explored()
	require.ErrorIs(t, err, pathfind.ErrNotRun)
}

func TestRun_PeriodicWrapCrossesWall(t *testing.T) {
	s := unitSurface(t, []int{3, 3}, []float64{
		0, inf, 0,
		3, inf, 3,
		3, inf, 3,
	})
	f, err := pathfind.New(s, []float64{0, 0}, []float64{0, 2}, []bool{false, true})
	require.NoError(t, err)
	require.NoError(t, f.Run(nil))

	path, err := f.Path()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {0, 2}}, path.Coords)
	assert.Equal(t, 0.0, path.Barrier())
}

func TestRun_FIFOTieBreak(t *testing.T) {
	s := unitSurface(t, []int{5}, make([]float64, 5))
	f, err := pathfind.New(s, []float64{2}, []float64{4}, []bool{false})
	require.NoError(t, err)
	require.NoError(t, f.Run(pathfind.ZeroHeuristic))

	explored, err := f.Explored()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2}, {1}, {3}, {0}, {4}}, explored)

	path, err := f.Path()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2}, {3}, {4}}, path.Coords)
}

func TestRun_ManhattanPotentialSteers(t *testing.T) {
	s := unitSurface(t, []int{5}, make([]float64, 5))
	f, err := pathfind.New(s, []float64{2}, []float64{4}, []bool{false})
	require.NoError(t, err)
	require.NoError(t, f.SetTargets([][]float64{{4}}, [][]float64{{1}}))
	require.NoError(t, f.Run(f.ManhattanPotential()))

	explored, err := f.Explored()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2}, {3}, {4}}, explored)
}

func TestRun_Deterministic(t *testing.T) {
	run := func() (pathfind.Path, [][]float64) {
		f, err := pathfind.New(detourGrid(t), []float64{0, 0}, []float64{0, 2}, []bool{true, true})
		require.NoError(t, err)
		require.NoError(t, f.SetTargets([][]float64{{1, 1}}, [][]float64{{0.5, 0.25}}))
		require.NoError(t, f.Run(f.ManhattanPotential()))
		p, err := f.Path()
		require.NoError(t, err)
		e, err := f.Explored()
		require.NoError(t, err)
		return p, e
	}
	p1, e1 := run()
	p2, e2 := run()
	if diff := cmp.Diff(p1, p2); diff != "" {
		t.Errorf("path differs between runs:\n%s", diff)
	}
	if diff := cmp.Diff(e1, e2); diff != "" {
		t.Errorf("explored differs between runs:\n%s", diff)
	}
}

func TestRun_BarrierThreshold(t *testing.T) {
	start, end, pbc := []float64{0, 0}, []float64{0, 2}, []bool{false, false}

	f, err := pathfind.New(detourGrid(t), start, end, pbc, pathfind.WithBarrierThreshold(5))
	require.NoError(t, err)
	require.NoError(t, f.Run(nil))
	path, err := f.Path()
	require.NoError(t, err)
	assert.Equal(t, 4.0, path.Barrier())

	f, err = pathfind.New(detourGrid(t), start, end, pbc, pathfind.WithBarrierThreshold(4))
	require.NoError(t, err)
	require.ErrorIs(t, f.Run(nil), pathfind.ErrUnreachable)

	assert.Panics(t, func() { pathfind.WithBarrierThreshold(math.NaN()) })
}

func TestRun_StartCellAlwaysEntered(t *testing.T) {
	s := unitSurface(t, []int{3}, []float64{10, 1, 1})
	f, err := pathfind.New(s, []float64{0}, []float64{2}, []bool{false}, pathfind.WithBarrierThreshold(5))
	require.NoError(t, err)
	require.NoError(t, f.Run(nil))
	path, err := f.Path()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 1, 1}, path.Energies)
}

func TestRun_NaNCellImpassable(t *testing.T) {
	s := unitSurface(t, []int{3}, []float64{0, math.NaN(), 0})
	f, err := pathfind.New(s, []float64{0}, []float64{2}, []bool{false})
	require.NoError(t, err)
	require.ErrorIs(t, f.Run(nil), pathfind.ErrUnreachable)
}

func TestRun_StartEqualsEnd(t *testing.T) {
	s := unitSurface(t, []int{1}, []float64{7})
	f, err := pathfind.New(s, []float64{0}, []float64{0}, []bool{false})
	require.NoError(t, err)
	require.NoError(t, f.Run(nil))
	path, err := f.Path()
	require.NoError(t, err)
	assert.Equal(t, []lattice.Point{{0}}, path.Points)
	assert.Equal(t, 7.0, path.Barrier())
}

func TestRun_ResetsPreviousResults(t *testing.T) {
	f, err := pathfind.New(detourGrid(t), []float64{0, 0}, []float64{0, 2}, []bool{false, false})
	require.NoError(t, err)
	require.NoError(t, f.Run(nil))
	require.NoError(t, f.Run(nil))
	n, err := f.ExploredCount()
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestRun_LogsWhenLoggerSet(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	f, err := pathfind.New(detourGrid(t), []float64{0, 0}, []float64{0, 2}, []bool{false, false},
		pathfind.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, f.Run(nil))

	assert.Contains(t, buf.String(), `"message":"search started"`)
	assert.Contains(t, buf.String(), `"explored":7`)
}

func TestRun_IntegerSurface(t *testing.T) {
	s, err := pmf.New[int]([]float64{0}, []float64{1}, []float64{3})
	require.NoError(t, err)
	copy(s.Grid().Data(), []int{1, 8, 2, 1})

	path, err := pathfind.Search(s, pathfind.Request{
		Start:    []float64{0},
		End:      []float64{2},
		Periodic: []bool{true},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}, {3}, {2}}, path.Coords)
	assert.Equal(t, 2.0, path.Barrier())
}

//----------------------------------------------------------------------------//
// Construction and validation
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	s := detourGrid(t)
	cases := []struct {
		name       string
		surf       pathfind.Surface
		start, end []float64
		periodic   []bool
		err        error
	}{
		{"NilSurface", nil, []float64{0, 0}, []float64{0, 2}, []bool{false, false}, pathfind.ErrNilSurface},
		{"ShortStart", s, []float64{0}, []float64{0, 2}, []bool{false, false}, pathfind.ErrDimensionMismatch},
		{"ShortPeriodic", s, []float64{0, 0}, []float64{0, 2}, []bool{false}, pathfind.ErrDimensionMismatch},
		{"StartOutside", s, []float64{-3, 0}, []float64{0, 2}, []bool{false, false}, pathfind.ErrOutOfBounds},
		{"EndOutside", s, []float64{0, 0}, []float64{0, 7}, []bool{false, false}, pathfind.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pathfind.New(tc.surf, tc.start, tc.end, tc.periodic)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_NAMDGridEdges(t *testing.T) {
	s, err := pmf.FromHeader[float64]([]float64{-20}, []float64{0.2}, []int{200})
	require.NoError(t, err)

	f, err := pathfind.New(s, []float64{-20}, []float64{20}, []bool{false})
	require.NoError(t, err)
	assert.Equal(t, lattice.Point{0}, f.Start())
	assert.Equal(t, lattice.Point{199}, f.End())

	require.NoError(t, f.Run(nil))
	path, err := f.Path()
	require.NoError(t, err)
	assert.Equal(t, 200, path.Len())
	assert.InDelta(t, -19.9, path.Coords[0][0], 1e-9)
	assert.InDelta(t, 19.9, path.Coords[199][0], 1e-9)
}

func TestSetTargets(t *testing.T) {
	f, err := pathfind.New(detourGrid(t), []float64{0, 0}, []float64{0, 2}, []bool{false, false})
	require.NoError(t, err)

	require.ErrorIs(t, f.SetTargets([][]float64{{1, 1}}, nil), pathfind.ErrDimensionMismatch)
	require.ErrorIs(t, f.SetTargets([][]float64{{1}}, [][]float64{{1, 1}}), pathfind.ErrDimensionMismatch)
	require.ErrorIs(t, f.SetTargets([][]float64{{1, 9}}, [][]float64{{1, 1}}), pathfind.ErrOutOfBounds)

	require.NoError(t, f.SetTargets([][]float64{{1.2, 1.9}}, [][]float64{{2, 3}}))
	got := f.Targets()
	require.Len(t, got, 1)
	assert.Equal(t, lattice.Point{1, 1}, got[0].Point)
	assert.Equal(t, []float64{2, 3}, got[0].Force)

	require.NoError(t, f.SetTargets(nil, nil))
	assert.Empty(t, f.Targets())
}

func TestResults_BeforeRun(t *testing.T) {
	f, err := pathfind.New(detourGrid(t), []float64{0, 0}, []float64{0, 2}, []bool{false, false})
	require.NoError(t, err)

	_, err = f.Path()
	require.ErrorIs(t, err, pathfind.ErrNotRun)
	_, err = f.Explored()
	require.ErrorIs(t, err, pathfind.ErrNotRun)
	_, err = f.ExploredCount()
	require.ErrorIs(t, err, pathfind.ErrNotRun)
}

func TestPath_BarrierEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(pathfind.Path{}.Barrier()))
}

func TestSearch_PropagatesErrors(t *testing.T) {
	_, err := pathfind.Search(detourGrid(t), pathfind.Request{
		Start:    []float64{0, 0},
		End:      []float64{0, 2},
		Periodic: []bool{false, false},
		Targets:  [][]float64{{1, 1}},
		Forces:   [][]float64{{1}},
	})
	require.ErrorIs(t, err, pathfind.ErrDimensionMismatch)

	_, err = pathfind.Search(detourGrid(t), pathfind.Request{Start: []float64{0, 0}})
	require.ErrorIs(t, err, pathfind.ErrDimensionMismatch)
}
