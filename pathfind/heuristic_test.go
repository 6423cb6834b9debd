package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/lattice"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pathfind"
)

func TestZeroHeuristic(t *testing.T) {
	assert.Zero(t, pathfind.ZeroHeuristic(lattice.Point{3, 4}))
}

func TestManhattanPotential(t *testing.T) {
	s := unitSurface(t, []int{5}, make([]float64, 5))

	cases := []struct {
		name     string
		periodic bool
		targets  [][]float64
		forces   [][]float64
		at       lattice.Point
		want     float64
	}{
		{"NoTargets", false, nil, nil, lattice.Point{3}, 0},
		{"Direct", false, [][]float64{{4}}, [][]float64{{1}}, lattice.Point{1}, 3},
		{"PeriodicExtremes", true, [][]float64{{4}}, [][]float64{{1}}, lattice.Point{0}, 0},
		{"PeriodicViaBoundary", true, [][]float64{{4}}, [][]float64{{2}}, lattice.Point{1}, 2},
		{"SumOverTargets", false, [][]float64{{0}, {4}}, [][]float64{{2}, {0.5}}, lattice.Point{1}, 3.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := pathfind.New(s, []float64{0}, []float64{4}, []bool{tc.periodic})
			require.NoError(t, err)
			require.NoError(t, f.SetTargets(tc.targets, tc.forces))
			assert.InDelta(t, tc.want, f.ManhattanPotential()(tc.at), 1e-12)
		})
	}
}

func TestManhattanPotential_SnapshotOfTargets(t *testing.T) {
	s := unitSurface(t, []int{3, 3}, make([]float64, 9))
	f, err := pathfind.New(s, []float64{0, 0}, []float64{2, 2}, []bool{false, false})
	require.NoError(t, err)
	require.NoError(t, f.SetTargets([][]float64{{2, 2}}, [][]float64{{1, 10}}))

	h := f.ManhattanPotential()
	require.NoError(t, f.SetTargets(nil, nil))
	assert.InDelta(t, 2+20.0, h(lattice.Point{0, 0}), 1e-12)
}
