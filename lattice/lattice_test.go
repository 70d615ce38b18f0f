package lattice_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/remc/lattice"
	"github.com/katalvlaran/remc/mcmc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive sizes and a nil source.
func TestNew_Errors(t *testing.T) {
	rng := mcmc.NewRand(1)
	cases := []struct {
		name string
		w, h int
		rng  mcmc.Rand
		err  error
	}{
		{"ZeroWidth", 0, 3, rng, lattice.ErrInvalidDimensions},
		{"ZeroHeight", 3, 0, rng, lattice.ErrInvalidDimensions},
		{"NegativeWidth", -2, 3, rng, lattice.ErrInvalidDimensions},
		{"NilRand", 3, 3, nil, mcmc.ErrNilRand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := lattice.New(tc.w, tc.h, tc.rng)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_RandomSpinsAndAggregates checks that every cell is ±1 and that the
// initial aggregates equal a full recomputation.
func TestNew_RandomSpinsAndAggregates(t *testing.T) {
	s, err := lattice.New(7, 5, mcmc.NewRand(3), lattice.WithField(0.25), lattice.WithCoupling(0.5))
	require.NoError(t, err)

	assert.Equal(t, 7, s.Width())
	assert.Equal(t, 5, s.Height())
	assert.Equal(t, 35, s.Sites())
	assert.Equal(t, 0.5, s.Coupling())
	assert.Equal(t, 0.25, s.Field())

	up, down := 0, 0
	for _, row := range s.Spins() {
		for _, v := range row {
			require.True(t, v.Valid())
			if v == lattice.Up {
				up++
			} else {
				down++
			}
		}
	}
	assert.Equal(t, up-down, s.Magnetization())
	assert.Equal(t, s.Recompute(), s.Snapshot())
	assert.NoError(t, s.Verify())
}

// TestNew_SeedDeterminism verifies identical grids for identical seeds.
func TestNew_SeedDeterminism(t *testing.T) {
	a, err := lattice.New(6, 6, mcmc.NewRand(11))
	require.NoError(t, err)
	b, err := lattice.New(6, 6, mcmc.NewRand(11))
	require.NoError(t, err)
	assert.Equal(t, a.Spins(), b.Spins())
}

// TestFromSpins_Errors verifies empty, ragged and invalid-spin inputs.
func TestFromSpins_Errors(t *testing.T) {
	cases := []struct {
		name  string
		spins [][]lattice.Spin
		err   error
	}{
		{"EmptyRows", [][]lattice.Spin{}, lattice.ErrInvalidDimensions},
		{"EmptyCols", [][]lattice.Spin{{}}, lattice.ErrInvalidDimensions},
		{"NonRectangular", [][]lattice.Spin{{1, 1}, {1}}, lattice.ErrNonRectangular},
		{"ZeroSpin", [][]lattice.Spin{{1, 0}}, lattice.ErrInvalidSpin},
		{"TwoSpin", [][]lattice.Spin{{1}, {2}}, lattice.ErrInvalidSpin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.FromSpins(tc.spins)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromSpins(%v) error = %v; want %v", tc.spins, err, tc.err)
			}
		})
	}
}

// TestFromSpins_Aggregates checks hand-computed aggregates on open boundaries.
func TestFromSpins_Aggregates(t *testing.T) {
	const u, d = lattice.Up, lattice.Down
	cases := []struct {
		name  string
		spins [][]lattice.Spin
		opts  []lattice.Option
		want  lattice.Observables
	}{
		{
			// 2×2 has 4 neighbour pairs.
			name:  "AllUp2x2",
			spins: [][]lattice.Spin{{u, u}, {u, u}},
			want:  lattice.Observables{Interaction: 4, Magnetization: 4, Energy: -4},
		},
		{
			name:  "AllUp2x2Field",
			spins: [][]lattice.Spin{{u, u}, {u, u}},
			opts:  []lattice.Option{lattice.WithField(0.5)},
			want:  lattice.Observables{Interaction: 4, Magnetization: 4, Energy: -6},
		},
		{
			name:  "Row3Alternating",
			spins: [][]lattice.Spin{{u, d, u}},
			want:  lattice.Observables{Interaction: -2, Magnetization: 1, Energy: 2},
		},
		{
			// 3×3 checkerboard: 12 pairs, all anti-aligned.
			name:  "Checkerboard3x3Coupling2",
			spins: [][]lattice.Spin{{u, d, u}, {d, u, d}, {u, d, u}},
			opts:  []lattice.Option{lattice.WithCoupling(2)},
			want:  lattice.Observables{Interaction: -12, Magnetization: 1, Energy: 24},
		},
		{
			name:  "Single",
			spins: [][]lattice.Spin{{d}},
			opts:  []lattice.Option{lattice.WithField(1)},
			want:  lattice.Observables{Interaction: 0, Magnetization: -1, Energy: 1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := lattice.FromSpins(tc.spins, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Snapshot())
			assert.Equal(t, tc.want, s.Recompute())
		})
	}
}

// TestSpin_Bounds checks Spin lookup and ErrOutOfRange.
func TestSpin_Bounds(t *testing.T) {
	s, err := lattice.FromSpins([][]lattice.Spin{{1, -1, 1}, {-1, -1, 1}})
	require.NoError(t, err)

	v, err := s.Spin(1, 0)
	require.NoError(t, err)
	assert.Equal(t, lattice.Down, v)
	v, err = s.Spin(2, 1)
	require.NoError(t, err)
	assert.Equal(t, lattice.Up, v)

	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		_, err = s.Spin(xy[0], xy[1])
		assert.ErrorIs(t, err, lattice.ErrOutOfRange, "(%d,%d)", xy[0], xy[1])
	}
}

// TestSpins_DeepCopy verifies that mutating the returned grid leaves the state intact.
func TestSpins_DeepCopy(t *testing.T) {
	s, err := lattice.FromSpins([][]lattice.Spin{{1, 1}, {1, 1}})
	require.NoError(t, err)

	grid := s.Spins()
	grid[0][0] = lattice.Down
	v, _ := s.Spin(0, 0)
	assert.Equal(t, lattice.Up, v)
}

// TestOptions_PanicOnNonFinite checks programmer-error panics.
func TestOptions_PanicOnNonFinite(t *testing.T) {
	var zero float64
	assert.Panics(t, func() { lattice.WithCoupling(zero / zero) })
	assert.Panics(t, func() { lattice.WithField(1 / zero) })
}

//----------------------------------------------------------------------------//
// Verify
//----------------------------------------------------------------------------//

// TestVerify_DetectsCorruption verifies that Verify reports drifted caches.
func TestVerify_DetectsCorruption(t *testing.T) {
	s, err := lattice.New(4, 4, mcmc.NewRand(5))
	require.NoError(t, err)
	require.NoError(t, s.Verify())

	s.ShiftCachedMagnetization(2)
	assert.ErrorIs(t, s.Verify(), lattice.ErrAggregateMismatch)
	s.ShiftCachedMagnetization(-2)
	require.NoError(t, s.Verify())

	s.ShiftCachedEnergy(1e-9)
	err = s.Verify()
	assert.ErrorIs(t, err, lattice.ErrAggregateMismatch)
	assert.Contains(t, err.Error(), "energy")
}
