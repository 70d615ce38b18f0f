package stats_test

import (
	"testing"

	"github.com/katalvlaran/remc/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSlice follows the Python-like xs[start:end:skip] table.
func TestSlice(t *testing.T) {
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	cases := []struct {
		name             string
		start, end, skip int
		want             []int
	}{
		{"All", 0, 0, 1, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"FromThree", 3, 0, 1, []int{3, 4, 5, 6, 7, 8, 9}},
		{"TwoToNine", 2, 9, 1, []int{2, 3, 4, 5, 6, 7, 8}},
		{"Strided", 2, 9, 3, []int{2, 5, 8}},
		{"StridedToEnd", 1, 0, 4, []int{1, 5, 9}},
		{"EndPastLen", 8, 25, 1, []int{8, 9}},
		{"SkipEqualsLen", 0, 0, 10, []int{0}},
		{"Last", 9, 0, 2, []int{9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stats.Slice(xs, tc.start, tc.end, tc.skip)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSlice_Errors covers the EmptySample and negative-index conditions.
func TestSlice_Errors(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	cases := []struct {
		name             string
		xs               []float64
		start, end, skip int
		err              error
	}{
		{"SkipZero", xs, 0, 0, 0, stats.ErrEmptySample},
		{"SkipTooLarge", xs, 0, 0, 6, stats.ErrEmptySample},
		{"BurninAtLen", xs, 5, 0, 1, stats.ErrEmptySample},
		{"BurninPastLen", xs, 9, 0, 1, stats.ErrEmptySample},
		{"EndBeforeStart", xs, 3, 2, 1, stats.ErrEmptySample},
		{"EmptyInput", nil, 0, 0, 1, stats.ErrEmptySample},
		{"NegativeStart", xs, -1, 0, 1, stats.ErrNegativeIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stats.Slice(tc.xs, tc.start, tc.end, tc.skip)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestSlice_Fresh verifies the result does not alias the input.
func TestSlice_Fresh(t *testing.T) {
	xs := []float64{1, 2, 3}
	got, err := stats.Slice(xs, 0, 0, 1)
	require.NoError(t, err)
	got[0] = 99
	assert.Equal(t, 1.0, xs[0])
}

// TestARange covers integer-like and decimal ladders.
func TestARange(t *testing.T) {
	cases := []struct {
		name             string
		start, end, step float64
		want             []float64
	}{
		{"Ints", 0, 3, 1, []float64{0, 1, 2}},
		{"Offset", 1, 4, 1, []float64{1, 2, 3}},
		{"Stride2", 1, 6, 2, []float64{1, 3, 5}},
		{"Stride2Exact", 1, 7, 2, []float64{1, 3, 5}},
		{"Decimal", 0.1, 0.7, 0.2, []float64{0.1, 0.3, 0.5}},
		{"Empty", 1, 1, 0.5, nil},
		{"Reversed", 2, 1, 0.5, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stats.ARange(tc.start, tc.end, tc.step)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestARange_BetaLadder checks the default inverse-temperature sweep.
func TestARange_BetaLadder(t *testing.T) {
	got, err := stats.ARange(0.35, 0.55, 0.01)
	require.NoError(t, err)
	require.Len(t, got, 20)
	assert.Equal(t, 0.35, got[0])
	assert.Equal(t, 0.44, got[9])
	assert.Equal(t, 0.54, got[19])
}

// TestARange_InvalidStep rejects non-positive and non-finite arguments.
func TestARange_InvalidStep(t *testing.T) {
	var zero float64
	for _, step := range []float64{0, -0.1, zero / zero} {
		_, err := stats.ARange(0, 1, step)
		assert.ErrorIs(t, err, stats.ErrInvalidStep, "step=%v", step)
	}
	_, err := stats.ARange(0, 1/zero, 0.1)
	assert.ErrorIs(t, err, stats.ErrInvalidStep)
}
