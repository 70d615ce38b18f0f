package stats

import (
	"fmt"
	"math"
)

// Slice returns xs[start:end:skip]: the elements at start, start+skip, …
// strictly below end. end ≤ 0 or end > len(xs) means "through the end".
//
// Returns ErrNegativeIndex for start < 0 and ErrEmptySample when the result
// would be empty: skip outside [1, len(xs)], start ≥ len(xs) or end ≤ start.
// The result is a fresh slice.
// Complexity: O(len/skip).
func Slice[T any](xs []T, start, end, skip int) ([]T, error) {
	n := len(xs)
	if start < 0 {
		return nil, fmt.Errorf("start %d: %w", start, ErrNegativeIndex)
	}
	if end <= 0 || end > n {
		end = n
	}
	if skip < 1 || skip > n || start >= end {
		return nil, fmt.Errorf("len=%d start=%d end=%d skip=%d: %w", n, start, end, skip, ErrEmptySample)
	}
	out := make([]T, 0, (end-start+skip-1)/skip)
	for i := start; i < end; i += skip {
		out = append(out, xs[i])
	}
	return out, nil
}

// arangeTolerance absorbs float round-off at the open end of ARange, as a
// fraction of step.
const arangeTolerance = 1e-9

// ARange returns start, start+step, start+2·step, … strictly below end.
// Values are computed as start + i·step (no accumulated drift) and rounded to
// 12 decimal places, so decimal ladders such as 0.35..0.55 by 0.01 come out
// exact. end ≤ start yields an empty slice.
//
// Returns ErrInvalidStep for step ≤ 0 or non-finite arguments.
// Complexity: O((end−start)/step).
func ARange(start, end, step float64) ([]float64, error) {
	for _, v := range []float64{start, end, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("start=%v end=%v step=%v: %w", start, end, step, ErrInvalidStep)
		}
	}
	if step <= 0 {
		return nil, fmt.Errorf("step %v: %w", step, ErrInvalidStep)
	}
	var out []float64
	limit := end - step*arangeTolerance
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v >= limit {
			break
		}
		out = append(out, math.Round(v*1e12)/1e12)
	}
	return out, nil
}
