package lattice

import "fmt"

// Recompute derives the aggregates from the grid by full summation.
// Each unordered neighbour pair is counted once (E and S neighbours only).
// Complexity: O(W×H).
func (s *State) Recompute() Observables {
	interaction, magnetization := 0, 0
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			v := int(s.spins[s.index(x, y)])
			magnetization += v
			if x+1 < s.width {
				interaction += v * int(s.spins[s.index(x+1, y)])
			}
			if y+1 < s.height {
				interaction += v * int(s.spins[s.index(x, y+1)])
			}
		}
	}
	return Observables{
		Interaction:   interaction,
		Magnetization: magnetization,
		Energy:        s.energyOf(interaction, magnetization),
	}
}

// Verify compares the cached aggregates with Recompute and returns a
// wrapped ErrAggregateMismatch describing the first differing quantity.
// Complexity: O(W×H).
func (s *State) Verify() error {
	want := s.Recompute()
	switch {
	case s.interaction != want.Interaction:
		return fmt.Errorf("interaction cached=%d recomputed=%d: %w",
			s.interaction, want.Interaction, ErrAggregateMismatch)
	case s.magnetization != want.Magnetization:
		return fmt.Errorf("magnetization cached=%d recomputed=%d: %w",
			s.magnetization, want.Magnetization, ErrAggregateMismatch)
	case s.energy != want.Energy:
		return fmt.Errorf("energy cached=%v recomputed=%v: %w",
			s.energy, want.Energy, ErrAggregateMismatch)
	}
	return nil
}
