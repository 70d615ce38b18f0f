package lattice

import (
	"fmt"

	"github.com/katalvlaran/remc/mcmc"
)

// State is one Ising replica: the spin grid plus its cached aggregates.
// Spins are stored row-major, index y*Width + x.
type State struct {
	width, height int
	coupling      float64
	field         float64
	spins         []Spin

	interaction   int
	magnetization int
	energy        float64
}

// New builds a width×height State whose spins are drawn independently as
// +1 or −1 with probability ½ each (one rng.Intn(2) per site, row-major),
// then computes the aggregates by full summation.
// Returns ErrInvalidDimensions for non-positive sizes and mcmc.ErrNilRand
// for a nil source.
// Complexity: O(W×H).
func New(width, height int, rng mcmc.Rand, opts ...Option) (*State, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if rng == nil {
		return nil, mcmc.ErrNilRand
	}
	s := newState(width, height, opts)
	for i := range s.spins {
		s.spins[i] = Spin(rng.Intn(2)*2 - 1)
	}
	s.reset()

	return s, nil
}

// FromSpins builds a State from an explicit grid indexed spins[y][x].
// The input is deep-copied.
// Returns ErrInvalidDimensions for an empty grid, ErrNonRectangular for
// ragged rows and ErrInvalidSpin for cells other than ±1.
// Complexity: O(W×H).
func FromSpins(spins [][]Spin, opts ...Option) (*State, error) {
	if len(spins) == 0 || len(spins[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	h, w := len(spins), len(spins[0])
	for _, row := range spins {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	s := newState(w, h, opts)
	for y, row := range spins {
		for x, v := range row {
			if !v.Valid() {
				return nil, fmt.Errorf("FromSpins (%d,%d)=%d: %w", x, y, v, ErrInvalidSpin)
			}
			s.spins[s.index(x, y)] = v
		}
	}
	s.reset()

	return s, nil
}

func newState(width, height int, opts []Option) *State {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &State{
		width:    width,
		height:   height,
		coupling: o.coupling,
		field:    o.field,
		spins:    make([]Spin, width*height),
	}
}

// reset overwrites the cached aggregates with a full recomputation.
func (s *State) reset() {
	ob := s.Recompute()
	s.interaction = ob.Interaction
	s.magnetization = ob.Magnetization
	s.energy = ob.Energy
}

// Width returns the number of columns.
func (s *State) Width() int { return s.width }

// Height returns the number of rows.
func (s *State) Height() int { return s.height }

// Sites returns Width·Height.
func (s *State) Sites() int { return s.width * s.height }

// Coupling returns J.
func (s *State) Coupling() float64 { return s.coupling }

// Field returns h.
func (s *State) Field() float64 { return s.field }

// Interaction returns the cached neighbour-pair sum.
func (s *State) Interaction() int { return s.interaction }

// Magnetization returns the cached spin sum.
func (s *State) Magnetization() int { return s.magnetization }

// Energy returns the cached energy.
func (s *State) Energy() float64 { return s.energy }

// Snapshot returns the cached aggregates.
func (s *State) Snapshot() Observables {
	return Observables{
		Interaction:   s.interaction,
		Magnetization: s.magnetization,
		Energy:        s.energy,
	}
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (s *State) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Spin returns the spin at (x,y) or ErrOutOfRange.
func (s *State) Spin(x, y int) (Spin, error) {
	if !s.InBounds(x, y) {
		return 0, ErrOutOfRange
	}
	return s.spins[s.index(x, y)], nil
}

// Spins returns a deep copy of the grid indexed [y][x].
// Complexity: O(W×H).
func (s *State) Spins() [][]Spin {
	out := make([][]Spin, s.height)
	for y := 0; y < s.height; y++ {
		out[y] = make([]Spin, s.width)
		copy(out[y], s.spins[y*s.width:(y+1)*s.width])
	}
	return out
}

// index maps (x,y) to a row-major index: y*Width + x.
func (s *State) index(x, y int) int {
	return y*s.width + x
}

// energyOf evaluates −J·interaction − h·magnetization.
// Both the cache and Recompute go through here so the float results agree bit for bit.
func (s *State) energyOf(interaction, magnetization int) float64 {
	return -s.coupling*float64(interaction) - s.field*float64(magnetization)
}
