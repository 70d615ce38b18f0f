package lattice

import (
	"fmt"
	"math"
)

// Spin is the state of one site, Up (+1) or Down (−1).
type Spin int8

const (
	// Up is the +1 spin.
	Up Spin = 1
	// Down is the −1 spin.
	Down Spin = -1
)

// Valid reports whether s is ±1.
func (s Spin) Valid() bool { return s == Up || s == Down }

// Observables is a snapshot of the aggregate quantities of a State.
type Observables struct {
	Interaction   int     // Σ over unordered neighbour pairs of s_i·s_j
	Magnetization int     // Σ s_i
	Energy        float64 // −J·Interaction − h·Magnetization
}

// SweepResult counts the single-spin trials of one sweep.
type SweepResult struct {
	Proposed int
	Accepted int
}

// Default model parameters.
const (
	// DefaultCoupling is the ferromagnetic coupling J.
	DefaultCoupling = 1.0
	// DefaultField is the external field h.
	DefaultField = 0.0
)

// Option configures model parameters of a State.
type Option func(*options)

type options struct {
	coupling float64
	field    float64
}

func defaultOptions() options {
	return options{coupling: DefaultCoupling, field: DefaultField}
}

// WithCoupling sets the neighbour coupling J.
// Panics if j is NaN or ±Inf (programmer error).
func WithCoupling(j float64) Option {
	if math.IsNaN(j) || math.IsInf(j, 0) {
		panic(fmt.Sprintf("lattice: WithCoupling: coupling must be finite, got %v", j))
	}
	return func(o *options) { o.coupling = j }
}

// WithField sets the uniform external field h.
// Panics if h is NaN or ±Inf (programmer error).
func WithField(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		panic(fmt.Sprintf("lattice: WithField: field must be finite, got %v", h))
	}
	return func(o *options) { o.field = h }
}

// neighborOffsets lists the 4-connected neighbours: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
