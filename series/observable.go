package series

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/remc/lattice"
)

// Observable selects one aggregate of a lattice snapshot.
type Observable int

const (
	// Interaction is the neighbour-pair sum.
	Interaction Observable = iota
	// Magnetization is the spin sum.
	Magnetization
	// Energy is −J·Interaction − h·Magnetization.
	Energy
)

// Observables lists every Observable in declaration order.
var Observables = []Observable{Interaction, Magnetization, Energy}

// String implements fmt.Stringer.
func (o Observable) String() string {
	switch o {
	case Interaction:
		return "interaction"
	case Magnetization:
		return "magnetization"
	case Energy:
		return "energy"
	}
	return fmt.Sprintf("Observable(%d)", int(o))
}

// Valid reports whether o is a known observable.
func (o Observable) Valid() bool {
	return o >= Interaction && o <= Energy
}

// Of extracts the observable from a snapshot.
func (o Observable) Of(s lattice.Observables) float64 {
	switch o {
	case Interaction:
		return float64(s.Interaction)
	case Magnetization:
		return float64(s.Magnetization)
	default:
		return s.Energy
	}
}

// ParseObservable maps a case-insensitive name to an Observable.
func ParseObservable(name string) (Observable, error) {
	for _, o := range Observables {
		if strings.EqualFold(name, o.String()) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownObservable)
}
