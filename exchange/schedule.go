package exchange

import "fmt"

// Schedule decides which global steps attempt exchanges.
type Schedule struct {
	rate int
}

// NewSchedule returns a schedule attempting exchanges every rate steps.
// Returns ErrInvalidRate for rate ≤ 0.
func NewSchedule(rate int) (Schedule, error) {
	if rate <= 0 {
		return Schedule{}, fmt.Errorf("rate %d: %w", rate, ErrInvalidRate)
	}
	return Schedule{rate: rate}, nil
}

// Rate returns the number of steps between exchange attempts.
func (s Schedule) Rate() int { return s.rate }

// IsExchangeStep reports whether step is an exchange step: step % Rate == 0.
func (s Schedule) IsExchangeStep(step int) bool {
	return step%s.rate == 0
}

// Parity returns the pairing of an exchange step from its ordinal
// step/Rate: even ordinals pair (0,1),(2,3),…, odd ordinals (1,2),(3,4),….
func (s Schedule) Parity(step int) Parity {
	return Parity((step / s.rate) % 2)
}

// LowerRanks lists the lower rank of every pair attempted with parity p
// among k ranks.
func LowerRanks(p Parity, k int) []Rank {
	var out []Rank
	for r := int(p); r+1 < k; r += 2 {
		out = append(out, Rank(r))
	}
	return out
}
