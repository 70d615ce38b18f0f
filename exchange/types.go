package exchange

// Chain identifies a physical replica. It never changes for a replica.
type Chain int

// Rank identifies a temperature slot: the index into the ordered betas.
type Rank int

// Parity selects which adjacent rank pairs an exchange step attempts.
type Parity int

const (
	// Even pairs ranks (0,1), (2,3), ...
	Even Parity = iota
	// Odd pairs ranks (1,2), (3,4), ...
	Odd
)

// String implements fmt.Stringer.
func (p Parity) String() string {
	if p == Odd {
		return "odd"
	}
	return "even"
}

// PairResult is the outcome of one attempted swap between ranks Lower and Lower+1.
type PairResult struct {
	Lower    Rank
	Left     Chain   // chain at Lower before the attempt
	Right    Chain   // chain at Lower+1 before the attempt
	Delta    float64 // log acceptance ratio
	Accepted bool
}

// RoundResult collects the pairs attempted by one exchange step, in rank order.
type RoundResult struct {
	Parity Parity
	Pairs  []PairResult
}

// Accepted returns the number of accepted swaps.
func (r RoundResult) Accepted() int {
	n := 0
	for _, p := range r.Pairs {
		if p.Accepted {
			n++
		}
	}
	return n
}
