package tempering

// Ratio counts attempts and acceptances of one kind of move.
type Ratio struct {
	Attempted int
	Accepted  int
}

// Rate returns Accepted/Attempted, or 0 before any attempt.
func (r Ratio) Rate() float64 {
	if r.Attempted == 0 {
		return 0
	}
	return float64(r.Accepted) / float64(r.Attempted)
}

// AcceptanceStats summarises move acceptance over the run.
type AcceptanceStats struct {
	// Local[c] counts single-spin trials of chain c.
	Local []Ratio
	// Exchange[r] counts swap attempts between ranks r and r+1 (K−1 entries).
	Exchange []Ratio
}

type acceptance struct {
	local    []Ratio
	exchange []Ratio
}

func newAcceptance(k int) acceptance {
	return acceptance{
		local:    make([]Ratio, k),
		exchange: make([]Ratio, k-1),
	}
}

// Acceptance returns a copy of the acceptance counters.
func (e *Ensemble) Acceptance() AcceptanceStats {
	return AcceptanceStats{
		Local:    append([]Ratio(nil), e.acc.local...),
		Exchange: append([]Ratio(nil), e.acc.exchange...),
	}
}
