package lattice

// ShiftCachedMagnetization perturbs the cached magnetization so tests can
// exercise Verify's failure path.
func (s *State) ShiftCachedMagnetization(d int) { s.magnetization += d }

// ShiftCachedEnergy perturbs the cached energy.
func (s *State) ShiftCachedEnergy(d float64) { s.energy += d }
