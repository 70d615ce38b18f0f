package mcmc

import "errors"

// ErrNilRand indicates a nil random source was supplied where one is required.
var ErrNilRand = errors.New("mcmc: random source is nil")
