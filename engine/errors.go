package engine

import "errors"

// ErrNegativeDepth is returned when a record call is given a depth
// below zero.
var ErrNegativeDepth = errors.New("engine: depth must be non-negative")

// ErrNegativeTime is returned when a record call is given a duration
// below zero.
var ErrNegativeTime = errors.New("engine: time must be non-negative")

// ErrInvalidGas is returned when a gas mixture's fractions fail
// validation (spec invariant 2).
var ErrInvalidGas = errors.New("engine: gas fractions are invalid")
