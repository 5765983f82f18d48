// SPDX-License-Identifier: MIT
// Package: cvrp/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations add context with %w.

package builder

import "errors"

// ErrTooFewLocations indicates a location count below the constructor minimum.
var ErrTooFewLocations = errors.New("builder: too few locations")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates a non-positive size parameter.
var ErrBadSize = errors.New("builder: invalid size")

// ErrConstructFailed indicates a constructor that could not run (e.g. nil).
var ErrConstructFailed = errors.New("builder: construction failed")
