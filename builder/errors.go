// SPDX-License-Identifier: MIT
// Package builder: sentinel errors. Branch with errors.Is; constructors
// attach context via %w wrapping and never panic.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the minimum of
	// the requested topology.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without a seeded random source (see WithSeed).
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil or otherwise unusable
	// constructor was passed to Build.
	ErrConstructFailed = errors.New("builder: construction failed")
)
