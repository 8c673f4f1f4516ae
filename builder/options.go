// SPDX-License-Identifier: MIT
// Package builder: functional options resolved into an immutable config.

package builder

import (
	"math/rand"
	"strconv"
)

// IDFn maps a vertex index to its string ID.
type IDFn func(i int) string

// WeightFn produces an edge weight; rng is non-nil only when a seed was
// supplied. Used solely on weighted graphs.
type WeightFn func(rng *rand.Rand) float64

// config is the resolved builder configuration. Immutable after
// newConfig; constructors read it, never write it.
type config struct {
	idFn     IDFn
	weightFn WeightFn
	rng      *rand.Rand
}

// Option adjusts the builder configuration.
type Option func(*config)

// defaultWeight is emitted on weighted graphs when no WeightFn is set.
const defaultWeight = 1.0

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) float64 { return defaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDFn overrides vertex ID generation. Default: strconv.Itoa.
func WithIDFn(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithSeed installs a deterministic random source for stochastic
// constructors and randomized weights.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides edge weight generation on weighted graphs.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}
