// SPDX-License-Identifier: MIT
// Package builder: the single orchestrator entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domirank/core"
)

// Constructor applies a deterministic topology mutation to g under the
// resolved configuration. Implementations validate early, return
// sentinel errors and honor the graph's mode flags.
type Constructor func(g *core.Graph, cfg config) error

// Build creates a fresh core.Graph with gopts, resolves the builder
// options and applies the constructors in order. The first failure is
// wrapped and returned immediately; no partial cleanup is attempted.
//
// Complexity: Σ cost of the constructors; orchestration is O(len(cons)).
func Build(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// edgeWeight resolves the weight to emit for the current graph mode.
func edgeWeight(g *core.Graph, cfg config) float64 {
	if !g.Weighted() {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}

// addEdge inserts one edge with mode-appropriate weight, wrapping
// failures with the constructor name for context.
func addEdge(g *core.Graph, cfg config, method, from, to string) error {
	if _, err := g.AddEdge(from, to, edgeWeight(g, cfg)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, from, to, err)
	}

	return nil
}
