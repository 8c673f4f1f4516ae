// SPDX-License-Identifier: MIT
// Package builder: deterministic topology constructors.
//
// Every constructor adds vertices in ascending index order and emits
// edges in a fixed order, so equal inputs always yield equal graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domirank/core"
)

// Minimum sizes per topology family.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minGridSide      = 1
)

// addVertices inserts n vertices with IDs cfg.idFn(0..n-1).
func addVertices(g *core.Graph, cfg config, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.idFn(i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, cfg.idFn(i), err)
		}
	}

	return nil
}

// Path builds the simple path P_n: edges (i−1, i) for i = 1..n−1.
// Requires n ≥ 2. Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < %d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, "Path", n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, "Path", cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the cycle C_n: a path plus the closing edge (n−1, 0).
// Requires n ≥ 3. Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}

		return addEdge(g, cfg, "Cycle", cfg.idFn(n-1), cfg.idFn(0))
	}
}

// Star builds the star S_n: hub 0 linked to leaves 1..n−1. Under
// DomiRank the hub dominates and every leaf scores negative once the
// competition level is high enough. Requires n ≥ 2. Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < %d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, "Star", n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, "Star", cfg.idFn(0), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: a hub 0 joined to every vertex of the cycle
// 1..n−1. Requires n ≥ 4. Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minWheelNodes {
			return fmt.Errorf("Wheel: n=%d < %d: %w", n, minWheelNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, "Wheel", n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, "Wheel", cfg.idFn(0), cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 2; i < n; i++ {
			if err := addEdge(g, cfg, "Wheel", cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return addEdge(g, cfg, "Wheel", cfg.idFn(n-1), cfg.idFn(1))
	}
}

// Complete builds K_n: every unordered pair linked once. Requires
// n ≥ 1. Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < %d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, "Complete", n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, "Complete", cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols lattice; vertex (r, c) has index r·cols+c and
// is linked to its right and down neighbours. Requires both sides ≥ 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, "Grid", rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, "Grid", cfg.idFn(at), cfg.idFn(at+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, "Grid", cfg.idFn(at), cfg.idFn(at+cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi style graph over n vertices where
// each unordered pair is linked with probability p. Requires n ≥ 1,
// p ∈ [0, 1] and a seeded source (WithSeed). Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("RandomSparse: n=%d < %d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, "RandomSparse", n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, "RandomSparse", cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
