// SPDX-License-Identifier: MIT
package domirank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domirank"
	"github.com/katalvlaran/domirank/core"
	"github.com/katalvlaran/domirank/matrix"
)

// pathGraph builds an undirected path 0-1-...-(n-1) with unit weights.
func pathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge(itoa(i), itoa(i+1), 0)
		require.NoError(t, err)
	}

	return g
}

func itoa(i int) string {
	return string(rune('0' + i))
}

func TestDomiRank_Rejections(t *testing.T) {
	g := pathGraph(t, 3)

	tests := []struct {
		name string
		g    *core.Graph
		opts []domirank.Option
		want error
	}{
		{"nil graph", nil, nil, domirank.ErrNilGraph},
		{"empty graph", core.NewGraph(), nil, domirank.ErrEmptyGraph},
		{"check step 3 of 100", g,
			[]domirank.Option{domirank.WithCheckStep(3), domirank.WithMaxIter(100)},
			domirank.ErrCheckStepTooSmall},
		{"check step above budget", g,
			[]domirank.Option{domirank.WithCheckStep(200), domirank.WithMaxIter(100)},
			domirank.ErrCheckStepTooLarge},
		{"dt 1.5", g, []domirank.Option{domirank.WithDt(1.5)}, domirank.ErrBadDt},
		{"dt zero", g, []domirank.Option{domirank.WithDt(0)}, domirank.ErrBadDt},
		{"negative epsilon", g, []domirank.Option{domirank.WithEpsilon(-1e-5)}, domirank.ErrBadEpsilon},
		{"negative sigma iterative", g, []domirank.Option{domirank.WithSigma(-0.1)}, domirank.ErrNegativeSigma},
		{"negative sigma analytical", g,
			[]domirank.Option{domirank.WithSigma(-0.1), domirank.WithAnalytical()},
			domirank.ErrNegativeSigma},
		{"supercharged sigma iterative", g, []domirank.Option{domirank.WithSigma(1.5)}, domirank.ErrSuperchargedSigma},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domirank.DomiRank(tc.g, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDomiRank_EdgelessGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("lonely"))

	_, err := domirank.DomiRank(g)
	assert.ErrorIs(t, err, domirank.ErrNoEdges)
}

func TestDomiRank_Multigraph(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	_, err = domirank.DomiRank(g)
	assert.ErrorIs(t, err, matrix.ErrMultiEdge)
}

// Path graph 0-1-2-3-4 with default parameters: converges to a
// symmetric pattern where the interior vertex is dominated by its
// neighbours.
func TestDomiRank_Path5Defaults(t *testing.T) {
	g := pathGraph(t, 5)

	res, err := domirank.DomiRank(g)
	require.NoError(t, err)
	require.Equal(t, domirank.Converged, res.Converged)
	require.Len(t, res.Scores, 5)
	assert.Empty(t, res.Warnings)

	// λmin of a 5-path is −√3, so σ ≈ 0.95/√3.
	assert.InDelta(t, 0.5485, res.Sigma, 0.02)

	assert.InDelta(t, -0.54, res.Scores["0"], 0.02)
	assert.InDelta(t, 1.98, res.Scores["1"], 0.02)
	assert.InDelta(t, -1.08, res.Scores["2"], 0.02)

	// Symmetry of the topology must survive the arithmetic.
	assert.InDelta(t, res.Scores["0"], res.Scores["4"], 1e-6)
	assert.InDelta(t, res.Scores["1"], res.Scores["3"], 1e-6)

	// The interior vertex is dominated by both neighbours.
	assert.Less(t, res.Scores["2"], res.Scores["1"])
	assert.Less(t, res.Scores["2"], res.Scores["3"])
}

func TestDomiRank_Deterministic(t *testing.T) {
	g := pathGraph(t, 5)

	first, err := domirank.DomiRank(g)
	require.NoError(t, err)
	second, err := domirank.DomiRank(g)
	require.NoError(t, err)

	assert.Equal(t, first.Scores, second.Scores)
	assert.Equal(t, first.Sigma, second.Sigma)
	assert.Equal(t, first.Converged, second.Converged)
}

// Zero competition decays the uniform start toward zero and must report
// convergence, never divergence.
func TestDomiRank_ZeroSigmaConverges(t *testing.T) {
	g := pathGraph(t, 5)

	res, err := domirank.DomiRank(g, domirank.WithSigma(0))
	require.NoError(t, err)
	assert.Equal(t, domirank.Converged, res.Converged)
	assert.Equal(t, 0.0, res.Sigma)
	for id, score := range res.Scores {
		assert.InDelta(t, 0, score, 1e-3, "vertex %s should decay toward zero", id)
	}
}

func TestDomiRank_Analytical(t *testing.T) {
	g := pathGraph(t, 5)

	res, err := domirank.DomiRank(g, domirank.WithAnalytical())
	require.NoError(t, err)
	assert.Equal(t, domirank.NotApplicable, res.Converged)
	assert.Empty(t, res.Warnings)

	assert.InDelta(t, -0.55, res.Scores["0"], 0.02)
	assert.InDelta(t, 1.99, res.Scores["1"], 0.02)
	assert.InDelta(t, -1.09, res.Scores["2"], 0.02)
	assert.InDelta(t, res.Scores["0"], res.Scores["4"], 1e-9)
	assert.InDelta(t, res.Scores["1"], res.Scores["3"], 1e-9)
}

// Both execution modes approximate the same fixed point.
func TestDomiRank_AnalyticalMatchesIterative(t *testing.T) {
	g := pathGraph(t, 5)

	iter, err := domirank.DomiRank(g)
	require.NoError(t, err)
	anal, err := domirank.DomiRank(g, domirank.WithAnalytical())
	require.NoError(t, err)

	for id, want := range anal.Scores {
		assert.InDelta(t, want, iter.Scores[id], 2e-2, "vertex %s", id)
	}
}

func TestDomiRank_SuperchargedAnalyticalWarns(t *testing.T) {
	g := pathGraph(t, 5)

	res, err := domirank.DomiRank(g, domirank.WithAnalytical(), domirank.WithSigma(1.5))
	require.NoError(t, err)
	assert.Contains(t, res.Warnings, domirank.WarnSuperchargedSigma)
	assert.Equal(t, domirank.NotApplicable, res.Converged)
}

// Every vertex appears in the score map, including ones no edge touches.
func TestDomiRank_IsolatedVertexScored(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("island"))

	res, err := domirank.DomiRank(g)
	require.NoError(t, err)
	require.Len(t, res.Scores, 3)
	assert.Contains(t, res.Scores, "island")
}

func TestConvergence_String(t *testing.T) {
	assert.Equal(t, "converged", domirank.Converged.String())
	assert.Equal(t, "diverged", domirank.Diverged.String())
	assert.Equal(t, "not applicable", domirank.NotApplicable.String())
}
