// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domirank/core"
	"github.com/katalvlaran/domirank/matrix"
)

func TestNewCSR_RejectsBadShape(t *testing.T) {
	_, err := matrix.NewCSR(0, 3, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewCSR(3, -1, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewCSR(2, 2, []matrix.Entry{{Row: 2, Col: 0, Val: 1}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewCSR(2, 2, []matrix.Entry{{Row: 0, Col: -1, Val: 1}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNewCSR_SortsAndAccumulates(t *testing.T) {
	// Unsorted input with a duplicate at (1, 0).
	m, err := matrix.NewCSR(3, 3, []matrix.Entry{
		{Row: 2, Col: 1, Val: 5},
		{Row: 0, Col: 2, Val: 3},
		{Row: 1, Col: 0, Val: 1},
		{Row: 0, Col: 0, Val: 2},
		{Row: 1, Col: 0, Val: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 4, m.NNZ(), "duplicates must collapse into one slot")

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v, "duplicate coordinates accumulate")

	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "absent coordinate reads as zero")

	cols, vals, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, cols, "columns sorted within a row")
	assert.Equal(t, []float64{2, 3}, vals)
}

func TestCSR_IndexBounds(t *testing.T) {
	m, err := matrix.NewCSR(2, 2, nil)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, _, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMulVec(t *testing.T) {
	// [1 2; 0 3] · [4, 5] = [14, 15]
	m, err := matrix.NewCSR(2, 2, []matrix.Entry{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 1, Val: 2},
		{Row: 1, Col: 1, Val: 3},
	})
	require.NoError(t, err)

	y, err := matrix.MulVec(m, []float64{4, 5})
	require.NoError(t, err)
	assert.Equal(t, []float64{14, 15}, y)

	_, err = matrix.MulVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulVec(nil, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale_FreshCopy(t *testing.T) {
	m, err := matrix.NewCSR(1, 2, []matrix.Entry{{Row: 0, Col: 1, Val: 3}})
	require.NoError(t, err)

	s, err := matrix.Scale(m, -2)
	require.NoError(t, err)

	got, err := s.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, -6.0, got)

	orig, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, orig, "input must stay untouched")

	_, err = matrix.Scale(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdd(t *testing.T) {
	a, err := matrix.NewCSR(2, 2, []matrix.Entry{
		{Row: 0, Col: 0, Val: 1},
		{Row: 1, Col: 1, Val: 2},
	})
	require.NoError(t, err)
	b, err := matrix.NewCSR(2, 2, []matrix.Entry{
		{Row: 0, Col: 1, Val: 4},
		{Row: 1, Col: 1, Val: 8},
	})
	require.NoError(t, err)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.NNZ())

	v, err := sum.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v, "coinciding coordinates sum")
	v, err = sum.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	wide, err := matrix.NewCSR(2, 3, nil)
	require.NoError(t, err)
	_, err = matrix.Add(a, wide)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	assert.Equal(t, 3, id.NNZ())

	x := []float64{7, -1, 2.5}
	y, err := matrix.MulVec(id, x)
	require.NoError(t, err)
	assert.Equal(t, x, y)

	_, err = matrix.Identity(0)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestRowSums(t *testing.T) {
	m, err := matrix.NewCSR(2, 3, []matrix.Entry{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 2, Val: 2},
		{Row: 1, Col: 1, Val: -7},
	})
	require.NoError(t, err)

	sums, err := matrix.RowSums(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -7}, sums)

	max, err := matrix.MaxAbsRowSum(m)
	require.NoError(t, err)
	assert.Equal(t, 7.0, max, "absolute value of the most negative row sum wins")
}

func TestSolveVec(t *testing.T) {
	// [2 1; 1 3] · x = [5, 10] → x = [1, 3]
	a, err := matrix.NewCSR(2, 2, []matrix.Entry{
		{Row: 0, Col: 0, Val: 2},
		{Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 0, Val: 1},
		{Row: 1, Col: 1, Val: 3},
	})
	require.NoError(t, err)

	x, err := matrix.SolveVec(a, []float64{5, 10})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], 1e-12)
	assert.InDelta(t, 3.0, x[1], 1e-12)
}

func TestSolveVec_Rejections(t *testing.T) {
	_, err := matrix.SolveVec(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewCSR(2, 3, nil)
	require.NoError(t, err)
	_, err = matrix.SolveVec(rect, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	sq, err := matrix.Identity(2)
	require.NoError(t, err)
	_, err = matrix.SolveVec(sq, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Zero first pivot with no pivoting → singular.
	sing, err := matrix.NewCSR(2, 2, []matrix.Entry{{Row: 0, Col: 1, Val: 1}, {Row: 1, Col: 0, Val: 1}})
	require.NoError(t, err)
	_, err = matrix.SolveVec(sing, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestNewAdjacency_Rejections(t *testing.T) {
	_, err := matrix.NewAdjacency(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)

	multi := core.NewGraph(core.WithMultiEdges())
	_, err = matrix.NewAdjacency(multi)
	assert.ErrorIs(t, err, matrix.ErrMultiEdge)
}

func TestNewAdjacency_UndirectedMirrorsEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("b", "a", 0)
	require.NoError(t, err)

	adj, err := matrix.NewAdjacency(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, adj.IDs(), "lexicographic ordering")
	assert.Equal(t, 2, adj.Mat.NNZ())

	ab, err := adj.Mat.At(adj.VertexIndex["a"], adj.VertexIndex["b"])
	require.NoError(t, err)
	ba, err := adj.Mat.At(adj.VertexIndex["b"], adj.VertexIndex["a"])
	require.NoError(t, err)
	assert.Equal(t, 1.0, ab, "unweighted graphs store unit weights")
	assert.Equal(t, 1.0, ba, "undirected edges mirror")
}

func TestNewAdjacency_DirectedWeighted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("u", "v", 2.5)
	require.NoError(t, err)

	adj, err := matrix.NewAdjacency(g)
	require.NoError(t, err)
	assert.Equal(t, 1, adj.Mat.NNZ(), "directed edge stored once")

	uv, err := adj.Mat.At(adj.VertexIndex["u"], adj.VertexIndex["v"])
	require.NoError(t, err)
	assert.Equal(t, 2.5, uv)
}

func TestAdjacency_IDsIsACopy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("x", "y", 0)
	require.NoError(t, err)

	adj, err := matrix.NewAdjacency(g)
	require.NoError(t, err)

	ids := adj.IDs()
	ids[0] = "mutated"
	assert.Equal(t, []string{"x", "y"}, adj.IDs())
}
