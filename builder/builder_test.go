package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/builder"
	"github.com/katalvlaran/metro/graph"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []graph.Pair{
		{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 1}, {U: 2, V: 3, Weight: 1},
	}, g.Edges())
}

func TestCycleAndStar(t *testing.T) {
	g, err := builder.BuildGraph(5, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2))},
		builder.Cycle(4), builder.Star(5))
	require.NoError(t, err)
	assert.Equal(t, 4+4, g.EdgeCount())

	d0, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 2+4, d0)
	for _, e := range g.Edges() {
		assert.Equal(t, 2.0, e.Weight)
	}
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.Complete(5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(6, nil, builder.Grid(2, 3))
	require.NoError(t, err)
	// 2 rows × 2 horizontal + 3 vertical
	assert.Equal(t, 7, g.EdgeCount())

	a, err := g.Adjacent(builder.GridIndex(3, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{To: 1, Weight: 1}, {To: 3, Weight: 1}}, a)
}

func TestValidation(t *testing.T) {
	_, err := builder.BuildGraph(3, nil, builder.Path(4))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(3, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(4, nil, builder.Grid(0, 4))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(4, nil, builder.Grid(math.MaxInt/2+1, 2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(4, nil, builder.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(4, nil, builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(4, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(-1, nil)
	assert.ErrorIs(t, err, graph.ErrInvalidSize)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *graph.Graph {
		g, err := builder.BuildGraph(30,
			[]builder.BuilderOption{builder.WithSeed(99), builder.WithWeightFn(builder.IntegerWeightFn(1, 5))},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		assert.Less(t, e.U, e.V)
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 5.0)
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.BuildGraph(6, nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())

	g, err = builder.BuildGraph(6, nil, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestWeightFnPanics(t *testing.T) {
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 1) })
	assert.Panics(t, func() { builder.IntegerWeightFn(-1, 2) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })

	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 4)(nil))
}
