package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasov/densegraph/core"
	"github.com/avlasov/densegraph/tsp"
)

// buildComplete returns a weighted complete graph on n vertices whose
// directed u→v weight is w(u, v).
func buildComplete(t testing.TB, n int, w func(u, v int) int64) *core.Graph {
	t.Helper()
	g, err := core.NewWithVertices(n, core.WithWeighted())
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			require.NoError(t, g.AddWeightedEdge(u, v, w(u, v)))
		}
	}
	return g
}

func TestSolve_Validation(t *testing.T) {
	t.Run("NilGraph", func(t *testing.T) {
		_, err := tsp.Solve(nil)
		assert.ErrorIs(t, err, tsp.ErrGraphNil)
	})

	t.Run("TooFewVertices", func(t *testing.T) {
		g, err := core.NewWithVertices(1, core.WithWeighted())
		require.NoError(t, err)
		_, err = tsp.Solve(g)
		assert.ErrorIs(t, err, tsp.ErrTooFewVertices)
	})

	t.Run("IncompleteGraph", func(t *testing.T) {
		g := buildComplete(t, 4, func(u, v int) int64 { return 1 })
		require.NoError(t, g.RemoveEdge(1, 3))
		_, err := tsp.Solve(g)
		assert.ErrorIs(t, err, tsp.ErrIncompleteGraph)
	})
}

// TestSolve_KnownTour checks the canonical four-city instance: the
// perimeter 0-1-2-3 costs 70 and beats both diagonals.
func TestSolve_KnownTour(t *testing.T) {
	weights := map[[2]int]int64{
		{0, 1}: 10, {1, 2}: 15, {2, 3}: 20,
		{3, 0}: 25, {0, 2}: 35, {1, 3}: 30,
	}
	g := buildComplete(t, 4, func(u, v int) int64 {
		if w, ok := weights[[2]int{u, v}]; ok {
			return w
		}
		return weights[[2]int{v, u}]
	})

	res, err := tsp.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, int64(70), res.Cost)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
}

func TestSolve_TwoVertices(t *testing.T) {
	g, err := core.NewWithVertices(2, core.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddWeightedEdge(0, 1, 7))
	require.NoError(t, g.AddWeightedEdge(1, 0, 9))

	res, err := tsp.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, res.Tour)
	assert.Equal(t, int64(16), res.Cost)
}

// TestSolve_DirectedWeights verifies that asymmetric u→v / v→u weights
// are honoured; reversing the cheap orientation costs five times more.
func TestSolve_DirectedWeights(t *testing.T) {
	cheap := map[[2]int]bool{{0, 1}: true, {1, 2}: true, {2, 0}: true}
	g := buildComplete(t, 3, func(u, v int) int64 {
		if cheap[[2]int{u, v}] {
			return 1
		}
		return 5
	})

	res, err := tsp.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0}, res.Tour)
	assert.Equal(t, int64(3), res.Cost)
}

// TestSolve_TieBreak pins the deterministic tie rule: with all weights
// equal every tour costs the same, so the lexicographically first
// permutation must win.
func TestSolve_TieBreak(t *testing.T) {
	const n = 5
	g := buildComplete(t, n, func(u, v int) int64 { return 3 })

	res, err := tsp.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 0}, res.Tour)
	assert.Equal(t, int64(3*n), res.Cost)
}

// TestSolve_UnweightedComplete: without weights every edge costs one, so
// any tour is optimal and costs V.
func TestSolve_UnweightedComplete(t *testing.T) {
	g, err := core.NewWithVertices(4)
	require.NoError(t, err)
	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			if u != v {
				require.NoError(t, g.AddEdge(u, v))
			}
		}
	}

	res, err := tsp.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
}

func BenchmarkSolve_K8(b *testing.B) {
	g := buildComplete(b, 8, func(u, v int) int64 {
		return int64(1 + (u*7+v*3)%13)
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}
