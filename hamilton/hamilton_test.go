package hamilton_test

import (
	"testing"

	"github.com/avlasov/densegraph/core"
	"github.com/avlasov/densegraph/hamilton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCompleteDirected returns a complete directed graph on n vertices.
func buildCompleteDirected(t testing.TB, n int) *core.Graph {
	t.Helper()
	g, err := core.NewWithVertices(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v {
				require.NoError(t, g.AddEdge(u, v))
			}
		}
	}

	return g
}

func TestFindCycles_NilGraph(t *testing.T) {
	_, err := hamilton.FindCycles(nil)
	assert.ErrorIs(t, err, hamilton.ErrGraphNil)
}

func TestFindCycles_SingleVertex(t *testing.T) {
	g, err := core.NewWithVertices(1)
	require.NoError(t, err)

	// No self-loop: no cycles.
	cycles, err := hamilton.FindCycles(g)
	require.NoError(t, err)
	assert.Empty(t, cycles)

	// Self-loop: exactly the trivial cycle [0,0].
	require.NoError(t, g.AddEdge(0, 0))
	cycles, err = hamilton.FindCycles(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}}, cycles)
}

// TestFindCycles_DirectedRing verifies the canonical 4-cycle scenario:
// one geometric cycle, reported once per start vertex.
func TestFindCycles_DirectedRing(t *testing.T) {
	g, err := core.NewWithVertices(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	cycles, err := hamilton.FindCycles(g)
	require.NoError(t, err)

	// Four rotations of the same ring, ascending start vertices.
	assert.Equal(t, [][]int{
		{0, 1, 2, 3, 0},
		{1, 2, 3, 0, 1},
		{2, 3, 0, 1, 2},
		{3, 0, 1, 2, 3},
	}, cycles)

	has, err := hamilton.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, has)
}

// TestFindCycles_CompleteGraph checks the count on K4: (V-1)! simple
// directed Hamiltonian cycles per start vertex, V·(V-1)! in total.
func TestFindCycles_CompleteGraph(t *testing.T) {
	cycles, err := hamilton.FindCycles(buildCompleteDirected(t, 4))
	require.NoError(t, err)
	assert.Len(t, cycles, 24)
}

// TestFindCycles_Shape asserts the structural invariant of every result:
// length V+1, closed, and each vertex exactly once among the first V.
func TestFindCycles_Shape(t *testing.T) {
	g := buildCompleteDirected(t, 5)
	cycles, err := hamilton.FindCycles(g)
	require.NoError(t, err)
	require.NotEmpty(t, cycles)

	n := g.VertexCount()
	for _, cycle := range cycles {
		require.Len(t, cycle, n+1)
		assert.Equal(t, cycle[0], cycle[n])

		seen := make(map[int]int, n)
		for _, v := range cycle[:n] {
			seen[v]++
		}
		for v := 0; v < n; v++ {
			assert.Equalf(t, 1, seen[v], "vertex %d in cycle %v", v, cycle)
		}
	}
}

func TestFindCycles_FastRejection(t *testing.T) {
	// Disconnected: ring {0,1,2} plus isolated 3.
	g, err := core.NewWithVertices(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))

	cycles, err := hamilton.FindCycles(g)
	require.NoError(t, err)
	assert.Empty(t, cycles)

	// Acyclic: the one-way chain cannot close.
	chain, err := core.NewWithVertices(3)
	require.NoError(t, err)
	require.NoError(t, chain.AddEdge(0, 1))
	require.NoError(t, chain.AddEdge(1, 2))

	cycles, err = hamilton.FindCycles(chain)
	require.NoError(t, err)
	assert.Empty(t, cycles)

	has, err := hamilton.HasCycle(chain)
	require.NoError(t, err)
	assert.False(t, has)
}

// TestFindCycles_UndirectedSquare covers the doubled-edge convention:
// each geometric cycle shows up in both directions from every start.
func TestFindCycles_UndirectedSquare(t *testing.T) {
	g, err := core.NewWithVertices(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.AddUndirectedEdge(e[0], e[1], 1))
	}

	cycles, err := hamilton.FindCycles(g)
	require.NoError(t, err)
	// 4 starts × 2 directions of the single geometric square.
	assert.Len(t, cycles, 8)
	assert.Contains(t, cycles, []int{0, 1, 2, 3, 0})
	assert.Contains(t, cycles, []int{0, 3, 2, 1, 0})
}

func BenchmarkFindCycles_K7(b *testing.B) {
	g := buildCompleteDirected(b, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hamilton.FindCycles(g); err != nil {
			b.Fatal(err)
		}
	}
}
