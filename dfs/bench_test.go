package dfs_test

import (
	"testing"

	"github.com/avlasov/densegraph/core"
	"github.com/avlasov/densegraph/dfs"
)

func BenchmarkDFS_Dense256(b *testing.B) {
	const n = 256
	g, err := core.NewWithVertices(n)
	if err != nil {
		b.Fatal(err)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if err := g.AddEdge(u, v); err != nil {
				b.Fatal(err)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.DFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
