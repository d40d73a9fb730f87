package connectivity

import (
	"fmt"

	"github.com/avlasov/densegraph/core"
)

// IsComplete reports whether every ordered pair of distinct vertices is
// adjacent. Self-loops (the diagonal) are ignored. Vacuously true for
// graphs with 0 or 1 vertices.
//
// Complexity: O(V²).
func IsComplete(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	n := g.VertexCount()
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			adj, err := g.IsAdjacent(u, v)
			if err != nil {
				return false, fmt.Errorf("connectivity: IsAdjacent(%d,%d): %w", u, v, err)
			}
			if !adj {
				return false, nil
			}
		}
	}

	return true, nil
}
