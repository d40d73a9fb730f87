package connectivity

import "errors"

// Sentinel errors for structural analysis.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrCycleDetected is returned by TopologicalOrder when the graph
	// contains a cycle and no complete ordering exists.
	ErrCycleDetected = errors.New("connectivity: cycle detected")
)
