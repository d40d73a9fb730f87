package mst

import "errors"

// ErrInvalidGraph indicates that MST computation requires a non-nil,
// weighted graph.
var ErrInvalidGraph = errors.New("mst: requires a weighted graph")

// ErrDisconnected indicates that the graph is not connected, so no
// spanning tree covering all vertices exists.
var ErrDisconnected = errors.New("mst: graph is disconnected")
