package core

import "errors"

// Sentinel errors for core graph operations.
// All are returned, never panicked, and match via errors.Is.
var (
	// ErrIndexOutOfBounds indicates an index argument ≥ current node count
	// (or negative). Returned by every entry point taking raw indices.
	ErrIndexOutOfBounds = errors.New("core: node index out of bounds")

	// ErrNodeNotFound indicates a removal targeted a value absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrStaleView indicates an AdjacencyView was used after a structural
	// mutation of its graph invalidated it.
	ErrStaleView = errors.New("core: adjacency view invalidated by mutation")
)
