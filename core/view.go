package core

// AdjacencyView is a read-only window over a Graph's node registry and
// edge matrix, exposed by reference for consumers like the TGF codec.
//
// A view is stamped with the graph version at creation. Any subsequent
// mutation of the graph (node or edge, add or remove) invalidates the
// view: Valid reports false and Err returns ErrStaleView. The accessors
// keep answering from the live graph either way; the stamp is the
// advisory contract, not a snapshot.
type AdjacencyView[N comparable, W any] struct {
	g       *Graph[N, W]
	version uint64
}

// AdjacencyMatrix returns a read-only view over the current registry and
// matrix. The view's validity is tied to the graph's state: it must not
// outlive a subsequent mutation.
// Complexity: O(1).
func (g *Graph[N, W]) AdjacencyMatrix() *AdjacencyView[N, W] {
	return &AdjacencyView[N, W]{g: g, version: g.version}
}

// Valid reports whether the graph is unchanged since the view was taken.
func (v *AdjacencyView[N, W]) Valid() bool { return v.version == v.g.version }

// Err returns ErrStaleView once the graph has mutated, nil otherwise.
func (v *AdjacencyView[N, W]) Err() error {
	if !v.Valid() {
		return ErrStaleView
	}

	return nil
}

// NodeCount returns the matrix dimension.
func (v *AdjacencyView[N, W]) NodeCount() int { return v.g.NodeCount() }

// Node returns the node value at idx, comma-ok on out-of-range.
func (v *AdjacencyView[N, W]) Node(idx int) (N, bool) { return v.g.NodeByIndex(idx) }

// Weight returns the weight of the directed edge from→to, comma-ok on
// out-of-range or absent edge.
func (v *AdjacencyView[N, W]) Weight(from, to int) (W, bool) { return v.g.EdgeByIndex(from, to) }
