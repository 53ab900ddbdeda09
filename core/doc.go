// Package core implements the graph container itself: a dense node
// registry (NodeSet), a square adjacency matrix of optional weights, and
// the public Graph engine built on top of them.
//
// What:
//
//   - Graph[N, W] stores nodes of any comparable type N and directed edges
//     weighted by any type W; cell [i][j] of the matrix holds the weight of
//     the edge i→j, or nothing.
//   - NodeSet[N] keeps the value↔index bijection: insertion-ordered, unique
//     by value, O(1) lookups both ways.
//   - Neighbors(idx) yields a lazy (index, node) sequence over one row of
//     the matrix, ascending by column.
//   - AdjacencyMatrix() hands out a read-only AdjacencyView stamped with
//     the graph's version; any later mutation marks the view stale.
//
// Invariants (held after every public operation):
//
//   - The matrix is square and its dimension equals NodeCount().
//   - Every index in [0, NodeCount()) maps to exactly one node value and
//     vice versa; no duplicate values exist.
//
// Removal policy:
//
//	RemoveNode / RemoveNodeAt use swap-with-last: the last node moves into
//	the freed index (its edges move with it), the matrix shrinks by one row
//	and one column, and every edge of the removed node disappears. Indices
//	below the freed slot are untouched; the former last index ceases to
//	exist. Retained indices must be treated as invalidated unless known not
//	to reference the former last node.
//
// Complexity:
//
//   - AddEdge / RemoveEdge / lookups: O(1).
//   - AddNode / RemoveNode: O(n), n = node count (the matrix gains or
//     loses a row and a column).
//
// Concurrency:
//
//	Graph is not synchronized. Share it across goroutines for reads only;
//	concurrent mutation must be serialized by the caller.
//
// Errors:
//
//   - ErrIndexOutOfBounds: an index argument ≥ current node count.
//   - ErrNodeNotFound: removal of a value absent from the graph.
//   - ErrStaleView: an AdjacencyView used after a mutation.
package core
