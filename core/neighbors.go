package core

// Seq is a lazy, finite sequence of (index, node) pairs, produced on
// demand. A Seq is single-use: once exhausted it stays exhausted, and
// each producer call constructs a fresh one.
type Seq[N any] interface {
	// Next returns the next (index, node) pair, or ok=false when the
	// sequence is exhausted.
	Next() (idx int, node N, ok bool)
}

// neighborSeq walks one matrix row in ascending column order, skipping
// absent cells. It aliases the live row: mutating the graph while a
// sequence is outstanding is a caller contract violation (see package doc).
type neighborSeq[N comparable, W any] struct {
	nodes *NodeSet[N]
	row   []cell[W]
	col   int
}

// Next scans forward to the next present cell.
// Complexity: O(1) amortized over a full drain, O(n) worst case per call.
func (it *neighborSeq[N, W]) Next() (int, N, bool) {
	for it.col < len(it.row) {
		col := it.col
		it.col++
		if !it.row[col].present {
			continue
		}
		node, ok := it.nodes.At(col)
		if !ok {
			// Column without a registered node: a broken square-matrix
			// invariant, unreachable through the public API.
			panic("core: adjacency matrix column without a node")
		}

		return col, node, true
	}
	var zero N

	return 0, zero, false
}

// Neighbors returns a lazy sequence of every (j, node_j) such that the
// directed edge idx→j is present, in ascending column order. Each call
// constructs a fresh sequence; sequences are not restartable.
// Returns ErrIndexOutOfBounds if idx is invalid.
// Complexity: O(1) to construct, O(n) to drain.
func (g *Graph[N, W]) Neighbors(idx int) (Seq[N], error) {
	if !g.inRange(idx) {
		return nil, ErrIndexOutOfBounds
	}

	return &neighborSeq[N, W]{nodes: g.nodes, row: g.matrix[idx]}, nil
}
