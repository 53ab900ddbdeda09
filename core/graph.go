package core

// cell is one adjacency-matrix slot: an optional edge weight.
type cell[W any] struct {
	weight  W
	present bool
}

// Edge is an input triple for FromEdges: a directed edge From→To with a weight.
type Edge[N comparable, W any] struct {
	From   N
	To     N
	Weight W
}

// Graph is the in-memory graph engine: a NodeSet registry paired with a
// square adjacency matrix. matrix[i][j] holds the weight of the directed
// edge i→j; absence means "no edge". Self-loops are permitted.
//
// The zero-size matrix invariant: len(matrix) == nodes.Len() at all times,
// and every row has that same length.
type Graph[N comparable, W any] struct {
	nodes     *NodeSet[N]
	matrix    [][]cell[W]
	edgeCount int

	// version stamps AdjacencyViews; every successful mutation bumps it.
	version uint64
}

// New creates an empty Graph: zero nodes, zero edges.
// Complexity: O(1).
func New[N comparable, W any]() *Graph[N, W] {
	return &Graph[N, W]{nodes: NewNodeSet[N]()}
}

// FromEdges builds a Graph from edge triples. Endpoint values are inserted
// idempotently in slice order; a later triple with the same (From, To)
// pair overwrites the earlier weight.
// Complexity: O(k·n) for k triples over the resulting n nodes.
func FromEdges[N comparable, W any](edges []Edge[N, W]) *Graph[N, W] {
	g := New[N, W]()
	for _, e := range edges {
		from := g.AddNode(e.From)
		to := g.AddNode(e.To)
		_, _, _ = g.AddEdge(from, to, e.Weight) // indices valid by construction
	}

	return g
}

// AddNode inserts v and returns its index. Inserting a value already
// present returns its existing index and leaves the graph unchanged.
// On a brand-new value the matrix grows by one all-absent row and column.
// Complexity: O(n).
func (g *Graph[N, W]) AddNode(v N) int {
	if idx, ok := g.nodes.IndexOf(v); ok {
		return idx
	}
	idx := g.nodes.Add(v)
	g.version++

	// Keep the matrix square: one new column on every row, one new row.
	for i := range g.matrix {
		g.matrix[i] = append(g.matrix[i], cell[W]{})
	}
	g.matrix = append(g.matrix, make([]cell[W], len(g.matrix)+1))

	return idx
}

// AddEdge writes the weight of the directed edge from→to, overwriting any
// existing weight, so "add" doubles as "update". The previous weight is
// returned with replaced=true when the cell was already occupied.
// Returns ErrIndexOutOfBounds if either index is invalid.
// Complexity: O(1).
func (g *Graph[N, W]) AddEdge(from, to int, weight W) (prev W, replaced bool, err error) {
	if !g.inRange(from) || !g.inRange(to) {
		return prev, false, ErrIndexOutOfBounds
	}
	g.version++

	old := g.matrix[from][to]
	g.matrix[from][to] = cell[W]{weight: weight, present: true}
	if !old.present {
		g.edgeCount++
		return prev, false, nil
	}

	return old.weight, true, nil
}

// RemoveEdge clears the cell of the directed edge from→to and returns the
// weight that was present. Clearing an already-absent cell is not an
// error: removed is simply false.
// Returns ErrIndexOutOfBounds if either index is invalid.
// Complexity: O(1).
func (g *Graph[N, W]) RemoveEdge(from, to int) (prev W, removed bool, err error) {
	if !g.inRange(from) || !g.inRange(to) {
		return prev, false, ErrIndexOutOfBounds
	}
	old := g.matrix[from][to]
	if !old.present {
		return prev, false, nil
	}
	g.version++
	g.matrix[from][to] = cell[W]{}
	g.edgeCount--

	return old.weight, true, nil
}

// RemoveNode removes the node with value v, along with every edge incident
// to it, and returns the removed value.
// Returns ErrNodeNotFound if v is absent.
// Complexity: O(n).
func (g *Graph[N, W]) RemoveNode(v N) (N, error) {
	idx, ok := g.nodes.IndexOf(v)
	if !ok {
		var zero N
		return zero, ErrNodeNotFound
	}

	return g.RemoveNodeAt(idx)
}

// RemoveNodeAt removes the node at idx, along with every edge incident to
// it, and returns the removed value.
//
// Swap-with-last: the node formerly at the last index takes over idx and
// every edge it participated in moves with it; the matrix shrinks by one
// row and one column. See the package documentation for the index
// invalidation contract.
// Returns ErrIndexOutOfBounds if idx is invalid.
// Complexity: O(n).
func (g *Graph[N, W]) RemoveNodeAt(idx int) (N, error) {
	if !g.inRange(idx) {
		var zero N
		return zero, ErrIndexOutOfBounds
	}
	g.version++

	n := len(g.matrix)
	last := n - 1

	// Discard edges incident to idx from the edge count; the diagonal cell
	// belongs to both the row and the column, so count it once.
	for j := 0; j < n; j++ {
		if g.matrix[idx][j].present {
			g.edgeCount--
		}
	}
	for i := 0; i < n; i++ {
		if i != idx && g.matrix[i][idx].present {
			g.edgeCount--
		}
	}

	// Move the last row and column into the freed slot, then truncate.
	// After both swaps every cell of the removed node sits in the last
	// row/column and falls off with the truncation.
	g.matrix[idx], g.matrix[last] = g.matrix[last], g.matrix[idx]
	for i := 0; i < n; i++ {
		g.matrix[i][idx], g.matrix[i][last] = g.matrix[i][last], g.matrix[i][idx]
	}
	g.matrix = g.matrix[:last]
	for i := range g.matrix {
		g.matrix[i] = g.matrix[i][:last]
	}

	removed, ok := g.nodes.Remove(idx)
	if !ok {
		// Registry and matrix disagree on dimension: a broken invariant,
		// unreachable through the public API.
		panic("core: node registry out of sync with adjacency matrix")
	}

	return removed, nil
}

// NodeByIndex returns the node value at idx. Pure lookup: no mutation,
// comma-ok on out-of-range.
// Complexity: O(1).
func (g *Graph[N, W]) NodeByIndex(idx int) (N, bool) {
	return g.nodes.At(idx)
}

// EdgeByIndex returns the weight of the directed edge from→to. Pure
// lookup: no mutation, comma-ok on out-of-range or absent edge.
// Complexity: O(1).
func (g *Graph[N, W]) EdgeByIndex(from, to int) (W, bool) {
	var zero W
	if !g.inRange(from) || !g.inRange(to) {
		return zero, false
	}
	c := g.matrix[from][to]
	if !c.present {
		return zero, false
	}

	return c.weight, true
}

// IndexOf returns the current index of the node with value v.
// Complexity: O(1).
func (g *Graph[N, W]) IndexOf(v N) (int, bool) {
	return g.nodes.IndexOf(v)
}

// ContainsNode reports whether v is registered.
// Complexity: O(1).
func (g *Graph[N, W]) ContainsNode(v N) bool {
	_, ok := g.nodes.IndexOf(v)
	return ok
}

// ContainsEdge reports whether the directed edge from→to is present.
// Complexity: O(1).
func (g *Graph[N, W]) ContainsEdge(from, to int) bool {
	_, ok := g.EdgeByIndex(from, to)
	return ok
}

// NodeCount returns the number of nodes (the matrix dimension).
// Complexity: O(1).
func (g *Graph[N, W]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of present edges.
// Complexity: O(1).
func (g *Graph[N, W]) EdgeCount() int { return g.edgeCount }

// Nodes returns a fresh snapshot of all node values in index order.
// Complexity: O(n).
func (g *Graph[N, W]) Nodes() []N { return g.nodes.Values() }

// inRange reports whether idx addresses a current node.
func (g *Graph[N, W]) inRange(idx int) bool {
	return idx >= 0 && idx < g.nodes.Len()
}
