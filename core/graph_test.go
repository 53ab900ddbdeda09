package core_test

import (
	"testing"

	"github.com/katalvlaran/matrixgraph/core"
	"github.com/stretchr/testify/require"
)

// drain collects a lazy neighbor sequence into index and value slices.
func drain(seq core.Seq[int]) (indices []int, nodes []int) {
	for {
		idx, node, ok := seq.Next()
		if !ok {
			return indices, nodes
		}
		indices = append(indices, idx)
		nodes = append(nodes, node)
	}
}

func TestGraph_NewIsEmpty(t *testing.T) {
	g := core.New[int, int]()
	require.Equal(t, 0, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
}

func TestGraph_FromEdges(t *testing.T) {
	g := core.FromEdges([]core.Edge[int, int]{
		{From: 1, To: 2, Weight: 3},
		{From: 3, To: 4, Weight: 7},
		{From: 1, To: 3, Weight: 4},
	})
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 3, g.EdgeCount())
	require.ElementsMatch(t, []int{1, 2, 3, 4}, g.Nodes())

	for _, e := range []struct{ from, to, weight int }{
		{1, 2, 3}, {3, 4, 7}, {1, 3, 4},
	} {
		from, ok := g.IndexOf(e.from)
		require.True(t, ok)
		to, ok := g.IndexOf(e.to)
		require.True(t, ok)
		w, ok := g.EdgeByIndex(from, to)
		require.True(t, ok)
		require.Equal(t, e.weight, w)
	}
}

func TestGraph_FromEdgesLaterTriplesOverwrite(t *testing.T) {
	g := core.FromEdges([]core.Edge[string, int]{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "B", Weight: 9},
	})
	require.Equal(t, 1, g.EdgeCount())

	a, _ := g.IndexOf("A")
	b, _ := g.IndexOf("B")
	w, ok := g.EdgeByIndex(a, b)
	require.True(t, ok)
	require.Equal(t, 9, w)
}

func TestGraph_AddNodeIsIdempotent(t *testing.T) {
	g := core.New[int, struct{}]()
	first := g.AddNode(34)
	again := g.AddNode(34)
	require.Equal(t, first, again)
	require.Equal(t, 1, g.NodeCount())
}

func TestGraph_AddEdgeOverwrites(t *testing.T) {
	g := core.New[int, string]()
	a := g.AddNode(1)
	b := g.AddNode(2)

	prev, replaced, err := g.AddEdge(a, b, "x")
	require.NoError(t, err)
	require.False(t, replaced)
	require.Empty(t, prev)
	require.Equal(t, 1, g.EdgeCount())

	prev, replaced, err = g.AddEdge(a, b, "y")
	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, "x", prev)
	require.Equal(t, 1, g.EdgeCount())

	w, ok := g.EdgeByIndex(a, b)
	require.True(t, ok)
	require.Equal(t, "y", w)
}

func TestGraph_AddEdgeOutOfBounds(t *testing.T) {
	g := core.New[int, int]()
	g.AddNode(1)
	_, _, err := g.AddEdge(0, 1, 5)
	require.ErrorIs(t, err, core.ErrIndexOutOfBounds)
	_, _, err = g.AddEdge(1, 0, 5)
	require.ErrorIs(t, err, core.ErrIndexOutOfBounds)
	_, _, err = g.AddEdge(-1, 0, 5)
	require.ErrorIs(t, err, core.ErrIndexOutOfBounds)
}

func TestGraph_EdgesAreAsymmetric(t *testing.T) {
	g := core.New[int, int]()
	a := g.AddNode(5)
	b := g.AddNode(7)
	_, _, err := g.AddEdge(a, b, 1)
	require.NoError(t, err)

	_, ok := g.EdgeByIndex(b, a)
	require.False(t, ok)

	// The opposite direction is its own edge.
	_, _, err = g.AddEdge(b, a, 2)
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
}

func TestGraph_SelfLoop(t *testing.T) {
	g := core.New[string, int]()
	a := g.AddNode("A")
	_, _, err := g.AddEdge(a, a, 11)
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())

	w, ok := g.EdgeByIndex(a, a)
	require.True(t, ok)
	require.Equal(t, 11, w)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := core.New[int, int]()
	a := g.AddNode(12)
	b := g.AddNode(54)
	_, _, err := g.AddEdge(a, b, 9)
	require.NoError(t, err)

	prev, removed, err := g.RemoveEdge(a, b)
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, 9, prev)
	require.Equal(t, 0, g.EdgeCount())

	// Clearing an already-absent cell is not an error.
	_, removed, err = g.RemoveEdge(a, b)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestGraph_RemoveEdgeOnEmptyGraph(t *testing.T) {
	g := core.New[int, int]()
	_, _, err := g.RemoveEdge(0, 0)
	require.ErrorIs(t, err, core.ErrIndexOutOfBounds)
}

func TestGraph_RemoveEdgeKeepsFlippedEdge(t *testing.T) {
	g := core.New[int, struct{}]()
	a := g.AddNode(12)
	b := g.AddNode(54)
	_, _, err := g.AddEdge(a, b, struct{}{})
	require.NoError(t, err)

	_, removed, err := g.RemoveEdge(b, a)
	require.NoError(t, err)
	require.False(t, removed)
	require.Equal(t, 1, g.EdgeCount())
}

func TestGraph_RemoveNodeNotFound(t *testing.T) {
	g := core.New[int, int]()
	_, err := g.RemoveNode(42)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.RemoveNodeAt(0)
	require.ErrorIs(t, err, core.ErrIndexOutOfBounds)
}

func TestGraph_RemoveNodeDropsIncidentEdges(t *testing.T) {
	g := core.New[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	_, _, _ = g.AddEdge(a, b, 1) // A→B, dies with B
	_, _, _ = g.AddEdge(b, c, 2) // B→C, dies with B
	_, _, _ = g.AddEdge(b, b, 3) // self-loop on B, dies with B
	_, _, _ = g.AddEdge(c, a, 4) // C→A, survives

	removed, err := g.RemoveNode("B")
	require.NoError(t, err)
	require.Equal(t, "B", removed)
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())

	aIdx, ok := g.IndexOf("A")
	require.True(t, ok)
	cIdx, ok := g.IndexOf("C")
	require.True(t, ok)
	w, ok := g.EdgeByIndex(cIdx, aIdx)
	require.True(t, ok)
	require.Equal(t, 4, w)
}

func TestGraph_RemoveNodeSwapMovesEdgesWithLastNode(t *testing.T) {
	g := core.New[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	_, _, _ = g.AddEdge(c, d, 1) // C→D
	_, _, _ = g.AddEdge(d, a, 2) // D→A
	_, _, _ = g.AddEdge(d, d, 3) // self-loop on D

	// Removing B frees index 1; D (the former last node) takes it over.
	_, err := g.RemoveNode("B")
	require.NoError(t, err)

	dIdx, ok := g.IndexOf("D")
	require.True(t, ok)
	require.Equal(t, b, dIdx)

	// Indices below the freed slot are unaffected.
	aIdx, _ := g.IndexOf("A")
	require.Equal(t, a, aIdx)
	cIdx, _ := g.IndexOf("C")
	require.Equal(t, c, cIdx)

	// Every edge D participated in moved with it, the self-loop included.
	w, ok := g.EdgeByIndex(cIdx, dIdx)
	require.True(t, ok)
	require.Equal(t, 1, w)
	w, ok = g.EdgeByIndex(dIdx, aIdx)
	require.True(t, ok)
	require.Equal(t, 2, w)
	w, ok = g.EdgeByIndex(dIdx, dIdx)
	require.True(t, ok)
	require.Equal(t, 3, w)
	require.Equal(t, 3, g.EdgeCount())
}

func TestGraph_RemoveLastNode(t *testing.T) {
	g := core.New[int, int]()
	g.AddNode(32)
	removed, err := g.RemoveNodeAt(0)
	require.NoError(t, err)
	require.Equal(t, 32, removed)
	require.Equal(t, 0, g.NodeCount())
	require.Equal(t, 0, g.EdgeCount())
}

func TestGraph_LookupsNeverPanic(t *testing.T) {
	g := core.New[int, int]()
	_, ok := g.NodeByIndex(0)
	require.False(t, ok)
	_, ok = g.EdgeByIndex(0, 2)
	require.False(t, ok)
	require.False(t, g.ContainsEdge(0, 5))
}

func TestGraph_NeighborsAscendingOrder(t *testing.T) {
	g := core.FromEdges([]core.Edge[int, int]{
		{From: 1, To: 2, Weight: 3},
		{From: 3, To: 4, Weight: 7},
		{From: 1, To: 3, Weight: 4},
	})
	start, ok := g.IndexOf(1)
	require.True(t, ok)

	seq, err := g.Neighbors(start)
	require.NoError(t, err)
	indices, nodes := drain(seq)
	require.Equal(t, []int{2, 3}, nodes)
	require.IsIncreasing(t, indices)

	// A fresh sequence is constructed per call; the drained one stays dry.
	_, _, ok = seq.Next()
	require.False(t, ok)
	seq, err = g.Neighbors(start)
	require.NoError(t, err)
	_, nodes = drain(seq)
	require.Equal(t, []int{2, 3}, nodes)
}

func TestGraph_NeighborsOfSinkIsEmpty(t *testing.T) {
	g := core.New[int, int]()
	a := g.AddNode(1)
	seq, err := g.Neighbors(a)
	require.NoError(t, err)
	_, _, ok := seq.Next()
	require.False(t, ok)
}

func TestGraph_NeighborsOutOfRange(t *testing.T) {
	g := core.New[int, int]()
	_, err := g.Neighbors(6)
	require.ErrorIs(t, err, core.ErrIndexOutOfBounds)
}

func TestAdjacencyView_StaleAfterMutation(t *testing.T) {
	g := core.New[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	_, _, _ = g.AddEdge(a, b, 5)

	view := g.AdjacencyMatrix()
	require.True(t, view.Valid())
	require.NoError(t, view.Err())
	require.Equal(t, 2, view.NodeCount())

	node, ok := view.Node(a)
	require.True(t, ok)
	require.Equal(t, "A", node)
	w, ok := view.Weight(a, b)
	require.True(t, ok)
	require.Equal(t, 5, w)

	g.AddNode("C")
	require.False(t, view.Valid())
	require.ErrorIs(t, view.Err(), core.ErrStaleView)

	// Edge mutations invalidate too.
	view = g.AdjacencyMatrix()
	_, _, _ = g.RemoveEdge(a, b)
	require.ErrorIs(t, view.Err(), core.ErrStaleView)
}
