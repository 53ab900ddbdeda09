package bfs

import (
	"errors"

	"github.com/katalvlaran/matrixgraph/core"
)

// Sentinel errors for traversal construction.
var (
	// ErrSourceNil is returned if a nil Source is passed.
	ErrSourceNil = errors.New("bfs: source is nil")

	// ErrStartOutOfRange is returned when the start index addresses no node.
	ErrStartOutOfRange = errors.New("bfs: start index out of range")
)

// Source is the read-only capability a traversal needs from a graph:
// neighbor enumeration and index→node lookup. *core.Graph satisfies it.
type Source[N any] interface {
	// Neighbors returns a lazy (index, node) sequence over the direct
	// neighbors of idx, ascending by index.
	Neighbors(idx int) (core.Seq[N], error)

	// NodeByIndex returns the node value at idx, comma-ok on out-of-range.
	NodeByIndex(idx int) (N, bool)
}

// GraphEntry is one visited node together with all of its direct
// neighbors in ascending index order.
type GraphEntry[N any] struct {
	Node  N
	Edges []N
}

// Traversal is a lazy breadth-first walk. Construct with New or Iter,
// then pull entries with Next until it reports done.
type Traversal[N any] struct {
	src     Source[N]
	queue   []int            // FIFO of pending indices
	visited map[int]struct{} // enqueued-or-visited set
}

// New constructs a Traversal over src starting at the given index.
// Returns ErrSourceNil or ErrStartOutOfRange on invalid input.
// Complexity: O(1).
func New[N any](src Source[N], start int) (*Traversal[N], error) {
	if src == nil {
		return nil, ErrSourceNil
	}
	if _, ok := src.NodeByIndex(start); !ok {
		return nil, ErrStartOutOfRange
	}

	return &Traversal[N]{
		src:     src,
		queue:   []int{start},
		visited: map[int]struct{}{start: {}},
	}, nil
}

// Iter constructs a Traversal over a core.Graph. It is New specialized to
// the concrete container so callers get full type inference.
func Iter[N comparable, W any](g *core.Graph[N, W], start int) (*Traversal[N], error) {
	if g == nil {
		return nil, ErrSourceNil
	}

	return New[N](g, start)
}

// Next emits the entry for the next node in breadth-first order.
// It reports ok=false once every reachable node has been emitted.
// Complexity: one neighbor-row scan per call.
func (t *Traversal[N]) Next() (entry GraphEntry[N], ok bool) {
	if len(t.queue) == 0 {
		return entry, false
	}
	cur := t.queue[0]
	t.queue = t.queue[1:]

	// The source is borrowed read-only for the walk; a vanished index
	// means that contract was broken, so the walk just ends.
	node, exists := t.src.NodeByIndex(cur)
	if !exists {
		return entry, false
	}
	seq, err := t.src.Neighbors(cur)
	if err != nil {
		return entry, false
	}

	entry.Node = node
	for {
		idx, neighbor, more := seq.Next()
		if !more {
			break
		}
		// Structure, not novelty: every neighbor is listed.
		entry.Edges = append(entry.Edges, neighbor)
		if _, seen := t.visited[idx]; !seen {
			t.visited[idx] = struct{}{}
			t.queue = append(t.queue, idx)
		}
	}

	return entry, true
}
