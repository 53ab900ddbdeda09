package tgf

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matrixgraph/core"
)

// Marshal renders the adjacency view as TGF text: nodes in ascending
// index order, the "#" separator, then edges in ascending (from, to)
// order. Node and weight labels use fmt's default formatting; an empty
// weight label produces a two-field edge line.
//
// Returns ErrNilView for a nil view and core.ErrStaleView if the view's
// graph has mutated since the view was taken.
// Complexity: O(n²) over the matrix dimension n.
func Marshal[N comparable, W any](view *core.AdjacencyView[N, W]) (string, error) {
	if view == nil {
		return "", ErrNilView
	}
	if err := view.Err(); err != nil {
		return "", err
	}

	var b strings.Builder
	n := view.NodeCount()
	for i := 0; i < n; i++ {
		node, _ := view.Node(i)
		fmt.Fprintf(&b, "%d %v\n", i, node)
	}
	b.WriteString("#\n")
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			weight, ok := view.Weight(from, to)
			if !ok {
				continue
			}
			if label := fmt.Sprint(weight); label != "" {
				fmt.Fprintf(&b, "%d %d %s\n", from, to, label)
			} else {
				fmt.Fprintf(&b, "%d %d\n", from, to)
			}
		}
	}

	return b.String(), nil
}
