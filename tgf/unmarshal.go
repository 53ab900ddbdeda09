package tgf

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/matrixgraph/core"
)

// DecodeFunc decodes one TGF label into a value.
type DecodeFunc[T any] func(label string) (T, error)

// ParseInt decodes integer labels. Its signature matches strconv.Atoi on
// purpose: pass either one wherever a DecodeFunc[int] is expected.
var ParseInt DecodeFunc[int] = strconv.Atoi

// ParseString accepts any label verbatim.
func ParseString(label string) (string, error) { return label, nil }

// separator is the line dividing the node block from the edge block.
const separator = "#"

// Unmarshal parses TGF text into a graph, decoding node and weight labels
// with the supplied DecodeFuncs. Construction is index-preserving: the
// built graph assigns exactly the indices declared in the node block.
//
// All failures are *ParseError values wrapping the package sentinels; see
// the package documentation for the full taxonomy.
// Complexity: O(L) over input lines plus O(n²) matrix allocation.
func Unmarshal[N comparable, W any](input string, decodeNode DecodeFunc[N], decodeWeight DecodeFunc[W]) (*core.Graph[N, W], error) {
	lines := strings.Split(input, "\n")
	// A trailing newline produces one empty trailing element; drop it so a
	// well-formed "...\n" document parses cleanly.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	p := parser[N, W]{lines: lines, decodeNode: decodeNode, decodeWeight: decodeWeight}

	return p.parse()
}

// parser carries decoding state through the two blocks of the document.
type parser[N comparable, W any] struct {
	lines        []string
	pos          int // next line to consume, 0-based
	decodeNode   DecodeFunc[N]
	decodeWeight DecodeFunc[W]
}

// lineNo is the 1-based number of the line about to be consumed.
func (p *parser[N, W]) lineNo() int { return p.pos + 1 }

func (p *parser[N, W]) parse() (*core.Graph[N, W], error) {
	nodes, err := p.parseNodeBlock()
	if err != nil {
		return nil, err
	}

	// Index-preserving construction: nodes enters in ascending declared
	// index, so append-only AddNode reproduces the declared assignment.
	g := core.New[N, W]()
	for _, v := range nodes {
		g.AddNode(v)
	}

	if err = p.parseEdgeBlock(g); err != nil {
		return nil, err
	}

	return g, nil
}

// parseNodeBlock consumes node lines up to and including the separator,
// returning the declared values ordered by their declared indices.
func (p *parser[N, W]) parseNodeBlock() ([]N, error) {
	declared := make(map[int]N)
	seen := make(map[N]struct{})
	for {
		if p.pos >= len(p.lines) {
			return nil, lineErr(p.lineNo(), ErrMalformedLine, "missing %q separator", separator)
		}
		line := p.lines[p.pos]
		if line == separator {
			break
		}

		idxField, label, found := strings.Cut(line, " ")
		if !found {
			return nil, lineErr(p.lineNo(), ErrMalformedLine, "node line needs an index and a label")
		}
		idx, err := strconv.Atoi(idxField)
		if err != nil || idx < 0 {
			return nil, lineErr(p.lineNo(), ErrMalformedLine, "bad node index %q", idxField)
		}
		if _, dup := declared[idx]; dup {
			return nil, lineErr(p.lineNo(), ErrDuplicateIndex, "index %d", idx)
		}
		value, err := p.decodeNode(label)
		if err != nil {
			return nil, lineErr(p.lineNo(), ErrInvalidNode, "%q: %v", label, err)
		}
		// Node values are unique in the container, so a value declared
		// under two indices cannot be constructed faithfully.
		if _, dup := seen[value]; dup {
			return nil, lineErr(p.lineNo(), ErrInvalidNode, "value %v already declared", value)
		}
		seen[value] = struct{}{}
		declared[idx] = value
		p.pos++
	}

	// Declared indices may arrive in any order but must form [0, n).
	nodes := make([]N, len(declared))
	for i := range nodes {
		v, ok := declared[i]
		if !ok {
			return nil, lineErr(p.lineNo(), ErrMalformedLine, "node block skips index %d", i)
		}
		nodes[i] = v
	}
	p.pos++ // consume the separator

	return nodes, nil
}

// parseEdgeBlock consumes the remaining lines as edges into g.
func (p *parser[N, W]) parseEdgeBlock(g *core.Graph[N, W]) error {
	for ; p.pos < len(p.lines); p.pos++ {
		line := p.lines[p.pos]

		fromField, rest, found := strings.Cut(line, " ")
		if !found {
			return lineErr(p.lineNo(), ErrMalformedLine, "edge line needs source and destination")
		}
		toField, label, hasLabel := strings.Cut(rest, " ")

		from, err := strconv.Atoi(fromField)
		if err != nil {
			return lineErr(p.lineNo(), ErrMalformedLine, "bad edge source %q", fromField)
		}
		to, err := strconv.Atoi(toField)
		if err != nil {
			return lineErr(p.lineNo(), ErrMalformedLine, "bad edge destination %q", toField)
		}

		var weight W
		if hasLabel {
			if weight, err = p.decodeWeight(label); err != nil {
				return lineErr(p.lineNo(), ErrInvalidWeight, "%q: %v", label, err)
			}
		}

		// A repeated (from, to) pair overwrites, like AddEdge itself.
		if _, _, err = g.AddEdge(from, to, weight); err != nil {
			return lineErr(p.lineNo(), ErrUnknownNodeReference, "%d -> %d", from, to)
		}
	}

	return nil
}
