package tgf

import (
	"errors"
	"fmt"
)

// Sentinel errors for TGF decoding. Tests and callers match them via
// errors.Is; detail and line context travel in the wrapping ParseError.
var (
	// ErrNilView is returned when Marshal receives a nil adjacency view.
	ErrNilView = errors.New("tgf: nil adjacency view")

	// ErrMalformedLine indicates a line that does not match the grammar:
	// wrong field count, non-integer index, missing separator, or a node
	// block whose indices do not form a dense range.
	ErrMalformedLine = errors.New("tgf: malformed line")

	// ErrInvalidNode indicates a node label the node decoder rejected, or
	// a node value declared under more than one index.
	ErrInvalidNode = errors.New("tgf: invalid node label")

	// ErrInvalidWeight indicates an edge label the weight decoder rejected.
	ErrInvalidWeight = errors.New("tgf: invalid edge weight")

	// ErrDuplicateIndex indicates a node index declared more than once.
	ErrDuplicateIndex = errors.New("tgf: duplicate node index")

	// ErrUnknownNodeReference indicates an edge endpoint index that was
	// never declared in the node block.
	ErrUnknownNodeReference = errors.New("tgf: edge references undeclared node")
)

// ParseError is a decoding failure localized to a single input line.
// It wraps one of the package sentinels, so errors.Is sees through it.
type ParseError struct {
	Line int   // 1-based line number in the input
	Err  error // wrapped sentinel, possibly with detail
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v (line %d)", e.Err, e.Line)
}

// Unwrap exposes the wrapped sentinel to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// lineErr builds a ParseError wrapping sentinel with optional detail.
func lineErr(line int, sentinel error, format string, args ...any) *ParseError {
	if format == "" {
		return &ParseError{Line: line, Err: sentinel}
	}

	return &ParseError{Line: line, Err: fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))}
}
