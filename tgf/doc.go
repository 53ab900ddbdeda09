// Package tgf serializes graphs to and from the Trivial Graph Format,
// a line-oriented plain-text edge list.
//
// Grammar:
//
//	<node-block>  ::= (<index> SP <label> NEWLINE)*
//	<separator>   ::= "#" NEWLINE
//	<edge-block>  ::= (<from> SP <to> [SP <label>] NEWLINE)*
//	document      ::= <node-block> <separator> <edge-block>
//
// Marshal renders one line per node as "<index> <label>" in ascending
// index order, the "#" separator, then one line per present edge as
// "<from> <to> <label>" in ascending (from, to) order. Labels come from
// the fmt package's default formatting; a weight whose textual form is
// empty yields a two-field edge line.
//
// Unmarshal is index-preserving: node lines may appear in any order, but
// the declared indices must form the dense range [0, n) and the built
// graph assigns exactly those indices. Labels are decoded by caller-
// supplied DecodeFuncs (ParseInt and ParseString cover the common cases).
// An edge line without a label decodes the weight as W's zero value; a
// repeated (from, to) pair keeps the last weight, consistent with the
// container's overwrite semantics.
//
// Errors:
//
// Every decoding failure is reported as a *ParseError localized to one
// input line and matching a sentinel via errors.Is:
//
//   - ErrMalformedLine:        wrong field count, non-integer index,
//     missing separator, or a node block that skips an index.
//   - ErrInvalidNode:          node label rejected by the node decoder, or
//     a node value declared under more than one index.
//   - ErrInvalidWeight:        edge label rejected by the weight decoder.
//   - ErrDuplicateIndex:       node index declared twice.
//   - ErrUnknownNodeReference: edge endpoint not declared in the node block.
//
// Round-trip:
//
//	For label encodings that decode uniquely, Unmarshal(Marshal(g))
//	preserves the node set and the (from, to, weight) edge set of g.
package tgf
