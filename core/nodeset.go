package core

// NodeSet is an insertion-ordered, deduplicating set of node values with
// O(1) amortized value→index and index→value lookups.
//
// Indices are dense: they always cover [0, Len()). Removal uses the
// swap-with-last policy, so indices are transient handles, valid only
// until the next Remove.
type NodeSet[N comparable] struct {
	values []N       // index → value, insertion order
	index  map[N]int // value → index
}

// NewNodeSet returns an empty NodeSet.
func NewNodeSet[N comparable]() *NodeSet[N] {
	return &NodeSet[N]{index: make(map[N]int)}
}

// Add inserts v and returns its index. If v is already present, the
// existing index is returned and nothing changes (idempotent).
// Complexity: O(1) amortized.
func (s *NodeSet[N]) Add(v N) int {
	if idx, ok := s.index[v]; ok {
		return idx
	}
	idx := len(s.values)
	s.values = append(s.values, v)
	s.index[v] = idx

	return idx
}

// IndexOf returns the current index of v, if present.
// Complexity: O(1).
func (s *NodeSet[N]) IndexOf(v N) (int, bool) {
	idx, ok := s.index[v]
	return idx, ok
}

// At returns the value at idx, if idx < Len().
// Complexity: O(1).
func (s *NodeSet[N]) At(idx int) (N, bool) {
	if idx < 0 || idx >= len(s.values) {
		var zero N
		return zero, false
	}

	return s.values[idx], true
}

// Remove deletes the entry at idx and returns the removed value.
//
// Swap-with-last: the last value moves into the freed slot, so indices
// below idx are unaffected, the last index ceases to exist, and the value
// that owned the last index now owns idx.
// Complexity: O(1).
func (s *NodeSet[N]) Remove(idx int) (N, bool) {
	if idx < 0 || idx >= len(s.values) {
		var zero N
		return zero, false
	}
	removed := s.values[idx]
	delete(s.index, removed)

	last := len(s.values) - 1
	if idx != last {
		s.values[idx] = s.values[last]
		s.index[s.values[idx]] = idx
	}
	var zero N
	s.values[last] = zero // release the reference
	s.values = s.values[:last]

	return removed, true
}

// Len returns the number of stored values.
// Complexity: O(1).
func (s *NodeSet[N]) Len() int { return len(s.values) }

// Values returns a fresh snapshot of all values in index order.
// The slice is safe to retain and mutate.
// Complexity: O(n).
func (s *NodeSet[N]) Values() []N {
	out := make([]N, len(s.values))
	copy(out, s.values)

	return out
}
