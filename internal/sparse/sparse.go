// Package sparse provides a sparse integer set used to track active
// automaton states during simulation.
//
// The set keeps a sparse array for O(1) membership tests and a dense array
// for iteration, so clearing between input characters is O(1) and a run
// never allocates after the two sets are created.
package sparse

// Set is a set of uint32 values below a fixed capacity.
// The zero value is not usable; create sets with New.
type Set struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32 // the values, in insertion order
}

// New creates a set able to hold values in [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was newly inserted.
// Inserting an existing value is a no-op.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Clear empties the set in O(1) time.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set contains no elements.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the elements in insertion order.
// The slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
