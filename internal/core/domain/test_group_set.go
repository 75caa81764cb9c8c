package domain

// TestGroupSet is an ordered set of test group names, insertion-order
// preserving. Insertion order defines emission order in the aggregate test
// runner (spec.md §3); re-declaring a group is idempotent.
type TestGroupSet struct {
	seen  map[string]struct{}
	order []string
}

// NewTestGroupSet creates an empty TestGroupSet.
func NewTestGroupSet() *TestGroupSet {
	return &TestGroupSet{seen: make(map[string]struct{})}
}

// Add inserts name if not already present. Returns true if this call added
// a new group.
func (s *TestGroupSet) Add(name string) bool {
	if _, ok := s.seen[name]; ok {
		return false
	}
	s.seen[name] = struct{}{}
	s.order = append(s.order, name)
	return true
}

// Names returns every group in insertion order.
func (s *TestGroupSet) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len reports the number of distinct groups accumulated so far.
func (s *TestGroupSet) Len() int {
	return len(s.order)
}
