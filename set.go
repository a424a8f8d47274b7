package trie

// Set is an unordered set of values returned by Index lookups. Every Set
// handed out by an Index is a fresh copy owned by the caller.
type Set[V comparable] map[V]struct{}

// NewSet creates a set holding values.
func NewSet[V comparable](values ...V) Set[V] {
	s := make(Set[V], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is in the set.
func (s Set[V]) Has(v V) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set.
func (s Set[V]) Len() int { return len(s) }

// Add inserts values into the set.
func (s Set[V]) Add(values ...V) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// Union adds every value of other to s.
func (s Set[V]) Union(other Set[V]) {
	for v := range other {
		s[v] = struct{}{}
	}
}

// Slice returns the values in no particular order.
func (s Set[V]) Slice() []V {
	out := make([]V, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

func copySet[V comparable](values map[V]struct{}) Set[V] {
	s := make(Set[V], len(values))
	for v := range values {
		s[v] = struct{}{}
	}
	return s
}
