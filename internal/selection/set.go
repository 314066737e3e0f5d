package selection

// Set is an unordered collection of comparable values
type Set[T comparable] map[T]struct{}

// NewSet creates a set holding the given values
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Delete removes v from the set
func (s Set[T]) Delete(v T) {
	delete(s, v)
}

// Contains reports whether v is in the set
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set
func (s Set[T]) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Slice returns the values of the set in no particular order
func (s Set[T]) Slice() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Equal reports whether both sets hold exactly the same values
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if _, ok := other[v]; !ok {
			return false
		}
	}
	return true
}
