package set

// Set tracks distinct comparable values.
// The zero value is not usable, use [New] instead.
type Set[T comparable] struct {
	vals map[T]struct{}
}

// New creates a new [Set] containing vals.
func New[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{vals: make(map[T]struct{}, len(vals))}
	for _, v := range vals {
		s.vals[v] = struct{}{}
	}
	return s
}

// Has reports whether val is in the [Set]. A nil [Set] has nothing in it.
func (s *Set[T]) Has(val T) bool {
	if s == nil {
		return false
	}
	_, ok := s.vals[val]
	return ok
}

// Claim adds val and reports whether it was newly added.
// A false return means val was already claimed, which is how duplicate names are found.
func (s *Set[T]) Claim(val T) bool {
	if s.Has(val) {
		return false
	}
	s.vals[val] = struct{}{}
	return true
}
