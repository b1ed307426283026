package datastructures

// Filter returns the elements of slice satisfying the predicate, in order.
func Filter[T any](slice []T, predicate func(t T) bool) []T {
	res := make([]T, 0)
	for _, elem := range slice {
		if predicate(elem) {
			res = append(res, elem)
		}
	}
	return res
}

// Map applies mapping to every element of slice.
func Map[T any, S any](slice []T, mapping func(t T) S) []S {
	res := make([]S, len(slice))
	for idx, elem := range slice {
		res[idx] = mapping(elem)
	}
	return res
}

// Set is a snapshot of the members of a concurrent set.
type Set[T comparable] map[T]struct{}

func (s Set[T]) Contains(t T) bool {
	_, ok := s[t]
	return ok
}

func (s Set[T]) Size() int {
	return len(s)
}

// ToArray lists the members in no particular order.
func (s Set[T]) ToArray() []T {
	res := make([]T, 0, len(s))
	for elem := range s {
		res = append(res, elem)
	}
	return res
}
