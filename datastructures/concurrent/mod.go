package concurrent

import (
	"sync"

	"github.com/minotor-team/socialsim/datastructures"
)

// Thread safe slice. Any operation is guaranteed to be thread-safe.
// Elements keep their insertion order.
type Slice[T any] struct {
	sync.RWMutex
	elements []T
}

func NewSlice[T any]() Slice[T] {
	return Slice[T]{
		elements: make([]T, 0),
	}
}

func (slice *Slice[T]) Append(elem T) {
	slice.Lock()
	defer slice.Unlock()
	slice.elements = append(slice.elements, elem)
}

// Returns a copy of the elements, in insertion order.
func (slice *Slice[T]) Elements() []T {
	slice.RLock()
	defer slice.RUnlock()
	res := make([]T, len(slice.elements))
	copy(res, slice.elements)
	return res
}

func (slice *Slice[T]) Get(i int) T {
	slice.RLock()
	defer slice.RUnlock()
	return slice.elements[i]
}

func (slice *Slice[T]) Len() int {
	slice.RLock()
	defer slice.RUnlock()
	return len(slice.elements)
}

func (slice *Slice[T]) Find(predicate func(T) bool) (T, bool) {
	var res T
	slice.RLock()
	defer slice.RUnlock()

	for _, elem := range slice.elements {
		if predicate(elem) {
			return elem, true
		}
	}

	return res, false
}

// Thread safe map. Any operation is guaranteed to be thread-safe.
type Map[K comparable, V any] struct {
	sync.RWMutex
	content map[K]V
}

func NewMap[K comparable, V any]() Map[K, V] {
	return Map[K, V]{
		content: make(map[K]V),
	}
}

// Returns the number of (key, value) pairs in the map.
func (m *Map[K, V]) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.content)
}

// Returns a copy of the content of the map.
func (m *Map[K, V]) Entries() map[K]V {
	m.RLock()
	defer m.RUnlock()
	res := make(map[K]V, len(m.content))
	for k, v := range m.content {
		res[k] = v
	}
	return res
}

// Add an element to the map. If there is already an entry
// for the key, it is left untouched and false is returned.
func (m *Map[K, V]) AddIfAbsent(key K, value V) bool {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.content[key]; ok {
		return false
	}
	m.content[key] = value
	return true
}

// Delete an element from the map. Returns false if the key
// was not in the map.
func (m *Map[K, V]) Delete(key K) bool {
	m.Lock()
	defer m.Unlock()
	_, ok := m.content[key]
	delete(m.content, key)
	return ok
}

// Get an element from the map. The second value is
// false if the key is not in the map.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.RLock()
	defer m.RUnlock()
	value, ok := m.content[key]
	return value, ok
}

// Thread-safe set.
type Set[T comparable] struct {
	underlyingMap Map[T, struct{}]
}

// Returns a new Set.
func NewSet[T comparable]() Set[T] {
	return Set[T]{
		underlyingMap: NewMap[T, struct{}](),
	}
}

// Add t to the set. Returns false if t was already a member.
func (s *Set[T]) Add(t T) bool {
	return s.underlyingMap.AddIfAbsent(t, struct{}{})
}

// Returns true iff the set contains the provided element.
func (s *Set[T]) Contains(t T) bool {
	_, ok := s.underlyingMap.Get(t)
	return ok
}

// Remove element from the set. Returns false if t was not a member.
func (s *Set[T]) Remove(t T) bool {
	return s.underlyingMap.Delete(t)
}

// Returns a snapshot of the set.
func (s *Set[T]) Values() datastructures.Set[T] {
	return datastructures.Set[T](s.underlyingMap.Entries())
}

func (s *Set[T]) Size() uint {
	return uint(s.underlyingMap.Len())
}
