// Package pkg provides small generic utilities shared across shadekey.
package pkg

// OrderedSet is a set that remembers the order in which items were first
// added. Later duplicates are rejected, so the first occurrence wins.
type OrderedSet[T comparable] struct {
	seen  map[T]struct{}
	items []T
}

// NewOrderedSet constructs an empty OrderedSet.
func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{seen: make(map[T]struct{})}
}

// Add inserts item unless it is already present. It reports whether the item
// was added.
func (s *OrderedSet[T]) Add(item T) bool {
	if _, ok := s.seen[item]; ok {
		return false
	}

	s.seen[item] = struct{}{}
	s.items = append(s.items, item)

	return true
}

// Has reports whether item is present.
func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.seen[item]
	return ok
}

// Len returns the number of distinct items.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Items returns the distinct items in first-insertion order. The returned
// slice is shared with the set and must not be mutated.
func (s *OrderedSet[T]) Items() []T {
	return s.items
}
