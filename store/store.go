// Package store is the in-memory record store (spec §4.3): parallel
// arrays indexed by row-id plus the derived secondary-key and
// normalized-name indexes built once at load and never mutated
// again.
package store

import (
	"iter"

	"github.com/villagerdb/geodex/util"
)

// Store holds every row of one entity kind plus its derived lookup
// tables. Zero value is an empty, usable store; use Builder to
// populate one.
type Store[T any] struct {
	rows []T

	// secondary holds one unique map per canonical key name, e.g.
	// "alpha2" -> {"US": 4, "GB": 73, ...}. Populated by Builder.
	secondary map[string]map[string]int

	// byNormalizedName is the multimap described in spec §3.4: ties
	// are broken by insertion order, which is why the slice, not a
	// set, is the value type.
	byNormalizedName map[string][]int
}

// ByRowID returns the row at the given row-id, or the zero value and
// false if out of range. O(1).
func (s *Store[T]) ByRowID(id int) (T, bool) {
	var zero T
	if id < 0 || id >= len(s.rows) {
		return zero, false
	}
	return s.rows[id], true
}

// ByKey looks up a row by one of its secondary keys. O(1).
func (s *Store[T]) ByKey(keyName, value string) (T, bool) {
	var zero T
	m, ok := s.secondary[keyName]
	if !ok {
		return zero, false
	}
	id, ok := m[value]
	if !ok {
		return zero, false
	}
	return s.ByRowID(id)
}

// ByNormalizedName returns every row-id whose normalized name equals
// the given (already-normalized) name, in insertion order.
func (s *Store[T]) ByNormalizedName(normalized string) []int {
	return s.byNormalizedName[normalized]
}

// Len returns the number of rows in the store.
func (s *Store[T]) Len() int { return len(s.rows) }

// Iter yields (row-id, row) pairs in row-id order, matching spec
// §4.3's "stable iteration in row-id order" contract.
func (s *Store[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, row := range s.rows {
			if !yield(i, row) {
				return
			}
		}
	}
}

// Keys returns the canonical-key names registered on this store, in
// deterministic (sorted) order.
func (s *Store[T]) Keys() []string {
	names := make([]string, 0, len(s.secondary))
	for k := range util.CanonicalMapIter(s.secondary) {
		names = append(names, k)
	}
	return names
}
