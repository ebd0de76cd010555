package store

import "github.com/villagerdb/geodex/text"

// Builder accumulates rows for one Store and assigns row-ids in
// append order (spec: "Row-id is assigned at build time, stable
// within a release"). Not safe for concurrent use; the loader that
// owns a Builder runs single-threaded (spec §5).
type Builder[T any] struct {
	rows      []T
	secondary map[string]map[string]int
	names     map[string][]int
}

func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{
		secondary: make(map[string]map[string]int),
		names:     make(map[string][]int),
	}
}

// Add appends a row and returns its assigned row-id.
func (b *Builder[T]) Add(row T) int {
	id := len(b.rows)
	b.rows = append(b.rows, row)
	return id
}

// Key registers value as a secondary key of the given name pointing
// at rowID. Callers are responsible for uniqueness (spec invariants
// such as "iso_code is unique globally"); a later call silently
// overwrites an earlier one for the same (keyName, value) pair, same
// as a Go map assignment would.
func (b *Builder[T]) Key(keyName, value string, rowID int) {
	m, ok := b.secondary[keyName]
	if !ok {
		m = make(map[string]int)
		b.secondary[keyName] = m
	}
	m[value] = rowID
}

// Name registers displayName as a searchable normalized-name entry
// for rowID (used for the record's primary name and for every alias
// display string -- spec §3.4 plus the SUPPLEMENTED FEATURES note
// that aliases seed the normalized-name index too).
func (b *Builder[T]) Name(displayName string, rowID int) string {
	normalized := text.Normalize(displayName)
	if normalized == "" {
		return ""
	}
	b.names[normalized] = append(b.names[normalized], rowID)
	return normalized
}

// Build finalizes the store. The Builder must not be reused
// afterward.
func (b *Builder[T]) Build() *Store[T] {
	return &Store[T]{
		rows:             b.rows,
		secondary:        b.secondary,
		byNormalizedName: b.names,
	}
}

// Len reports how many rows have been added so far.
func (b *Builder[T]) Len() int { return len(b.rows) }
