package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name string
}

func TestBuilderBuildRoundTrip(t *testing.T) {
	b := NewBuilder[row]()
	id1 := b.Add(row{Name: "Wisconsin"})
	b.Key("iso_code", "US-WI", id1)
	b.Name("Wisconsin", id1)

	id2 := b.Add(row{Name: "Winnipeg"})
	b.Key("iso_code", "CA-MB", id2)
	b.Name("Winnipeg", id2)

	s := b.Build()
	require.Equal(t, 2, s.Len())

	got, ok := s.ByRowID(id1)
	require.True(t, ok)
	assert.Equal(t, "Wisconsin", got.Name)

	got, ok = s.ByKey("iso_code", "CA-MB")
	require.True(t, ok)
	assert.Equal(t, "Winnipeg", got.Name)

	_, ok = s.ByKey("iso_code", "ZZ-ZZ")
	assert.False(t, ok, "expected miss for unknown key value")
	_, ok = s.ByKey("nonexistent_key", "x")
	assert.False(t, ok, "expected miss for unknown key name")

	ids := s.ByNormalizedName("wisconsin")
	require.Len(t, ids, 1)
	assert.Equal(t, id1, ids[0])
}

func TestByRowIDOutOfRange(t *testing.T) {
	s := NewBuilder[row]().Build()
	_, ok := s.ByRowID(0)
	assert.False(t, ok, "expected miss on empty store")
	_, ok = s.ByRowID(-1)
	assert.False(t, ok, "expected miss for negative row-id")
}

func TestIterOrderIsStable(t *testing.T) {
	b := NewBuilder[row]()
	b.Add(row{Name: "a"})
	b.Add(row{Name: "b"})
	b.Add(row{Name: "c"})
	s := b.Build()

	var order []string
	for id, r := range s.Iter() {
		order = append(order, r.Name)
		_ = id
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestNameNormalizesAndSkipsEmpty(t *testing.T) {
	b := NewBuilder[row]()
	id := b.Add(row{Name: "!!!"})
	assert.Equal(t, "", b.Name("!!!", id))

	s := b.Build()
	assert.Empty(t, s.ByNormalizedName(""), "empty normalized name should not be indexed")
}
