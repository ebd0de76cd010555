package fts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildSample() *Index {
	b := NewBuilder()
	b.AddTokens([]string{"san", "francisco", "ca", "us"}, 1)
	b.AddTokens([]string{"san", "jose", "ca", "us"}, 2)
	b.AddTokens([]string{"francisco", "beltran"}, 3) // unrelated person, shares "francisco"
	b.AddFilter("country_alpha2", "US", 1)
	b.AddFilter("country_alpha2", "US", 2)
	return b.Build()
}

func TestMatchExact(t *testing.T) {
	idx := buildSample()
	assert.Equal(t, []int{1, 2}, idx.MatchExact("san"))
	assert.Nil(t, idx.MatchExact("nonexistent"))
}

func TestMatchPrefix(t *testing.T) {
	idx := buildSample()
	assert.Equal(t, []int{1, 3}, idx.MatchPrefix("fran"))
}

func TestConjunctiveQuerySanFran(t *testing.T) {
	idx := buildSample()
	terms := ParseQuery("san fran*")
	assert.Equal(t, []int{1}, idx.Query(terms, nil))
}

func TestQueryWithFilter(t *testing.T) {
	idx := buildSample()
	terms := ParseQuery("san*")
	assert.Equal(t, []int{1, 2}, idx.Query(terms, map[string]string{"country_alpha2": "US"}))
}

func TestQueryEmptyReturnsEmpty(t *testing.T) {
	idx := buildSample()
	assert.Nil(t, idx.Query(nil, nil))
	assert.Nil(t, idx.Query(ParseQuery(""), nil))
}

func TestOrderAndLimitTruncatesAfterSort(t *testing.T) {
	ids := []int{5, 1, 3}
	scores := map[int]float64{5: 0.9, 1: 0.99, 3: 0.1}
	got := OrderAndLimit(ids, func(a, b int) bool { return scores[a] > scores[b] }, 2)
	assert.Equal(t, []int{1, 5}, got)
}
