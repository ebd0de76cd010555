package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdentical(t *testing.T) {
	assert.Equal(t, 100, Similarity("austin", "austin"))
}

func TestSimilarityCompletelyDifferent(t *testing.T) {
	assert.Equal(t, 0, Similarity("abc", "xyz"))
}

func TestTokenSingleTokenQueryAgainstMultiTokenField(t *testing.T) {
	// avg=1 (the one query token matches perfectly), coverage=1/3 (one
	// of three field tokens matched): 0.7*1 + 0.3*(1.0/3) = 0.8. Full
	// exact-name equality is special-cased at the registry level
	// (registry.Engine.Search), not inside the token-coverage scorer.
	got := Token("austin", "austin tx us")
	assert.InDelta(t, 0.8, got, 1e-9)
}

func TestTokenNoMatchBelowFloor(t *testing.T) {
	assert.Equal(t, 0.0, Token("zzzzzzzz", "austin tx us"))
}

func TestTokenEmptyInputsAreZero(t *testing.T) {
	assert.Equal(t, 0.0, Token("", "austin"))
	assert.Equal(t, 0.0, Token("austin", ""))
}

func TestTokenMissingTokenCostsScore(t *testing.T) {
	full := Token("palo alto", "palo alto ca us")
	partial := Token("palo alto", "palo xyz ca us")
	assert.Less(t, partial, full)
}

func TestFieldWeightedPrefersHigherWeightField(t *testing.T) {
	fields := LocalityFields("Palo Alto", "", "California", "", "United States")
	got := FieldWeighted(fields, "Palo Alto")
	assert.GreaterOrEqual(t, got, 0.9)
}

func TestFieldWeightedNoFieldsIsZero(t *testing.T) {
	assert.Equal(t, 0.0, FieldWeighted(nil, "anything"))
	assert.Equal(t, 0.0, FieldWeighted(LocalityFields("", "", "", "", ""), "anything"))
}

func TestScoreAllMatchesSerial(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5, 6, 7}
	fn := func(id int) float64 { return float64(id) * 0.1 }

	serial := ScoreAll(ids, 1, fn)
	parallel := ScoreAll(ids, 4, fn)

	assert.Equal(t, serial, parallel)
}
