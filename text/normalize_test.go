package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBasic(t *testing.T) {
	cases := map[string]string{
		"  United   Stats  ": "united stats",
		"Bodří":              "bodri",
		"São Paulo":          "sao paulo",
		"O'Fallon":           "ofallon",
		"":                   "",
		"US-WI":              "us wi",
		"Ho Chi Minh, City.": "ho chi minh city",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"  Bodří  ", "Москва", "東京", "Côte d'Ivoire", "plain text", ""}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "Normalize not idempotent for %q", in)
	}
}

func TestNormalizeNonLatinTransliterates(t *testing.T) {
	got := Normalize("Москва")
	require.NotEmpty(t, got, "expected non-empty transliteration of Cyrillic input")
	for _, r := range got {
		require.LessOrEqual(t, r, rune(127), "Normalize(%q) left non-ASCII rune %q in %q", "Москва", r, got)
	}
}
