// Package score implements the token-coverage scorer (spec §4.6) and
// the Locality field-weighted alternative (spec §4.7), plus the
// per-token similarity ratio both rely on.
package score

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// TokenFloor is the per-token acceptance floor (spec §4.6): a query
// token's best match against the candidate's fields only counts
// toward the score if its similarity clears this bar. This resolves
// spec.md Design Notes ambiguity (i) for the per-token threshold.
const TokenFloor = 0.60

// Similarity returns a normalized Levenshtein-ratio similarity
// between a and b in [0,100]: 100 means identical, 0 means the edit
// distance is at least as large as the longer string.
func Similarity(a, b string) int {
	if a == "" && b == "" {
		return 100
	}
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	ratio := float64(maxLen-dist) / float64(maxLen)
	if ratio < 0 {
		ratio = 0
	}
	return int(ratio*100 + 0.5)
}

// Token is the token-coverage scorer (spec §4.6): it compares every
// normalized query token against every token of the candidate's
// stored token string, keeps the per-token best match that clears
// TokenFloor, and blends average similarity with field coverage.
//
// query and tok must already be normalized (space-separated,
// lowercase, diacritic-folded) -- the scorer does not normalize on
// its own, since callers (the registry) normalize once and reuse the
// result for both the expander and the scorer.
func Token(query, tok string) float64 {
	queryTokens := strings.Fields(query)
	fieldTokens := strings.Fields(tok)
	if len(queryTokens) == 0 || len(fieldTokens) == 0 {
		return 0
	}

	var sum float64
	matched := 0
	for _, q := range queryTokens {
		best := 0
		for _, f := range fieldTokens {
			if s := Similarity(q, f); s > best {
				best = s
			}
		}
		b := float64(best) / 100
		if b >= TokenFloor {
			sum += b
			matched++
		}
	}

	if matched == 0 {
		return 0
	}

	avg := sum / float64(len(queryTokens))
	coverage := float64(matched) / float64(len(fieldTokens))
	return 0.7*avg + 0.3*coverage
}
