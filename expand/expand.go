// Package expand implements the candidate expander (spec §4.5): it
// turns a normalized query into a set of candidate row-ids by
// querying fts.Index, widening the query with progressively
// shortened prefix terms when the exact pass comes up short.
package expand

import (
	"strings"

	"github.com/villagerdb/geodex/fts"
)

// MaxIter bounds the truncation loop so a query that never
// accumulates enough candidates (or never hits a perfect score)
// still terminates in bounded work.
const MaxIter = 20

// AcceptFloor mirrors registry.AcceptFloor (expand cannot import
// registry, which imports expand). A candidate below this score does
// not count toward the "enough matches" stop condition in done.
const AcceptFloor = 0.35

// Index is the subset of *fts.Index the expander needs, so callers
// can supply a fake in tests without building a full index.
type Index interface {
	Query(terms []fts.Term, filters map[string]string) []int
}

// Scorer scores a single candidate row-id against the original query.
// After each pass the expander calls it on every candidate gathered so
// far, to decide whether enough candidates clear AcceptFloor or an
// exact match (score >= 1.0) has been found, the loop's two
// score-based stop conditions.
type Scorer func(id int) float64

// Expand runs the full candidate-expansion contract of spec §4.5 and
// returns the deduplicated set of candidate row-ids gathered across
// the exact pass and any truncation-loop iterations.
func Expand(q string, limit int, filters map[string]string, idx Index, score Scorer) []int {
	tokens := strings.Fields(q)
	if len(tokens) == 0 {
		return nil
	}

	seen := make(map[int]struct{})
	var candidates []int
	add := func(ids []int) {
		for _, id := range ids {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				candidates = append(candidates, id)
			}
		}
	}

	exactTerms := make([]fts.Term, len(tokens))
	for i, t := range tokens {
		exactTerms[i] = fts.Term{Text: t}
	}
	add(idx.Query(exactTerms, filters))

	if done(candidates, tokens, limit, 0, score) {
		return candidates
	}

	for s := 1; s <= MaxIter; s++ {
		truncated := make([]string, len(tokens))
		totalLen := 0
		for i, t := range tokens {
			truncated[i] = shorten(t, s)
			totalLen += len(truncated[i])
		}

		prefixTerms := make([]fts.Term, len(truncated))
		for i, t := range truncated {
			prefixTerms[i] = fts.Term{Text: t, Prefix: true}
		}
		add(idx.Query(prefixTerms, filters))

		k := len(tokens)
		floor := k
		if floor < 2 {
			floor = 2
		}
		if totalLen <= floor {
			break
		}
		if done(candidates, tokens, limit, s, score) {
			break
		}
	}

	return candidates
}

// shorten implements tᵢ' = tᵢ[0 : max(2, len(tᵢ) - s)]; tokens already
// at or below length 2 are left untouched.
func shorten(t string, s int) string {
	if len(t) <= 2 {
		return t
	}
	n := len(t) - s
	if n < 2 {
		n = 2
	}
	if n >= len(t) {
		return t
	}
	return t[:n]
}

// done reports whether the stop conditions (a) and (c) of spec §4.5
// are satisfied: enough scored matches (score >= AcceptFloor, not raw
// candidate count), or a perfect-score match already seen. Condition
// (b) (total truncated length) and (d) (MAX_ITER) are checked by the
// caller's loop directly.
func done(candidates []int, tokens []string, limit, iter int, score Scorer) bool {
	if score == nil {
		return false
	}
	if limit > 0 {
		scored := 0
		for _, id := range candidates {
			if score(id) >= AcceptFloor {
				scored++
			}
		}
		if scored >= 2*limit {
			return true
		}
	}
	for _, id := range candidates {
		if score(id) >= 1.0 {
			return true
		}
	}
	return false
}
