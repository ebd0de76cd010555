// Package fts is the full-text index (spec §4.4): one instance per
// entity kind, mapping tokens to sorted posting lists of row-ids,
// with conjunctive exact/prefix queries and equality filter
// predicates.
package fts

import (
	"sort"
	"strings"
)

// Index is immutable once built. Queries never mutate it, so a single
// Index may be queried concurrently without locks (spec §5).
type Index struct {
	tokens  map[string][]int            // token -> sorted, deduped posting list
	filters map[string]map[string][]int // filterName -> value -> sorted, deduped posting list
}

// MatchExact returns the posting list for an exact token, or nil if
// the token was never indexed.
func (idx *Index) MatchExact(tok string) []int {
	return idx.tokens[tok]
}

// MatchPrefix returns the union, deduplicated and row-id ordered, of
// the posting lists of every token starting with prefix.
func (idx *Index) MatchPrefix(prefix string) []int {
	if prefix == "" {
		return nil
	}
	var union []int
	for tok, posting := range idx.tokens {
		if strings.HasPrefix(tok, prefix) {
			union = append(union, posting...)
		}
	}
	return sortedUnique(union)
}

// Term is one whitespace-separated piece of a conjunctive query:
// either an exact term or, if Prefix is true, a prefix term (the
// trailing '*' stripped off).
type Term struct {
	Text   string
	Prefix bool
}

// ParseQuery splits a query string on whitespace into Terms,
// recognizing a trailing '*' as a prefix marker.
func ParseQuery(q string) []Term {
	fields := strings.Fields(q)
	terms := make([]Term, 0, len(fields))
	for _, f := range fields {
		if strings.HasSuffix(f, "*") {
			terms = append(terms, Term{Text: strings.TrimSuffix(f, "*"), Prefix: true})
		} else {
			terms = append(terms, Term{Text: f})
		}
	}
	return terms
}

// Query runs a conjunctive query: the intersection of the posting
// sets of every term, further intersected with any equality filters
// (filterName -> value). An empty term list returns nil (spec: "Empty
// query → empty result"). Unknown filter names or values yield an
// empty result, matching the "unknown token yields empty posting"
// policy.
func (idx *Index) Query(terms []Term, filters map[string]string) []int {
	if len(terms) == 0 {
		return nil
	}

	var result []int
	first := true
	for _, term := range terms {
		var posting []int
		if term.Prefix {
			posting = idx.MatchPrefix(term.Text)
		} else {
			posting = idx.MatchExact(term.Text)
		}
		if first {
			result = posting
			first = false
		} else {
			result = intersect(result, posting)
		}
		if len(result) == 0 {
			return nil
		}
	}

	for name, value := range filters {
		posting := idx.filterPosting(name, value)
		result = intersect(result, posting)
		if len(result) == 0 {
			return nil
		}
	}

	return result
}

func (idx *Index) filterPosting(name, value string) []int {
	byValue, ok := idx.filters[name]
	if !ok {
		return nil
	}
	return byValue[value]
}

// MatchFilter is the public form of filterPosting, used by callers
// (registry.Engine) that need a scope posting list directly rather
// than through a conjunctive Query.
func (idx *Index) MatchFilter(name, value string) []int {
	return idx.filterPosting(name, value)
}

// OrderAndLimit sorts ids with less (row-id ascending if less is
// nil), then truncates to limit (0 or negative means "no limit"). The
// contract is truncate-after-sort, not the reverse, so callers never
// lose a higher-priority hit to an early cutoff.
func OrderAndLimit(ids []int, less func(a, b int) bool, limit int) []int {
	out := make([]int, len(ids))
	copy(out, ids)

	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	} else {
		sort.Ints(out)
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func intersect(a, b []int) []int {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	setB := make(map[int]struct{}, len(b))
	for _, v := range b {
		setB[v] = struct{}{}
	}
	var out []int
	for _, v := range a {
		if _, ok := setB[v]; ok {
			out = append(out, v)
		}
	}
	return sortedUnique(out)
}

func sortedUnique(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
