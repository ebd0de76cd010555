// Package token builds the index token string for a record (spec
// §4.2). Token fields are entity-specific; the caller supplies them
// with the entity's own fields first and parent-entity fields last.
// The order is kept in the token string but does not affect scoring:
// score.Token treats the tokens as an unordered bag.
package token

import (
	"strings"

	"github.com/villagerdb/geodex/text"
)

// Fields concatenates the given field values with spaces, normalizes
// the result, and splits on whitespace. Empty fields contribute
// nothing. Duplicate tokens are preserved: the scorer and the FTS
// index both key off the exact token string, and repeated tokens
// (e.g. a city and its country sharing an alpha2) should not be
// silently deduplicated away.
func Fields(fields ...string) []string {
	joined := strings.Join(fields, " ")
	normalized := text.Normalize(joined)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// String is Fields joined back with single spaces -- the exact form
// persisted as a row's token string and consumed by both the FTS
// index and the scorer.
func String(fields ...string) string {
	return strings.Join(Fields(fields...), " ")
}
