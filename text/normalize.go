// Package text implements the canonical normalization pipeline (spec
// §4.1) shared by the tokenizer, the full-text index, and the scorer.
// Normalize is deterministic and idempotent: Normalize(Normalize(s))
// always equals Normalize(s).
package text

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s to its canonical search form:
//  1. lowercase
//  2. NFKD decomposition, then strip combining marks; any rune that
//     still isn't ASCII after that is transliterated with unidecode
//  3. delete everything that isn't a letter, digit, or space
//  4. collapse whitespace runs and trim
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	lowered := strings.ToLower(s)
	folded := foldDiacritics(lowered)
	filtered := filterLetterDigitSpace(folded)
	return collapseSpace(filtered)
}

// foldDiacritics performs NFKD decomposition and drops combining
// marks, then unidecodes any rune that is still non-ASCII (Cyrillic,
// Arabic, CJK, ...) to its closest ASCII equivalent. A plain
// NFKD-and-ascii-drop approach would make those scripts vanish
// instead of fold, which is why unidecode runs on the leftovers.
func foldDiacritics(s string) string {
	decomposed := norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			// combining mark produced by decomposition (e.g. the
			// combining acute accent split off of "í")
			continue
		}
		if r < unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		// unidecode may emit capitals (e.g. "Dong " for a CJK rune),
		// so its output is lowercased to keep Normalize idempotent.
		b.WriteString(strings.ToLower(unidecode.Unidecode(string(r))))
	}
	return b.String()
}

func filterLetterDigitSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func collapseSpace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
