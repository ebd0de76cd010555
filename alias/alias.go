// Package alias implements the static Alias Table (spec §4.8): a
// build-time mapping of colloquial country codes and names to their
// canonical identifiers, consulted before the normal indexes.
package alias

import "github.com/villagerdb/geodex/text"

// Table holds the two alias sub-tables spec §4.8 describes: codes
// (consulted during Country get) and names (consulted during Country
// lookup/search). Both are keyed on the normalized (text.Normalize)
// form of the alias, never the raw input, so callers normalize once
// and probe directly.
type Table struct {
	codes map[string]string
	names map[string]string
}

// DefaultCountryAliases is the built-in Country alias table. Entries
// mirror ISO 3166 colloquial usage and a handful of renamed countries
// that still appear under their old names in user input.
func DefaultCountryAliases() *Table {
	t := &Table{
		codes: map[string]string{
			"uk": "GB",
		},
		names: map[string]string{
			"america":         "United States",
			"usa":             "United States",
			"united states":   "United States",
			"uk":              "United Kingdom",
			"britain":         "United Kingdom",
			"great britain":   "United Kingdom",
			"burma":           "Myanmar",
			"czech republic":  "Czechia",
			"ivory coast":     "Cote d'Ivoire",
			"swaziland":       "Eswatini",
			"cape verde":      "Cabo Verde",
			"macedonia":       "North Macedonia",
			"holland":         "Netherlands",
			"south korea":     "Korea, Republic of",
			"north korea":     "Korea, Democratic People's Republic of",
			"russia":          "Russian Federation",
			"vatican":         "Holy See",
			"vatican city":    "Holy See",
			"laos":            "Lao People's Democratic Republic",
			"syria":           "Syrian Arab Republic",
			"iran":            "Iran, Islamic Republic of",
			"venezuela":       "Venezuela, Bolivarian Republic of",
			"bolivia":         "Bolivia, Plurinational State of",
			"tanzania":        "Tanzania, United Republic of",
			"moldova":         "Moldova, Republic of",
			"brunei":          "Brunei Darussalam",
			"vietnam":         "Viet Nam",
		},
	}
	normalizeKeys(t)
	return t
}

func normalizeKeys(t *Table) {
	t.codes = normalizeMap(t.codes)
	t.names = normalizeMap(t.names)
}

func normalizeMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[text.Normalize(k)] = v
	}
	return out
}

// ResolveCode looks up a normalized code alias (e.g. "uk" -> "GB").
// Unknown key passes through unchanged, per spec's "unknown key ->
// pass-through" rule.
func (t *Table) ResolveCode(normalizedKey string) string {
	if v, ok := t.codes[normalizedKey]; ok {
		return v
	}
	return normalizedKey
}

// ResolveName looks up a normalized name alias (e.g. "burma" ->
// "Myanmar"). Unknown key passes through unchanged.
func (t *Table) ResolveName(normalizedKey string) string {
	if v, ok := t.names[normalizedKey]; ok {
		return v
	}
	return normalizedKey
}
