package score

import (
	"strings"
)

// Field is one named, weighted input to FieldWeighted.
type Field struct {
	Name   string
	Value  string
	Weight float64
}

// LocalityFields returns the field set and weights spec §4.7 fixes
// for the Locality field-weighted scorer.
func LocalityFields(name, altNames, admin1, admin2, country string) []Field {
	return []Field{
		{Name: "name", Value: name, Weight: 1.0},
		{Name: "alt_names", Value: altNames, Weight: 1.5},
		{Name: "admin1", Value: admin1, Weight: 0.2},
		{Name: "admin2", Value: admin2, Weight: 0.1},
		{Name: "country", Value: country, Weight: 0.2},
	}
}

// fieldAcceptFloor is the per-field acceptance bar below which a
// field does not contribute to the weighted sum (spec §4.7: "if >=
// 0.5 the field contributes").
const fieldAcceptFloor = 0.5

// FieldWeighted implements the Locality field-weighted scorer (spec
// §4.7): each field's similarity is the Levenshtein ratio (Similarity)
// against the query, unweighted by anything else. A field only
// contributes if its ratio clears fieldAcceptFloor.
func FieldWeighted(fields []Field, query string) float64 {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0
	}

	var weightedSum, weightUsed float64
	for _, f := range fields {
		if f.Value == "" || f.Weight <= 0 {
			continue
		}
		ratio := float64(Similarity(f.Value, query)) / 100
		if ratio < fieldAcceptFloor {
			continue
		}
		weightedSum += ratio * f.Weight
		weightUsed += f.Weight
	}

	if weightUsed == 0 {
		return 0
	}
	return weightedSum / weightUsed
}
