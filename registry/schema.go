package registry

import "github.com/villagerdb/geodex/model"

// Schema parameterizes Engine per entity kind (spec §9 Design Notes:
// "Registry[Model, DTO] hierarchy -> registry.Engine generic over
// model.Record, parameterized per entity kind by registry.Schema").
// Countries, Subdivisions, and Localities are Schema values built by
// the registry/country.go, subdivision.go, and locality.go
// constructors, not separate types.
type Schema[T model.Record] struct {
	Kind model.Kind

	// CanonicalKeys are the secondary-key names Get recognizes besides
	// RowIDKeyName, e.g. {"alpha2", "alpha3", "numeric"} for Country.
	CanonicalKeys []string

	// ScopeFilterName is the FTS filter name Lookup/Search narrow by
	// when a caller supplies a scope value, e.g. "country_alpha2" for
	// Subdivision, "" for Country (Country has no parent scope).
	ScopeFilterName string

	// TokenScore is the token-coverage scorer (score.Token) bound to
	// this entity's token-string accessor.
	TokenScore func(row T, query string) float64

	// FieldScore is the field-weighted scorer, or nil for entities
	// that don't define one (only Locality does). Engine.Search uses
	// it instead of TokenScore when the caller supplies field filters
	// and FieldScore is non-nil (spec §9 Design Notes ambiguity ii).
	FieldScore func(row T, query string) float64
}
