package registry

import (
	"github.com/villagerdb/geodex/alias"
	"github.com/villagerdb/geodex/model"
	"github.com/villagerdb/geodex/score"
	"github.com/villagerdb/geodex/text"
)

// CountrySchema is the Schema value for the Country entity kind (spec
// §3.1, §4.2). Country has no parent scope, so ScopeFilterName is
// empty.
func CountrySchema() Schema[*model.Country] {
	return Schema[*model.Country]{
		Kind:          model.KindCountry,
		CanonicalKeys: []string{"alpha2", "alpha3", "numeric"},
		TokenScore: func(row *model.Country, query string) float64 {
			return score.Token(query, row.TokenString())
		},
	}
}

// CountryRegistry wraps Engine[*model.Country] with the Alias Table
// (spec §4.8) consultation Country's get/lookup/search apply before
// falling through to the normal indexes, and the by_alias aux op
// (spec §4.7 "Country: by_alias(a) -- resolves via C8").
type CountryRegistry struct {
	*Engine[*model.Country]
	aliases *alias.Table
}

// NewCountryRegistry builds a CountryRegistry. A nil aliases table
// falls back to alias.DefaultCountryAliases().
func NewCountryRegistry(loader Loader[*model.Country], autoLoad bool, aliases *alias.Table) *CountryRegistry {
	if aliases == nil {
		aliases = alias.DefaultCountryAliases()
	}
	return &CountryRegistry{
		Engine:  NewEngine(CountrySchema(), loader, autoLoad),
		aliases: aliases,
	}
}

// Get resolves a code alias (e.g. "uk" -> "GB") before delegating to
// the embedded Engine.Get, so registry.Get(Alpha2("uk")) finds the
// United Kingdom the same way registry.Get(Alpha2("GB")) does.
func (r *CountryRegistry) Get(keys ...Key) (*model.Country, bool, error) {
	if len(keys) == 1 && keys[0].Name == "alpha2" {
		normalized := text.Normalize(keys[0].Value)
		if resolved := r.aliases.ResolveCode(normalized); resolved != normalized {
			keys = []Key{Alpha2(resolved)}
		}
	}
	return r.Engine.Get(keys...)
}

// Lookup resolves a name alias (e.g. "burma" -> "Myanmar") before
// delegating to the embedded Engine.Lookup.
func (r *CountryRegistry) Lookup(name string) ([]*model.Country, error) {
	normalized := text.Normalize(name)
	if normalized == "" {
		return nil, nil
	}
	resolved := r.aliases.ResolveName(normalized)
	return r.Engine.Lookup(resolved, "")
}

// Search resolves a name alias before delegating to the embedded
// Engine.Search. Country has no parent scope.
func (r *CountryRegistry) Search(query string, limit int) ([]Result[*model.Country], error) {
	normalized := text.Normalize(query)
	if normalized == "" {
		return nil, nil
	}
	resolved := r.aliases.ResolveName(normalized)
	return r.Engine.Search(resolved, limit, "", nil)
}

// ByAlias resolves a via the code table first, then the name table,
// returning the matching Country.
func (r *CountryRegistry) ByAlias(a string) (*model.Country, bool, error) {
	normalized := text.Normalize(a)
	if normalized == "" {
		return nil, false, nil
	}
	if code := r.aliases.ResolveCode(normalized); code != normalized {
		if row, ok, err := r.Engine.Get(Alpha2(code)); err != nil {
			return nil, false, err
		} else if ok {
			return row, true, nil
		}
	}
	rows, err := r.Lookup(a)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}
