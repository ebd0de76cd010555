package registry

import (
	"sort"
	"sync"

	"github.com/villagerdb/geodex/model"
	"github.com/villagerdb/geodex/score"
)

// SubdivisionSchema is the Schema value for the Subdivision entity
// kind (spec §3.2, §4.2). Lookup and Search narrow by country via the
// "country_alpha2" FTS filter.
func SubdivisionSchema() Schema[*model.Subdivision] {
	return Schema[*model.Subdivision]{
		Kind:            model.KindSubdivision,
		CanonicalKeys:   []string{"iso_code"},
		ScopeFilterName: "country_alpha2",
		TokenScore: func(row *model.Subdivision, query string) float64 {
			return score.Token(query, row.TokenString())
		},
	}
}

// SubdivisionRegistry wraps Engine[*model.Subdivision] with the two
// aux ops spec §4.7 names: by_country and categories_for_country.
type SubdivisionRegistry struct {
	*Engine[*model.Subdivision]

	mu              sync.Mutex
	categoriesCache map[string][]string
}

func NewSubdivisionRegistry(loader Loader[*model.Subdivision], autoLoad bool) *SubdivisionRegistry {
	return &SubdivisionRegistry{
		Engine:          NewEngine(SubdivisionSchema(), loader, autoLoad),
		categoriesCache: make(map[string][]string),
	}
}

// ByCountry returns every Subdivision belonging to countryAlpha2.
func (r *SubdivisionRegistry) ByCountry(countryAlpha2 string) ([]*model.Subdivision, error) {
	st, idx, err := r.Engine.ensureLoaded()
	if err != nil {
		return nil, err
	}
	ids := idx.MatchFilter("country_alpha2", countryAlpha2)
	rows := make([]*model.Subdivision, 0, len(ids))
	for _, id := range ids {
		if row, ok := st.ByRowID(id); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// CategoriesForCountry returns the distinct Category values among
// countryAlpha2's subdivisions, sorted. Results are cached per
// country code since the dataset is immutable after load.
func (r *SubdivisionRegistry) CategoriesForCountry(countryAlpha2 string) ([]string, error) {
	r.mu.Lock()
	if cached, ok := r.categoriesCache[countryAlpha2]; ok {
		r.mu.Unlock()
		return cached, nil
	}
	r.mu.Unlock()

	rows, err := r.ByCountry(countryAlpha2)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, row := range rows {
		if row.Category == "" {
			continue
		}
		if _, ok := seen[row.Category]; ok {
			continue
		}
		seen[row.Category] = struct{}{}
		categories = append(categories, row.Category)
	}
	sort.Strings(categories)

	r.mu.Lock()
	r.categoriesCache[countryAlpha2] = categories
	r.mu.Unlock()
	return categories, nil
}
