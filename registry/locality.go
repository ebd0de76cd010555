package registry

import (
	"sort"

	"github.com/villagerdb/geodex/errs"
	"github.com/villagerdb/geodex/model"
	"github.com/villagerdb/geodex/score"
	"github.com/villagerdb/geodex/store"
)

// LocalitySchema is the Schema value for the Locality entity kind
// (spec §3.3, §4.2). It defines both scorer variants: TokenScore
// (default) and FieldScore (selected by Engine.Search when the caller
// supplies field filters, per spec §9 Design Notes ambiguity ii).
func LocalitySchema() Schema[*model.Locality] {
	return Schema[*model.Locality]{
		Kind:            model.KindLocality,
		CanonicalKeys:   []string{"osm_key"},
		ScopeFilterName: "country_alpha2",
		TokenScore: func(row *model.Locality, query string) float64 {
			return score.Token(query, row.TokenString())
		},
		FieldScore: func(row *model.Locality, query string) float64 {
			altNames := joinOtherNames(row.OtherNames)
			fields := score.LocalityFields(row.Name, altNames, row.SubdivisionName, row.SubdivisionLocalCode, row.CountryName)
			return score.FieldWeighted(fields, query)
		},
	}
}

func joinOtherNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += " "
		}
		out += n
	}
	return out
}

// LocalityRegistry wraps Engine[*model.Locality] with the two aux ops
// spec §4.7 names (for_country, for_subdivision) and a Get that
// accepts the "type:id" OSM key wire format directly (spec §6).
//
// Unlike Country and Subdivision, a Locality registry does not
// auto-load: its dataset is fetched from an external source (spec §5
// "A Locality registry additionally recognizes an Unloaded->Loaded
// refetch"), so callers must call Load (or dataset/refresh's
// scheduler must) before querying.
type LocalityRegistry struct {
	*Engine[*model.Locality]
}

func NewLocalityRegistry(loader Loader[*model.Locality]) *LocalityRegistry {
	return &LocalityRegistry{Engine: NewEngine(LocalitySchema(), loader, false)}
}

// Get accepts either the raw osm_key canonical form or a "type:id"
// string in either short or long form (spec §6); it re-derives the
// canonical form before delegating, so "node:123" and "n:123" find
// the same row.
func (r *LocalityRegistry) Get(osmID string) (*model.Locality, bool, error) {
	typ, id, err := model.ParseOSMKey(osmID)
	if err != nil {
		return nil, false, err
	}
	return r.Engine.Get(OSMIDKey(model.OSMKey(typ, id)))
}

// PopulationFilter narrows a for_country/for_subdivision result by
// population. At most one of LessThan/GreaterThan may be set; setting
// both is a ConflictingFilters error (spec §4.7, §7).
type PopulationFilter struct {
	LessThan    *int
	GreaterThan *int
}

func (f PopulationFilter) validate() error {
	if f.LessThan != nil && f.GreaterThan != nil {
		return errs.New(errs.ConflictingFilters, "population__lt and population__gt are mutually exclusive")
	}
	return nil
}

func (f PopulationFilter) accepts(population int) bool {
	if f.LessThan != nil && population >= *f.LessThan {
		return false
	}
	if f.GreaterThan != nil && population <= *f.GreaterThan {
		return false
	}
	return true
}

// ForCountry returns every Locality belonging to countryAlpha2,
// optionally post-filtered by population.
func (r *LocalityRegistry) ForCountry(countryAlpha2 string, pop PopulationFilter) ([]*model.Locality, error) {
	if err := pop.validate(); err != nil {
		return nil, err
	}
	st, idx, err := r.Engine.ensureLoaded()
	if err != nil {
		return nil, err
	}
	ids := idx.MatchFilter("country_alpha2", countryAlpha2)
	return r.materialize(st, ids, pop), nil
}

// ForSubdivision returns every Locality belonging to
// subdivisionISOCode, optionally post-filtered by population.
func (r *LocalityRegistry) ForSubdivision(subdivisionISOCode string, pop PopulationFilter) ([]*model.Locality, error) {
	if err := pop.validate(); err != nil {
		return nil, err
	}
	st, idx, err := r.Engine.ensureLoaded()
	if err != nil {
		return nil, err
	}
	ids := idx.MatchFilter("subdivision_iso_code", subdivisionISOCode)
	return r.materialize(st, ids, pop), nil
}

func (r *LocalityRegistry) materialize(st *store.Store[*model.Locality], ids []int, pop PopulationFilter) []*model.Locality {
	rows := make([]*model.Locality, 0, len(ids))
	for _, id := range ids {
		row, ok := st.ByRowID(id)
		if !ok || !pop.accepts(row.Population) {
			continue
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows
}
