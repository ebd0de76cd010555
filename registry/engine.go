// Package registry composes the lower-level core packages (text,
// token, store, fts, expand, score, alias) into the get/lookup/search
// facade spec §4.7 describes, generic over the three entity kinds via
// Schema.
package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"sync"

	"github.com/villagerdb/geodex/errs"
	"github.com/villagerdb/geodex/expand"
	"github.com/villagerdb/geodex/fts"
	"github.com/villagerdb/geodex/model"
	"github.com/villagerdb/geodex/score"
	"github.com/villagerdb/geodex/store"
	"github.com/villagerdb/geodex/text"
)

// AcceptFloor is the candidate-acceptance floor (spec §4.6/§9 Design
// Notes): a Search match scoring below this is dropped, regardless of
// the per-token scorer floor already applied inside score.Token.
const AcceptFloor = 0.35

// DefaultLimit is used when Search is called with limit <= 0.
const DefaultLimit = 5

// Loader builds the immutable store and index pair for one entity
// kind. It runs at most once per Engine (Load is idempotent).
type Loader[T model.Record] func() (*store.Store[T], *fts.Index, error)

// Engine is the per-entity-kind registry facade (spec §4.7),
// parameterized by Schema[T]. Countries, Subdivisions, and Localities
// are distinct Engine[*model.Country] / Engine[*model.Subdivision] /
// Engine[*model.Locality] instances built with different Schema
// values, not different types.
type Engine[T model.Record] struct {
	schema Schema[T]
	loader Loader[T]

	// autoLoad controls the NotLoaded lifecycle (spec §5): Country and
	// Subdivision engines load transparently on first access;
	// Locality engines require an explicit Load/Reload call first,
	// since that step involves a dataset download.
	autoLoad bool

	// ScoreWorkers configures score.ScoreAll's fan-out. 0 or 1 means
	// serial scoring.
	ScoreWorkers int

	mu     sync.RWMutex
	store  *store.Store[T]
	idx    *fts.Index
	loaded bool
}

// NewEngine constructs an Engine that is not yet loaded.
func NewEngine[T model.Record](schema Schema[T], loader Loader[T], autoLoad bool) *Engine[T] {
	return &Engine[T]{schema: schema, loader: loader, autoLoad: autoLoad}
}

// Load runs the loader and populates the engine, if it hasn't already
// run. Safe to call concurrently; safe to call more than once.
func (e *Engine[T]) Load() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loaded {
		return nil
	}
	st, idx, err := e.loader()
	if err != nil {
		return fmt.Errorf("registry: loading %s dataset: %w", e.schema.Kind, err)
	}
	e.store = st
	e.idx = idx
	e.loaded = true
	slog.Info("dataset loaded", "kind", e.schema.Kind.String(), "rows", st.Len())
	return nil
}

// Reload re-runs the loader unconditionally and swaps it in atomically
// on success, leaving the previous store/index in place if the loader
// fails. Used by the Locality dataset's periodic refetch (spec §5
// "Unloaded->Loaded ... periodic refresh").
func (e *Engine[T]) Reload() error {
	st, idx, err := e.loader()
	if err != nil {
		return fmt.Errorf("registry: reloading %s dataset: %w", e.schema.Kind, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store = st
	e.idx = idx
	e.loaded = true
	slog.Info("dataset reloaded", "kind", e.schema.Kind.String(), "rows", st.Len())
	return nil
}

// Loaded reports whether Load has completed successfully.
func (e *Engine[T]) Loaded() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loaded
}

func (e *Engine[T]) ensureLoaded() (*store.Store[T], *fts.Index, error) {
	e.mu.RLock()
	if e.loaded {
		st, idx := e.store, e.idx
		e.mu.RUnlock()
		return st, idx, nil
	}
	e.mu.RUnlock()

	if !e.autoLoad {
		return nil, nil, errs.ErrNotLoaded
	}
	if err := e.Load(); err != nil {
		return nil, nil, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store, e.idx, nil
}

// Snapshot returns the engine's backing store and index, loading the
// dataset first if autoLoad permits it. Used by dataset loaders that
// need to resolve rows in another entity kind's registry (e.g.
// Subdivision resolving its parent Country) without duplicating that
// kind's ingest.
func (e *Engine[T]) Snapshot() (*store.Store[T], *fts.Index, error) {
	return e.ensureLoaded()
}

// Count returns the number of rows, loading the dataset first if
// necessary.
func (e *Engine[T]) Count() (int, error) {
	st, _, err := e.ensureLoaded()
	if err != nil {
		return 0, err
	}
	return st.Len(), nil
}

// Get resolves exactly one canonical-key argument to a single row
// (spec §4.7 get). Zero keys is treated like any other empty input:
// an empty result, not an error. More than one key is AmbiguousKey;
// an unrecognized key name is UnknownField.
func (e *Engine[T]) Get(keys ...Key) (T, bool, error) {
	var zero T
	if len(keys) == 0 {
		return zero, false, nil
	}
	if len(keys) > 1 {
		return zero, false, errs.ErrAmbiguousKey
	}
	k := keys[0]

	st, _, err := e.ensureLoaded()
	if err != nil {
		return zero, false, err
	}

	if k.Name == RowIDKeyName {
		id, convErr := strconv.Atoi(k.Value)
		if convErr != nil {
			return zero, false, errs.New(errs.InvalidIdentifier, "row_id must be numeric")
		}
		row, ok := st.ByRowID(id)
		return row, ok, nil
	}

	if !contains(e.schema.CanonicalKeys, k.Name) {
		return zero, false, errs.New(errs.UnknownField, fmt.Sprintf("unknown key %q for %s", k.Name, e.schema.Kind))
	}
	row, ok := st.ByKey(k.Name, k.Value)
	return row, ok, nil
}

// Lookup resolves an exact, case/diacritic-insensitive name match
// (spec §4.7 lookup), optionally narrowed by a scope value (e.g. a
// country code for Subdivision). Empty input returns an empty result.
func (e *Engine[T]) Lookup(name, scopeValue string) ([]T, error) {
	st, idx, err := e.ensureLoaded()
	if err != nil {
		return nil, err
	}

	normalized := text.Normalize(name)
	if normalized == "" {
		return nil, nil
	}

	ids := st.ByNormalizedName(normalized)
	if len(ids) == 0 {
		return nil, nil
	}
	if scopeValue != "" && e.schema.ScopeFilterName != "" {
		scopeIDs := idx.MatchFilter(e.schema.ScopeFilterName, scopeValue)
		ids = filterOrdered(ids, scopeIDs)
	}

	rows := make([]T, 0, len(ids))
	for _, id := range ids {
		if row, ok := st.ByRowID(id); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Result pairs a matched row with its search score.
type Result[T model.Record] struct {
	Row   T
	Score float64
}

// Search runs the full fuzzy pipeline (spec §4.7 search): normalize,
// expand (C5), score (C6), filter by AcceptFloor, rank by (score
// desc, row-id asc), truncate to limit.
func (e *Engine[T]) Search(query string, limit int, scopeValue string, fieldFilters map[string]string) ([]Result[T], error) {
	st, idx, err := e.ensureLoaded()
	if err != nil {
		return nil, err
	}

	normalized := text.Normalize(query)
	if normalized == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	filters := make(map[string]string, len(fieldFilters)+1)
	for k, v := range fieldFilters {
		filters[k] = v
	}
	if scopeValue != "" && e.schema.ScopeFilterName != "" {
		filters[e.schema.ScopeFilterName] = scopeValue
	}

	scorer := e.schema.TokenScore
	if e.schema.FieldScore != nil && len(fieldFilters) > 0 {
		scorer = e.schema.FieldScore
	}
	scoreOf := func(id int) float64 {
		row, ok := st.ByRowID(id)
		if !ok {
			return 0
		}
		return scorer(row, normalized)
	}

	candidates := expand.Expand(normalized, limit, filters, idx, scoreOf)
	if len(candidates) == 0 {
		return nil, nil
	}

	scores := score.ScoreAll(candidates, e.ScoreWorkers, scoreOf)

	// Exact dominates (spec §8.3): a candidate whose normalized name
	// equals the normalized query scores 1.0 outright, regardless of
	// what the token/field scorer computes from its other fields.
	exact := make(map[int]struct{})
	for _, id := range st.ByNormalizedName(normalized) {
		exact[id] = struct{}{}
	}

	kept := make([]Result[T], 0, len(candidates))
	for id, s := range scores {
		if _, ok := exact[id]; ok {
			s = 1.0
		}
		if s < AcceptFloor {
			continue
		}
		row, ok := st.ByRowID(id)
		if !ok {
			continue
		}
		kept = append(kept, Result[T]{Row: row, Score: s})
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return kept[i].Row.RowID() < kept[j].Row.RowID()
	})
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept, nil
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// filterOrdered keeps the elements of ids that also appear in allow,
// preserving ids' original order (insertion order of the
// normalized-name multimap, not sorted).
func filterOrdered(ids, allow []int) []int {
	if len(allow) == 0 {
		return nil
	}
	set := make(map[int]struct{}, len(allow))
	for _, v := range allow {
		set[v] = struct{}{}
	}
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
