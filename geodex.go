// Package geodex is the embedded geographic reference library: exact
// get-by-ID, exact lookup-by-name, and fuzzy ranked search over
// Country, Subdivision, and Locality datasets (spec §1-§4).
package geodex

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/villagerdb/geodex/alias"
	"github.com/villagerdb/geodex/config"
	"github.com/villagerdb/geodex/dataset"
	"github.com/villagerdb/geodex/dataset/fetch"
	"github.com/villagerdb/geodex/dataset/refresh"
	"github.com/villagerdb/geodex/fts"
	"github.com/villagerdb/geodex/model"
	"github.com/villagerdb/geodex/registry"
	"github.com/villagerdb/geodex/store"
)

// Geodex is the top-level handle a caller opens once and holds for
// the process lifetime. Subdivision's loader depends on Countries'
// backing store; Locality's depends on both.
type Geodex struct {
	Countries    *registry.CountryRegistry
	Subdivisions *registry.SubdivisionRegistry
	Localities   *registry.LocalityRegistry

	scheduler *refresh.Scheduler
}

// Open builds a Geodex from cfg. Country and Subdivision loaders run
// lazily on first access (spec §5); Locality requires an explicit
// Load call (registry.LocalityRegistry.Load) unless cfg.RefreshCron
// is set, in which case Open starts the periodic refetch itself.
func Open(cfg *config.Dataset) (*Geodex, error) {
	if cfg == nil {
		cfg = &config.Dataset{}
	}

	countries := registry.NewCountryRegistry(
		func() (*store.Store[*model.Country], *fts.Index, error) {
			if cfg.SkipsKind("country") {
				return emptyStore[*model.Country](), fts.NewBuilder().Build(), nil
			}
			st, idx, report, err := dataset.LoadCountries(cfg.CountryPath, dataset.NullLogger{})
			if err != nil {
				return nil, nil, err
			}
			slog.Info("dataset built", "kind", "country", "build_id", report.BuildID, "rows_read", report.RowsRead, "rows_dropped", report.RowsDropped)
			return st, idx, nil
		},
		true,
		alias.DefaultCountryAliases(),
	)

	subdivisions := registry.NewSubdivisionRegistry(
		func() (*store.Store[*model.Subdivision], *fts.Index, error) {
			if cfg.SkipsKind("subdivision") {
				return emptyStore[*model.Subdivision](), fts.NewBuilder().Build(), nil
			}
			countryStore, _, err := countries.Engine.Snapshot()
			if err != nil {
				return nil, nil, fmt.Errorf("geodex: loading countries for subdivision build: %w", err)
			}
			st, idx, report, err := dataset.LoadSubdivisions(cfg.SubdivisionPath, countryStore, dataset.NullLogger{})
			if err != nil {
				return nil, nil, err
			}
			slog.Info("dataset built", "kind", "subdivision", "build_id", report.BuildID, "rows_read", report.RowsRead, "rows_dropped", report.RowsDropped)
			return st, idx, nil
		},
		true,
	)

	localityLoader := func() (*store.Store[*model.Locality], *fts.Index, error) {
		if cfg.SkipsKind("locality") {
			return emptyStore[*model.Locality](), fts.NewBuilder().Build(), nil
		}
		countryStore, _, err := countries.Engine.Snapshot()
		if err != nil {
			return nil, nil, fmt.Errorf("geodex: loading countries for locality build: %w", err)
		}
		subdivisionStore, _, err := subdivisions.Engine.Snapshot()
		if err != nil {
			return nil, nil, fmt.Errorf("geodex: loading subdivisions for locality build: %w", err)
		}
		path := cfg.LocalityPath
		if cfg.S3Bucket != "" {
			fetched, err := fetchLocalityArchive(cfg)
			if err != nil {
				return nil, nil, err
			}
			path = fetched
		}
		st, idx, report, err := dataset.LoadLocalities(path, countryStore, subdivisionStore, dataset.NullLogger{})
		if err != nil {
			return nil, nil, err
		}
		slog.Info("dataset built", "kind", "locality", "build_id", report.BuildID, "rows_read", report.RowsRead, "rows_dropped", report.RowsDropped)
		return st, idx, nil
	}
	localities := registry.NewLocalityRegistry(localityLoader)

	countries.ScoreWorkers = cfg.ScoreWorkers
	subdivisions.ScoreWorkers = cfg.ScoreWorkers
	localities.ScoreWorkers = cfg.ScoreWorkers

	g := &Geodex{Countries: countries, Subdivisions: subdivisions, Localities: localities}

	if cfg.RefreshCron != "" && !cfg.SkipsKind("locality") {
		g.scheduler = refresh.NewScheduler(slog.Default())
		rebuild := func(ctx context.Context) error {
			return localities.Engine.Reload()
		}
		if err := g.scheduler.Start(context.Background(), cfg.RefreshCron, rebuild); err != nil {
			return nil, fmt.Errorf("geodex: starting locality refresh scheduler: %w", err)
		}
	}

	return g, nil
}

// Close stops the refresh scheduler, if one was started.
func (g *Geodex) Close() {
	if g.scheduler != nil {
		g.scheduler.Stop()
	}
}

// emptyStore returns a zero-row store, used when cfg.SkipKinds names
// an entity kind: the registry still loads successfully (autoLoad
// stays meaningful, Count/Search just return nothing) instead of
// requiring a dataset path the caller deliberately omitted.
func emptyStore[T model.Record]() *store.Store[T] {
	return store.NewBuilder[T]().Build()
}

func fetchLocalityArchive(cfg *config.Dataset) (string, error) {
	src, err := fetch.NewS3Source(context.Background(), cfg.S3Bucket, cfg.S3Region)
	if err != nil {
		return "", err
	}
	return src.Fetch(context.Background(), cfg.S3Key, ".")
}

// Default opens a Geodex using the dataset paths conventional for an
// unconfigured deployment (spec §9 Design Notes): country/subdivision
// CSVs checked into the module, no locality dataset loaded until the
// caller supplies one via config or Localities.Load.
func Default() (*Geodex, error) {
	return Open(&config.Dataset{
		CountryPath:     "testdata/countries.csv",
		SubdivisionPath: "testdata/subdivisions.csv",
	})
}
