// Package testutil holds fixture builders shared across the dataset
// and registry test suites, in the same role as the teacher's
// testutil package (shared helpers a package's own _test.go files
// would otherwise duplicate) -- adapted from "build a DDL test case
// from a YAML fixture" to "write a small Country/Subdivision/Locality
// dataset fixture to a temp file".
package testutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/villagerdb/geodex/util"
)

func init() {
	util.InitSlog()

	// Suppress INFO-level dataset-load logging in test output; set
	// LOG_LEVEL=debug/info to see it again.
	if os.Getenv("LOG_LEVEL") == "" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
		slog.SetDefault(slog.New(handler))
	}
}

// WriteFixture writes contents to name inside a fresh t.TempDir and
// returns the path.
func WriteFixture(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("testutil: writing %s: %v", path, err)
	}
	return path
}

// CountryCSV is a small, deterministic Country dataset fixture
// covering the three countries the rest of the test suites reference
// (US, GB, FR).
const CountryCSV = "" +
	"#country_code_alpha2,country_code_alpha3,numeric_code,name_short,name_long,aliases\n" +
	"US,USA,840,United States,United States of America,America;USA\n" +
	"GB,GBR,826,United Kingdom,United Kingdom of Great Britain and Northern Ireland,UK\n" +
	"FR,FRA,250,France,French Republic,\n"

// SubdivisionCSV is a small Subdivision dataset fixture whose rows
// reference CountryCSV's countries.
const SubdivisionCSV = "" +
	"subdivision_code_iso3166-2,subdivision_name,category,localVariant,parent_subdivision,country_code_alpha2\n" +
	"US-WI,Wisconsin,state,,,US\n" +
	"US-CA,California,state,,,US\n" +
	"FR-75,Paris,department,,,FR\n"

// LocalityJSONL is a small Locality dataset fixture whose rows
// reference SubdivisionCSV's subdivisions.
const LocalityJSONL = "" +
	`{"osm_id":123456,"osm_type":"n","name":"Madison","classification":"city","population":269840,"location":[-89.4012,43.0731],"address":{"country_code":"US","subdivision_code":"US-WI"}}` + "\n" +
	`{"osm_id":234567,"osm_type":"n","name":"Milwaukee","classification":"city","population":577222,"location":[-87.9065,43.0389],"address":{"country_code":"US","subdivision_code":"US-WI"}}` + "\n" +
	`{"osm_id":345678,"osm_type":"r","name":"Paris","other_names":{"fr":"Paris"},"classification":"city","population":2148000,"location":[2.3522,48.8566],"address":{"country_code":"FR","subdivision_code":"FR-75"}}` + "\n"

// CountryFixturePath writes CountryCSV to a temp file and returns its path.
func CountryFixturePath(t *testing.T) string {
	return WriteFixture(t, "countries.csv", CountryCSV)
}

// SubdivisionFixturePath writes SubdivisionCSV to a temp file and returns its path.
func SubdivisionFixturePath(t *testing.T) string {
	return WriteFixture(t, "subdivisions.csv", SubdivisionCSV)
}

// LocalityFixturePath writes LocalityJSONL to a temp file and returns its path.
func LocalityFixturePath(t *testing.T) string {
	return WriteFixture(t, "localities.jsonl", LocalityJSONL)
}
