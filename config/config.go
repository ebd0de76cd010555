// Package config holds the YAML-driven configuration surface, in the
// same style as the teacher's database.Config/GeneratorConfig: a flat
// struct of plain fields, loaded with gopkg.in/yaml.v3 and otherwise
// left to zero values when a field is absent.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dataset configures where each entity kind's build artifacts come
// from and how the load/refresh pipeline should behave.
type Dataset struct {
	CountryPath    string `yaml:"country_path"`
	SubdivisionPath string `yaml:"subdivision_path"`
	LocalityPath   string `yaml:"locality_path"`

	// SQL source settings for dataset/sqlsource. geodex.Open does not
	// read them; every kind is built from its *Path file.
	SQLDriver string `yaml:"sql_driver"`
	SQLDSN    string `yaml:"sql_dsn"`

	// S3 ingest for the Locality dataset only: when S3Bucket is set,
	// geodex.Open fetches S3Key (dataset/fetch) and loads it instead of
	// LocalityPath.
	S3Bucket string `yaml:"s3_bucket"`
	S3Key    string `yaml:"s3_key"`
	S3Region string `yaml:"s3_region"`

	// ScoreWorkers bounds parallel candidate scoring (score.ScoreAll);
	// 0 or 1 means serial.
	ScoreWorkers int `yaml:"score_workers"`

	// SkipKinds names entity kinds to omit from the build, e.g.
	// ["locality"] for a country/subdivision-only deployment.
	SkipKinds []string `yaml:"skip_kinds"`

	// RefreshCron is a robfig/cron/v3 schedule string, six fields with
	// a leading seconds field, for periodic Locality dataset refetch
	// (dataset/refresh); empty disables it.
	RefreshCron string `yaml:"refresh_cron"`
}

// Load reads and parses a Dataset config from path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &d, nil
}

// SkipsKind reports whether kind is present in SkipKinds.
func (d *Dataset) SkipsKind(kind string) bool {
	for _, k := range d.SkipKinds {
		if k == kind {
			return true
		}
	}
	return false
}
