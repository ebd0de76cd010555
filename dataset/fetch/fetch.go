// Package fetch retrieves dataset files (the Locality JSONL file in
// particular, spec §5's "Unloaded→Loaded" event) from wherever they
// actually live before dataset.LoadLocalities can parse them.
package fetch

import "context"

// Source downloads a dataset file to a local path, returning that
// path so the caller can hand it straight to the dataset package's
// loaders.
type Source interface {
	Fetch(ctx context.Context, key string, destDir string) (localPath string, err error)
}
