package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalSource serves dataset files already present on disk under a
// root directory, for development or airgapped deployments that never
// touch S3.
type LocalSource struct {
	Root string
}

// NewLocalSource builds a LocalSource rooted at dir.
func NewLocalSource(dir string) *LocalSource {
	return &LocalSource{Root: dir}
}

// Fetch copies the file at Root/key into destDir, mirroring S3Source's
// contract so both can satisfy Source.
func (l *LocalSource) Fetch(_ context.Context, key string, destDir string) (string, error) {
	srcPath := filepath.Join(l.Root, key)
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("fetch: opening %s: %w", srcPath, err)
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("fetch: creating %s: %w", destDir, err)
	}
	localPath := filepath.Join(destDir, filepath.Base(key))
	dst, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("fetch: creating %s: %w", localPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("fetch: copying %s: %w", srcPath, err)
	}
	return localPath, nil
}
