package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Source fetches dataset objects from an S3-compatible bucket.
type S3Source struct {
	client *s3.Client
	bucket string
}

// NewS3Source builds an S3Source for the given bucket/region, loading
// credentials from the default AWS provider chain.
func NewS3Source(ctx context.Context, bucket, region string) (*S3Source, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("fetch: loading AWS config: %w", err)
	}
	return &S3Source{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// Fetch downloads the object at key into destDir, returning the local
// path it was written to.
func (s *S3Source) Fetch(ctx context.Context, key string, destDir string) (string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("fetch: GetObject s3://%s/%s: %w", s.bucket, key, err)
	}
	defer out.Body.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("fetch: creating %s: %w", destDir, err)
	}
	localPath := filepath.Join(destDir, filepath.Base(key))
	f, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("fetch: creating %s: %w", localPath, err)
	}
	defer f.Close()

	if _, err := f.ReadFrom(out.Body); err != nil {
		return "", fmt.Errorf("fetch: writing %s: %w", localPath, err)
	}
	return localPath, nil
}
