package assets

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store uploads binaries to an S3 bucket under a fixed logical
// folder. The bucket is expected to be publicly readable (or fronted
// by a CDN) at the configured base URL.
type S3Store struct {
	client  *s3.Client
	bucket  string
	folder  string
	baseURL string
}

// NewS3Store loads AWS credentials from the default chain. When
// baseURL is empty the bucket's virtual-hosted URL for the region is
// used.
func NewS3Store(ctx context.Context, bucket, folder, region, baseURL string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &S3Store{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		folder:  folder,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *S3Store) Store(ctx context.Context, file io.Reader, originalName string) (string, error) {
	key := path.Join(s.folder, uploadName(originalName))

	contentType := mime.TypeByExtension(filepath.Ext(originalName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}
