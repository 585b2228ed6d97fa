// Package objectstore wraps the S3 API that holds recording tracks,
// padded intermediates, and mixed audio. It targets AWS or any
// S3-compatible store (MinIO) via a custom endpoint, and classifies
// failures so callers can tell retryable conditions from terminal ones.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/monadical-sas/reflector/pkg/config"
)

// retryMaxAttempts bounds the SDK's built-in retryer, which already
// backs off exponentially on throttling and 5xx responses.
const retryMaxAttempts = 4

// Store is a thin wrapper around the S3 client. All operations take an
// explicit bucket: recordings arrive in the bucket named by the
// manifest, processed artifacts go to the configured default bucket.
type Store struct {
	client   *s3.Client
	presign  *s3.PresignClient
	uploader *manager.Uploader
	bucket   string
	logger   *slog.Logger
}

// ObjectInfo describes an object without fetching its body.
type ObjectInfo struct {
	Size         int64
	ContentType  string
	LastModified time.Time
}

// New builds a Store from static configuration. Credentials fall back
// to the default AWS chain when no access key is configured.
func New(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("objectstore: bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryMaxAttempts(retryMaxAttempts),
	}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.URL != "" {
			o.BaseEndpoint = aws.String(cfg.URL)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})
	return NewFromClient(client, cfg.Bucket), nil
}

// NewFromClient wraps an existing S3 client. Useful for tests.
func NewFromClient(client *s3.Client, defaultBucket string) *Store {
	return &Store{
		client:   client,
		presign:  s3.NewPresignClient(client),
		uploader: manager.NewUploader(client),
		bucket:   defaultBucket,
		logger:   slog.Default().With("component", "objectstore"),
	}
}

// Bucket returns the default bucket for processed artifacts.
func (s *Store) Bucket() string {
	return s.bucket
}

// Put streams body to bucket/key. Unseekable readers are uploaded in
// parts rather than buffered whole.
func (s *Store) Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return wrapErr("put", bucket, key, err)
	}
	return nil
}

// Get returns the object body. The caller must close it.
func (s *Store) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapErr("get", bucket, key, err)
	}
	return out.Body, nil
}

// Download copies the object body into dst and returns the byte count.
func (s *Store) Download(ctx context.Context, bucket, key string, dst io.Writer) (int64, error) {
	body, err := s.Get(ctx, bucket, key)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	n, err := io.Copy(dst, body)
	if err != nil {
		return n, wrapErr("download", bucket, key, err)
	}
	return n, nil
}

// Head returns object metadata, or ErrNotFound.
func (s *Store) Head(ctx context.Context, bucket, key string) (*ObjectInfo, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapErr("head", bucket, key, err)
	}
	return &ObjectInfo{
		Size:         aws.ToInt64(out.ContentLength),
		ContentType:  aws.ToString(out.ContentType),
		LastModified: aws.ToTime(out.LastModified),
	}, nil
}

// Exists reports whether the key is present.
func (s *Store) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.Head(ctx, bucket, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes the object. Deleting a missing key succeeds.
func (s *Store) Delete(ctx context.Context, bucket, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		werr := wrapErr("delete", bucket, key, err)
		if errors.Is(werr, ErrNotFound) {
			return nil
		}
		return werr
	}
	return nil
}

// List returns all keys under prefix, in lexical order.
func (s *Store) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapErr("list", bucket, prefix, err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}

// DeletePrefix removes every object under prefix and returns how many
// were deleted. An empty prefix is refused so a bad caller cannot wipe
// a bucket.
func (s *Store) DeletePrefix(ctx context.Context, bucket, prefix string) (int, error) {
	if prefix == "" {
		return 0, fmt.Errorf("objectstore: refusing to delete with empty prefix")
	}
	keys, err := s.List(ctx, bucket, prefix)
	if err != nil {
		return 0, err
	}
	for i, key := range keys {
		if err := s.Delete(ctx, bucket, key); err != nil {
			return i, err
		}
	}
	if len(keys) > 0 {
		s.logger.Debug("deleted objects under prefix",
			"bucket", bucket, "prefix", prefix, "count", len(keys))
	}
	return len(keys), nil
}

// PresignGet returns a time-limited GET URL consumable by external
// services (the transcription endpoint, webhook receivers).
func (s *Store) PresignGet(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", wrapErr("presign-get", bucket, key, err)
	}
	return req.URL, nil
}

// PresignPut returns a time-limited PUT URL.
func (s *Store) PresignPut(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", wrapErr("presign-put", bucket, key, err)
	}
	return req.URL, nil
}
