package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/redsource-ph/redsource-api/internal/config"
)

// ImageStore keeps event images in an S3 bucket. Records hold only the
// object key; URLs are resolved lazily on read and a blank key degrades
// to the placeholder instead of failing.
type ImageStore struct {
	client      *s3.Client
	bucket      string
	region      string
	publicURL   string
	placeholder string
}

func NewImageStore(cfg *config.Config) *ImageStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &ImageStore{
		client:      s3.New(opts),
		bucket:      cfg.S3Bucket,
		region:      cfg.S3Region,
		publicURL:   cfg.S3PublicURL,
		placeholder: cfg.PlaceholderImageURL,
	}
}

func (s *ImageStore) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}

// Delete is also the compensation step when a record insert fails after
// its image already landed in the bucket.
func (s *ImageStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *ImageStore) URL(key string) string {
	if key == "" {
		return s.placeholder
	}

	if s.publicURL != "" {
		return strings.TrimRight(s.publicURL, "/") + "/" + key
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
