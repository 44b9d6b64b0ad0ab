// Package store persists finished documents. The S3 uploader is the normal
// destination; Dir keeps documents on the local filesystem for offline runs
// and tests. Both satisfy document.Store.
package store

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultTimeout bounds a single document upload.
const DefaultTimeout = 30 * time.Second

// Uploader stores documents in an S3 bucket with public-read object URLs.
type Uploader struct {
	client  *s3.Client
	bucket  string
	region  string
	timeout time.Duration
}

// NewUploader resolves AWS credentials from the environment and returns an
// uploader for the given bucket. A non-positive timeout falls back to
// DefaultTimeout.
func NewUploader(ctx context.Context, bucket, region string, timeout time.Duration) (*Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("store: load aws config: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Uploader{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		region:  region,
		timeout: timeout,
	}, nil
}

// Save uploads one document. The upload is bounded by the uploader's
// timeout on top of whatever deadline ctx already carries.
func (u *Uploader) Save(ctx context.Context, key string, body *bytes.Buffer) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body.Bytes()),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return &UploadError{Bucket: u.bucket, Key: key, Err: err}
	}
	return nil
}

// Link is the virtual-hosted URL the object will be readable at once saved.
func (u *Uploader) Link(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		u.bucket, u.region, url.PathEscape(key))
}

// UploadError reports a failed save with enough context to retry by hand.
type UploadError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("store: upload %q to bucket %s: %v", e.Key, e.Bucket, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
