/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination keystore_mocks_test.go -package keystore_test -source=keystore.go -mock_names s3Client=MockS3Client

package keystore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrBlobNotFound is returned when the requested key does not exist in the bucket.
var ErrBlobNotFound = errors.New("blob not found")

type s3Client interface {
	GetObject(
		ctx context.Context,
		input *s3.GetObjectInput,
		opts ...func(*s3.Options),
	) (*s3.GetObjectOutput, error)

	HeadBucket(
		ctx context.Context,
		input *s3.HeadBucketInput,
		opts ...func(*s3.Options),
	) (*s3.HeadBucketOutput, error)
}

// Store reads key material blobs from a single S3 bucket.
type Store struct {
	s3Client  s3Client
	bucket    string
	keyPrefix string
}

// Opt configures Store.
type Opt func(s *Store)

// WithKeyPrefix places every blob name under prefix inside the bucket.
func WithKeyPrefix(prefix string) Opt {
	return func(s *Store) {
		s.keyPrefix = prefix
	}
}

// NewStore creates Store.
func NewStore(
	s3Client s3Client,
	bucket string,
	opts ...Opt,
) *Store {
	s := &Store{
		s3Client: s3Client,
		bucket:   bucket,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (p *Store) objectKey(blobName string) string {
	if p.keyPrefix == "" {
		return blobName
	}

	return path.Join(p.keyPrefix, blobName)
}

// Download returns the content of the named blob.
func (p *Store) Download(ctx context.Context, blobName string) ([]byte, error) {
	resp, err := p.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(p.objectKey(blobName)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: %s/%s", ErrBlobNotFound, p.bucket, blobName)
		}

		return nil, fmt.Errorf("get blob %s/%s: %w", p.bucket, blobName, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read blob %s/%s: %w", p.bucket, blobName, err)
	}

	return content, nil
}

// Ping checks that the bucket exists and is accessible.
func (p *Store) Ping(ctx context.Context) error {
	if _, err := p.s3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(p.bucket),
	}); err != nil {
		return fmt.Errorf("head bucket %s: %w", p.bucket, err)
	}

	return nil
}
