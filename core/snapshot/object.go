package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"cached-inventory/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps the snapshot as a single object in a bucket.
type ObjectStore struct {
	client      storage.Client
	bucket      string
	object      string
	bucketReady atomic.Bool
}

// NewObjectStore creates an ObjectStore for bucket/object.
func NewObjectStore(client storage.Client, bucket, object string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, object: object}
}

// Location returns the snapshot URI.
func (s *ObjectStore) Location() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.object)
}

// Load downloads and decodes the snapshot object.
func (s *ObjectStore) Load(ctx context.Context) (map[int]int, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrapReadErr(err)
	}
	defer obj.Close()

	// The object is fetched lazily: a missing key surfaces on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.wrapReadErr(err)
	}

	return Decode(data)
}

// Save uploads snap, replacing the previous object. The bucket is created on first use.
func (s *ObjectStore) Save(ctx context.Context, snap map[int]int) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}

	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("put snapshot %s: %w", s.Location(), err)
	}
	return nil
}

func (s *ObjectStore) ensureBucket(ctx context.Context) error {
	if s.bucketReady.Load() {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", s.bucket, err)
		}
	}

	s.bucketReady.Store(true)
	return nil
}

func (s *ObjectStore) wrapReadErr(err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, s.Location())
	}
	return fmt.Errorf("get snapshot %s: %w", s.Location(), err)
}
