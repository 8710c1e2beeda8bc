// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface covering what the
// object-storage snapshot backend needs, so that snapshots can live in AWS S3
// or a self-hosted MinIO instance. The interface makes it easy to mock storage
// interactions in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket on first save.
//   - PutObject: Uploads a snapshot document.
//   - GetObject: Retrieves a snapshot document as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
