// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface used to persist the
// cached summary artifact. This abstraction supports both AWS S3 and self-hosted
// MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket / EnsureBucket: bucket provisioning.
//   - PutObject: Uploads content; S3 replaces an existing object atomically.
//   - GetObject: Retrieves content as a stream; IsNotFound classifies misses.
//   - ListObjects: used by the integrity checks.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, "countries", "")
package storage
