// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client for the few operations file based inventory feeds need:
// checking the bucket, listing feed files and streaming one of them. This supports both
// AWS S3 and self-hosted MinIO instances, so upstream partners can drop their daily stock
// files into a bucket instead of a local directory.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - LatestObject: Picks the newest object under a prefix (e.g. dated daily files).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	obj, ok, err := storage.LatestObject(ctx, client, "inventory", "be/stocks_quotidiens_")
package storage
