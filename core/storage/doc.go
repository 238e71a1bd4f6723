// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the dashboard
// needs for user uploads such as avatars. Both AWS S3 and self-hosted MinIO work.
//
// The Client interface keeps handlers testable with the testify mock in
// core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	err = storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region)
//	url := storage.ObjectURL(cfg, "avatars/7/me.png")
package storage
