// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so snapshots can be read straight from AWS S3 or a
// self-hosted MinIO instance. Only the calls needed to fetch an object are exposed,
// which keeps the mock in core/storage/mocks small.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	blob, err := storage.ReadObject(ctx, client, "snapshots", "2024/new.csv")
package storage
