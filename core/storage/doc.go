// Package storage provides an abstraction layer for S3 compatible object storage.
//
// It wraps the MinIO Go client behind the Client interface so the reports and
// integrity features can be tested against core/storage/mocks. The tracker stores
// history exports here; equipment data itself lives in the relational database.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
package storage
