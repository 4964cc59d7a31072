package checks

import (
	"context"
	"fmt"

	"equipment-tracker/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ExportsPrefix is where history exports live in the bucket.
const ExportsPrefix = "exports/"

// StorageReport describes the export bucket.
type StorageReport struct {
	Bucket  string `json:"bucket"`
	Exists  bool   `json:"exists"`
	Exports int    `json:"exports"`
	Status  string `json:"status"` // "ok", "missing", "created"
}

// CheckStorage verifies the bucket exists and counts stored exports.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	report := &StorageReport{Bucket: bucket, Exists: exists, Status: "ok"}
	if !exists {
		report.Status = "missing"
		return report, nil
	}

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: ExportsPrefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list exports: %w", obj.Err)
		}
		report.Exports++
	}
	return report, nil
}

// FixStorage creates the bucket.
func FixStorage(ctx context.Context, client storage.Client, cfg storage.Config, logger *zap.Logger) error {
	if err := storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", cfg.Bucket), zap.Error(err))
		return err
	}
	logger.Info("Created missing bucket", zap.String("bucket", cfg.Bucket))
	return nil
}
