package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"country-currency/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport is the result of a storage structure check.
type StorageReport struct {
	BucketExists bool     `json:"bucket_exists"`
	Missing      []string `json:"missing"`
}

// CheckStorage reports whether the bucket exists and which prefixes hold no object.
// A missing bucket reports every prefix as missing.
func CheckStorage(ctx context.Context, client storage.Client, bucket string, prefixes []string) (*StorageReport, error) {
	report := &StorageReport{Missing: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.Missing = append(report.Missing, prefixes...)
		return report, nil
	}

	for _, prefix := range prefixes {
		opts := minio.ListObjectsOptions{
			Prefix:    folderPath(prefix),
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			found = obj.Err == nil
			break
		}

		if !found {
			report.Missing = append(report.Missing, prefix)
		}
	}

	return report, nil
}

// FixStorage creates the bucket if needed and a placeholder for each missing prefix.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger, missing []string) error {
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		return err
	}

	for _, prefix := range missing {
		path := folderPath(prefix)
		_, err := client.PutObject(ctx, bucket, path, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", prefix), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", prefix))
	}
	return nil
}

// CheckObject reports whether the exact object key exists.
func CheckObject(ctx context.Context, client storage.Client, bucket, object string) (bool, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return false, nil
	}

	opts := minio.ListObjectsOptions{
		Prefix:    object,
		Recursive: false,
		MaxKeys:   1,
	}

	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list %s: %w", object, obj.Err)
		}
		return obj.Key == object, nil
	}
	return false, nil
}

func folderPath(prefix string) string {
	if strings.HasSuffix(prefix, "/") {
		return prefix
	}
	return prefix + "/"
}
