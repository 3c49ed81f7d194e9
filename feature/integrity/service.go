package integrity

import (
	"context"
	"errors"
	"path"

	"country-currency/core/storage"
	"country-currency/feature/countries/models"
	"country-currency/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageDisabled is returned by storage checks when no object storage is configured.
var ErrStorageDisabled = errors.New("object storage is not configured")

// ArtifactReport is the result of the summary artifact check.
type ArtifactReport struct {
	Object  string `json:"object"`
	Present bool   `json:"present"`
}

// Service handles integrity checks.
type Service struct {
	client     storage.Client
	bucket     string
	region     string
	objectName string
	logger     *zap.Logger
	db         *gorm.DB
}

// NewService creates a new integrity service. client may be nil when the
// artifact lives on the filesystem; storage checks then report ErrStorageDisabled.
func NewService(client storage.Client, bucket, region, objectName string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client:     client,
		bucket:     bucket,
		region:     region,
		objectName: objectName,
		logger:     logger,
		db:         db,
	}
}

// Prefixes returns the storage prefixes the service expects to exist.
func (s *Service) Prefixes() []string {
	dir := path.Dir(s.objectName)
	if dir == "." || dir == "/" {
		return []string{}
	}
	return []string{dir}
}

// CheckSchema compares the database tables with the persisted models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.All()...)
}

// CheckStorage reports the bucket state and the missing prefixes.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, s.Prefixes())
}

// FixStorage creates the bucket and the missing prefixes.
func (s *Service) FixStorage(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixStorage(ctx, s.client, s.bucket, s.region, s.logger, missing)
}

// CheckArtifact reports whether the summary image has been generated.
func (s *Service) CheckArtifact(ctx context.Context) (*ArtifactReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	present, err := checks.CheckObject(ctx, s.client, s.bucket, s.objectName)
	if err != nil {
		return nil, err
	}
	return &ArtifactReport{Object: s.objectName, Present: present}, nil
}
