package countries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"country-currency/feature/countries/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetadataTracker maintains the single refresh_metadata row.
type MetadataTracker struct {
	db *gorm.DB
}

// NewMetadataTracker creates a new metadata tracker.
func NewMetadataTracker(db *gorm.DB) *MetadataTracker {
	return &MetadataTracker{db: db}
}

// RecordRefresh creates the metadata row or updates it in place, inside tx.
func (m *MetadataTracker) RecordRefresh(tx *gorm.DB, refreshedAt time.Time, total int64) error {
	row := models.RefreshMetadata{
		ID:              models.MetadataID,
		LastRefreshedAt: refreshedAt,
		TotalCountries:  total,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_refreshed_at", "total_countries"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to record refresh metadata: %w", err)
	}
	return nil
}

// Current returns the metadata row, or ErrNoMetadata before the first refresh.
func (m *MetadataTracker) Current(ctx context.Context) (*models.RefreshMetadata, error) {
	var row models.RefreshMetadata
	err := m.db.WithContext(ctx).First(&row, models.MetadataID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoMetadata
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read refresh metadata: %w", err)
	}
	return &row, nil
}
