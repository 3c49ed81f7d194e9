package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Country represents the 'countries' table.
// NameKey is the folded form of Name and carries the unique index that
// enforces case-insensitive name identity.
type Country struct {
	ID              string              `gorm:"column:id;type:varchar(36);primaryKey"`
	Name            string              `gorm:"column:name;type:varchar(255);not null"`
	NameKey         string              `gorm:"column:name_key;type:varchar(255);not null;uniqueIndex:idx_countries_name_key"`
	Capital         *string             `gorm:"column:capital;type:varchar(255)"`
	Region          *string             `gorm:"column:region;type:varchar(100);index:idx_countries_region"`
	Population      int64               `gorm:"column:population;not null"`
	CurrencyCode    *string             `gorm:"column:currency_code;type:varchar(10);index:idx_countries_currency_code"`
	ExchangeRate    decimal.NullDecimal `gorm:"column:exchange_rate;type:decimal(20,8)"`
	EstimatedGDP    decimal.NullDecimal `gorm:"column:estimated_gdp;type:decimal(30,4)"`
	FlagURL         *string             `gorm:"column:flag_url;type:varchar(500)"`
	LastRefreshedAt time.Time           `gorm:"column:last_refreshed_at;not null"`
}

// TableName overrides the table name used by Country to `countries`.
func (Country) TableName() string {
	return "countries"
}

// BeforeCreate assigns the immutable identity on first insertion.
func (c *Country) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// MetadataID is the primary key of the single RefreshMetadata row.
const MetadataID = 1

// RefreshMetadata represents the 'refresh_metadata' table.
// The table holds exactly one row, keyed by MetadataID.
type RefreshMetadata struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement:false"`
	LastRefreshedAt time.Time `gorm:"column:last_refreshed_at;not null"`
	TotalCountries  int64     `gorm:"column:total_countries;not null"`
}

// TableName overrides the table name used by RefreshMetadata to `refresh_metadata`.
func (RefreshMetadata) TableName() string {
	return "refresh_metadata"
}

// All lists every persisted model, in migration order.
func All() []any {
	return []any{&Country{}, &RefreshMetadata{}}
}
