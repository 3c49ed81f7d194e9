package countries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"country-currency/core/utils"
	"country-currency/feature/countries/models"

	"gorm.io/gorm"
)

// mutableColumns are written on update. id and name are never rewritten.
var mutableColumns = []string{
	"name_key",
	"capital",
	"region",
	"population",
	"currency_code",
	"exchange_rate",
	"estimated_gdp",
	"flag_url",
	"last_refreshed_at",
}

// sortOrders maps the accepted sort keys to ORDER BY clauses. Missing GDP
// sorts as 0.
var sortOrders = map[string]string{
	"gdp_desc":        "COALESCE(estimated_gdp, 0) DESC, name_key ASC",
	"gdp_asc":         "COALESCE(estimated_gdp, 0) ASC, name_key ASC",
	"population_desc": "population DESC, name_key ASC",
	"population_asc":  "population ASC, name_key ASC",
	"name_asc":        "name_key ASC",
	"name_desc":       "name_key DESC",
}

const insertBatchSize = 100

// ListQuery filters and orders a country listing. Empty fields are ignored.
type ListQuery struct {
	Region   string
	Currency string
	Sort     string
}

// Repository persists countries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new countries repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// LoadAll returns every persisted country in one query.
func (r *Repository) LoadAll(ctx context.Context) ([]models.Country, error) {
	var out []models.Country
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to load countries: %w", err)
	}
	return out, nil
}

// Persist inserts the new countries and writes the mutable columns of the
// updated ones.
func (r *Repository) Persist(ctx context.Context, inserts, updates []*models.Country) error {
	db := r.db.WithContext(ctx)

	if len(inserts) > 0 {
		if err := db.CreateInBatches(inserts, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert countries: %w", err)
		}
	}

	for _, c := range updates {
		if err := db.Model(c).Select(mutableColumns).Updates(c).Error; err != nil {
			return fmt.Errorf("failed to update country %s: %w", c.Name, err)
		}
	}
	return nil
}

// Count returns the number of persisted countries.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Country{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count countries: %w", err)
	}
	return total, nil
}

// List returns the countries matching q. Filters compare case-insensitively;
// an unknown sort key keeps the natural order.
func (r *Repository) List(ctx context.Context, q ListQuery) ([]models.Country, error) {
	db := r.db.WithContext(ctx).Model(&models.Country{})

	if region := strings.TrimSpace(q.Region); region != "" {
		db = db.Where("LOWER(region) = LOWER(?)", region)
	}
	if currency := strings.TrimSpace(q.Currency); currency != "" {
		db = db.Where("LOWER(currency_code) = LOWER(?)", currency)
	}
	if order, ok := sortOrders[strings.ToLower(strings.TrimSpace(q.Sort))]; ok {
		db = db.Order(order)
	}

	out := []models.Country{}
	if err := db.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return out, nil
}

// FindByName returns the country whose name matches case-insensitively.
func (r *Repository) FindByName(ctx context.Context, name string) (*models.Country, error) {
	var c models.Country
	err := r.db.WithContext(ctx).Where("name_key = ?", utils.NameKey(name)).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find country %s: %w", name, err)
	}
	return &c, nil
}

// DeleteByName removes the country matching name and reports whether a row
// was removed.
func (r *Repository) DeleteByName(ctx context.Context, name string) (bool, error) {
	res := r.db.WithContext(ctx).Where("name_key = ?", utils.NameKey(name)).Delete(&models.Country{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete country %s: %w", name, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// TopByGDP returns up to limit countries with a positive estimated GDP,
// highest first.
func (r *Repository) TopByGDP(ctx context.Context, limit int) ([]models.Country, error) {
	var out []models.Country
	err := r.db.WithContext(ctx).
		Where("estimated_gdp IS NOT NULL AND estimated_gdp > 0").
		Order("estimated_gdp DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load top countries: %w", err)
	}
	return out, nil
}
