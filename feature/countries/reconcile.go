package countries

import (
	"time"

	"country-currency/core/reconcile"
	"country-currency/core/utils"
	"country-currency/feature/countries/models"

	"github.com/google/uuid"
)

// Adapter reconciles merged records against persisted countries by folded name.
type Adapter struct {
	newID func() string
}

var _ reconcile.Adapter[models.Country, models.MergedRecord] = (*Adapter)(nil)

// NewAdapter creates the countries reconcile adapter.
func NewAdapter() *Adapter {
	return &Adapter{newID: uuid.NewString}
}

// Name returns the adapter name.
func (a *Adapter) Name() string {
	return "countries"
}

// EntityKey returns the stored name key, deriving it for rows that predate it.
func (a *Adapter) EntityKey(c *models.Country) string {
	if c.NameKey != "" {
		return c.NameKey
	}
	return utils.NameKey(c.Name)
}

// ItemKey returns the folded name of a merged record.
func (a *Adapter) ItemKey(r models.MergedRecord) string {
	return utils.NameKey(r.Name)
}

// Apply overwrites the mutable fields. ID and Name are never touched.
func (a *Adapter) Apply(c *models.Country, r models.MergedRecord, now time.Time) {
	if c.NameKey == "" {
		c.NameKey = utils.NameKey(c.Name)
	}
	c.Capital = r.Capital
	c.Region = r.Region
	c.Population = r.Population
	c.CurrencyCode = r.CurrencyCode
	c.ExchangeRate = r.ExchangeRate
	c.EstimatedGDP = r.EstimatedGDP
	c.FlagURL = r.FlagURL
	c.LastRefreshedAt = now
}

// Create builds a new country with a fresh ID and the incoming name casing.
func (a *Adapter) Create(r models.MergedRecord, now time.Time) *models.Country {
	c := &models.Country{
		ID:      a.newID(),
		Name:    r.Name,
		NameKey: utils.NameKey(r.Name),
	}
	a.Apply(c, r, now)
	return c
}
