package countries

import (
	"testing"
	"time"

	"country-currency/core/reconcile"
	"country-currency/feature/countries/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_UpdatePreservesIdentity(t *testing.T) {
	adapter := NewAdapter()
	now := time.Date(2025, 10, 22, 12, 0, 0, 0, time.UTC)
	persisted := []models.Country{{ID: "id-france", Name: "France", NameKey: "france", Population: 1}}
	code := "EUR"

	plan := reconcile.Reconcile(adapter, reconcile.Index(adapter, persisted), []models.MergedRecord{{
		Name:         "FRANCE",
		Population:   67000000,
		CurrencyCode: &code,
		ExchangeRate: decimal.NewNullDecimal(decimal.RequireFromString("0.92")),
	}}, now)

	require.Len(t, plan.Updates, 1)
	assert.Empty(t, plan.Inserts)
	c := plan.Updates[0]
	assert.Equal(t, "id-france", c.ID)
	assert.Equal(t, "France", c.Name)
	assert.Equal(t, int64(67000000), c.Population)
	assert.Equal(t, &code, c.CurrencyCode)
	assert.Equal(t, now, c.LastRefreshedAt)
}

func TestAdapter_CreateAssignsIdentity(t *testing.T) {
	adapter := NewAdapter()
	now := time.Now().UTC()

	c := adapter.Create(models.MergedRecord{Name: "Curaçao", Population: 150000}, now)

	assert.Len(t, c.ID, 36)
	assert.Equal(t, "Curaçao", c.Name)
	assert.Equal(t, "curaçao", c.NameKey)
	assert.Equal(t, now, c.LastRefreshedAt)
}

func TestAdapter_EntityKeyFallsBackToName(t *testing.T) {
	adapter := NewAdapter()

	assert.Equal(t, "france", adapter.EntityKey(&models.Country{Name: "France"}))
	assert.Equal(t, "stored", adapter.EntityKey(&models.Country{Name: "Other", NameKey: "stored"}))
	assert.Equal(t, "countries", adapter.Name())
}

func TestAdapter_ClearsFieldsMissingUpstream(t *testing.T) {
	adapter := NewAdapter()
	code := "EUR"
	c := &models.Country{
		Name:         "France",
		CurrencyCode: &code,
		ExchangeRate: decimal.NewNullDecimal(decimal.NewFromInt(1)),
		EstimatedGDP: decimal.NewNullDecimal(decimal.NewFromInt(5)),
	}

	adapter.Apply(c, models.MergedRecord{Name: "France"}, time.Now())

	assert.Nil(t, c.CurrencyCode)
	assert.False(t, c.ExchangeRate.Valid)
	assert.False(t, c.EstimatedGDP.Valid)
}
