package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "countries", Country{}.TableName())
	assert.Equal(t, "refresh_metadata", RefreshMetadata{}.TableName())
	assert.Len(t, All(), 2)
}

func TestCountry_BeforeCreate(t *testing.T) {
	c := &Country{}
	require.NoError(t, c.BeforeCreate(nil))
	assert.Len(t, c.ID, 36)

	fixed := &Country{ID: "keep-me"}
	require.NoError(t, fixed.BeforeCreate(nil))
	assert.Equal(t, "keep-me", fixed.ID)
}

func TestNewCountryResponse(t *testing.T) {
	region := "Europe"
	now := time.Date(2025, 10, 22, 12, 0, 0, 0, time.UTC)
	c := &Country{
		ID:              "id-1",
		Name:            "France",
		Region:          &region,
		Population:      67000000,
		ExchangeRate:    decimal.NewNullDecimal(decimal.RequireFromString("0.92")),
		LastRefreshedAt: now,
	}

	resp := NewCountryResponse(c)

	assert.Equal(t, "France", resp.Name)
	assert.Equal(t, &region, resp.Region)
	require.NotNil(t, resp.ExchangeRate)
	assert.InDelta(t, 0.92, *resp.ExchangeRate, 1e-9)
	assert.Nil(t, resp.EstimatedGDP)
	assert.Nil(t, resp.Capital)
	assert.Equal(t, now, resp.LastRefreshedAt)
}
