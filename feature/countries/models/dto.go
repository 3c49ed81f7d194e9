package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawCountry is one entry of the country source payload.
type RawCountry struct {
	Name       string     `json:"name" validate:"required"`
	Capital    string     `json:"capital"`
	Region     string     `json:"region"`
	Population int64      `json:"population" validate:"gte=0"`
	Flag       string     `json:"flag"`
	Currencies []Currency `json:"currencies"`
}

// Currency is one currency entry of a RawCountry.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// ExchangeRateResponse is the exchange-rate source payload.
// Rates hold target-currency units per 1 USD.
type ExchangeRateResponse struct {
	Result string                     `json:"result"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

// MergedRecord is a country joined with its currency's rate, ready to reconcile.
type MergedRecord struct {
	Name         string
	Capital      *string
	Region       *string
	Population   int64
	FlagURL      *string
	CurrencyCode *string
	ExchangeRate decimal.NullDecimal
	EstimatedGDP decimal.NullDecimal
}

// RefreshResult reports the outcome of a completed refresh.
type RefreshResult struct {
	Inserted          int       `json:"inserted"`
	Updated           int       `json:"updated"`
	Total             int64     `json:"total"`
	RefreshedAt       time.Time `json:"refreshed_at"`
	ArtifactGenerated bool      `json:"artifact_generated"`
}

// CountryResponse is the API representation of a Country.
type CountryResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Capital         *string   `json:"capital"`
	Region          *string   `json:"region"`
	Population      int64     `json:"population"`
	CurrencyCode    *string   `json:"currency_code"`
	ExchangeRate    *float64  `json:"exchange_rate"`
	EstimatedGDP    *float64  `json:"estimated_gdp"`
	FlagURL         *string   `json:"flag_url"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// NewCountryResponse converts a persisted Country into its API representation.
func NewCountryResponse(c *Country) CountryResponse {
	return CountryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Capital:         c.Capital,
		Region:          c.Region,
		Population:      c.Population,
		CurrencyCode:    c.CurrencyCode,
		ExchangeRate:    floatPtr(c.ExchangeRate),
		EstimatedGDP:    floatPtr(c.EstimatedGDP),
		FlagURL:         c.FlagURL,
		LastRefreshedAt: c.LastRefreshedAt,
	}
}

func floatPtr(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

// RefreshResponse is returned by POST /countries/refresh.
type RefreshResponse struct {
	Message     string    `json:"message"`
	Inserted    int       `json:"inserted"`
	Updated     int       `json:"updated"`
	Total       int64     `json:"total"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	TotalCountries  int64      `json:"total_countries"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body of every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
