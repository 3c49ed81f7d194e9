package sources

import "time"

// Config holds configuration for the upstream data sources.
type Config struct {
	// CountriesURL returns the JSON array of countries.
	CountriesURL string `mapstructure:"countries_url" default:"https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"`
	// RatesURL returns the USD based exchange-rate table.
	RatesURL string `mapstructure:"rates_url" default:"https://open.er-api.com/v6/latest/USD"`
	// TimeoutSeconds bounds each fetch. Clamped to MaxTimeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// BreakerFailures is the number of consecutive failures that opens a source's breaker.
	BreakerFailures uint32 `mapstructure:"breaker_failures" default:"5"`
	// BreakerOpenSeconds is how long an open breaker rejects calls before probing again.
	BreakerOpenSeconds int `mapstructure:"breaker_open_seconds" default:"60"`
}

const (
	// DefaultTimeout applies when TimeoutSeconds is not positive.
	DefaultTimeout = 60 * time.Second
	// MaxTimeout is the upper bound of a single fetch.
	MaxTimeout = 120 * time.Second

	defaultBreakerFailures = 5
	defaultBreakerOpen     = 60 * time.Second
)

// Timeout returns the effective per-fetch timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	d := time.Duration(c.TimeoutSeconds) * time.Second
	if d > MaxTimeout {
		return MaxTimeout
	}
	return d
}

func (c Config) breakerFailures() uint32 {
	if c.BreakerFailures == 0 {
		return defaultBreakerFailures
	}
	return c.BreakerFailures
}

func (c Config) breakerOpen() time.Duration {
	if c.BreakerOpenSeconds <= 0 {
		return defaultBreakerOpen
	}
	return time.Duration(c.BreakerOpenSeconds) * time.Second
}
