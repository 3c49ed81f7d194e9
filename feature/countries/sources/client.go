package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"country-currency/core/metrics"
	"country-currency/feature/countries/models"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// Fetcher retrieves the raw datasets a refresh is built from.
type Fetcher interface {
	// FetchCountries returns the raw country list. An empty list is an error.
	FetchCountries(ctx context.Context) ([]models.RawCountry, error)
	// FetchExchangeRates returns target-currency units per 1 USD, keyed by code.
	FetchExchangeRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// Client fetches both sources over HTTP. Each source has its own breaker.
// Calls are never retried.
type Client struct {
	http      *http.Client
	cfg       Config
	timeout   time.Duration
	logger    *zap.Logger
	countries *gobreaker.CircuitBreaker[any]
	rates     *gobreaker.CircuitBreaker[any]
}

// NewClient creates a new sources client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout()
	return &Client{
		http:      &http.Client{Timeout: timeout},
		cfg:       cfg,
		timeout:   timeout,
		logger:    logger,
		countries: newBreaker(SourceCountries, cfg, logger),
		rates:     newBreaker(SourceRates, cfg, logger),
	}
}

// FetchCountries retrieves the raw country list.
func (c *Client) FetchCountries(ctx context.Context) ([]models.RawCountry, error) {
	return execute(c.countries, SourceCountries, func() ([]models.RawCountry, error) {
		var payload []models.RawCountry
		if err := c.get(ctx, SourceCountries, c.cfg.CountriesURL, &payload); err != nil {
			return nil, err
		}
		if len(payload) == 0 {
			return nil, &ExternalSourceError{Source: SourceCountries, Reason: ReasonEmpty}
		}
		return payload, nil
	})
}

// FetchExchangeRates retrieves the USD based rate table.
func (c *Client) FetchExchangeRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	return execute(c.rates, SourceRates, func() (map[string]decimal.Decimal, error) {
		var payload models.ExchangeRateResponse
		if err := c.get(ctx, SourceRates, c.cfg.RatesURL, &payload); err != nil {
			return nil, err
		}
		if payload.Result != "" && !strings.EqualFold(payload.Result, "success") {
			return nil, &ExternalSourceError{
				Source: SourceRates,
				Reason: ReasonUnsuccessful,
				Err:    fmt.Errorf("result %q", payload.Result),
			}
		}
		if len(payload.Rates) == 0 {
			return nil, &ExternalSourceError{Source: SourceRates, Reason: ReasonEmpty}
		}
		return payload.Rates, nil
	})
}

// get performs one bounded GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, source, url string, out any) (err error) {
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		metrics.SourceFetchDuration.WithLabelValues(source, outcome).Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return &ExternalSourceError{Source: source, Reason: ReasonTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &ExternalSourceError{Source: source, Reason: failureReason(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return &ExternalSourceError{
			Source: source,
			Reason: ReasonStatus,
			Err:    fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		reason := ReasonDecode
		if isTimeout(err) {
			reason = ReasonTimeout
		}
		return &ExternalSourceError{Source: source, Reason: reason, Err: err}
	}

	c.logger.Debug("Fetched upstream source",
		zap.String("source", source),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func failureReason(err error) string {
	if isTimeout(err) {
		return ReasonTimeout
	}
	return ReasonTransport
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
