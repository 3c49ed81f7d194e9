package countries

import (
	"math/rand/v2"
	"strings"

	"country-currency/core/metrics"
	"country-currency/core/utils"
	"country-currency/feature/countries/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RandSource yields uniformly distributed integers in [0, n).
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand draws from the process-wide math/rand/v2 generator, which is
// safe for concurrent use.
var DefaultRand RandSource = globalRand{}

const (
	gdpMultiplierMin = 1000
	gdpMultiplierMax = 2000
	// gdpScale matches the fractional digits of the estimated_gdp column.
	gdpScale = 4
)

// Merger validates raw countries and joins them with the rate table.
type Merger struct {
	validate *validator.Validate
	rnd      RandSource
	logger   *zap.Logger
}

// NewMerger creates a merger drawing GDP multipliers from rnd.
func NewMerger(rnd RandSource, logger *zap.Logger) *Merger {
	if rnd == nil {
		rnd = DefaultRand
	}
	return &Merger{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		rnd:      rnd,
		logger:   logger,
	}
}

// MergeAll merges every valid raw record, preserving input order.
// Records with an empty name or a negative population are dropped and logged.
func (m *Merger) MergeAll(raw []models.RawCountry, rates map[string]decimal.Decimal) []models.MergedRecord {
	merged := make([]models.MergedRecord, 0, len(raw))
	for i := range raw {
		rc := raw[i]
		rc.Name = strings.TrimSpace(rc.Name)
		if err := m.validate.Struct(rc); err != nil {
			m.logger.Warn("Dropping invalid country record",
				zap.Int("index", i),
				zap.String("name", rc.Name),
				zap.Error(err))
			metrics.DroppedRecords.Inc()
			continue
		}
		merged = append(merged, Merge(rc, rates, m.rnd))
	}
	return merged
}

// Merge joins one raw country with its currency's rate and derives the
// estimated GDP as population × m / rate, m drawn from [1000, 2000].
//
//   - no currency: GDP 0, rate absent.
//   - currency without a usable rate: GDP and rate absent.
func Merge(raw models.RawCountry, rates map[string]decimal.Decimal, rnd RandSource) models.MergedRecord {
	rec := models.MergedRecord{
		Name:       strings.TrimSpace(raw.Name),
		Capital:    utils.StringPtr(raw.Capital),
		Region:     utils.StringPtr(raw.Region),
		Population: raw.Population,
		FlagURL:    utils.StringPtr(raw.Flag),
	}

	code := firstCurrencyCode(raw.Currencies)
	if code == "" {
		rec.EstimatedGDP = decimal.NewNullDecimal(decimal.Zero)
		return rec
	}
	rec.CurrencyCode = &code

	rate, ok := lookupRate(rates, code)
	if !ok {
		return rec
	}

	multiplier := gdpMultiplierMin + rnd.IntN(gdpMultiplierMax-gdpMultiplierMin+1)
	gdp := decimal.NewFromInt(raw.Population).
		Mul(decimal.NewFromInt(int64(multiplier))).
		DivRound(rate, gdpScale)

	rec.ExchangeRate = decimal.NewNullDecimal(rate)
	rec.EstimatedGDP = decimal.NewNullDecimal(gdp)
	return rec
}

func firstCurrencyCode(currencies []models.Currency) string {
	if len(currencies) == 0 {
		return ""
	}
	return strings.TrimSpace(currencies[0].Code)
}

// lookupRate tries the code as given, then upper-cased. A non-positive rate
// counts as missing.
func lookupRate(rates map[string]decimal.Decimal, code string) (decimal.Decimal, bool) {
	rate, ok := rates[code]
	if !ok {
		rate, ok = rates[strings.ToUpper(code)]
	}
	if !ok || !rate.IsPositive() {
		return decimal.Decimal{}, false
	}
	return rate, true
}
