package countries

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"country-currency/core/database"
	"country-currency/feature/countries/models"
	"country-currency/feature/summary"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// fixedRand always returns v, clamped to the requested range.
type fixedRand int

func (f fixedRand) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

type fakeFetcher struct {
	countries    []models.RawCountry
	rates        map[string]decimal.Decimal
	countriesErr error
	ratesErr     error

	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (f *fakeFetcher) FetchCountries(ctx context.Context) ([]models.RawCountry, error) {
	f.calls.Add(1)
	if f.started != nil {
		f.once.Do(func() { close(f.started) })
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.countriesErr != nil {
		return nil, f.countriesErr
	}
	return f.countries, nil
}

func (f *fakeFetcher) FetchExchangeRates(_ context.Context) (map[string]decimal.Decimal, error) {
	if f.ratesErr != nil {
		return nil, f.ratesErr
	}
	return f.rates, nil
}

type fakeArtifacts struct {
	mu       sync.Mutex
	last     *summary.Summary
	image    []byte
	genErr   error
	generate int
}

func (a *fakeArtifacts) Generate(_ context.Context, s summary.Summary) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.generate++
	if a.genErr != nil {
		return a.genErr
	}
	a.last = &s
	a.image = []byte("\x89PNG-fake")
	return nil
}

func (a *fakeArtifacts) Image(_ context.Context) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.image == nil {
		return nil, summary.ErrNotFound
	}
	return a.image, nil
}

func raw(name string, population int64, region string, codes ...string) models.RawCountry {
	rc := models.RawCountry{Name: name, Population: population, Region: region, Capital: name + " City"}
	for _, c := range codes {
		rc.Currencies = append(rc.Currencies, models.Currency{Code: c})
	}
	return rc
}

func rates(pairs ...string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out[pairs[i]] = decimal.RequireFromString(pairs[i+1])
	}
	return out
}

func newTestRefresher(db *gorm.DB, fetcher *fakeFetcher, artifacts ArtifactGenerator, now time.Time) *Refresher {
	r := NewRefresher(db, fetcher, artifacts, zap.NewNop())
	r.merger = NewMerger(fixedRand(0), zap.NewNop())
	r.now = func() time.Time { return now }
	return r
}

func newNopLogger() *zap.Logger {
	return zap.NewNop()
}
