package countries

import (
	"country-currency/feature/countries/sources"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	refresher *Refresher
	metadata  *MetadataTracker
	handler   *Handler
}

// NewFeature creates a new Countries feature.
func NewFeature(db *gorm.DB, fetcher sources.Fetcher, artifacts ArtifactGenerator, logger *zap.Logger) *Feature {
	refresher := NewRefresher(db, fetcher, artifacts, logger)
	queries := NewQueryService(NewRepository(db))
	return &Feature{
		refresher: refresher,
		metadata:  NewMetadataTracker(db),
		handler:   NewHandler(refresher, queries, artifacts, logger),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "countries"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Refresher returns the refresh orchestrator.
func (f *Feature) Refresher() *Refresher {
	return f.refresher
}

// Metadata returns the refresh metadata tracker.
func (f *Feature) Metadata() *MetadataTracker {
	return f.metadata
}
