package status

import (
	"context"
	"errors"

	"country-currency/core/logger"
	"country-currency/feature/countries"
	"country-currency/feature/countries/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MetadataReader reads the refresh metadata row.
type MetadataReader interface {
	Current(ctx context.Context) (*models.RefreshMetadata, error)
}

// Handler handles HTTP requests for the service status.
type Handler struct {
	metadata MetadataReader
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(metadata MetadataReader, logger *zap.Logger) *Handler {
	return &Handler{metadata: metadata, logger: logger}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/status", h.HandleStatus)
}

// HandleStatus reports the outcome of the last successful refresh.
// @Summary Get Status
// @Description Returns the number of countries and the time of the last successful refresh. Before the first refresh the total is 0 and the timestamp null.
// @Tags status
// @Produce json
// @Success 200 {object} models.StatusResponse "Status"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	meta, err := h.metadata.Current(c.UserContext())
	if errors.Is(err, countries.ErrNoMetadata) {
		return c.JSON(models.StatusResponse{})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Status lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Internal server error",
			Details: err.Error(),
		})
	}

	refreshedAt := meta.LastRefreshedAt.UTC()
	return c.JSON(models.StatusResponse{
		TotalCountries:  meta.TotalCountries,
		LastRefreshedAt: &refreshedAt,
	})
}
