package countries

import (
	"errors"
	"fmt"
	"net/url"

	"country-currency/core/logger"
	"country-currency/feature/countries/models"
	"country-currency/feature/countries/sources"
	"country-currency/feature/summary"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for countries.
type Handler struct {
	refresher *Refresher
	queries   *QueryService
	artifacts ArtifactGenerator
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(refresher *Refresher, queries *QueryService, artifacts ArtifactGenerator, logger *zap.Logger) *Handler {
	return &Handler{
		refresher: refresher,
		queries:   queries,
		artifacts: artifacts,
		logger:    logger,
	}
}

// RegisterRoutes registers the countries routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/countries")
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/refresh", h.HandleRefreshMethodNotAllowed)
	group.Get("/", h.HandleList)
	group.Get("/image", h.HandleImage)
	group.Get("/:name", h.HandleGet)
	group.Delete("/:name", h.HandleDelete)
}

// HandleRefresh runs a refresh.
// @Summary Refresh Countries
// @Description Fetches countries and exchange rates, reconciles them with the stored set and regenerates the summary image. Concurrent calls share one refresh.
// @Tags countries
// @Produce json
// @Success 200 {object} models.RefreshResponse "Refresh Result"
// @Failure 503 {object} models.ErrorResponse "External data source unavailable"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /countries/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	l.Info("Refresh requested")

	result, err := h.refresher.Refresh(c.UserContext())
	if err != nil {
		return h.writeError(c, l, err)
	}

	return c.JSON(models.RefreshResponse{
		Message:     "Countries refreshed successfully",
		Inserted:    result.Inserted,
		Updated:     result.Updated,
		Total:       result.Total,
		RefreshedAt: result.RefreshedAt,
	})
}

// HandleRefreshMethodNotAllowed rejects GET on the refresh endpoint.
// @Summary Refresh Countries (wrong method)
// @Tags countries
// @Produce json
// @Failure 405 {object} models.ErrorResponse "Method Not Allowed"
// @Router /countries/refresh [get]
func (h *Handler) HandleRefreshMethodNotAllowed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, fiber.MethodPost)
	return c.Status(fiber.StatusMethodNotAllowed).JSON(models.ErrorResponse{
		Error:   "Method Not Allowed",
		Details: "Please use POST /countries/refresh instead of GET",
	})
}

// HandleList lists countries.
// @Summary List Countries
// @Description Lists countries, optionally filtered by region and currency (case-insensitive) and sorted.
// @Tags countries
// @Produce json
// @Param region query string false "Region filter (e.g. 'Europe')"
// @Param currency query string false "Currency code filter (e.g. 'EUR')"
// @Param sort query string false "Sort order" Enums(gdp_desc, gdp_asc, name_asc, name_desc, population_desc, population_asc)
// @Success 200 {array} models.CountryResponse "Countries"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /countries [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	list, err := h.queries.List(c.UserContext(), ListQuery{
		Region:   c.Query("region"),
		Currency: c.Query("currency"),
		Sort:     c.Query("sort"),
	})
	if err != nil {
		return h.writeError(c, l, err)
	}

	out := make([]models.CountryResponse, 0, len(list))
	for i := range list {
		out = append(out, models.NewCountryResponse(&list[i]))
	}
	return c.JSON(out)
}

// HandleImage serves the summary image.
// @Summary Get Summary Image
// @Description Returns the PNG summary generated by the last successful refresh.
// @Tags countries
// @Produce png
// @Success 200 {file} binary "Summary Image"
// @Failure 404 {object} models.ErrorResponse "Summary image not found"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /countries/image [get]
func (h *Handler) HandleImage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if h.artifacts == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "Summary image not found"})
	}

	data, err := h.artifacts.Image(c.UserContext())
	if errors.Is(err, summary.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "Summary image not found"})
	}
	if err != nil {
		return h.writeError(c, l, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(data)
}

// HandleGet returns one country.
// @Summary Get Country
// @Description Returns the country whose name matches case-insensitively.
// @Tags countries
// @Produce json
// @Param name path string true "Country name (e.g. 'France')"
// @Success 200 {object} models.CountryResponse "Country"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 404 {object} models.ErrorResponse "Country not found"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /countries/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	country, err := h.queries.GetByName(c.UserContext(), nameParam(c))
	if err != nil {
		return h.writeError(c, l, err)
	}
	return c.JSON(models.NewCountryResponse(country))
}

// HandleDelete removes one country.
// @Summary Delete Country
// @Description Deletes the country whose name matches case-insensitively.
// @Tags countries
// @Produce json
// @Param name path string true "Country name (e.g. 'France')"
// @Success 200 {object} models.MessageResponse "Deleted"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 404 {object} models.ErrorResponse "Country not found"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /countries/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	name := nameParam(c)

	deleted, err := h.queries.DeleteByName(c.UserContext(), name)
	if err != nil {
		return h.writeError(c, l, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "Country not found"})
	}

	l.Info("Country deleted", zap.String("name", name))
	return c.JSON(models.MessageResponse{
		Message: fmt.Sprintf("Country '%s' deleted successfully", name),
	})
}

func nameParam(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

// writeError maps err to its status code and error body.
func (h *Handler) writeError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var (
		srcErr *sources.ExternalSourceError
		valErr *ValidationError
	)
	switch {
	case errors.As(err, &srcErr):
		l.Warn("External data source unavailable", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse{
			Error:   "External data source unavailable",
			Details: err.Error(),
		})
	case errors.As(err, &valErr):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "Validation failed",
			Details: valErr.Message,
		})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "Country not found"})
	default:
		l.Error("Request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Internal server error",
			Details: err.Error(),
		})
	}
}
