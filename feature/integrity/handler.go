package integrity

import (
	"errors"

	"country-currency/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/artifact", h.HandleArtifactCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the schema, storage and artifact checks.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.UserContext()
	report := make(map[string]interface{})

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = errorEntry(err)
	} else {
		report["schema"] = schema
	}

	if st, err := h.service.CheckStorage(ctx); err != nil {
		report["storage"] = errorEntry(err)
	} else {
		report["storage"] = st
	}

	if art, err := h.service.CheckArtifact(ctx); err != nil {
		report["artifact"] = errorEntry(err)
	} else {
		report["artifact"] = art
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks database schema integrity.
// @Summary Check Database Schema
// @Description Checks if the database schema matches the expected models.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the artifact bucket.
// @Summary Check Storage
// @Description Checks if the artifact bucket and its prefixes exist. Optionally fixes them.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create the bucket and missing prefixes"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 409 {object} map[string]string "Storage Disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"
	ctx := c.UserContext()

	report, err := h.service.CheckStorage(ctx)
	if err != nil {
		return h.fail(c, l, "Storage check failed", err)
	}

	if !report.BucketExists || len(report.Missing) > 0 {
		l.Warn("Storage structure incomplete",
			zap.Bool("bucket_exists", report.BucketExists),
			zap.Strings("missing", report.Missing))

		if fix {
			l.Info("Attempting to fix storage structure")
			if err := h.service.FixStorage(ctx, report.Missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix storage",
					"details": err.Error(),
					"missing": report.Missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  report.Missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":        "checked",
		"bucket_exists": report.BucketExists,
		"missing":       report.Missing,
	})
}

// HandleArtifactCheck checks that the summary image exists in storage.
// @Summary Check Summary Artifact
// @Description Verifies that the summary image has been generated.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} integrity.ArtifactReport "Artifact Report"
// @Failure 409 {object} map[string]string "Storage Disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/artifact [get]
func (h *Handler) HandleArtifactCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckArtifact(c.UserContext())
	if err != nil {
		return h.fail(c, l, "Artifact check failed", err)
	}
	if !report.Present {
		l.Warn("Summary artifact missing", zap.String("object", report.Object))
	}

	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	if errors.Is(err, ErrStorageDisabled) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func errorEntry(err error) map[string]interface{} {
	status := "error"
	if errors.Is(err, ErrStorageDisabled) {
		status = "skipped"
	}
	return map[string]interface{}{"status": status, "error": err.Error()}
}
