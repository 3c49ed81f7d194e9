package metrics_test

import (
	"net/http/httptest"
	"testing"

	appmetrics "country-currency/core/metrics"
	"country-currency/core/middleware/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(metrics.New())
	app.Get("/countries/:name", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	counter := appmetrics.HTTPRequests.WithLabelValues("GET", "/countries/:name", "404")
	before := testutil.ToFloat64(counter)

	resp, err := app.Test(httptest.NewRequest("GET", "/countries/Nowhere", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
