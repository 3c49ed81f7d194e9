package metrics

import (
	"strconv"
	"time"

	appmetrics "country-currency/core/metrics"

	"github.com/gofiber/fiber/v2"
)

// New returns a middleware recording request counts and latencies.
// Routes are labelled by their registered pattern to keep cardinality bounded.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		method := c.Method()
		appmetrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		appmetrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}
