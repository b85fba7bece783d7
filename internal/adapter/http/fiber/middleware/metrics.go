package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-repo/bss-ve/internal/observability/telemetry"
)

// Metrics counts requests per method, route and status for Prometheus.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = StatusFor(err)
		}

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		telemetry.HTTPRequestsTotal.WithLabelValues(
			c.Method(),
			path,
			strconv.Itoa(status),
		).Inc()

		return err
	}
}
