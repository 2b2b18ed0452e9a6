package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/route-weather-service/internal/pkg/metrics"
)

// Metrics пишет счётчик и длительность запросов по шаблону маршрута
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "/" {
			route = r.Path
		}
		metrics.ObserveHTTP(route, c.Method(), status, start)
		return err
	}
}
