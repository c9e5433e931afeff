package middleware

import (
	"github.com/gofiber/fiber/v3"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests above maxPerSecond with 429. Zero disables
// the limiter.
func RateLimit(maxPerSecond float64) fiber.Handler {
	if maxPerSecond <= 0 {
		return func(c fiber.Ctx) error { return c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(maxPerSecond), int(maxPerSecond)+1)

	return func(c fiber.Ctx) error {
		if !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status":  fiber.StatusTooManyRequests,
				"message": "too many requests",
			})
		}
		return c.Next()
	}
}
