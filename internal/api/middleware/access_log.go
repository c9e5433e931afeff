package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vieclamviet/job-search/internal/metrics"
)

func AccessLog() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
			c.Set("X-Request-ID", requestID)
		}

		err := c.Next()

		status := c.Response().StatusCode()
		metrics.HTTPRequestsCounter.WithLabelValues(c.Path(), strconv.Itoa(status)).Inc()

		log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     c.Method(),
			"path":       c.OriginalURL(),
			"status":     status,
			"latency":    time.Since(start).String(),
			"ip":         c.IP(),
		}).Info("handled request")

		return err
	}
}
