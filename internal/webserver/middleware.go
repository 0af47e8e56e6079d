package webserver

import (
	"errors"
	"time"

	"github.com/birthday-invite/gaurav-dawande/internal/i18n"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetLanguage stores the language requested in the URL as a local variable of
// the request, or answers not found if it is not supported
func SetLanguage(printers *i18n.Printers) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		lang := c.Params("lang")
		if !printers.Supports(lang) {
			return fiber.ErrNotFound
		}
		c.Locals("Lang", lang)
		return c.Next()
	}
}

// RequestLogger logs one line per handled request
func RequestLogger(logger *zap.Logger) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				status = e.Code
			}
		}

		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Any("request_id", c.Locals("requestid")),
		)
		return err
	}
}
