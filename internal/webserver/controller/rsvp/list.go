package rsvp

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// List returns every stored rsvp
func (r *Controller) List(c *fiber.Ctx) error {
	rsvps, err := r.repository.List()
	if err != nil {
		r.logger.Error("rsvps could not be listed",
			zap.Error(err),
			zap.Any("request_id", c.Locals("requestid")),
		)
		lang := r.translator.Match(c.Get(fiber.HeaderAcceptLanguage))
		return fiber.NewError(fiber.StatusInternalServerError, r.translator.T(lang, "Failed to fetch RSVPs"))
	}

	return c.JSON(rsvps)
}
