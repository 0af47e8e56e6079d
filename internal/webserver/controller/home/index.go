package home

import (
	"time"

	"github.com/birthday-invite/gaurav-dawande/internal/countdown"
	"github.com/gofiber/fiber/v2"
)

// Index renders the invitation page with the countdown, event details and rsvp form
func (h *Controller) Index(c *fiber.Ctx) error {
	start := h.event.Start()
	left, pending := countdown.Until(start, h.now())

	return c.Render("index", fiber.Map{
		"Lang":             c.Locals("Lang"),
		"Languages":        h.languages,
		"Version":          c.App().Config().AppName,
		"Title":            h.event.Title,
		"Event":            h.event,
		"Date":             start.Format("Monday, Jan 2"),
		"Year":             start.Year(),
		"Target":           start.Format(time.RFC3339),
		"Countdown":        left,
		"CountdownPending": pending,
	}, "layout")
}
