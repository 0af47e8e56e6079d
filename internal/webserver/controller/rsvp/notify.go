package rsvp

import (
	"bytes"
	"html"

	"github.com/birthday-invite/gaurav-dawande/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// notify emails the host about a new rsvp. It runs detached from the request,
// so failures are only logged.
func (r *Controller) notify(rsvp model.Rsvp) {
	lang := r.config.NotifyLang

	body, err := r.notificationBody(rsvp, lang)
	if err != nil {
		r.logger.Error("rsvp notification could not be composed", zap.Uint("rsvp_id", rsvp.ID), zap.Error(err))
		return
	}

	subject := r.translator.T(lang, "New RSVP from %s", rsvp.Name)
	if err := r.sender.Send(r.config.NotifyAddress, subject, body); err != nil {
		r.logger.Warn("rsvp notification could not be sent", zap.Uint("rsvp_id", rsvp.ID), zap.Error(err))
		return
	}
	r.logger.Debug("rsvp notification sent", zap.Uint("rsvp_id", rsvp.ID), zap.String("to", r.config.NotifyAddress))
}

func (r *Controller) notificationBody(rsvp model.Rsvp, lang string) (string, error) {
	email := r.translator.T(lang, "No email provided")
	if rsvp.Email != nil {
		email = *rsvp.Email
	}

	message := r.translator.T(lang, "No message")
	if rsvp.Message != nil {
		if text := html.UnescapeString(r.sanitizer.Sanitize(*rsvp.Message)); text != "" {
			message = text
		}
	}

	response := r.translator.T(lang, "Declined")
	if rsvp.Attending() {
		response = r.translator.T(lang, "Accepted")
	}

	var buf bytes.Buffer
	err := r.renderer.Render(&buf, "rsvp/notification-email", fiber.Map{
		"Lang":       lang,
		"HostName":   r.config.HostName,
		"Name":       rsvp.Name,
		"Email":      email,
		"GuestCount": rsvp.GuestCount,
		"Response":   response,
		"Message":    message,
	})
	return buf.String(), err
}
