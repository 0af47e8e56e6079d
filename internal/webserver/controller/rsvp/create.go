package rsvp

import (
	"errors"

	"github.com/birthday-invite/gaurav-dawande/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Create validates the submitted rsvp, stores it and answers with the stored record
func (r *Controller) Create(c *fiber.Ctx) error {
	lang := r.translator.Match(c.Get(fiber.HeaderAcceptLanguage))

	rsvp, err := validate(c.Body())
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(model.ValidationError{
				Field:   validationErr.Field,
				Message: r.translator.T(lang, validationErr.Message),
			})
		}
		return err
	}

	if err := r.repository.Create(&rsvp); err != nil {
		r.logger.Error("rsvp could not be stored",
			zap.Error(err),
			zap.Any("request_id", c.Locals("requestid")),
		)
		return fiber.NewError(fiber.StatusInternalServerError, r.translator.T(lang, "Failed to submit RSVP"))
	}

	if r.notifies() {
		go r.notify(rsvp)
	}

	return c.Status(fiber.StatusCreated).JSON(rsvp)
}

func validate(body []byte) (model.Rsvp, error) {
	submission, err := model.DecodeSubmission(body)
	if err != nil {
		return model.Rsvp{}, err
	}
	return submission.Validate()
}
