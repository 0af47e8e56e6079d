package model

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Fields are checked in this order and only the first failure is reported.
var fieldOrder = []string{"name", "email", "guestCount", "status"}

var fieldMessages = map[string]string{
	"name":       "Name is required",
	"email":      "Invalid email",
	"guestCount": "At least one guest is required",
	"status":     "Status must be attending or declined",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate normalizes the submission into a record ready to be stored, or
// returns a *ValidationError for the first offending field.
func (s Submission) Validate() (Rsvp, error) {
	rsvp := Rsvp{
		Status:  StatusAttending,
		Message: s.Message,
	}
	if s.Name != nil {
		rsvp.Name = *s.Name
	}
	if s.Email != nil && *s.Email != "" {
		email := *s.Email
		rsvp.Email = &email
	}
	if s.Status != nil {
		rsvp.Status = *s.Status
	}

	failures := map[string]*ValidationError{}

	count, coerceErr := coerceGuestCount(s.GuestCount)
	rsvp.GuestCount = count

	var fieldErrs validator.ValidationErrors
	if err := validate.Struct(rsvp); errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			failures[fe.Field()] = &ValidationError{Field: fe.Field(), Message: fieldMessages[fe.Field()]}
		}
	}
	if coerceErr != nil {
		failures["guestCount"] = coerceErr
	}

	for _, field := range fieldOrder {
		if failure, ok := failures[field]; ok {
			return Rsvp{}, failure
		}
	}
	return rsvp, nil
}
