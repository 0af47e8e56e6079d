package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

const maxExactGuestCount = 1<<53 - 1

// Submission is a candidate RSVP exactly as the caller sent it. Keys not listed
// here, id and createdAt included, are dropped while decoding.
type Submission struct {
	Name       *string         `json:"name"`
	Email      *string         `json:"email"`
	GuestCount json.RawMessage `json:"guestCount"`
	Status     *string         `json:"status"`
	Message    *string         `json:"message"`
}

// DecodeSubmission parses a JSON request body. Type mismatches on known fields
// are reported as a ValidationError naming the field.
func DecodeSubmission(body []byte) (Submission, error) {
	var s Submission

	err := json.Unmarshal(body, &s)
	if err == nil {
		return s, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return s, &ValidationError{Field: typeErr.Field, Message: "Expected a string"}
	}
	return s, &ValidationError{Message: "Invalid request body"}
}

// coerceGuestCount accepts a JSON number or a numeric-looking string. An empty
// string counts as zero so that it fails the minimum rule rather than the type rule.
func coerceGuestCount(raw json.RawMessage) (int, *ValidationError) {
	notANumber := &ValidationError{Field: "guestCount", Message: "Guest count must be a number"}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, notANumber
	}

	var text string
	switch {
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, notANumber
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return 0, nil
		}
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		text = string(raw)
	default:
		return 0, notANumber
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, notANumber
	}
	if f != math.Trunc(f) || math.Abs(f) > maxExactGuestCount {
		return 0, &ValidationError{Field: "guestCount", Message: "Guest count must be a whole number"}
	}
	return int(f), nil
}
