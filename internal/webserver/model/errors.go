package model

import "fmt"

// ValidationError is a caller-correctable rejection of a submission. Field is
// empty when the problem is not tied to a single field, e.g. a malformed body.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StorageError wraps any failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("error %s rsvp: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
