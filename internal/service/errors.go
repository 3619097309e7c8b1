package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound marks operations that targeted a nonexistent record. It is an
// expected outcome, not a fault; handlers map it to a 404.
var ErrNotFound = errors.New("not found")

// ValidationError reports a malformed or missing field with enough detail
// for the caller to show which field was wrong.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// mapStoreErr translates gorm's record-not-found into the service-level
// sentinel; anything else stays a store error.
func mapStoreErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
