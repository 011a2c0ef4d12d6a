package utils

import "errors"

var (
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrStoreNotConfigured = errors.New("persistence backend not configured")
	ErrDatabaseError      = errors.New("database error")
)

// ValidationError carries a client-facing message naming the offending field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
