package domain

import "errors"

var (
	MessageUnauthorized         = "Unauthorized"
	MessageFailedBodyRequest    = "failed to process request body"
	MessageInternalServerError  = "There was an error and we could not complete your request"
	MessageFailedProcessRequest = "failed to process request"

	ErrUnauthorized  = errors.New("Unauthorized")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("failed to token invalid")
	ErrTokenExpired  = errors.New("failed to token expired")
)

// ValidationError is a bad-request signal that names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
