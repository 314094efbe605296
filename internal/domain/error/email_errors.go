// Package error defines domain-specific errors for the Fynora application.
package error

import "errors"

// Email domain errors.
var (
	// ErrInvalidTemplate is returned when an unknown email template type is requested.
	ErrInvalidTemplate = errors.New("invalid email template")
)

// EmailErrorCode defines error codes for email errors.
type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed      EmailErrorCode = "EML-010001"
	ErrCodeInvalidTemplate       EmailErrorCode = "EML-010002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-020001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-020002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
