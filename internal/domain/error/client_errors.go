// Package error defines domain-specific errors for the Fynora application.
package error

import "errors"

// Client domain errors.
var (
	// ErrClientNotFound is returned when a client is not found in the system.
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidClientDocument is returned when the client document is not a valid CPF or CNPJ.
	ErrInvalidClientDocument = errors.New("invalid client document")

	// ErrMissingClientFields is returned when required client fields are absent.
	ErrMissingClientFields = errors.New("missing required client fields")
)

// ClientErrorCode defines error codes for client errors.
// Format: CLI-XXYYYY where XX is category and YYYY is specific error.
type ClientErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeClientNotFound        ClientErrorCode = "CLI-010001"
	ErrCodeInvalidClientDocument ClientErrorCode = "CLI-010002"
	ErrCodeMissingClientFields   ClientErrorCode = "CLI-010003"
)

// ClientError represents a client error with code and message.
type ClientError struct {
	Code    ClientErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError creates a new ClientError with the given code and message.
func NewClientError(code ClientErrorCode, message string, err error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
