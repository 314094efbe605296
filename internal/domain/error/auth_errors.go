// Package error defines domain-specific errors for the Fynora application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a token is malformed or has a wrong type.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenInvalidated is returned when a refresh token was invalidated server-side.
	ErrTokenInvalidated = errors.New("token invalidated")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Credential errors (01XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-010002"
	ErrCodeMissingFields      AuthErrorCode = "AUTH-010003"

	// Token errors (02XXXX)
	ErrCodeInvalidToken     AuthErrorCode = "AUTH-020001"
	ErrCodeExpiredToken     AuthErrorCode = "AUTH-020002"
	ErrCodeMissingToken     AuthErrorCode = "AUTH-020003"
	ErrCodeTokenInvalidated AuthErrorCode = "AUTH-020004"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-030001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
