// Package error defines domain-specific errors for the Fynora application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetClientNotFound is returned when the client a budget refers to does not exist.
	ErrBudgetClientNotFound = errors.New("budget client not found")

	// ErrInvalidBudgetStatus is returned when the budget status is not one of the known statuses.
	ErrInvalidBudgetStatus = errors.New("invalid budget status")

	// ErrEmptyBudgetItems is returned when a budget is created or updated with no items.
	ErrEmptyBudgetItems = errors.New("budget must have at least one item")

	// ErrInvalidItemQuantity is returned when an item quantity is not a positive integer.
	ErrInvalidItemQuantity = errors.New("item quantity must be positive")

	// ErrInvalidItemPrice is returned when an item unit price is negative.
	ErrInvalidItemPrice = errors.New("item unit price must not be negative")

	// ErrInvalidDiscount is returned when the discount is negative.
	ErrInvalidDiscount = errors.New("discount must not be negative")

	// ErrInvalidValidUntil is returned when the validity date is missing or malformed.
	ErrInvalidValidUntil = errors.New("invalid validity date")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound       BudgetErrorCode = "BDG-010001"
	ErrCodeBudgetClientNotFound BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetStatus  BudgetErrorCode = "BDG-010003"
	ErrCodeEmptyBudgetItems     BudgetErrorCode = "BDG-010004"
	ErrCodeInvalidItemQuantity  BudgetErrorCode = "BDG-010005"
	ErrCodeInvalidItemPrice     BudgetErrorCode = "BDG-010006"
	ErrCodeInvalidDiscount      BudgetErrorCode = "BDG-010007"
	ErrCodeInvalidValidUntil    BudgetErrorCode = "BDG-010008"
	ErrCodeInvalidBudgetPayload BudgetErrorCode = "BDG-010009"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
