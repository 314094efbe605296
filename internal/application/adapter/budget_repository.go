// Package adapter defines interfaces for external dependencies of use cases.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/domain/entity"
)

// BudgetFilter represents filter criteria for listing budgets.
type BudgetFilter struct {
	// Status filters on exact status; empty or "all" disables the filter.
	Status string
	// Search matches case-insensitively against the budget number and the
	// joined client name.
	Search string
}

// BudgetPagination represents pagination parameters for listing budgets.
type BudgetPagination struct {
	Page  int
	Limit int
}

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget with its items.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget with its items by ID.
	// Returns domain error ErrBudgetNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByIDWithClient retrieves a budget enriched with its client. The
	// client is nil when the referenced client no longer exists.
	FindByIDWithClient(ctx context.Context, id uuid.UUID) (*entity.BudgetWithClient, error)

	// FindByFilter retrieves budgets matching the filter with pagination,
	// ordered by creation time descending, each enriched with its client.
	FindByFilter(ctx context.Context, filter BudgetFilter, pagination BudgetPagination) (*entity.BudgetListResult, error)

	// Update persists changes to an existing budget, replacing its items.
	Update(ctx context.Context, budget *entity.Budget) error

	// UpdateStatus sets only the status and updated-at timestamp of a budget.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BudgetStatus) error

	// Delete removes a budget and its items by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// NextSequence atomically increments and returns the budget number
	// sequence for the given year. The counter survives deletes, so numbers
	// are never reused.
	NextSequence(ctx context.Context, year int) (int64, error)

	// CountByStatus returns the number of budgets with the given status.
	CountByStatus(ctx context.Context, status entity.BudgetStatus) (int64, error)
}
