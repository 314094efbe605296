// Package adapter defines interfaces for external dependencies of use cases.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fynora/backend/internal/domain/entity"
)

// TransactionTotals holds amounts summed by transaction type.
type TransactionTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// TransactionRepository defines read-only access to the transaction seed data.
type TransactionRepository interface {
	// FindRecent retrieves transactions ordered by date descending, truncated
	// to limit.
	FindRecent(ctx context.Context, limit int) ([]*entity.Transaction, error)

	// GetTotals sums transaction amounts grouped by type.
	GetTotals(ctx context.Context) (*TransactionTotals, error)

	// GetMonthlySeries retrieves the stored monthly income/expense aggregates
	// in chronological order.
	GetMonthlySeries(ctx context.Context) ([]*entity.MonthlyAggregate, error)
}
