package dashboard

import (
	"context"

	"github.com/fynora/backend/internal/application/adapter"
)

// ListRecentTransactionsInput represents the input for listing transactions.
type ListRecentTransactionsInput struct {
	Limit int
}

// ListRecentTransactionsOutput represents the output of listing transactions.
type ListRecentTransactionsOutput struct {
	Transactions []TransactionOutput
}

// ListRecentTransactionsUseCase handles the recent transactions listing.
type ListRecentTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListRecentTransactionsUseCase creates a new ListRecentTransactionsUseCase instance.
func NewListRecentTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListRecentTransactionsUseCase {
	return &ListRecentTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists transactions ordered by date descending. The limit defaults to
// 5 and is capped at 50.
func (uc *ListRecentTransactionsUseCase) Execute(ctx context.Context, input ListRecentTransactionsInput) (*ListRecentTransactionsOutput, error) {
	limit := input.Limit
	if limit < 1 {
		limit = 5
	}
	if limit > 50 {
		limit = 50
	}

	transactions, err := uc.transactionRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	return &ListRecentTransactionsOutput{
		Transactions: toTransactionOutputs(transactions),
	}, nil
}
