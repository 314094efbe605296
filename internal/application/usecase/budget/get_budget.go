package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/application/adapter"
)

// GetBudgetUseCase handles fetching a single budget.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute fetches a budget by ID together with its client, when it still exists.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, id uuid.UUID) (*BudgetOutput, error) {
	result, err := uc.budgetRepo.FindByIDWithClient(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBudgetOutput(result.Budget, result.Client), nil
}
