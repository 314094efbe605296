package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/application/adapter"
)

// DeleteBudgetUseCase handles budget deletion logic.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute deletes a budget by ID. The budget's number is never reassigned to a
// later budget.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	return uc.budgetRepo.Delete(ctx, id)
}
