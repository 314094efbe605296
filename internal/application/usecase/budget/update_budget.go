package budget

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
	domainerror "github.com/fynora/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for updating a budget. Nil fields are
// left unchanged.
type UpdateBudgetInput struct {
	ID         uuid.UUID
	ClientID   *uuid.UUID
	Items      []CreateBudgetItemInput
	Discount   *decimal.Decimal
	Status     *string
	ValidUntil *time.Time
	Notes      *string
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	clientRepo adapter.ClientRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, clientRepo adapter.ClientRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		clientRepo: clientRepo,
	}
}

// Execute performs the budget update. When items or discount are supplied the
// derived totals are recomputed; supplied items replace the previous ones and
// get fresh identifiers.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*BudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.ClientID != nil {
		client, err := uc.clientRepo.FindByID(ctx, *input.ClientID)
		if err != nil {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetClientNotFound,
				"client not found",
				domainerror.ErrBudgetClientNotFound,
			)
		}
		budget.ClientID = client.ID
	}

	if input.Items != nil {
		if err := validateItems(input.Items); err != nil {
			return nil, err
		}
		items := make([]entity.BudgetItem, len(input.Items))
		for i, item := range input.Items {
			items[i] = entity.NewBudgetItem(item.Name, item.Quantity, item.UnitPrice)
		}
		budget.Items = items
	}

	if input.Discount != nil {
		if input.Discount.IsNegative() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidDiscount,
				"discount cannot be negative",
				domainerror.ErrInvalidDiscount,
			)
		}
		budget.Discount = *input.Discount
	}

	if input.Status != nil {
		status := entity.BudgetStatus(*input.Status)
		if !entity.IsValidBudgetStatus(status) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetStatus,
				"invalid budget status",
				domainerror.ErrInvalidBudgetStatus,
			)
		}
		budget.Status = status
	}

	if input.ValidUntil != nil {
		budget.ValidUntil = *input.ValidUntil
	}
	if input.Notes != nil {
		budget.Notes = *input.Notes
	}

	budget.RecomputeTotals()
	budget.UpdatedAt = time.Now()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, err
	}

	client, err := uc.clientRepo.FindByID(ctx, budget.ClientID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, err
		}
		client = nil
	}
	return toBudgetOutput(budget, client), nil
}
