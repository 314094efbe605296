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

// CreateBudgetItemInput represents a line item in the creation input.
type CreateBudgetItemInput struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateBudgetInput represents the input for creating a budget.
type CreateBudgetInput struct {
	ClientID   uuid.UUID
	Items      []CreateBudgetItemInput
	Discount   decimal.Decimal
	ValidUntil time.Time
	Notes      string
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	clientRepo adapter.ClientRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, clientRepo adapter.ClientRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		clientRepo: clientRepo,
	}
}

// Execute performs the budget creation. The budget number is assigned from a
// per-year sequence and the status always starts as draft.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*BudgetOutput, error) {
	if err := validateItems(input.Items); err != nil {
		return nil, err
	}
	if input.Discount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidDiscount,
			"discount cannot be negative",
			domainerror.ErrInvalidDiscount,
		)
	}
	if input.ValidUntil.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidValidUntil,
			"validUntil is required",
			domainerror.ErrInvalidValidUntil,
		)
	}

	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetClientNotFound,
				"client not found",
				domainerror.ErrBudgetClientNotFound,
			)
		}
		return nil, err
	}

	year := time.Now().Year()
	seq, err := uc.budgetRepo.NextSequence(ctx, year)
	if err != nil {
		return nil, err
	}
	number := entity.BudgetNumber(year, seq)

	items := make([]entity.BudgetItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.NewBudgetItem(item.Name, item.Quantity, item.UnitPrice)
	}

	budget := entity.NewBudget(number, client.ID, items, input.Discount, input.ValidUntil, input.Notes)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, err
	}

	return toBudgetOutput(budget, client), nil
}

// validateItems checks a budget's line items: at least one item, positive
// quantity, non-negative unit price.
func validateItems(items []CreateBudgetItemInput) error {
	if len(items) == 0 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetItems,
			"budget must have at least one item",
			domainerror.ErrEmptyBudgetItems,
		)
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidItemQuantity,
				"item quantity must be greater than zero",
				domainerror.ErrInvalidItemQuantity,
			)
		}
		if item.UnitPrice.IsNegative() {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidItemPrice,
				"item unit price cannot be negative",
				domainerror.ErrInvalidItemPrice,
			)
		}
	}
	return nil
}
