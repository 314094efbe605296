// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	// Status filters on exact status; empty or "all" disables the filter.
	Status string
	Search string
	Page   int
	Limit  int
}

// BudgetItemOutput represents a line item in the output.
type BudgetItemOutput struct {
	ID        uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// BudgetClientOutput represents the joined client in the output.
type BudgetClientOutput struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Phone    string
	Company  string
	Document string
}

// BudgetOutput represents a single budget in the output.
type BudgetOutput struct {
	ID         uuid.UUID
	Number     string
	ClientID   uuid.UUID
	Client     *BudgetClientOutput // nil when the client was deleted
	Items      []BudgetItemOutput
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Total      decimal.Decimal
	Status     entity.BudgetStatus
	ValidUntil time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets    []*BudgetOutput
	Pagination PaginationOutput
}

// ListBudgetsUseCase handles listing budgets logic.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	filter := adapter.BudgetFilter{
		Status: input.Status,
		Search: input.Search,
	}
	pagination := adapter.BudgetPagination{
		Page:  page,
		Limit: limit,
	}

	result, err := uc.budgetRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, err
	}

	output := &ListBudgetsOutput{
		Budgets: make([]*BudgetOutput, len(result.Budgets)),
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
	for i, b := range result.Budgets {
		output.Budgets[i] = toBudgetOutput(b.Budget, b.Client)
	}

	return output, nil
}

// toBudgetOutput converts a Budget entity and its optional client join to a
// BudgetOutput.
func toBudgetOutput(b *entity.Budget, client *entity.Client) *BudgetOutput {
	out := &BudgetOutput{
		ID:         b.ID,
		Number:     b.Number,
		ClientID:   b.ClientID,
		Items:      make([]BudgetItemOutput, len(b.Items)),
		Subtotal:   b.Subtotal,
		Discount:   b.Discount,
		Total:      b.Total,
		Status:     b.Status,
		ValidUntil: b.ValidUntil,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	for i, item := range b.Items {
		out.Items[i] = BudgetItemOutput{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		}
	}
	if client != nil {
		out.Client = &BudgetClientOutput{
			ID:       client.ID,
			Name:     client.Name,
			Email:    client.Email,
			Phone:    client.Phone,
			Company:  client.Company,
			Document: client.Document,
		}
	}
	return out
}
