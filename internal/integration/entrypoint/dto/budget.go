package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fynora/backend/internal/application/usecase/budget"
)

// BudgetItemRequest represents a line item in budget request bodies.
type BudgetItemRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=255"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	ClientID   string              `json:"clientId" binding:"required,uuid"`
	Items      []BudgetItemRequest `json:"items" binding:"required"`
	Discount   decimal.Decimal     `json:"discount"`
	ValidUntil time.Time           `json:"validUntil" binding:"required" time_format:"2006-01-02"`
	Notes      string              `json:"notes,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	ClientID   *string             `json:"clientId,omitempty" binding:"omitempty,uuid"`
	Items      []BudgetItemRequest `json:"items,omitempty"`
	Discount   *decimal.Decimal    `json:"discount,omitempty"`
	Status     *string             `json:"status,omitempty" binding:"omitempty,oneof=draft sent accepted rejected"`
	ValidUntil *time.Time          `json:"validUntil,omitempty" time_format:"2006-01-02"`
	Notes      *string             `json:"notes,omitempty"`
}

// UpdateBudgetStatusRequest represents the request body for a status transition.
type UpdateBudgetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent accepted rejected"`
}

// BudgetItemResponse represents a line item in API responses.
type BudgetItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// BudgetClientResponse represents the joined client in API responses.
type BudgetClientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company,omitempty"`
	Document string `json:"document"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID         string                `json:"id"`
	Number     string                `json:"number"`
	ClientID   string                `json:"clientId"`
	Client     *BudgetClientResponse `json:"client,omitempty"`
	Items      []BudgetItemResponse  `json:"items"`
	Subtotal   float64               `json:"subtotal"`
	Discount   float64               `json:"discount"`
	Total      float64               `json:"total"`
	Status     string                `json:"status"`
	ValidUntil string                `json:"validUntil"`
	Notes      string                `json:"notes,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

// BudgetListResponse represents the paginated budget listing.
type BudgetListResponse struct {
	Data       []BudgetResponse `json:"data"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

// ToBudgetResponse converts a budget use case output to a BudgetResponse DTO.
func ToBudgetResponse(output *budget.BudgetOutput) BudgetResponse {
	resp := BudgetResponse{
		ID:         output.ID.String(),
		Number:     output.Number,
		ClientID:   output.ClientID.String(),
		Items:      make([]BudgetItemResponse, len(output.Items)),
		Subtotal:   output.Subtotal.InexactFloat64(),
		Discount:   output.Discount.InexactFloat64(),
		Total:      output.Total.InexactFloat64(),
		Status:     string(output.Status),
		ValidUntil: output.ValidUntil.Format("2006-01-02"),
		Notes:      output.Notes,
		CreatedAt:  output.CreatedAt,
		UpdatedAt:  output.UpdatedAt,
	}
	for i, item := range output.Items {
		resp.Items[i] = BudgetItemResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.InexactFloat64(),
			Total:     item.Total.InexactFloat64(),
		}
	}
	if output.Client != nil {
		resp.Client = &BudgetClientResponse{
			ID:       output.Client.ID.String(),
			Name:     output.Client.Name,
			Email:    output.Client.Email,
			Phone:    output.Client.Phone,
			Company:  output.Client.Company,
			Document: output.Client.Document,
		}
	}
	return resp
}

// ToBudgetListResponse converts a listing output to a BudgetListResponse.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	data := make([]BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		data[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{
		Data:       data,
		Total:      output.Pagination.Total,
		Page:       output.Pagination.Page,
		Limit:      output.Pagination.Limit,
		TotalPages: output.Pagination.TotalPages,
	}
}
