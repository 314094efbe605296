// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle status of a budget.
type BudgetStatus string

const (
	BudgetStatusDraft    BudgetStatus = "draft"
	BudgetStatusSent     BudgetStatus = "sent"
	BudgetStatusAccepted BudgetStatus = "accepted"
	BudgetStatusRejected BudgetStatus = "rejected"
)

// IsValidBudgetStatus reports whether s is one of the known budget statuses.
func IsValidBudgetStatus(s BudgetStatus) bool {
	switch s {
	case BudgetStatusDraft, BudgetStatusSent, BudgetStatusAccepted, BudgetStatusRejected:
		return true
	}
	return false
}

// BudgetItem is one priced entry within a budget. Items are owned exclusively
// by their parent budget and are replaced wholesale (new IDs) on every update.
type BudgetItem struct {
	ID        uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal // Quantity × UnitPrice
}

// NewBudgetItem creates a budget item with its total derived from quantity and
// unit price.
func NewBudgetItem(name string, quantity int, unitPrice decimal.Decimal) BudgetItem {
	return BudgetItem{
		ID:        uuid.New(),
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Total:     unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Budget represents a quote/proposal issued to a client.
type Budget struct {
	ID         uuid.UUID
	Number     string // human-readable, ORC-<year>-<sequence>
	ClientID   uuid.UUID
	Items      []BudgetItem
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal // zero when absent
	Total      decimal.Decimal
	Status     BudgetStatus
	ValidUntil time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget in draft status with derived totals.
func NewBudget(number string, clientID uuid.UUID, items []BudgetItem, discount decimal.Decimal, validUntil time.Time, notes string) *Budget {
	now := time.Now().UTC()

	b := &Budget{
		ID:         uuid.New(),
		Number:     number,
		ClientID:   clientID,
		Items:      items,
		Discount:   discount,
		Status:     BudgetStatusDraft,
		ValidUntil: validUntil,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	b.RecomputeTotals()
	return b
}

// RecomputeTotals derives subtotal and total from the current items and
// discount. Subtotal is the sum of item totals; total is subtotal minus
// discount.
func (b *Budget) RecomputeTotals() {
	subtotal := decimal.Zero
	for _, item := range b.Items {
		subtotal = subtotal.Add(item.Total)
	}
	b.Subtotal = subtotal
	b.Total = subtotal.Sub(b.Discount)
}

// BudgetNumber formats a human-readable budget number for the given year and
// sequence value, e.g. ORC-2024-0005.
func BudgetNumber(year int, sequence int64) string {
	return fmt.Sprintf("ORC-%d-%04d", year, sequence)
}

// BudgetWithClient represents a budget enriched with its client. Client is nil
// when the referenced client no longer exists; the budget keeps the dangling
// reference.
type BudgetWithClient struct {
	Budget *Budget
	Client *Client
}

// BudgetListResult represents the result of listing budgets.
type BudgetListResult struct {
	Budgets    []*BudgetWithClient
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
