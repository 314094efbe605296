package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fynora/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number     string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	ClientID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Discount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status     string          `gorm:"type:varchar(10);not null;index"`
	ValidUntil time.Time       `gorm:"type:date;not null"`
	Notes      string          `gorm:"type:text"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	// No FK constraint on ClientID: budgets survive client deletion, the
	// join simply resolves to nothing.
	Items  []BudgetItemModel `gorm:"foreignKey:BudgetID;references:ID;constraint:OnDelete:CASCADE"`
	Client *ClientModel      `gorm:"foreignKey:ClientID;references:ID;constraint:-"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// BudgetItemModel represents the budget_items table in the database.
type BudgetItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BudgetID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Position  int             `gorm:"not null"`
}

// TableName returns the table name for the BudgetItemModel.
func (BudgetItemModel) TableName() string {
	return "budget_items"
}

// BudgetSequenceModel represents the budget_sequences table. One row per year
// holds the last issued budget number, so numbers are never reused even after
// deletes.
type BudgetSequenceModel struct {
	Year    int   `gorm:"primaryKey"`
	LastSeq int64 `gorm:"not null"`
}

// TableName returns the table name for the BudgetSequenceModel.
func (BudgetSequenceModel) TableName() string {
	return "budget_sequences"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	items := make([]entity.BudgetItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = entity.BudgetItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		}
	}

	return &entity.Budget{
		ID:         m.ID,
		Number:     m.Number,
		ClientID:   m.ClientID,
		Items:      items,
		Subtotal:   m.Subtotal,
		Discount:   m.Discount,
		Total:      m.Total,
		Status:     entity.BudgetStatus(m.Status),
		ValidUntil: m.ValidUntil,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToEntityWithClient converts a BudgetModel with its preloaded Client to a
// BudgetWithClient entity. The client is nil when the join found nothing.
func (m *BudgetModel) ToEntityWithClient() *entity.BudgetWithClient {
	result := &entity.BudgetWithClient{
		Budget: m.ToEntity(),
	}
	if m.Client != nil {
		result.Client = m.Client.ToEntity()
	}
	return result
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	items := make([]BudgetItemModel, len(budget.Items))
	for i, item := range budget.Items {
		items[i] = BudgetItemModel{
			ID:        item.ID,
			BudgetID:  budget.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
			Position:  i,
		}
	}

	return &BudgetModel{
		ID:         budget.ID,
		Number:     budget.Number,
		ClientID:   budget.ClientID,
		Subtotal:   budget.Subtotal,
		Discount:   budget.Discount,
		Total:      budget.Total,
		Status:     string(budget.Status),
		ValidUntil: budget.ValidUntil,
		Notes:      budget.Notes,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
		Items:      items,
	}
}
