package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fynora/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Category    string          `gorm:"type:varchar(30);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	ClientID    *uuid.UUID      `gorm:"type:uuid;index"`
	BudgetID    *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Type:        entity.TransactionType(m.Type),
		Category:    entity.TransactionCategory(m.Category),
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		ClientID:    m.ClientID,
		BudgetID:    m.BudgetID,
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		Type:        string(transaction.Type),
		Category:    string(transaction.Category),
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Date:        transaction.Date,
		ClientID:    transaction.ClientID,
		BudgetID:    transaction.BudgetID,
		CreatedAt:   transaction.CreatedAt,
	}
}

// MonthlyAggregateModel represents the monthly_aggregates table holding the
// precomputed chart series.
type MonthlyAggregateModel struct {
	ID       int             `gorm:"primaryKey;autoIncrement"`
	Month    string          `gorm:"type:varchar(10);not null"`
	Income   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Expenses decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Position int             `gorm:"not null;uniqueIndex"`
}

// TableName returns the table name for the MonthlyAggregateModel.
func (MonthlyAggregateModel) TableName() string {
	return "monthly_aggregates"
}

// ToEntity converts a MonthlyAggregateModel to a domain MonthlyAggregate entity.
func (m *MonthlyAggregateModel) ToEntity() *entity.MonthlyAggregate {
	return &entity.MonthlyAggregate{
		Month:    m.Month,
		Income:   m.Income,
		Expenses: m.Expenses,
	}
}
