// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionCategory classifies a transaction for reporting.
type TransactionCategory string

const (
	CategorySales     TransactionCategory = "sales"
	CategoryServices  TransactionCategory = "services"
	CategorySupplies  TransactionCategory = "supplies"
	CategoryRent      TransactionCategory = "rent"
	CategoryUtilities TransactionCategory = "utilities"
	CategoryTaxes     TransactionCategory = "taxes"
	CategorySalary    TransactionCategory = "salary"
	CategoryMarketing TransactionCategory = "marketing"
	CategoryOther     TransactionCategory = "other"
)

// Transaction is a read-only financial record feeding the dashboard. The
// collection is populated from seed data and never mutated by the API.
type Transaction struct {
	ID          uuid.UUID
	Type        TransactionType
	Category    TransactionCategory
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	ClientID    *uuid.UUID // optional linkage
	BudgetID    *uuid.UUID // optional linkage
	CreatedAt   time.Time
}

// MonthlyAggregate is one point of the dashboard's income/expense series.
type MonthlyAggregate struct {
	Month    string // short month label, e.g. "Mar"
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// FinancialSummary holds the dashboard's aggregate figures. The change
// percentages are fixed placeholders carried over from the product's mock
// data; there is no historical baseline to compute them from.
type FinancialSummary struct {
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	Balance        decimal.Decimal
	IncomeChange   float64
	ExpensesChange float64
	BalanceChange  float64
}
