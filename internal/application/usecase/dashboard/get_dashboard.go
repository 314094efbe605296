// Package dashboard contains the financial dashboard use cases.
package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
)

// Change percentages are fixed placeholders until enough transaction history
// exists to compute month-over-month deltas.
const (
	incomeChangePlaceholder   = 12.5
	expensesChangePlaceholder = -8.3
	balanceChangePlaceholder  = 18.2
)

// SummaryOutput holds the aggregated financial summary.
type SummaryOutput struct {
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	Balance        decimal.Decimal `json:"balance"`
	IncomeChange   float64         `json:"incomeChange"`
	ExpensesChange float64         `json:"expensesChange"`
	BalanceChange  float64         `json:"balanceChange"`
}

// ChartPointOutput is one month of the income/expense chart.
type ChartPointOutput struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// TransactionOutput is a single transaction in the output.
type TransactionOutput struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// StatsOutput holds the entity counters shown on the dashboard.
type StatsOutput struct {
	TotalClients    int64 `json:"totalClients"`
	PendingBudgets  int64 `json:"pendingBudgets"`
	AcceptedBudgets int64 `json:"acceptedBudgets"`
}

// GetDashboardOutput represents the full dashboard payload.
type GetDashboardOutput struct {
	Summary            SummaryOutput       `json:"summary"`
	Chart              []ChartPointOutput  `json:"chart"`
	RecentTransactions []TransactionOutput `json:"recentTransactions"`
	Stats              StatsOutput         `json:"stats"`
}

// GetDashboardUseCase assembles the financial dashboard.
type GetDashboardUseCase struct {
	transactionRepo adapter.TransactionRepository
	clientRepo      adapter.ClientRepository
	budgetRepo      adapter.BudgetRepository
	cache           adapter.DashboardCache
	logger          *slog.Logger
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	transactionRepo adapter.TransactionRepository,
	clientRepo adapter.ClientRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.DashboardCache,
	logger *slog.Logger,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
		budgetRepo:      budgetRepo,
		cache:           cache,
		logger:          logger,
	}
}

// Execute returns the dashboard payload, serving it from cache when a fresh
// copy exists.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*GetDashboardOutput, error) {
	if payload, ok := uc.cache.Get(ctx); ok {
		var cached GetDashboardOutput
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		uc.logger.Warn("discarding unreadable dashboard cache entry")
	}

	output, err := uc.build(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(output); err == nil {
		uc.cache.Set(ctx, payload)
	}

	return output, nil
}

func (uc *GetDashboardUseCase) build(ctx context.Context) (*GetDashboardOutput, error) {
	totals, err := uc.transactionRepo.GetTotals(ctx)
	if err != nil {
		return nil, err
	}

	series, err := uc.transactionRepo.GetMonthlySeries(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := uc.transactionRepo.FindRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	totalClients, err := uc.clientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingBudgets, err := uc.budgetRepo.CountByStatus(ctx, entity.BudgetStatusSent)
	if err != nil {
		return nil, err
	}
	acceptedBudgets, err := uc.budgetRepo.CountByStatus(ctx, entity.BudgetStatusAccepted)
	if err != nil {
		return nil, err
	}

	output := &GetDashboardOutput{
		Summary: SummaryOutput{
			TotalIncome:    totals.Income,
			TotalExpenses:  totals.Expenses,
			Balance:        totals.Income.Sub(totals.Expenses),
			IncomeChange:   incomeChangePlaceholder,
			ExpensesChange: expensesChangePlaceholder,
			BalanceChange:  balanceChangePlaceholder,
		},
		Chart:              make([]ChartPointOutput, len(series)),
		RecentTransactions: toTransactionOutputs(recent),
		Stats: StatsOutput{
			TotalClients:    totalClients,
			PendingBudgets:  pendingBudgets,
			AcceptedBudgets: acceptedBudgets,
		},
	}
	for i, point := range series {
		output.Chart[i] = ChartPointOutput{
			Month:    point.Month,
			Income:   point.Income,
			Expenses: point.Expenses,
		}
	}

	return output, nil
}

func toTransactionOutputs(transactions []*entity.Transaction) []TransactionOutput {
	out := make([]TransactionOutput, len(transactions))
	for i, t := range transactions {
		out[i] = TransactionOutput{
			ID:          t.ID,
			Type:        string(t.Type),
			Category:    string(t.Category),
			Description: t.Description,
			Amount:      t.Amount,
			Date:        t.Date,
		}
	}
	return out
}
