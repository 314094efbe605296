package dto

import (
	"time"

	"github.com/fynora/backend/internal/application/usecase/dashboard"
)

// DashboardSummaryResponse holds the aggregated financial summary.
type DashboardSummaryResponse struct {
	TotalIncome    float64 `json:"totalIncome"`
	TotalExpenses  float64 `json:"totalExpenses"`
	Balance        float64 `json:"balance"`
	IncomeChange   float64 `json:"incomeChange"`
	ExpensesChange float64 `json:"expensesChange"`
	BalanceChange  float64 `json:"balanceChange"`
}

// ChartPointResponse is one month of the income/expense chart.
type ChartPointResponse struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// DashboardStatsResponse holds the entity counters shown on the dashboard.
type DashboardStatsResponse struct {
	TotalClients    int64 `json:"totalClients"`
	PendingBudgets  int64 `json:"pendingBudgets"`
	AcceptedBudgets int64 `json:"acceptedBudgets"`
}

// DashboardResponse represents the full dashboard payload.
type DashboardResponse struct {
	Summary            DashboardSummaryResponse `json:"summary"`
	ChartData          []ChartPointResponse     `json:"chartData"`
	RecentTransactions []TransactionResponse    `json:"recentTransactions"`
	Stats              DashboardStatsResponse   `json:"stats"`
}

// TransactionListResponse represents the recent transactions listing.
type TransactionListResponse struct {
	Data []TransactionResponse `json:"data"`
}

// ToTransactionResponse converts a dashboard transaction output to a DTO.
func ToTransactionResponse(t dashboard.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Type:        t.Type,
		Category:    t.Category,
		Description: t.Description,
		Amount:      t.Amount.InexactFloat64(),
		Date:        t.Date.Format(time.DateOnly),
	}
}

// ToDashboardResponse converts a dashboard output to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	resp := DashboardResponse{
		Summary: DashboardSummaryResponse{
			TotalIncome:    output.Summary.TotalIncome.InexactFloat64(),
			TotalExpenses:  output.Summary.TotalExpenses.InexactFloat64(),
			Balance:        output.Summary.Balance.InexactFloat64(),
			IncomeChange:   output.Summary.IncomeChange,
			ExpensesChange: output.Summary.ExpensesChange,
			BalanceChange:  output.Summary.BalanceChange,
		},
		ChartData:          make([]ChartPointResponse, len(output.Chart)),
		RecentTransactions: make([]TransactionResponse, len(output.RecentTransactions)),
		Stats: DashboardStatsResponse{
			TotalClients:    output.Stats.TotalClients,
			PendingBudgets:  output.Stats.PendingBudgets,
			AcceptedBudgets: output.Stats.AcceptedBudgets,
		},
	}
	for i, point := range output.Chart {
		resp.ChartData[i] = ChartPointResponse{
			Month:    point.Month,
			Income:   point.Income.InexactFloat64(),
			Expenses: point.Expenses.InexactFloat64(),
		}
	}
	for i, t := range output.RecentTransactions {
		resp.RecentTransactions[i] = ToTransactionResponse(t)
	}
	return resp
}

// ToTransactionListResponse converts the recent transactions output to a DTO.
func ToTransactionListResponse(output *dashboard.ListRecentTransactionsOutput) TransactionListResponse {
	data := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		data[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{Data: data}
}
