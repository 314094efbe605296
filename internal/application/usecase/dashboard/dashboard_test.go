package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
)

// fakeTransactionRepository serves canned transaction data and counts calls.
type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	series       []*entity.MonthlyAggregate
	totals       adapter.TransactionTotals
	calls        int
	lastLimit    int
}

func (r *fakeTransactionRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	r.calls++
	r.lastLimit = limit
	if limit > len(r.transactions) {
		limit = len(r.transactions)
	}
	return r.transactions[:limit], nil
}

func (r *fakeTransactionRepository) GetTotals(ctx context.Context) (*adapter.TransactionTotals, error) {
	r.calls++
	totals := r.totals
	return &totals, nil
}

func (r *fakeTransactionRepository) GetMonthlySeries(ctx context.Context) ([]*entity.MonthlyAggregate, error) {
	r.calls++
	return r.series, nil
}

// fakeCounters provides the client and budget counts the dashboard needs.
type fakeClientCounter struct {
	adapter.ClientRepository
	total int64
}

func (r *fakeClientCounter) Count(ctx context.Context) (int64, error) {
	return r.total, nil
}

type fakeBudgetCounter struct {
	adapter.BudgetRepository
	byStatus map[entity.BudgetStatus]int64
}

func (r *fakeBudgetCounter) CountByStatus(ctx context.Context, status entity.BudgetStatus) (int64, error) {
	return r.byStatus[status], nil
}

// fakeDashboardCache is an in-memory adapter.DashboardCache.
type fakeDashboardCache struct {
	payload []byte
	sets    int
}

func (c *fakeDashboardCache) Get(ctx context.Context) ([]byte, bool) {
	if c.payload == nil {
		return nil, false
	}
	return c.payload, true
}

func (c *fakeDashboardCache) Set(ctx context.Context, payload []byte) {
	c.payload = payload
	c.sets++
}

func newTransactionRepo() *fakeTransactionRepository {
	return &fakeTransactionRepository{
		transactions: []*entity.Transaction{
			{
				ID:          uuid.New(),
				Type:        entity.TransactionTypeIncome,
				Category:    entity.CategoryServices,
				Description: "Pagamento orçamento ORC-2026-0001",
				Amount:      decimal.NewFromInt(3000),
				Date:        time.Now(),
			},
			{
				ID:          uuid.New(),
				Type:        entity.TransactionTypeExpense,
				Category:    entity.CategoryRent,
				Description: "Aluguel do escritório",
				Amount:      decimal.NewFromInt(1200),
				Date:        time.Now().AddDate(0, 0, -3),
			},
		},
		series: []*entity.MonthlyAggregate{
			{Month: "Jul", Income: decimal.NewFromInt(2500), Expenses: decimal.NewFromInt(900)},
			{Month: "Ago", Income: decimal.NewFromInt(3000), Expenses: decimal.NewFromInt(1200)},
		},
		totals: adapter.TransactionTotals{
			Income:   decimal.NewFromInt(5500),
			Expenses: decimal.NewFromInt(2100),
		},
	}
}

func TestGetDashboardUseCase(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	newUseCase := func(txRepo *fakeTransactionRepository, cache *fakeDashboardCache) *GetDashboardUseCase {
		return NewGetDashboardUseCase(
			txRepo,
			&fakeClientCounter{total: 4},
			&fakeBudgetCounter{byStatus: map[entity.BudgetStatus]int64{
				entity.BudgetStatusSent:     2,
				entity.BudgetStatusAccepted: 3,
			}},
			cache,
			logger,
		)
	}

	t.Run("builds the payload and stores it in the cache", func(t *testing.T) {
		txRepo := newTransactionRepo()
		cache := &fakeDashboardCache{}
		uc := newUseCase(txRepo, cache)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !output.Summary.TotalIncome.Equal(decimal.NewFromInt(5500)) {
			t.Errorf("expected total income 5500, got %s", output.Summary.TotalIncome)
		}
		if !output.Summary.Balance.Equal(decimal.NewFromInt(3400)) {
			t.Errorf("expected balance 3400, got %s", output.Summary.Balance)
		}
		if output.Summary.IncomeChange != 12.5 || output.Summary.ExpensesChange != -8.3 || output.Summary.BalanceChange != 18.2 {
			t.Errorf("expected placeholder changes 12.5/-8.3/18.2, got %v/%v/%v",
				output.Summary.IncomeChange, output.Summary.ExpensesChange, output.Summary.BalanceChange)
		}
		if len(output.Chart) != 2 || output.Chart[1].Month != "Ago" {
			t.Errorf("expected 2 chart points ending in Ago, got %+v", output.Chart)
		}
		if len(output.RecentTransactions) != 2 {
			t.Errorf("expected 2 recent transactions, got %d", len(output.RecentTransactions))
		}
		if output.Stats.TotalClients != 4 || output.Stats.PendingBudgets != 2 || output.Stats.AcceptedBudgets != 3 {
			t.Errorf("expected stats 4/2/3, got %+v", output.Stats)
		}
		if cache.sets != 1 {
			t.Errorf("expected 1 cache write, got %d", cache.sets)
		}
	})

	t.Run("serves a cached payload without touching the repositories", func(t *testing.T) {
		txRepo := newTransactionRepo()
		cached, _ := json.Marshal(&GetDashboardOutput{
			Summary: SummaryOutput{TotalIncome: decimal.NewFromInt(999)},
		})
		cache := &fakeDashboardCache{payload: cached}
		uc := newUseCase(txRepo, cache)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !output.Summary.TotalIncome.Equal(decimal.NewFromInt(999)) {
			t.Errorf("expected cached income 999, got %s", output.Summary.TotalIncome)
		}
		if txRepo.calls != 0 {
			t.Errorf("expected no repository calls on cache hit, got %d", txRepo.calls)
		}
	})

	t.Run("rebuilds when the cached payload is unreadable", func(t *testing.T) {
		txRepo := newTransactionRepo()
		cache := &fakeDashboardCache{payload: []byte("not json")}
		uc := newUseCase(txRepo, cache)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !output.Summary.TotalIncome.Equal(decimal.NewFromInt(5500)) {
			t.Errorf("expected rebuilt income 5500, got %s", output.Summary.TotalIncome)
		}
	})
}

func TestListRecentTransactionsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the limit to 5", func(t *testing.T) {
		txRepo := newTransactionRepo()
		uc := NewListRecentTransactionsUseCase(txRepo)

		_, err := uc.Execute(ctx, ListRecentTransactionsInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if txRepo.lastLimit != 5 {
			t.Errorf("expected limit 5, got %d", txRepo.lastLimit)
		}
	})

	t.Run("caps the limit at 50", func(t *testing.T) {
		txRepo := newTransactionRepo()
		uc := NewListRecentTransactionsUseCase(txRepo)

		_, err := uc.Execute(ctx, ListRecentTransactionsInput{Limit: 200})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if txRepo.lastLimit != 50 {
			t.Errorf("expected limit 50, got %d", txRepo.lastLimit)
		}
	})

	t.Run("returns the repository transactions in order", func(t *testing.T) {
		txRepo := newTransactionRepo()
		uc := NewListRecentTransactionsUseCase(txRepo)

		output, err := uc.Execute(ctx, ListRecentTransactionsInput{Limit: 2})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(output.Transactions))
		}
		if output.Transactions[0].Type != "income" {
			t.Errorf("expected first transaction income, got %s", output.Transactions[0].Type)
		}
	})
}
