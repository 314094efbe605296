package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fynora/backend/internal/domain/entity"
	domainerror "github.com/fynora/backend/internal/domain/error"
)

func seedBudget(budgetRepo *fakeBudgetRepository, clientRepo *fakeClientRepository) (*entity.Budget, *entity.Client) {
	client := &entity.Client{
		ID:    uuid.New(),
		Name:  "Carlos Oliveira",
		Email: "carlos@example.com",
	}
	clientRepo.clients[client.ID] = client
	budgetRepo.clients[client.ID] = client

	items := []entity.BudgetItem{
		entity.NewBudgetItem("Consultoria", 2, decimal.NewFromInt(500)),
	}
	budget := entity.NewBudget("ORC-2026-0001", client.ID, items, decimal.Zero, time.Now().AddDate(0, 1, 0), "")
	budgetRepo.budgets[budget.ID] = budget
	return budget, client
}

func TestUpdateBudgetUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces items and recomputes totals", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		budget, _ := seedBudget(budgetRepo, clientRepo)
		uc := NewUpdateBudgetUseCase(budgetRepo, clientRepo)

		oldItemID := budget.Items[0].ID
		output, err := uc.Execute(ctx, UpdateBudgetInput{
			ID: budget.ID,
			Items: []CreateBudgetItemInput{
				{Name: "Manutenção", Quantity: 3, UnitPrice: decimal.NewFromInt(200)},
			},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(output.Items))
		}
		if output.Items[0].ID == oldItemID {
			t.Error("expected replaced item to get a fresh id")
		}
		if !output.Subtotal.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected subtotal 600, got %s", output.Subtotal)
		}
		if !output.Total.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected total 600, got %s", output.Total)
		}
	})

	t.Run("keeps existing fields when input fields are nil", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		budget, _ := seedBudget(budgetRepo, clientRepo)
		uc := NewUpdateBudgetUseCase(budgetRepo, clientRepo)

		notes := "desconto aplicado"
		output, err := uc.Execute(ctx, UpdateBudgetInput{
			ID:    budget.ID,
			Notes: &notes,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Notes != notes {
			t.Errorf("expected notes %q, got %q", notes, output.Notes)
		}
		if output.Number != budget.Number {
			t.Errorf("expected number unchanged %s, got %s", budget.Number, output.Number)
		}
		if len(output.Items) != 1 {
			t.Errorf("expected items untouched, got %d items", len(output.Items))
		}
		if !output.Subtotal.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected subtotal 1000, got %s", output.Subtotal)
		}
	})

	t.Run("applies a new discount to the total", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		budget, _ := seedBudget(budgetRepo, clientRepo)
		uc := NewUpdateBudgetUseCase(budgetRepo, clientRepo)

		discount := decimal.NewFromInt(150)
		output, err := uc.Execute(ctx, UpdateBudgetInput{
			ID:       budget.ID,
			Discount: &discount,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !output.Total.Equal(decimal.NewFromInt(850)) {
			t.Errorf("expected total 850, got %s", output.Total)
		}
	})

	t.Run("rejects an unknown replacement client", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		budget, _ := seedBudget(budgetRepo, clientRepo)
		uc := NewUpdateBudgetUseCase(budgetRepo, clientRepo)

		unknown := uuid.New()
		_, err := uc.Execute(ctx, UpdateBudgetInput{
			ID:       budget.ID,
			ClientID: &unknown,
		})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeBudgetClientNotFound)
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		budget, _ := seedBudget(budgetRepo, clientRepo)
		uc := NewUpdateBudgetUseCase(budgetRepo, clientRepo)

		status := "archived"
		_, err := uc.Execute(ctx, UpdateBudgetInput{
			ID:     budget.ID,
			Status: &status,
		})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeInvalidBudgetStatus)
	})

	t.Run("returns not found for an unknown budget", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		uc := NewUpdateBudgetUseCase(budgetRepo, clientRepo)

		_, err := uc.Execute(ctx, UpdateBudgetInput{ID: uuid.New()})
		assertBudgetErrorCode(t, err, domainerror.ErrCodeBudgetNotFound)
	})

	t.Run("returns a nil client when the client was deleted", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		budget, client := seedBudget(budgetRepo, clientRepo)
		delete(clientRepo.clients, client.ID)
		uc := NewUpdateBudgetUseCase(budgetRepo, clientRepo)

		notes := "sem cliente"
		output, err := uc.Execute(ctx, UpdateBudgetInput{ID: budget.ID, Notes: &notes})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Client != nil {
			t.Errorf("expected nil client, got %+v", output.Client)
		}
	})

	t.Run("propagates client lookup failures", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		budget, _ := seedBudget(budgetRepo, clientRepo)
		clientRepo.findErr = errors.New("connection refused")
		uc := NewUpdateBudgetUseCase(budgetRepo, clientRepo)

		notes := "indisponivel"
		_, err := uc.Execute(ctx, UpdateBudgetInput{ID: budget.ID, Notes: &notes})
		if err == nil || err.Error() != "connection refused" {
			t.Errorf("expected connection refused, got %v", err)
		}
	})
}

func TestDeleteBudgetUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing budget", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		budget, _ := seedBudget(budgetRepo, clientRepo)
		uc := NewDeleteBudgetUseCase(budgetRepo)

		if err := uc.Execute(ctx, budget.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(budgetRepo.budgets) != 0 {
			t.Errorf("expected 0 budgets left, got %d", len(budgetRepo.budgets))
		}
	})

	t.Run("returns not found for an unknown budget", func(t *testing.T) {
		uc := NewDeleteBudgetUseCase(newFakeBudgetRepository())
		err := uc.Execute(ctx, uuid.New())
		assertBudgetErrorCode(t, err, domainerror.ErrCodeBudgetNotFound)
	})
}

func TestGetBudgetUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the budget with its client", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		budget, client := seedBudget(budgetRepo, clientRepo)
		uc := NewGetBudgetUseCase(budgetRepo)

		output, err := uc.Execute(ctx, budget.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Client == nil || output.Client.ID != client.ID {
			t.Errorf("expected client %s in output, got %+v", client.ID, output.Client)
		}
	})

	t.Run("returns a nil client when the client was deleted", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		budget, client := seedBudget(budgetRepo, clientRepo)
		delete(budgetRepo.clients, client.ID)
		uc := NewGetBudgetUseCase(budgetRepo)

		output, err := uc.Execute(ctx, budget.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Client != nil {
			t.Errorf("expected nil client, got %+v", output.Client)
		}
	})
}

func TestListBudgetsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults page and limit", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		seedBudget(budgetRepo, clientRepo)
		uc := NewListBudgetsUseCase(budgetRepo)

		output, err := uc.Execute(ctx, ListBudgetsInput{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Pagination.Page != 1 {
			t.Errorf("expected page 1, got %d", output.Pagination.Page)
		}
		if output.Pagination.Limit != 10 {
			t.Errorf("expected limit 10, got %d", output.Pagination.Limit)
		}
		if len(output.Budgets) != 1 {
			t.Errorf("expected 1 budget, got %d", len(output.Budgets))
		}
	})

	t.Run("caps the limit at 100", func(t *testing.T) {
		uc := NewListBudgetsUseCase(newFakeBudgetRepository())
		output, err := uc.Execute(ctx, ListBudgetsInput{Page: 2, Limit: 500})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Pagination.Limit != 100 {
			t.Errorf("expected limit capped at 100, got %d", output.Pagination.Limit)
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		clientRepo := newFakeClientRepository()
		budget, _ := seedBudget(budgetRepo, clientRepo)
		budget.Status = entity.BudgetStatusSent
		uc := NewListBudgetsUseCase(budgetRepo)

		output, err := uc.Execute(ctx, ListBudgetsInput{Status: "sent"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Budgets) != 1 {
			t.Fatalf("expected 1 sent budget, got %d", len(output.Budgets))
		}

		output, err = uc.Execute(ctx, ListBudgetsInput{Status: "accepted"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Budgets) != 0 {
			t.Errorf("expected 0 accepted budgets, got %d", len(output.Budgets))
		}
	})
}
