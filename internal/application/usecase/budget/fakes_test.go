package budget

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
	domainerror "github.com/fynora/backend/internal/domain/error"
)

// fakeBudgetRepository is an in-memory adapter.BudgetRepository for tests.
type fakeBudgetRepository struct {
	budgets   map[uuid.UUID]*entity.Budget
	clients   map[uuid.UUID]*entity.Client
	sequences map[int]int64
}

func newFakeBudgetRepository() *fakeBudgetRepository {
	return &fakeBudgetRepository{
		budgets:   make(map[uuid.UUID]*entity.Budget),
		clients:   make(map[uuid.UUID]*entity.Client),
		sequences: make(map[int]int64),
	}
}

func (r *fakeBudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	budget, ok := r.budgets[id]
	if !ok {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	copied := *budget
	return &copied, nil
}

func (r *fakeBudgetRepository) FindByIDWithClient(ctx context.Context, id uuid.UUID) (*entity.BudgetWithClient, error) {
	budget, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.BudgetWithClient{
		Budget: budget,
		Client: r.clients[budget.ClientID],
	}, nil
}

func (r *fakeBudgetRepository) FindByFilter(ctx context.Context, filter adapter.BudgetFilter, pagination adapter.BudgetPagination) (*entity.BudgetListResult, error) {
	var matched []*entity.BudgetWithClient
	for _, budget := range r.budgets {
		if filter.Status != "" && string(budget.Status) != filter.Status {
			continue
		}
		matched = append(matched, &entity.BudgetWithClient{
			Budget: budget,
			Client: r.clients[budget.ClientID],
		})
	}
	return &entity.BudgetListResult{
		Budgets:    matched,
		Total:      int64(len(matched)),
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: 1,
	}, nil
}

func (r *fakeBudgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	if _, ok := r.budgets[budget.ID]; !ok {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BudgetStatus) error {
	budget, ok := r.budgets[id]
	if !ok {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	budget.Status = status
	budget.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBudgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.budgets[id]; !ok {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	delete(r.budgets, id)
	return nil
}

func (r *fakeBudgetRepository) NextSequence(ctx context.Context, year int) (int64, error) {
	r.sequences[year]++
	return r.sequences[year], nil
}

func (r *fakeBudgetRepository) CountByStatus(ctx context.Context, status entity.BudgetStatus) (int64, error) {
	var count int64
	for _, budget := range r.budgets {
		if budget.Status == status {
			count++
		}
	}
	return count, nil
}

// fakeClientRepository is an in-memory adapter.ClientRepository for tests.
type fakeClientRepository struct {
	clients map[uuid.UUID]*entity.Client
	findErr error
}

func newFakeClientRepository() *fakeClientRepository {
	return &fakeClientRepository{clients: make(map[uuid.UUID]*entity.Client)}
}

func (r *fakeClientRepository) Create(ctx context.Context, client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	client, ok := r.clients[id]
	if !ok {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}
	return client, nil
}

func (r *fakeClientRepository) FindByFilter(ctx context.Context, filter adapter.ClientFilter, pagination adapter.ClientPagination) (*entity.ClientListResult, error) {
	var matched []*entity.Client
	for _, client := range r.clients {
		matched = append(matched, client)
	}
	return &entity.ClientListResult{
		Clients:    matched,
		Total:      int64(len(matched)),
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: 1,
	}, nil
}

func (r *fakeClientRepository) Update(ctx context.Context, client *entity.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return domainerror.NewClientError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.clients[id]; !ok {
		return domainerror.NewClientError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.clients)), nil
}

// fakeEmailService records queued budget emails.
type fakeEmailService struct {
	queued []adapter.QueueBudgetSentInput
	err    error
}

func (s *fakeEmailService) QueueBudgetSentEmail(ctx context.Context, input adapter.QueueBudgetSentInput) error {
	if s.err != nil {
		return s.err
	}
	s.queued = append(s.queued, input)
	return nil
}
