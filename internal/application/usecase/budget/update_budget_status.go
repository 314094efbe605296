package budget

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
	domainerror "github.com/fynora/backend/internal/domain/error"
)

// UpdateBudgetStatusInput represents the input for a status-only transition.
type UpdateBudgetStatusInput struct {
	ID     uuid.UUID
	Status string
}

// UpdateBudgetStatusUseCase handles budget status transitions.
type UpdateBudgetStatusUseCase struct {
	budgetRepo   adapter.BudgetRepository
	emailService adapter.EmailService
	logger       *slog.Logger
}

// NewUpdateBudgetStatusUseCase creates a new UpdateBudgetStatusUseCase instance.
func NewUpdateBudgetStatusUseCase(
	budgetRepo adapter.BudgetRepository,
	emailService adapter.EmailService,
	logger *slog.Logger,
) *UpdateBudgetStatusUseCase {
	return &UpdateBudgetStatusUseCase{
		budgetRepo:   budgetRepo,
		emailService: emailService,
		logger:       logger,
	}
}

// Execute transitions the budget to the given status. When the new status is
// sent and the client has an email on record, a notification email is queued;
// queueing failures never fail the transition.
func (uc *UpdateBudgetStatusUseCase) Execute(ctx context.Context, input UpdateBudgetStatusInput) (*BudgetOutput, error) {
	status := entity.BudgetStatus(input.Status)
	if !entity.IsValidBudgetStatus(status) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetStatus,
			"invalid budget status",
			domainerror.ErrInvalidBudgetStatus,
		)
	}

	result, err := uc.budgetRepo.FindByIDWithClient(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	budget := result.Budget

	if err := uc.budgetRepo.UpdateStatus(ctx, input.ID, status); err != nil {
		return nil, err
	}
	budget.Status = status
	budget.UpdatedAt = time.Now().UTC()

	if status == entity.BudgetStatusSent && result.Client != nil && result.Client.Email != "" {
		uc.queueSentEmail(ctx, budget, result.Client)
	}

	return toBudgetOutput(budget, result.Client), nil
}

func (uc *UpdateBudgetStatusUseCase) queueSentEmail(ctx context.Context, budget *entity.Budget, client *entity.Client) {
	err := uc.emailService.QueueBudgetSentEmail(ctx, adapter.QueueBudgetSentInput{
		ClientEmail:  client.Email,
		ClientName:   client.Name,
		BudgetNumber: budget.Number,
		BudgetTotal:  budget.Total.StringFixed(2),
		ValidUntil:   budget.ValidUntil.Format("02/01/2006"),
	})
	if err != nil {
		uc.logger.Warn("failed to queue budget email",
			slog.String("budget_number", budget.Number),
			slog.String("error", err.Error()),
		)
	}
}
