// Package email provides email queueing and sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
	domainerror "github.com/fynora/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueBudgetSentEmail queues the notification a client receives when a budget
// is issued to them.
func (s *Service) QueueBudgetSentEmail(ctx context.Context, input adapter.QueueBudgetSentInput) error {
	subject := fmt.Sprintf("Orçamento %s - Fynora", input.BudgetNumber)

	templateData := map[string]interface{}{
		"client_name":   input.ClientName,
		"budget_number": input.BudgetNumber,
		"budget_total":  input.BudgetTotal,
		"valid_until":   input.ValidUntil,
		"sender_name":   input.SenderName,
	}

	job := entity.NewEmailJob(
		entity.TemplateBudgetSent,
		input.ClientEmail,
		input.ClientName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue budget email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
