// Package adapter defines interfaces for external dependencies of use cases.
package adapter

import (
	"context"

	"github.com/fynora/backend/internal/domain/entity"
)

// SendEmailInput represents a single outbound email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult holds the provider's identifier for a sent email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending a single email.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailQueueRepository defines the interface for the email job queue.
type EmailQueueRepository interface {
	// Create enqueues a new email job.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves up to limit jobs that are ready to process.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update persists status changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error
}

// QueueBudgetSentInput contains the data needed to queue a budget email.
type QueueBudgetSentInput struct {
	ClientEmail  string
	ClientName   string
	BudgetNumber string
	BudgetTotal  string
	ValidUntil   string
	SenderName   string
}

// EmailService defines the interface for queueing domain emails.
type EmailService interface {
	QueueBudgetSentEmail(ctx context.Context, input QueueBudgetSentInput) error
}
