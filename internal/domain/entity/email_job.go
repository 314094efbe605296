// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents where an email job sits in its queue lifecycle.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType selects which template a job renders with.
type EmailTemplateType string

const (
	// TemplateBudgetSent notifies a client that a budget was issued to them.
	TemplateBudgetSent EmailTemplateType = "budget_sent"
)

// retry delays indexed by attempt count; first retry is immediate
var emailRetryDelays = []time.Duration{0, 1 * time.Minute, 5 * time.Minute}

// EmailJob is a queued outbound email. Delivery is asynchronous: jobs are
// persisted as pending and picked up by the worker when ScheduledAt passes.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a pending job scheduled for immediate delivery.
func NewEmailJob(templateType EmailTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing claims the job for the current worker pass.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful delivery and the provider's message id.
func (e *EmailJob) MarkSent(providerID string) {
	now := time.Now().UTC()
	e.Status = EmailStatusSent
	e.ProviderID = providerID
	e.ProcessedAt = &now
}

// MarkFailed records a delivery failure. Permanent failures and exhausted
// attempts finalize the job; anything else goes back to pending with a
// backoff applied to ScheduledAt.
func (e *EmailJob) MarkFailed(err error, permanent bool) {
	e.Attempts++
	e.LastError = err.Error()

	if permanent || e.Attempts >= e.MaxAttempts {
		now := time.Now().UTC()
		e.Status = EmailStatusFailed
		e.ProcessedAt = &now
		return
	}

	e.Status = EmailStatusPending
	e.ScheduledAt = e.nextRetryAt()
}

func (e *EmailJob) nextRetryAt() time.Time {
	delay := emailRetryDelays[len(emailRetryDelays)-1]
	if e.Attempts < len(emailRetryDelays) {
		delay = emailRetryDelays[e.Attempts]
	}
	return time.Now().UTC().Add(delay)
}

// IsReadyToProcess reports whether the job is pending and due.
func (e *EmailJob) IsReadyToProcess() bool {
	return e.Status == EmailStatusPending && time.Now().UTC().After(e.ScheduledAt)
}
