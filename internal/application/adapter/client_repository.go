// Package adapter defines interfaces for external dependencies of use cases.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/domain/entity"
)

// ClientFilter represents filter criteria for listing clients.
type ClientFilter struct {
	// Search matches case-insensitively against name, email, company and document.
	Search    string
	SortBy    string
	SortOrder string
}

// ClientPagination represents pagination parameters for listing clients.
type ClientPagination struct {
	Page  int
	Limit int
}

// ClientRepository defines the interface for client persistence operations.
type ClientRepository interface {
	// Create creates a new client.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by its ID.
	// Returns domain error ErrClientNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindByFilter retrieves clients matching the filter with pagination.
	FindByFilter(ctx context.Context, filter ClientFilter, pagination ClientPagination) (*entity.ClientListResult, error)

	// Update persists changes to an existing client.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client by ID. Budgets referencing the client are left
	// untouched; their client join resolves to nil afterwards.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of clients.
	Count(ctx context.Context) (int64, error)
}
