// Package client contains client-related use cases.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/application/adapter"
	domainerror "github.com/fynora/backend/internal/domain/error"
)

// DeleteClientInput represents the input for client deletion.
type DeleteClientInput struct {
	ClientID uuid.UUID
}

// DeleteClientOutput represents the output of client deletion.
type DeleteClientOutput struct {
	Deleted bool
}

// DeleteClientUseCase handles client deletion logic.
//
// Budgets referencing the client are intentionally not touched: they keep the
// dangling client id and their client join resolves to nil from then on.
type DeleteClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(clientRepo adapter.ClientRepository) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client deletion.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, input DeleteClientInput) (*DeleteClientOutput, error) {
	if _, err := uc.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	if err := uc.clientRepo.Delete(ctx, input.ClientID); err != nil {
		return nil, fmt.Errorf("failed to delete client: %w", err)
	}

	return &DeleteClientOutput{Deleted: true}, nil
}
