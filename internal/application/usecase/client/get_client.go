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

// GetClientInput represents the input for retrieving a client.
type GetClientInput struct {
	ClientID uuid.UUID
}

// GetClientOutput represents the output of retrieving a client.
type GetClientOutput struct {
	Client *ClientOutput
}

// GetClientUseCase handles client retrieval logic.
type GetClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewGetClientUseCase creates a new GetClientUseCase instance.
func NewGetClientUseCase(clientRepo adapter.ClientRepository) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client retrieval.
func (uc *GetClientUseCase) Execute(ctx context.Context, input GetClientInput) (*GetClientOutput, error) {
	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return &GetClientOutput{Client: toClientOutput(client)}, nil
}
