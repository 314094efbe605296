// Package client contains client-related use cases.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
	domainerror "github.com/fynora/backend/internal/domain/error"
)

// UpdateClientInput represents the input for client update. Nil fields are
// left unchanged on the stored record.
type UpdateClientInput struct {
	ClientID uuid.UUID
	Name     *string
	Email    *string
	Phone    *string
	Company  *string
	Document *string
	Address  *entity.Address
}

// UpdateClientOutput represents the output of client update.
type UpdateClientOutput struct {
	Client *ClientOutput
}

// UpdateClientUseCase handles client update logic.
type UpdateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(clientRepo adapter.ClientRepository) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client update.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*UpdateClientOutput, error) {
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

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Company != nil {
		client.Company = *input.Company
	}
	if input.Document != nil {
		if !isValidDocument(*input.Document) {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeInvalidClientDocument,
				"document must be a valid CPF or CNPJ",
				domainerror.ErrInvalidClientDocument,
			)
		}
		client.Document = *input.Document
	}
	if input.Address != nil {
		client.Address = *input.Address
	}

	client.UpdatedAt = time.Now().UTC()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &UpdateClientOutput{Client: toClientOutput(client)}, nil
}
