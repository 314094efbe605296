// Package client contains client-related use cases.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
	domainerror "github.com/fynora/backend/internal/domain/error"
)

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	Name     string
	Email    string
	Phone    string
	Company  string
	Document string
	Address  entity.Address
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *ClientOutput
}

// CreateClientUseCase handles client creation logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client creation.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Document == "" {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeMissingClientFields,
			"name, email, phone and document are required",
			domainerror.ErrMissingClientFields,
		)
	}

	if !isValidDocument(input.Document) {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeInvalidClientDocument,
			"document must be a valid CPF or CNPJ",
			domainerror.ErrInvalidClientDocument,
		)
	}

	client := entity.NewClient(
		input.Name,
		input.Email,
		input.Phone,
		input.Company,
		input.Document,
		input.Address,
	)

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &CreateClientOutput{Client: toClientOutput(client)}, nil
}

// isValidDocument checks the document shape: 11 digits (CPF) or 14 digits
// (CNPJ) after stripping punctuation.
func isValidDocument(doc string) bool {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, doc)
	return len(digits) == 11 || len(digits) == 14
}
