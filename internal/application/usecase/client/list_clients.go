// Package client contains client-related use cases.
package client

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
)

// ListClientsInput represents the input for listing clients.
type ListClientsInput struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// AddressOutput represents a client address in the output.
type AddressOutput struct {
	Street  string
	Number  string
	City    string
	State   string
	ZipCode string
}

// ClientOutput represents a single client in the output.
type ClientOutput struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Company   string
	Document  string
	Address   *AddressOutput
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListClientsOutput represents the output of listing clients.
type ListClientsOutput struct {
	Clients    []*ClientOutput
	Pagination PaginationOutput
}

// ListClientsUseCase handles listing clients logic.
type ListClientsUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewListClientsUseCase creates a new ListClientsUseCase instance.
func NewListClientsUseCase(clientRepo adapter.ClientRepository) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client listing.
func (uc *ListClientsUseCase) Execute(ctx context.Context, input ListClientsInput) (*ListClientsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	filter := adapter.ClientFilter{
		Search:    input.Search,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
	}
	pagination := adapter.ClientPagination{
		Page:  page,
		Limit: limit,
	}

	result, err := uc.clientRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, err
	}

	output := &ListClientsOutput{
		Clients: make([]*ClientOutput, len(result.Clients)),
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
	for i, c := range result.Clients {
		output.Clients[i] = toClientOutput(c)
	}

	return output, nil
}

// toClientOutput converts a Client entity to a ClientOutput.
func toClientOutput(c *entity.Client) *ClientOutput {
	out := &ClientOutput{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Document:  c.Document,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if !c.Address.IsEmpty() {
		out.Address = &AddressOutput{
			Street:  c.Address.Street,
			Number:  c.Address.Number,
			City:    c.Address.City,
			State:   c.Address.State,
			ZipCode: c.Address.ZipCode,
		}
	}
	return out
}
