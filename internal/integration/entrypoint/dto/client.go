package dto

import (
	"time"

	"github.com/fynora/backend/internal/application/usecase/client"
)

// AddressRequest represents a postal address in request bodies.
type AddressRequest struct {
	Street  string `json:"street,omitempty"`
	Number  string `json:"number,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

// CreateClientRequest represents the request body for client creation.
type CreateClientRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=255"`
	Email    string          `json:"email" binding:"required,email"`
	Phone    string          `json:"phone" binding:"required"`
	Company  string          `json:"company,omitempty"`
	Document string          `json:"document" binding:"required"`
	Address  *AddressRequest `json:"address,omitempty"`
}

// UpdateClientRequest represents the request body for client update.
type UpdateClientRequest struct {
	Name     *string         `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Email    *string         `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string         `json:"phone,omitempty"`
	Company  *string         `json:"company,omitempty"`
	Document *string         `json:"document,omitempty"`
	Address  *AddressRequest `json:"address,omitempty"`
}

// AddressResponse represents a postal address in API responses.
type AddressResponse struct {
	Street  string `json:"street,omitempty"`
	Number  string `json:"number,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

// ClientResponse represents a single client in API responses.
type ClientResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Company   string           `json:"company,omitempty"`
	Document  string           `json:"document"`
	Address   *AddressResponse `json:"address,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// ClientListResponse represents the paginated client listing.
type ClientListResponse struct {
	Data       []ClientResponse `json:"data"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

// ToClientResponse converts a client use case output to a ClientResponse DTO.
func ToClientResponse(output *client.ClientOutput) ClientResponse {
	resp := ClientResponse{
		ID:        output.ID.String(),
		Name:      output.Name,
		Email:     output.Email,
		Phone:     output.Phone,
		Company:   output.Company,
		Document:  output.Document,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
	if output.Address != nil {
		resp.Address = &AddressResponse{
			Street:  output.Address.Street,
			Number:  output.Address.Number,
			City:    output.Address.City,
			State:   output.Address.State,
			ZipCode: output.Address.ZipCode,
		}
	}
	return resp
}

// ToClientListResponse converts a listing output to a ClientListResponse.
func ToClientListResponse(output *client.ListClientsOutput) ClientListResponse {
	data := make([]ClientResponse, len(output.Clients))
	for i, c := range output.Clients {
		data[i] = ToClientResponse(c)
	}
	return ClientListResponse{
		Data:       data,
		Total:      output.Pagination.Total,
		Page:       output.Pagination.Page,
		Limit:      output.Pagination.Limit,
		TotalPages: output.Pagination.TotalPages,
	}
}
