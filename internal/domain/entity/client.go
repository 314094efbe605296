// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address holds the optional postal address of a client. All fields are
// optional; an empty Address is treated as absent.
type Address struct {
	Street  string
	Number  string
	City    string
	State   string
	ZipCode string
}

// IsEmpty reports whether no address field is set.
func (a Address) IsEmpty() bool {
	return a.Street == "" && a.Number == "" && a.City == "" && a.State == "" && a.ZipCode == ""
}

// Client represents a customer record a budget is issued to.
type Client struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Company   string // optional
	Document  string // CPF or CNPJ
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient creates a new Client entity with equal creation and update timestamps.
func NewClient(name, email, phone, company, document string, address Address) *Client {
	now := time.Now().UTC()

	return &Client{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Company:   company,
		Document:  document,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ClientListResult represents the result of listing clients.
type ClientListResult struct {
	Clients    []*Client
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
