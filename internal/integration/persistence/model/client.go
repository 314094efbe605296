// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/domain/entity"
)

// ClientModel represents the clients table in the database. The address is
// flattened into prefixed columns.
type ClientModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null;index"`
	Email          string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(30);not null"`
	Company        string    `gorm:"type:varchar(255)"`
	Document       string    `gorm:"type:varchar(20);not null"`
	AddressStreet  string    `gorm:"type:varchar(255)"`
	AddressNumber  string    `gorm:"type:varchar(20)"`
	AddressCity    string    `gorm:"type:varchar(100)"`
	AddressState   string    `gorm:"type:varchar(50)"`
	AddressZipCode string    `gorm:"type:varchar(15)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the ClientModel.
func (ClientModel) TableName() string {
	return "clients"
}

// ToEntity converts a ClientModel to a domain Client entity.
func (m *ClientModel) ToEntity() *entity.Client {
	return &entity.Client{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Phone:    m.Phone,
		Company:  m.Company,
		Document: m.Document,
		Address: entity.Address{
			Street:  m.AddressStreet,
			Number:  m.AddressNumber,
			City:    m.AddressCity,
			State:   m.AddressState,
			ZipCode: m.AddressZipCode,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ClientFromEntity creates a ClientModel from a domain Client entity.
func ClientFromEntity(client *entity.Client) *ClientModel {
	return &ClientModel{
		ID:             client.ID,
		Name:           client.Name,
		Email:          client.Email,
		Phone:          client.Phone,
		Company:        client.Company,
		Document:       client.Document,
		AddressStreet:  client.Address.Street,
		AddressNumber:  client.Address.Number,
		AddressCity:    client.Address.City,
		AddressState:   client.Address.State,
		AddressZipCode: client.Address.ZipCode,
		CreatedAt:      client.CreatedAt,
		UpdatedAt:      client.UpdatedAt,
	}
}
