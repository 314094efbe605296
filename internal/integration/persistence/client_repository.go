// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
	domainerror "github.com/fynora/backend/internal/domain/error"
	"github.com/fynora/backend/internal/integration/persistence/model"
)

// clientRepository implements the adapter.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance.
func NewClientRepository(db *gorm.DB) adapter.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// Create creates a new client in the database.
func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	result := r.db.WithContext(ctx).Create(clientModel)
	return result.Error
}

// FindByID retrieves a client by its ID.
func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientModel model.ClientModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&clientModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClientNotFound
		}
		return nil, result.Error
	}
	return clientModel.ToEntity(), nil
}

// FindByFilter retrieves clients based on filter criteria with pagination.
func (r *clientRepository) FindByFilter(ctx context.Context, filter adapter.ClientFilter, pagination adapter.ClientPagination) (*entity.ClientListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.ClientModel{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ? OR document LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var clientModels []model.ClientModel
	result := query.
		Order(orderClause(filter.SortBy, filter.SortOrder)).
		Offset(offset).
		Limit(pagination.Limit).
		Find(&clientModels)
	if result.Error != nil {
		return nil, result.Error
	}

	clients := make([]*entity.Client, len(clientModels))
	for i, cm := range clientModels {
		clients[i] = cm.ToEntity()
	}

	return &entity.ClientListResult{
		Clients:    clients,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// orderClause maps sort parameters to a safe ORDER BY clause. Unknown columns
// fall back to name ascending.
func orderClause(sortBy, sortOrder string) string {
	column := "name"
	switch sortBy {
	case "name", "email", "company", "created_at":
		column = sortBy
	}
	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}

// Update updates an existing client in the database.
func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	result := r.db.WithContext(ctx).Save(clientModel)
	return result.Error
}

// Delete removes a client from the database. Budgets keep their client_id;
// subsequent joins resolve to nothing.
func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrClientNotFound
	}
	return nil
}

// Count returns the total number of clients.
func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ClientModel{}).Count(&count)
	return count, result.Error
}
