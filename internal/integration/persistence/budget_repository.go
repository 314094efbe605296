package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
	domainerror "github.com/fynora/backend/internal/domain/error"
	"github.com/fynora/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget with its items in a single transaction.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	return r.db.WithContext(ctx).Create(budgetModel).Error
}

// FindByID retrieves a budget with its items by ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByIDWithClient retrieves a budget with its items and client by ID.
func (r *budgetRepository) FindByIDWithClient(ctx context.Context, id uuid.UUID) (*entity.BudgetWithClient, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Client").
		Where("id = ?", id).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntityWithClient(), nil
}

// FindByFilter retrieves budgets based on filter criteria with pagination.
func (r *budgetRepository) FindByFilter(ctx context.Context, filter adapter.BudgetFilter, pagination adapter.BudgetPagination) (*entity.BudgetListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.BudgetModel{})

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("budgets.status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.
			Joins("LEFT JOIN clients ON clients.id = budgets.client_id").
			Where("LOWER(budgets.number) LIKE ? OR LOWER(clients.name) LIKE ?", pattern, pattern)
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

	var budgetModels []model.BudgetModel
	result := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Client").
		Order("budgets.created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.BudgetWithClient, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntityWithClient()
	}

	return &entity.BudgetListResult{
		Budgets:    budgets,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates a budget, replacing its items.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", budget.ID).Delete(&model.BudgetItemModel{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(budgetModel).Error
	})
}

// UpdateStatus sets only the status and updated-at timestamp of a budget.
func (r *budgetRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BudgetStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget and its items.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", id).Delete(&model.BudgetItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.BudgetModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrBudgetNotFound
		}
		return nil
	})
}

// NextSequence atomically increments and returns the budget number sequence
// for a year. The row is upserted so the first budget of a year starts at 1.
func (r *budgetRepository) NextSequence(ctx context.Context, year int) (int64, error) {
	var seq model.BudgetSequenceModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}},
			DoUpdates: clause.Assignments(map[string]any{"last_seq": gorm.Expr("budget_sequences.last_seq + 1")}),
		}).Create(&model.BudgetSequenceModel{Year: year, LastSeq: 1}).Error; err != nil {
			return err
		}
		return tx.Where("year = ?", year).First(&seq).Error
	})
	if err != nil {
		return 0, err
	}
	return seq.LastSeq, nil
}

// CountByStatus returns the number of budgets with the given status.
func (r *budgetRepository) CountByStatus(ctx context.Context, status entity.BudgetStatus) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("status = ?", string(status)).
		Count(&count)
	return count, result.Error
}
