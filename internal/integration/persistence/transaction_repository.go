package persistence

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
	"github.com/fynora/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// FindRecent retrieves transactions ordered by date descending.
func (r *transactionRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// GetTotals sums transaction amounts grouped by type.
func (r *transactionRepository) GetTotals(ctx context.Context) (*adapter.TransactionTotals, error) {
	totals := &adapter.TransactionTotals{}

	var incomeResult struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("type = ?", string(entity.TransactionTypeIncome)).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&incomeResult).Error; err != nil {
		return nil, err
	}
	totals.Income = incomeResult.Total

	var expenseResult struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("type = ?", string(entity.TransactionTypeExpense)).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&expenseResult).Error; err != nil {
		return nil, err
	}
	totals.Expenses = expenseResult.Total

	return totals, nil
}

// GetMonthlySeries retrieves the stored monthly aggregates in chronological order.
func (r *transactionRepository) GetMonthlySeries(ctx context.Context) ([]*entity.MonthlyAggregate, error) {
	var aggregateModels []model.MonthlyAggregateModel
	result := r.db.WithContext(ctx).
		Order("position ASC").
		Find(&aggregateModels)
	if result.Error != nil {
		return nil, result.Error
	}

	series := make([]*entity.MonthlyAggregate, len(aggregateModels))
	for i, am := range aggregateModels {
		series[i] = am.ToEntity()
	}
	return series, nil
}
