package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fynora/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.ClientModel{},
		&model.BudgetModel{},
		&model.BudgetItemModel{},
		&model.BudgetSequenceModel{},
		&model.TransactionModel{},
		&model.MonthlyAggregateModel{},
		&model.EmailQueueModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
