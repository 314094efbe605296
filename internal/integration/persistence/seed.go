package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
	"github.com/fynora/backend/internal/integration/persistence/model"
)

// Deterministic IDs keep the demo dataset stable across re-seeds and let seed
// rows reference each other.
var (
	seedUserID = uuid.MustParse("a0000000-0000-0000-0000-000000000001")

	seedClientIDs = []uuid.UUID{
		uuid.MustParse("c0000000-0000-0000-0000-000000000001"),
		uuid.MustParse("c0000000-0000-0000-0000-000000000002"),
		uuid.MustParse("c0000000-0000-0000-0000-000000000003"),
		uuid.MustParse("c0000000-0000-0000-0000-000000000004"),
		uuid.MustParse("c0000000-0000-0000-0000-000000000005"),
	}

	seedBudgetIDs = []uuid.UUID{
		uuid.MustParse("b0000000-0000-0000-0000-000000000001"),
		uuid.MustParse("b0000000-0000-0000-0000-000000000002"),
		uuid.MustParse("b0000000-0000-0000-0000-000000000003"),
		uuid.MustParse("b0000000-0000-0000-0000-000000000004"),
	}
)

// Seeder populates an empty database with the demo dataset.
type Seeder struct {
	db              *gorm.DB
	passwordService adapter.PasswordService
}

// NewSeeder creates a new Seeder instance.
func NewSeeder(db *gorm.DB, passwordService adapter.PasswordService) *Seeder {
	return &Seeder{
		db:              db,
		passwordService: passwordService,
	}
}

// Seed inserts the demo data when the users table is empty. Running it against
// a populated database is a no-op.
func (s *Seeder) Seed(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.seedUser(tx); err != nil {
			return err
		}
		if err := s.seedClients(tx); err != nil {
			return err
		}
		if err := s.seedBudgets(tx); err != nil {
			return err
		}
		if err := s.seedTransactions(tx); err != nil {
			return err
		}
		return s.seedMonthlyAggregates(tx)
	})
}

func (s *Seeder) seedUser(tx *gorm.DB) error {
	hash, err := s.passwordService.HashPassword("123456")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           seedUserID,
		Email:        "admin@gestormei.com",
		Name:         "João Silva",
		Company:      "MEI Solutions",
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return tx.Create(user).Error
}

func (s *Seeder) seedClients(tx *gorm.DB) error {
	clients := []*model.ClientModel{
		{
			ID:             seedClientIDs[0],
			Name:           "Maria Santos",
			Email:          "maria@email.com",
			Phone:          "(11) 99999-1234",
			Company:        "Santos Consultoria",
			Document:       "12.345.678/0001-90",
			AddressStreet:  "Rua das Flores",
			AddressNumber:  "123",
			AddressCity:    "São Paulo",
			AddressState:   "SP",
			AddressZipCode: "01234-567",
			CreatedAt:      date("2024-01-15T10:00:00Z"),
			UpdatedAt:      date("2024-01-15T10:00:00Z"),
		},
		{
			ID:           seedClientIDs[1],
			Name:         "Carlos Oliveira",
			Email:        "carlos@email.com",
			Phone:        "(21) 98888-5678",
			Document:     "987.654.321-00",
			AddressCity:  "Rio de Janeiro",
			AddressState: "RJ",
			CreatedAt:    date("2024-02-20T14:30:00Z"),
			UpdatedAt:    date("2024-02-20T14:30:00Z"),
		},
		{
			ID:             seedClientIDs[2],
			Name:           "Ana Costa",
			Email:          "ana.costa@empresa.com",
			Phone:          "(31) 97777-9012",
			Company:        "Costa & Filhos LTDA",
			Document:       "45.678.901/0001-23",
			AddressStreet:  "Av. Brasil",
			AddressNumber:  "500",
			AddressCity:    "Belo Horizonte",
			AddressState:   "MG",
			AddressZipCode: "30100-000",
			CreatedAt:      date("2024-03-10T09:15:00Z"),
			UpdatedAt:      date("2024-03-10T09:15:00Z"),
		},
		{
			ID:        seedClientIDs[3],
			Name:      "Pedro Almeida",
			Email:     "pedro.almeida@gmail.com",
			Phone:     "(41) 96666-3456",
			Document:  "456.789.012-34",
			CreatedAt: date("2024-03-25T16:45:00Z"),
			UpdatedAt: date("2024-03-25T16:45:00Z"),
		},
		{
			ID:             seedClientIDs[4],
			Name:           "Fernanda Lima",
			Email:          "fernanda@lima.adv.br",
			Phone:          "(51) 95555-7890",
			Company:        "Lima Advocacia",
			Document:       "78.901.234/0001-56",
			AddressStreet:  "Rua da Justiça",
			AddressNumber:  "42",
			AddressCity:    "Porto Alegre",
			AddressState:   "RS",
			AddressZipCode: "90000-000",
			CreatedAt:      date("2024-04-05T11:20:00Z"),
			UpdatedAt:      date("2024-04-05T11:20:00Z"),
		},
	}
	return tx.Create(clients).Error
}

func (s *Seeder) seedBudgets(tx *gorm.DB) error {
	budgets := []*entity.Budget{
		{
			ID:       seedBudgetIDs[0],
			Number:   "ORC-2024-0001",
			ClientID: seedClientIDs[0],
			Items: []entity.BudgetItem{
				{ID: uuid.New(), Name: "Consultoria em Marketing Digital", Quantity: 1, UnitPrice: money(2500), Total: money(2500)},
				{ID: uuid.New(), Name: "Gestão de Redes Sociais (mensal)", Quantity: 3, UnitPrice: money(800), Total: money(2400)},
			},
			Subtotal:   money(4900),
			Discount:   money(0),
			Total:      money(4900),
			Status:     entity.BudgetStatusAccepted,
			ValidUntil: date("2024-04-15T00:00:00Z"),
			Notes:      "Inclui relatórios mensais de performance.",
			CreatedAt:  date("2024-03-15T10:00:00Z"),
			UpdatedAt:  date("2024-03-20T14:30:00Z"),
		},
		{
			ID:       seedBudgetIDs[1],
			Number:   "ORC-2024-0002",
			ClientID: seedClientIDs[1],
			Items: []entity.BudgetItem{
				{ID: uuid.New(), Name: "Desenvolvimento de Website", Quantity: 1, UnitPrice: money(5000), Total: money(5000)},
				{ID: uuid.New(), Name: "Hospedagem (anual)", Quantity: 1, UnitPrice: money(600), Total: money(600)},
			},
			Subtotal:   money(5600),
			Discount:   money(300),
			Total:      money(5300),
			Status:     entity.BudgetStatusSent,
			ValidUntil: date("2024-04-30T00:00:00Z"),
			CreatedAt:  date("2024-04-01T09:15:00Z"),
			UpdatedAt:  date("2024-04-01T09:15:00Z"),
		},
		{
			ID:       seedBudgetIDs[2],
			Number:   "ORC-2024-0003",
			ClientID: seedClientIDs[2],
			Items: []entity.BudgetItem{
				{ID: uuid.New(), Name: "Identidade Visual Completa", Quantity: 1, UnitPrice: money(3500), Total: money(3500)},
				{ID: uuid.New(), Name: "Manual de Marca", Quantity: 1, UnitPrice: money(1200), Total: money(1200)},
				{ID: uuid.New(), Name: "Papelaria Básica", Quantity: 1, UnitPrice: money(800), Total: money(800)},
			},
			Subtotal:   money(5500),
			Discount:   money(500),
			Total:      money(5000),
			Status:     entity.BudgetStatusDraft,
			ValidUntil: date("2024-05-15T00:00:00Z"),
			Notes:      "Prazo de entrega: 30 dias úteis após aprovação.",
			CreatedAt:  date("2024-04-10T16:45:00Z"),
			UpdatedAt:  date("2024-04-10T16:45:00Z"),
		},
		{
			ID:       seedBudgetIDs[3],
			Number:   "ORC-2024-0004",
			ClientID: seedClientIDs[3],
			Items: []entity.BudgetItem{
				{ID: uuid.New(), Name: "Fotografia de Produto", Quantity: 20, UnitPrice: money(150), Total: money(3000)},
			},
			Subtotal:   money(3000),
			Discount:   money(0),
			Total:      money(3000),
			Status:     entity.BudgetStatusRejected,
			ValidUntil: date("2024-03-30T00:00:00Z"),
			CreatedAt:  date("2024-03-20T11:30:00Z"),
			UpdatedAt:  date("2024-03-25T10:00:00Z"),
		},
	}

	for _, b := range budgets {
		if err := tx.Create(model.BudgetFromEntity(b)).Error; err != nil {
			return err
		}
	}

	// The four demo budgets consumed the first four 2024 numbers.
	return tx.Create(&model.BudgetSequenceModel{Year: 2024, LastSeq: 4}).Error
}

func (s *Seeder) seedTransactions(tx *gorm.DB) error {
	transactions := []*model.TransactionModel{
		{
			ID:          uuid.New(),
			Type:        string(entity.TransactionTypeIncome),
			Category:    string(entity.CategoryServices),
			Description: "Consultoria para Maria Santos",
			Amount:      money(4900),
			Date:        date("2024-03-20T00:00:00Z"),
			ClientID:    &seedClientIDs[0],
			BudgetID:    &seedBudgetIDs[0],
			CreatedAt:   date("2024-03-20T10:00:00Z"),
		},
		{
			ID:          uuid.New(),
			Type:        string(entity.TransactionTypeExpense),
			Category:    string(entity.CategorySupplies),
			Description: "Material de escritório",
			Amount:      money(350),
			Date:        date("2024-03-18T00:00:00Z"),
			CreatedAt:   date("2024-03-18T14:30:00Z"),
		},
		{
			ID:          uuid.New(),
			Type:        string(entity.TransactionTypeIncome),
			Category:    string(entity.CategorySales),
			Description: "Venda de produtos digitais",
			Amount:      money(1200),
			Date:        date("2024-03-15T00:00:00Z"),
			CreatedAt:   date("2024-03-15T09:15:00Z"),
		},
		{
			ID:          uuid.New(),
			Type:        string(entity.TransactionTypeExpense),
			Category:    string(entity.CategoryMarketing),
			Description: "Anúncios Google Ads",
			Amount:      money(500),
			Date:        date("2024-03-12T00:00:00Z"),
			CreatedAt:   date("2024-03-12T16:45:00Z"),
		},
		{
			ID:          uuid.New(),
			Type:        string(entity.TransactionTypeIncome),
			Category:    string(entity.CategoryServices),
			Description: "Desenvolvimento de site",
			Amount:      money(5300),
			Date:        date("2024-03-10T00:00:00Z"),
			ClientID:    &seedClientIDs[1],
			CreatedAt:   date("2024-03-10T11:20:00Z"),
		},
		{
			ID:          uuid.New(),
			Type:        string(entity.TransactionTypeExpense),
			Category:    string(entity.CategoryRent),
			Description: "Aluguel do escritório",
			Amount:      money(1500),
			Date:        date("2024-03-05T00:00:00Z"),
			CreatedAt:   date("2024-03-05T08:00:00Z"),
		},
		{
			ID:          uuid.New(),
			Type:        string(entity.TransactionTypeExpense),
			Category:    string(entity.CategoryUtilities),
			Description: "Conta de energia",
			Amount:      money(280),
			Date:        date("2024-03-03T00:00:00Z"),
			CreatedAt:   date("2024-03-03T10:30:00Z"),
		},
		{
			ID:          uuid.New(),
			Type:        string(entity.TransactionTypeIncome),
			Category:    string(entity.CategoryServices),
			Description: "Manutenção mensal - Cliente Premium",
			Amount:      money(2000),
			Date:        date("2024-03-01T00:00:00Z"),
			CreatedAt:   date("2024-03-01T09:00:00Z"),
		},
	}
	return tx.Create(transactions).Error
}

func (s *Seeder) seedMonthlyAggregates(tx *gorm.DB) error {
	aggregates := []*model.MonthlyAggregateModel{
		{Month: "Out", Income: money(8500), Expenses: money(3200), Position: 1},
		{Month: "Nov", Income: money(12000), Expenses: money(4100), Position: 2},
		{Month: "Dez", Income: money(15500), Expenses: money(5800), Position: 3},
		{Month: "Jan", Income: money(9800), Expenses: money(3500), Position: 4},
		{Month: "Fev", Income: money(11200), Expenses: money(4200), Position: 5},
		{Month: "Mar", Income: money(13400), Expenses: money(2630), Position: 6},
	}
	return tx.Create(aggregates).Error
}

func date(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func money(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}
