// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/fynora/backend/config"
	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/application/usecase/auth"
	"github.com/fynora/backend/internal/application/usecase/budget"
	"github.com/fynora/backend/internal/application/usecase/client"
	"github.com/fynora/backend/internal/application/usecase/dashboard"
	"github.com/fynora/backend/internal/infra/server/router"
	"github.com/fynora/backend/internal/integration/adapters"
	"github.com/fynora/backend/internal/integration/cache"
	"github.com/fynora/backend/internal/integration/email"
	"github.com/fynora/backend/internal/integration/email/templates"
	"github.com/fynora/backend/internal/integration/entrypoint/controller"
	"github.com/fynora/backend/internal/integration/entrypoint/middleware"
	"github.com/fynora/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	Seeder      *persistence.Seeder
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client may be nil, in which case the dashboard is computed on
// every request.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *slog.Logger) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	clientRepo := persistence.NewClientRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	dashboardCache := cache.NewDashboardCache(redisClient, cfg.Redis.DashboardTTL, logger)
	emailService := email.NewService(emailQueueRepo)

	// Email worker. Without an API key outgoing mail is captured in memory,
	// which keeps local development and tests off the wire.
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		sender = email.NewMockEmailSender()
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Auth use cases
	loginUseCase := auth.NewLoginUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUseCase(tokenService)
	getCurrentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo, passwordService)

	// Client use cases
	listClientsUseCase := client.NewListClientsUseCase(clientRepo)
	getClientUseCase := client.NewGetClientUseCase(clientRepo)
	createClientUseCase := client.NewCreateClientUseCase(clientRepo)
	updateClientUseCase := client.NewUpdateClientUseCase(clientRepo)
	deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo)

	// Budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, clientRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, clientRepo)
	updateBudgetStatusUseCase := budget.NewUpdateBudgetStatusUseCase(budgetRepo, emailService, logger)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Dashboard use cases
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(transactionRepo, clientRepo, budgetRepo, dashboardCache, logger)
	listRecentTransactionsUseCase := dashboard.NewListRecentTransactionsUseCase(transactionRepo)

	// Controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		getCurrentUserUseCase,
		updateProfileUseCase,
	)

	clientController := controller.NewClientController(
		listClientsUseCase,
		getClientUseCase,
		createClientUseCase,
		updateClientUseCase,
		deleteClientUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		getBudgetUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		updateBudgetStatusUseCase,
		deleteBudgetUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getDashboardUseCase,
		listRecentTransactionsUseCase,
	)

	// Middleware
	// Use higher rate limits for test environments to prevent flaky runs
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		clientController,
		budgetController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		Seeder:      persistence.NewSeeder(db, passwordService),
		EmailWorker: emailWorker,
	}, nil
}
