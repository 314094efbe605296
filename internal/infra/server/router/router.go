// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fynora/backend/internal/integration/entrypoint/controller"
	"github.com/fynora/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	clientController    *controller.ClientController
	budgetController    *controller.BudgetController
	dashboardController *controller.DashboardController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	clientController *controller.ClientController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		clientController:    clientController,
		budgetController:    budgetController,
		dashboardController: dashboardController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware includes logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes. Login and refresh are public; the rest of the auth
		// group requires a valid access token.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
			auth.POST("/logout", r.authController.Logout)

			authenticated := auth.Group("")
			authenticated.Use(r.authMiddleware.Authenticate())
			{
				authenticated.GET("/me", r.authController.Me)
				authenticated.PATCH("/me", r.authController.UpdateProfile)
			}
		}

		// Client routes (require authentication)
		clients := v1.Group("/clients")
		clients.Use(r.authMiddleware.Authenticate())
		{
			clients.GET("", r.clientController.List)
			clients.POST("", r.clientController.Create)
			clients.GET("/:id", r.clientController.Get)
			clients.PATCH("/:id", r.clientController.Update)
			clients.DELETE("/:id", r.clientController.Delete)
		}

		// Budget routes (require authentication)
		budgets := v1.Group("/budgets")
		budgets.Use(r.authMiddleware.Authenticate())
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Create)
			budgets.GET("/:id", r.budgetController.Get)
			budgets.PATCH("/:id", r.budgetController.Update)
			budgets.PATCH("/:id/status", r.budgetController.UpdateStatus)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}

		// Dashboard routes (require authentication)
		dashboard := v1.Group("/dashboard")
		dashboard.Use(r.authMiddleware.Authenticate())
		{
			dashboard.GET("", r.dashboardController.Get)
			dashboard.GET("/transactions", r.dashboardController.GetTransactions)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
