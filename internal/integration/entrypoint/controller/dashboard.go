package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fynora/backend/internal/application/usecase/dashboard"
	"github.com/fynora/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDashboardUseCase           *dashboard.GetDashboardUseCase
	listRecentTransactionsUseCase *dashboard.ListRecentTransactionsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getDashboardUseCase *dashboard.GetDashboardUseCase,
	listRecentTransactionsUseCase *dashboard.ListRecentTransactionsUseCase,
) *DashboardController {
	return &DashboardController{
		getDashboardUseCase:           getDashboardUseCase,
		listRecentTransactionsUseCase: listRecentTransactionsUseCase,
	}
}

// Get handles GET /dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load dashboard",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetTransactions handles GET /dashboard/transactions requests.
func (c *DashboardController) GetTransactions(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))

	output, err := c.listRecentTransactionsUseCase.Execute(ctx.Request.Context(), dashboard.ListRecentTransactionsInput{
		Limit: limit,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}
