package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fynora/backend/internal/application/usecase/budget"
	domainerror "github.com/fynora/backend/internal/domain/error"
	"github.com/fynora/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget management endpoints.
type BudgetController struct {
	listBudgetsUseCase        *budget.ListBudgetsUseCase
	getBudgetUseCase          *budget.GetBudgetUseCase
	createBudgetUseCase       *budget.CreateBudgetUseCase
	updateBudgetUseCase       *budget.UpdateBudgetUseCase
	updateBudgetStatusUseCase *budget.UpdateBudgetStatusUseCase
	deleteBudgetUseCase       *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listBudgetsUseCase *budget.ListBudgetsUseCase,
	getBudgetUseCase *budget.GetBudgetUseCase,
	createBudgetUseCase *budget.CreateBudgetUseCase,
	updateBudgetUseCase *budget.UpdateBudgetUseCase,
	updateBudgetStatusUseCase *budget.UpdateBudgetStatusUseCase,
	deleteBudgetUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		listBudgetsUseCase:        listBudgetsUseCase,
		getBudgetUseCase:          getBudgetUseCase,
		createBudgetUseCase:       createBudgetUseCase,
		updateBudgetUseCase:       updateBudgetUseCase,
		updateBudgetStatusUseCase: updateBudgetStatusUseCase,
		deleteBudgetUseCase:       deleteBudgetUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	output, err := c.listBudgetsUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		Status: ctx.Query("status"),
		Search: ctx.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	id, ok := c.parseBudgetID(ctx)
	if !ok {
		return
	}

	output, err := c.getBudgetUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidBudgetPayload),
			Details: err.Error(),
		})
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID",
			Code:  string(domainerror.ErrCodeBudgetClientNotFound),
		})
		return
	}

	output, err := c.createBudgetUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		ClientID:   clientID,
		Items:      toBudgetItemInputs(req.Items),
		Discount:   req.Discount,
		ValidUntil: req.ValidUntil,
		Notes:      req.Notes,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	id, ok := c.parseBudgetID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidBudgetPayload),
			Details: err.Error(),
		})
		return
	}

	input := budget.UpdateBudgetInput{
		ID:         id,
		Discount:   req.Discount,
		Status:     req.Status,
		ValidUntil: req.ValidUntil,
		Notes:      req.Notes,
	}
	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid client ID",
				Code:  string(domainerror.ErrCodeBudgetClientNotFound),
			})
			return
		}
		input.ClientID = &clientID
	}
	if req.Items != nil {
		input.Items = toBudgetItemInputs(req.Items)
	}

	output, err := c.updateBudgetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output))
}

// UpdateStatus handles PATCH /budgets/:id/status requests.
func (c *BudgetController) UpdateStatus(ctx *gin.Context) {
	id, ok := c.parseBudgetID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBudgetStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid status",
			Code:    string(domainerror.ErrCodeInvalidBudgetStatus),
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateBudgetStatusUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetStatusInput{
		ID:     id,
		Status: req.Status,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	id, ok := c.parseBudgetID(ctx)
	if !ok {
		return
	}

	if err := c.deleteBudgetUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted successfully"})
}

func (c *BudgetController) parseBudgetID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID",
			Code:  string(domainerror.ErrCodeBudgetNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}

func toBudgetItemInputs(items []dto.BudgetItemRequest) []budget.CreateBudgetItemInput {
	inputs := make([]budget.CreateBudgetItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, budget.CreateBudgetItemInput{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return inputs
}

// handleBudgetError maps budget domain errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(c.getStatusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetClientNotFound,
		domainerror.ErrCodeInvalidBudgetStatus,
		domainerror.ErrCodeEmptyBudgetItems,
		domainerror.ErrCodeInvalidItemQuantity,
		domainerror.ErrCodeInvalidItemPrice,
		domainerror.ErrCodeInvalidDiscount,
		domainerror.ErrCodeInvalidValidUntil:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
