package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fynora/backend/internal/application/usecase/client"
	"github.com/fynora/backend/internal/domain/entity"
	domainerror "github.com/fynora/backend/internal/domain/error"
	"github.com/fynora/backend/internal/integration/entrypoint/dto"
)

// ClientController handles client management endpoints.
type ClientController struct {
	listClientsUseCase  *client.ListClientsUseCase
	getClientUseCase    *client.GetClientUseCase
	createClientUseCase *client.CreateClientUseCase
	updateClientUseCase *client.UpdateClientUseCase
	deleteClientUseCase *client.DeleteClientUseCase
}

// NewClientController creates a new client controller instance.
func NewClientController(
	listClientsUseCase *client.ListClientsUseCase,
	getClientUseCase *client.GetClientUseCase,
	createClientUseCase *client.CreateClientUseCase,
	updateClientUseCase *client.UpdateClientUseCase,
	deleteClientUseCase *client.DeleteClientUseCase,
) *ClientController {
	return &ClientController{
		listClientsUseCase:  listClientsUseCase,
		getClientUseCase:    getClientUseCase,
		createClientUseCase: createClientUseCase,
		updateClientUseCase: updateClientUseCase,
		deleteClientUseCase: deleteClientUseCase,
	}
}

// List handles GET /clients requests.
func (c *ClientController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	output, err := c.listClientsUseCase.Execute(ctx.Request.Context(), client.ListClientsInput{
		Search:    ctx.Query("search"),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(output))
}

// Get handles GET /clients/:id requests.
func (c *ClientController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID",
			Code:  string(domainerror.ErrCodeMissingClientFields),
		})
		return
	}

	output, err := c.getClientUseCase.Execute(ctx.Request.Context(), client.GetClientInput{
		ClientID: id,
	})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client))
}

// Create handles POST /clients requests.
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingClientFields),
			Details: err.Error(),
		})
		return
	}

	output, err := c.createClientUseCase.Execute(ctx.Request.Context(), client.CreateClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Document: req.Document,
		Address:  toEntityAddress(req.Address),
	})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(output.Client))
}

// Update handles PATCH /clients/:id requests.
func (c *ClientController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID",
			Code:  string(domainerror.ErrCodeMissingClientFields),
		})
		return
	}

	var req dto.UpdateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingClientFields),
			Details: err.Error(),
		})
		return
	}

	input := client.UpdateClientInput{
		ClientID: id,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Document: req.Document,
	}
	if req.Address != nil {
		addr := toEntityAddress(req.Address)
		input.Address = &addr
	}

	output, err := c.updateClientUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client))
}

// Delete handles DELETE /clients/:id requests.
func (c *ClientController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID",
			Code:  string(domainerror.ErrCodeMissingClientFields),
		})
		return
	}

	if _, err := c.deleteClientUseCase.Execute(ctx.Request.Context(), client.DeleteClientInput{
		ClientID: id,
	}); err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Client deleted successfully"})
}

func toEntityAddress(req *dto.AddressRequest) entity.Address {
	if req == nil {
		return entity.Address{}
	}
	return entity.Address{
		Street:  req.Street,
		Number:  req.Number,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
	}
}

// handleClientError maps client domain errors to HTTP responses.
func (c *ClientController) handleClientError(ctx *gin.Context, err error) {
	var clientErr *domainerror.ClientError
	if errors.As(err, &clientErr) {
		ctx.JSON(c.getStatusCodeForClientError(clientErr.Code), dto.ErrorResponse{
			Error: clientErr.Message,
			Code:  string(clientErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

func (c *ClientController) getStatusCodeForClientError(code domainerror.ClientErrorCode) int {
	switch code {
	case domainerror.ErrCodeClientNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidClientDocument, domainerror.ErrCodeMissingClientFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
