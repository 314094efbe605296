// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fynora/backend/internal/application/usecase/auth"
	domainerror "github.com/fynora/backend/internal/domain/error"
	"github.com/fynora/backend/internal/integration/entrypoint/dto"
	"github.com/fynora/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	loginUseCase          *auth.LoginUseCase
	refreshUseCase        *auth.RefreshTokenUseCase
	logoutUseCase         *auth.LogoutUseCase
	getCurrentUserUseCase *auth.GetCurrentUserUseCase
	updateProfileUseCase  *auth.UpdateProfileUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	loginUseCase *auth.LoginUseCase,
	refreshUseCase *auth.RefreshTokenUseCase,
	logoutUseCase *auth.LogoutUseCase,
	getCurrentUserUseCase *auth.GetCurrentUserUseCase,
	updateProfileUseCase *auth.UpdateProfileUseCase,
) *AuthController {
	return &AuthController{
		loginUseCase:          loginUseCase,
		refreshUseCase:        refreshUseCase,
		logoutUseCase:         logoutUseCase,
		getCurrentUserUseCase: getCurrentUserUseCase,
		updateProfileUseCase:  updateProfileUseCase,
	}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		User:         dto.ToUserResponse(&output.User),
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Refresh handles POST /auth/refresh requests.
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Refresh token is required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.refreshUseCase.Execute(ctx.Request.Context(), auth.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	_ = ctx.ShouldBindJSON(&req)

	if err := c.logoutUseCase.Execute(ctx.Request.Context(), auth.LogoutInput{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to log out",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

// Me handles GET /auth/me requests.
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getCurrentUserUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output))
}

// UpdateProfile handles PATCH /auth/me requests.
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), auth.UpdateProfileInput{
		UserID:   userID,
		Name:     req.Name,
		Company:  req.Company,
		Password: req.Password,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output))
}

// handleAuthError maps auth domain errors to HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(c.getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrUserNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeTokenInvalidated:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingFields, domainerror.ErrCodeMissingToken:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
