package auth

import (
	"context"

	"github.com/fynora/backend/internal/application/adapter"
)

// LogoutInput represents the input for logging out.
type LogoutInput struct {
	RefreshToken string
}

// LogoutUseCase handles the logout flow.
type LogoutUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUseCase creates a new LogoutUseCase instance.
func NewLogoutUseCase(tokenService adapter.TokenService) *LogoutUseCase {
	return &LogoutUseCase{
		tokenService: tokenService,
	}
}

// Execute invalidates the refresh token. Logging out with a token that is
// already invalid is not an error.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) error {
	if input.RefreshToken == "" {
		return nil
	}
	return uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)
}
