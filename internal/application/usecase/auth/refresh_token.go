package auth

import (
	"context"

	"github.com/fynora/backend/internal/application/adapter"
	domainerror "github.com/fynora/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for refreshing a token pair.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of a token refresh.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenUseCase handles the refresh flow with refresh token rotation.
type RefreshTokenUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokenService: tokenService,
	}
}

// Execute validates the refresh token and issues a fresh pair. The old refresh
// token is invalidated, so each refresh token works exactly once.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"refresh token is required",
			domainerror.ErrInvalidToken,
		)
	}

	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	valid, err := uc.tokenService.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeTokenInvalidated,
			"refresh token has been invalidated",
			domainerror.ErrTokenInvalidated,
		)
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, err
	}

	pair, err := uc.tokenService.GenerateTokenPair(ctx, claims.UserID, claims.Email)
	if err != nil {
		return nil, err
	}

	return &RefreshTokenOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
