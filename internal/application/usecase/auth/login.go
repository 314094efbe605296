// Package auth contains authentication use cases.
package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/application/adapter"
	"github.com/fynora/backend/internal/domain/entity"
	domainerror "github.com/fynora/backend/internal/domain/error"
)

// LoginInput represents the input for logging in.
type LoginInput struct {
	Email    string
	Password string
}

// UserOutput represents the authenticated user in responses.
type UserOutput struct {
	ID      uuid.UUID
	Email   string
	Name    string
	Company string
}

// LoginOutput represents the output of a successful login.
type LoginOutput struct {
	User         UserOutput
	AccessToken  string
	RefreshToken string
}

// LoginUseCase handles the login flow.
type LoginUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute verifies the credentials and issues a token pair. An unknown email
// and a wrong password produce the same error.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"email and password are required",
			domainerror.ErrInvalidCredentials,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	pair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         toUserOutput(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}

func toUserOutput(user *entity.User) UserOutput {
	return UserOutput{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Company: user.Company,
	}
}
