package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/application/adapter"
)

// GetCurrentUserUseCase fetches the profile of the authenticated user.
type GetCurrentUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetCurrentUserUseCase creates a new GetCurrentUserUseCase instance.
func NewGetCurrentUserUseCase(userRepo adapter.UserRepository) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
	}
}

// Execute retrieves the user by the ID carried in the access token.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uuid.UUID) (*UserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := toUserOutput(user)
	return &out, nil
}
