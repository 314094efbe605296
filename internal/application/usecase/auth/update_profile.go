package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/application/adapter"
)

// UpdateProfileInput represents the input for updating the user's own profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID   uuid.UUID
	Name     *string
	Company  *string
	Password *string
}

// UpdateProfileUseCase handles profile updates for the authenticated user.
type UpdateProfileUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute applies the supplied fields to the user's profile. A new password is
// re-hashed before persisting.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Company != nil {
		user.Company = *input.Company
	}
	if input.Password != nil {
		hash, err := uc.passwordService.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	out := toUserOutput(user)
	return &out, nil
}
