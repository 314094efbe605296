package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/fynora/backend/internal/domain/error"
)

// fakeTokenRepository is an in-memory persistence.TokenRepository for tests.
type fakeTokenRepository struct {
	saved       map[string]uuid.UUID
	invalidated map[string]bool
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{
		saved:       make(map[string]uuid.UUID),
		invalidated: make(map[string]bool),
	}
}

func (r *fakeTokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	r.saved[token] = userID
	return nil
}

func (r *fakeTokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	if _, ok := r.saved[token]; !ok {
		return false, nil
	}
	return !r.invalidated[token], nil
}

func (r *fakeTokenRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	r.invalidated[token] = true
	return nil
}

func (r *fakeTokenRepository) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	for token, owner := range r.saved {
		if owner == userID {
			r.invalidated[token] = true
		}
	}
	return nil
}

func assertAuthErrorCode(t *testing.T, err error, code domainerror.AuthErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected an AuthError, got %T: %v", err, err)
	}
	if authErr.Code != code {
		t.Errorf("expected error code %s, got %s", code, authErr.Code)
	}
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	const secret = "test-secret"

	t.Run("generates a pair whose claims round-trip", func(t *testing.T) {
		repo := newFakeTokenRepository()
		service := NewTokenService(secret, repo)
		userID := uuid.New()

		pair, err := service.GenerateTokenPair(ctx, userID, "ana@example.com")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if pair.AccessToken == pair.RefreshToken {
			t.Error("expected distinct access and refresh tokens")
		}
		if _, ok := repo.saved[pair.RefreshToken]; !ok {
			t.Error("expected the refresh token to be persisted")
		}

		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user id %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "ana@example.com" {
			t.Errorf("expected email ana@example.com, got %s", claims.Email)
		}
		if !claims.ExpiresAt.After(time.Now()) {
			t.Error("expected a future expiry")
		}
	})

	t.Run("rejects a refresh token presented as an access token", func(t *testing.T) {
		service := NewTokenService(secret, newFakeTokenRepository())
		pair, err := service.GenerateTokenPair(ctx, uuid.New(), "ana@example.com")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		_, err = service.ValidateAccessToken(ctx, pair.RefreshToken)
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidToken)

		_, err = service.ValidateRefreshToken(ctx, pair.AccessToken)
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidToken)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewTokenService("other-secret", newFakeTokenRepository())
		pair, err := other.GenerateTokenPair(ctx, uuid.New(), "ana@example.com")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		service := NewTokenService(secret, newFakeTokenRepository())
		_, err = service.ValidateAccessToken(ctx, pair.AccessToken)
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		service := NewTokenService(secret, newFakeTokenRepository())
		_, err := service.ValidateAccessToken(ctx, "not-a-jwt")
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidToken)
	})

	t.Run("tracks refresh token invalidation through the repository", func(t *testing.T) {
		repo := newFakeTokenRepository()
		service := NewTokenService(secret, repo)
		pair, err := service.GenerateTokenPair(ctx, uuid.New(), "ana@example.com")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !valid {
			t.Error("expected a fresh refresh token to be valid")
		}

		if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		valid, err = service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if valid {
			t.Error("expected an invalidated refresh token to be invalid")
		}
	})
}

func TestPasswordService(t *testing.T) {
	t.Run("verifies the password it hashed", func(t *testing.T) {
		service := NewPasswordService()

		hash, err := service.HashPassword("Secret123!")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if hash == "Secret123!" {
			t.Error("expected the hash to differ from the plain password")
		}
		if err := service.VerifyPassword(hash, "Secret123!"); err != nil {
			t.Errorf("expected the password to verify, got %v", err)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		service := NewPasswordService()

		hash, err := service.HashPassword("Secret123!")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := service.VerifyPassword(hash, "WrongPass"); err == nil {
			t.Error("expected an error for a wrong password")
		}
	})

	t.Run("hashes are salted", func(t *testing.T) {
		service := NewPasswordService()

		first, err := service.HashPassword("Secret123!")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := service.HashPassword("Secret123!")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if first == second {
			t.Error("expected two hashes of the same password to differ")
		}
	})
}
