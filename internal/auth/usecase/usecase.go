package usecase

import (
	"context"
	"time"

	authdomain "notekeeper-backend/internal/auth/domain"
	authdto "notekeeper-backend/internal/auth/dto"
	"notekeeper-backend/pkg/token"
)

// AuthUsecase defines the interface for account and session logic
type AuthUsecase interface {
	// CreateAccount registers a new user; the email must be unused
	CreateAccount(ctx context.Context, req *authdto.CreateAccountRequest) (*authdomain.User, error)

	// Login checks credentials and issues a bearer token
	Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.LoginResponse, error)

	// Logout revokes the bearer token found in the Authorization header
	Logout(ctx context.Context, authorizationHeader string) error

	// Authenticate resolves the caller from the Authorization header
	Authenticate(ctx context.Context, authorizationHeader string) (*authdomain.Identity, error)

	// GetProfile returns the user behind an authenticated identity
	GetProfile(ctx context.Context, userID uint) (*authdomain.User, error)
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(userID uint, email string) (string, time.Time, error)
	Verify(tokenString string) (*token.Claims, error)
}
