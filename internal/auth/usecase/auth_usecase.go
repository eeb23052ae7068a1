package usecase

import (
	"context"
	"errors"
	"strings"

	authdomain "notekeeper-backend/internal/auth/domain"
	authdto "notekeeper-backend/internal/auth/dto"
	"notekeeper-backend/internal/auth/password"
	"notekeeper-backend/internal/auth/repository"
	"notekeeper-backend/pkg/apperror"
	"notekeeper-backend/pkg/logutil"
	"notekeeper-backend/pkg/revocation"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	hasher   password.Hasher
	tokens   TokenService
	revoked  revocation.Store
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, hasher password.Hasher, tokens TokenService, revoked revocation.Store) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		revoked:  revoked,
	}
}

func (u *authUsecase) CreateAccount(ctx context.Context, req *authdto.CreateAccountRequest) (*authdomain.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return nil, apperror.Validation("enter valid name")
	}
	if password.TooLong(req.Password) {
		return nil, apperror.Validation("password must be at most 72 bytes")
	}

	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Email already in use")
	}

	hashed, err := u.hasher.Hash(ctx, req.Password)
	if errors.Is(err, password.ErrTooLong) {
		return nil, apperror.Validation("password must be at most 72 bytes")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &authdomain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent signup for the same email
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, apperror.Conflict("Email already in use")
		}
		return nil, apperror.Internal(err)
	}

	logutil.Component(ctx, "auth").Info().Uint("user_id", user.ID).Msg("account created")
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*authdto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	if !u.hasher.Verify(ctx, req.Password, user.PasswordHash) {
		return nil, apperror.Unauthorized("invalid email or password")
	}

	signed, _, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &authdto.LoginResponse{
		Message: "login successful",
		Token:   signed,
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, authorizationHeader string) error {
	tok, ok := BearerToken(authorizationHeader)
	if !ok {
		return apperror.Unauthorized("No token provided")
	}

	claims, err := u.tokens.Verify(tok)
	if err != nil {
		// an invalid or expired token can no longer be used, nothing to revoke
		logutil.Component(ctx, "auth").Debug().Err(err).Msg("logout with unusable token")
		return nil
	}

	if err := u.revoked.Revoke(ctx, tok, claims.ExpiresAt.Time); err != nil {
		return apperror.Internal(err)
	}
	logutil.Component(ctx, "auth").Info().Uint("user_id", claims.UserID).Msg("token revoked")
	return nil
}

func (u *authUsecase) Authenticate(ctx context.Context, authorizationHeader string) (*authdomain.Identity, error) {
	tok, ok := BearerToken(authorizationHeader)
	if !ok {
		return nil, &AuthError{Reason: ReasonMissingToken}
	}

	revoked, err := u.revoked.IsRevoked(ctx, tok)
	if err != nil {
		return nil, &AuthError{Reason: ReasonRevocationUnavailable, Err: err}
	}
	if revoked {
		return nil, &AuthError{Reason: ReasonRevoked}
	}

	claims, err := u.tokens.Verify(tok)
	if err != nil {
		return nil, &AuthError{Reason: ReasonInvalidOrExpired, Err: err}
	}

	return &authdomain.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

func (u *authUsecase) GetProfile(ctx context.Context, userID uint) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("No user found!")
	}
	return user, nil
}
