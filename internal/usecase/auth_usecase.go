package usecase

import (
	"context"
	"errors"
	"strings"

	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/auth"
)

const (
	msgEmailTaken         = "User with this email already exists"
	msgInvalidCredentials = "Invalid email or password"
	minPasswordLength     = 6
)

// TokenIssuer is satisfied by *auth.TokenManager
type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   TokenIssuer
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens TokenIssuer) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Register(ctx context.Context, email, password, role string) (*domain.AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperror.BadRequest("Email is required")
	}
	if len(password) < minPasswordLength {
		return nil, apperror.BadRequest("Password must be at least 6 characters")
	}
	if !domain.IsValidRole(role) {
		return nil, apperror.BadRequest("Role must be one of: CANDIDATE, COMPANY")
	}

	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperror.BadRequest(msgEmailTaken)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// Concurrent registration with the same email
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest(msgEmailTaken)
		}
		return nil, apperror.Internal(err)
	}

	return u.issue(user)
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized(msgInvalidCredentials)
		}
		return nil, apperror.Internal(err)
	}
	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}
	return u.issue(user)
}

func (u *authUsecase) issue(user *domain.User) (*domain.AuthResult, error) {
	token, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{Token: token, User: user}, nil
}
