package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AuthResult is returned by register and login
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Me is the current user with whichever profile its role owns
type Me struct {
	User      *User      `json:"user"`
	Candidate *Candidate `json:"candidate"`
	Company   *Company   `json:"company"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, email, password, role string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type UserUsecase interface {
	GetMe(ctx context.Context, userID string) (*Me, error)
}
