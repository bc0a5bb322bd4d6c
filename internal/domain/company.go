package domain

import (
	"context"
	"time"
)

type Company struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	City        string    `json:"city"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	LogoURL     *string   `json:"logoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CompanyInput struct {
	Name        string
	Description string
	Website     string
	City        string
	Phone       string
	Email       string
	Logo        *FileUpload
}

type CompanyRepository interface {
	Upsert(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	GetByUserID(ctx context.Context, userID string) (*Company, error)
	List(ctx context.Context) ([]Company, error)
}

type CompanyUsecase interface {
	Upsert(ctx context.Context, identity Identity, input CompanyInput) (*Company, error)
	List(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id string) (*Company, error)
	GetMine(ctx context.Context, userID string) (*Company, error)
}
