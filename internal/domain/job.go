package domain

import (
	"context"
	"time"
)

// Job categories
const (
	CategoryIT          = "IT"
	CategoryMarketing   = "MARKETING"
	CategorySales       = "SALES"
	CategoryFinance     = "FINANCE"
	CategoryDesign      = "DESIGN"
	CategoryEngineering = "ENGINEERING"
	CategoryEducation   = "EDUCATION"
	CategoryHealthcare  = "HEALTHCARE"
	CategoryOther       = "OTHER"
)

var JobCategories = []string{
	CategoryIT, CategoryMarketing, CategorySales, CategoryFinance, CategoryDesign,
	CategoryEngineering, CategoryEducation, CategoryHealthcare, CategoryOther,
}

func IsValidCategory(category string) bool {
	for _, c := range JobCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Job struct {
	ID               string    `json:"id"`
	CompanyID        string    `json:"companyId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	City             string    `json:"city"`
	Salary           *string   `json:"salary"`
	Experience       *string   `json:"experience"`
	Requirements     *string   `json:"requirements"`
	Responsibilities *string   `json:"responsibilities"`
	PDFURL           *string   `json:"pdfUrl"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	// Joined data
	Company          *Company `json:"company,omitempty"`
	ApplicationCount *int     `json:"applicationCount,omitempty"`
}

// JobFilter holds the public list query parameters
type JobFilter struct {
	Category string
	City     string
	Search   string
	Limit    int
	Offset   int
}

type JobInput struct {
	Title            string
	Description      string
	Category         string
	City             string
	Salary           *string
	Experience       *string
	Requirements     *string
	Responsibilities *string
	PDF              *FileUpload
}

// JobUpdate is a partial update; nil fields are left unchanged
type JobUpdate struct {
	Title            *string
	Description      *string
	Category         *string
	City             *string
	Salary           *string
	Experience       *string
	Requirements     *string
	Responsibilities *string
	IsActive         *bool
	PDF              *FileUpload
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	// GetByIDWithCompany embeds the owning company
	GetByIDWithCompany(ctx context.Context, id string) (*Job, error)
	Update(ctx context.Context, job *Job) error
	ListActive(ctx context.Context, filter JobFilter) ([]Job, error)
	// ListByCompany returns every job of the company with its application count
	ListByCompany(ctx context.Context, companyID string) ([]Job, error)
}

type JobUsecase interface {
	Create(ctx context.Context, userID string, input JobInput) (*Job, error)
	Update(ctx context.Context, userID, jobID string, update JobUpdate) (*Job, error)
	ListActive(ctx context.Context, filter JobFilter) ([]Job, error)
	GetByID(ctx context.Context, id string) (*Job, error)
}
