package domain

import (
	"context"
	"time"
)

type Candidate struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	Profession   string    `json:"profession"`
	Bio          string    `json:"bio"`
	Skills       []string  `json:"skills"`
	PortfolioURL *string   `json:"portfolioUrl"`
	VideoURL     *string   `json:"videoUrl"`
	CVURL        *string   `json:"cvUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (c *Candidate) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// CandidateFilter holds the public list query parameters
type CandidateFilter struct {
	City       string
	Profession string
	Search     string
	Limit      int
}

// HasCriteria reports whether any text filter is set
func (f CandidateFilter) HasCriteria() bool {
	return f.City != "" || f.Profession != "" || f.Search != ""
}

// CandidateInput is the create/update payload; nil files keep the stored URLs
type CandidateInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	City         string
	Profession   string
	Bio          string
	Skills       []string
	PortfolioURL *string
	Video        *FileUpload
	CV           *FileUpload
}

type CandidateRepository interface {
	// Upsert inserts or updates the row owned by c.UserID and refreshes c from the stored row.
	Upsert(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	GetByUserID(ctx context.Context, userID string) (*Candidate, error)
	ListRecent(ctx context.Context, limit int) ([]Candidate, error)
}

type CandidateUsecase interface {
	Upsert(ctx context.Context, identity Identity, input CandidateInput) (*Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
	GetMine(ctx context.Context, userID string) (*Candidate, error)
}
