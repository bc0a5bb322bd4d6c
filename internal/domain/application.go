package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

func IsValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application represents a job application from a candidate
type Application struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	JobID       string    `json:"jobId"`
	Status      string    `json:"status"`
	CoverLetter *string   `json:"coverLetter"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Joined data for list responses
	Job       *Job       `json:"job,omitempty"`
	Candidate *Candidate `json:"candidate,omitempty"`
}

// ApplicationFilter narrows the company applications list
type ApplicationFilter struct {
	Status string
	JobID  string
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	// Create returns ErrDuplicate when the candidate already applied to the job
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	// ListByCandidate embeds job and job.company
	ListByCandidate(ctx context.Context, candidateID string) ([]Application, error)
	CountByCandidate(ctx context.Context, candidateID string) (int, error)
	// ListByCompany embeds candidate and job
	ListByCompany(ctx context.Context, companyID string, filter ApplicationFilter) ([]Application, error)
	UpdateStatus(ctx context.Context, id, status string) (*Application, error)
	StatsByCompany(ctx context.Context, companyID string) (*CompanyStats, error)
}

// ApplicationUsecase covers the candidate side of applications
type ApplicationUsecase interface {
	Apply(ctx context.Context, userID, jobID string, coverLetter *string) (*Application, error)
	MyApplications(ctx context.Context, userID string) ([]Application, error)
	CountMine(ctx context.Context, userID string) (int, error)
}
