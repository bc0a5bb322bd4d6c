package domain

import (
	"context"
	"time"
)

type SavedJob struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	JobID       string    `json:"jobId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Job *Job `json:"job,omitempty"`
}

type SavedJobRepository interface {
	// Create returns ErrDuplicate when the job is already saved
	Create(ctx context.Context, saved *SavedJob) error
	// Delete returns ErrNotFound when nothing was removed
	Delete(ctx context.Context, candidateID, jobID string) error
	Exists(ctx context.Context, candidateID, jobID string) (bool, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]SavedJob, error)
	CountByCandidate(ctx context.Context, candidateID string) (int, error)
}

type SavedJobUsecase interface {
	Save(ctx context.Context, userID, jobID string) (*SavedJob, error)
	Unsave(ctx context.Context, userID, jobID string) error
	MySaved(ctx context.Context, userID string) ([]SavedJob, error)
	CountMine(ctx context.Context, userID string) (int, error)
	IsSaved(ctx context.Context, userID, jobID string) (bool, error)
}
