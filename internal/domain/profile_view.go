package domain

import (
	"context"
	"time"
)

// ProfileView is one view of a candidate profile; ViewedBy is nil for anonymous visitors
type ProfileView struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	ViewedBy    *string   `json:"viewedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProfileViewRepository interface {
	Create(ctx context.Context, view *ProfileView) error
	CountByCandidate(ctx context.Context, candidateID string) (int, error)
}

type ProfileViewUsecase interface {
	// Record accepts a nil viewer for anonymous requests
	Record(ctx context.Context, candidateID string, viewer *Identity) (*ProfileView, error)
	Count(ctx context.Context, userID, candidateID string) (int, error)
}
