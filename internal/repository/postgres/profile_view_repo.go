package postgres

import (
	"context"

	"humancapital-api/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileViewRepo struct {
	db *pgxpool.Pool
}

func NewProfileViewRepository(db *pgxpool.Pool) domain.ProfileViewRepository {
	return &profileViewRepo{db: db}
}

func (r *profileViewRepo) Create(ctx context.Context, view *domain.ProfileView) error {
	if view.ID == "" {
		view.ID = uuid.NewString()
	}
	query := `INSERT INTO profile_views (id, candidate_id, viewed_by, created_at, updated_at)
              VALUES ($1, $2, $3, NOW(), NOW())
              RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query, view.ID, view.CandidateID, view.ViewedBy).
		Scan(&view.CreatedAt, &view.UpdatedAt)
	return translateError("record profile view", err)
}

func (r *profileViewRepo) CountByCandidate(ctx context.Context, candidateID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profile_views WHERE candidate_id = $1`, candidateID).Scan(&count)
	return count, translateError("count profile views", err)
}
