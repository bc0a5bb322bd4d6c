package postgres

import (
	"context"
	"errors"

	"humancapital-api/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

func (r *savedJobRepo) Create(ctx context.Context, saved *domain.SavedJob) error {
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	query := `INSERT INTO saved_jobs (id, candidate_id, job_id, created_at, updated_at)
              VALUES ($1, $2, $3, NOW(), NOW())
              RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query, saved.ID, saved.CandidateID, saved.JobID).
		Scan(&saved.CreatedAt, &saved.UpdatedAt)
	return translateError("save job", err)
}

func (r *savedJobRepo) Delete(ctx context.Context, candidateID, jobID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2`, candidateID, jobID)
	if err != nil {
		return translateError("unsave job", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *savedJobRepo) Exists(ctx context.Context, candidateID, jobID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2)`,
		candidateID, jobID,
	).Scan(&exists)
	if err != nil {
		// a malformed job id cannot be saved
		if errors.Is(translateError("check saved job", err), domain.ErrNotFound) {
			return false, nil
		}
		return false, translateError("check saved job", err)
	}
	return exists, nil
}

func (r *savedJobRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.SavedJob, error) {
	query := `SELECT s.id, s.candidate_id, s.job_id, s.created_at, s.updated_at, ` + jobColumns + `, ` + companyColumns + `
		FROM saved_jobs s
		JOIN jobs j ON j.id = s.job_id
		JOIN companies co ON co.id = j.company_id
		WHERE s.candidate_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, translateError("list saved jobs", err)
	}
	defer rows.Close()

	saved := make([]domain.SavedJob, 0)
	for rows.Next() {
		var s domain.SavedJob
		var job domain.Job
		var company domain.Company
		dest := []any{&s.ID, &s.CandidateID, &s.JobID, &s.CreatedAt, &s.UpdatedAt}
		dest = append(dest, jobDest(&job)...)
		if err := rows.Scan(append(dest, companyDest(&company)...)...); err != nil {
			return nil, translateError("scan saved job", err)
		}
		job.Company = &company
		s.Job = &job
		saved = append(saved, s)
	}
	return saved, translateError("list saved jobs", rows.Err())
}

func (r *savedJobRepo) CountByCandidate(ctx context.Context, candidateID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM saved_jobs WHERE candidate_id = $1`, candidateID).Scan(&count)
	return count, translateError("count saved jobs", err)
}
