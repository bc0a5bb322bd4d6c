package postgres

import (
	"context"

	"humancapital-api/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts without a prior existence check; the unique
// (candidate_id, job_id) constraint reports duplicates.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	query := `INSERT INTO applications (id, candidate_id, job_id, status, cover_letter, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
              RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query, app.ID, app.CandidateID, app.JobID, app.Status, app.CoverLetter).
		Scan(&app.CreatedAt, &app.UpdatedAt)
	return translateError("create application", err)
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	var app domain.Application
	err := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications a WHERE a.id = $1`, id).
		Scan(applicationDest(&app)...)
	if err != nil {
		return nil, translateError("get application", err)
	}
	return &app, nil
}

// ListByCandidate returns the candidate's applications with job and company, newest first
func (r *applicationRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + `, ` + jobColumns + `, ` + companyColumns + `
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies co ON co.id = j.company_id
		WHERE a.candidate_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, translateError("list candidate applications", err)
	}
	defer rows.Close()

	apps := make([]domain.Application, 0)
	for rows.Next() {
		var app domain.Application
		var job domain.Job
		var company domain.Company
		dest := append(applicationDest(&app), jobDest(&job)...)
		if err := rows.Scan(append(dest, companyDest(&company)...)...); err != nil {
			return nil, translateError("scan application", err)
		}
		job.Company = &company
		app.Job = &job
		apps = append(apps, app)
	}
	return apps, translateError("list candidate applications", rows.Err())
}

func (r *applicationRepo) CountByCandidate(ctx context.Context, candidateID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE candidate_id = $1`, candidateID).Scan(&count)
	return count, translateError("count applications", err)
}

// ListByCompany returns applications to any of the company's jobs with candidate and job embedded
func (r *applicationRepo) ListByCompany(ctx context.Context, companyID string, filter domain.ApplicationFilter) ([]domain.Application, error) {
	var w whereBuilder
	w.add("j.company_id = ?", companyID)
	if filter.Status != "" {
		w.add("a.status = ?", filter.Status)
	}
	if filter.JobID != "" {
		w.add("a.job_id = ?", filter.JobID)
	}

	query := `SELECT ` + applicationColumns + `, ` + candidateColumns + `, ` + jobColumns + `
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN candidates c ON c.id = a.candidate_id` + w.sql() + `
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, translateError("list company applications", err)
	}
	defer rows.Close()

	apps := make([]domain.Application, 0)
	for rows.Next() {
		var app domain.Application
		var candidate domain.Candidate
		var job domain.Job
		dest := append(applicationDest(&app), candidateDest(&candidate)...)
		if err := rows.Scan(append(dest, jobDest(&job)...)...); err != nil {
			return nil, translateError("scan application", err)
		}
		app.Candidate = &candidate
		app.Job = &job
		apps = append(apps, app)
	}
	return apps, translateError("list company applications", rows.Err())
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Application, error) {
	query := `UPDATE applications a SET status = $2, updated_at = NOW() WHERE a.id = $1 RETURNING ` + applicationColumns
	var app domain.Application
	if err := r.db.QueryRow(ctx, query, id, status).Scan(applicationDest(&app)...); err != nil {
		return nil, translateError("update application status", err)
	}
	return &app, nil
}

func (r *applicationRepo) StatsByCompany(ctx context.Context, companyID string) (*domain.CompanyStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM jobs WHERE company_id = $1),
			(SELECT COUNT(*) FROM jobs WHERE company_id = $1 AND is_active),
			COUNT(a.id),
			COUNT(a.id) FILTER (WHERE a.status = 'pending'),
			COUNT(a.id) FILTER (WHERE a.status = 'accepted'),
			COUNT(a.id) FILTER (WHERE a.status = 'rejected')
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.company_id = $1`

	var s domain.CompanyStats
	err := r.db.QueryRow(ctx, query, companyID).Scan(
		&s.TotalJobs, &s.ActiveJobs, &s.TotalApplications, &s.Pending, &s.Accepted, &s.Rejected,
	)
	if err != nil {
		return nil, translateError("company stats", err)
	}
	return &s, nil
}
