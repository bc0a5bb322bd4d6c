package postgres

import (
	"context"

	"humancapital-api/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	query := `INSERT INTO jobs (id, company_id, title, description, category, city, salary, experience,
                  requirements, responsibilities, pdf_url, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
              RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		job.ID, job.CompanyID, job.Title, job.Description, job.Category, job.City, job.Salary, job.Experience,
		job.Requirements, job.Responsibilities, job.PDFURL, job.IsActive,
	).Scan(&job.CreatedAt, &job.UpdatedAt)
	return translateError("create job", err)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	err := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1`, id).Scan(jobDest(&job)...)
	if err != nil {
		return nil, translateError("get job", err)
	}
	return &job, nil
}

// GetByIDWithCompany retrieves a job with its company embedded
func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + `, ` + companyColumns + `
		FROM jobs j
		JOIN companies co ON co.id = j.company_id
		WHERE j.id = $1`

	var job domain.Job
	var company domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(append(jobDest(&job), companyDest(&company)...)...)
	if err != nil {
		return nil, translateError("get job with company", err)
	}
	job.Company = &company
	return &job, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
                  title = $2, description = $3, category = $4, city = $5, salary = $6, experience = $7,
                  requirements = $8, responsibilities = $9, pdf_url = $10, is_active = $11, updated_at = NOW()
              WHERE id = $1
              RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		job.ID, job.Title, job.Description, job.Category, job.City, job.Salary, job.Experience,
		job.Requirements, job.Responsibilities, job.PDFURL, job.IsActive,
	).Scan(&job.UpdatedAt)
	return translateError("update job", err)
}

// ListActive returns active jobs, newest first, with their company embedded.
func (r *jobRepo) ListActive(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	var w whereBuilder
	w.addRaw("j.is_active = TRUE")
	if filter.Category != "" {
		w.add("j.category = ?", filter.Category)
	}
	if filter.City != "" {
		w.add("LOWER(j.city) = LOWER(?)", filter.City)
	}
	if filter.Search != "" {
		w.add("(j.title ILIKE ? OR j.description ILIKE ? OR co.name ILIKE ?)", likePattern(filter.Search))
	}

	query := `SELECT ` + jobColumns + `, ` + companyColumns + `
		FROM jobs j
		JOIN companies co ON co.id = j.company_id` + w.sql() + `
		ORDER BY j.created_at DESC`
	query += " LIMIT " + w.next(filter.Limit) + " OFFSET " + w.next(filter.Offset)

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, translateError("list active jobs", err)
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		var job domain.Job
		var company domain.Company
		if err := rows.Scan(append(jobDest(&job), companyDest(&company)...)...); err != nil {
			return nil, translateError("scan job", err)
		}
		job.Company = &company
		jobs = append(jobs, job)
	}
	return jobs, translateError("list active jobs", rows.Err())
}

// ListByCompany returns all jobs of a company, including inactive ones, with application counts.
func (r *jobRepo) ListByCompany(ctx context.Context, companyID string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + `, COUNT(a.id)
		FROM jobs j
		LEFT JOIN applications a ON a.job_id = j.id
		WHERE j.company_id = $1
		GROUP BY j.id
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, translateError("list company jobs", err)
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		var job domain.Job
		var count int
		if err := rows.Scan(append(jobDest(&job), &count)...); err != nil {
			return nil, translateError("scan job", err)
		}
		job.ApplicationCount = &count
		jobs = append(jobs, job)
	}
	return jobs, translateError("list company jobs", rows.Err())
}
