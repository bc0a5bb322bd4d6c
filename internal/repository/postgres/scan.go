package postgres

import (
	"errors"
	"fmt"
	"strings"

	"humancapital-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidText         = "22P02" // malformed uuid in a path parameter
)

// translateError maps driver errors onto domain errors and leaves the rest wrapped.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, domain.ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolation, pgInvalidText:
			return domain.ErrNotFound
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

const (
	candidateColumns = `c.id, c.user_id, c.first_name, c.last_name, c.email, c.phone, c.city,
		c.profession, c.bio, c.skills, c.portfolio_url, c.video_url, c.cv_url, c.created_at, c.updated_at`

	companyColumns = `co.id, co.user_id, co.name, co.description, co.website, co.city, co.phone,
		co.email, co.logo_url, co.created_at, co.updated_at`

	jobColumns = `j.id, j.company_id, j.title, j.description, j.category, j.city, j.salary,
		j.experience, j.requirements, j.responsibilities, j.pdf_url, j.is_active, j.created_at, j.updated_at`

	applicationColumns = `a.id, a.candidate_id, a.job_id, a.status, a.cover_letter, a.created_at, a.updated_at`
)

// The *Dest helpers return scan targets in the order of the matching column list,
// using types pgx decodes natively in the binary format (text[] into []string),
// so joined rows can be scanned with append(jobDest(j), companyDest(co)...).

func candidateDest(c *domain.Candidate) []any {
	return []any{
		&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.City,
		&c.Profession, &c.Bio, &c.Skills, &c.PortfolioURL, &c.VideoURL, &c.CVURL,
		&c.CreatedAt, &c.UpdatedAt,
	}
}

func companyDest(co *domain.Company) []any {
	return []any{
		&co.ID, &co.UserID, &co.Name, &co.Description, &co.Website, &co.City, &co.Phone,
		&co.Email, &co.LogoURL, &co.CreatedAt, &co.UpdatedAt,
	}
}

func jobDest(j *domain.Job) []any {
	return []any{
		&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Category, &j.City, &j.Salary,
		&j.Experience, &j.Requirements, &j.Responsibilities, &j.PDFURL, &j.IsActive,
		&j.CreatedAt, &j.UpdatedAt,
	}
}

func applicationDest(a *domain.Application) []any {
	return []any{&a.ID, &a.CandidateID, &a.JobID, &a.Status, &a.CoverLetter, &a.CreatedAt, &a.UpdatedAt}
}

// likePattern escapes LIKE metacharacters and wraps the term for a substring match.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends cond, replacing each "?" with the next placeholder for arg.
func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *whereBuilder) addRaw(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) next(arg any) string {
	w.args = append(w.args, arg)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
