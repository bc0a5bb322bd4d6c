package usecase

import (
	"context"
	"errors"

	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
)

// ownership resolves an authenticated user to the single profile row it owns.
type ownership struct {
	candidates domain.CandidateRepository
	companies  domain.CompanyRepository
}

func (o ownership) CandidateOf(ctx context.Context, userID string) (*domain.Candidate, error) {
	candidate, err := o.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "Candidate profile not found")
	}
	return candidate, nil
}

func (o ownership) CompanyOf(ctx context.Context, userID string) (*domain.Company, error) {
	company, err := o.companies.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "Company profile not found")
	}
	return company, nil
}

func requireJobOwner(job *domain.Job, company *domain.Company) error {
	if job.CompanyID != company.ID {
		return apperror.Forbidden("You do not have access to this job")
	}
	return nil
}

// notFoundOr maps domain.ErrNotFound to a 404 with msg and anything else to a 500.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(msg)
	}
	return apperror.Internal(err)
}

func strPtr(s string) *string {
	return &s
}
