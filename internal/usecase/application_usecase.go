package usecase

import (
	"context"
	"errors"

	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/validation"
)

type applicationUsecase struct {
	ownership
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	companyRepo domain.CompanyRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		ownership:       ownership{candidates: candidateRepo, companies: companyRepo},
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// Apply submits the caller's candidate profile to an active job
func (uc *applicationUsecase) Apply(ctx context.Context, userID, jobID string, coverLetter *string) (*domain.Application, error) {
	candidate, err := uc.CandidateOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, notFoundOr(err, "Job not found")
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("This job is no longer active")
	}

	app := &domain.Application{
		CandidateID: candidate.ID,
		JobID:       job.ID,
		Status:      domain.ApplicationStatusPending,
	}
	if coverLetter != nil {
		if cl := validation.SanitizeText(*coverLetter); cl != "" {
			app.CoverLetter = &cl
		}
	}

	// No prior existence check: the unique constraint decides, so two
	// concurrent requests cannot both succeed.
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("You have already applied to this job")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	app.Job = job
	return app, nil
}

func (uc *applicationUsecase) MyApplications(ctx context.Context, userID string) ([]domain.Application, error) {
	candidate, err := uc.CandidateOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	apps, err := uc.applicationRepo.ListByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (uc *applicationUsecase) CountMine(ctx context.Context, userID string) (int, error) {
	candidate, err := uc.CandidateOf(ctx, userID)
	if err != nil {
		return 0, err
	}
	count, err := uc.applicationRepo.CountByCandidate(ctx, candidate.ID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}
