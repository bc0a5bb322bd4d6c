package usecase

import (
	"context"
	"errors"

	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
)

type savedJobUsecase struct {
	ownership
	savedRepo domain.SavedJobRepository
	jobRepo   domain.JobRepository
}

func NewSavedJobUsecase(
	savedRepo domain.SavedJobRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	companyRepo domain.CompanyRepository,
) domain.SavedJobUsecase {
	return &savedJobUsecase{
		ownership: ownership{candidates: candidateRepo, companies: companyRepo},
		savedRepo: savedRepo,
		jobRepo:   jobRepo,
	}
}

func (u *savedJobUsecase) Save(ctx context.Context, userID, jobID string) (*domain.SavedJob, error) {
	candidate, err := u.CandidateOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, notFoundOr(err, "Job not found")
	}

	saved := &domain.SavedJob{CandidateID: candidate.ID, JobID: job.ID}
	if err := u.savedRepo.Create(ctx, saved); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("Job already saved")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	saved.Job = job
	return saved, nil
}

func (u *savedJobUsecase) Unsave(ctx context.Context, userID, jobID string) error {
	candidate, err := u.CandidateOf(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.savedRepo.Delete(ctx, candidate.ID, jobID); err != nil {
		return notFoundOr(err, "Saved job not found")
	}
	return nil
}

func (u *savedJobUsecase) MySaved(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	candidate, err := u.CandidateOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	saved, err := u.savedRepo.ListByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return saved, nil
}

func (u *savedJobUsecase) CountMine(ctx context.Context, userID string) (int, error) {
	candidate, err := u.CandidateOf(ctx, userID)
	if err != nil {
		return 0, err
	}
	count, err := u.savedRepo.CountByCandidate(ctx, candidate.ID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}

func (u *savedJobUsecase) IsSaved(ctx context.Context, userID, jobID string) (bool, error) {
	candidate, err := u.CandidateOf(ctx, userID)
	if err != nil {
		return false, err
	}
	saved, err := u.savedRepo.Exists(ctx, candidate.ID, jobID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return saved, nil
}
