package usecase

import (
	"context"

	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
)

type profileViewUsecase struct {
	ownership
	viewRepo domain.ProfileViewRepository
}

func NewProfileViewUsecase(viewRepo domain.ProfileViewRepository, candidateRepo domain.CandidateRepository, companyRepo domain.CompanyRepository) domain.ProfileViewUsecase {
	return &profileViewUsecase{
		ownership: ownership{candidates: candidateRepo, companies: companyRepo},
		viewRepo:  viewRepo,
	}
}

// Record stores a view; a nil viewer is recorded as anonymous.
func (u *profileViewUsecase) Record(ctx context.Context, candidateID string, viewer *domain.Identity) (*domain.ProfileView, error) {
	candidate, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, notFoundOr(err, "Candidate not found")
	}

	view := &domain.ProfileView{CandidateID: candidate.ID}
	if viewer != nil {
		view.ViewedBy = strPtr(viewer.UserID)
	}
	if err := u.viewRepo.Create(ctx, view); err != nil {
		return nil, apperror.Internal(err)
	}
	return view, nil
}

// Count is only available to the candidate who owns the profile.
func (u *profileViewUsecase) Count(ctx context.Context, userID, candidateID string) (int, error) {
	candidate, err := u.CandidateOf(ctx, userID)
	if err != nil {
		return 0, err
	}
	if candidate.ID != candidateID {
		return 0, apperror.Forbidden("Access denied")
	}

	count, err := u.viewRepo.CountByCandidate(ctx, candidateID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}
