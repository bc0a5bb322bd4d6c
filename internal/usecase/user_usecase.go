package usecase

import (
	"context"
	"errors"

	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
)

type userUsecase struct {
	userRepo      domain.UserRepository
	candidateRepo domain.CandidateRepository
	companyRepo   domain.CompanyRepository
}

func NewUserUsecase(userRepo domain.UserRepository, candidateRepo domain.CandidateRepository, companyRepo domain.CompanyRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, candidateRepo: candidateRepo, companyRepo: companyRepo}
}

// GetMe returns the user and the profile of its role; the profile is nil until created.
func (u *userUsecase) GetMe(ctx context.Context, userID string) (*domain.Me, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}

	me := &domain.Me{User: user}
	switch user.Role {
	case domain.RoleCandidate:
		candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		me.Candidate = candidate
	case domain.RoleCompany:
		company, err := u.companyRepo.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		me.Company = company
	}
	return me, nil
}
