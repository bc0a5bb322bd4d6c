package usecase

import (
	"context"
	"strings"

	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/security"
	"humancapital-api/pkg/validation"
)

type companyUsecase struct {
	ownership
	companyRepo domain.CompanyRepository
	uploads     UploadUsecase
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, candidateRepo domain.CandidateRepository, uploads UploadUsecase) domain.CompanyUsecase {
	return &companyUsecase{
		ownership:   ownership{candidates: candidateRepo, companies: companyRepo},
		companyRepo: companyRepo,
		uploads:     uploads,
	}
}

func (u *companyUsecase) Upsert(ctx context.Context, identity domain.Identity, input domain.CompanyInput) (*domain.Company, error) {
	company := &domain.Company{
		UserID:      identity.UserID,
		Name:        strings.TrimSpace(input.Name),
		Description: validation.SanitizeText(input.Description),
		Website:     strings.TrimSpace(input.Website),
		City:        strings.TrimSpace(input.City),
		Phone:       strings.TrimSpace(input.Phone),
		Email:       normalizeEmail(input.Email),
	}
	if company.Email == "" {
		company.Email = identity.Email
	}
	if company.Name == "" {
		return nil, apperror.BadRequest("Company name is required")
	}

	if input.Logo != nil {
		url, err := u.uploads.Upload(ctx, security.PurposeLogo, input.Logo)
		if err != nil {
			return nil, err
		}
		company.LogoURL = &url
	}

	if err := u.companyRepo.Upsert(ctx, company); err != nil {
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (u *companyUsecase) List(ctx context.Context) ([]domain.Company, error) {
	companies, err := u.companyRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return companies, nil
}

func (u *companyUsecase) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Company not found")
	}
	return company, nil
}

func (u *companyUsecase) GetMine(ctx context.Context, userID string) (*domain.Company, error) {
	return u.CompanyOf(ctx, userID)
}
